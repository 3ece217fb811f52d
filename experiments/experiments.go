package experiments

import (
	"context"
	"draughts/engine"
	"draughts/experiments/metrics"
	"draughts/game"
	"draughts/gamemaster"
	"draughts/meta"
	"draughts/player"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Series is a run of random-vs-random games on one variant.
type Series struct {
	Name     string
	Variant  game.Variant
	Games    int
	Seed     uint64 // game i uses Seed+i, so a series is reproducible
	MaxTurns int
	Workers  int    // games played concurrently, at least 1
	Output   string // root directory for CSV records, empty to skip writing
}

type Summary struct {
	Games      int
	Wins       []int // per player
	Stalemates int
	Forfeits   int
	TotalMoves int
	Dir        string // where records were written, if anywhere
}

// RunMatches plays the series and, if Output is set, stores its records.
// It stops early with the context error when ctx is cancelled.
func RunMatches(ctx context.Context, s Series) (Summary, error) {
	if err := s.Variant.Validate(); err != nil {
		return Summary{}, fmt.Errorf("series %s: %w", s.Name, err)
	}
	if s.Games <= 0 {
		s.Games = meta.GAMES
	}
	if s.MaxTurns <= 0 {
		s.MaxTurns = meta.MAX_TURNS
	}
	if s.Workers <= 0 {
		s.Workers = 1
	}

	log.Info().Msgf("starting %s series of %d games on %d workers...", s.Name, s.Games, s.Workers)

	results := make([]engine.Result, s.Games)
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(s.Workers)
	for i := 0; i < s.Games; i++ {
		group.Go(func() error {
			result, err := runGame(ctx, s, i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = result
			log.Info().Msgf("completed %s game %d of %d: %s, winner %d", s.Name, i+1, s.Games, result.State.Outcome, result.State.Winner)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Summary{}, err
	}

	summary := summarize(s, results)
	log.Info().Msgf("completed %s series: wins %v, stalemates %d, forfeits %d", s.Name, summary.Wins, summary.Stalemates, summary.Forfeits)

	if s.Output == "" {
		return summary, nil
	}
	dir, err := store(s, results)
	if err != nil {
		return summary, err
	}
	summary.Dir = dir
	return summary, nil
}

func runGame(ctx context.Context, s Series, i int) (engine.Result, error) {
	seed := s.Seed + uint64(i)
	g, err := game.NewGame(s.Variant, game.WithSeed(seed))
	if err != nil {
		return engine.Result{}, err
	}

	agents := make([]engine.Agent, len(s.Variant.Players))
	for p := range agents {
		agents[p] = player.NewRandom(seed*uint64(len(agents)+1) + uint64(p) + 1)
	}

	e := engine.New(gamemaster.NewTable(g), agents,
		engine.WithMaxTurns(s.MaxTurns),
		engine.WithCollector(metrics.NewCollector()),
	)
	return e.Run(ctx)
}

func summarize(s Series, results []engine.Result) Summary {
	summary := Summary{Games: len(results), Wins: make([]int, len(s.Variant.Players))}
	for _, r := range results {
		switch {
		case r.State.Outcome == game.Stalemate:
			summary.Stalemates++
		case r.State.Winner >= 0 && r.State.Winner < len(summary.Wins):
			summary.Wins[r.State.Winner]++
		}
		if r.GameMetric.Forfeit {
			summary.Forfeits++
		}
		summary.TotalMoves += r.GameMetric.TotalMoves
	}
	return summary
}

func store(s Series, results []engine.Result) (string, error) {
	writer, err := metrics.NewWriter(s.Output, s.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	config := metrics.MatchConfig{
		Name:             s.Name,
		BoardSize:        s.Variant.BoardSize,
		Direction:        s.Variant.Direction.String(),
		MandatoryCapture: s.Variant.MandatoryCapture,
		Players:          len(s.Variant.Players),
		Games:            s.Games,
		Seed:             s.Seed,
		MaxTurns:         s.MaxTurns,
	}
	if s.Variant.Dice != nil {
		config.DiceFaces = s.Variant.Dice.Faces
	}
	if err := writer.WriteMatchConfig(config); err != nil {
		return "", fmt.Errorf("failed to store match config: %w", err)
	}
	log.Info().Msg("stored match config")

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for i, r := range results {
		gameRecords = append(gameRecords, metrics.GameRecord{ID: i + 1, GameMetric: r.GameMetric})
		for _, mm := range r.Moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
