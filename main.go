package main

import (
	"context"
	"draughts/config"
	"draughts/engine"
	"draughts/experiments"
	"draughts/game"
	"draughts/gamemaster"
	"draughts/meta"
	"draughts/player"
	"draughts/telemetry"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, meta.SERVICE_NAME, cfg.OTelEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	name, v, err := loadVariant(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load variant")
	}

	if cfg.Watch {
		watch(ctx, cfg, v)
		return
	}

	summary, err := experiments.RunMatches(ctx, experiments.Series{
		Name:     name,
		Variant:  v,
		Games:    cfg.Games,
		Seed:     cfg.Seed,
		MaxTurns: cfg.MaxTurns,
		Workers:  cfg.Workers,
		Output:   cfg.Output,
	})
	if err != nil {
		log.Error().Err(err).Msg("series failed")
		return
	}
	log.Info().Msgf("%d games, wins %v, stalemates %d, forfeits %d, avg %.1f moves",
		summary.Games, summary.Wins, summary.Stalemates, summary.Forfeits,
		float64(summary.TotalMoves)/float64(summary.Games))
	if summary.Dir != "" {
		log.Info().Msgf("records written to %s", summary.Dir)
	}
}

// watch plays one paced game and logs the table's update feed as it goes.
func watch(ctx context.Context, cfg config.Config, v game.Variant) {
	g, err := game.NewGame(v, game.WithSeed(cfg.Seed))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}
	table := gamemaster.NewTable(g)
	agents := make([]engine.Agent, len(v.Players))
	for i := range agents {
		agents[i] = player.NewRandom(cfg.Seed + uint64(i) + 1)
	}

	task := engine.New(table, agents,
		engine.WithDelay(cfg.Delay),
		engine.WithMaxTurns(cfg.MaxTurns),
	).Start(ctx)

	tick := cfg.Delay / 4
	if tick <= 0 {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		drain(table)
		select {
		case <-task.Done():
			drain(table)
			result, err := task.Wait()
			if err != nil {
				log.Warn().Err(err).Msg("game stopped")
				return
			}
			log.Info().Msgf("%s, winner %d", result.State.Outcome, result.State.Winner)
			return
		case <-ticker.C:
		}
	}
}

func drain(table *gamemaster.Table) {
	for {
		u, ok := table.Next()
		if !ok {
			return
		}
		switch u.Event {
		case gamemaster.Moved:
			log.Info().Msgf("%s, player %d to move", u.Move, u.State.CurrentPlayer)
		case gamemaster.Rolled:
			log.Info().Msgf("rolled %d", u.Roll)
		default:
			log.Info().Msgf("%s", u.Event)
		}
	}
}
