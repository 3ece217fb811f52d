package engine

import (
	"context"
	"draughts/experiments/metrics"
	"draughts/game"
	"draughts/gamemaster"
	"draughts/meta"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "draughts/engine"

// ErrNoMove is returned by Step when the side to move has no legal move.
var ErrNoMove = errors.New("no legal move")

// Agent chooses a move for the side to move.
type Agent interface {
	SelectMove(state game.MoveLister) (game.Move, bool)
}

type Result struct {
	State      game.State
	GameMetric metrics.GameMetric
	Moves      []metrics.MoveMetric
}

// Engine plays a table to completion with one agent per seat.
type Engine struct {
	table     *gamemaster.Table
	agents    []Agent
	delay     time.Duration
	maxTurns  int
	collector metrics.Collector
}

type Option func(*Engine)

// WithDelay pauses between moves so a watcher can follow the game.
func WithDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.delay = d
	}
}

func WithMaxTurns(n int) Option {
	return func(e *Engine) {
		e.maxTurns = n
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		e.collector = c
	}
}

// New panics unless there is exactly one agent per player.
func New(table *gamemaster.Table, agents []Agent, options ...Option) *Engine {
	if len(agents) != table.Players() {
		panic("number of players does not match number of agents")
	}
	e := &Engine{
		table:     table,
		agents:    agents,
		maxTurns:  meta.MAX_TURNS,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Step plays one move for the side to move, rolling first when the dice demand it.
func Step(table *gamemaster.Table, agent Agent) (game.Move, int, error) {
	roll := 0
	if table.Snapshot().MustRollDice {
		r, err := table.Roll()
		if err != nil {
			return game.Move{}, 0, err
		}
		roll = r
	}

	move, ok := agent.SelectMove(table)
	if !ok {
		return game.Move{}, roll, ErrNoMove
	}
	if err := table.Play(move); err != nil {
		return move, roll, err
	}
	return move, roll, nil
}

// Run plays until the game is over. Cancellation is honoured between moves only;
// a cancelled run returns the context error and leaves the game as it stands.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "engine.Run")
	defer span.End()

	start := e.table.Snapshot()
	e.collector.Start(start.CurrentPlayer)
	logger := log.With().Str("trace_id", traceID(ctx)).Logger()
	logger.Info().Msgf("player %d is starting", start.CurrentPlayer)

	turns := 0
	for {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "cancelled")
			return Result{}, err
		}

		state := e.table.Snapshot()
		if state.GameOver {
			break
		}
		if turns >= e.maxTurns {
			logger.Info().Msgf("stopped after %d turns, forfeiting player %d", turns, state.CurrentPlayer)
			e.forfeit()
			break
		}

		err := e.step(ctx, e.agents[state.CurrentPlayer], state.CurrentPlayer)
		if errors.Is(err, ErrNoMove) {
			logger.Info().Msgf("player %d has no legal moves, forfeiting", state.CurrentPlayer)
			e.forfeit()
			break
		}
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return Result{}, fmt.Errorf("turn %d: %w", turns+1, err)
		}
		turns++

		if e.delay > 0 {
			select {
			case <-ctx.Done():
				span.SetStatus(codes.Error, "cancelled")
				return Result{}, ctx.Err()
			case <-time.After(e.delay):
			}
		}
	}

	final := e.table.Snapshot()
	piecesLeft := make([]int, e.table.Players())
	for i := range piecesLeft {
		piecesLeft[i] = e.table.Count(i)
	}
	gameMetric, moves := e.collector.Complete(final, piecesLeft)
	gameMetric.Material = e.table.Material(0)

	span.SetAttributes(
		attribute.Int("draughts.turns", turns),
		attribute.Int("draughts.winner", final.Winner),
		attribute.String("draughts.outcome", final.Outcome.String()),
	)
	logger.Info().Msgf("game over after %d turns: %s, winner %d", turns, final.Outcome, final.Winner)

	return Result{State: final, GameMetric: gameMetric, Moves: moves}, nil
}

func (e *Engine) step(ctx context.Context, agent Agent, player int) error {
	_, span := otel.Tracer(tracerName).Start(ctx, "engine.Step",
		trace.WithAttributes(attribute.Int("draughts.player", player)))
	defer span.End()

	began := time.Now()
	move, roll, err := Step(e.table, agent)
	if roll > 0 {
		e.collector.AddRoll(roll)
		span.SetAttributes(attribute.Int("draughts.roll", roll))
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	e.collector.AddMove(player, move, time.Since(began))
	span.SetAttributes(
		attribute.String("draughts.move", move.String()),
		attribute.Int("draughts.captures", len(move.Captured)),
	)
	log.Debug().Msgf("player %d played %s", player, move)
	return nil
}

func (e *Engine) forfeit() {
	if err := e.table.Forfeit(); err != nil && !errors.Is(err, gamemaster.ErrGameOver) {
		log.Warn().Err(err).Msg("forfeit failed")
		return
	}
	e.collector.Forfeit()
}

func traceID(ctx context.Context) string {
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		return sc.TraceID().String()
	}
	return ""
}
