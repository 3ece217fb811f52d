package metrics

import (
	"draughts/game"
	"sync"
	"time"
)

type MoveMetric struct {
	Step     int
	Player   int
	Move     string
	Captures int
	Roll     int // dice roll that opened this turn, 0 without dice
	Duration time.Duration
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // game.NoWinner for a stalemate or an unfinished game
	Outcome        game.Outcome
	Forfeit        bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	PiecesLeft     []int   // per player, at the end of the game
	Material       float64 // player 0's material balance at the end, in [-1,1]
}

// Collector gathers metrics for one game at a time.
type Collector interface {
	Start(startingPlayer int)
	AddRoll(roll int)
	AddMove(player int, move game.Move, took time.Duration)
	Forfeit()
	Complete(g game.State, piecesLeft []int) (GameMetric, []MoveMetric)
}

type collector struct {
	mu             sync.Mutex
	startingPlayer int
	startTime      time.Time
	roll           int
	forfeit        bool
	moves          []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startingPlayer = startingPlayer
	m.startTime = time.Now()
	m.roll = 0
	m.forfeit = false
	m.moves = nil
}

func (m *collector) AddRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roll = roll
}

func (m *collector) AddMove(player int, move game.Move, took time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moves = append(m.moves, MoveMetric{
		Step:     len(m.moves) + 1,
		Player:   player,
		Move:     move.String(),
		Captures: len(move.Captured),
		Roll:     m.roll,
		Duration: took,
	})
}

func (m *collector) Forfeit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forfeit = true
}

func (m *collector) Complete(state game.State, piecesLeft []int) (GameMetric, []MoveMetric) {
	m.mu.Lock()
	defer m.mu.Unlock()
	end := time.Now()
	return GameMetric{
		StartingPlayer: m.startingPlayer,
		Winner:         state.Winner,
		Outcome:        state.Outcome,
		Forfeit:        m.forfeit,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     len(m.moves),
		PiecesLeft:     append([]int(nil), piecesLeft...),
	}, append([]MoveMetric(nil), m.moves...)
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingPlayer int)                           {}
func (m *dummyCollector) AddRoll(roll int)                                   {}
func (m *dummyCollector) AddMove(player int, move game.Move, d time.Duration) {}
func (m *dummyCollector) Forfeit()                                           {}
func (m *dummyCollector) Complete(game.State, []int) (GameMetric, []MoveMetric) {
	return GameMetric{Winner: game.NoWinner}, nil
}
