package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// MatchConfig describes the series a set of records belongs to.
type MatchConfig struct {
	Name             string
	BoardSize        int
	Direction        string
	MandatoryCapture bool
	DiceFaces        int // 0 without dice
	Players          int
	Games            int
	Seed             uint64
	MaxTurns         int
}

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchConfig(config MatchConfig) error {
	header := []string{"name", "board_size", "direction", "mandatory_capture", "dice_faces", "players", "games", "seed", "max_turns"}
	row := []string{
		config.Name,
		strconv.Itoa(config.BoardSize),
		config.Direction,
		strconv.FormatBool(config.MandatoryCapture),
		strconv.Itoa(config.DiceFaces),
		strconv.Itoa(config.Players),
		strconv.Itoa(config.Games),
		strconv.FormatUint(config.Seed, 10),
		strconv.Itoa(config.MaxTurns),
	}
	return w.write("match_config.csv", header, [][]string{row})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "starting_player", "winner", "outcome", "forfeit", "start_time", "end_time", "duration", "total_moves", "pieces_left", "material"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		left := make([]string, len(record.PiecesLeft))
		for i, n := range record.PiecesLeft {
			left[i] = strconv.Itoa(n)
		}
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Winner),
			record.Outcome.String(),
			strconv.FormatBool(record.Forfeit),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strings.Join(left, "/"),
			strconv.FormatFloat(record.Material, 'f', 3, 64),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "captures", "roll", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Move,
			strconv.Itoa(record.Captures),
			strconv.Itoa(record.Roll),
			record.Duration.String(),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", file, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
