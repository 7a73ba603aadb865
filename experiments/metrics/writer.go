package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a folder named by the experiment and the current
// timestamp under root. It fails rather than reuse the folder of another run.
func NewWriter(root, name string) (*Writer, error) {
	return newWriter(root, name, time.Now())
}

func newWriter(root, name string, now time.Time) (*Writer, error) {
	parent := filepath.Join(root, name)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}
	baseDir := filepath.Join(parent, now.UTC().Format("20060102T150405.000000000Z"))
	if err := os.Mkdir(baseDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create run directory")
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteAll stores configs and records concurrently.
func (w *Writer) WriteAll(configs []AgentConfig, games []GameRecord, moves []MoveRecord) error {
	var g errgroup.Group
	g.Go(func() error { return w.WriteAgentConfigs(configs) })
	g.Go(func() error { return w.WriteGameRecords(games) })
	g.Go(func() error { return w.WriteMoveRecords(moves) })
	g.Go(func() error { return w.WriteMoveParquet(moves) })
	return g.Wait()
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "goroutines", "duration", "episodes", "temperature"}
	rows := make([][]string, len(configs))
	for i, config := range configs {
		rows[i] = []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Goroutines),
			config.Duration.String(),
			strconv.Itoa(config.Episodes),
			strconv.FormatFloat(config.Temperature, 'g', -1, 64),
		}
	}
	return errors.Wrap(w.writeCSV("agent_configs.csv", header, rows), "failed to write agent configs")
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "black_discs", "white_discs",
		"start_time", "end_time", "duration", "total_moves", "passes"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.BlackDiscs),
			strconv.Itoa(record.WhiteDiscs),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Passes),
		}
	}
	return errors.Wrap(w.writeCSV("game_records.csv", header, rows), "failed to write game records")
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "row", "col", "goroutines", "duration", "episodes",
		"min_episodes", "max_episodes"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Row),
			strconv.Itoa(record.Col),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.MinEpisodes),
			strconv.Itoa(record.MaxEpisodes),
		}
	}
	return errors.Wrap(w.writeCSV("move_records.csv", header, rows), "failed to write move records")
}

// WriteMoveParquet stores move records as zstd-compressed parquet.
func (w *Writer) WriteMoveParquet(records []MoveRecord) error {
	rows := make([]MoveRow, len(records))
	for i, record := range records {
		rows[i] = record.Parquet()
	}

	path := filepath.Join(w.baseDir, "move_records.parquet")
	if err := parquet.WriteFile(path, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "move_record_v1"),
	); err != nil {
		return errors.Wrap(err, "failed to write move parquet")
	}
	return nil
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) (err error) {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", name)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierror.Append(err, cerr)
		}
	}()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrap(err, "failed to write rows")
	}
	return nil
}
