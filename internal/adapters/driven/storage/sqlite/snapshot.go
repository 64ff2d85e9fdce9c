package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alao-ohio/roster/internal/adapters/driven/table"
	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
)

// SnapshotExtensions are the output extensions that select the snapshot writer.
var SnapshotExtensions = []string{".db", ".sqlite"}

// SnapshotWriter stores cleaned rosters as snapshots in a SQLite file.
// Each write appends a new snapshot; earlier snapshots are kept.
type SnapshotWriter struct{}

// Ensure SnapshotWriter implements the interface.
var _ driven.TableWriter = (*SnapshotWriter)(nil)

// NewSnapshotWriter creates a snapshot writer.
func NewSnapshotWriter() *SnapshotWriter {
	return &SnapshotWriter{}
}

// Extensions returns the handled extensions.
func (w *SnapshotWriter) Extensions() []string {
	return SnapshotExtensions
}

// Write appends the table as a new snapshot in the database at path.
// Rows always carry their index, so opts.Index has no effect.
func (w *SnapshotWriter) Write(ctx context.Context, path string, t *domain.Table, opts driven.WriteOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	store, err := Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.SaveSnapshot(ctx, opts.RunID, t)
	return err
}

// SaveSnapshot stores t and returns the new snapshot ID.
func (s *Store) SaveSnapshot(ctx context.Context, runID string, t *domain.Table) (int64, error) {
	columnsJSON, err := json.Marshal(t.Columns)
	if err != nil {
		return 0, fmt.Errorf("marshalling columns: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (run_id, columns, created_at) VALUES (?, ?, ?)
	`, runID, string(columnsJSON), time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("saving snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading snapshot id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO snapshot_rows (snapshot_id, row_index, data) VALUES (?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		data, err := json.Marshal(encodeRow(row))
		if err != nil {
			return 0, fmt.Errorf("marshalling row %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, id, i, string(data)); err != nil {
			return 0, fmt.Errorf("saving row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing snapshot: %w", err)
	}
	return id, nil
}

// SnapshotReader loads the latest snapshot from a SQLite file.
type SnapshotReader struct{}

// Ensure SnapshotReader implements the interface.
var _ driven.TableReader = (*SnapshotReader)(nil)

// NewSnapshotReader creates a snapshot reader.
func NewSnapshotReader() *SnapshotReader {
	return &SnapshotReader{}
}

// Extensions returns the handled extensions.
func (r *SnapshotReader) Extensions() []string {
	return SnapshotExtensions
}

// Read loads the most recent snapshot in the database at path.
func (r *SnapshotReader) Read(ctx context.Context, path string, opts driven.ReadOptions) (*domain.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	store, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.LatestSnapshot(ctx, opts)
}

// LatestSnapshot returns the most recently written snapshot.
// Returns domain.ErrNotFound if the database holds none.
func (s *Store) LatestSnapshot(ctx context.Context, opts driven.ReadOptions) (*domain.Table, error) {
	var id int64
	var columnsJSON string
	row := s.db.QueryRowContext(ctx, "SELECT id, columns FROM snapshots ORDER BY id DESC LIMIT 1")
	if err := row.Scan(&id, &columnsJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}

	var columns []string
	if err := json.Unmarshal([]byte(columnsJSON), &columns); err != nil {
		return nil, fmt.Errorf("unmarshaling columns: %w", err)
	}

	parser := table.NewCellParser(opts)
	t, err := domain.NewTable(parser.Headers(columns))
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT data FROM snapshot_rows WHERE snapshot_id = ? ORDER BY row_index", id)
	if err != nil {
		return nil, fmt.Errorf("querying snapshot rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		var cells []*string
		if err := json.Unmarshal([]byte(data), &cells); err != nil {
			return nil, fmt.Errorf("unmarshaling snapshot row: %w", err)
		}
		if err := t.AppendRow(decodeRow(parser, cells)); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot rows: %w", err)
	}

	return t, nil
}

// encodeRow renders missing values as JSON null.
func encodeRow(row []domain.Value) []*string {
	cells := make([]*string, len(row))
	for i, v := range row {
		if v.Valid {
			s := v.String
			cells[i] = &s
		}
	}
	return cells
}

func decodeRow(parser *table.CellParser, cells []*string) []domain.Value {
	row := make([]domain.Value, len(cells))
	for i, c := range cells {
		if c != nil {
			row[i] = parser.Cell(*c)
		}
	}
	return row
}
