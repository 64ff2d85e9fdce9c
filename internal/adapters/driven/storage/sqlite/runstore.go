package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
)

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// SaveRun stores or updates a run and replaces its column statistics.
func (s *runStore) SaveRun(ctx context.Context, run *domain.Run) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}

	dropped := run.Dropped
	if dropped == nil {
		dropped = []string{}
	}
	droppedJSON, err := json.Marshal(dropped)
	if err != nil {
		return fmt.Errorf("marshalling dropped columns: %w", err)
	}

	var endedAt sql.NullTime
	if !run.EndedAt.IsZero() {
		endedAt = sql.NullTime{Time: run.EndedAt.UTC(), Valid: true}
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, input_path, output_path, started_at, ended_at, row_count, dropped, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			input_path = excluded.input_path,
			output_path = excluded.output_path,
			started_at = excluded.started_at,
			ended_at = excluded.ended_at,
			row_count = excluded.row_count,
			dropped = excluded.dropped,
			error = excluded.error
	`, run.ID, run.InputPath, run.OutputPath, run.StartedAt.UTC(), endedAt,
		run.Rows, string(droppedJSON), nullString(run.Error))
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM run_columns WHERE run_id = ?", run.ID); err != nil {
		return fmt.Errorf("clearing run columns: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_columns (run_id, position, name, rule, missing, changed, blanked)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, c := range run.Columns {
		if _, err := stmt.ExecContext(ctx, run.ID, i, c.Column, c.Rule, c.Missing, c.Changed, c.Blanked); err != nil {
			return fmt.Errorf("saving column %q: %w", c.Column, err)
		}
	}

	return tx.Commit()
}

// GetRun retrieves a run by ID.
func (s *runStore) GetRun(ctx context.Context, id string) (*domain.Run, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, input_path, output_path, started_at, ended_at, row_count, dropped, error
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}

	if err := s.loadColumns(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns the most recent runs first.
func (s *runStore) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	query := `
		SELECT id, input_path, output_path, started_at, ended_at, row_count, dropped, error
		FROM runs ORDER BY started_at DESC, id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	rows.Close()

	for i := range runs {
		if err := s.loadColumns(ctx, &runs[i]); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (s *runStore) loadColumns(ctx context.Context, run *domain.Run) error {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT name, rule, missing, changed, blanked
		FROM run_columns WHERE run_id = ? ORDER BY position
	`, run.ID)
	if err != nil {
		return fmt.Errorf("querying run columns: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.ColumnStats
		if err := rows.Scan(&c.Column, &c.Rule, &c.Missing, &c.Changed, &c.Blanked); err != nil {
			return fmt.Errorf("scanning run column: %w", err)
		}
		run.Columns = append(run.Columns, c)
	}
	return rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Run, error) {
	var run domain.Run
	var droppedJSON string
	var endedAt sql.NullTime
	var runErr sql.NullString

	if err := row.Scan(&run.ID, &run.InputPath, &run.OutputPath, &run.StartedAt,
		&endedAt, &run.Rows, &droppedJSON, &runErr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	if err := json.Unmarshal([]byte(droppedJSON), &run.Dropped); err != nil {
		return nil, fmt.Errorf("unmarshaling dropped columns: %w", err)
	}
	if len(run.Dropped) == 0 {
		run.Dropped = nil
	}
	if endedAt.Valid {
		run.EndedAt = endedAt.Time
	}
	run.Error = runErr.String

	return &run, nil
}
