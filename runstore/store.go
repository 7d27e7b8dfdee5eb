// Package runstore provides SQLite-based archiving of model assembly runs.
package runstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/cellsim-xyz/go-cellsim/model"
)

// Store handles SQLite database operations for assembly run logging.
type Store struct {
	db *sql.DB
}

// Run represents one recorded model assembly.
type Run struct {
	ID          string    `json:"id"`
	Model       string    `json:"model"`
	Geometry    string    `json:"geometry,omitempty"`
	Solver      string    `json:"solver"`
	Thermal     string    `json:"thermal"`
	States      int       `json:"states"`
	Variables   int       `json:"variables"`
	Events      int       `json:"events"`
	Summary     string    `json:"summary"` // JSON-encoded model.Summary
	AssembledAt time.Time `json:"assembled_at"`
}

// Open creates a Store backed by the database at the given path.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		model TEXT NOT NULL,
		geometry TEXT,
		solver TEXT NOT NULL,
		thermal TEXT NOT NULL DEFAULT 'off',
		states INTEGER NOT NULL DEFAULT 0,
		variables INTEGER NOT NULL DEFAULT 0,
		events INTEGER NOT NULL DEFAULT 0,
		summary TEXT NOT NULL,
		assembled_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_model ON runs(model);
	CREATE INDEX IF NOT EXISTS idx_runs_assembled ON runs(assembled_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record archives an assembled model under a fresh run ID and returns it.
func (s *Store) Record(m *model.Model, thermal string) (*Run, error) {
	summary := m.Summarize()
	encoded, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}

	run := &Run{
		ID:          uuid.NewString(),
		Model:       summary.Name,
		Geometry:    summary.Geometry,
		Solver:      summary.Solver,
		Thermal:     thermal,
		States:      len(summary.Differential) + len(summary.Algebraic),
		Variables:   len(summary.Variables),
		Events:      len(summary.Events),
		Summary:     string(encoded),
		AssembledAt: time.Now().UTC(),
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (id, model, geometry, solver, thermal, states, variables, events, summary, assembled_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Model, run.Geometry, run.Solver, run.Thermal,
		run.States, run.Variables, run.Events, run.Summary, run.AssembledAt,
	)
	if err != nil {
		return nil, err
	}
	return run, nil
}

// Get retrieves a run by ID.
func (s *Store) Get(id string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, model, geometry, solver, thermal, states, variables, events, summary, assembled_at
		 FROM runs WHERE id = ?`, id,
	)
	return scanRun(row.Scan)
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(limit int) ([]*Run, error) {
	rows, err := s.db.Query(
		`SELECT id, model, geometry, solver, thermal, states, variables, events, summary, assembled_at
		 FROM runs ORDER BY assembled_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// DecodeSummary decodes the archived model summary for a run.
func (r *Run) DecodeSummary() (*model.Summary, error) {
	var summary model.Summary
	if err := json.Unmarshal([]byte(r.Summary), &summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return &summary, nil
}

func scanRun(scan func(...any) error) (*Run, error) {
	var run Run
	var geometry sql.NullString
	err := scan(&run.ID, &run.Model, &geometry, &run.Solver, &run.Thermal,
		&run.States, &run.Variables, &run.Events, &run.Summary, &run.AssembledAt)
	if err != nil {
		return nil, err
	}
	if geometry.Valid {
		run.Geometry = geometry.String
	}
	return &run, nil
}
