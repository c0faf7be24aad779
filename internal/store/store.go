// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists Project records in a SQLite-backed document store.
// Each project is one row holding the full record as a JSON document, with
// status and creation time lifted into columns for listing. A Save is a
// single upsert, so writes are atomic per document.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/brand-engine/pkg/types"
)

const dbFile = "brand.db"

// ErrNotFound is returned by Get when no project exists for the given id.
var ErrNotFound = errors.New("project not found")

// Store manages the project SQLite database.
type Store struct {
	db *sql.DB
}

// New opens or creates the project database at dataDir/brand.db and
// creates the schema if it does not exist.
func New(cfg types.StoreConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			created_at TEXT NOT NULL,
			document TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save upserts the project document keyed by project id.
func (s *Store) Save(ctx context.Context, p *types.Project) error {
	if p.ID == "" {
		return fmt.Errorf("project id is required")
	}

	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling project %s: %w", p.ID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects (id, status, created_at, document)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			status=excluded.status, document=excluded.document`,
		p.ID, string(p.Status), p.CreatedAt.UTC().Format(time.RFC3339Nano), string(doc),
	)
	if err != nil {
		return fmt.Errorf("saving project %s: %w", p.ID, err)
	}
	return nil
}

// Get loads the project with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*types.Project, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM projects WHERE id = ?`, id,
	).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading project %s: %w", id, err)
	}

	var p types.Project
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return nil, fmt.Errorf("parsing project document %s: %w", id, err)
	}
	return &p, nil
}

// List returns up to limit projects, most recently created first.
// A non-positive limit defaults to 50.
func (s *Store) List(ctx context.Context, limit int) ([]types.Project, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT document FROM projects ORDER BY created_at DESC, id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []types.Project
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		var p types.Project
		if err := json.Unmarshal([]byte(doc), &p); err != nil {
			return nil, fmt.Errorf("parsing project document: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ExportYAML writes up to limit project records to w as a YAML document.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, limit int) error {
	projects, err := s.List(ctx, limit)
	if err != nil {
		return err
	}

	export := struct {
		Projects []types.Project `yaml:"projects"`
	}{Projects: projects}

	data, err := yaml.Marshal(export)
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
