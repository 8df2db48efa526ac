// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists completed analysis runs in a local SQLite
// database so past runs can be listed and searched. The analysis core
// itself stays stateless; saving is opt-in from the command layer.
//
// Search uses the FTS5 extension, which the SQLite driver only compiles
// in under the sqlite_fts5 build tag. Build and test through mage, or
// pass -tags sqlite_fts5 to the go tool directly.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/research-assistant/pkg/types"
)

const dbFile = "history.db"

// Store manages the analysis history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Run is one saved analysis record.
type Run struct {
	ID            string    `json:"id" yaml:"id"`
	ProjectName   string    `json:"project_name" yaml:"project_name"`
	ProjectPath   string    `json:"project_path" yaml:"project_path"`
	FilesAnalyzed int       `json:"files_analyzed" yaml:"files_analyzed"`
	Technologies  []string  `json:"technologies" yaml:"technologies"`
	Queries       []string  `json:"queries,omitempty" yaml:"queries,omitempty"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
}

// NewStore opens or creates the history database at dir/history.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "history"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
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
		`CREATE TABLE IF NOT EXISTS runs (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			project_name TEXT NOT NULL,
			project_path TEXT,
			files_analyzed INTEGER,
			technologies TEXT,
			queries TEXT,
			search_text TEXT,
			created_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_project ON runs(project_name)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='runs_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE runs_fts USING fts5(search_text, content=runs, content_rowid=rowid)`,
			`CREATE TRIGGER runs_ai AFTER INSERT ON runs BEGIN
				INSERT INTO runs_fts(rowid, search_text) VALUES (new.rowid, new.search_text);
			END`,
			`CREATE TRIGGER runs_ad AFTER DELETE ON runs BEGIN
				INSERT INTO runs_fts(runs_fts, rowid, search_text) VALUES('delete', old.rowid, old.search_text);
			END`,
			`CREATE TRIGGER runs_au AFTER UPDATE ON runs BEGIN
				INSERT INTO runs_fts(runs_fts, rowid, search_text) VALUES('delete', old.rowid, old.search_text);
				INSERT INTO runs_fts(rowid, search_text) VALUES (new.rowid, new.search_text);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Save records one completed analysis and its generated queries, returning
// the run ID.
func (s *Store) Save(ctx context.Context, a *types.ProjectAnalysis, queries []string) (string, error) {
	createdAt := a.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	id := fmt.Sprintf("%s-%s", slug(a.ProjectName), createdAt.Format("20060102-150405"))

	techNames := a.TechnologyNames()
	techJSON, _ := json.Marshal(techNames)
	queriesJSON, _ := json.Marshal(queries)

	searchText := strings.Join(append(append([]string{a.ProjectName}, techNames...), queries...), " ")

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, project_name, project_path, files_analyzed, technologies, queries, search_text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			project_path=excluded.project_path, files_analyzed=excluded.files_analyzed,
			technologies=excluded.technologies, queries=excluded.queries,
			search_text=excluded.search_text`,
		id, a.ProjectName, a.ProjectPath, a.FilesAnalyzed,
		string(techJSON), string(queriesJSON), searchText,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("saving run: %w", err)
	}
	return id, nil
}

// List returns the most recent runs, newest first. A limit of 0 uses the
// store default.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_name, project_path, files_analyzed, technologies, queries, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()
	return scanRuns(rows)
}

// Search returns runs whose project name, technologies, or queries match
// the FTS query, newest first.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.project_name, r.project_path, r.files_analyzed, r.technologies, r.queries, r.created_at
		 FROM runs_fts
		 JOIN runs r ON r.rowid = runs_fts.rowid
		 WHERE runs_fts MATCH ?
		 ORDER BY r.created_at DESC LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching runs: %w", err)
	}
	defer rows.Close()
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var (
			r           Run
			techJSON    sql.NullString
			queriesJSON sql.NullString
			createdAt   string
		)
		if err := rows.Scan(&r.ID, &r.ProjectName, &r.ProjectPath, &r.FilesAnalyzed,
			&techJSON, &queriesJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if techJSON.Valid {
			json.Unmarshal([]byte(techJSON.String), &r.Technologies)
		}
		if queriesJSON.Valid {
			json.Unmarshal([]byte(queriesJSON.String), &r.Queries)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			r.CreatedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// slug lowercases a name and replaces runs of non-alphanumerics with a
// single hyphen.
func slug(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
