package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Source identifies which front end produced a parse record
type Source string

const (
	SourceCLI  Source = "cli"
	SourceREPL Source = "repl"
	SourceAPI  Source = "api"
	SourceWS   Source = "ws"
	SourceTUI  Source = "tui"
)

// Record is one parse attempt, successful or not
type Record struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Source    Source        `json:"source"`
	Input     string        `json:"input"`
	OK        bool          `json:"ok"`
	Rendered  string        `json:"rendered,omitempty"`
	Error     string        `json:"error,omitempty"`
	Nodes     int           `json:"nodes,omitempty"`
	Depth     int           `json:"depth,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// Filter defines criteria for querying parse records
type Filter struct {
	Source   Source
	OK       *bool
	Since    time.Time
	Until    time.Time
	Contains string
	Limit    int
	Offset   int
}

// Stats summarizes the stored parse history
type Stats struct {
	Total     int64            `json:"total"`
	Succeeded int64            `json:"succeeded"`
	Failed    int64            `json:"failed"`
	BySource  map[string]int64 `json:"by_source"`
	LastParse time.Time        `json:"last_parse,omitempty"`
}

// Store defines the interface for parse-history persistence
type Store interface {
	Save(ctx context.Context, rec *Record) error
	SaveBatch(ctx context.Context, recs []*Record) (int, int, error)
	Query(ctx context.Context, filter Filter) ([]*Record, error)
	Stats(ctx context.Context) (*Stats, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	Path string
}

// DefaultSQLiteConfig returns the default configuration
func DefaultSQLiteConfig() SQLiteConfig {
	return SQLiteConfig{
		Path: "./data/history.db",
	}
}

// NewSQLiteStore creates a new SQLite-based parse-history store
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// WAL mode keeps readers unblocked while the writer flushes batches
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS parses (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		source TEXT NOT NULL,
		input TEXT NOT NULL,
		ok INTEGER NOT NULL,
		rendered TEXT,
		error TEXT,
		nodes INTEGER NOT NULL DEFAULT 0,
		depth INTEGER NOT NULL DEFAULT 0,
		duration_us INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_parses_timestamp ON parses(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_parses_source ON parses(source);
	CREATE INDEX IF NOT EXISTS idx_parses_ok ON parses(ok);
	CREATE INDEX IF NOT EXISTS idx_parses_source_ok ON parses(source, ok);
	`

	_, err := s.db.Exec(schema)
	return err
}

// fill assigns defaults to a record before insertion
func fill(rec *Record) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
}

// Save records one parse attempt
func (s *SQLiteStore) Save(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fill(rec)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO parses (id, timestamp, source, input, ok, rendered, error, nodes, depth, duration_us)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Timestamp, rec.Source, rec.Input, rec.OK, rec.Rendered, rec.Error,
		rec.Nodes, rec.Depth, rec.Duration.Microseconds())

	if err != nil {
		return fmt.Errorf("failed to insert parse record: %w", err)
	}

	return nil
}

// SaveBatch records multiple parse attempts inside one transaction and
// returns accepted and rejected counts
func (s *SQLiteStore) SaveBatch(ctx context.Context, recs []*Record) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, len(recs), fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO parses (id, timestamp, source, input, ok, rendered, error, nodes, depth, duration_us)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, len(recs), fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	var accepted, rejected int
	for _, rec := range recs {
		if rec.Input == "" {
			rejected++
			continue
		}

		fill(rec)

		_, err := stmt.ExecContext(ctx, rec.ID, rec.Timestamp, rec.Source, rec.Input,
			rec.OK, rec.Rendered, rec.Error, rec.Nodes, rec.Depth, rec.Duration.Microseconds())
		if err != nil {
			rejected++
		} else {
			accepted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, len(recs), fmt.Errorf("failed to commit transaction: %w", err)
	}

	return accepted, rejected, nil
}

// Query retrieves parse records matching the filter, newest first
func (s *SQLiteStore) Query(ctx context.Context, filter Filter) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, timestamp, source, input, ok, rendered, error, nodes, depth, duration_us
		FROM parses WHERE 1=1`
	var args []interface{}

	if filter.Source != "" {
		query += " AND source = ?"
		args = append(args, filter.Source)
	}
	if filter.OK != nil {
		query += " AND ok = ?"
		args = append(args, *filter.OK)
	}
	if !filter.Since.IsZero() {
		query += " AND timestamp >= ?"
		args = append(args, filter.Since)
	}
	if !filter.Until.IsZero() {
		query += " AND timestamp <= ?"
		args = append(args, filter.Until)
	}
	if filter.Contains != "" {
		query += " AND input LIKE ?"
		args = append(args, "%"+filter.Contains+"%")
	}

	query += " ORDER BY timestamp DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query parse records: %w", err)
	}
	defer rows.Close()

	var recs []*Record
	for rows.Next() {
		var rec Record
		var rendered, errText sql.NullString
		var durationUS int64

		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Source, &rec.Input, &rec.OK,
			&rendered, &errText, &rec.Nodes, &rec.Depth, &durationUS); err != nil {
			return nil, fmt.Errorf("failed to scan parse record: %w", err)
		}

		if rendered.Valid {
			rec.Rendered = rendered.String
		}
		if errText.Valid {
			rec.Error = errText.String
		}
		rec.Duration = time.Duration(durationUS) * time.Microsecond

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}

// Stats returns summary statistics over the stored history
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &Stats{BySource: make(map[string]int64)}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM parses`).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("failed to count parse records: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM parses WHERE ok = 1`).Scan(&stats.Succeeded); err != nil {
		return nil, fmt.Errorf("failed to count successful parses: %w", err)
	}
	stats.Failed = stats.Total - stats.Succeeded

	rows, err := s.db.QueryContext(ctx, `SELECT source, COUNT(*) FROM parses GROUP BY source`)
	if err != nil {
		return nil, fmt.Errorf("failed to group parse records: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var source string
		var count int64
		if err := rows.Scan(&source, &count); err != nil {
			return nil, err
		}
		stats.BySource[source] = count
	}

	var last sql.NullTime
	s.db.QueryRowContext(ctx, `SELECT MAX(timestamp) FROM parses`).Scan(&last)
	if last.Valid {
		stats.LastParse = last.Time
	}

	return stats, nil
}

// Prune removes records older than the given duration and returns the
// number of deleted rows
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)

	result, err := s.db.ExecContext(ctx, `DELETE FROM parses WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune parse records: %w", err)
	}

	return result.RowsAffected()
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// MemoryStore is an in-memory Store implementation for testing
type MemoryStore struct {
	mu   sync.RWMutex
	recs []*Record
}

// NewMemoryStore creates a new in-memory parse-history store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recs: make([]*Record, 0)}
}

// Save records one parse attempt
func (s *MemoryStore) Save(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fill(rec)
	s.recs = append(s.recs, rec)
	return nil
}

// SaveBatch records multiple parse attempts
func (s *MemoryStore) SaveBatch(ctx context.Context, recs []*Record) (int, int, error) {
	var accepted, rejected int
	for _, rec := range recs {
		if rec.Input == "" {
			rejected++
			continue
		}
		if err := s.Save(ctx, rec); err != nil {
			rejected++
			continue
		}
		accepted++
	}
	return accepted, rejected, nil
}

// Query retrieves parse records matching the filter, newest first
func (s *MemoryStore) Query(ctx context.Context, filter Filter) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*Record
	for i := len(s.recs) - 1; i >= 0; i-- {
		rec := s.recs[i]
		if filter.Source != "" && rec.Source != filter.Source {
			continue
		}
		if filter.OK != nil && rec.OK != *filter.OK {
			continue
		}
		if !filter.Since.IsZero() && rec.Timestamp.Before(filter.Since) {
			continue
		}
		if !filter.Until.IsZero() && rec.Timestamp.After(filter.Until) {
			continue
		}
		if filter.Contains != "" && !strings.Contains(rec.Input, filter.Contains) {
			continue
		}
		results = append(results, rec)
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(results) {
			return nil, nil
		}
		results = results[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(results) {
		results = results[:filter.Limit]
	}

	return results, nil
}

// Stats returns summary statistics
func (s *MemoryStore) Stats(ctx context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &Stats{BySource: make(map[string]int64)}
	for _, rec := range s.recs {
		stats.Total++
		if rec.OK {
			stats.Succeeded++
		} else {
			stats.Failed++
		}
		stats.BySource[string(rec.Source)]++
		if rec.Timestamp.After(stats.LastParse) {
			stats.LastParse = rec.Timestamp
		}
	}

	return stats, nil
}

// Prune removes records older than the given duration
func (s *MemoryStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	kept := make([]*Record, 0, len(s.recs))
	var deleted int64

	for _, rec := range s.recs {
		if rec.Timestamp.After(cutoff) {
			kept = append(kept, rec)
		} else {
			deleted++
		}
	}
	s.recs = kept

	return deleted, nil
}

// Close is a no-op for the memory store
func (s *MemoryStore) Close() error {
	return nil
}
