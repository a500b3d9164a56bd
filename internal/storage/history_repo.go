package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_history_store.go -package=mocks molecuview/internal/storage HistoryStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// Search outcomes recorded in history.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// SearchEntry is one completed search session, successful or not.
// CorrectedFrom holds the original query text when auto-correction was
// applied; Detail carries the failure message for error outcomes.
type SearchEntry struct {
	ID            string
	Query         string
	CorrectedFrom string
	CID           int
	Name          string
	Outcome       string
	Detail        string
	CreatedAt     time.Time
}

// HistoryStore defines the interface for search-history operations.
type HistoryStore interface {
	// Record appends a completed search. A missing ID is generated.
	Record(ctx context.Context, entry *SearchEntry) error
	// Recent lists the most recent entries, newest first.
	Recent(ctx context.Context, limit int) ([]SearchEntry, error)
}

// HistoryRepo provides methods for search-history operations.
// It implements the HistoryStore interface.
type HistoryRepo struct {
	db *sql.DB
}

// NewHistoryRepo creates a new HistoryRepo.
func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Record appends a completed search.
func (r *HistoryRepo) Record(ctx context.Context, entry *SearchEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO searches (id, query, corrected_from, cid, name, outcome, detail)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Query, entry.CorrectedFrom, entry.CID, entry.Name, entry.Outcome, entry.Detail,
	)
	if err != nil {
		return fmt.Errorf("failed to insert search entry: %w", err)
	}
	return nil
}

// Recent lists the most recent entries, newest first.
func (r *HistoryRepo) Recent(ctx context.Context, limit int) ([]SearchEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, query, corrected_from, cid, name, outcome, detail, created_at
		 FROM searches ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []SearchEntry
	for rows.Next() {
		var entry SearchEntry
		var createdAtStr string
		if err := rows.Scan(&entry.ID, &entry.Query, &entry.CorrectedFrom, &entry.CID,
			&entry.Name, &entry.Outcome, &entry.Detail, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan search entry: %w", err)
		}
		entry.CreatedAt, err = parseSQLiteTime(createdAtStr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate search history: %w", err)
	}

	return entries, nil
}

// parseSQLiteTime parses a DATETIME column value. SQLite may return either
// its default format or RFC3339 depending on how the value was written.
func parseSQLiteTime(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}
	return t, nil
}
