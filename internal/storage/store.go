package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/runnerr0/hindsight/internal/history"
)

// Store defines the interface for hindsight data operations.
type Store interface {
	AddVisits(ctx context.Context, visits []history.Visit) (int64, error)
	ListVisits(ctx context.Context, query VisitQuery) ([]history.Visit, error)
	RecordIngest(ctx context.Context, sourceFile string, stats *history.LoadStats, inserted int64) error
	GetStats(ctx context.Context) (*Stats, error)
	PurgeAll(ctx context.Context) error
	Close() error
}

// SQLiteStore implements Store backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB

	// Prepared statements
	insertVisit  *sql.Stmt
	insertIngest *sql.Stmt
}

// NewSQLiteStore creates a new SQLiteStore from an already-opened and
// migrated database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}

	if err := s.prepareStatements(); err != nil {
		return nil, fmt.Errorf("prepare statements: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.insertVisit, err = s.db.Prepare(`
		INSERT OR IGNORE INTO visits (ts, url, title, domain, transition, hour, weekday, date, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}

	s.insertIngest, err = s.db.Prepare(`
		INSERT INTO ingests (source_file, total_rows, kept, dropped, inserted)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}

	return nil
}

// parseTimestamp tries several common SQLite timestamp formats.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp: %s", s)
}

// AddVisits inserts cleaned visits in a single transaction and returns how
// many rows were actually inserted. Duplicates on (url, ts) are ignored, so
// re-ingesting the same export is idempotent.
func (s *SQLiteStore) AddVisits(ctx context.Context, visits []history.Visit) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt := tx.StmtContext(ctx, s.insertVisit)

	var inserted int64
	for _, v := range visits {
		res, err := stmt.ExecContext(ctx,
			v.Time.UTC().Format(time.RFC3339), v.URL, v.Title, v.Domain,
			v.Transition, v.Hour, v.Weekday, v.Date, v.Category,
		)
		if err != nil {
			return 0, fmt.Errorf("insert visit: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}

// RecordIngest logs one ingest run for the status command.
func (s *SQLiteStore) RecordIngest(ctx context.Context, sourceFile string, stats *history.LoadStats, inserted int64) error {
	_, err := s.insertIngest.ExecContext(ctx,
		sourceFile, stats.TotalRows, stats.Kept, stats.Dropped(), inserted,
	)
	if err != nil {
		return fmt.Errorf("record ingest: %w", err)
	}
	return nil
}

// ListVisits returns stored visits matching the query, ordered by timestamp
// ascending (the order the aggregators expect).
func (s *SQLiteStore) ListVisits(ctx context.Context, q VisitQuery) ([]history.Visit, error) {
	var clauses []string
	var args []interface{}

	baseQuery := `
		SELECT ts, url, title, domain, transition, hour, weekday, date, category
		FROM visits
	`

	if q.Domain != "" {
		clauses = append(clauses, "domain = ?")
		args = append(args, q.Domain)
	}
	if q.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, q.Category)
	}
	if !q.Since.IsZero() {
		clauses = append(clauses, "ts >= ?")
		args = append(args, q.Since.UTC().Format(time.RFC3339))
	}
	if !q.Until.IsZero() {
		clauses = append(clauses, "ts <= ?")
		args = append(args, q.Until.UTC().Format(time.RFC3339))
	}

	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	fullQuery := baseQuery + where + " ORDER BY ts ASC"
	if q.Limit > 0 {
		fullQuery += " LIMIT ? OFFSET ?"
		args = append(args, q.Limit, q.Offset)
	}

	rows, err := s.db.QueryContext(ctx, fullQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("query visits: %w", err)
	}
	defer rows.Close()

	var visits []history.Visit
	for rows.Next() {
		var v history.Visit
		var tsStr string
		if err := rows.Scan(
			&tsStr, &v.URL, &v.Title, &v.Domain, &v.Transition,
			&v.Hour, &v.Weekday, &v.Date, &v.Category,
		); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.Time, _ = parseTimestamp(tsStr)
		visits = append(visits, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Return empty slice rather than nil
	if visits == nil {
		visits = []history.Visit{}
	}

	return visits, nil
}

// PurgeAll deletes all visits and ingest records.
func (s *SQLiteStore) PurgeAll(ctx context.Context) error {
	stmts := []string{
		"DELETE FROM visits",
		"DELETE FROM ingests",
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("purge (%s): %w", stmt, err)
		}
	}
	return nil
}

// GetStats returns aggregate statistics about the database.
func (s *SQLiteStore) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(DISTINCT domain), COUNT(DISTINCT url) FROM visits",
	).Scan(&stats.TotalVisits, &stats.UniqueDomains, &stats.UniqueURLs)
	if err != nil {
		return nil, fmt.Errorf("count visits: %w", err)
	}

	// Oldest and newest (handle empty DB)
	if stats.TotalVisits > 0 {
		var oldestStr, newestStr string
		err = s.db.QueryRowContext(ctx, "SELECT MIN(ts), MAX(ts) FROM visits").Scan(&oldestStr, &newestStr)
		if err != nil {
			return nil, fmt.Errorf("visit time range: %w", err)
		}
		stats.OldestVisit, _ = parseTimestamp(oldestStr)
		stats.NewestVisit, _ = parseTimestamp(newestStr)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT domain, COUNT(*) as cnt FROM visits GROUP BY domain ORDER BY cnt DESC, domain ASC LIMIT 10",
	)
	if err != nil {
		return nil, fmt.Errorf("top domains: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dc DomainCount
		if err := rows.Scan(&dc.Domain, &dc.Count); err != nil {
			return nil, err
		}
		stats.TopDomains = append(stats.TopDomains, dc)
	}

	return stats, rows.Err()
}

// Close releases all prepared statements. The underlying *sql.DB is NOT
// closed — that is the caller's responsibility.
func (s *SQLiteStore) Close() error {
	stmts := []*sql.Stmt{s.insertVisit, s.insertIngest}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}
	return nil
}
