package cli

import (
	"bytes"
	"database/sql"
	"io"
	"os"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/hindsight/internal/history"
	"github.com/runnerr0/hindsight/internal/storage"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// setupTestStore creates an in-memory migrated store for command tests.
func setupTestStore(t *testing.T) (*storage.SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	runner := storage.NewMigrationRunner(db)
	require.NoError(t, runner.Run())

	store, err := storage.NewSQLiteStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, db
}

// sampleVisits builds a small dataset: three domains over two days, with a
// morning burst, a late-morning visit, and a next-day visit.
func sampleVisits() []history.Visit {
	base := time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)
	mk := func(domain, category, transition string, offset time.Duration) history.Visit {
		ts := base.Add(offset)
		return history.Visit{
			URL:        "https://" + domain + "/page",
			Title:      "Page on " + domain,
			Domain:     domain,
			Category:   category,
			Transition: transition,
			Time:       ts,
			Hour:       ts.Hour(),
			Weekday:    ts.Weekday().String(),
			Date:       ts.Format("2006-01-02"),
		}
	}
	return []history.Visit{
		mk("github.com", "Development", "link", 0),
		mk("github.com", "Development", "link", 5*time.Minute),
		mk("github.com", "Development", "typed", 10*time.Minute),
		mk("google.com", "Search", "typed", 12*time.Minute),
		mk("google.com", "Search", "link", 2*time.Hour),
		mk("youtube.com", "Entertainment", "link", 26*time.Hour),
	}
}
