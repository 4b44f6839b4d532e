package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"

	"github.com/runnerr0/hindsight/internal/analytics"
	"github.com/runnerr0/hindsight/internal/config"
	"github.com/runnerr0/hindsight/internal/history"
	"github.com/runnerr0/hindsight/internal/storage"
)

// loadConfig resolves the config for a command: the --config path when
// given, the default path (created on first run) otherwise. It also applies
// the logging level.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if globals != nil && globals.Config != "" {
		cfg, err = config.LoadOrCreateAt(globals.Config)
	} else {
		cfg, err = config.LoadOrCreate()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.Logging.Level
	if globals != nil && globals.Verbose {
		level = "debug"
	}
	if lvl, perr := log.ParseLevel(level); perr == nil {
		log.SetLevel(lvl)
	}

	return cfg, nil
}

// openStore opens the configured SQLite database, runs migrations, and
// returns a ready-to-use store and the underlying *sql.DB.
func openStore(cfg *config.Config) (*storage.SQLiteStore, *sql.DB, error) {
	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return nil, nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	runner := storage.NewMigrationRunner(db)
	if err := runner.Run(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	store, err := storage.NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("create store: %w", err)
	}

	return store, db, nil
}

// loadVisits resolves the dataset a command analyzes: a CSV export when
// --file is given, the stored visits otherwise.
func loadVisits(cfg *config.Config, file string) ([]history.Visit, error) {
	if file != "" {
		loader := history.NewLoader(cfg.Ruleset())
		visits, stats, err := loader.LoadFile(file)
		if err != nil {
			return nil, err
		}
		log.Debug("loaded export", "file", file, "kept", stats.Kept, "dropped", stats.Dropped())
		return visits, nil
	}

	store, db, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	defer store.Close()

	visits, err := store.ListVisits(context.Background(), storage.VisitQuery{})
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	if len(visits) == 0 {
		return nil, fmt.Errorf("no visits stored; run 'hindsight ingest --file <export.csv>' first")
	}
	return visits, nil
}

// analysisOptions builds analytics options from config plus flag overrides.
func analysisOptions(cfg *config.Config, top int, gap string) (analytics.Options, error) {
	opts := analytics.Options{
		TopDomains: cfg.Analysis.TopDomains,
		SessionGap: time.Duration(cfg.Analysis.SessionGapMinutes) * time.Minute,
	}
	if top > 0 {
		opts.TopDomains = top
	}
	if gap != "" {
		d, err := parseDuration(gap)
		if err != nil {
			return opts, fmt.Errorf("invalid --gap value %q: %w", gap, err)
		}
		opts.SessionGap = d
	}
	return opts, nil
}

// parseDuration parses a human-friendly duration string like "30m", "1h", "2d".
func parseDuration(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration: %q", s)
	}

	suffix := s[len(s)-1]
	numStr := s[:len(s)-1]

	n, err := strconv.Atoi(numStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration: %q", s)
	}

	switch suffix {
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 's':
		return time.Duration(n) * time.Second, nil
	default:
		return 0, fmt.Errorf("invalid duration: %q (use d, h, m, or s suffix)", s)
	}
}
