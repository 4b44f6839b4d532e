package storage

import "database/sql"

// migrateV001 creates the initial hindsight schema. Every statement uses
// IF NOT EXISTS for idempotency. The (url, ts) unique index makes
// re-ingesting the same export a no-op.
func migrateV001(tx *sql.Tx) error {
	stmts := []string{
		// ── Tables ──────────────────────────────────────────────

		`CREATE TABLE IF NOT EXISTS visits (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			ts         DATETIME NOT NULL,
			url        TEXT NOT NULL,
			title      TEXT NOT NULL DEFAULT '',
			domain     TEXT NOT NULL DEFAULT '',
			transition TEXT NOT NULL DEFAULT '',
			hour       INTEGER NOT NULL DEFAULT 0,
			weekday    TEXT NOT NULL DEFAULT '',
			date       TEXT NOT NULL DEFAULT '',
			category   TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(url, ts)
		)`,

		`CREATE TABLE IF NOT EXISTS ingests (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			source_file TEXT NOT NULL DEFAULT '',
			total_rows  INTEGER NOT NULL DEFAULT 0,
			kept        INTEGER NOT NULL DEFAULT 0,
			dropped     INTEGER NOT NULL DEFAULT 0,
			inserted    INTEGER NOT NULL DEFAULT 0,
			ingested_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		// ── Indexes ────────────────────────────────────────────

		`CREATE INDEX IF NOT EXISTS idx_visits_ts       ON visits(ts)`,
		`CREATE INDEX IF NOT EXISTS idx_visits_domain   ON visits(domain)`,
		`CREATE INDEX IF NOT EXISTS idx_visits_category ON visits(category)`,
		`CREATE INDEX IF NOT EXISTS idx_visits_date     ON visits(date)`,
		`CREATE INDEX IF NOT EXISTS idx_visits_ts_domain ON visits(ts, domain)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
