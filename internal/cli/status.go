package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/runnerr0/hindsight/internal/config"
	"github.com/runnerr0/hindsight/internal/storage"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version           string            `json:"version"`
	DatabasePath      string            `json:"database_path"`
	DatabaseSizeBytes int64             `json:"database_size_bytes"`
	TotalVisits       int64             `json:"total_visits"`
	UniqueDomains     int64             `json:"unique_domains"`
	UniqueURLs        int64             `json:"unique_urls"`
	OldestVisit       string            `json:"oldest_visit,omitempty"`
	NewestVisit       string            `json:"newest_visit,omitempty"`
	SessionGapMinutes int               `json:"session_gap_minutes"`
	TopDomains        []domainCountJSON `json:"top_domains"`
}

type domainCountJSON struct {
	Domain string `json:"domain"`
	Count  int64  `json:"count"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	store, db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}

	return c.executeWithStore(store, db, cfg, dbPath)
}

// executeWithStore runs status against a provided store and db (for testing).
func (c *StatusCommand) executeWithStore(store *storage.SQLiteStore, db *sql.DB, cfg *config.Config, dbPath string) error {
	ctx := context.Background()

	stats, err := store.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	dbSize := getDatabaseSize(db, dbPath)

	if c.globals != nil && c.globals.JSON {
		return c.printStatusJSON(stats, cfg, dbPath, dbSize)
	}
	return c.printStatusHuman(stats, cfg, dbPath, dbSize)
}

func (c *StatusCommand) printStatusHuman(stats *storage.Stats, cfg *config.Config, dbPath string, dbSize int64) error {
	fmt.Println("Hindsight Status")
	fmt.Println("================")
	fmt.Printf("Version:       %s\n", c.version)
	fmt.Printf("Database:      %s (%s)\n", dbPath, formatBytes(dbSize))
	fmt.Printf("Visits:        %s\n", formatNumber(stats.TotalVisits))
	fmt.Printf("Domains:       %s\n", formatNumber(stats.UniqueDomains))
	fmt.Printf("URLs:          %s\n", formatNumber(stats.UniqueURLs))

	if stats.TotalVisits > 0 {
		fmt.Printf("Oldest:        %s\n", stats.OldestVisit.Local().Format("2006-01-02"))
		fmt.Printf("Newest:        %s\n", stats.NewestVisit.Local().Format("2006-01-02"))
	}

	fmt.Printf("Session gap:   %d minutes\n", cfg.Analysis.SessionGapMinutes)

	if len(stats.TopDomains) > 0 {
		fmt.Println()
		fmt.Println("Top Domains:")
		for _, d := range stats.TopDomains {
			fmt.Printf("  %-30s %s\n", d.Domain, formatNumber(d.Count))
		}
	}

	return nil
}

func (c *StatusCommand) printStatusJSON(stats *storage.Stats, cfg *config.Config, dbPath string, dbSize int64) error {
	out := statusJSON{
		Version:           c.version,
		DatabasePath:      dbPath,
		DatabaseSizeBytes: dbSize,
		TotalVisits:       stats.TotalVisits,
		UniqueDomains:     stats.UniqueDomains,
		UniqueURLs:        stats.UniqueURLs,
		SessionGapMinutes: cfg.Analysis.SessionGapMinutes,
		TopDomains:        make([]domainCountJSON, len(stats.TopDomains)),
	}

	if stats.TotalVisits > 0 {
		out.OldestVisit = stats.OldestVisit.UTC().Format(time.RFC3339)
		out.NewestVisit = stats.NewestVisit.UTC().Format(time.RFC3339)
	}

	for i, d := range stats.TopDomains {
		out.TopDomains[i] = domainCountJSON{Domain: d.Domain, Count: d.Count}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// getDatabaseSize returns the database file size in bytes. For on-disk
// databases, it uses os.Stat. For in-memory databases, it queries
// page_count * page_size.
func getDatabaseSize(db *sql.DB, dbPath string) int64 {
	if info, err := os.Stat(dbPath); err == nil {
		return info.Size()
	}

	var pageCount, pageSize int64
	if err := db.QueryRow("PRAGMA page_count").Scan(&pageCount); err != nil {
		return 0
	}
	if err := db.QueryRow("PRAGMA page_size").Scan(&pageSize); err != nil {
		return 0
	}
	return pageCount * pageSize
}

// formatBytes formats a byte count into a human-readable string.
func formatBytes(b int64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// formatNumber formats an int64 with comma separators.
func formatNumber(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
		if len(s) > remainder {
			result.WriteString(",")
		}
	}
	for i := remainder; i < len(s); i += 3 {
		if i > remainder {
			result.WriteString(",")
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
