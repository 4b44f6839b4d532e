package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/runnerr0/hindsight/internal/history"
	"github.com/runnerr0/hindsight/internal/storage"
)

// Execute implements the go-flags Commander interface for IngestCommand.
func (c *IngestCommand) Execute(args []string) error {
	file := c.File
	if file == "" && len(args) > 0 {
		file = args[0]
	}
	if file == "" {
		return fmt.Errorf("--file is required for ingest command")
	}

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

	loader := history.NewLoader(cfg.Ruleset())
	visits, stats, err := loader.LoadFile(file)
	if err != nil {
		return fmt.Errorf("load export: %w", err)
	}
	log.Debug("export parsed", "file", file, "rows", stats.TotalRows, "kept", stats.Kept)

	return c.executeWithStore(store, file, visits, stats)
}

// executeWithStore runs the ingest against a provided store (for testing).
func (c *IngestCommand) executeWithStore(store storage.Store, file string, visits []history.Visit, stats *history.LoadStats) error {
	ctx := context.Background()

	inserted, err := store.AddVisits(ctx, visits)
	if err != nil {
		return fmt.Errorf("store visits: %w", err)
	}
	if err := store.RecordIngest(ctx, file, stats, inserted); err != nil {
		return err
	}

	if c.globals != nil && c.globals.JSON {
		out := map[string]interface{}{
			"file":           file,
			"total_rows":     stats.TotalRows,
			"kept":           stats.Kept,
			"dropped":        stats.Dropped(),
			"inserted":       inserted,
			"unique_urls":    stats.UniqueURLs,
			"unique_domains": stats.UniqueDomains,
			"first_date":     stats.FirstDate,
			"last_date":      stats.LastDate,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Ingested %s\n", file)
	fmt.Printf("  Rows read:      %d\n", stats.TotalRows)
	fmt.Printf("  Kept:           %d\n", stats.Kept)
	fmt.Printf("  Dropped:        %d\n", stats.Dropped())
	fmt.Printf("  Stored (new):   %d\n", inserted)
	fmt.Printf("  Unique domains: %d\n", stats.UniqueDomains)
	if stats.FirstDate != "" {
		fmt.Printf("  Date range:     %s to %s\n", stats.FirstDate, stats.LastDate)
	}

	return nil
}
