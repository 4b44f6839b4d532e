package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/hindsight/internal/analytics"
	"github.com/runnerr0/hindsight/internal/config"
	"github.com/runnerr0/hindsight/internal/export"
	"github.com/runnerr0/hindsight/internal/history"
)

// Execute implements the go-flags Commander interface for ExportCommand.
func (c *ExportCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	visits, err := loadVisits(cfg, c.File)
	if err != nil {
		return err
	}

	return c.executeWithVisits(cfg, visits)
}

// executeWithVisits writes exports for a provided dataset (for testing).
func (c *ExportCommand) executeWithVisits(cfg *config.Config, visits []history.Visit) error {
	opts, err := analysisOptions(cfg, 0, "")
	if err != nil {
		return err
	}
	res := analytics.Analyze(visits, opts)

	dir := cfg.Export.Dir
	if c.Dir != "" {
		dir = c.Dir
	}

	writer := export.NewWriter(dir)
	paths, err := writer.WriteAll(res)
	if err != nil {
		return fmt.Errorf("write exports: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		out := map[string]interface{}{"exports": paths}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, p := range paths {
		fmt.Printf("Wrote %s\n", p)
	}
	return nil
}
