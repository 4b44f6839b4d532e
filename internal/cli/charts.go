package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/hindsight/internal/analytics"
	"github.com/runnerr0/hindsight/internal/chart"
	"github.com/runnerr0/hindsight/internal/config"
	"github.com/runnerr0/hindsight/internal/history"
)

// Execute implements the go-flags Commander interface for ChartsCommand.
func (c *ChartsCommand) Execute(args []string) error {
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

// executeWithVisits renders charts for a provided dataset (for testing).
func (c *ChartsCommand) executeWithVisits(cfg *config.Config, visits []history.Visit) error {
	opts, err := analysisOptions(cfg, 0, "")
	if err != nil {
		return err
	}
	res := analytics.Analyze(visits, opts)

	dir := cfg.Charts.Dir
	if c.Dir != "" {
		dir = c.Dir
	}

	renderer := chart.NewRenderer(dir, cfg.Charts.Width, cfg.Charts.Height)
	paths, err := renderer.RenderAll(res)
	if err != nil {
		return fmt.Errorf("render charts: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		out := map[string]interface{}{"charts": paths}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, p := range paths {
		fmt.Printf("Wrote %s\n", p)
	}
	return nil
}
