package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/hindsight/internal/analytics"
	"github.com/runnerr0/hindsight/internal/chart"
	"github.com/runnerr0/hindsight/internal/config"
	"github.com/runnerr0/hindsight/internal/export"
	"github.com/runnerr0/hindsight/internal/history"
	"github.com/runnerr0/hindsight/internal/report"
)

// Execute implements the go-flags Commander interface for ReportCommand.
func (c *ReportCommand) Execute(args []string) error {
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

// executeWithVisits runs the report against a provided dataset (for testing).
func (c *ReportCommand) executeWithVisits(cfg *config.Config, visits []history.Visit) error {
	opts, err := analysisOptions(cfg, c.Top, c.Gap)
	if err != nil {
		return err
	}

	res := analytics.Analyze(visits, opts)

	if c.globals != nil && c.globals.JSON {
		if err := c.printJSON(res); err != nil {
			return err
		}
	} else {
		r := report.New(os.Stdout)
		r.PeakHours = cfg.Analysis.PeakHours
		r.BusiestDays = cfg.Analysis.BusiestDays
		r.Render(res)
	}

	if c.Charts {
		dir := cfg.Charts.Dir
		if c.ChartsDir != "" {
			dir = c.ChartsDir
		}
		renderer := chart.NewRenderer(dir, cfg.Charts.Width, cfg.Charts.Height)
		paths, err := renderer.RenderAll(res)
		if err != nil {
			return fmt.Errorf("render charts: %w", err)
		}
		for _, p := range paths {
			fmt.Printf("Wrote %s\n", p)
		}
	}

	if c.Export {
		dir := cfg.Export.Dir
		if c.ExportDir != "" {
			dir = c.ExportDir
		}
		writer := export.NewWriter(dir)
		paths, err := writer.WriteAll(res)
		if err != nil {
			return fmt.Errorf("write exports: %w", err)
		}
		for _, p := range paths {
			fmt.Printf("Wrote %s\n", p)
		}
	}

	return nil
}

// reportJSON is the JSON output structure for the report command.
type reportJSON struct {
	Insights    *analytics.Insights         `json:"insights"`
	TopDomains  []analytics.DomainCount     `json:"top_domains"`
	Hourly      [24]int                     `json:"hourly"`
	Daily       []analytics.DateCount       `json:"daily"`
	Weekdays    []analytics.WeekdayCount    `json:"weekdays"`
	Categories  []analytics.CategoryCount   `json:"categories"`
	Transitions []analytics.TransitionCount `json:"transitions"`
	Sessions    *analytics.SessionStats     `json:"sessions"`
}

func (c *ReportCommand) printJSON(res *analytics.Result) error {
	out := reportJSON{
		Insights:    res.Insights,
		TopDomains:  res.Domains,
		Hourly:      res.TimePatterns.Hourly,
		Daily:       res.TimePatterns.Daily,
		Weekdays:    res.TimePatterns.Weekdays,
		Categories:  res.Categories,
		Transitions: res.Transitions,
		Sessions:    res.SessionStats,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
