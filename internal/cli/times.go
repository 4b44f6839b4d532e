package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/hindsight/internal/analytics"
	"github.com/runnerr0/hindsight/internal/history"
)

// Execute implements the go-flags Commander interface for TimesCommand.
func (c *TimesCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	visits, err := loadVisits(cfg, c.File)
	if err != nil {
		return err
	}

	peak := c.Peak
	if peak <= 0 {
		peak = cfg.Analysis.PeakHours
	}
	days := c.Days
	if days <= 0 {
		days = cfg.Analysis.BusiestDays
	}

	return c.executeWithVisits(visits, peak, days)
}

// executeWithVisits runs the tabulation against a provided dataset (for testing).
func (c *TimesCommand) executeWithVisits(visits []history.Visit, peak, days int) error {
	tp := analytics.ComputeTimePatterns(visits)

	if c.globals != nil && c.globals.JSON {
		out := map[string]interface{}{
			"hourly":       tp.Hourly,
			"daily":        tp.Daily,
			"weekdays":     tp.Weekdays,
			"peak_hours":   tp.PeakHours(peak),
			"busiest_days": tp.BusiestDays(days),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println("Peak browsing hours:")
	for _, h := range tp.PeakHours(peak) {
		fmt.Printf("  %02d:00  %5d visits\n", h.Hour, h.Visits)
	}

	fmt.Println()
	fmt.Println("Most active days:")
	for _, d := range tp.BusiestDays(days) {
		fmt.Printf("  %s  %5d visits\n", d.Date, d.Visits)
	}

	fmt.Println()
	fmt.Println("By day of week:")
	for _, w := range tp.Weekdays {
		fmt.Printf("  %-10s %5d visits\n", w.Weekday, w.Visits)
	}

	return nil
}
