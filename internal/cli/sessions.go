package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/runnerr0/hindsight/internal/analytics"
	"github.com/runnerr0/hindsight/internal/history"
)

// Execute implements the go-flags Commander interface for SessionsCommand.
func (c *SessionsCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	visits, err := loadVisits(cfg, c.File)
	if err != nil {
		return err
	}

	gap := time.Duration(cfg.Analysis.SessionGapMinutes) * time.Minute
	if c.Gap != "" {
		gap, err = parseDuration(c.Gap)
		if err != nil {
			return fmt.Errorf("invalid --gap value %q: %w", c.Gap, err)
		}
	}

	return c.executeWithVisits(visits, gap)
}

// executeWithVisits runs the segmentation against a provided dataset (for testing).
func (c *SessionsCommand) executeWithVisits(visits []history.Visit, gap time.Duration) error {
	sessions := analytics.Segment(visits, gap)
	stats := analytics.SummarizeSessions(sessions)

	if c.globals != nil && c.globals.JSON {
		out := map[string]interface{}{
			"gap_minutes": int(gap.Minutes()),
			"stats":       stats,
		}
		if c.List {
			out["sessions"] = sessions
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Session Analysis (gap > %s starts a new session)\n\n", gap)
	fmt.Printf("  Total sessions:   %d\n", stats.Count)
	if stats.Count > 0 {
		fmt.Printf("  Average length:   %.1f page views\n", stats.MeanLength)
		fmt.Printf("  Median length:    %.1f page views\n", stats.MedianLength)
		fmt.Printf("  Longest session:  %d page views\n", stats.LongestLength)
		fmt.Printf("  Shortest session: %d page views\n", stats.ShortestLength)
	}

	if c.List {
		fmt.Println()
		for i, s := range sessions {
			fmt.Printf("%4d. %s to %s  %4d views  (%s)\n",
				i+1,
				s.Start.Local().Format("2006-01-02 15:04"),
				s.End.Local().Format("15:04"),
				s.Visits,
				s.End.Sub(s.Start).Round(time.Minute),
			)
		}
	}

	return nil
}
