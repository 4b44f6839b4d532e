package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/hindsight/internal/analytics"
	"github.com/runnerr0/hindsight/internal/history"
)

// Execute implements the go-flags Commander interface for TransitionsCommand.
func (c *TransitionsCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	visits, err := loadVisits(cfg, c.File)
	if err != nil {
		return err
	}

	return c.executeWithVisits(visits)
}

// executeWithVisits runs the breakdown against a provided dataset (for testing).
func (c *TransitionsCommand) executeWithVisits(visits []history.Visit) error {
	trans := analytics.Transitions(visits)

	if c.globals != nil && c.globals.JSON {
		out := map[string]interface{}{
			"total_visits": len(visits),
			"transitions":  trans,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println("Navigation Transition Breakdown")
	fmt.Println()
	for _, t := range trans {
		fmt.Printf("  %-15s %6d (%4.1f%%)\n", t.Transition, t.Visits, t.Percent)
	}

	return nil
}
