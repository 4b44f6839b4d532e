package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/hindsight/internal/analytics"
	"github.com/runnerr0/hindsight/internal/history"
)

// Execute implements the go-flags Commander interface for CategoriesCommand.
func (c *CategoriesCommand) Execute(args []string) error {
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
func (c *CategoriesCommand) executeWithVisits(visits []history.Visit) error {
	cats := analytics.Categories(visits)

	if c.globals != nil && c.globals.JSON {
		out := map[string]interface{}{
			"total_visits": len(visits),
			"categories":   cats,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println("Website Category Breakdown")
	fmt.Println()
	for _, cat := range cats {
		fmt.Printf("  %-20s %6d visits (%4.1f%%)\n", cat.Category, cat.Visits, cat.Percent)
	}

	return nil
}
