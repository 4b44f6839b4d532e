package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/hindsight/internal/analytics"
	"github.com/runnerr0/hindsight/internal/history"
)

// Execute implements the go-flags Commander interface for DomainsCommand.
func (c *DomainsCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	visits, err := loadVisits(cfg, c.File)
	if err != nil {
		return err
	}

	top := c.Top
	if top <= 0 {
		top = cfg.Analysis.TopDomains
	}

	return c.executeWithVisits(visits, top)
}

// executeWithVisits runs the ranking against a provided dataset (for testing).
func (c *DomainsCommand) executeWithVisits(visits []history.Visit, top int) error {
	domains := analytics.TopDomains(visits, top)

	if c.globals != nil && c.globals.JSON {
		out := map[string]interface{}{
			"total_visits": len(visits),
			"domains":      domains,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Top %d Most Visited Domains\n\n", len(domains))
	for i, d := range domains {
		fmt.Printf("%3d. %-35s %6d visits (%4.1f%%)\n", i+1, d.Domain, d.Visits, d.Percent)
	}

	return nil
}
