package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomains_Ranking(t *testing.T) {
	cmd := &DomainsCommand{globals: &GlobalFlags{}, version: "dev"}

	output := captureOutput(t, func() {
		err := cmd.executeWithVisits(sampleVisits(), 15)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Top 3 Most Visited Domains")
	assert.Contains(t, output, "github.com")
	assert.Contains(t, output, "50.0%")

	githubIdx := strings.Index(output, "github.com")
	googleIdx := strings.Index(output, "google.com")
	assert.Less(t, githubIdx, googleIdx, "github.com (3) should rank above google.com (2)")
}

func TestDomains_TopCut(t *testing.T) {
	cmd := &DomainsCommand{globals: &GlobalFlags{}, version: "dev"}

	output := captureOutput(t, func() {
		err := cmd.executeWithVisits(sampleVisits(), 1)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "github.com")
	assert.NotContains(t, output, "youtube.com")
}

func TestDomains_JSONOutput(t *testing.T) {
	cmd := &DomainsCommand{globals: &GlobalFlags{JSON: true}, version: "dev"}

	output := captureOutput(t, func() {
		err := cmd.executeWithVisits(sampleVisits(), 15)
		require.NoError(t, err)
	})

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &result))

	assert.EqualValues(t, 6, result["total_visits"])
	domains, ok := result["domains"].([]interface{})
	require.True(t, ok)
	assert.Len(t, domains, 3)
}
