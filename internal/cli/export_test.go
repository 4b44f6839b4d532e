package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/hindsight/internal/config"
)

func TestExport_WritesSummaries(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()

	cmd := &ExportCommand{globals: &GlobalFlags{}, version: "dev", Dir: dir}

	output := captureOutput(t, func() {
		err := cmd.executeWithVisits(cfg, sampleVisits())
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Wrote ")

	for _, name := range []string{
		"domain_summary.csv", "time_summary.csv",
		"category_summary.csv", "cleaned_visits.csv",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "%s should exist", name)
	}
}

func TestExport_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()

	cmd := &ExportCommand{globals: &GlobalFlags{JSON: true}, version: "dev", Dir: dir}

	output := captureOutput(t, func() {
		err := cmd.executeWithVisits(cfg, sampleVisits())
		require.NoError(t, err)
	})

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &result))

	exports, ok := result["exports"].([]interface{})
	require.True(t, ok)
	assert.Len(t, exports, 4)
}
