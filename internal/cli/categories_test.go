package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_Breakdown(t *testing.T) {
	cmd := &CategoriesCommand{globals: &GlobalFlags{}, version: "dev"}

	output := captureOutput(t, func() {
		err := cmd.executeWithVisits(sampleVisits())
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Website Category Breakdown")
	assert.Contains(t, output, "Development")
	assert.Contains(t, output, "50.0%")
	assert.Contains(t, output, "Search")
	assert.Contains(t, output, "Entertainment")
}

func TestCategories_JSONOutput(t *testing.T) {
	cmd := &CategoriesCommand{globals: &GlobalFlags{JSON: true}, version: "dev"}

	output := captureOutput(t, func() {
		err := cmd.executeWithVisits(sampleVisits())
		require.NoError(t, err)
	})

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &result))

	cats, ok := result["categories"].([]interface{})
	require.True(t, ok)
	assert.Len(t, cats, 3)
}
