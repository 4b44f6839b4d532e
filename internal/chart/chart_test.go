package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/hindsight/internal/analytics"
	"github.com/runnerr0/hindsight/internal/history"
)

func sampleResult() *analytics.Result {
	base := time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)
	mk := func(domain, category string, offset time.Duration) history.Visit {
		ts := base.Add(offset)
		return history.Visit{
			URL:      "https://" + domain + "/page",
			Domain:   domain,
			Category: category,
			Time:     ts,
			Hour:     ts.Hour(),
			Weekday:  ts.Weekday().String(),
			Date:     ts.Format("2006-01-02"),
		}
	}
	visits := []history.Visit{
		mk("github.com", "Development", 0),
		mk("github.com", "Development", 5*time.Minute),
		mk("github.com", "Development", 10*time.Minute),
		mk("google.com", "Search", 12*time.Minute),
		mk("google.com", "Search", 2*time.Hour),
		mk("youtube.com", "Entertainment", 26*time.Hour),
	}
	return analytics.Analyze(visits, analytics.Options{})
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, 800, 400)

	paths, err := r.RenderAll(sampleResult())
	require.NoError(t, err)
	require.Len(t, paths, 5)

	for _, name := range []string{
		"top_domains.png", "hourly_activity.png", "categories.png",
		"daily_activity.png", "session_lengths.png",
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "%s should exist", name)
		assert.Greater(t, info.Size(), int64(0), "%s should not be empty", name)
	}
}

func TestRenderAllEmptyResult(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, 800, 400)

	paths, err := r.RenderAll(&analytics.Result{})
	require.NoError(t, err)
	assert.Empty(t, paths)

	// The directory is still created.
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRenderersSkipEmptyInput(t *testing.T) {
	r := NewRenderer(t.TempDir(), 800, 400)

	path, err := r.TopDomains(nil)
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = r.HourlyActivity(nil)
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = r.Categories(nil)
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = r.DailyActivity(nil)
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = r.SessionLengths(nil)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer("out", 0, 0)
	assert.Equal(t, DefaultWidth, r.Width)
	assert.Equal(t, DefaultHeight, r.Height)
}
