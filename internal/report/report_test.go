package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/hindsight/internal/analytics"
	"github.com/runnerr0/hindsight/internal/history"
)

func sampleResult() *analytics.Result {
	base := time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)
	mk := func(domain, category, transition string, offset time.Duration) history.Visit {
		ts := base.Add(offset)
		return history.Visit{
			URL:        "https://" + domain + "/page",
			Domain:     domain,
			Category:   category,
			Transition: transition,
			Time:       ts,
			Hour:       ts.Hour(),
			Weekday:    ts.Weekday().String(),
			Date:       ts.Format("2006-01-02"),
		}
	}
	visits := []history.Visit{
		mk("github.com", "Development", "link", 0),
		mk("github.com", "Development", "link", 5*time.Minute),
		mk("github.com", "Development", "typed", 10*time.Minute),
		mk("google.com", "Search", "typed", 12*time.Minute),
		mk("google.com", "Search", "link", 2*time.Hour),
		mk("youtube.com", "Entertainment", "link", 26*time.Hour),
	}
	return analytics.Analyze(visits, analytics.Options{})
}

func TestRenderFullReport(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Render(sampleResult())

	out := buf.String()
	require.NotEmpty(t, out)

	assert.Contains(t, out, "Browsing History Report")
	assert.Contains(t, out, "Key Metrics")
	assert.Contains(t, out, "Time Patterns")
	assert.Contains(t, out, "Categories")
	assert.Contains(t, out, "Navigation Transitions")
	assert.Contains(t, out, "Sessions")

	assert.Contains(t, out, "github.com")
	assert.Contains(t, out, "Development")
	assert.Contains(t, out, "Thursday")
}

func TestKeyMetricsSection(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	res := sampleResult()
	r.KeyMetrics(res.Insights)

	out := buf.String()
	assert.Contains(t, out, "Total visits")
	assert.Contains(t, out, "6")
	assert.Contains(t, out, "2025-02-20 to 2025-02-21 (1 days)")
	assert.Contains(t, out, "09:00 (4 visits)")
}

func TestTopDomainsSectionEmpty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).TopDomains(nil, 0)

	assert.Contains(t, buf.String(), "(no data)")
}

func TestSessionsSectionEmpty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Sessions(&analytics.SessionStats{})

	out := buf.String()
	assert.Contains(t, out, "Total sessions")
	assert.NotContains(t, out, "Average length")
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "0", formatInt(0))
	assert.Equal(t, "999", formatInt(999))
	assert.Equal(t, "1,000", formatInt(1000))
	assert.Equal(t, "1,234,567", formatInt(1234567))
}
