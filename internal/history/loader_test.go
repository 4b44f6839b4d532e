package history

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `Summary,,,,
metric,value,,,
total_events,9,,,
,,,,
Browsing,,,,
url,title,eventtimeutc,eventtime,transition
https://github.com/runnerr0/hindsight,hindsight repo,2025-02-20 09:15:00,2025-02-20 10:15:00,link
https://www.google.com/search?q=go,go - Google Search,2025-02-20 09:16:30,2025-02-20 10:16:30,typed
https://stackoverflow.com/questions/1,go sort,2025-02-20 09:18:00,2025-02-20 10:18:00,link
,missing url,2025-02-20 09:20:00,2025-02-20 10:20:00,link
file:///tmp/local.html,local file,2025-02-20 09:21:00,2025-02-20 10:21:00,link
https://github.com/runnerr0/hindsight/pulls,pull requests,,2025-02-20 10:22:00,link
chrome-extension://abcdef/popup.html,extension popup,2025-02-20 09:23:00,2025-02-20 10:23:00,link
https://www.youtube.com/watch?v=x,video,2025-02-21 22:05:00,2025-02-21 23:05:00,link
https://mail.google.com/mail/u/0/,Inbox,not-a-timestamp,2025-02-21 23:06:00,link
`

func TestLoadParsesBrowsingSection(t *testing.T) {
	loader := NewLoader(nil)

	visits, stats, err := loader.Load(strings.NewReader(sampleExport))
	require.NoError(t, err)

	// 9 data rows: 1 empty url, 1 file:// scheme, 1 empty timestamp,
	// 1 bad timestamp are dropped.
	assert.Len(t, visits, 5)
	assert.Equal(t, 9, stats.TotalRows)
	assert.Equal(t, 5, stats.Kept)
	assert.Equal(t, 2, stats.DroppedEmpty)
	assert.Equal(t, 1, stats.DroppedScheme)
	assert.Equal(t, 1, stats.DroppedBadRow)
	assert.Equal(t, 4, stats.Dropped())
}

func TestLoadDerivesFields(t *testing.T) {
	loader := NewLoader(nil)

	visits, _, err := loader.Load(strings.NewReader(sampleExport))
	require.NoError(t, err)
	require.NotEmpty(t, visits)

	first := visits[0]
	assert.Equal(t, "github.com", first.Domain)
	assert.Equal(t, 9, first.Hour)
	assert.Equal(t, "Thursday", first.Weekday)
	assert.Equal(t, "2025-02-20", first.Date)
	assert.Equal(t, "Development", first.Category)
	assert.Equal(t, "link", first.Transition)
}

func TestLoadStripsWWW(t *testing.T) {
	loader := NewLoader(nil)

	visits, _, err := loader.Load(strings.NewReader(sampleExport))
	require.NoError(t, err)

	var domains []string
	for _, v := range visits {
		domains = append(domains, v.Domain)
	}
	assert.Contains(t, domains, "google.com")
	assert.Contains(t, domains, "youtube.com")
	assert.NotContains(t, domains, "www.google.com")
}

func TestLoadKeepsChromeExtension(t *testing.T) {
	loader := NewLoader(nil)

	visits, _, err := loader.Load(strings.NewReader(sampleExport))
	require.NoError(t, err)

	var urls []string
	for _, v := range visits {
		urls = append(urls, v.URL)
	}
	assert.Contains(t, urls, "chrome-extension://abcdef/popup.html")
}

func TestLoadStatsDateRange(t *testing.T) {
	loader := NewLoader(nil)

	_, stats, err := loader.Load(strings.NewReader(sampleExport))
	require.NoError(t, err)

	assert.Equal(t, "2025-02-20", stats.FirstDate)
	assert.Equal(t, "2025-02-21", stats.LastDate)
	assert.Equal(t, 5, stats.UniqueURLs)
	assert.Equal(t, 5, stats.UniqueDomains)
}

func TestLoadMissingBrowsingSection(t *testing.T) {
	loader := NewLoader(nil)

	_, _, err := loader.Load(strings.NewReader("Summary,,\nmetric,value,\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Browsing")
}

func TestLoadMissingURLColumn(t *testing.T) {
	loader := NewLoader(nil)

	input := "Browsing,,\ntitle,eventtimeutc,transition\nT,2025-01-01 10:00:00,link\n"
	_, _, err := loader.Load(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url")
}

func TestLoadColumnOrderIndependent(t *testing.T) {
	loader := NewLoader(nil)

	input := `Browsing,,,
transition,eventtimeutc,url,title
typed,2025-03-01 08:00:00,https://github.com/a,repo a
`
	visits, _, err := loader.Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "https://github.com/a", visits[0].URL)
	assert.Equal(t, "typed", visits[0].Transition)
	assert.Equal(t, "github.com", visits[0].Domain)
}

func TestLoadFallsBackToEventTime(t *testing.T) {
	loader := NewLoader(nil)

	input := `Browsing,,
url,title,eventtime,transition
https://github.com/a,repo,2025-03-01 08:00:00,link
`
	visits, _, err := loader.Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "2025-03-01", visits[0].Date)
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://www.google.com/search", "google.com"},
		{"https://github.com/repo", "github.com"},
		{"http://sub.example.co.uk/page", "sub.example.co.uk"},
		{"chrome-extension://abcdef/popup.html", "abcdef"},
		{"not a url at all", "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExtractDomain(tt.url), "url=%s", tt.url)
	}
}
