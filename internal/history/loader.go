// Package history loads browser-history exports and turns them into
// cleaned, enriched visit records.
package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/runnerr0/hindsight/internal/classify"
)

// sectionName is the marker that opens the browsing block of the export.
// The export file has two CSV sections: a Summary block, then a Browsing
// block whose first line is the marker and whose next line is the header.
const sectionName = "Browsing"

// Loader parses a raw export into cleaned visits.
type Loader struct {
	rules *classify.Ruleset
}

// NewLoader creates a Loader that categorizes visits with the given rules.
func NewLoader(rules *classify.Ruleset) *Loader {
	if rules == nil {
		rules = classify.Default()
	}
	return &Loader{rules: rules}
}

// LoadFile reads and cleans the export at path.
func (l *Loader) LoadFile(path string) ([]Visit, *LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()
	return l.Load(f)
}

// Load reads and cleans an export from r. It returns an error if the
// Browsing section is missing or its header lacks the required columns.
func (l *Loader) Load(r io.Reader) ([]Visit, *LoadStats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read export: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	start := -1
	for i, line := range lines {
		first, _, _ := strings.Cut(line, ",")
		if strings.Contains(first, sectionName) {
			start = i + 1
			break
		}
	}
	if start == -1 || start >= len(lines) {
		return nil, nil, fmt.Errorf("no %q section in export", sectionName)
	}

	cr := csv.NewReader(strings.NewReader(strings.Join(lines[start:], "\n")))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s header: %w", sectionName, err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, nil, err
	}

	stats := &LoadStats{}
	var visits []Visit
	seenURLs := map[string]struct{}{}
	seenDomains := map[string]struct{}{}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.TotalRows++
			stats.DroppedBadRow++
			continue
		}
		if isBlank(rec) {
			continue
		}
		stats.TotalRows++

		rawURL := field(rec, cols.url)
		rawTS := field(rec, cols.eventTimeUTC)
		if rawURL == "" || rawTS == "" {
			stats.DroppedEmpty++
			continue
		}
		if !strings.HasPrefix(rawURL, "http") && !strings.HasPrefix(rawURL, "chrome-extension") {
			stats.DroppedScheme++
			continue
		}

		ts, err := parseEventTime(rawTS)
		if err != nil {
			stats.DroppedBadRow++
			continue
		}

		title := field(rec, cols.title)
		v := Visit{
			URL:        rawURL,
			Title:      title,
			Transition: field(rec, cols.transition),
			Time:       ts,
			Domain:     ExtractDomain(rawURL),
			Hour:       ts.Hour(),
			Weekday:    ts.Weekday().String(),
			Date:       ts.Format("2006-01-02"),
			Category:   l.rules.Categorize(rawURL, title),
		}
		visits = append(visits, v)
		stats.Kept++
		seenURLs[rawURL] = struct{}{}
		seenDomains[v.Domain] = struct{}{}
	}

	stats.UniqueURLs = len(seenURLs)
	stats.UniqueDomains = len(seenDomains)
	if len(visits) > 0 {
		dates := make([]string, 0, len(visits))
		for _, v := range visits {
			dates = append(dates, v.Date)
		}
		sort.Strings(dates)
		stats.FirstDate = dates[0]
		stats.LastDate = dates[len(dates)-1]
	}

	return visits, stats, nil
}

// columns holds resolved header indexes. eventtime (local) is accepted as a
// fallback when eventtimeutc is absent.
type columns struct {
	url          int
	title        int
	eventTimeUTC int
	transition   int
}

// resolveColumns finds the required columns by name; order in the export is
// not guaranteed.
func resolveColumns(header []string) (*columns, error) {
	c := &columns{
		url:          indexOf(header, "url"),
		title:        indexOf(header, "title"),
		eventTimeUTC: indexOf(header, "eventtimeutc", "eventtime"),
		transition:   indexOf(header, "transition"),
	}
	if c.url == -1 {
		return nil, fmt.Errorf("export header missing %q column", "url")
	}
	if c.eventTimeUTC == -1 {
		return nil, fmt.Errorf("export header missing %q column", "eventtimeutc")
	}
	return c, nil
}

// indexOf returns the index of the first header matching any key,
// case-insensitively and ignoring surrounding whitespace.
func indexOf(header []string, keys ...string) int {
	for _, k := range keys {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), k) {
				return i
			}
		}
	}
	return -1
}

func field(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// parseEventTime tries the timestamp formats seen in extension exports.
func parseEventTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp: %s", s)
}

// ExtractDomain pulls the hostname from a URL, stripping a leading "www."
// label. Unparseable URLs map to "unknown".
func ExtractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		if strings.HasPrefix(rawURL, "chrome-extension://") {
			rest := strings.TrimPrefix(rawURL, "chrome-extension://")
			host, _, _ := strings.Cut(rest, "/")
			if host != "" {
				return host
			}
		}
		return "unknown"
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
