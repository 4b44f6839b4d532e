// Package export writes the analysis aggregates as CSV summary files for
// downstream BI tools.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/runnerr0/hindsight/internal/analytics"
	"github.com/runnerr0/hindsight/internal/history"
)

// Writer writes summary CSVs into an output directory.
type Writer struct {
	Dir string
}

// NewWriter creates a Writer for the given directory.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// WriteAll writes every summary file and returns the written paths.
func (w *Writer) WriteAll(res *analytics.Result) ([]string, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	type job struct {
		name string
		fn   func() (string, error)
	}
	jobs := []job{
		{"domain summary", func() (string, error) { return w.DomainSummary(res.Domains) }},
		{"time summary", func() (string, error) { return w.TimeSummary(res.Visits) }},
		{"category summary", func() (string, error) { return w.CategorySummary(res.Visits) }},
		{"cleaned visits", func() (string, error) { return w.CleanedVisits(res.Visits) }},
	}

	var paths []string
	for _, j := range jobs {
		path, err := j.fn()
		if err != nil {
			return paths, fmt.Errorf("write %s: %w", j.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// DomainSummary writes domain_summary.csv: one row per ranked domain.
func (w *Writer) DomainSummary(domains []analytics.DomainCount) (string, error) {
	rows := [][]string{{"domain", "visits", "percent", "first_visit", "last_visit"}}
	for _, d := range domains {
		rows = append(rows, []string{
			d.Domain,
			strconv.Itoa(d.Visits),
			fmt.Sprintf("%.2f", d.Percent),
			d.FirstVisit.UTC().Format(time.RFC3339),
			d.LastVisit.UTC().Format(time.RFC3339),
		})
	}
	return w.writeCSV("domain_summary.csv", rows)
}

// TimeSummary writes time_summary.csv: the date x hour visit matrix in long
// form, sorted by date then hour. This carries the heatmap data.
func (w *Writer) TimeSummary(visits []history.Visit) (string, error) {
	counts := analytics.DateHourCounts(visits)

	rows := [][]string{{"date", "hour", "visits"}}
	for _, c := range counts {
		rows = append(rows, []string{c.Date, strconv.Itoa(c.Hour), strconv.Itoa(c.Visits)})
	}
	return w.writeCSV("time_summary.csv", rows)
}

// CategorySummary writes category_summary.csv: visits per (category, domain).
func (w *Writer) CategorySummary(visits []history.Visit) (string, error) {
	counts := analytics.CategoryDomains(visits)

	rows := [][]string{{"category", "domain", "visits"}}
	for _, c := range counts {
		rows = append(rows, []string{c.Category, c.Domain, strconv.Itoa(c.Visits)})
	}
	return w.writeCSV("category_summary.csv", rows)
}

// CleanedVisits writes cleaned_visits.csv: the full cleaned dataset with
// derived fields.
func (w *Writer) CleanedVisits(visits []history.Visit) (string, error) {
	rows := [][]string{{"ts", "url", "title", "domain", "transition", "hour", "weekday", "date", "category"}}
	for _, v := range visits {
		rows = append(rows, []string{
			v.Time.UTC().Format(time.RFC3339),
			v.URL,
			v.Title,
			v.Domain,
			v.Transition,
			strconv.Itoa(v.Hour),
			v.Weekday,
			v.Date,
			v.Category,
		})
	}
	return w.writeCSV("cleaned_visits.csv", rows)
}

// writeCSV writes rows to name under the output directory.
func (w *Writer) writeCSV(name string, rows [][]string) (string, error) {
	path := filepath.Join(w.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	cw.Flush()
	return path, cw.Error()
}
