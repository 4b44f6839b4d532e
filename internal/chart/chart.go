// Package chart renders the analysis aggregates as static PNG images.
package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/runnerr0/hindsight/internal/analytics"
)

// Defaults for image dimensions.
const (
	DefaultWidth  = 1200
	DefaultHeight = 600
)

// Renderer writes chart PNGs into an output directory.
type Renderer struct {
	Dir    string
	Width  int
	Height int
}

// NewRenderer creates a Renderer for the given directory. Zero dimensions
// fall back to the defaults.
func NewRenderer(dir string, width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{Dir: dir, Width: width, Height: height}
}

// RenderAll writes every chart that has data and returns the written paths.
func (r *Renderer) RenderAll(res *analytics.Result) ([]string, error) {
	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create charts directory: %w", err)
	}

	type job struct {
		name   string
		render func() (string, error)
	}
	jobs := []job{
		{"top domains", func() (string, error) { return r.TopDomains(res.Domains) }},
		{"hourly activity", func() (string, error) { return r.HourlyActivity(res.TimePatterns) }},
		{"categories", func() (string, error) { return r.Categories(res.Categories) }},
		{"daily activity", func() (string, error) { return r.DailyActivity(res.TimePatterns) }},
		{"session lengths", func() (string, error) { return r.SessionLengths(res.Sessions) }},
	}

	var paths []string
	for _, j := range jobs {
		path, err := j.render()
		if err != nil {
			return paths, fmt.Errorf("render %s chart: %w", j.name, err)
		}
		if path != "" {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// TopDomains renders the domain ranking as a bar chart. The top 10 entries
// are shown. Returns "" when there is nothing to draw.
func (r *Renderer) TopDomains(domains []analytics.DomainCount) (string, error) {
	if len(domains) == 0 {
		return "", nil
	}
	if len(domains) > 10 {
		domains = domains[:10]
	}

	bars := make([]chart.Value, len(domains))
	for i, d := range domains {
		bars[i] = chart.Value{Value: float64(d.Visits), Label: d.Domain}
	}

	graph := chart.BarChart{
		Title:      "Top Visited Domains",
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   60,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Bars:       bars,
	}

	return r.write("top_domains.png", func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// HourlyActivity renders the 24-hour visit histogram as a filled line chart.
func (r *Renderer) HourlyActivity(tp *analytics.TimePatterns) (string, error) {
	if tp == nil {
		return "", nil
	}

	xs := make([]float64, 24)
	ys := make([]float64, 24)
	for h := 0; h < 24; h++ {
		xs[h] = float64(h)
		ys[h] = float64(tp.Hourly[h])
	}

	ticks := make([]chart.Tick, 0, 13)
	for h := 0; h <= 24; h += 2 {
		ticks = append(ticks, chart.Tick{Value: float64(h), Label: fmt.Sprintf("%d", h)})
	}

	graph := chart.Chart{
		Title:  "Browsing Activity by Hour of Day",
		Width:  r.Width,
		Height: r.Height,
		XAxis: chart.XAxis{
			Name:  "Hour of Day",
			Ticks: ticks,
		},
		YAxis: chart.YAxis{Name: "Visits"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 3,
					FillColor:   chart.ColorBlue.WithAlpha(64),
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	return r.write("hourly_activity.png", func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// Categories renders the category breakdown as a pie chart.
func (r *Renderer) Categories(cats []analytics.CategoryCount) (string, error) {
	if len(cats) == 0 {
		return "", nil
	}

	values := make([]chart.Value, len(cats))
	for i, c := range cats {
		values[i] = chart.Value{
			Value: float64(c.Visits),
			Label: fmt.Sprintf("%s (%.1f%%)", c.Category, c.Percent),
		}
	}

	graph := chart.PieChart{
		Title:  "Browsing Activity by Category",
		Width:  r.Height, // square canvas
		Height: r.Height,
		Values: values,
	}

	return r.write("categories.png", func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// DailyActivity renders per-date visit counts for the last 14 days as a
// bar chart.
func (r *Renderer) DailyActivity(tp *analytics.TimePatterns) (string, error) {
	if tp == nil || len(tp.Daily) == 0 {
		return "", nil
	}

	daily := tp.Daily
	if len(daily) > 14 {
		daily = daily[len(daily)-14:]
	}

	bars := make([]chart.Value, len(daily))
	for i, d := range daily {
		bars[i] = chart.Value{Value: float64(d.Visits), Label: d.Date}
	}

	graph := chart.BarChart{
		Title:      "Daily Browsing Activity (Last 14 Days)",
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   50,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Bars:       bars,
	}

	return r.write("daily_activity.png", func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// SessionLengths renders a histogram of session lengths (page views per
// session) with power-of-two-ish buckets.
func (r *Renderer) SessionLengths(sessions []analytics.Session) (string, error) {
	if len(sessions) == 0 {
		return "", nil
	}

	buckets := []struct {
		label    string
		min, max int // inclusive; max 0 means unbounded
	}{
		{"1", 1, 1},
		{"2-5", 2, 5},
		{"6-10", 6, 10},
		{"11-25", 11, 25},
		{"26-50", 26, 50},
		{"51+", 51, 0},
	}

	counts := make([]int, len(buckets))
	for _, s := range sessions {
		for i, b := range buckets {
			if s.Visits >= b.min && (b.max == 0 || s.Visits <= b.max) {
				counts[i]++
				break
			}
		}
	}

	bars := make([]chart.Value, len(buckets))
	for i, b := range buckets {
		bars[i] = chart.Value{Value: float64(counts[i]), Label: b.label}
	}

	graph := chart.BarChart{
		Title:      "Session Length Distribution (Page Views)",
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   80,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Bars:       bars,
	}

	return r.write("session_lengths.png", func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// write creates name under the output directory and hands the file to fn.
func (r *Renderer) write(name string, fn func(*os.File) error) (string, error) {
	path := filepath.Join(r.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return "", err
	}
	return path, nil
}
