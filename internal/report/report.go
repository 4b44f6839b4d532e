// Package report formats analysis results as a sectioned console report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/runnerr0/hindsight/internal/analytics"
)

// Renderer writes the console report.
type Renderer struct {
	Out io.Writer

	// Section cuts; zero means the analytics defaults.
	PeakHours   int
	BusiestDays int
}

// New creates a Renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{Out: out, PeakHours: 5, BusiestDays: 5}
}

// Render writes the full report for a completed analysis.
func (r *Renderer) Render(res *analytics.Result) {
	r.title("Browsing History Report")

	r.KeyMetrics(res.Insights)
	r.TopDomains(res.Domains, res.Insights.TotalVisits)
	r.TimePatterns(res.TimePatterns)
	r.Categories(res.Categories)
	r.Transitions(res.Transitions)
	r.Sessions(res.SessionStats)
}

// KeyMetrics writes the headline summary section.
func (r *Renderer) KeyMetrics(ins *analytics.Insights) {
	r.section("Key Metrics")
	r.kv("Total visits", formatInt(ins.TotalVisits))
	r.kv("Unique domains", formatInt(ins.UniqueDomains))
	if ins.TotalVisits > 0 {
		r.kv("Period", fmt.Sprintf("%s to %s (%d days)",
			ins.FirstVisit.Format("2006-01-02"), ins.LastVisit.Format("2006-01-02"), ins.PeriodDays))
		r.kv("Visits per day", fmt.Sprintf("%.1f", ins.VisitsPerDay))
		r.kv("Sessions per day", fmt.Sprintf("%.1f", ins.SessionsPerDay))
		r.kv("Primary activity", fmt.Sprintf("%s (%.1f%%)", ins.TopCategory, ins.TopCategoryPct))
		r.kv("Most visited", fmt.Sprintf("%s (%.1f%%)", ins.TopDomain, ins.TopDomainPercent))
		r.kv("Peak hour", fmt.Sprintf("%02d:00 (%d visits)", ins.PeakHour, ins.PeakHourVisits))
		r.kv("Avg session", fmt.Sprintf("%.1f page views", ins.AvgSessionLength))
	}
	fmt.Fprintln(r.Out)
}

// TopDomains writes the domain ranking section.
func (r *Renderer) TopDomains(domains []analytics.DomainCount, total int) {
	r.section(fmt.Sprintf("Top %d Domains", len(domains)))
	if len(domains) == 0 {
		fmt.Fprintln(r.Out, "  (no data)")
		fmt.Fprintln(r.Out)
		return
	}
	for i, d := range domains {
		fmt.Fprintf(r.Out, "%3d. %-35s %6d visits (%4.1f%%)\n", i+1, d.Domain, d.Visits, d.Percent)
	}
	fmt.Fprintln(r.Out)
}

// TimePatterns writes peak hours, busiest days, and weekday counts.
func (r *Renderer) TimePatterns(tp *analytics.TimePatterns) {
	r.section("Time Patterns")

	fmt.Fprintln(r.Out, "Peak browsing hours:")
	for _, h := range tp.PeakHours(r.PeakHours) {
		fmt.Fprintf(r.Out, "  %02d:00  %5d visits\n", h.Hour, h.Visits)
	}

	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, "Most active days:")
	for _, d := range tp.BusiestDays(r.BusiestDays) {
		fmt.Fprintf(r.Out, "  %s  %5d visits\n", d.Date, d.Visits)
	}

	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, "By day of week:")
	for _, w := range tp.Weekdays {
		fmt.Fprintf(r.Out, "  %-10s %5d visits\n", w.Weekday, w.Visits)
	}
	fmt.Fprintln(r.Out)
}

// Categories writes the category breakdown section.
func (r *Renderer) Categories(cats []analytics.CategoryCount) {
	r.section("Categories")
	for _, c := range cats {
		fmt.Fprintf(r.Out, "  %-20s %6d visits (%4.1f%%)\n", c.Category, c.Visits, c.Percent)
	}
	fmt.Fprintln(r.Out)
}

// Transitions writes the navigation transition section.
func (r *Renderer) Transitions(trans []analytics.TransitionCount) {
	r.section("Navigation Transitions")
	for _, t := range trans {
		fmt.Fprintf(r.Out, "  %-15s %6d (%4.1f%%)\n", t.Transition, t.Visits, t.Percent)
	}
	fmt.Fprintln(r.Out)
}

// Sessions writes the session statistics section.
func (r *Renderer) Sessions(stats *analytics.SessionStats) {
	r.section("Sessions")
	r.kv("Total sessions", formatInt(stats.Count))
	if stats.Count > 0 {
		r.kv("Average length", fmt.Sprintf("%.1f page views", stats.MeanLength))
		r.kv("Median length", fmt.Sprintf("%.1f page views", stats.MedianLength))
		r.kv("Longest", fmt.Sprintf("%d page views", stats.LongestLength))
		r.kv("Shortest", fmt.Sprintf("%d page views", stats.ShortestLength))
	}
	fmt.Fprintln(r.Out)
}

func (r *Renderer) title(s string) {
	fmt.Fprintln(r.Out, styleTitle.Render(s))
	fmt.Fprintln(r.Out, styleRule.Render(strings.Repeat("=", len(s))))
	fmt.Fprintln(r.Out)
}

func (r *Renderer) section(s string) {
	fmt.Fprintln(r.Out, styleSection.Render(s))
	fmt.Fprintln(r.Out, styleRule.Render(strings.Repeat("-", len(s))))
}

func (r *Renderer) kv(key, value string) {
	fmt.Fprintf(r.Out, "  %-18s %s\n", key+":", styleValue.Render(value))
}

// formatInt formats an int with comma separators.
func formatInt(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
		result.WriteString(",")
	}
	for i := remainder; i < len(s); i += 3 {
		if i > remainder {
			result.WriteString(",")
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
