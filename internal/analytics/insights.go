package analytics

import (
	"time"

	"github.com/runnerr0/hindsight/internal/history"
)

// Insights is the headline summary of a full analysis run.
type Insights struct {
	TotalVisits    int     `json:"total_visits"`
	UniqueDomains  int     `json:"unique_domains"`
	PeriodDays     int     `json:"period_days"`
	VisitsPerDay   float64 `json:"visits_per_day"`
	SessionsPerDay float64 `json:"sessions_per_day"`

	TopDomain        string  `json:"top_domain"`
	TopDomainPercent float64 `json:"top_domain_percent"`
	TopCategory      string  `json:"top_category"`
	TopCategoryPct   float64 `json:"top_category_percent"`
	PeakHour         int     `json:"peak_hour"`
	PeakHourVisits   int     `json:"peak_hour_visits"`
	AvgSessionLength float64 `json:"avg_session_length"`

	FirstVisit time.Time `json:"first_visit"`
	LastVisit  time.Time `json:"last_visit"`
}

// Summarize derives the headline insights from the individual aggregates.
// domains and categories must be sorted descending (as TopDomains and
// Categories return them).
func Summarize(visits []history.Visit, domains []DomainCount, categories []CategoryCount, tp *TimePatterns, stats *SessionStats) *Insights {
	ins := &Insights{TotalVisits: len(visits)}
	if len(visits) == 0 {
		return ins
	}

	seen := map[string]struct{}{}
	first, last := visits[0].Time, visits[0].Time
	for _, v := range visits {
		seen[v.Domain] = struct{}{}
		if v.Time.Before(first) {
			first = v.Time
		}
		if v.Time.After(last) {
			last = v.Time
		}
	}
	ins.UniqueDomains = len(seen)
	ins.FirstVisit = first
	ins.LastVisit = last

	// A single-day capture still counts as one day of data.
	days := int(last.Sub(first).Hours() / 24)
	if days < 1 {
		days = 1
	}
	ins.PeriodDays = days
	ins.VisitsPerDay = float64(len(visits)) / float64(days)

	if len(domains) > 0 {
		ins.TopDomain = domains[0].Domain
		ins.TopDomainPercent = domains[0].Percent
	}
	if len(categories) > 0 {
		ins.TopCategory = categories[0].Category
		ins.TopCategoryPct = categories[0].Percent
	}
	if tp != nil {
		ins.PeakHour, ins.PeakHourVisits = tp.PeakHour()
	}
	if stats != nil {
		ins.AvgSessionLength = stats.MeanLength
		ins.SessionsPerDay = float64(stats.Count) / float64(days)
	}

	return ins
}
