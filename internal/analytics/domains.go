// Package analytics computes descriptive aggregates over cleaned visits:
// domain rankings, time-of-day patterns, category and transition breakdowns,
// and inactivity-gap session segmentation.
package analytics

import (
	"sort"
	"time"

	"github.com/runnerr0/hindsight/internal/history"
)

// DomainCount is one row of the top-domains ranking.
type DomainCount struct {
	Domain     string    `json:"domain"`
	Visits     int       `json:"visits"`
	Percent    float64   `json:"percent"`
	FirstVisit time.Time `json:"first_visit"`
	LastVisit  time.Time `json:"last_visit"`
}

// TopDomains ranks domains by visit count, descending, ties broken by
// domain name so output is deterministic. n <= 0 means no cut.
func TopDomains(visits []history.Visit, n int) []DomainCount {
	type acc struct {
		count       int
		first, last time.Time
	}
	byDomain := map[string]*acc{}
	for _, v := range visits {
		a := byDomain[v.Domain]
		if a == nil {
			a = &acc{first: v.Time, last: v.Time}
			byDomain[v.Domain] = a
		}
		a.count++
		if v.Time.Before(a.first) {
			a.first = v.Time
		}
		if v.Time.After(a.last) {
			a.last = v.Time
		}
	}

	total := len(visits)
	out := make([]DomainCount, 0, len(byDomain))
	for d, a := range byDomain {
		out = append(out, DomainCount{
			Domain:     d,
			Visits:     a.count,
			Percent:    percent(a.count, total),
			FirstVisit: a.first,
			LastVisit:  a.last,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Visits != out[j].Visits {
			return out[i].Visits > out[j].Visits
		}
		return out[i].Domain < out[j].Domain
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
