package analytics

import (
	"sort"

	"github.com/runnerr0/hindsight/internal/history"
)

// CategoryCount is one row of the category breakdown.
type CategoryCount struct {
	Category string  `json:"category"`
	Visits   int     `json:"visits"`
	Percent  float64 `json:"percent"`
}

// TransitionCount is one row of the navigation-transition breakdown.
type TransitionCount struct {
	Transition string  `json:"transition"`
	Visits     int     `json:"visits"`
	Percent    float64 `json:"percent"`
}

// Categories tabulates visits per category, descending, ties broken by name.
func Categories(visits []history.Visit) []CategoryCount {
	counts := map[string]int{}
	for _, v := range visits {
		counts[v.Category]++
	}

	total := len(visits)
	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Visits: n, Percent: percent(n, total)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Visits != out[j].Visits {
			return out[i].Visits > out[j].Visits
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Transitions tabulates visits per navigation transition type (link, typed,
// reload, ...), descending, ties broken by name. Visits with an empty
// transition are grouped under "unknown".
func Transitions(visits []history.Visit) []TransitionCount {
	counts := map[string]int{}
	for _, v := range visits {
		t := v.Transition
		if t == "" {
			t = "unknown"
		}
		counts[t]++
	}

	total := len(visits)
	out := make([]TransitionCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TransitionCount{Transition: t, Visits: n, Percent: percent(n, total)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Visits != out[j].Visits {
			return out[i].Visits > out[j].Visits
		}
		return out[i].Transition < out[j].Transition
	})
	return out
}

// CategoryDomains tabulates visits per (category, domain) pair, the shape
// consumed by the category summary export. Sorted by category, then visits
// descending, then domain.
type CategoryDomainCount struct {
	Category string `json:"category"`
	Domain   string `json:"domain"`
	Visits   int    `json:"visits"`
}

func CategoryDomains(visits []history.Visit) []CategoryDomainCount {
	type key struct{ cat, dom string }
	counts := map[key]int{}
	for _, v := range visits {
		counts[key{v.Category, v.Domain}]++
	}

	out := make([]CategoryDomainCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, CategoryDomainCount{Category: k.cat, Domain: k.dom, Visits: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		if out[i].Visits != out[j].Visits {
			return out[i].Visits > out[j].Visits
		}
		return out[i].Domain < out[j].Domain
	})
	return out
}
