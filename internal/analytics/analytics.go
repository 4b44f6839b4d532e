package analytics

import (
	"time"

	"github.com/runnerr0/hindsight/internal/history"
)

// DefaultTopDomains is the default ranking cut.
const DefaultTopDomains = 15

// Options tunes a full analysis run.
type Options struct {
	TopDomains int           // ranking cut, <= 0 means DefaultTopDomains
	SessionGap time.Duration // inactivity threshold, <= 0 means DefaultSessionGap
}

// Result bundles every aggregate a full run produces. Downstream consumers
// (console report, charts, exports) read from here.
type Result struct {
	Visits       []history.Visit
	Domains      []DomainCount
	TimePatterns *TimePatterns
	Categories   []CategoryCount
	Transitions  []TransitionCount
	Sessions     []Session
	SessionStats *SessionStats
	Insights     *Insights
}

// Analyze runs every aggregator over the visits.
func Analyze(visits []history.Visit, opts Options) *Result {
	if opts.TopDomains <= 0 {
		opts.TopDomains = DefaultTopDomains
	}
	if opts.SessionGap <= 0 {
		opts.SessionGap = DefaultSessionGap
	}

	r := &Result{
		Visits:       visits,
		Domains:      TopDomains(visits, opts.TopDomains),
		TimePatterns: ComputeTimePatterns(visits),
		Categories:   Categories(visits),
		Transitions:  Transitions(visits),
	}
	r.Sessions = Segment(visits, opts.SessionGap)
	r.SessionStats = SummarizeSessions(r.Sessions)
	r.Insights = Summarize(visits, r.Domains, r.Categories, r.TimePatterns, r.SessionStats)
	return r
}
