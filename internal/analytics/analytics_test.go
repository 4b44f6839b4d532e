package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/hindsight/internal/history"
)

// visit builds a visit with derived fields filled the way the loader does.
func visit(domain, category, transition string, ts time.Time) history.Visit {
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

func sampleVisits() []history.Visit {
	base := time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)
	return []history.Visit{
		visit("github.com", "Development", "link", base),
		visit("github.com", "Development", "link", base.Add(5*time.Minute)),
		visit("github.com", "Development", "typed", base.Add(10*time.Minute)),
		visit("google.com", "Search", "typed", base.Add(12*time.Minute)),
		visit("google.com", "Search", "link", base.Add(2*time.Hour)),
		visit("youtube.com", "Entertainment", "link", base.Add(26*time.Hour)),
	}
}

func TestTopDomainsRanking(t *testing.T) {
	domains := TopDomains(sampleVisits(), 10)
	require.Len(t, domains, 3)

	assert.Equal(t, "github.com", domains[0].Domain)
	assert.Equal(t, 3, domains[0].Visits)
	assert.InDelta(t, 50.0, domains[0].Percent, 0.001)

	assert.Equal(t, "google.com", domains[1].Domain)
	assert.Equal(t, "youtube.com", domains[2].Domain)
}

func TestTopDomainsCut(t *testing.T) {
	domains := TopDomains(sampleVisits(), 2)
	assert.Len(t, domains, 2)
}

func TestTopDomainsTieBreaksByName(t *testing.T) {
	base := time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)
	visits := []history.Visit{
		visit("zzz.com", "Other", "link", base),
		visit("aaa.com", "Other", "link", base),
	}
	domains := TopDomains(visits, 10)
	require.Len(t, domains, 2)
	assert.Equal(t, "aaa.com", domains[0].Domain)
}

func TestTopDomainsFirstLastVisit(t *testing.T) {
	domains := TopDomains(sampleVisits(), 1)
	require.Len(t, domains, 1)
	d := domains[0]
	assert.Equal(t, "github.com", d.Domain)
	assert.Equal(t, 10*time.Minute, d.LastVisit.Sub(d.FirstVisit))
}

func TestTopDomainsEmpty(t *testing.T) {
	assert.Empty(t, TopDomains(nil, 10))
}

func TestComputeTimePatternsHourly(t *testing.T) {
	tp := ComputeTimePatterns(sampleVisits())
	assert.Equal(t, 4, tp.Hourly[9])
	assert.Equal(t, 2, tp.Hourly[11]) // 11:00 on both days
	assert.Equal(t, 0, tp.Hourly[3])
}

func TestComputeTimePatternsDailySorted(t *testing.T) {
	tp := ComputeTimePatterns(sampleVisits())
	require.Len(t, tp.Daily, 2)
	assert.Equal(t, "2025-02-20", tp.Daily[0].Date)
	assert.Equal(t, 5, tp.Daily[0].Visits)
	assert.Equal(t, "2025-02-21", tp.Daily[1].Date)
	assert.Equal(t, 1, tp.Daily[1].Visits)
}

func TestComputeTimePatternsWeekdaysOrdered(t *testing.T) {
	tp := ComputeTimePatterns(sampleVisits())
	require.Len(t, tp.Weekdays, 2)
	// Thursday precedes Friday in Monday-first order.
	assert.Equal(t, "Thursday", tp.Weekdays[0].Weekday)
	assert.Equal(t, "Friday", tp.Weekdays[1].Weekday)
}

func TestPeakHours(t *testing.T) {
	tp := ComputeTimePatterns(sampleVisits())
	peaks := tp.PeakHours(2)
	require.Len(t, peaks, 2)
	assert.Equal(t, 9, peaks[0].Hour)
	assert.Equal(t, 4, peaks[0].Visits)
}

func TestPeakHour(t *testing.T) {
	tp := ComputeTimePatterns(sampleVisits())
	hour, count := tp.PeakHour()
	assert.Equal(t, 9, hour)
	assert.Equal(t, 4, count)
}

func TestBusiestDays(t *testing.T) {
	tp := ComputeTimePatterns(sampleVisits())
	days := tp.BusiestDays(1)
	require.Len(t, days, 1)
	assert.Equal(t, "2025-02-20", days[0].Date)
}

func TestDateHourCounts(t *testing.T) {
	counts := DateHourCounts(sampleVisits())
	require.Len(t, counts, 3)
	assert.Equal(t, DateHourCount{Date: "2025-02-20", Hour: 9, Visits: 4}, counts[0])
	assert.Equal(t, DateHourCount{Date: "2025-02-20", Hour: 11, Visits: 1}, counts[1])
	assert.Equal(t, DateHourCount{Date: "2025-02-21", Hour: 11, Visits: 1}, counts[2])
}

func TestCategoriesBreakdown(t *testing.T) {
	cats := Categories(sampleVisits())
	require.Len(t, cats, 3)
	assert.Equal(t, "Development", cats[0].Category)
	assert.Equal(t, 3, cats[0].Visits)
	assert.InDelta(t, 50.0, cats[0].Percent, 0.001)
}

func TestTransitionsBreakdown(t *testing.T) {
	trans := Transitions(sampleVisits())
	require.Len(t, trans, 2)
	assert.Equal(t, "link", trans[0].Transition)
	assert.Equal(t, 4, trans[0].Visits)
	assert.Equal(t, "typed", trans[1].Transition)
}

func TestTransitionsEmptyLabeledUnknown(t *testing.T) {
	base := time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)
	trans := Transitions([]history.Visit{visit("a.com", "Other", "", base)})
	require.Len(t, trans, 1)
	assert.Equal(t, "unknown", trans[0].Transition)
}

func TestCategoryDomains(t *testing.T) {
	pairs := CategoryDomains(sampleVisits())
	require.Len(t, pairs, 3)
	assert.Equal(t, CategoryDomainCount{Category: "Development", Domain: "github.com", Visits: 3}, pairs[0])
}

func TestAnalyzeFullRun(t *testing.T) {
	res := Analyze(sampleVisits(), Options{})

	require.NotNil(t, res.Insights)
	require.NotNil(t, res.TimePatterns)
	require.NotNil(t, res.SessionStats)
	assert.Len(t, res.Domains, 3)
	assert.Len(t, res.Categories, 3)

	// 9:00-9:12 run, then 11:00, then next day: 3 sessions.
	assert.Equal(t, 3, res.SessionStats.Count)
}

func TestSummarizeInsights(t *testing.T) {
	visits := sampleVisits()
	domains := TopDomains(visits, 15)
	cats := Categories(visits)
	tp := ComputeTimePatterns(visits)
	stats := SummarizeSessions(Segment(visits, 30*time.Minute))

	ins := Summarize(visits, domains, cats, tp, stats)

	assert.Equal(t, 6, ins.TotalVisits)
	assert.Equal(t, 3, ins.UniqueDomains)
	assert.Equal(t, 1, ins.PeriodDays)
	assert.Equal(t, "github.com", ins.TopDomain)
	assert.Equal(t, "Development", ins.TopCategory)
	assert.Equal(t, 9, ins.PeakHour)
	assert.InDelta(t, 2.0, ins.AvgSessionLength, 0.001)
}

func TestSummarizeEmpty(t *testing.T) {
	ins := Summarize(nil, nil, nil, nil, nil)
	assert.Equal(t, 0, ins.TotalVisits)
	assert.Equal(t, 0, ins.PeriodDays)
}
