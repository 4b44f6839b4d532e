package analytics

import (
	"sort"
	"time"

	"github.com/runnerr0/hindsight/internal/history"
)

// DefaultSessionGap is the inactivity threshold that starts a new session.
const DefaultSessionGap = 30 * time.Minute

// Session is a run of consecutive visits with no inactivity gap exceeding
// the threshold.
type Session struct {
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Visits   int           `json:"visits"`
	Duration time.Duration `json:"-"`
}

// SessionStats summarizes a segmentation.
type SessionStats struct {
	Count          int           `json:"count"`
	MeanLength     float64       `json:"mean_length"`   // page views
	MedianLength   float64       `json:"median_length"` // page views
	LongestLength  int           `json:"longest_length"`
	ShortestLength int           `json:"shortest_length"`
	TotalDuration  time.Duration `json:"-"`
}

// Segment orders visits by timestamp and splits them into sessions wherever
// the gap between consecutive visits exceeds gap. A gap exactly equal to
// the threshold stays in the same session. gap <= 0 uses DefaultSessionGap.
func Segment(visits []history.Visit, gap time.Duration) []Session {
	if len(visits) == 0 {
		return nil
	}
	if gap <= 0 {
		gap = DefaultSessionGap
	}

	ordered := make([]history.Visit, len(visits))
	copy(ordered, visits)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Time.Before(ordered[j].Time) })

	var sessions []Session
	cur := Session{Start: ordered[0].Time, End: ordered[0].Time, Visits: 1}

	for i := 1; i < len(ordered); i++ {
		if ordered[i].Time.Sub(ordered[i-1].Time) > gap {
			cur.Duration = cur.End.Sub(cur.Start)
			sessions = append(sessions, cur)
			cur = Session{Start: ordered[i].Time, End: ordered[i].Time, Visits: 1}
			continue
		}
		cur.End = ordered[i].Time
		cur.Visits++
	}
	cur.Duration = cur.End.Sub(cur.Start)
	return append(sessions, cur)
}

// SummarizeSessions computes length statistics over a segmentation.
func SummarizeSessions(sessions []Session) *SessionStats {
	stats := &SessionStats{Count: len(sessions)}
	if len(sessions) == 0 {
		return stats
	}

	lengths := make([]int, len(sessions))
	sum := 0
	for i, s := range sessions {
		lengths[i] = s.Visits
		sum += s.Visits
		stats.TotalDuration += s.Duration
	}
	sort.Ints(lengths)

	stats.MeanLength = float64(sum) / float64(len(lengths))
	stats.MedianLength = median(lengths)
	stats.ShortestLength = lengths[0]
	stats.LongestLength = lengths[len(lengths)-1]
	return stats
}

// median expects a sorted slice.
func median(sorted []int) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
