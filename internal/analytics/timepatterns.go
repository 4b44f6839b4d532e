package analytics

import (
	"sort"

	"github.com/runnerr0/hindsight/internal/history"
)

// DateCount pairs a calendar date (YYYY-MM-DD) with its visit count.
type DateCount struct {
	Date   string `json:"date"`
	Visits int    `json:"visits"`
}

// HourCount pairs an hour of day with its visit count.
type HourCount struct {
	Hour   int `json:"hour"`
	Visits int `json:"visits"`
}

// WeekdayCount pairs a weekday name with its visit count.
type WeekdayCount struct {
	Weekday string `json:"weekday"`
	Visits  int    `json:"visits"`
}

// weekdayOrder fixes Monday-first ordering for weekday output.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday", "Sunday",
}

// TimePatterns holds the hourly, daily, and weekday tabulations.
type TimePatterns struct {
	Hourly   [24]int        `json:"hourly"`
	Daily    []DateCount    `json:"daily"`    // sorted by date ascending
	Weekdays []WeekdayCount `json:"weekdays"` // Monday first
}

// ComputeTimePatterns tabulates visits by hour of day, date, and weekday.
func ComputeTimePatterns(visits []history.Visit) *TimePatterns {
	tp := &TimePatterns{}

	byDate := map[string]int{}
	byWeekday := map[string]int{}
	for _, v := range visits {
		if v.Hour >= 0 && v.Hour < 24 {
			tp.Hourly[v.Hour]++
		}
		byDate[v.Date]++
		byWeekday[v.Weekday]++
	}

	for d, n := range byDate {
		tp.Daily = append(tp.Daily, DateCount{Date: d, Visits: n})
	}
	sort.Slice(tp.Daily, func(i, j int) bool { return tp.Daily[i].Date < tp.Daily[j].Date })

	for _, w := range weekdayOrder {
		if n, ok := byWeekday[w]; ok {
			tp.Weekdays = append(tp.Weekdays, WeekdayCount{Weekday: w, Visits: n})
		}
	}

	return tp
}

// PeakHours returns the n busiest hours, visits descending, ties broken by
// the earlier hour.
func (tp *TimePatterns) PeakHours(n int) []HourCount {
	out := make([]HourCount, 0, 24)
	for h, c := range tp.Hourly {
		if c > 0 {
			out = append(out, HourCount{Hour: h, Visits: c})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Visits != out[j].Visits {
			return out[i].Visits > out[j].Visits
		}
		return out[i].Hour < out[j].Hour
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// BusiestDays returns the n most active dates, visits descending, ties
// broken by the earlier date.
func (tp *TimePatterns) BusiestDays(n int) []DateCount {
	out := make([]DateCount, len(tp.Daily))
	copy(out, tp.Daily)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Visits != out[j].Visits {
			return out[i].Visits > out[j].Visits
		}
		return out[i].Date < out[j].Date
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// DateHourCount is one cell of the date x hour activity matrix.
type DateHourCount struct {
	Date   string `json:"date"`
	Hour   int    `json:"hour"`
	Visits int    `json:"visits"`
}

// DateHourCounts tabulates visits per (date, hour) cell in long form,
// sorted by date then hour.
func DateHourCounts(visits []history.Visit) []DateHourCount {
	type key struct {
		date string
		hour int
	}
	counts := map[key]int{}
	for _, v := range visits {
		counts[key{v.Date, v.Hour}]++
	}

	out := make([]DateHourCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, DateHourCount{Date: k.date, Hour: k.hour, Visits: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Hour < out[j].Hour
	})
	return out
}

// PeakHour returns the single busiest hour and its count.
func (tp *TimePatterns) PeakHour() (int, int) {
	best, bestCount := 0, 0
	for h, c := range tp.Hourly {
		if c > bestCount {
			best, bestCount = h, c
		}
	}
	return best, bestCount
}
