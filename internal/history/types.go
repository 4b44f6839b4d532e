package history

import "time"

// Visit is a single cleaned browsing event with derived fields.
type Visit struct {
	URL        string
	Title      string
	Transition string
	Time       time.Time // event time, UTC
	Domain     string
	Hour       int    // 0-23, UTC
	Weekday    string // Monday..Sunday
	Date       string // YYYY-MM-DD
	Category   string
}

// LoadStats describes what the loader did with the raw export.
type LoadStats struct {
	TotalRows     int
	Kept          int
	DroppedEmpty  int // missing url or timestamp
	DroppedScheme int // url not http/chrome-extension
	DroppedBadRow int // unparseable timestamp or short record
	UniqueURLs    int
	UniqueDomains int
	FirstDate     string
	LastDate      string
}

// Dropped is the total number of rows discarded during cleaning.
func (s *LoadStats) Dropped() int {
	return s.DroppedEmpty + s.DroppedScheme + s.DroppedBadRow
}
