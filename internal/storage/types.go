package storage

import "time"

// VisitQuery defines filters for listing stored visits.
type VisitQuery struct {
	Domain   string
	Category string
	Since    time.Time
	Until    time.Time
	Limit    int
	Offset   int
}

// Stats holds aggregate statistics about the hindsight database.
type Stats struct {
	TotalVisits       int64
	UniqueDomains     int64
	UniqueURLs        int64
	OldestVisit       time.Time
	NewestVisit       time.Time
	DatabaseSizeBytes int64
	TopDomains        []DomainCount
}

// DomainCount pairs a domain with its visit count.
type DomainCount struct {
	Domain string
	Count  int64
}
