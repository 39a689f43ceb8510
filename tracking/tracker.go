package tracking

import (
	"sort"
	"time"
)

// Stats is the aggregate usage record shown on the admin analytics panel.
// Revenue is simulated from computed fares, not collected payments.
type Stats struct {
	TotalSearches  int            `json:"totalSearches"`
	TotalRevenue   float64        `json:"totalRevenue"`
	TopLocations   map[string]int `json:"topLocations"`
	HourlyActivity map[int]int    `json:"hourlyActivity"`
}

// NewStats returns a zeroed Stats with initialized maps.
func NewStats() Stats {
	return Stats{
		TopLocations:   map[string]int{},
		HourlyActivity: map[int]int{},
	}
}

// StatsStore persists the aggregate record between sessions.
type StatsStore interface {
	LoadStats() Stats
	SaveStats(Stats) error
}

// Tracker accumulates one increment per priced search and writes through to
// its store. It is not safe for concurrent use; the dashboard mutates it
// from a single event loop.
type Tracker struct {
	store StatsStore
	now   func() time.Time
}

func NewTracker(store StatsStore) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// RecordSearch registers one priced trip calculation: search count, revenue
// accumulator, per-destination frequency, and the hour-of-day activity
// bucket (local clock).
func (t *Tracker) RecordSearch(destination string, fareAmount float64) (Stats, error) {
	st := t.store.LoadStats()
	st.TotalSearches++
	st.TotalRevenue += fareAmount
	if destination != "" {
		st.TopLocations[destination]++
	}
	st.HourlyActivity[t.now().Hour()]++
	return st, t.store.SaveStats(st)
}

// Reset clears all accumulated stats (admin analytics reset).
func (t *Tracker) Reset() error {
	return t.store.SaveStats(NewStats())
}

// TopDestinations returns up to n destinations by search count, most
// frequent first. Ties order alphabetically so output is stable.
func (s Stats) TopDestinations(n int) []string {
	type entry struct {
		dest  string
		count int
	}
	entries := make([]entry, 0, len(s.TopLocations))
	for d, c := range s.TopLocations {
		entries = append(entries, entry{d, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].dest < entries[j].dest
	})
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]string, 0, n)
	for _, e := range entries[:n] {
		out = append(out, e.dest)
	}
	return out
}

// BusiestHour returns the hour (0-23) with the most recorded activity, or
// -1 when nothing has been recorded.
func (s Stats) BusiestHour() int {
	best, bestCount := -1, 0
	for h := 0; h < 24; h++ {
		if c := s.HourlyActivity[h]; c > bestCount {
			best, bestCount = h, c
		}
	}
	return best
}
