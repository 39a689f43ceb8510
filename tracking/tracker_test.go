package tracking

import (
	"testing"
	"time"
)

type memStatsStore struct {
	stats Stats
	has   bool
}

func (m *memStatsStore) LoadStats() Stats {
	if !m.has {
		return NewStats()
	}
	return m.stats
}

func (m *memStatsStore) SaveStats(s Stats) error {
	m.stats = s
	m.has = true
	return nil
}

func TestRecordSearch(t *testing.T) {
	ms := &memStatsStore{}
	tr := NewTracker(ms)
	tr.now = func() time.Time { return time.Date(2025, 6, 1, 14, 30, 0, 0, time.Local) }

	st, err := tr.RecordSearch("QC City Hall", 16.50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.TotalSearches != 1 {
		t.Errorf("expected 1 search, got %d", st.TotalSearches)
	}
	if st.TotalRevenue != 16.50 {
		t.Errorf("expected revenue 16.50, got %f", st.TotalRevenue)
	}
	if st.TopLocations["QC City Hall"] != 1 {
		t.Errorf("expected destination counted once, got %d", st.TopLocations["QC City Hall"])
	}
	if st.HourlyActivity[14] != 1 {
		t.Errorf("expected hour 14 counted, got %+v", st.HourlyActivity)
	}

	st, err = tr.RecordSearch("QC City Hall", 13.00)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.TotalSearches != 2 || st.TotalRevenue != 29.50 || st.TopLocations["QC City Hall"] != 2 {
		t.Errorf("unexpected accumulated stats: %+v", st)
	}
}

func TestRecordSearchEmptyDestination(t *testing.T) {
	ms := &memStatsStore{}
	tr := NewTracker(ms)
	st, err := tr.RecordSearch("", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.TopLocations) != 0 {
		t.Errorf("empty destination should not be counted: %+v", st.TopLocations)
	}
}

func TestReset(t *testing.T) {
	ms := &memStatsStore{}
	tr := NewTracker(ms)
	if _, err := tr.RecordSearch("Maharlika", 13); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tr.Reset(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := ms.LoadStats()
	if st.TotalSearches != 0 || st.TotalRevenue != 0 || len(st.TopLocations) != 0 || len(st.HourlyActivity) != 0 {
		t.Errorf("expected zeroed stats after reset, got %+v", st)
	}
}

func TestTopDestinations(t *testing.T) {
	st := NewStats()
	st.TopLocations["A"] = 3
	st.TopLocations["B"] = 5
	st.TopLocations["C"] = 3
	st.TopLocations["D"] = 1

	got := st.TopDestinations(3)
	want := []string{"B", "A", "C"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	if got := st.TopDestinations(10); len(got) != 4 {
		t.Errorf("expected all 4 destinations, got %v", got)
	}
}

func TestBusiestHour(t *testing.T) {
	st := NewStats()
	if st.BusiestHour() != -1 {
		t.Errorf("expected -1 for empty stats")
	}
	st.HourlyActivity[7] = 2
	st.HourlyActivity[17] = 9
	if got := st.BusiestHour(); got != 17 {
		t.Errorf("expected hour 17, got %d", got)
	}
}
