package store

import (
	"encoding/json"
	"log"

	"github.com/commutewise/commutewise/fare"
	"github.com/commutewise/commutewise/route"
	"github.com/commutewise/commutewise/tracking"
)

// MaxHistoryItems caps each rider's trip history; the oldest entries are
// evicted first.
const MaxHistoryItems = 50

// Store is the typed persistence adapter over a KV backend. Loads fail
// closed: a missing or undecodable document yields the built-in default
// rather than an error the UI would have to surface.
type Store struct {
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) loadJSON(key string, out any) bool {
	data, ok, err := s.kv.Load(key)
	if err != nil {
		log.Printf("store: load %s: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("store: corrupt document at %s, using defaults: %v", key, err)
		return false
	}
	return true
}

func (s *Store) saveJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Save(key, data)
}

// FareConfig returns the persisted fare matrix, or the default matrix when
// none is stored or the stored one fails to decode or validate.
func (s *Store) FareConfig() fare.Config {
	var cfg fare.Config
	if !s.loadJSON(KeyFareConfig, &cfg) {
		return fare.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("store: persisted fare config invalid, using defaults: %v", err)
		return fare.DefaultConfig()
	}
	return cfg
}

// SaveFareConfig validates and persists the fare matrix. Invalid configs are
// rejected and never written.
func (s *Store) SaveFareConfig(cfg fare.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.saveJSON(KeyFareConfig, cfg)
}

// Route returns the persisted route document, or the built-in Tandang
// Sora - Maharlika route when none is stored.
func (s *Store) Route() *route.Route {
	var r route.Route
	if !s.loadJSON(KeyStops, &r) || len(r.Path) == 0 {
		return route.DefaultRoute()
	}
	return &r
}

func (s *Store) SaveRoute(r *route.Route) error {
	return s.saveJSON(KeyStops, r)
}

// Feedbacks returns all stored feedback items, newest first.
func (s *Store) Feedbacks() []FeedbackItem {
	var items []FeedbackItem
	s.loadJSON(KeyFeedbacks, &items)
	return items
}

func (s *Store) SaveFeedbacks(items []FeedbackItem) error {
	return s.saveJSON(KeyFeedbacks, items)
}

// History returns the rider's trip history, newest first.
func (s *Store) History(username string) []HistoryItem {
	var items []HistoryItem
	s.loadJSON(HistoryKey(username), &items)
	return items
}

// AppendHistory prepends item to the rider's history and evicts beyond the
// cap, oldest first.
func (s *Store) AppendHistory(username string, item HistoryItem) error {
	items := append([]HistoryItem{item}, s.History(username)...)
	if len(items) > MaxHistoryItems {
		items = items[:MaxHistoryItems]
	}
	return s.saveJSON(HistoryKey(username), items)
}

func (s *Store) ClearHistory(username string) error {
	return s.kv.Delete(HistoryKey(username))
}

// LoadStats returns the aggregate usage stats, or zeroed stats when absent.
func (s *Store) LoadStats() tracking.Stats {
	var st tracking.Stats
	if !s.loadJSON(KeyStats, &st) {
		return tracking.NewStats()
	}
	if st.TopLocations == nil {
		st.TopLocations = map[string]int{}
	}
	if st.HourlyActivity == nil {
		st.HourlyActivity = map[int]int{}
	}
	return st
}

func (s *Store) SaveStats(st tracking.Stats) error {
	return s.saveJSON(KeyStats, st)
}
