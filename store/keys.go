package store

// Persisted state layout. Global config/state keys are fixed strings;
// per-user history keys are the history prefix plus the username.
const (
	KeyFareConfig    = "commutewise_fare_config"
	KeyStops         = "commutewise_stops"
	KeyFeedbacks     = "commutewise_feedbacks"
	KeyStats         = "commutewise_stats"
	historyKeyPrefix = "commutewise_history_"
)

// HistoryKey returns the per-user trip history key.
func HistoryKey(username string) string {
	return historyKeyPrefix + username
}
