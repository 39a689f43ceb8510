package store

// TripLegRecord is the persisted form of one itinerary leg.
type TripLegRecord struct {
	DistanceMeters  int    `json:"distanceMeters"`
	DistanceText    string `json:"distanceText"`
	DurationSeconds int    `json:"durationSeconds"`
	DurationText    string `json:"durationText"`
	WalkingDuration string `json:"walkingDurationText,omitempty"`
}

// HistoryItem is one completed trip calculation in a rider's history.
type HistoryItem struct {
	ID            string          `json:"id"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	TotalDistance string          `json:"totalDistance"`
	TotalDuration string          `json:"totalDuration"`
	Fare          string          `json:"fare"`
	Legs          []TripLegRecord `json:"legs,omitempty"`
}

// Feedback types and statuses.
const (
	FeedbackBug        = "bug"
	FeedbackSuggestion = "suggestion"

	FeedbackPending  = "pending"
	FeedbackResolved = "resolved"
)

// FeedbackItem is a bug report or suggestion submitted by a rider.
type FeedbackItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Sender      string `json:"sender"`
	AdminReply  string `json:"adminReply,omitempty"`
}
