package commutewise

import (
	"fmt"
	"math"

	"github.com/commutewise/commutewise/maps"
	"github.com/commutewise/commutewise/store"
)

// TripLeg is one segment of a planned itinerary. Walking legs carry a
// WalkingDurationText estimate in place of the provider's drive-time guess.
type TripLeg struct {
	DistanceMeters      int    `json:"distanceMeters"`
	DistanceText        string `json:"distanceText"`
	DurationSeconds     int    `json:"durationSeconds"`
	DurationText        string `json:"durationText"`
	WalkingDurationText string `json:"walkingDurationText,omitempty"`
}

// TripResult is the priced outcome of one search. It is derived and
// ephemeral: recomputed per search, never mutated afterwards.
type TripResult struct {
	Origin            string    `json:"origin"`
	Destination       string    `json:"destination"`
	TotalDistanceText string    `json:"totalDistance"`
	TotalDurationText string    `json:"totalDuration"`
	FareText          string    `json:"fare"`
	FareAmount        float64   `json:"-"`
	Legs              []TripLeg `json:"legs"`
}

// newTripLegs normalizes provider legs and overwrites the access/egress
// walking legs' durations with the constant-speed walking estimate. The
// provider models motorized transit for every leg, so its first/last leg
// durations overstate a short walk.
func newTripLegs(providerLegs []maps.Leg) []TripLeg {
	legs := make([]TripLeg, len(providerLegs))
	for i, l := range providerLegs {
		legs[i] = TripLeg{
			DistanceMeters:  l.DistanceMeters,
			DistanceText:    l.DistanceText,
			DurationSeconds: l.DurationSeconds,
			DurationText:    l.DurationText,
		}
	}
	// At exactly two legs the second one is the ride, so only the access
	// walk is overwritten.
	switch {
	case len(legs) >= 3:
		overwriteWalk(legs, 0)
		overwriteWalk(legs, len(legs)-1)
	case len(legs) == 2:
		overwriteWalk(legs, 0)
	}
	return legs
}

func overwriteWalk(legs []TripLeg, i int) {
	dist := float64(legs[i].DistanceMeters)
	walk := FormatWalkingTime(dist)
	legs[i].WalkingDurationText = walk
	legs[i].DurationText = walk
	legs[i].DurationSeconds = EstimateWalkingMinutes(dist) * 60
}

// rideDistanceMeters picks the distance the jeepney fare applies to: the
// interior vehicle leg(s), never the access or egress walk. When the
// provider collapses waypoints and returns fewer legs, the fare falls back
// to the remaining leg - a known degraded-mode approximation kept for
// compatibility.
func rideDistanceMeters(legs []TripLeg) int {
	switch {
	case len(legs) >= 3:
		sum := 0
		for _, l := range legs[1 : len(legs)-1] {
			sum += l.DistanceMeters
		}
		return sum
	case len(legs) == 2:
		return legs[1].DistanceMeters
	case len(legs) == 1:
		return legs[0].DistanceMeters
	}
	return 0
}

// totalDistanceText mirrors the dashboard's display rule: multi-leg totals
// as tenths of a kilometer, single-leg trips reuse the provider's text.
func totalDistanceText(legs []TripLeg) string {
	if len(legs) == 1 {
		return legs[0].DistanceText
	}
	total := 0
	for _, l := range legs {
		total += l.DistanceMeters
	}
	return fmt.Sprintf("%.1f km", float64(total)/1000)
}

func totalDurationText(legs []TripLeg) string {
	totalSec := 0
	for _, l := range legs {
		totalSec += l.DurationSeconds
	}
	minutes := int(math.Round(float64(totalSec) / 60))
	if minutes > 60 {
		return fmt.Sprintf("%d hr %d min", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%d mins", minutes)
}

// legRecords converts trip legs to their persisted history form.
func legRecords(legs []TripLeg) []store.TripLegRecord {
	out := make([]store.TripLegRecord, len(legs))
	for i, l := range legs {
		out[i] = store.TripLegRecord{
			DistanceMeters:  l.DistanceMeters,
			DistanceText:    l.DistanceText,
			DurationSeconds: l.DurationSeconds,
			DurationText:    l.DurationText,
			WalkingDuration: l.WalkingDurationText,
		}
	}
	return out
}
