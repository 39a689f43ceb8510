package commutewise

import (
	"fmt"
	"math"
)

// Walking pace assumed for access/egress legs, roughly 4.8 km/h.
const walkingSpeedMetersPerMinute = 80

// EstimateWalkingMinutes returns the walking time for a distance, rounded
// up so a positive distance never estimates to zero minutes.
func EstimateWalkingMinutes(distanceMeters float64) int {
	if distanceMeters <= 0 {
		return 0
	}
	return int(math.Ceil(distanceMeters / walkingSpeedMetersPerMinute))
}

// FormatWalkingTime renders a walking estimate as "M min", or
// "H hr M min" from an hour up.
func FormatWalkingTime(distanceMeters float64) string {
	minutes := EstimateWalkingMinutes(distanceMeters)
	if minutes >= 60 {
		return fmt.Sprintf("%d hr %d min", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%d min", minutes)
}
