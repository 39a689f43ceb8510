package maps

import (
	"context"
	"errors"

	"github.com/commutewise/commutewise/route"
)

// ErrZeroResults is returned when the provider answers successfully but has
// no result for the request (unknown address, no drivable route).
var ErrZeroResults = errors.New("maps: zero results")

// ErrUnavailable is returned for transport failures and non-OK provider
// statuses.
var ErrUnavailable = errors.New("maps: service unavailable")

// GeocodeResult is the normalized outcome of a forward or reverse geocode.
type GeocodeResult struct {
	Coord            route.Coordinate
	FormattedAddress string
}

// Waypoint is an intermediate point of a directions request. Stopover
// waypoints split the itinerary into separate legs.
type Waypoint struct {
	Location route.Coordinate
	Stopover bool
}

// Leg is one continuous segment of a routed itinerary.
type Leg struct {
	DistanceMeters  int
	DistanceText    string
	DurationSeconds int
	DurationText    string
}

// Bounds is the bounding region of a routed itinerary.
type Bounds struct {
	Northeast route.Coordinate
	Southwest route.Coordinate
}

// RouteResult is the normalized outcome of a directions request: an ordered
// sequence of legs plus the overall bounding region.
type RouteResult struct {
	Legs   []Leg
	Bounds Bounds
}

// Geocoder resolves free-text addresses to coordinates and coordinates back
// to formatted addresses.
type Geocoder interface {
	Geocode(ctx context.Context, query string, bias *route.Coordinate) (GeocodeResult, error)
	ReverseGeocode(ctx context.Context, coord route.Coordinate) (GeocodeResult, error)
}

// Directions produces a routed itinerary through ordered waypoints.
type Directions interface {
	Route(ctx context.Context, origin, destination route.Coordinate, waypoints []Waypoint) (RouteResult, error)
}
