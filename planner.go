package commutewise

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/commutewise/commutewise/fare"
	"github.com/commutewise/commutewise/maps"
	"github.com/commutewise/commutewise/route"
	"github.com/commutewise/commutewise/store"
	"github.com/commutewise/commutewise/tracking"
)

// State of the trip session controller.
type State int

const (
	StateIdle State = iota
	StateResolving
	StateSnapping
	StateRouting
	StatePriced
	StateNavigating
	StateCompleted
	StateCancelled
)

var stateNames = map[State]string{
	StateIdle:       "Idle",
	StateResolving:  "Resolving",
	StateSnapping:   "Snapping",
	StateRouting:    "Routing",
	StatePriced:     "Priced",
	StateNavigating: "Navigating",
	StateCompleted:  "Completed",
	StateCancelled:  "Cancelled",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// CurrentLocationSentinel is the origin/destination text that substitutes
// the last known device location instead of geocoding.
const CurrentLocationSentinel = "Your Location"

// historyLocationLabel is how the sentinel is recorded in trip history.
const historyLocationLabel = "My Location"

// Planner is the trip session controller: an explicit state machine over a
// single planned trip. A new search supersedes any in-flight one, and
// responses belonging to a superseded search are discarded.
//
// Planner is not safe for concurrent use.
type Planner struct {
	store      *store.Store
	tracker    *tracking.Tracker
	geocoder   maps.Geocoder
	directions maps.Directions
	session    Session

	state     State
	seq       uint64
	lastKnown *route.Coordinate
	current   *TripResult

	now func() time.Time
}

func NewPlanner(st *store.Store, tracker *tracking.Tracker, geocoder maps.Geocoder, directions maps.Directions, session Session) *Planner {
	return &Planner{
		store:      st,
		tracker:    tracker,
		geocoder:   geocoder,
		directions: directions,
		session:    session,
		state:      StateIdle,
		now:        time.Now,
	}
}

// State returns the controller's current state.
func (p *Planner) State() State { return p.state }

// Result returns the active priced trip, or nil outside Priced/Navigating.
func (p *Planner) Result() *TripResult { return p.current }

// SetLastKnownLocation records the device location substituted for the
// "Your Location" sentinel.
func (p *Planner) SetLastKnownLocation(c route.Coordinate) {
	p.lastKnown = &c
}

// Search plans and prices a trip from origin to destination. Either may be
// free text or the CurrentLocationSentinel. On any failure the controller
// returns to Idle and the error is surfaced to the caller; there is no
// retry.
func (p *Planner) Search(ctx context.Context, origin, destination string) (*TripResult, error) {
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", ErrUnresolvedLocation)
	}

	// Supersede any in-flight or displayed trip.
	p.seq++
	seq := p.seq
	p.current = nil

	p.state = StateResolving
	originCoord, err := p.resolve(ctx, origin)
	if err != nil {
		return nil, p.fail(err)
	}
	destCoord, err := p.resolve(ctx, destination)
	if err != nil {
		return nil, p.fail(err)
	}
	if seq != p.seq {
		return nil, ErrSuperseded
	}

	p.state = StateSnapping
	activeRoute := p.store.Route()
	boarding, err := route.NearestPointOnPath(originCoord, activeRoute.Path)
	if err != nil {
		return nil, p.fail(fmt.Errorf("%w: %v", ErrRoutingUnavailable, err))
	}
	alighting, err := route.NearestPointOnPath(destCoord, activeRoute.Path)
	if err != nil {
		return nil, p.fail(fmt.Errorf("%w: %v", ErrRoutingUnavailable, err))
	}

	p.state = StateRouting
	itinerary, err := p.directions.Route(ctx, originCoord, destCoord, []maps.Waypoint{
		{Location: boarding, Stopover: true},
		{Location: alighting, Stopover: true},
	})
	if err != nil {
		return nil, p.fail(fmt.Errorf("%w: %v", ErrRoutingUnavailable, err))
	}
	if seq != p.seq {
		return nil, ErrSuperseded
	}
	if len(itinerary.Legs) == 0 {
		return nil, p.fail(ErrRoutingUnavailable)
	}

	legs := newTripLegs(itinerary.Legs)
	cfg := p.store.FareConfig()
	amount := fare.Compute(float64(rideDistanceMeters(legs)), cfg, p.session.EffectiveDiscount())

	result := &TripResult{
		Origin:            normalizeLabel(origin),
		Destination:       normalizeLabel(destination),
		TotalDistanceText: totalDistanceText(legs),
		TotalDurationText: totalDurationText(legs),
		FareText:          fare.FormatPHP(amount),
		FareAmount:        amount,
		Legs:              legs,
	}

	p.current = result
	p.state = StatePriced
	p.recordPriced(result)
	return result, nil
}

// StartNavigation flips the session into navigation mode. No recomputation
// occurs.
func (p *Planner) StartNavigation() error {
	if p.state != StatePriced {
		return fmt.Errorf("%w: cannot navigate from %s", ErrInvalidTransition, p.state)
	}
	p.state = StateNavigating
	return nil
}

// Complete confirms arrival and resets the session. History and stats were
// already persisted when the trip was priced.
func (p *Planner) Complete() error {
	if p.state != StateNavigating {
		return fmt.Errorf("%w: cannot complete from %s", ErrInvalidTransition, p.state)
	}
	p.state = StateCompleted
	p.reset()
	return nil
}

// Cancel aborts the active trip before completion and clears all in-flight
// state. Nothing is persisted beyond what already happened at pricing time.
func (p *Planner) Cancel() error {
	switch p.state {
	case StateIdle:
		return fmt.Errorf("%w: nothing to cancel", ErrInvalidTransition)
	case StateCompleted, StateCancelled:
		return fmt.Errorf("%w: trip already finished", ErrInvalidTransition)
	}
	p.seq++ // discard any in-flight provider response
	p.state = StateCancelled
	p.reset()
	return nil
}

func (p *Planner) reset() {
	p.current = nil
	p.state = StateIdle
}

func (p *Planner) fail(err error) error {
	p.current = nil
	p.state = StateIdle
	return err
}

func (p *Planner) resolve(ctx context.Context, text string) (route.Coordinate, error) {
	if text == CurrentLocationSentinel {
		if p.lastKnown == nil {
			return route.Coordinate{}, fmt.Errorf("%w: device location unknown", ErrUnresolvedLocation)
		}
		return *p.lastKnown, nil
	}
	var bias *route.Coordinate
	if p.lastKnown != nil {
		bias = p.lastKnown
	}
	res, err := p.geocoder.Geocode(ctx, text, bias)
	if err != nil {
		return route.Coordinate{}, fmt.Errorf("%w: %q: %v", ErrUnresolvedLocation, text, err)
	}
	return res.Coord, nil
}

// recordPriced applies the side effects of reaching Priced: one aggregate
// stats increment, and one history append for non-guest sessions. Failures
// here are logged, not surfaced; the priced trip is still shown.
func (p *Planner) recordPriced(result *TripResult) {
	// Sentinel destinations are counted under the normalized "My Location"
	// label, so all device-location trips share one topLocations bucket.
	if _, err := p.tracker.RecordSearch(result.Destination, result.FareAmount); err != nil {
		log.Printf("planner: failed to record stats: %v", err)
	}
	if p.session.IsGuest() {
		return
	}
	now := p.now()
	item := store.HistoryItem{
		ID:            uuid.NewString(),
		Origin:        result.Origin,
		Destination:   result.Destination,
		Date:          now.Format("Jan 2, 2006"),
		Time:          now.Format("03:04 PM"),
		TotalDistance: result.TotalDistanceText,
		TotalDuration: result.TotalDurationText,
		Fare:          result.FareText,
		Legs:          legRecords(result.Legs),
	}
	if err := p.store.AppendHistory(p.session.Username, item); err != nil {
		log.Printf("planner: failed to append history: %v", err)
	}
}

func normalizeLabel(text string) string {
	if text == CurrentLocationSentinel {
		return historyLocationLabel
	}
	return text
}
