package commutewise

import "errors"

// Error taxonomy of the trip session controller. All of these are recovered
// at the UI boundary: the user sees a message and the planner returns to
// Idle. None are fatal, and there is no retry policy.
var (
	// ErrUnresolvedLocation means geocoding yielded no result or the
	// location service was unavailable.
	ErrUnresolvedLocation = errors.New("commutewise: could not resolve location")

	// ErrRoutingUnavailable means the directions provider returned no
	// itinerary.
	ErrRoutingUnavailable = errors.New("commutewise: no route available")

	// ErrSuperseded means a newer search or a cancellation arrived while
	// this one was in flight; its result was discarded.
	ErrSuperseded = errors.New("commutewise: search superseded")

	// ErrInvalidTransition means a session operation was requested in a
	// state that does not allow it.
	ErrInvalidTransition = errors.New("commutewise: invalid state transition")
)
