package route

// Coordinate is a WGS84 latitude/longitude pair. It is a value type and is
// never mutated after construction.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Stop is a boarding/alighting point along a route. Terminals mark the
// endpoints of the route; ordering among stops carries no meaning beyond that.
type Stop struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Coords      Coordinate `json:"coords"`
	Description string     `json:"description"`
	IsTerminal  bool       `json:"isTerminal,omitempty"`
}

// Status of a route.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Route is a fixed transport route. Path is an ordered polyline approximating
// the vehicle's physical route; the ordering defines the route direction and
// shape and must never be silently reordered.
type Route struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Path   []Coordinate `json:"path"`
	Stops  []Stop       `json:"stops"`
	Status string       `json:"status"`
}

// Terminals returns the stops flagged as terminals, in stored order.
func (r *Route) Terminals() []Stop {
	var out []Stop
	for _, s := range r.Stops {
		if s.IsTerminal {
			out = append(out, s)
		}
	}
	return out
}

// FindStop returns the stop with the given ID, or false when absent.
func (r *Route) FindStop(id string) (Stop, bool) {
	for _, s := range r.Stops {
		if s.ID == id {
			return s, true
		}
	}
	return Stop{}, false
}

// UpsertStop replaces the stop with a matching ID or appends it.
func (r *Route) UpsertStop(stop Stop) {
	for i, s := range r.Stops {
		if s.ID == stop.ID {
			r.Stops[i] = stop
			return
		}
	}
	r.Stops = append(r.Stops, stop)
}

// DeleteStop removes the stop with the given ID. It reports whether a stop
// was removed.
func (r *Route) DeleteStop(id string) bool {
	for i, s := range r.Stops {
		if s.ID == id {
			r.Stops = append(r.Stops[:i], r.Stops[i+1:]...)
			return true
		}
	}
	return false
}
