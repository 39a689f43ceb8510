package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/commutewise/commutewise/route"
)

const (
	defaultGeocodeURL    = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultDirectionsURL = "https://maps.googleapis.com/maps/api/directions/json"

	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 15 * time.Minute
)

// ClientOptions configures a Client. Zero values fall back to the Google
// Maps web-service endpoints and sensible timeouts.
type ClientOptions struct {
	APIKey        string
	GeocodeURL    string
	DirectionsURL string
	Region        string // ccTLD region bias, e.g. "ph"
	Language      string
	Timeout       time.Duration
	CacheTTL      time.Duration
}

// Client implements Geocoder and Directions over the provider's JSON web
// services. Geocode responses are memoized so repeated searches of the same
// text do not re-hit the provider.
type Client struct {
	opts       ClientOptions
	httpClient *http.Client
	cache      *gocache.Cache
}

func NewClient(opts ClientOptions) *Client {
	if opts.GeocodeURL == "" {
		opts.GeocodeURL = defaultGeocodeURL
	}
	if opts.DirectionsURL == "" {
		opts.DirectionsURL = defaultDirectionsURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	return &Client{
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.Timeout},
		cache:      gocache.New(opts.CacheTTL, 2*opts.CacheTTL),
	}
}

func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return nil
}

// Provider wire shapes. Validation and normalization happen here, once,
// immediately after the call; nothing downstream sees these types.

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location latLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Bounds struct {
			Northeast latLng `json:"northeast"`
			Southwest latLng `json:"southwest"`
		} `json:"bounds"`
		Legs []struct {
			Distance struct {
				Text  string `json:"text"`
				Value int    `json:"value"`
			} `json:"distance"`
			Duration struct {
				Text  string `json:"text"`
				Value int    `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

func (c *Client) geocodeCall(ctx context.Context, params url.Values) (GeocodeResult, error) {
	if c.opts.APIKey != "" {
		params.Set("key", c.opts.APIKey)
	}
	if c.opts.Region != "" {
		params.Set("region", c.opts.Region)
	}
	if c.opts.Language != "" {
		params.Set("language", c.opts.Language)
	}

	cacheKey := params.Encode()
	if hit, ok := c.cache.Get(cacheKey); ok {
		return hit.(GeocodeResult), nil
	}

	var resp geocodeResponse
	if err := c.get(ctx, c.opts.GeocodeURL+"?"+params.Encode(), &resp); err != nil {
		return GeocodeResult{}, err
	}
	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return GeocodeResult{}, ErrZeroResults
	default:
		return GeocodeResult{}, fmt.Errorf("%w: geocode status %s", ErrUnavailable, resp.Status)
	}
	if len(resp.Results) == 0 {
		return GeocodeResult{}, ErrZeroResults
	}

	r := resp.Results[0]
	out := GeocodeResult{
		Coord:            route.Coordinate{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		FormattedAddress: r.FormattedAddress,
	}
	c.cache.SetDefault(cacheKey, out)
	return out, nil
}

// Geocode resolves a free-text address. An optional bias coordinate narrows
// ambiguous queries toward the route's area.
func (c *Client) Geocode(ctx context.Context, query string, bias *route.Coordinate) (GeocodeResult, error) {
	params := url.Values{}
	params.Set("address", query)
	if bias != nil {
		params.Set("bounds", fmt.Sprintf("%f,%f|%f,%f", bias.Lat-0.05, bias.Lng-0.05, bias.Lat+0.05, bias.Lng+0.05))
	}
	return c.geocodeCall(ctx, params)
}

// ReverseGeocode resolves a coordinate to a formatted address.
func (c *Client) ReverseGeocode(ctx context.Context, coord route.Coordinate) (GeocodeResult, error) {
	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", coord.Lat, coord.Lng))
	return c.geocodeCall(ctx, params)
}

// Route requests a driven itinerary through the given stopover waypoints and
// normalizes the legs.
func (c *Client) Route(ctx context.Context, origin, destination route.Coordinate, waypoints []Waypoint) (RouteResult, error) {
	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	params.Set("destination", fmt.Sprintf("%f,%f", destination.Lat, destination.Lng))
	params.Set("mode", "driving")
	if c.opts.APIKey != "" {
		params.Set("key", c.opts.APIKey)
	}
	if c.opts.Language != "" {
		params.Set("language", c.opts.Language)
	}
	if len(waypoints) > 0 {
		parts := make([]string, 0, len(waypoints))
		for _, w := range waypoints {
			p := fmt.Sprintf("%f,%f", w.Location.Lat, w.Location.Lng)
			if !w.Stopover {
				p = "via:" + p
			}
			parts = append(parts, p)
		}
		params.Set("waypoints", strings.Join(parts, "|"))
	}

	var resp directionsResponse
	if err := c.get(ctx, c.opts.DirectionsURL+"?"+params.Encode(), &resp); err != nil {
		return RouteResult{}, err
	}
	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return RouteResult{}, ErrZeroResults
	default:
		return RouteResult{}, fmt.Errorf("%w: directions status %s", ErrUnavailable, resp.Status)
	}
	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return RouteResult{}, ErrZeroResults
	}

	r := resp.Routes[0]
	out := RouteResult{
		Bounds: Bounds{
			Northeast: route.Coordinate{Lat: r.Bounds.Northeast.Lat, Lng: r.Bounds.Northeast.Lng},
			Southwest: route.Coordinate{Lat: r.Bounds.Southwest.Lat, Lng: r.Bounds.Southwest.Lng},
		},
	}
	for _, leg := range r.Legs {
		out.Legs = append(out.Legs, Leg{
			DistanceMeters:  leg.Distance.Value,
			DistanceText:    leg.Distance.Text,
			DurationSeconds: leg.Duration.Value,
			DurationText:    leg.Duration.Text,
		})
	}
	return out, nil
}
