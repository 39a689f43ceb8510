// Package route holds the fixed-route data model (polyline paths, stops,
// terminals) and the polyline geometry helpers used to snap arbitrary
// coordinates onto a route.
package route
