package route

import (
	"errors"
	"math"
)

// ErrEmptyPath is returned when a path operation is invoked on an empty
// polyline. Callers are expected to guarantee a non-empty route path.
var ErrEmptyPath = errors.New("route: empty path")

// NearestPointIndex returns the index of the path vertex closest to target.
// Distance is squared Euclidean in degree space; over a route span of a few
// kilometers the geodesic correction is negligible for a comparative search.
// Ties go to the first occurrence in scan order.
func NearestPointIndex(target Coordinate, path []Coordinate) (int, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}
	best := 0
	bestDist := math.MaxFloat64
	for i, p := range path {
		dLat := target.Lat - p.Lat
		dLng := target.Lng - p.Lng
		d := dLat*dLat + dLng*dLng
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, nil
}

// NearestPointOnPath snaps target onto the closest vertex of path. The
// returned coordinate is always one of the input vertices, never an
// interpolated point.
func NearestPointOnPath(target Coordinate, path []Coordinate) (Coordinate, error) {
	idx, err := NearestPointIndex(target, path)
	if err != nil {
		return Coordinate{}, err
	}
	return path[idx], nil
}

// HaversineKM returns the great-circle distance between two coordinates in
// kilometers.
func HaversineKM(a, b Coordinate) float64 {
	const earthRadiusKM = 6371.0
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180
	la1 := a.Lat * math.Pi / 180
	la2 := b.Lat * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKM * c
}

// PathLengthKM sums the haversine distances along consecutive vertices of a
// polyline.
func PathLengthKM(path []Coordinate) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += HaversineKM(path[i-1], path[i])
	}
	return total
}
