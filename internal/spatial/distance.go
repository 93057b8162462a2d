package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Earth's mean radius.
const EarthRadiusKm = 6371.0

// Haversine calculates the great-circle distance in kilometers between two
// points given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

// DistanceS2 calculates the same great-circle distance through the S2
// geometry library.
func DistanceS2(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// ValidCoordinate reports whether lat/lon form a usable WGS84 coordinate.
// Distance queries with invalid coordinates are treated as inactive rather
// than as errors.
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return s2.LatLngFromDegrees(lat, lon).IsValid()
}
