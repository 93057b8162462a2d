package spatial

import "github.com/paulmach/orb"

// Viewport describes the map window enclosing a set of points, centered on
// their mean coordinate.
type Viewport struct {
	CenterLat float64 `json:"centerLat"`
	CenterLon float64 `json:"centerLon"`
	MinLat    float64 `json:"minLat"`
	MinLon    float64 `json:"minLon"`
	MaxLat    float64 `json:"maxLat"`
	MaxLon    float64 `json:"maxLon"`
}

// FitViewport returns the viewport for the given points, or nil for an
// empty set. Points use orb's lon/lat axis order.
func FitViewport(points []orb.Point) *Viewport {
	if len(points) == 0 {
		return nil
	}

	bound := orb.MultiPoint(points).Bound()

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat()
		sumLon += p.Lon()
	}
	n := float64(len(points))

	return &Viewport{
		CenterLat: sumLat / n,
		CenterLon: sumLon / n,
		MinLat:    bound.Min.Lat(),
		MinLon:    bound.Min.Lon(),
		MaxLat:    bound.Max.Lat(),
		MaxLon:    bound.Max.Lon(),
	}
}
