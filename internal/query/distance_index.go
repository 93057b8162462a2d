package query

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/flatfinder/rentals-backend-go/internal/models"
	"github.com/flatfinder/rentals-backend-go/internal/spatial"
)

// distanceChunk is the number of listings handed to one worker when the
// distance column is recomputed.
const distanceChunk = 512

// ComputeDistances returns the distance in kilometers from origin to every
// listing, preserving table order. Pure and deterministic; the chunked
// workers each own a disjoint index range of the output.
func ComputeDistances(origin models.DistanceQuery, listings []models.Listing) []float64 {
	out := make([]float64, len(listings))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for start := 0; start < len(listings); start += distanceChunk {
		start := start
		end := min(start+distanceChunk, len(listings))
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = spatial.Haversine(origin.Lat, origin.Lon,
					listings[i].Latitude, listings[i].Longitude)
			}
			return nil
		})
	}

	// Workers never fail.
	_ = g.Wait()
	return out
}
