package query

import (
	"testing"

	"github.com/flatfinder/rentals-backend-go/internal/models"
	"github.com/flatfinder/rentals-backend-go/internal/spatial"
)

func TestComputeDistancesMatchesHaversine(t *testing.T) {
	origin := models.DistanceQuery{Lat: 51.5074, Lon: -0.1278}

	// More listings than one worker chunk.
	listings := make([]models.Listing, 1200)
	for i := range listings {
		listings[i] = models.Listing{
			Latitude:  51.4 + float64(i%100)*0.001,
			Longitude: -0.2 + float64(i/100)*0.01,
		}
	}

	got := ComputeDistances(origin, listings)
	if len(got) != len(listings) {
		t.Fatalf("len = %d; want %d", len(got), len(listings))
	}

	for i, l := range listings {
		want := spatial.Haversine(origin.Lat, origin.Lon, l.Latitude, l.Longitude)
		if got[i] != want {
			t.Fatalf("distance[%d] = %v; want %v", i, got[i], want)
		}
	}
}

func TestComputeDistancesEmpty(t *testing.T) {
	got := ComputeDistances(models.DistanceQuery{Lat: 51.5, Lon: -0.1}, nil)
	if len(got) != 0 {
		t.Errorf("len = %d; want 0", len(got))
	}
}
