package spatial

import (
	"math"
	"testing"
)

func TestHaversineZeroSelfDistance(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{51.5074, -0.1278},
		{-33.8688, 151.2093},
		{89.9, 179.9},
		{-89.9, -179.9},
	}

	for _, p := range points {
		if d := Haversine(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("Haversine(%v, %v, same) = %v; want 0", p[0], p[1], d)
		}
	}
}

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{51.5074, -0.1278, 48.8566, 2.3522},
		{51.5188, -0.0814, 51.5316, -0.1236},
		{0, 0, -45, 120},
		{10, -170, -10, 170},
	}

	for _, p := range pairs {
		ab := Haversine(p[0], p[1], p[2], p[3])
		ba := Haversine(p[2], p[3], p[0], p[1])
		if ab != ba {
			t.Errorf("Haversine not symmetric: %v vs %v for %v", ab, ba, p)
		}
	}
}

func TestHaversineOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is about 111.2 km on a 6371 km sphere.
	got := Haversine(51, 0, 52, 0)
	want := 111.19
	if math.Abs(got-want) > 0.1 {
		t.Errorf("Haversine(51,0,52,0) = %v; want ~%v", got, want)
	}
}

func TestHaversineMatchesS2(t *testing.T) {
	pairs := [][4]float64{
		{51.5074, -0.1278, 51.5188, -0.0814},
		{51.5074, -0.1278, 48.8566, 2.3522},
		{40.7128, -74.0060, 34.0522, -118.2437},
		{-36.8485, 174.7633, 51.5074, -0.1278},
	}

	for _, p := range pairs {
		formula := Haversine(p[0], p[1], p[2], p[3])
		s2dist := DistanceS2(p[0], p[1], p[2], p[3])
		if math.Abs(formula-s2dist) > 1e-6 {
			t.Errorf("Haversine = %v, DistanceS2 = %v for %v", formula, s2dist, p)
		}
	}
}

func TestValidCoordinate(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     bool
	}{
		{51.5074, -0.1278, true},
		{0, 0, true},
		{90, 180, true},
		{-90, -180, true},
		{91, 0, false},
		{0, 181, false},
		{math.NaN(), 0, false},
		{0, math.NaN(), false},
	}

	for _, tt := range tests {
		if got := ValidCoordinate(tt.lat, tt.lon); got != tt.want {
			t.Errorf("ValidCoordinate(%v, %v) = %v; want %v", tt.lat, tt.lon, got, tt.want)
		}
	}
}
