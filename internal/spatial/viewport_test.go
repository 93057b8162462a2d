package spatial

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestFitViewportEmpty(t *testing.T) {
	if vp := FitViewport(nil); vp != nil {
		t.Errorf("FitViewport(nil) = %+v; want nil", vp)
	}
}

func TestFitViewport(t *testing.T) {
	points := []orb.Point{
		{-0.1, 51.5}, // lon, lat
		{-0.3, 51.7},
		{-0.2, 51.6},
	}

	vp := FitViewport(points)
	if vp == nil {
		t.Fatal("FitViewport returned nil for non-empty points")
	}

	if vp.MinLat != 51.5 || vp.MaxLat != 51.7 {
		t.Errorf("lat bounds = [%v, %v]; want [51.5, 51.7]", vp.MinLat, vp.MaxLat)
	}
	if vp.MinLon != -0.3 || vp.MaxLon != -0.1 {
		t.Errorf("lon bounds = [%v, %v]; want [-0.3, -0.1]", vp.MinLon, vp.MaxLon)
	}

	const eps = 1e-9
	if diff := vp.CenterLat - 51.6; diff > eps || diff < -eps {
		t.Errorf("CenterLat = %v; want 51.6", vp.CenterLat)
	}
	if diff := vp.CenterLon - (-0.2); diff > eps || diff < -eps {
		t.Errorf("CenterLon = %v; want -0.2", vp.CenterLon)
	}
}
