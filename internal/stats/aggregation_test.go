package stats

import "testing"

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 5},
		{"several", []float64{1000, 2000, 3000}, 2000},
	}

	for _, tt := range tests {
		if got := Mean(tt.values); got != tt.want {
			t.Errorf("%s: Mean = %v; want %v", tt.name, got, tt.want)
		}
	}
}

func TestMedian(t *testing.T) {
	if got := Median(nil); got != 0 {
		t.Errorf("Median(nil) = %v; want 0", got)
	}

	// Median must not depend on input order.
	got := Median([]float64{3000, 1000, 2000})
	if got != 2000 {
		t.Errorf("Median = %v; want 2000", got)
	}
}

func TestNewHistogramEmpty(t *testing.T) {
	if h := NewHistogram(nil, 30); h != nil {
		t.Errorf("NewHistogram(nil) = %+v; want nil", h)
	}
	if h := NewHistogram([]float64{1, 2}, 0); h != nil {
		t.Errorf("NewHistogram with 0 bins = %+v; want nil", h)
	}
}

func TestNewHistogramIdenticalValues(t *testing.T) {
	h := NewHistogram([]float64{1500, 1500, 1500}, 30)
	if h == nil {
		t.Fatal("NewHistogram returned nil")
	}
	if len(h.Counts) != 1 || h.Counts[0] != 3 {
		t.Errorf("Counts = %v; want [3]", h.Counts)
	}
}

func TestNewHistogramCountsSum(t *testing.T) {
	values := []float64{100, 250, 250, 900, 1800, 2500, 3300, 9990}
	h := NewHistogram(values, 30)
	if h == nil {
		t.Fatal("NewHistogram returned nil")
	}

	if len(h.Counts) != 30 {
		t.Fatalf("len(Counts) = %d; want 30", len(h.Counts))
	}
	if len(h.Dividers) != 31 {
		t.Fatalf("len(Dividers) = %d; want 31", len(h.Dividers))
	}

	var sum float64
	for _, c := range h.Counts {
		sum += c
	}
	if sum != float64(len(values)) {
		t.Errorf("counts sum to %v; want %d", sum, len(values))
	}
}
