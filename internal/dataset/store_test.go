package dataset

import (
	"errors"
	"fmt"
	"testing"
)

// stubSource feeds fixed rows into Load.
type stubSource struct {
	rows []RawRow
	err  error
}

func (s stubSource) Rows() ([]RawRow, error) { return s.rows, s.err }

func validRow(i int) RawRow {
	return RawRow{
		Price:          fmt.Sprintf("%d", 1000+i*100),
		Bedrooms:       "2",
		Bathrooms:      "1",
		Latitude:       "51.51",
		Longitude:      "-0.12",
		DisplayAddress: "1 Test Street, London",
		URL:            "https://example.com/property/1",
	}
}

func TestLoadDropsRowsMissingCriticalFields(t *testing.T) {
	rows := []RawRow{
		validRow(0),
		{Price: "", Latitude: "51.5", Longitude: "-0.1"},        // missing price
		{Price: "abc", Latitude: "51.5", Longitude: "-0.1"},     // bad price
		{Price: "1200", Latitude: "", Longitude: "-0.1"},        // missing latitude
		{Price: "1200", Latitude: "51.5", Longitude: "oops"},    // bad longitude
		{Price: "1200", Latitude: "NaN", Longitude: "-0.1"},     // non-finite
		validRow(1),
	}

	store, err := Load(stubSource{rows: rows}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if store.Len() != 2 {
		t.Errorf("Len = %d; want 2", store.Len())
	}
	if store.Excluded() != 5 {
		t.Errorf("Excluded = %d; want 5", store.Excluded())
	}
}

func TestLoadToleratesMissingRoomCounts(t *testing.T) {
	row := validRow(0)
	row.Bedrooms = "studio"
	row.Bathrooms = ""

	store, err := Load(stubSource{rows: []RawRow{row}}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	l := store.Listings()[0]
	if l.HasBedrooms() {
		t.Error("unparseable bedrooms should be missing")
	}
	if l.HasBathrooms() {
		t.Error("empty bathrooms should be missing")
	}
	if len(store.BedroomOptions()) != 0 {
		t.Errorf("BedroomOptions = %v; want empty", store.BedroomOptions())
	}
}

func TestLoadOptionSetsSortedDistinct(t *testing.T) {
	var rows []RawRow
	for _, b := range []string{"3", "1", "2", "1", "3"} {
		row := validRow(0)
		row.Bedrooms = b
		rows = append(rows, row)
	}

	store, err := Load(stubSource{rows: rows}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := store.BedroomOptions()
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("BedroomOptions = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("BedroomOptions = %v; want %v", got, want)
		}
	}
}

func TestLoadAreaFallback(t *testing.T) {
	row := validRow(0)
	row.DisplayAddress = "  "

	store, err := Load(stubSource{rows: []RawRow{row}}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if area := store.Listings()[0].Area; area != "Unknown" {
		t.Errorf("Area = %q; want Unknown", area)
	}
}

func TestLoadEmptyDataset(t *testing.T) {
	_, err := Load(stubSource{rows: []RawRow{{Price: "x"}}}, nil)
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("err = %v; want ErrEmptyDataset", err)
	}

	_, err = Load(stubSource{}, nil)
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("err = %v; want ErrEmptyDataset", err)
	}
}

func TestLoadPreservesRowOrder(t *testing.T) {
	rows := make([]RawRow, 5)
	for i := range rows {
		rows[i] = validRow(i)
	}

	store, err := Load(stubSource{rows: rows}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for i, l := range store.Listings() {
		want := float64(1000 + i*100)
		if l.Price != want {
			t.Errorf("listing %d price = %v; want %v", i, l.Price, want)
		}
	}
}

func TestLoadSourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Load(stubSource{err: boom}, nil)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v; want wrapped source error", err)
	}
}
