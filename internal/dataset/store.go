package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/flatfinder/rentals-backend-go/internal/models"
)

// ErrEmptyDataset is returned when no rows survive cleaning. Fatal to
// startup: the engine has nothing to query.
var ErrEmptyDataset = errors.New("dataset: no valid rows after cleaning")

// RawRow is one uncleaned listing record as read from the tabular source.
// All values arrive as strings; numeric coercion happens in Load.
type RawRow struct {
	Price          string
	Bedrooms       string
	Bathrooms      string
	Latitude       string
	Longitude      string
	DisplayAddress string
	AddedOn        string
	PropertyType   string
	URL            string
}

// RowSource reads raw listing rows from a tabular file.
type RowSource interface {
	Rows() ([]RawRow, error)
}

// Store owns the cleaned, ordered listing table plus the derived filter
// option sets. Built once at startup, read-only afterwards.
type Store struct {
	listings        []models.Listing
	bedroomOptions  []int
	bathroomOptions []int
	excluded        int
}

// Load reads all rows from source and cleans them into a Store. Rows whose
// price, latitude or longitude is absent or fails numeric coercion are
// dropped silently; only the exclusion count is logged. Returns
// ErrEmptyDataset when nothing survives.
func Load(source RowSource, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	rows, err := source.Rows()
	if err != nil {
		return nil, fmt.Errorf("dataset: read rows: %w", err)
	}

	s := &Store{listings: make([]models.Listing, 0, len(rows))}
	bedroomSet := make(map[int]struct{})
	bathroomSet := make(map[int]struct{})

	for _, row := range rows {
		price, ok := parseFloat(row.Price)
		if !ok {
			s.excluded++
			continue
		}
		lat, okLat := parseFloat(row.Latitude)
		lon, okLon := parseFloat(row.Longitude)
		if !okLat || !okLon {
			s.excluded++
			continue
		}

		bedrooms := parseCount(row.Bedrooms)
		bathrooms := parseCount(row.Bathrooms)

		area := strings.TrimSpace(row.DisplayAddress)
		if area == "" {
			area = "Unknown"
		}

		s.listings = append(s.listings, models.Listing{
			ID:             uuid.New(),
			Price:          price,
			Bedrooms:       bedrooms,
			Bathrooms:      bathrooms,
			Latitude:       lat,
			Longitude:      lon,
			Area:           area,
			DisplayAddress: strings.TrimSpace(row.DisplayAddress),
			AddedOn:        strings.TrimSpace(row.AddedOn),
			PropertyType:   strings.TrimSpace(row.PropertyType),
			URL:            strings.TrimSpace(row.URL),
		})

		if bedrooms >= 0 {
			bedroomSet[bedrooms] = struct{}{}
		}
		if bathrooms >= 0 {
			bathroomSet[bathrooms] = struct{}{}
		}
	}

	if len(s.listings) == 0 {
		return nil, ErrEmptyDataset
	}

	s.bedroomOptions = sortedKeys(bedroomSet)
	s.bathroomOptions = sortedKeys(bathroomSet)

	logger.Info("dataset loaded",
		"rows", len(rows),
		"kept", len(s.listings),
		"excluded", s.excluded,
	)
	return s, nil
}

// Listings returns the cleaned table in original row order. Callers must
// not mutate the returned slice.
func (s *Store) Listings() []models.Listing { return s.listings }

// Len returns the number of cleaned listings.
func (s *Store) Len() int { return len(s.listings) }

// BedroomOptions returns the sorted distinct non-negative bedroom counts.
func (s *Store) BedroomOptions() []int { return s.bedroomOptions }

// BathroomOptions returns the sorted distinct non-negative bathroom counts.
func (s *Store) BathroomOptions() []int { return s.bathroomOptions }

// Excluded returns how many raw rows were dropped during cleaning.
func (s *Store) Excluded() int { return s.excluded }

// parseFloat coerces a raw cell to a finite float64.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseCount coerces a raw room count. Non-numeric and fractional values
// are tolerated as missing.
func parseCount(s string) int {
	v, ok := parseFloat(s)
	if !ok || v != math.Trunc(v) {
		return models.CountMissing
	}
	return int(v)
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
