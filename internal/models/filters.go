package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// FilterCriteria is the core filter input for a view query. Nil pointer
// fields mean "any" for the room counts and "no cutoff" for distance; a
// MaxDistanceKm of 0 is a valid cutoff, not an absent one.
type FilterCriteria struct {
	Bedrooms      *int
	Bathrooms     *int
	PriceMin      float64
	PriceMax      float64
	MaxDistanceKm *float64
}

// Equal reports whether two criteria describe the same filter. Used to
// decide when a criteria change must reset pagination.
func (c FilterCriteria) Equal(o FilterCriteria) bool {
	return intPtrEqual(c.Bedrooms, o.Bedrooms) &&
		intPtrEqual(c.Bathrooms, o.Bathrooms) &&
		c.PriceMin == o.PriceMin &&
		c.PriceMax == o.PriceMax &&
		floatPtrEqual(c.MaxDistanceKm, o.MaxDistanceKm)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// DistanceQuery is the reference point for the distance column.
type DistanceQuery struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ViewQuery represents the view request parameters as bound from the query
// string.
type ViewQuery struct {
	Bedrooms      string   `form:"bedrooms"`      // "", "any" or a non-negative integer
	Bathrooms     string   `form:"bathrooms"`     // same encoding as bedrooms
	PriceMin      *float64 `form:"priceMin"`      // absent = 0
	PriceMax      *float64 `form:"priceMax"`      // absent = no upper bound
	MaxDistanceKm *float64 `form:"maxDistanceKm"` // absent = no distance cutoff
	Nav           string   `form:"nav"`           // none, prev, next
	Mode          string   `form:"mode"`          // filtered, all
}

// Criteria converts the bound query parameters into core filter criteria.
func (q ViewQuery) Criteria() (FilterCriteria, error) {
	c := FilterCriteria{PriceMax: math.MaxFloat64}

	if q.PriceMin != nil {
		c.PriceMin = *q.PriceMin
	}
	if q.PriceMax != nil {
		c.PriceMax = *q.PriceMax
	}

	bedrooms, any, err := parseCountParam(q.Bedrooms)
	if err != nil {
		return c, errors.New("bedrooms " + err.Error())
	}
	if !any {
		c.Bedrooms = &bedrooms
	}

	bathrooms, any, err := parseCountParam(q.Bathrooms)
	if err != nil {
		return c, errors.New("bathrooms " + err.Error())
	}
	if !any {
		c.Bathrooms = &bathrooms
	}

	c.MaxDistanceKm = q.MaxDistanceKm
	return c, nil
}

// parseCountParam interprets a room-count parameter. Empty, "any" and "all"
// all mean no selection.
func parseCountParam(s string) (value int, any bool, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "any" || s == "all" {
		return 0, true, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, false, errors.New(`must be a non-negative integer or "any"`)
	}
	return v, false, nil
}
