package models

import (
	"github.com/flatfinder/rentals-backend-go/internal/spatial"
	"github.com/flatfinder/rentals-backend-go/internal/stats"
)

// PageInfo describes the current table page. StartIndex/EndIndex are the
// half-open window [StartIndex, EndIndex) into the paged view.
type PageInfo struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	StartIndex  int `json:"startIndex"`
	EndIndex    int `json:"endIndex"`
	TotalItems  int `json:"totalItems"`
}

// ListingRow is one table row: a listing plus its distance to the applied
// origin, rounded to three decimals. DistanceKm is 0 while no distance
// query is active.
type ListingRow struct {
	Listing
	DistanceKm float64 `json:"distanceKm"`
}

// ViewModel is the complete payload returned per view query. It carries
// everything the presentation layer renders: the statistics panel, the
// narrative, the table page, the map markers and the price chart.
type ViewModel struct {
	TotalCount    int    `json:"totalCount"`
	FilteredCount int    `json:"filteredCount"`
	AvgPrice      string `json:"avgPrice"`
	MedianPrice   string `json:"medianPrice"`
	AvgDistance   string `json:"avgDistance"`
	Narrative     string `json:"narrative"`

	Rows     []ListingRow `json:"rows"`
	PageInfo PageInfo     `json:"pageInfo"`
	HasPrev  bool         `json:"hasPrev"`
	HasNext  bool         `json:"hasNext"`

	PriceHistogram *stats.Histogram  `json:"priceHistogram,omitempty"`
	Viewport       *spatial.Viewport `json:"viewport,omitempty"`
	Origin         *DistanceQuery    `json:"origin,omitempty"`
}
