package query

import (
	"log/slog"
	"math"
	"sync"

	"github.com/paulmach/orb"

	"github.com/flatfinder/rentals-backend-go/internal/dataset"
	"github.com/flatfinder/rentals-backend-go/internal/models"
	"github.com/flatfinder/rentals-backend-go/internal/spatial"
	"github.com/flatfinder/rentals-backend-go/internal/stats"
)

// DisplayMode selects which view the table pages over.
type DisplayMode string

const (
	// ModeFiltered pages over the filtered view.
	ModeFiltered DisplayMode = "filtered"
	// ModeAll pages over the full cleaned dataset, decorated with the
	// last-applied distance column even when it no longer matches the
	// coordinate inputs.
	ModeAll DisplayMode = "all"
)

// priceBins matches the price distribution chart.
const priceBins = 30

// Orchestrator composes the store, the filter engine, the aggregator and
// the paginator into view models. It owns the only cross-call mutable
// state: the page position, the last seen criteria/mode and the
// last-applied distance query with its column.
type Orchestrator struct {
	store  *dataset.Store
	logger *slog.Logger

	mu           sync.Mutex
	paginator    *Paginator
	lastCriteria *models.FilterCriteria
	lastMode     DisplayMode
	origin       *models.DistanceQuery
	distances    []float64
}

// NewOrchestrator creates an orchestrator over the given store.
func NewOrchestrator(store *dataset.Store, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		store:     store,
		logger:    logger,
		paginator: NewPaginator(),
		lastMode:  ModeFiltered,
	}
}

// ApplyDistance is the explicit apply action: it recomputes the distance
// column for the given origin and resets pagination. This is the only
// trigger for recomputation; editing coordinates without applying leaves
// the previous column in place. Invalid coordinates clear the active
// query instead of failing and the returned bool reports whether a
// distance query is active afterwards.
func (o *Orchestrator) ApplyDistance(lat, lon float64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !spatial.ValidCoordinate(lat, lon) {
		o.logger.Warn("invalid distance origin, clearing distance query",
			"lat", lat, "lon", lon)
		o.origin = nil
		o.distances = nil
		o.paginator.Reset()
		return false
	}

	origin := models.DistanceQuery{Lat: lat, Lon: lon}
	o.origin = &origin
	o.distances = ComputeDistances(origin, o.store.Listings())
	o.paginator.Reset()
	o.logger.Info("distance query applied", "lat", lat, "lon", lon)
	return true
}

// ClearDistance drops the active distance query and its column.
func (o *Orchestrator) ClearDistance() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.origin = nil
	o.distances = nil
	o.paginator.Reset()
}

// BuildView runs one complete query: filter, aggregate, paginate, slice.
// Any change of criteria or display mode since the previous call resets
// the page to 1 before nav is applied.
func (o *Orchestrator) BuildView(criteria models.FilterCriteria, nav NavEvent, mode DisplayMode) models.ViewModel {
	o.mu.Lock()
	defer o.mu.Unlock()

	if mode != ModeAll {
		mode = ModeFiltered
	}
	if o.lastCriteria == nil || !criteria.Equal(*o.lastCriteria) || mode != o.lastMode {
		o.paginator.Reset()
	}
	saved := criteria
	o.lastCriteria = &saved
	o.lastMode = mode

	listings := o.store.Listings()
	distanceActive := o.origin != nil

	filtered := Filter(listings, o.distances, criteria)

	// Statistics, narrative, chart and map always describe the filtered
	// view, regardless of display mode.
	prices := make([]float64, len(filtered))
	var filteredDistances []float64
	if distanceActive {
		filteredDistances = make([]float64, len(filtered))
	}
	points := make([]orb.Point, len(filtered))
	for n, i := range filtered {
		prices[n] = listings[i].Price
		if distanceActive {
			filteredDistances[n] = o.distances[i]
		}
		points[n] = orb.Point{listings[i].Longitude, listings[i].Latitude}
	}
	summary := Summarize(o.store.Len(), prices, filteredDistances, distanceActive)

	// The table pages over the view selected by the display mode.
	paged := filtered
	if mode == ModeAll {
		paged = make([]int, len(listings))
		for i := range paged {
			paged[i] = i
		}
	}

	pageInfo := o.paginator.Apply(nav, len(paged))

	rows := make([]models.ListingRow, 0, pageInfo.EndIndex-pageInfo.StartIndex)
	for _, i := range paged[pageInfo.StartIndex:pageInfo.EndIndex] {
		row := models.ListingRow{Listing: listings[i]}
		if distanceActive {
			row.DistanceKm = roundKm(o.distances[i])
		}
		rows = append(rows, row)
	}

	vm := models.ViewModel{
		TotalCount:     o.store.Len(),
		FilteredCount:  len(filtered),
		AvgPrice:       summary.AvgPrice,
		MedianPrice:    summary.MedianPrice,
		AvgDistance:    summary.AvgDistance,
		Narrative:      summary.Narrative,
		Rows:           rows,
		PageInfo:       pageInfo,
		HasPrev:        pageInfo.CurrentPage > 1,
		HasNext:        pageInfo.CurrentPage < pageInfo.TotalPages,
		PriceHistogram: stats.NewHistogram(prices, priceBins),
		Viewport:       spatial.FitViewport(points),
	}
	if o.origin != nil {
		origin := *o.origin
		vm.Origin = &origin
	}
	return vm
}

// Origin returns the active distance query, or nil.
func (o *Orchestrator) Origin() *models.DistanceQuery {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.origin == nil {
		return nil
	}
	origin := *o.origin
	return &origin
}

// roundKm rounds to three decimals for display parity with the table.
func roundKm(v float64) float64 {
	return math.Round(v*1000) / 1000
}
