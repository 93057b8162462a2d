package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/flatfinder/rentals-backend-go/internal/dataset"
	"github.com/flatfinder/rentals-backend-go/internal/models"
	"github.com/flatfinder/rentals-backend-go/internal/query"
	"github.com/flatfinder/rentals-backend-go/pkg/response"
)

// ListingsHandler handles HTTP requests for the listings view.
type ListingsHandler struct {
	orch  *query.Orchestrator
	store *dataset.Store
}

// NewListingsHandler creates a new listings handler.
func NewListingsHandler(orch *query.Orchestrator, store *dataset.Store) *ListingsHandler {
	return &ListingsHandler{orch: orch, store: store}
}

// GetView handles GET /api/v1/listings/view. It binds the filter criteria,
// the navigation event and the display mode, and returns the complete view
// model for rendering.
func (h *ListingsHandler) GetView(c *gin.Context) {
	var q models.ViewQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	criteria, err := q.Criteria()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	vm := h.orch.BuildView(criteria, query.NavEvent(q.Nav), query.DisplayMode(q.Mode))
	response.Success(c, vm)
}

// ApplyDistance handles POST /api/v1/listings/distance, the explicit apply
// action. Invalid coordinates deactivate the distance query rather than
// producing an error.
func (h *ListingsHandler) ApplyDistance(c *gin.Context) {
	var body models.DistanceQuery
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid distance query body")
		return
	}

	active := h.orch.ApplyDistance(body.Lat, body.Lon)
	response.Success(c, gin.H{"active": active})
}

// ClearDistance handles DELETE /api/v1/listings/distance.
func (h *ListingsHandler) ClearDistance(c *gin.Context) {
	h.orch.ClearDistance()
	response.Success(c, gin.H{"active": false})
}

// GetOptions handles GET /api/v1/listings/options. It returns the data to
// populate the filter controls: the distinct room counts present in the
// dataset and the price slider bounds.
func (h *ListingsHandler) GetOptions(c *gin.Context) {
	response.Success(c, gin.H{
		"bedrooms":  h.store.BedroomOptions(),
		"bathrooms": h.store.BathroomOptions(),
		"price": gin.H{
			"min":     0,
			"max":     10000,
			"step":    100,
			"default": []int{2000, 4000},
		},
	})
}
