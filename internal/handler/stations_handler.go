package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/flatfinder/rentals-backend-go/pkg/response"
)

// Station is a quick-select origin preset for the distance filter.
type Station struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

var stations = []Station{
	{Name: "Liverpool Street", Lat: 51.5188, Lon: -0.0814},
	{Name: "Moorgate", Lat: 51.5187, Lon: -0.0890},
	{Name: "Aldgate", Lat: 51.5144, Lon: -0.0757},
	{Name: "Bank", Lat: 51.5112, Lon: -0.0879},
	{Name: "Aldgate East", Lat: 51.5153, Lon: -0.0718},
	{Name: "King's Cross", Lat: 51.5316, Lon: -0.1236},
	{Name: "Farringdon", Lat: 51.5203, Lon: -0.1055},
}

// GetStations handles GET /api/v1/stations.
func (h *ListingsHandler) GetStations(c *gin.Context) {
	response.Success(c, stations)
}
