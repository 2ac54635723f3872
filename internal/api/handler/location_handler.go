package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KKK-90/POSTRKR-App/internal/dto"
	"github.com/KKK-90/POSTRKR-App/internal/service"
	"github.com/KKK-90/POSTRKR-App/pkg/response"
)

// LocationHandler location CRUD endpoints.
type LocationHandler struct {
	locationSvc service.LocationService
}

// NewLocationHandler creates a LocationHandler.
func NewLocationHandler(locationSvc service.LocationService) *LocationHandler {
	return &LocationHandler{locationSvc: locationSvc}
}

// ListLocations all records by slNo.
// GET /api/locations
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationSvc.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, locations)
}

// GetLocation one record.
// GET /api/locations/:id
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, ok := parseLocationID(c)
	if !ok {
		return
	}

	location, err := h.locationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, location)
}

// CreateLocation create with defaults.
// POST /api/locations
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	location, err := h.locationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, location)
}

// UpdateLocation partial update.
// PUT /api/locations/:id
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id, ok := parseLocationID(c)
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	location, err := h.locationSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, location)
}

// DeleteLocation delete and renumber.
// DELETE /api/locations/:id
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, ok := parseLocationID(c)
	if !ok {
		return
	}

	if err := h.locationSvc.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Ack(c)
}

// parseLocationID reads :id. A non-integer id names no record, so it is a 404.
func parseLocationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, service.ErrLocationNotFound.Error())
		return 0, false
	}
	return id, true
}
