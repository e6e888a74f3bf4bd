package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/travelworks/backend/internal/application/catalog"
)

// TravelServiceHandler handles travel service master data HTTP requests
type TravelServiceHandler struct {
	BaseHandler
	serviceService *catalogapp.TravelServiceService
}

// NewTravelServiceHandler creates a new travel service handler
func NewTravelServiceHandler(serviceService *catalogapp.TravelServiceService) *TravelServiceHandler {
	return &TravelServiceHandler{serviceService: serviceService}
}

// Create creates a new travel service
func (h *TravelServiceHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req catalogapp.CreateTravelServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.serviceService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// GetByID returns a travel service by ID
func (h *TravelServiceHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid travel service ID")
		return
	}

	result, err := h.serviceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List returns travel services with filtering and pagination
func (h *TravelServiceHandler) List(c *gin.Context) {
	var filter catalogapp.MasterListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	results, total, err := h.serviceService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, results, total, filter.Page, filter.PageSize)
}

// Update updates a travel service's details
func (h *TravelServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid travel service ID")
		return
	}

	var req catalogapp.UpdateTravelServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.serviceService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a travel service that is not referenced by any booking
func (h *TravelServiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid travel service ID")
		return
	}

	if err := h.serviceService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
