package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/travelworks/backend/internal/application/catalog"
)

// HotelHandler handles hotel master data HTTP requests
type HotelHandler struct {
	BaseHandler
	hotelService *catalogapp.HotelService
}

// NewHotelHandler creates a new hotel handler
func NewHotelHandler(hotelService *catalogapp.HotelService) *HotelHandler {
	return &HotelHandler{hotelService: hotelService}
}

// Create creates a new hotel
func (h *HotelHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req catalogapp.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.hotelService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// GetByID returns a hotel by ID
func (h *HotelHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	result, err := h.hotelService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List returns hotels with filtering and pagination
func (h *HotelHandler) List(c *gin.Context) {
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

	results, total, err := h.hotelService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, results, total, filter.Page, filter.PageSize)
}

// Update updates a hotel's details
func (h *HotelHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	var req catalogapp.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.hotelService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a hotel that is not referenced by any booking
func (h *HotelHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	if err := h.hotelService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
