package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/travelworks/backend/internal/domain/catalog"
	"github.com/travelworks/backend/internal/domain/shared"
)

// CreateHotelRequest represents a request to create a hotel master record
type CreateHotelRequest struct {
	Name             string          `json:"name" binding:"required,min=1,max=200"`
	City             string          `json:"city" binding:"max=100"`
	CostPrice        decimal.Decimal `json:"cost_price" binding:"required"`
	MarkupPercentage decimal.Decimal `json:"markup_percentage"`
}

// UpdateHotelRequest represents a request to update a hotel master record
type UpdateHotelRequest struct {
	Name             *string          `json:"name" binding:"omitempty,min=1,max=200"`
	City             *string          `json:"city" binding:"omitempty,max=100"`
	CostPrice        *decimal.Decimal `json:"cost_price"`
	MarkupPercentage *decimal.Decimal `json:"markup_percentage"`
}

// CreateTravelServiceRequest represents a request to create a service master record
type CreateTravelServiceRequest struct {
	Name             string          `json:"name" binding:"required,min=1,max=200"`
	Description      string          `json:"description" binding:"max=500"`
	CostPrice        decimal.Decimal `json:"cost_price" binding:"required"`
	MarkupPercentage decimal.Decimal `json:"markup_percentage"`
}

// UpdateTravelServiceRequest represents a request to update a service master record
type UpdateTravelServiceRequest struct {
	Name             *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description      *string          `json:"description" binding:"omitempty,max=500"`
	CostPrice        *decimal.Decimal `json:"cost_price"`
	MarkupPercentage *decimal.Decimal `json:"markup_percentage"`
}

// MasterListFilter represents filter options for master-data lists
type MasterListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// HotelResponse represents a hotel in API responses
type HotelResponse struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	City             string          `json:"city,omitempty"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	MarkupPercentage decimal.Decimal `json:"markup_percentage"`
	Active           bool            `json:"active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// TravelServiceResponse represents a travel service in API responses
type TravelServiceResponse struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	MarkupPercentage decimal.Decimal `json:"markup_percentage"`
	Active           bool            `json:"active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToHotelResponse converts a hotel to its response DTO
func ToHotelResponse(h *catalog.Hotel) HotelResponse {
	return HotelResponse{
		ID:               h.ID,
		Name:             h.Name,
		City:             h.City,
		CostPrice:        h.CostPrice,
		MarkupPercentage: h.MarkupPercentage,
		Active:           h.Active,
		CreatedAt:        h.CreatedAt,
		UpdatedAt:        h.UpdatedAt,
	}
}

// ToHotelResponses converts hotels to response DTOs
func ToHotelResponses(hotels []catalog.Hotel) []HotelResponse {
	responses := make([]HotelResponse, 0, len(hotels))
	for i := range hotels {
		responses = append(responses, ToHotelResponse(&hotels[i]))
	}
	return responses
}

// ToTravelServiceResponse converts a travel service to its response DTO
func ToTravelServiceResponse(s *catalog.TravelService) TravelServiceResponse {
	return TravelServiceResponse{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		CostPrice:        s.CostPrice,
		MarkupPercentage: s.MarkupPercentage,
		Active:           s.Active,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// ToTravelServiceResponses converts travel services to response DTOs
func ToTravelServiceResponses(services []catalog.TravelService) []TravelServiceResponse {
	responses := make([]TravelServiceResponse, 0, len(services))
	for i := range services {
		responses = append(responses, ToTravelServiceResponse(&services[i]))
	}
	return responses
}

// ToDomainFilter applies defaults and converts to the shared filter
func (f MasterListFilter) ToDomainFilter() shared.Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	if f.OrderBy == "" {
		f.OrderBy = "name"
	}
	if f.OrderDir == "" {
		f.OrderDir = "asc"
	}
	return shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
		Filters:  make(map[string]interface{}),
	}
}
