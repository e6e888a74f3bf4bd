package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/travelworks/backend/internal/domain/booking"
)

// CreateBookingRequest represents a request to create a booking
type CreateBookingRequest struct {
	CustomerID   uuid.UUID                `json:"customer_id" binding:"required"`
	HotelItems   []CreateHotelItemInput   `json:"hotel_items"`
	ServiceItems []CreateServiceItemInput `json:"service_items"`
	Remarks      string                   `json:"remarks"`
}

// CreateHotelItemInput represents one hotel stay in the create request.
// Dates use the 2006-01-02 format.
type CreateHotelItemInput struct {
	HotelID  uuid.UUID `json:"hotel_id" binding:"required"`
	RoomType string    `json:"room_type" binding:"required,oneof=single double triple quad"`
	MealPlan string    `json:"meal_plan" binding:"required,oneof=no_meal breakfast halfboard fullboard"`
	CheckIn  string    `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string    `json:"check_out" binding:"required,datetime=2006-01-02"`
	Rooms    int       `json:"rooms" binding:"required,min=1"`
}

// CreateServiceItemInput represents one ancillary service in the create request
type CreateServiceItemInput struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// UpdateBookingStatusRequest represents a status transition request
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed completed cancelled"`
}

// BookingListFilter represents filter options for the booking list
type BookingListFilter struct {
	Search     string     `form:"search"`
	CustomerID *uuid.UUID `form:"customer_id"`
	Status     *string    `form:"status"`
	StartDate  *time.Time `form:"start_date"`
	EndDate    *time.Time `form:"end_date"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// HotelItemResponse represents a hotel line item in API responses
type HotelItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	HotelID      uuid.UUID       `json:"hotel_id"`
	HotelName    string          `json:"hotel_name"`
	RoomType     string          `json:"room_type"`
	MealPlan     string          `json:"meal_plan"`
	CheckIn      string          `json:"check_in"`
	CheckOut     string          `json:"check_out"`
	Nights       int             `json:"nights"`
	Rooms        int             `json:"rooms"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// ServiceItemResponse represents a service line item in API responses
type ServiceItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	ServiceID    uuid.UUID       `json:"service_id"`
	ServiceName  string          `json:"service_name"`
	Quantity     int             `json:"quantity"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID                uuid.UUID             `json:"id"`
	BookingNumber     string                `json:"booking_number"`
	CustomerID        uuid.UUID             `json:"customer_id"`
	CustomerName      string                `json:"customer_name"`
	HotelItems        []HotelItemResponse   `json:"hotel_items"`
	ServiceItems      []ServiceItemResponse `json:"service_items"`
	ItemCount         int                   `json:"item_count"`
	TotalCostPrice    decimal.Decimal       `json:"total_cost_price"`
	TotalSellingPrice decimal.Decimal       `json:"total_selling_price"`
	Status            string                `json:"status"`
	PaymentStatus     string                `json:"payment_status"`
	Remarks           string                `json:"remarks,omitempty"`
	ConfirmedAt       *time.Time            `json:"confirmed_at,omitempty"`
	CompletedAt       *time.Time            `json:"completed_at,omitempty"`
	CancelledAt       *time.Time            `json:"cancelled_at,omitempty"`
	CreatedBy         uuid.UUID             `json:"created_by"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
	Version           int                   `json:"version"`
}

// BookingListItemResponse represents a booking in list responses
type BookingListItemResponse struct {
	ID                uuid.UUID       `json:"id"`
	BookingNumber     string          `json:"booking_number"`
	CustomerID        uuid.UUID       `json:"customer_id"`
	CustomerName      string          `json:"customer_name"`
	ItemCount         int             `json:"item_count"`
	TotalSellingPrice decimal.Decimal `json:"total_selling_price"`
	Status            string          `json:"status"`
	PaymentStatus     string          `json:"payment_status"`
	CreatedAt         time.Time       `json:"created_at"`
}

const dateLayout = "2006-01-02"

// ToBookingResponse converts a booking aggregate to its response DTO
func ToBookingResponse(b *booking.Booking) BookingResponse {
	hotelItems := make([]HotelItemResponse, 0, len(b.HotelItems))
	for i := range b.HotelItems {
		item := &b.HotelItems[i]
		hotelItems = append(hotelItems, HotelItemResponse{
			ID:           item.ID,
			HotelID:      item.HotelID,
			HotelName:    item.HotelName,
			RoomType:     string(item.RoomType),
			MealPlan:     string(item.MealPlan),
			CheckIn:      item.CheckIn.Format(dateLayout),
			CheckOut:     item.CheckOut.Format(dateLayout),
			Nights:       item.Nights(),
			Rooms:        item.Rooms,
			CostPrice:    item.CostPrice,
			SellingPrice: item.SellingPrice,
		})
	}

	serviceItems := make([]ServiceItemResponse, 0, len(b.ServiceItems))
	for i := range b.ServiceItems {
		item := &b.ServiceItems[i]
		serviceItems = append(serviceItems, ServiceItemResponse{
			ID:           item.ID,
			ServiceID:    item.ServiceID,
			ServiceName:  item.ServiceName,
			Quantity:     item.Quantity,
			CostPrice:    item.CostPrice,
			SellingPrice: item.SellingPrice,
		})
	}

	return BookingResponse{
		ID:                b.ID,
		BookingNumber:     b.BookingNumber,
		CustomerID:        b.CustomerID,
		CustomerName:      b.CustomerName,
		HotelItems:        hotelItems,
		ServiceItems:      serviceItems,
		ItemCount:         b.ItemCount(),
		TotalCostPrice:    b.TotalCostPrice,
		TotalSellingPrice: b.TotalSellingPrice,
		Status:            string(b.Status),
		PaymentStatus:     string(b.PaymentStatus),
		Remarks:           b.Remarks,
		ConfirmedAt:       b.ConfirmedAt,
		CompletedAt:       b.CompletedAt,
		CancelledAt:       b.CancelledAt,
		CreatedBy:         b.CreatedBy,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
		Version:           b.Version,
	}
}

// ToBookingListItemResponses converts bookings to list item DTOs
func ToBookingListItemResponses(bookings []booking.Booking) []BookingListItemResponse {
	responses := make([]BookingListItemResponse, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		responses = append(responses, BookingListItemResponse{
			ID:                b.ID,
			BookingNumber:     b.BookingNumber,
			CustomerID:        b.CustomerID,
			CustomerName:      b.CustomerName,
			ItemCount:         b.ItemCount(),
			TotalSellingPrice: b.TotalSellingPrice,
			Status:            string(b.Status),
			PaymentStatus:     string(b.PaymentStatus),
			CreatedAt:         b.CreatedAt,
		})
	}
	return responses
}
