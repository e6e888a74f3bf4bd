package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/travelworks/backend/internal/domain/booking"
	"github.com/travelworks/backend/internal/domain/catalog"
	"github.com/travelworks/backend/internal/domain/partner"
	"github.com/travelworks/backend/internal/domain/shared"
)

// bookingNumberRetries is how many times creation retries after a
// booking number uniqueness conflict before giving up.
const bookingNumberRetries = 2

// BookingService handles booking business operations
type BookingService struct {
	bookingRepo  booking.BookingRepository
	customerRepo partner.CustomerRepository
	hotelRepo    catalog.HotelRepository
	serviceRepo  catalog.TravelServiceRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(
	bookingRepo booking.BookingRepository,
	customerRepo partner.CustomerRepository,
	hotelRepo catalog.HotelRepository,
	serviceRepo catalog.TravelServiceRepository,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		hotelRepo:    hotelRepo,
		serviceRepo:  serviceRepo,
	}
}

// Create validates and persists a new booking with its line items.
// All referenced masters are batch-fetched and validated before anything
// is written.
func (s *BookingService) Create(ctx context.Context, createdBy uuid.UUID, req CreateBookingRequest) (*BookingResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	hotels, err := s.fetchHotels(ctx, req.HotelItems)
	if err != nil {
		return nil, err
	}
	services, err := s.fetchServices(ctx, req.ServiceItems)
	if err != nil {
		return nil, err
	}

	b, err := s.buildBooking(customer, createdBy, req, hotels, services)
	if err != nil {
		return nil, err
	}

	// Booking number uniqueness is enforced by the store; regenerate and
	// retry on a conflict.
	for attempt := 0; ; attempt++ {
		err = s.bookingRepo.Save(ctx, b)
		if err == nil {
			break
		}
		var domainErr *shared.DomainError
		if !errors.As(err, &domainErr) || domainErr.Code != "ALREADY_EXISTS" || attempt >= bookingNumberRetries {
			return nil, err
		}
		b.BookingNumber = booking.GenerateBookingNumber(time.Now())
	}

	response := ToBookingResponse(b)
	return &response, nil
}

// GetByID retrieves a booking with its line items
func (s *BookingService) GetByID(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToBookingResponse(b)
	return &response, nil
}

// GetByBookingNumber retrieves a booking by its human-readable number
func (s *BookingService) GetByBookingNumber(ctx context.Context, number string) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByBookingNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	response := ToBookingResponse(b)
	return &response, nil
}

// List retrieves bookings with filtering and pagination
func (s *BookingService) List(ctx context.Context, filter BookingListFilter) ([]BookingListItemResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.CustomerID != nil {
		domainFilter.Filters["customer_id"] = *filter.CustomerID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = *filter.Status
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	bookings, err := s.bookingRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.bookingRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToBookingListItemResponses(bookings), total, nil
}

// UpdateStatus transitions a booking through its lifecycle
func (s *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateBookingStatusRequest) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := b.TransitionTo(booking.BookingStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	response := ToBookingResponse(b)
	return &response, nil
}

func (s *BookingService) fetchHotels(ctx context.Context, items []CreateHotelItemInput) (map[uuid.UUID]*catalog.Hotel, error) {
	if len(items) == 0 {
		return map[uuid.UUID]*catalog.Hotel{}, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		if !seen[item.HotelID] {
			seen[item.HotelID] = true
			ids = append(ids, item.HotelID)
		}
	}

	hotels, err := s.hotelRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*catalog.Hotel, len(hotels))
	for i := range hotels {
		byID[hotels[i].ID] = &hotels[i]
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Hotel %s not found", id))
		}
	}
	return byID, nil
}

func (s *BookingService) fetchServices(ctx context.Context, items []CreateServiceItemInput) (map[uuid.UUID]*catalog.TravelService, error) {
	if len(items) == 0 {
		return map[uuid.UUID]*catalog.TravelService{}, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		if !seen[item.ServiceID] {
			seen[item.ServiceID] = true
			ids = append(ids, item.ServiceID)
		}
	}

	services, err := s.serviceRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*catalog.TravelService, len(services))
	for i := range services {
		byID[services[i].ID] = &services[i]
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Travel service %s not found", id))
		}
	}
	return byID, nil
}

func (s *BookingService) buildBooking(
	customer *partner.Customer,
	createdBy uuid.UUID,
	req CreateBookingRequest,
	hotels map[uuid.UUID]*catalog.Hotel,
	services map[uuid.UUID]*catalog.TravelService,
) (*booking.Booking, error) {
	b, err := booking.NewBooking(booking.GenerateBookingNumber(time.Now()), customer.ID, customer.Name, createdBy)
	if err != nil {
		return nil, err
	}

	for _, item := range req.HotelItems {
		hotel := hotels[item.HotelID]
		checkIn, err := time.Parse(dateLayout, item.CheckIn)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Invalid check-in date %q", item.CheckIn))
		}
		checkOut, err := time.Parse(dateLayout, item.CheckOut)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Invalid check-out date %q", item.CheckOut))
		}

		pricing := booking.HotelPricing{
			HotelID:          hotel.ID,
			HotelName:        hotel.Name,
			CostPrice:        hotel.CostPrice,
			MarkupPercentage: hotel.MarkupPercentage,
		}
		if _, err := b.AddHotelItem(pricing, booking.RoomType(item.RoomType), booking.MealPlan(item.MealPlan), checkIn, checkOut, item.Rooms); err != nil {
			return nil, err
		}
	}

	for _, item := range req.ServiceItems {
		service := services[item.ServiceID]
		pricing := booking.ServicePricing{
			ServiceID:        service.ID,
			ServiceName:      service.Name,
			CostPrice:        service.CostPrice,
			MarkupPercentage: service.MarkupPercentage,
		}
		if _, err := b.AddServiceItem(pricing, item.Quantity); err != nil {
			return nil, err
		}
	}

	if req.Remarks != "" {
		b.SetRemarks(req.Remarks)
	}

	return b, nil
}
