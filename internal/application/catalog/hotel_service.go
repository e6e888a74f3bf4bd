package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/travelworks/backend/internal/domain/booking"
	"github.com/travelworks/backend/internal/domain/catalog"
	"github.com/travelworks/backend/internal/domain/shared"
)

// HotelService handles hotel master-data operations
type HotelService struct {
	hotelRepo   catalog.HotelRepository
	bookingRepo booking.BookingRepository
}

// NewHotelService creates a new HotelService
func NewHotelService(hotelRepo catalog.HotelRepository, bookingRepo booking.BookingRepository) *HotelService {
	return &HotelService{
		hotelRepo:   hotelRepo,
		bookingRepo: bookingRepo,
	}
}

// Create creates a hotel master record
func (s *HotelService) Create(ctx context.Context, createdBy uuid.UUID, req CreateHotelRequest) (*HotelResponse, error) {
	hotel, err := catalog.NewHotel(req.Name, req.City, req.CostPrice, req.MarkupPercentage, createdBy)
	if err != nil {
		return nil, err
	}
	if err := s.hotelRepo.Save(ctx, hotel); err != nil {
		return nil, err
	}
	response := ToHotelResponse(hotel)
	return &response, nil
}

// GetByID retrieves a hotel by ID
func (s *HotelService) GetByID(ctx context.Context, id uuid.UUID) (*HotelResponse, error) {
	hotel, err := s.hotelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToHotelResponse(hotel)
	return &response, nil
}

// List retrieves hotels with filtering and pagination
func (s *HotelService) List(ctx context.Context, filter MasterListFilter) ([]HotelResponse, int64, error) {
	domainFilter := filter.ToDomainFilter()

	hotels, err := s.hotelRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.hotelRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToHotelResponses(hotels), total, nil
}

// Update updates a hotel's display fields and pricing
func (s *HotelService) Update(ctx context.Context, id uuid.UUID, req UpdateHotelRequest) (*HotelResponse, error) {
	hotel, err := s.hotelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.City != nil {
		name := hotel.Name
		city := hotel.City
		if req.Name != nil {
			name = *req.Name
		}
		if req.City != nil {
			city = *req.City
		}
		if err := hotel.Rename(name, city); err != nil {
			return nil, err
		}
	}
	if req.CostPrice != nil || req.MarkupPercentage != nil {
		cost := hotel.CostPrice
		markup := hotel.MarkupPercentage
		if req.CostPrice != nil {
			cost = *req.CostPrice
		}
		if req.MarkupPercentage != nil {
			markup = *req.MarkupPercentage
		}
		if err := hotel.UpdatePricing(cost, markup); err != nil {
			return nil, err
		}
	}

	if err := s.hotelRepo.Save(ctx, hotel); err != nil {
		return nil, err
	}
	response := ToHotelResponse(hotel)
	return &response, nil
}

// Delete removes a hotel master record. Hotels referenced by existing
// booking line items cannot be deleted.
func (s *HotelService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.hotelRepo.FindByID(ctx, id); err != nil {
		return err
	}

	refs, err := s.bookingRepo.CountByHotel(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return shared.NewDomainError("REFERENTIAL_INTEGRITY", "Hotel is referenced by existing bookings")
	}

	return s.hotelRepo.Delete(ctx, id)
}
