package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/travelworks/backend/internal/domain/booking"
	"github.com/travelworks/backend/internal/domain/catalog"
	"github.com/travelworks/backend/internal/domain/shared"
)

// TravelServiceService handles service master-data operations
type TravelServiceService struct {
	serviceRepo catalog.TravelServiceRepository
	bookingRepo booking.BookingRepository
}

// NewTravelServiceService creates a new TravelServiceService
func NewTravelServiceService(serviceRepo catalog.TravelServiceRepository, bookingRepo booking.BookingRepository) *TravelServiceService {
	return &TravelServiceService{
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
	}
}

// Create creates a service master record
func (s *TravelServiceService) Create(ctx context.Context, createdBy uuid.UUID, req CreateTravelServiceRequest) (*TravelServiceResponse, error) {
	service, err := catalog.NewTravelService(req.Name, req.Description, req.CostPrice, req.MarkupPercentage, createdBy)
	if err != nil {
		return nil, err
	}
	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}
	response := ToTravelServiceResponse(service)
	return &response, nil
}

// GetByID retrieves a travel service by ID
func (s *TravelServiceService) GetByID(ctx context.Context, id uuid.UUID) (*TravelServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToTravelServiceResponse(service)
	return &response, nil
}

// List retrieves travel services with filtering and pagination
func (s *TravelServiceService) List(ctx context.Context, filter MasterListFilter) ([]TravelServiceResponse, int64, error) {
	domainFilter := filter.ToDomainFilter()

	services, err := s.serviceRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.serviceRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToTravelServiceResponses(services), total, nil
}

// Update updates a service's details and pricing
func (s *TravelServiceService) Update(ctx context.Context, id uuid.UUID, req UpdateTravelServiceRequest) (*TravelServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_INPUT", "Service name cannot be empty")
		}
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.CostPrice != nil || req.MarkupPercentage != nil {
		cost := service.CostPrice
		markup := service.MarkupPercentage
		if req.CostPrice != nil {
			cost = *req.CostPrice
		}
		if req.MarkupPercentage != nil {
			markup = *req.MarkupPercentage
		}
		if err := service.UpdatePricing(cost, markup); err != nil {
			return nil, err
		}
	}

	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}
	response := ToTravelServiceResponse(service)
	return &response, nil
}

// Delete removes a service master record. Services referenced by existing
// booking line items cannot be deleted.
func (s *TravelServiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.serviceRepo.FindByID(ctx, id); err != nil {
		return err
	}

	refs, err := s.bookingRepo.CountByService(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return shared.NewDomainError("REFERENTIAL_INTEGRITY", "Service is referenced by existing bookings")
	}

	return s.serviceRepo.Delete(ctx, id)
}
