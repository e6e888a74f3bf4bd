package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/travelworks/backend/internal/domain/shared"
)

// HotelRepository defines persistence operations for hotels
type HotelRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Hotel, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Hotel, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Hotel, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, hotel *Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TravelServiceRepository defines persistence operations for travel services
type TravelServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TravelService, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]TravelService, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]TravelService, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, service *TravelService) error
	Delete(ctx context.Context, id uuid.UUID) error
}
