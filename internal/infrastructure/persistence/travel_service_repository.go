package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/travelworks/backend/internal/domain/catalog"
	"github.com/travelworks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormTravelServiceRepository implements TravelServiceRepository using GORM
type GormTravelServiceRepository struct {
	db *gorm.DB
}

// NewGormTravelServiceRepository creates a new GormTravelServiceRepository
func NewGormTravelServiceRepository(db *gorm.DB) *GormTravelServiceRepository {
	return &GormTravelServiceRepository{db: db}
}

// FindByID finds a travel service by its ID
func (r *GormTravelServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.TravelService, error) {
	var service catalog.TravelService
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// FindByIDs batch-fetches travel services by their IDs
func (r *GormTravelServiceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.TravelService, error) {
	if len(ids) == 0 {
		return []catalog.TravelService{}, nil
	}
	var services []catalog.TravelService
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// FindAll finds travel services with filtering and pagination
func (r *GormTravelServiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.TravelService, error) {
	var services []catalog.TravelService
	query := applyMasterFilter(r.db.WithContext(ctx).Model(&catalog.TravelService{}), filter, "name", "description")
	if err := query.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Count counts travel services matching the filter
func (r *GormTravelServiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyMasterSearch(r.db.WithContext(ctx).Model(&catalog.TravelService{}), filter, "name", "description")
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a travel service
func (r *GormTravelServiceRepository) Save(ctx context.Context, service *catalog.TravelService) error {
	return r.db.WithContext(ctx).Save(service).Error
}

// Delete removes a travel service by ID
func (r *GormTravelServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&catalog.TravelService{}, "id = ?", id).Error
}
