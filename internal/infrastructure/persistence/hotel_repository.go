package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/travelworks/backend/internal/domain/catalog"
	"github.com/travelworks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormHotelRepository implements HotelRepository using GORM
type GormHotelRepository struct {
	db *gorm.DB
}

// NewGormHotelRepository creates a new GormHotelRepository
func NewGormHotelRepository(db *gorm.DB) *GormHotelRepository {
	return &GormHotelRepository{db: db}
}

// FindByID finds a hotel by its ID
func (r *GormHotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Hotel, error) {
	var hotel catalog.Hotel
	if err := r.db.WithContext(ctx).First(&hotel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &hotel, nil
}

// FindByIDs batch-fetches hotels by their IDs
func (r *GormHotelRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Hotel, error) {
	if len(ids) == 0 {
		return []catalog.Hotel{}, nil
	}
	var hotels []catalog.Hotel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

// FindAll finds hotels with filtering and pagination
func (r *GormHotelRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Hotel, error) {
	var hotels []catalog.Hotel
	query := applyMasterFilter(r.db.WithContext(ctx).Model(&catalog.Hotel{}), filter, "name", "city")
	if err := query.Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

// Count counts hotels matching the filter
func (r *GormHotelRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyMasterSearch(r.db.WithContext(ctx).Model(&catalog.Hotel{}), filter, "name", "city")
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a hotel
func (r *GormHotelRepository) Save(ctx context.Context, hotel *catalog.Hotel) error {
	return r.db.WithContext(ctx).Save(hotel).Error
}

// Delete removes a hotel by ID
func (r *GormHotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&catalog.Hotel{}, "id = ?", id).Error
}

// masterSortColumns whitelists sortable columns for master-data lists
var masterSortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"cost_price": "cost_price",
}

func applyMasterSearch(query *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		for i, col := range searchColumns {
			if i == 0 {
				query = query.Where(col+" ILIKE ?", pattern)
			} else {
				query = query.Or(col+" ILIKE ?", pattern)
			}
		}
	}
	return query
}

func applyMasterFilter(query *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	query = applyMasterSearch(query, filter, searchColumns...)

	column, ok := masterSortColumns[filter.OrderBy]
	if !ok {
		column = "name"
	}
	dir := "ASC"
	if filter.OrderDir == "desc" {
		dir = "DESC"
	}
	query = query.Order(column + " " + dir)

	return query.Offset(filter.Offset()).Limit(filter.Limit())
}
