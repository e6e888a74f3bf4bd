package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/travelworks/backend/internal/domain/booking"
	"github.com/travelworks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBookingRepository implements BookingRepository using GORM
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID finds a booking with its line items
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var b booking.Booking
	if err := r.db.WithContext(ctx).
		Preload("HotelItems").
		Preload("ServiceItems").
		First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindByBookingNumber finds a booking by its human-readable number
func (r *GormBookingRepository) FindByBookingNumber(ctx context.Context, number string) (*booking.Booking, error) {
	var b booking.Booking
	if err := r.db.WithContext(ctx).
		Preload("HotelItems").
		Preload("ServiceItems").
		First(&b, "booking_number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindAll finds bookings with filtering and pagination
func (r *GormBookingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]booking.Booking, error) {
	var bookings []booking.Booking
	query := r.applyFilter(r.db.WithContext(ctx).Model(&booking.Booking{}), filter, true)
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Count counts bookings matching the filter
func (r *GormBookingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&booking.Booking{}), filter, false)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists the booking and its line items atomically. New bookings
// are created together with their items; existing bookings get a
// version-checked update of the aggregate row (line items are immutable).
// A booking number collision surfaces as ALREADY_EXISTS.
func (r *GormBookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&booking.Booking{}).Where("id = ?", b.ID).Count(&exists).Error; err != nil {
			return err
		}

		if exists == 0 {
			if err := tx.Omit("HotelItems", "ServiceItems").Create(b).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return shared.ErrAlreadyExists
				}
				return err
			}
			for i := range b.HotelItems {
				b.HotelItems[i].BookingID = b.ID
				if err := tx.Create(&b.HotelItems[i]).Error; err != nil {
					return err
				}
			}
			for i := range b.ServiceItems {
				b.ServiceItems[i].BookingID = b.ID
				if err := tx.Create(&b.ServiceItems[i]).Error; err != nil {
					return err
				}
			}
			return nil
		}

		currentVersion := b.Version
		b.Version++
		b.UpdatedAt = time.Now()

		result := tx.Model(&booking.Booking{}).
			Where("id = ? AND version = ?", b.ID, currentVersion).
			Updates(map[string]interface{}{
				"status":         b.Status,
				"payment_status": b.PaymentStatus,
				"remarks":        b.Remarks,
				"confirmed_at":   b.ConfirmedAt,
				"completed_at":   b.CompletedAt,
				"cancelled_at":   b.CancelledAt,
				"version":        b.Version,
				"updated_at":     b.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}
		return nil
	})
}

// ExistsByBookingNumber reports whether a booking number is taken
func (r *GormBookingRepository) ExistsByBookingNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&booking.Booking{}).
		Where("booking_number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByCustomer counts bookings referencing a customer
func (r *GormBookingRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&booking.Booking{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByHotel counts hotel line items referencing a hotel
func (r *GormBookingRepository) CountByHotel(ctx context.Context, hotelID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&booking.HotelLineItem{}).
		Where("hotel_id = ?", hotelID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByService counts service line items referencing a travel service
func (r *GormBookingRepository) CountByService(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&booking.ServiceLineItem{}).
		Where("service_id = ?", serviceID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormBookingRepository) applyFilter(query *gorm.DB, filter shared.Filter, paginate bool) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("booking_number ILIKE ? OR customer_name ILIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "start_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("created_at >= ?", t)
			}
		case "end_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("created_at <= ?", t)
			}
		}
	}

	if !paginate {
		return query
	}

	if filter.OrderBy != "" {
		column, ok := bookingSortColumns[filter.OrderBy]
		if !ok {
			column = "created_at"
		}
		dir := "ASC"
		if filter.OrderDir == "desc" {
			dir = "DESC"
		}
		query = query.Order(column + " " + dir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query.Offset(filter.Offset()).Limit(filter.Limit())
}

// bookingSortColumns whitelists sortable columns to keep user input out
// of the ORDER BY clause
var bookingSortColumns = map[string]string{
	"created_at":          "created_at",
	"booking_number":      "booking_number",
	"customer_name":       "customer_name",
	"total_selling_price": "total_selling_price",
	"status":              "status",
}
