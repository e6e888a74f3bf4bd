package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/travelworks/backend/internal/domain/shared"
)

// BookingRepository defines persistence operations for bookings.
// Save persists the aggregate and its line items atomically.
type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	FindByBookingNumber(ctx context.Context, number string) (*Booking, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Booking, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, booking *Booking) error
	ExistsByBookingNumber(ctx context.Context, number string) (bool, error)
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	CountByHotel(ctx context.Context, hotelID uuid.UUID) (int64, error)
	CountByService(ctx context.Context, serviceID uuid.UUID) (int64, error)
}
