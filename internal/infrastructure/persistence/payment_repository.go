package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/travelworks/backend/internal/domain/booking"
	"github.com/travelworks/backend/internal/domain/finance"
	"github.com/travelworks/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	var payment finance.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByBooking returns the ledger entries for a booking, oldest first
func (r *GormPaymentRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]finance.Payment, error) {
	var payments []finance.Payment
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("paid_at ASC, id ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// RecordWithStatus appends the payment and updates the booking's derived
// payment status inside one transaction. The booking row is locked
// before the insert and the ledger is summed after it, so two payments
// recorded concurrently cannot both derive the status from the same
// prior total.
func (r *GormPaymentRepository) RecordWithStatus(ctx context.Context, payment *finance.Payment, derive func(paidTotal decimal.Decimal) booking.PaymentStatus) (booking.PaymentStatus, error) {
	var status booking.PaymentStatus
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked booking.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&locked, "id = ?", payment.BookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		var paidTotal decimal.Decimal
		if err := tx.Model(&finance.Payment{}).
			Select("COALESCE(SUM(amount_in_base), 0)").
			Where("booking_id = ?", payment.BookingID).
			Scan(&paidTotal).Error; err != nil {
			return err
		}

		status = derive(paidTotal)
		return tx.Model(&booking.Booking{}).
			Where("id = ?", payment.BookingID).
			Update("payment_status", status).Error
	})
	if err != nil {
		return "", err
	}
	return status, nil
}
