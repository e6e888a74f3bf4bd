package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/travelworks/backend/internal/domain/booking"
	"github.com/travelworks/backend/internal/domain/shared/valueobject"
)

// PaymentRepository defines persistence operations for the payment ledger.
// RecordWithStatus appends the payment, sums the booking's ledger inside
// the same transaction, and stores the status derive returns for that
// total. The booking row is locked first, so concurrent payments on one
// booking serialize and the stored status never reflects a stale sum.
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]Payment, error)
	RecordWithStatus(ctx context.Context, payment *Payment, derive func(paidTotal decimal.Decimal) booking.PaymentStatus) (booking.PaymentStatus, error)
}

// ExpenseRepository defines persistence operations for booking expenses
type ExpenseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]Expense, error)
	Save(ctx context.Context, expense *Expense) error
}

// ExchangeRateRepository defines persistence operations for exchange rates.
// FindByPair returns (nil, nil) when the pair has no record.
type ExchangeRateRepository interface {
	FindByPair(ctx context.Context, from, to valueobject.Currency) (*ExchangeRate, error)
	FindAll(ctx context.Context) ([]ExchangeRate, error)
	Save(ctx context.Context, rate *ExchangeRate) error
}
