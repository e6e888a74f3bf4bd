package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/travelworks/backend/internal/domain/shared"
	"github.com/travelworks/backend/internal/domain/shared/valueobject"
)

// Expense represents an append-only cost entry attached to a booking,
// such as a visa fee or ground-handling charge not priced into the
// booking's line items. AmountInBase mirrors the payment ledger's
// base-currency snapshot.
type Expense struct {
	shared.AuditedAggregateRoot
	BookingID    uuid.UUID
	Name         string
	Amount       decimal.Decimal      `gorm:"type:decimal(14,2)"`
	Currency     valueobject.Currency `gorm:"type:varchar(3)"`
	AmountInBase decimal.Decimal      `gorm:"type:decimal(14,2)"`
	IncurredAt   time.Time
}

// NewExpense creates an expense entry for a booking
func NewExpense(bookingID uuid.UUID, name string, amount valueobject.Money, amountInBase decimal.Decimal, incurredAt time.Time, createdBy uuid.UUID) (*Expense, error) {
	if bookingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Booking ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Expense name cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Expense amount must be positive")
	}
	if amountInBase.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Base-currency amount must be positive")
	}
	if incurredAt.IsZero() {
		incurredAt = time.Now()
	}

	return &Expense{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		BookingID:            bookingID,
		Name:                 name,
		Amount:               amount.Amount(),
		Currency:             amount.Currency(),
		AmountInBase:         amountInBase.Round(2),
		IncurredAt:           incurredAt,
	}, nil
}
