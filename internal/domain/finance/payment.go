package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/travelworks/backend/internal/domain/shared"
	"github.com/travelworks/backend/internal/domain/shared/valueobject"
)

// PaymentMethod represents how a payment was collected
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCard         PaymentMethod = "card"
)

// IsValid checks if the payment method is known
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCard:
		return true
	}
	return false
}

// Payment represents one entry in the append-only payment ledger.
// AmountInBase snapshots the base-currency value at recording time using
// the exchange rate in force; it is never recomputed afterwards.
type Payment struct {
	shared.AuditedAggregateRoot
	BookingID    uuid.UUID
	Amount       decimal.Decimal      `gorm:"type:decimal(14,2)"`
	Currency     valueobject.Currency `gorm:"type:varchar(3)"`
	AmountInBase decimal.Decimal      `gorm:"type:decimal(14,2)"`
	Method       PaymentMethod
	PaidAt       time.Time
	Notes        string
}

// NewPayment creates a ledger entry for a booking payment
func NewPayment(bookingID uuid.UUID, amount valueobject.Money, amountInBase decimal.Decimal, method PaymentMethod, paidAt time.Time, notes string, createdBy uuid.UUID) (*Payment, error) {
	if bookingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Booking ID cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown payment method")
	}
	if amountInBase.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Base-currency amount must be positive")
	}
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	return &Payment{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		BookingID:            bookingID,
		Amount:               amount.Amount(),
		Currency:             amount.Currency(),
		AmountInBase:         amountInBase.Round(2),
		Method:               method,
		PaidAt:               paidAt,
		Notes:                notes,
	}, nil
}
