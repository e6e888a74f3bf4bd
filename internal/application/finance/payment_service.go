package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/travelworks/backend/internal/domain/booking"
	"github.com/travelworks/backend/internal/domain/finance"
	"github.com/travelworks/backend/internal/domain/shared/valueobject"
)

// PaymentService records booking payments and keeps the booking's
// derived payment status consistent with the ledger.
type PaymentService struct {
	paymentRepo finance.PaymentRepository
	bookingRepo booking.BookingRepository
	converter   *finance.CurrencyConverter
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo finance.PaymentRepository,
	bookingRepo booking.BookingRepository,
	converter *finance.CurrencyConverter,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		converter:   converter,
	}
}

// Record converts the payment to the base currency and appends it to
// the ledger. The repository sums the ledger and stores the derived
// payment status in the same transaction as the insert, so the status
// cannot drift from the ledger under concurrent payments.
func (s *PaymentService) Record(ctx context.Context, createdBy uuid.UUID, req RecordPaymentRequest) (*PaymentResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	amount, err := valueobject.NewMoney(req.Amount, valueobject.Currency(req.Currency))
	if err != nil {
		return nil, err
	}

	inBase, err := s.converter.ConvertToBase(ctx, amount)
	if err != nil {
		return nil, err
	}

	var paidAt time.Time
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}
	payment, err := finance.NewPayment(b.ID, amount, inBase.Amount(), finance.PaymentMethod(req.Method), paidAt, req.Notes, createdBy)
	if err != nil {
		return nil, err
	}

	status, err := s.paymentRepo.RecordWithStatus(ctx, payment, b.DerivePaymentStatus)
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment, string(status))
	return &response, nil
}

// ListByBooking returns the payment ledger entries for one booking
func (s *PaymentService) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]PaymentResponse, error) {
	if _, err := s.bookingRepo.FindByID(ctx, bookingID); err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return ToPaymentResponses(payments), nil
}
