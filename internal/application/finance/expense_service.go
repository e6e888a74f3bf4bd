package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/travelworks/backend/internal/domain/booking"
	"github.com/travelworks/backend/internal/domain/finance"
	"github.com/travelworks/backend/internal/domain/shared/valueobject"
)

// ExpenseService records booking expenses in the base currency
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
	bookingRepo booking.BookingRepository
	converter   *finance.CurrencyConverter
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(
	expenseRepo finance.ExpenseRepository,
	bookingRepo booking.BookingRepository,
	converter *finance.CurrencyConverter,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		bookingRepo: bookingRepo,
		converter:   converter,
	}
}

// Record appends an expense entry for a booking
func (s *ExpenseService) Record(ctx context.Context, createdBy uuid.UUID, req RecordExpenseRequest) (*ExpenseResponse, error) {
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

	var incurredAt time.Time
	if req.IncurredAt != nil {
		incurredAt = *req.IncurredAt
	}
	expense, err := finance.NewExpense(b.ID, req.Name, amount, inBase.Amount(), incurredAt, createdBy)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// ListByBooking returns the expense entries for one booking
func (s *ExpenseService) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]ExpenseResponse, error) {
	if _, err := s.bookingRepo.FindByID(ctx, bookingID); err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.FindByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return ToExpenseResponses(expenses), nil
}
