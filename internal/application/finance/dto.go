package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/travelworks/backend/internal/domain/finance"
)

// RecordPaymentRequest represents a request to record a booking payment
type RecordPaymentRequest struct {
	BookingID uuid.UUID       `json:"booking_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Currency  string          `json:"currency" binding:"required,currency"`
	Method    string          `json:"method" binding:"required,oneof=cash bank_transfer card"`
	PaidAt    *time.Time      `json:"paid_at"`
	Notes     string          `json:"notes"`
}

// RecordExpenseRequest represents a request to record a booking expense
type RecordExpenseRequest struct {
	BookingID  uuid.UUID       `json:"booking_id" binding:"required"`
	Name       string          `json:"name" binding:"required,min=1,max=200"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Currency   string          `json:"currency" binding:"required,currency"`
	IncurredAt *time.Time      `json:"incurred_at"`
}

// PutExchangeRateRequest creates or updates the rate for an ordered pair
type PutExchangeRateRequest struct {
	FromCurrency string          `json:"from_currency" binding:"required,currency"`
	ToCurrency   string          `json:"to_currency" binding:"required,currency"`
	Rate         decimal.Decimal `json:"rate" binding:"required"`
}

// PaymentResponse represents a payment ledger entry in API responses
type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	BookingID     uuid.UUID       `json:"booking_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	AmountInBase  decimal.Decimal `json:"amount_in_base"`
	Method        string          `json:"method"`
	PaidAt        time.Time       `json:"paid_at"`
	Notes         string          `json:"notes,omitempty"`
	CreatedBy     uuid.UUID       `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
	PaymentStatus string          `json:"payment_status"`
}

// ExpenseResponse represents an expense entry in API responses
type ExpenseResponse struct {
	ID           uuid.UUID       `json:"id"`
	BookingID    uuid.UUID       `json:"booking_id"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	AmountInBase decimal.Decimal `json:"amount_in_base"`
	IncurredAt   time.Time       `json:"incurred_at"`
	CreatedBy    uuid.UUID       `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ExchangeRateResponse represents an exchange rate in API responses
type ExchangeRateResponse struct {
	ID           uuid.UUID       `json:"id"`
	FromCurrency string          `json:"from_currency"`
	ToCurrency   string          `json:"to_currency"`
	Rate         decimal.Decimal `json:"rate"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToPaymentResponse converts a payment to its response DTO
func ToPaymentResponse(p *finance.Payment, status string) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Currency:      string(p.Currency),
		AmountInBase:  p.AmountInBase,
		Method:        string(p.Method),
		PaidAt:        p.PaidAt,
		Notes:         p.Notes,
		CreatedBy:     p.CreatedBy,
		CreatedAt:     p.CreatedAt,
		PaymentStatus: status,
	}
}

// ToPaymentResponses converts payments to response DTOs without status
func ToPaymentResponses(payments []finance.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, ToPaymentResponse(&payments[i], ""))
	}
	return responses
}

// ToExpenseResponse converts an expense to its response DTO
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.ID,
		BookingID:    e.BookingID,
		Name:         e.Name,
		Amount:       e.Amount,
		Currency:     string(e.Currency),
		AmountInBase: e.AmountInBase,
		IncurredAt:   e.IncurredAt,
		CreatedBy:    e.CreatedBy,
		CreatedAt:    e.CreatedAt,
	}
}

// ToExpenseResponses converts expenses to response DTOs
func ToExpenseResponses(expenses []finance.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, ToExpenseResponse(&expenses[i]))
	}
	return responses
}

// ToExchangeRateResponse converts an exchange rate to its response DTO
func ToExchangeRateResponse(r *finance.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:           r.ID,
		FromCurrency: string(r.FromCurrency),
		ToCurrency:   string(r.ToCurrency),
		Rate:         r.Rate,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ToExchangeRateResponses converts exchange rates to response DTOs
func ToExchangeRateResponses(rates []finance.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, 0, len(rates))
	for i := range rates {
		responses = append(responses, ToExchangeRateResponse(&rates[i]))
	}
	return responses
}
