package handler

import (
	"github.com/gin-gonic/gin"
	financeapp "github.com/travelworks/backend/internal/application/finance"
)

// FinanceHandler handles payment, expense and exchange rate HTTP requests
type FinanceHandler struct {
	BaseHandler
	paymentService      *financeapp.PaymentService
	expenseService      *financeapp.ExpenseService
	exchangeRateService *financeapp.ExchangeRateService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(
	paymentService *financeapp.PaymentService,
	expenseService *financeapp.ExpenseService,
	exchangeRateService *financeapp.ExchangeRateService,
) *FinanceHandler {
	return &FinanceHandler{
		paymentService:      paymentService,
		expenseService:      expenseService,
		exchangeRateService: exchangeRateService,
	}
}

// RecordPayment records a customer payment against a booking
func (h *FinanceHandler) RecordPayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req financeapp.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.paymentService.Record(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListPaymentsByBooking returns the payment ledger of a booking
func (h *FinanceHandler) ListPaymentsByBooking(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	results, err := h.paymentService.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// RecordExpense records an operational expense against a booking
func (h *FinanceHandler) RecordExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req financeapp.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.expenseService.Record(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListExpensesByBooking returns the expenses recorded against a booking
func (h *FinanceHandler) ListExpensesByBooking(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	results, err := h.expenseService.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// PutExchangeRate creates or updates the rate for a currency pair
func (h *FinanceHandler) PutExchangeRate(c *gin.Context) {
	var req financeapp.PutExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.exchangeRateService.Put(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListExchangeRates returns all configured exchange rates
func (h *FinanceHandler) ListExchangeRates(c *gin.Context) {
	results, err := h.exchangeRateService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}
