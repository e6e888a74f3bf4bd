package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateRange is an optional inclusive filter on booking creation dates.
// A nil bound leaves that side open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ProfitLossRow is one booking's financial result:
// profit = selling - cost - expenses, all in base currency.
type ProfitLossRow struct {
	BookingID     uuid.UUID       `json:"booking_id"`
	BookingNumber string          `json:"booking_number"`
	CustomerName  string          `json:"customer_name"`
	Status        string          `json:"status"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	TotalSelling  decimal.Decimal `json:"total_selling"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Profit        decimal.Decimal `json:"profit"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OutstandingInvoiceRow is one unpaid booking with its paid total and
// remaining balance, floored at zero.
type OutstandingInvoiceRow struct {
	BookingID     uuid.UUID       `json:"booking_id"`
	BookingNumber string          `json:"booking_number"`
	CustomerName  string          `json:"customer_name"`
	TotalSelling  decimal.Decimal `json:"total_selling"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	CreatedAt     time.Time       `json:"created_at"`
}

// HotelRecapRow aggregates hotel line items over a stay window, grouped
// by hotel, room type and meal plan. TotalNights counts elapsed nights
// times rooms; LineCount is the number of contributing line items.
type HotelRecapRow struct {
	HotelID          uuid.UUID       `json:"hotel_id"`
	HotelName        string          `json:"hotel_name"`
	RoomType         string          `json:"room_type"`
	MealPlan         string          `json:"meal_plan"`
	TotalRooms       int64           `json:"total_rooms"`
	TotalNights      int64           `json:"total_nights"`
	LineCount        int64           `json:"line_count"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	Profit           decimal.Decimal `json:"profit"`
	DistinctBookings int64           `json:"distinct_bookings"`
}

// BookingReportRepository runs the read-side aggregation queries.
// Implementations return empty slices, never errors, when no rows match.
type BookingReportRepository interface {
	ProfitLoss(ctx context.Context, dates DateRange) ([]ProfitLossRow, error)
	OutstandingInvoices(ctx context.Context) ([]OutstandingInvoiceRow, error)
	HotelRecap(ctx context.Context, start, end time.Time) ([]HotelRecapRow, error)
}
