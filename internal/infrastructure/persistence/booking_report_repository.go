package persistence

import (
	"context"
	"time"

	"github.com/travelworks/backend/internal/domain/report"
	"gorm.io/gorm"
)

// GormBookingReportRepository implements BookingReportRepository using GORM
type GormBookingReportRepository struct {
	db *gorm.DB
}

// NewGormBookingReportRepository creates a new GormBookingReportRepository
func NewGormBookingReportRepository(db *gorm.DB) *GormBookingReportRepository {
	return &GormBookingReportRepository{db: db}
}

// ProfitLoss returns per-booking financial results in the optional
// inclusive creation-date window, newest first with ID as tiebreak.
// Expenses are summed in a subquery so bookings without expenses still
// appear with zero.
func (r *GormBookingReportRepository) ProfitLoss(ctx context.Context, dates report.DateRange) ([]report.ProfitLossRow, error) {
	rows := []report.ProfitLossRow{}

	query := r.db.WithContext(ctx).Table("bookings b").
		Select(`
			b.id as booking_id,
			b.booking_number,
			b.customer_name,
			b.status,
			b.total_cost_price as total_cost,
			b.total_selling_price as total_selling,
			COALESCE(e.total, 0) as total_expenses,
			b.total_selling_price - b.total_cost_price - COALESCE(e.total, 0) as profit,
			b.created_at
		`).
		Joins(`LEFT JOIN (
			SELECT booking_id, SUM(amount_in_base) as total
			FROM expenses
			GROUP BY booking_id
		) e ON e.booking_id = b.id`)

	if dates.Start != nil {
		query = query.Where("b.created_at >= ?", *dates.Start)
	}
	if dates.End != nil {
		query = query.Where("b.created_at <= ?", *dates.End)
	}

	if err := query.
		Order("b.created_at DESC, b.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// OutstandingInvoices returns bookings still fully unpaid with their
// paid totals and balances, newest first with ID as tiebreak.
// Outstanding is floored at zero in SQL with GREATEST.
func (r *GormBookingReportRepository) OutstandingInvoices(ctx context.Context) ([]report.OutstandingInvoiceRow, error) {
	rows := []report.OutstandingInvoiceRow{}

	err := r.db.WithContext(ctx).Table("bookings b").
		Select(`
			b.id as booking_id,
			b.booking_number,
			b.customer_name,
			b.total_selling_price as total_selling,
			COALESCE(p.total, 0) as total_paid,
			GREATEST(b.total_selling_price - COALESCE(p.total, 0), 0) as outstanding,
			b.created_at
		`).
		Joins(`LEFT JOIN (
			SELECT booking_id, SUM(amount_in_base) as total
			FROM payments
			GROUP BY booking_id
		) p ON p.booking_id = b.id`).
		Where("b.payment_status = ?", "pending").
		Order("b.created_at DESC, b.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// HotelRecap aggregates hotel line items whose stay overlaps [start, end],
// grouped by hotel, room type and meal plan. Nights are true elapsed
// nights times rooms; line_count is the number of contributing rows.
func (r *GormBookingReportRepository) HotelRecap(ctx context.Context, start, end time.Time) ([]report.HotelRecapRow, error) {
	rows := []report.HotelRecapRow{}

	err := r.db.WithContext(ctx).Table("hotel_line_items hli").
		Select(`
			hli.hotel_id,
			hli.hotel_name,
			hli.room_type,
			hli.meal_plan,
			COALESCE(SUM(hli.rooms), 0) as total_rooms,
			COALESCE(SUM((hli.check_out - hli.check_in) * hli.rooms), 0) as total_nights,
			COUNT(*) as line_count,
			COALESCE(SUM(hli.cost_price), 0) as total_cost,
			COALESCE(SUM(hli.selling_price), 0) as total_revenue,
			COALESCE(SUM(hli.selling_price - hli.cost_price), 0) as profit,
			COUNT(DISTINCT hli.booking_id) as distinct_bookings
		`).
		Joins("INNER JOIN bookings b ON b.id = hli.booking_id").
		Where("b.status <> ?", "cancelled").
		Where("hli.check_in <= ? AND hli.check_out >= ?", end, start).
		Group("hli.hotel_id, hli.hotel_name, hli.room_type, hli.meal_plan").
		Order("hli.hotel_name ASC, hli.room_type ASC, hli.meal_plan ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
