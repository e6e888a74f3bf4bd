package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travelworks/backend/internal/domain/report"
)

func TestGormBookingReportRepository_ProfitLoss(t *testing.T) {
	ctx := context.Background()
	columns := []string{
		"booking_id", "booking_number", "customer_name", "status",
		"total_cost", "total_selling", "total_expenses", "profit", "created_at",
	}

	t.Run("reports profit as selling minus cost minus expenses", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormBookingReportRepository(gormDB)

		newer := uuid.New()
		older := uuid.New()
		now := time.Now()
		rows := sqlmock.NewRows(columns).
			AddRow(newer, "BKG-20260825-F4E5D6", "Ahmed Hassan", "confirmed", "1000.00", "1300.00", "120.00", "180.00", now).
			AddRow(older, "BKG-20260810-A1B2C3", "Fatima Noor", "completed", "400.00", "500.00", "0", "100.00", now.AddDate(0, 0, -15))

		mock.ExpectQuery(`(?s)SELECT .*b\.total_selling_price - b\.total_cost_price - COALESCE\(e\.total, 0\) as profit.* FROM bookings b LEFT JOIN .*FROM expenses.* ORDER BY b\.created_at DESC, b\.id DESC`).
			WillReturnRows(rows)

		got, err := repo.ProfitLoss(ctx, report.DateRange{})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, newer, got[0].BookingID)
		assert.Equal(t, "180.00", got[0].Profit.StringFixed(2))
		assert.True(t, got[0].Profit.Equal(got[0].TotalSelling.Sub(got[0].TotalCost).Sub(got[0].TotalExpenses)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("booking without expenses reports zero, not a dropped row", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormBookingReportRepository(gormDB)

		rows := sqlmock.NewRows(columns).
			AddRow(uuid.New(), "BKG-20260820-C7D8E9", "Omar Said", "confirmed", "400.00", "500.00", "0", "100.00", time.Now())

		mock.ExpectQuery(`(?s)SELECT .*COALESCE\(e\.total, 0\) as total_expenses.* FROM bookings b LEFT JOIN`).
			WillReturnRows(rows)

		got, err := repo.ProfitLoss(ctx, report.DateRange{})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].TotalExpenses.IsZero())
		assert.Equal(t, "100.00", got[0].Profit.StringFixed(2))
	})

	t.Run("applies the inclusive creation-date window", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormBookingReportRepository(gormDB)

		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`(?s)SELECT .* FROM bookings b LEFT JOIN .* WHERE b\.created_at >= \$1 AND b\.created_at <= \$2 ORDER BY`).
			WithArgs(start, end).
			WillReturnRows(sqlmock.NewRows(columns))

		got, err := repo.ProfitLoss(ctx, report.DateRange{Start: &start, End: &end})

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormBookingReportRepository_OutstandingInvoices(t *testing.T) {
	ctx := context.Background()
	columns := []string{
		"booking_id", "booking_number", "customer_name",
		"total_selling", "total_paid", "outstanding", "created_at",
	}

	t.Run("lists pending bookings with floored balances", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormBookingReportRepository(gormDB)

		unpaid := uuid.New()
		overpaid := uuid.New()
		now := time.Now()
		rows := sqlmock.NewRows(columns).
			AddRow(unpaid, "BKG-20260824-B2C3D4", "Ahmed Hassan", "800.00", "0", "800.00", now).
			AddRow(overpaid, "BKG-20260812-E5F6A7", "Fatima Noor", "500.00", "650.00", "0", now.AddDate(0, 0, -12))

		mock.ExpectQuery(`(?s)SELECT .*GREATEST\(b\.total_selling_price - COALESCE\(p\.total, 0\), 0\) as outstanding.* FROM bookings b LEFT JOIN .*FROM payments.* WHERE b\.payment_status = \$1 ORDER BY b\.created_at DESC, b\.id DESC`).
			WithArgs("pending").
			WillReturnRows(rows)

		got, err := repo.OutstandingInvoices(ctx)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, unpaid, got[0].BookingID)
		assert.Equal(t, "800.00", got[0].Outstanding.StringFixed(2))
		assert.True(t, got[1].Outstanding.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns an empty slice when nothing is pending", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormBookingReportRepository(gormDB)

		mock.ExpectQuery(`(?s)SELECT .* FROM bookings b LEFT JOIN .* WHERE b\.payment_status = \$1`).
			WithArgs("pending").
			WillReturnRows(sqlmock.NewRows(columns))

		got, err := repo.OutstandingInvoices(ctx)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestGormBookingReportRepository_HotelRecap(t *testing.T) {
	ctx := context.Background()
	columns := []string{
		"hotel_id", "hotel_name", "room_type", "meal_plan",
		"total_rooms", "total_nights", "line_count",
		"total_cost", "total_revenue", "profit", "distinct_bookings",
	}
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	t.Run("aggregates per hotel, room type and meal plan", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormBookingReportRepository(gormDB)

		hotelID := uuid.New()
		rows := sqlmock.NewRows(columns).
			AddRow(hotelID, "Al Safwah Royale Orchid", "double", "breakfast", 5, 15, 3, "3000.00", "3900.00", "900.00", 2).
			AddRow(hotelID, "Al Safwah Royale Orchid", "quad", "full_board", 2, 6, 1, "1800.00", "2160.00", "360.00", 1)

		mock.ExpectQuery(`(?s)SELECT .*SUM\(\(hli\.check_out - hli\.check_in\) \* hli\.rooms\), 0\) as total_nights.* FROM hotel_line_items hli INNER JOIN bookings b ON b\.id = hli\.booking_id WHERE b\.status <> \$1 AND \(hli\.check_in <= \$2 AND hli\.check_out >= \$3\) GROUP BY hli\.hotel_id, hli\.hotel_name, hli\.room_type, hli\.meal_plan ORDER BY hli\.hotel_name ASC, hli\.room_type ASC, hli\.meal_plan ASC`).
			WithArgs("cancelled", end, start).
			WillReturnRows(rows)

		got, err := repo.HotelRecap(ctx, start, end)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "double", got[0].RoomType)
		assert.EqualValues(t, 15, got[0].TotalNights)
		assert.Equal(t, "900.00", got[0].Profit.StringFixed(2))
		assert.True(t, got[0].Profit.Equal(got[0].TotalRevenue.Sub(got[0].TotalCost)))
		assert.EqualValues(t, 2, got[0].DistinctBookings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("window without stays yields an empty slice", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormBookingReportRepository(gormDB)

		mock.ExpectQuery(`(?s)SELECT .* FROM hotel_line_items hli INNER JOIN bookings b`).
			WithArgs("cancelled", end, start).
			WillReturnRows(sqlmock.NewRows(columns))

		got, err := repo.HotelRecap(ctx, start, end)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
