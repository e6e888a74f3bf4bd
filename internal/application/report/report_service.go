package report

import (
	"context"
	"time"

	"github.com/travelworks/backend/internal/domain/report"
	"github.com/travelworks/backend/internal/domain/shared"
)

const dateLayout = "2006-01-02"

// ProfitLossFilter holds the optional inclusive creation-date window,
// dates in 2006-01-02 format
type ProfitLossFilter struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// HotelRecapFilter holds the required stay window for the recap report
type HotelRecapFilter struct {
	StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"required,datetime=2006-01-02"`
}

// ReportService runs the read-side financial reports
type ReportService struct {
	reportRepo report.BookingReportRepository
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo report.BookingReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// ProfitLoss returns per-booking financial results in the optional window
func (s *ReportService) ProfitLoss(ctx context.Context, filter ProfitLossFilter) ([]report.ProfitLossRow, error) {
	var dates report.DateRange
	if filter.StartDate != "" {
		start, err := time.Parse(dateLayout, filter.StartDate)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid start date")
		}
		dates.Start = &start
	}
	if filter.EndDate != "" {
		end, err := time.Parse(dateLayout, filter.EndDate)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid end date")
		}
		// Inclusive end of day
		end = end.Add(24*time.Hour - time.Nanosecond)
		dates.End = &end
	}
	if dates.Start != nil && dates.End != nil && dates.End.Before(*dates.Start) {
		return nil, shared.NewDomainError("INVALID_INPUT", "End date must not be before start date")
	}

	return s.reportRepo.ProfitLoss(ctx, dates)
}

// OutstandingInvoices returns unpaid bookings with their balances
func (s *ReportService) OutstandingInvoices(ctx context.Context) ([]report.OutstandingInvoiceRow, error) {
	return s.reportRepo.OutstandingInvoices(ctx)
}

// HotelRecap aggregates hotel stays over the given window
func (s *ReportService) HotelRecap(ctx context.Context, filter HotelRecapFilter) ([]report.HotelRecapRow, error) {
	start, err := time.Parse(dateLayout, filter.StartDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid start date")
	}
	end, err := time.Parse(dateLayout, filter.EndDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid end date")
	}
	if end.Before(start) {
		return nil, shared.NewDomainError("INVALID_INPUT", "End date must not be before start date")
	}

	return s.reportRepo.HotelRecap(ctx, start, end)
}
