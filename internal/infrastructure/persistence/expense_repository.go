package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/travelworks/backend/internal/domain/finance"
	"github.com/travelworks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	var expense finance.Expense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// FindByBooking returns the expense entries for a booking, oldest first
func (r *GormExpenseRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]finance.Expense, error) {
	var expenses []finance.Expense
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("incurred_at ASC, id ASC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Save creates an expense entry
func (r *GormExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}
