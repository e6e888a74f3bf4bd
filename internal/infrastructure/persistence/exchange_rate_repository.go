package persistence

import (
	"context"
	"errors"

	"github.com/travelworks/backend/internal/domain/finance"
	"github.com/travelworks/backend/internal/domain/shared"
	"github.com/travelworks/backend/internal/domain/shared/valueobject"
	"gorm.io/gorm"
)

// GormExchangeRateRepository implements ExchangeRateRepository using GORM
type GormExchangeRateRepository struct {
	db *gorm.DB
}

// NewGormExchangeRateRepository creates a new GormExchangeRateRepository
func NewGormExchangeRateRepository(db *gorm.DB) *GormExchangeRateRepository {
	return &GormExchangeRateRepository{db: db}
}

// FindByPair finds the rate for an ordered pair; returns (nil, nil) when
// the pair has no record so the converter can report a missing rate
func (r *GormExchangeRateRepository) FindByPair(ctx context.Context, from, to valueobject.Currency) (*finance.ExchangeRate, error) {
	var rate finance.ExchangeRate
	if err := r.db.WithContext(ctx).
		Where("from_currency = ? AND to_currency = ?", from, to).
		First(&rate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

// FindAll returns all configured rates ordered by pair
func (r *GormExchangeRateRepository) FindAll(ctx context.Context) ([]finance.ExchangeRate, error) {
	var rates []finance.ExchangeRate
	if err := r.db.WithContext(ctx).
		Order("from_currency ASC, to_currency ASC").
		Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

// Save creates or updates a rate record
func (r *GormExchangeRateRepository) Save(ctx context.Context, rate *finance.ExchangeRate) error {
	if err := r.db.WithContext(ctx).Save(rate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}
