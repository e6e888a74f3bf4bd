package finance

import (
	"github.com/shopspring/decimal"
	"github.com/travelworks/backend/internal/domain/shared"
	"github.com/travelworks/backend/internal/domain/shared/valueobject"
)

// ExchangeRate represents the conversion rate for one ordered currency
// pair. The reverse pair is a distinct record; rates are never inverted
// automatically.
type ExchangeRate struct {
	shared.BaseAggregateRoot
	FromCurrency valueobject.Currency `gorm:"type:varchar(3);uniqueIndex:idx_exchange_rates_pair"`
	ToCurrency   valueobject.Currency `gorm:"type:varchar(3);uniqueIndex:idx_exchange_rates_pair"`
	Rate         decimal.Decimal      `gorm:"type:decimal(14,6)"`
}

// NewExchangeRate creates a rate for an ordered currency pair
func NewExchangeRate(from, to valueobject.Currency, rate decimal.Decimal) (*ExchangeRate, error) {
	if !from.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unsupported source currency")
	}
	if !to.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unsupported target currency")
	}
	if from == to {
		return nil, shared.NewDomainError("INVALID_INPUT", "Source and target currency must differ")
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Exchange rate must be positive")
	}

	return &ExchangeRate{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FromCurrency:      from,
		ToCurrency:        to,
		Rate:              rate,
	}, nil
}

// UpdateRate replaces the pair's rate
func (r *ExchangeRate) UpdateRate(rate decimal.Decimal) error {
	if rate.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_INPUT", "Exchange rate must be positive")
	}
	r.Rate = rate
	r.Touch()
	return nil
}
