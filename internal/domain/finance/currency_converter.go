package finance

import (
	"context"
	"fmt"

	"github.com/travelworks/backend/internal/domain/shared"
	"github.com/travelworks/backend/internal/domain/shared/valueobject"
)

// RateProvider looks up the stored rate for an ordered currency pair
type RateProvider interface {
	FindByPair(ctx context.Context, from, to valueobject.Currency) (*ExchangeRate, error)
}

// CurrencyConverter converts monetary amounts between supported
// currencies using exact ordered-pair lookups. There is no inversion
// fallback: converting USD to SAR requires a USD->SAR record even when
// SAR->USD exists.
type CurrencyConverter struct {
	rates RateProvider
}

// NewCurrencyConverter creates a converter backed by the given rate store
func NewCurrencyConverter(rates RateProvider) *CurrencyConverter {
	return &CurrencyConverter{rates: rates}
}

// Convert converts the amount to the target currency, rounded to 2
// decimal places. Same-currency conversion is the identity and performs
// no lookup.
func (c *CurrencyConverter) Convert(ctx context.Context, amount valueobject.Money, to valueobject.Currency) (valueobject.Money, error) {
	if !to.IsValid() {
		return valueobject.Money{}, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Unsupported currency %q", to))
	}
	if amount.Currency() == to {
		return amount, nil
	}

	rate, err := c.rates.FindByPair(ctx, amount.Currency(), to)
	if err != nil {
		return valueobject.Money{}, err
	}
	if rate == nil {
		return valueobject.Money{}, shared.NewDomainError("RATE_NOT_FOUND",
			fmt.Sprintf("No exchange rate configured for %s to %s", amount.Currency(), to))
	}

	converted, err := valueobject.NewMoney(amount.Amount().Mul(rate.Rate).Round(2), to)
	if err != nil {
		return valueobject.Money{}, err
	}
	return converted, nil
}

// ConvertToBase converts the amount into the base currency
func (c *CurrencyConverter) ConvertToBase(ctx context.Context, amount valueobject.Money) (valueobject.Money, error) {
	return c.Convert(ctx, amount, valueobject.BaseCurrency)
}
