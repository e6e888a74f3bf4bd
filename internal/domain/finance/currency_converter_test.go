package finance

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/travelworks/backend/internal/domain/shared"
	"github.com/travelworks/backend/internal/domain/shared/valueobject"
)

type mockRateProvider struct {
	mock.Mock
}

func (m *mockRateProvider) FindByPair(ctx context.Context, from, to valueobject.Currency) (*ExchangeRate, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ExchangeRate), args.Error(1)
}

func mustMoney(t *testing.T, amount string, currency valueobject.Currency) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoneyFromString(amount, currency)
	require.NoError(t, err)
	return m
}

func TestCurrencyConverter(t *testing.T) {
	ctx := context.Background()

	t.Run("same currency is identity without lookup", func(t *testing.T) {
		rates := new(mockRateProvider)
		converter := NewCurrencyConverter(rates)

		got, err := converter.Convert(ctx, mustMoney(t, "150.00", valueobject.SAR), valueobject.SAR)

		require.NoError(t, err)
		assert.Equal(t, "150.00", got.StringFixed(2))
		rates.AssertNotCalled(t, "FindByPair")
	})

	t.Run("converts via exact pair", func(t *testing.T) {
		rates := new(mockRateProvider)
		rate, err := NewExchangeRate(valueobject.USD, valueobject.SAR, decimal.RequireFromString("3.75"))
		require.NoError(t, err)
		rates.On("FindByPair", ctx, valueobject.USD, valueobject.SAR).Return(rate, nil)
		converter := NewCurrencyConverter(rates)

		got, err := converter.ConvertToBase(ctx, mustMoney(t, "100", valueobject.USD))

		require.NoError(t, err)
		assert.Equal(t, "375.00", got.StringFixed(2))
		assert.Equal(t, valueobject.SAR, got.Currency())
		rates.AssertExpectations(t)
	})

	t.Run("rounds to two places", func(t *testing.T) {
		rates := new(mockRateProvider)
		rate, err := NewExchangeRate(valueobject.EUR, valueobject.SAR, decimal.RequireFromString("4.0817"))
		require.NoError(t, err)
		rates.On("FindByPair", ctx, valueobject.EUR, valueobject.SAR).Return(rate, nil)
		converter := NewCurrencyConverter(rates)

		got, err := converter.ConvertToBase(ctx, mustMoney(t, "33.33", valueobject.EUR))

		require.NoError(t, err)
		assert.Equal(t, "136.04", got.StringFixed(2))
	})

	t.Run("missing pair names both currencies", func(t *testing.T) {
		rates := new(mockRateProvider)
		rates.On("FindByPair", ctx, valueobject.EUR, valueobject.SAR).Return(nil, nil)
		converter := NewCurrencyConverter(rates)

		_, err := converter.ConvertToBase(ctx, mustMoney(t, "10", valueobject.EUR))

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "RATE_NOT_FOUND", domainErr.Code)
		assert.Contains(t, domainErr.Message, "EUR")
		assert.Contains(t, domainErr.Message, "SAR")
	})

	t.Run("no inversion fallback", func(t *testing.T) {
		rates := new(mockRateProvider)
		rates.On("FindByPair", ctx, valueobject.SAR, valueobject.USD).Return(nil, nil)
		converter := NewCurrencyConverter(rates)

		_, err := converter.Convert(ctx, mustMoney(t, "375", valueobject.SAR), valueobject.USD)

		assert.Error(t, err)
		rates.AssertNotCalled(t, "FindByPair", ctx, valueobject.USD, valueobject.SAR)
	})
}

func TestNewExchangeRate(t *testing.T) {
	t.Run("rejects same-currency pair", func(t *testing.T) {
		_, err := NewExchangeRate(valueobject.SAR, valueobject.SAR, decimal.NewFromInt(1))

		assert.Error(t, err)
	})

	t.Run("rejects non-positive rate", func(t *testing.T) {
		_, err := NewExchangeRate(valueobject.USD, valueobject.SAR, decimal.Zero)

		assert.Error(t, err)
	})

	t.Run("update replaces rate", func(t *testing.T) {
		rate, err := NewExchangeRate(valueobject.USD, valueobject.SAR, decimal.RequireFromString("3.74"))
		require.NoError(t, err)

		require.NoError(t, rate.UpdateRate(decimal.RequireFromString("3.76")))

		assert.Equal(t, "3.76", rate.Rate.String())
	})
}
