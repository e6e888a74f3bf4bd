package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromInt(100), USD)
		require.NoError(t, err)
		assert.Equal(t, USD, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
	})

	t.Run("rejects unsupported currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), Currency("GBP"))
		assert.Error(t, err)
	})

	t.Run("rejects empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		assert.Error(t, err)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses decimal string", func(t *testing.T) {
		m, err := NewMoneyFromString("99.99", SAR)
		require.NoError(t, err)
		assert.Equal(t, "99.99", m.StringFixed(2))
	})

	t.Run("rejects invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", SAR)
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("adds same currency", func(t *testing.T) {
		a := NewMoneySAR(decimal.NewFromInt(100))
		b := NewMoneySAR(decimal.NewFromInt(50))
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromInt(150)))
	})

	t.Run("rejects mixed currency addition", func(t *testing.T) {
		a := NewMoneySAR(decimal.NewFromInt(100))
		b, _ := NewMoney(decimal.NewFromInt(50), USD)
		_, err := a.Add(b)
		assert.Error(t, err)
	})

	t.Run("subtracts same currency", func(t *testing.T) {
		a := NewMoneySAR(decimal.NewFromInt(100))
		b := NewMoneySAR(decimal.NewFromInt(30))
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.True(t, diff.Amount().Equal(decimal.NewFromInt(70)))
	})

	t.Run("multiplies by integer", func(t *testing.T) {
		m := NewMoneySAR(decimal.NewFromInt(100))
		assert.True(t, m.MultiplyByInt(3).Amount().Equal(decimal.NewFromInt(300)))
	})
}

func TestMoney_ApplyMarkup(t *testing.T) {
	t.Run("cost 100 with 20 percent markup sells at 120", func(t *testing.T) {
		cost := NewMoneySAR(decimal.NewFromInt(100))
		selling := cost.ApplyMarkup(decimal.NewFromInt(20)).Round(2)
		assert.Equal(t, "120.00", selling.StringFixed(2))
	})

	t.Run("zero markup keeps cost unchanged", func(t *testing.T) {
		cost := NewMoneySAR(decimal.NewFromFloat(55.55))
		selling := cost.ApplyMarkup(decimal.Zero).Round(2)
		assert.True(t, selling.Equals(cost))
	})

	t.Run("fractional markup rounds to two places", func(t *testing.T) {
		cost := NewMoneySAR(decimal.NewFromInt(100))
		selling := cost.ApplyMarkup(decimal.NewFromFloat(12.345)).Round(2)
		assert.Equal(t, "112.35", selling.StringFixed(2))
	})
}

func TestMoney_Comparisons(t *testing.T) {
	a := NewMoneySAR(decimal.NewFromInt(100))
	b := NewMoneySAR(decimal.NewFromInt(200))

	t.Run("less than", func(t *testing.T) {
		less, err := a.LessThan(b)
		require.NoError(t, err)
		assert.True(t, less)
	})

	t.Run("greater than or equal", func(t *testing.T) {
		gte, err := b.GreaterThanOrEqual(a)
		require.NoError(t, err)
		assert.True(t, gte)

		gte, err = a.GreaterThanOrEqual(a)
		require.NoError(t, err)
		assert.True(t, gte)
	})

	t.Run("mixed currency comparison fails", func(t *testing.T) {
		c, _ := NewMoney(decimal.NewFromInt(100), EUR)
		_, err := a.LessThan(c)
		assert.Error(t, err)
	})
}

func TestMoney_JSON(t *testing.T) {
	t.Run("round trips through JSON", func(t *testing.T) {
		m, _ := NewMoney(decimal.NewFromFloat(375.50), USD)
		data, err := json.Marshal(m)
		require.NoError(t, err)

		var decoded Money
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, m.Equals(decoded))
	})
}

func TestMoney_Scan(t *testing.T) {
	t.Run("scans string amount with base currency default", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("123.45"))
		assert.Equal(t, BaseCurrency, m.Currency())
		assert.Equal(t, "123.45", m.StringFixed(2))
	})

	t.Run("nil scans to zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})
}

func TestCurrency_IsValid(t *testing.T) {
	assert.True(t, SAR.IsValid())
	assert.True(t, USD.IsValid())
	assert.True(t, EUR.IsValid())
	assert.False(t, Currency("CNY").IsValid())
	assert.False(t, Currency("").IsValid())
}
