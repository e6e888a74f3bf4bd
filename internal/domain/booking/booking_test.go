package booking

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hotelPricing(cost, markup string) HotelPricing {
	return HotelPricing{
		HotelID:          uuid.New(),
		HotelName:        "Al Safwah Royale Orchid",
		CostPrice:        decimal.RequireFromString(cost),
		MarkupPercentage: decimal.RequireFromString(markup),
	}
}

func servicePricing(cost, markup string) ServicePricing {
	return ServicePricing{
		ServiceID:        uuid.New(),
		ServiceName:      "Airport Transfer",
		CostPrice:        decimal.RequireFromString(cost),
		MarkupPercentage: decimal.RequireFromString(markup),
	}
}

func newDraftBooking(t *testing.T) *Booking {
	t.Helper()
	b, err := NewBooking("BKG-20260826-A1B2C3", uuid.New(), "Ahmed Hassan", uuid.New())
	require.NoError(t, err)
	return b
}

func TestPriceHotelLine(t *testing.T) {
	t.Run("applies markup to per-room cost", func(t *testing.T) {
		cost, selling := PriceHotelLine(hotelPricing("100", "20"), 1)

		assert.Equal(t, "100.00", cost.StringFixed(2))
		assert.Equal(t, "120.00", selling.StringFixed(2))
	})

	t.Run("scales with room count", func(t *testing.T) {
		cost, selling := PriceHotelLine(hotelPricing("250.50", "15"), 3)

		assert.Equal(t, "751.50", cost.StringFixed(2))
		assert.Equal(t, "864.23", selling.StringFixed(2))
	})

	t.Run("zero markup sells at cost", func(t *testing.T) {
		cost, selling := PriceHotelLine(hotelPricing("80", "0"), 2)

		assert.True(t, cost.Equal(selling))
	})
}

func TestPriceServiceLine(t *testing.T) {
	t.Run("scales with quantity", func(t *testing.T) {
		cost, selling := PriceServiceLine(servicePricing("45.75", "10"), 4)

		assert.Equal(t, "183.00", cost.StringFixed(2))
		assert.Equal(t, "201.30", selling.StringFixed(2))
	})
}

func TestNewHotelLineItem(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	t.Run("creates priced item with elapsed nights", func(t *testing.T) {
		item, err := NewHotelLineItem(uuid.New(), hotelPricing("100", "20"), RoomTypeDouble, MealPlanBreakfast, checkIn, checkOut, 2)

		require.NoError(t, err)
		assert.Equal(t, 4, item.Nights())
		assert.Equal(t, "200.00", item.CostPrice.StringFixed(2))
		assert.Equal(t, "240.00", item.SellingPrice.StringFixed(2))
	})

	t.Run("rejects check-out not after check-in", func(t *testing.T) {
		_, err := NewHotelLineItem(uuid.New(), hotelPricing("100", "20"), RoomTypeSingle, MealPlanNone, checkIn, checkIn, 1)

		assert.Error(t, err)
	})

	t.Run("rejects non-positive rooms", func(t *testing.T) {
		_, err := NewHotelLineItem(uuid.New(), hotelPricing("100", "20"), RoomTypeSingle, MealPlanNone, checkIn, checkOut, 0)

		assert.Error(t, err)
	})

	t.Run("rejects unknown room type", func(t *testing.T) {
		_, err := NewHotelLineItem(uuid.New(), hotelPricing("100", "20"), RoomType("suite"), MealPlanNone, checkIn, checkOut, 1)

		assert.Error(t, err)
	})

	t.Run("rejects unknown meal plan", func(t *testing.T) {
		_, err := NewHotelLineItem(uuid.New(), hotelPricing("100", "20"), RoomTypeSingle, MealPlan("all_inclusive"), checkIn, checkOut, 1)

		assert.Error(t, err)
	})
}

func TestNewServiceLineItem(t *testing.T) {
	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewServiceLineItem(uuid.New(), servicePricing("45", "10"), 0)

		assert.Error(t, err)
	})
}

func TestBookingTotals(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	t.Run("sums hotel and service lines", func(t *testing.T) {
		b := newDraftBooking(t)

		_, err := b.AddHotelItem(hotelPricing("100", "20"), RoomTypeDouble, MealPlanHalfboard, checkIn, checkOut, 2)
		require.NoError(t, err)
		_, err = b.AddServiceItem(servicePricing("50", "10"), 2)
		require.NoError(t, err)

		assert.Equal(t, "300.00", b.TotalCostPrice.StringFixed(2))
		assert.Equal(t, "350.00", b.TotalSellingPrice.StringFixed(2))
		assert.Equal(t, 2, b.ItemCount())
	})

	t.Run("selling never below cost for non-negative markups", func(t *testing.T) {
		b := newDraftBooking(t)

		_, err := b.AddHotelItem(hotelPricing("333.33", "0"), RoomTypeTriple, MealPlanFullboard, checkIn, checkOut, 3)
		require.NoError(t, err)
		_, err = b.AddServiceItem(servicePricing("19.99", "7.5"), 5)
		require.NoError(t, err)

		assert.True(t, b.TotalSellingPrice.GreaterThanOrEqual(b.TotalCostPrice))
	})

	t.Run("rejects items on confirmed booking", func(t *testing.T) {
		b := newDraftBooking(t)
		require.NoError(t, b.TransitionTo(BookingStatusConfirmed))

		_, err := b.AddHotelItem(hotelPricing("100", "20"), RoomTypeSingle, MealPlanNone, checkIn, checkOut, 1)

		assert.Error(t, err)
	})
}

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"draft to confirmed", BookingStatusDraft, BookingStatusConfirmed, true},
		{"draft to cancelled", BookingStatusDraft, BookingStatusCancelled, true},
		{"draft to completed", BookingStatusDraft, BookingStatusCompleted, false},
		{"confirmed to completed", BookingStatusConfirmed, BookingStatusCompleted, true},
		{"confirmed to cancelled", BookingStatusConfirmed, BookingStatusCancelled, true},
		{"confirmed to draft", BookingStatusConfirmed, BookingStatusDraft, false},
		{"completed is terminal", BookingStatusCompleted, BookingStatusCancelled, false},
		{"cancelled is terminal", BookingStatusCancelled, BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}

	t.Run("transition stamps timestamps", func(t *testing.T) {
		b := newDraftBooking(t)

		require.NoError(t, b.TransitionTo(BookingStatusConfirmed))
		require.NotNil(t, b.ConfirmedAt)

		require.NoError(t, b.TransitionTo(BookingStatusCompleted))
		require.NotNil(t, b.CompletedAt)
		assert.True(t, b.IsTerminal())
	})

	t.Run("illegal transition returns error", func(t *testing.T) {
		b := newDraftBooking(t)

		err := b.TransitionTo(BookingStatusCompleted)

		assert.Error(t, err)
		assert.Equal(t, BookingStatusDraft, b.Status)
	})
}

func TestDerivePaymentStatus(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	b := newDraftBooking(t)
	_, err := b.AddHotelItem(hotelPricing("800", "0"), RoomTypeQuad, MealPlanBreakfast, checkIn, checkOut, 1)
	require.NoError(t, err)

	t.Run("pending with nothing paid", func(t *testing.T) {
		assert.Equal(t, PaymentStatusPending, b.DerivePaymentStatus(decimal.Zero))
	})

	t.Run("partial when paid below selling price", func(t *testing.T) {
		assert.Equal(t, PaymentStatusPartial, b.DerivePaymentStatus(decimal.NewFromInt(300)))
	})

	t.Run("paid when paid meets selling price", func(t *testing.T) {
		assert.Equal(t, PaymentStatusPaid, b.DerivePaymentStatus(decimal.NewFromInt(800)))
	})

	t.Run("paid when overpaid", func(t *testing.T) {
		assert.Equal(t, PaymentStatusPaid, b.DerivePaymentStatus(decimal.NewFromInt(1000)))
	})

	t.Run("outstanding floors at zero on overpayment", func(t *testing.T) {
		assert.Equal(t, "500.00", b.Outstanding(decimal.NewFromInt(300)).StringFixed(2))
		assert.True(t, b.Outstanding(decimal.NewFromInt(1000)).IsZero())
	})
}

func TestGenerateBookingNumber(t *testing.T) {
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	number := GenerateBookingNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^BKG-20260826-[0-9A-F]{6}$`), number)
	assert.NotEqual(t, number, GenerateBookingNumber(now))
}
