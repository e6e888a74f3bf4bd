package booking

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/travelworks/backend/internal/domain/shared/valueobject"
)

// HotelPricing carries the master-data pricing inputs for a hotel line.
// Prices are snapshotted onto the line item at booking time, so later
// changes to the hotel master never reprice existing bookings.
type HotelPricing struct {
	HotelID          uuid.UUID
	HotelName        string
	CostPrice        decimal.Decimal
	MarkupPercentage decimal.Decimal
}

// ServicePricing carries the master-data pricing inputs for a service line
type ServicePricing struct {
	ServiceID        uuid.UUID
	ServiceName      string
	CostPrice        decimal.Decimal
	MarkupPercentage decimal.Decimal
}

// PriceHotelLine computes the cost and selling price of a hotel line.
// Cost scales with the room count only; the stay length is recorded on
// the line item but does not enter the price. Selling price applies the
// percentage markup and rounds to 2 decimal places.
func PriceHotelLine(pricing HotelPricing, rooms int) (cost, selling decimal.Decimal) {
	return priceLine(pricing.CostPrice, pricing.MarkupPercentage, rooms)
}

// PriceServiceLine computes the cost and selling price of a service line.
// Cost scales with quantity; selling price applies the percentage markup
// and rounds to 2 decimal places.
func PriceServiceLine(pricing ServicePricing, quantity int) (cost, selling decimal.Decimal) {
	return priceLine(pricing.CostPrice, pricing.MarkupPercentage, quantity)
}

// Line prices are in the base currency; markup is applied to the
// already-rounded cost, not per unit.
func priceLine(unitCost, markupPercent decimal.Decimal, units int) (cost, selling decimal.Decimal) {
	costMoney := valueobject.NewMoneySAR(unitCost).MultiplyByInt(int64(units)).Round(2)
	sellingMoney := costMoney.ApplyMarkup(markupPercent).Round(2)
	return costMoney.Amount(), sellingMoney.Amount()
}
