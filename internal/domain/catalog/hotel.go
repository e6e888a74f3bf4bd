package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/travelworks/backend/internal/domain/shared"
)

// Hotel represents a hotel master record used as pricing input for bookings.
// CostPrice is the per-room purchase cost; MarkupPercentage derives the
// selling price (selling = cost * (1 + pct/100)).
type Hotel struct {
	shared.AuditedAggregateRoot
	Name             string
	City             string
	CostPrice        decimal.Decimal `gorm:"type:decimal(14,2)"`
	MarkupPercentage decimal.Decimal `gorm:"type:decimal(7,2)"`
	Active           bool
}

// NewHotel creates a new hotel master record
func NewHotel(name, city string, costPrice, markupPercentage decimal.Decimal, createdBy uuid.UUID) (*Hotel, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Hotel name cannot be empty")
	}
	if costPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Hotel cost price cannot be negative")
	}
	if markupPercentage.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Hotel markup percentage cannot be negative")
	}

	return &Hotel{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		Name:                 name,
		City:                 city,
		CostPrice:            costPrice,
		MarkupPercentage:     markupPercentage,
		Active:               true,
	}, nil
}

// UpdatePricing updates the hotel's cost price and markup percentage
func (h *Hotel) UpdatePricing(costPrice, markupPercentage decimal.Decimal) error {
	if costPrice.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Hotel cost price cannot be negative")
	}
	if markupPercentage.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Hotel markup percentage cannot be negative")
	}
	h.CostPrice = costPrice
	h.MarkupPercentage = markupPercentage
	h.Touch()
	return nil
}

// Rename updates the hotel display fields
func (h *Hotel) Rename(name, city string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Hotel name cannot be empty")
	}
	h.Name = name
	h.City = city
	h.Touch()
	return nil
}

// Deactivate marks the hotel as inactive without deleting it
func (h *Hotel) Deactivate() {
	h.Active = false
	h.Touch()
}
