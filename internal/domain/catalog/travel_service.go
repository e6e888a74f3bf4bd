package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/travelworks/backend/internal/domain/shared"
)

// TravelService represents an ancillary service master record
// (transfers, visas, excursions) sold alongside hotel stays.
type TravelService struct {
	shared.AuditedAggregateRoot
	Name             string
	Description      string
	CostPrice        decimal.Decimal `gorm:"type:decimal(14,2)"`
	MarkupPercentage decimal.Decimal `gorm:"type:decimal(7,2)"`
	Active           bool
}

// NewTravelService creates a new service master record
func NewTravelService(name, description string, costPrice, markupPercentage decimal.Decimal, createdBy uuid.UUID) (*TravelService, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Service name cannot be empty")
	}
	if costPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Service cost price cannot be negative")
	}
	if markupPercentage.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Service markup percentage cannot be negative")
	}

	return &TravelService{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		Name:                 name,
		Description:          description,
		CostPrice:            costPrice,
		MarkupPercentage:     markupPercentage,
		Active:               true,
	}, nil
}

// UpdatePricing updates the service's cost price and markup percentage
func (s *TravelService) UpdatePricing(costPrice, markupPercentage decimal.Decimal) error {
	if costPrice.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Service cost price cannot be negative")
	}
	if markupPercentage.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Service markup percentage cannot be negative")
	}
	s.CostPrice = costPrice
	s.MarkupPercentage = markupPercentage
	s.Touch()
	return nil
}

// Deactivate marks the service as inactive without deleting it
func (s *TravelService) Deactivate() {
	s.Active = false
	s.Touch()
}
