package partner

import (
	"github.com/google/uuid"
	"github.com/travelworks/backend/internal/domain/shared"
)

// Customer represents a travel agency customer
type Customer struct {
	shared.AuditedAggregateRoot
	Name    string
	Phone   string
	Email   string
	Remarks string
}

// NewCustomer creates a new customer
func NewCustomer(name, phone, email string, createdBy uuid.UUID) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer name cannot be empty")
	}

	return &Customer{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		Name:                 name,
		Phone:                phone,
		Email:                email,
	}, nil
}

// UpdateContact updates the customer's contact details
func (c *Customer) UpdateContact(name, phone, email string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Customer name cannot be empty")
	}
	c.Name = name
	c.Phone = phone
	c.Email = email
	c.Touch()
	return nil
}

// SetRemarks sets free-form notes on the customer
func (c *Customer) SetRemarks(remarks string) {
	c.Remarks = remarks
	c.Touch()
}
