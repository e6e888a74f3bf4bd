package shared

import (
	"github.com/google/uuid"
)

// BaseAggregateRoot adds an optimistic-lock version to BaseEntity.
// Repositories bump Version on every aggregate update and include the
// previous value in the WHERE clause; a zero-row update means a
// concurrent writer won and surfaces as CONCURRENCY_CONFLICT.
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// AuditedAggregateRoot records which user created the aggregate.
// Everything an agent creates through the API (bookings, catalog
// entries, customers, ledger entries) carries this.
type AuditedAggregateRoot struct {
	BaseAggregateRoot
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index"`
}

func NewAuditedAggregateRoot(createdBy uuid.UUID) AuditedAggregateRoot {
	return AuditedAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		CreatedBy:         createdBy,
	}
}
