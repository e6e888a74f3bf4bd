package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/travelworks/backend/internal/domain/shared"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusDraft     BookingStatus = "draft"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid checks if the status is a valid BookingStatus
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusDraft, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of BookingStatus
func (s BookingStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingStatusDraft:
		return target == BookingStatusConfirmed || target == BookingStatusCancelled
	case BookingStatusConfirmed:
		return target == BookingStatusCompleted || target == BookingStatusCancelled
	case BookingStatusCompleted, BookingStatusCancelled:
		return false // Terminal states
	}
	return false
}

// PaymentStatus represents how much of a booking's selling price is covered
// by recorded payments. It is derived from the payment ledger, never set
// directly by callers.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// RoomType represents the room configuration of a hotel line item
type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeTriple RoomType = "triple"
	RoomTypeQuad   RoomType = "quad"
)

// IsValid checks if the room type is a known configuration
func (r RoomType) IsValid() bool {
	switch r {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeTriple, RoomTypeQuad:
		return true
	}
	return false
}

// MealPlan represents the board basis of a hotel line item
type MealPlan string

const (
	MealPlanNone      MealPlan = "no_meal"
	MealPlanBreakfast MealPlan = "breakfast"
	MealPlanHalfboard MealPlan = "halfboard"
	MealPlanFullboard MealPlan = "fullboard"
)

// IsValid checks if the meal plan is a known board basis
func (m MealPlan) IsValid() bool {
	switch m {
	case MealPlanNone, MealPlanBreakfast, MealPlanHalfboard, MealPlanFullboard:
		return true
	}
	return false
}

// HotelLineItem represents one hotel stay inside a booking.
// Line items are created atomically with their parent booking and are
// never updated independently.
type HotelLineItem struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	HotelID      uuid.UUID
	HotelName    string
	RoomType     RoomType
	MealPlan     MealPlan
	CheckIn      time.Time `gorm:"type:date"`
	CheckOut     time.Time `gorm:"type:date"`
	Rooms        int
	CostPrice    decimal.Decimal `gorm:"type:decimal(14,2)"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(14,2)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewHotelLineItem creates a priced hotel line item from the hotel's master
// pricing. See PriceHotelLine for the pricing rule.
func NewHotelLineItem(bookingID uuid.UUID, pricing HotelPricing, roomType RoomType, mealPlan MealPlan, checkIn, checkOut time.Time, rooms int) (*HotelLineItem, error) {
	if pricing.HotelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Hotel ID cannot be empty")
	}
	if !roomType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Unknown room type %q", roomType))
	}
	if !mealPlan.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Unknown meal plan %q", mealPlan))
	}
	if rooms <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Room count must be positive")
	}
	if !checkOut.After(checkIn) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Check-out date must be after check-in date")
	}

	cost, selling := PriceHotelLine(pricing, rooms)
	now := time.Now()

	return &HotelLineItem{
		ID:           uuid.New(),
		BookingID:    bookingID,
		HotelID:      pricing.HotelID,
		HotelName:    pricing.HotelName,
		RoomType:     roomType,
		MealPlan:     mealPlan,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Rooms:        rooms,
		CostPrice:    cost,
		SellingPrice: selling,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Nights returns the number of elapsed nights between check-in and check-out
func (i *HotelLineItem) Nights() int {
	return int(i.CheckOut.Sub(i.CheckIn).Hours() / 24)
}

// ServiceLineItem represents one ancillary service inside a booking
type ServiceLineItem struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	ServiceID    uuid.UUID
	ServiceName  string
	Quantity     int
	CostPrice    decimal.Decimal `gorm:"type:decimal(14,2)"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(14,2)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewServiceLineItem creates a priced service line item from the service's
// master pricing
func NewServiceLineItem(bookingID uuid.UUID, pricing ServicePricing, quantity int) (*ServiceLineItem, error) {
	if pricing.ServiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Service ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Service quantity must be positive")
	}

	cost, selling := PriceServiceLine(pricing, quantity)
	now := time.Now()

	return &ServiceLineItem{
		ID:           uuid.New(),
		BookingID:    bookingID,
		ServiceID:    pricing.ServiceID,
		ServiceName:  pricing.ServiceName,
		Quantity:     quantity,
		CostPrice:    cost,
		SellingPrice: selling,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Booking represents a booking aggregate root: a priced bundle of hotel
// stays and ancillary services sold to one customer.
type Booking struct {
	shared.AuditedAggregateRoot
	BookingNumber     string
	CustomerID        uuid.UUID
	CustomerName      string
	HotelItems        []HotelLineItem   `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	ServiceItems      []ServiceLineItem `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	TotalCostPrice    decimal.Decimal   `gorm:"type:decimal(14,2)"`
	TotalSellingPrice decimal.Decimal   `gorm:"type:decimal(14,2)"`
	Status            BookingStatus
	PaymentStatus     PaymentStatus
	Remarks           string
	ConfirmedAt       *time.Time
	CompletedAt       *time.Time
	CancelledAt       *time.Time
}

// NewBooking creates a new draft booking with zero totals
func NewBooking(bookingNumber string, customerID uuid.UUID, customerName string, createdBy uuid.UUID) (*Booking, error) {
	if bookingNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Booking number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer ID cannot be empty")
	}
	if createdBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Creator user ID cannot be empty")
	}

	return &Booking{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		BookingNumber:        bookingNumber,
		CustomerID:           customerID,
		CustomerName:         customerName,
		HotelItems:           make([]HotelLineItem, 0),
		ServiceItems:         make([]ServiceLineItem, 0),
		TotalCostPrice:       decimal.Zero,
		TotalSellingPrice:    decimal.Zero,
		Status:               BookingStatusDraft,
		PaymentStatus:        PaymentStatusPending,
	}, nil
}

// AddHotelItem prices and appends a hotel line item.
// Only allowed while the booking is a draft.
func (b *Booking) AddHotelItem(pricing HotelPricing, roomType RoomType, mealPlan MealPlan, checkIn, checkOut time.Time, rooms int) (*HotelLineItem, error) {
	if b.Status != BookingStatusDraft {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-draft booking")
	}

	item, err := NewHotelLineItem(b.ID, pricing, roomType, mealPlan, checkIn, checkOut, rooms)
	if err != nil {
		return nil, err
	}

	b.HotelItems = append(b.HotelItems, *item)
	b.recalculateTotals()
	b.Touch()

	return item, nil
}

// AddServiceItem prices and appends a service line item.
// Only allowed while the booking is a draft.
func (b *Booking) AddServiceItem(pricing ServicePricing, quantity int) (*ServiceLineItem, error) {
	if b.Status != BookingStatusDraft {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-draft booking")
	}

	item, err := NewServiceLineItem(b.ID, pricing, quantity)
	if err != nil {
		return nil, err
	}

	b.ServiceItems = append(b.ServiceItems, *item)
	b.recalculateTotals()
	b.Touch()

	return item, nil
}

// SetRemarks sets the booking remarks
func (b *Booking) SetRemarks(remarks string) {
	b.Remarks = remarks
	b.Touch()
}

// TransitionTo moves the booking to the target status, rejecting illegal
// transitions (completed and cancelled are terminal)
func (b *Booking) TransitionTo(target BookingStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Unknown booking status %q", target))
	}
	if !b.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot transition booking from %s to %s", b.Status, target))
	}

	now := time.Now()
	b.Status = target
	switch target {
	case BookingStatusConfirmed:
		b.ConfirmedAt = &now
	case BookingStatusCompleted:
		b.CompletedAt = &now
	case BookingStatusCancelled:
		b.CancelledAt = &now
	}
	b.UpdatedAt = now

	return nil
}

// DerivePaymentStatus computes the payment status from the total paid in
// base currency against the booking's selling price
func (b *Booking) DerivePaymentStatus(paidTotal decimal.Decimal) PaymentStatus {
	switch {
	case paidTotal.LessThanOrEqual(decimal.Zero):
		return PaymentStatusPending
	case paidTotal.GreaterThanOrEqual(b.TotalSellingPrice):
		return PaymentStatusPaid
	default:
		return PaymentStatusPartial
	}
}

// Outstanding returns the selling price not yet covered by paidTotal,
// floored at zero regardless of overpayment
func (b *Booking) Outstanding(paidTotal decimal.Decimal) decimal.Decimal {
	outstanding := b.TotalSellingPrice.Sub(paidTotal)
	if outstanding.IsNegative() {
		return decimal.Zero
	}
	return outstanding
}

// ItemCount returns the total number of line items across both kinds
func (b *Booking) ItemCount() int {
	return len(b.HotelItems) + len(b.ServiceItems)
}

// IsTerminal returns true if the booking is completed or cancelled
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}

// recalculateTotals sums line-item prices into the booking totals
func (b *Booking) recalculateTotals() {
	cost := decimal.Zero
	selling := decimal.Zero
	for _, item := range b.HotelItems {
		cost = cost.Add(item.CostPrice)
		selling = selling.Add(item.SellingPrice)
	}
	for _, item := range b.ServiceItems {
		cost = cost.Add(item.CostPrice)
		selling = selling.Add(item.SellingPrice)
	}
	b.TotalCostPrice = cost
	b.TotalSellingPrice = selling
}
