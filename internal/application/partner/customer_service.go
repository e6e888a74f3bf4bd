package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/travelworks/backend/internal/domain/booking"
	"github.com/travelworks/backend/internal/domain/partner"
	"github.com/travelworks/backend/internal/domain/shared"
)

// CustomerService handles customer master-data operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	bookingRepo  booking.BookingRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, bookingRepo booking.BookingRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		bookingRepo:  bookingRepo,
	}
}

// Create creates a customer
func (s *CustomerService) Create(ctx context.Context, createdBy uuid.UUID, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.Phone, req.Email, createdBy)
	if err != nil {
		return nil, err
	}
	if req.Remarks != "" {
		customer.SetRemarks(req.Remarks)
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, int64, error) {
	domainFilter := filter.ToDomainFilter()

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToCustomerResponses(customers), total, nil
}

// Update updates a customer's contact details
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := customer.Name
	phone := customer.Phone
	email := customer.Email
	if req.Name != nil {
		name = *req.Name
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Email != nil {
		email = *req.Email
	}
	if err := customer.UpdateContact(name, phone, email); err != nil {
		return nil, err
	}
	if req.Remarks != nil {
		customer.SetRemarks(*req.Remarks)
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer. Customers with existing bookings cannot be
// deleted.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}

	refs, err := s.bookingRepo.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return shared.NewDomainError("REFERENTIAL_INTEGRITY", "Customer is referenced by existing bookings")
	}

	return s.customerRepo.Delete(ctx, id)
}
