package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/travelworks/backend/internal/domain/booking"
	"github.com/travelworks/backend/internal/domain/catalog"
	"github.com/travelworks/backend/internal/domain/partner"
	"github.com/travelworks/backend/internal/domain/shared"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindByBookingNumber(ctx context.Context, number string) (*booking.Booking, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindAll(ctx context.Context, filter shared.Filter) ([]booking.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Booking), args.Error(1)
}

func (m *mockBookingRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) Save(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) ExistsByBookingNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepo) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) CountByHotel(ctx context.Context, hotelID uuid.UUID) (int64, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) CountByService(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	args := m.Called(ctx, serviceID)
	return args.Get(0).(int64), args.Error(1)
}

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCustomerRepo) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockHotelRepo struct {
	mock.Mock
}

func (m *mockHotelRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Hotel), args.Error(1)
}

func (m *mockHotelRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Hotel, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Hotel), args.Error(1)
}

func (m *mockHotelRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Hotel, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Hotel), args.Error(1)
}

func (m *mockHotelRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockHotelRepo) Save(ctx context.Context, hotel *catalog.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}

func (m *mockHotelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTravelServiceRepo struct {
	mock.Mock
}

func (m *mockTravelServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.TravelService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.TravelService), args.Error(1)
}

func (m *mockTravelServiceRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.TravelService, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.TravelService), args.Error(1)
}

func (m *mockTravelServiceRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.TravelService, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.TravelService), args.Error(1)
}

func (m *mockTravelServiceRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTravelServiceRepo) Save(ctx context.Context, service *catalog.TravelService) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *mockTravelServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type serviceMocks struct {
	bookings  *mockBookingRepo
	customers *mockCustomerRepo
	hotels    *mockHotelRepo
	services  *mockTravelServiceRepo
}

func newService(t *testing.T) (*BookingService, serviceMocks) {
	t.Helper()
	m := serviceMocks{
		bookings:  new(mockBookingRepo),
		customers: new(mockCustomerRepo),
		hotels:    new(mockHotelRepo),
		services:  new(mockTravelServiceRepo),
	}
	return NewBookingService(m.bookings, m.customers, m.hotels, m.services), m
}

func testCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	c, err := partner.NewCustomer("Ahmed Hassan", "+966501234567", "ahmed@example.com", uuid.New())
	require.NoError(t, err)
	return c
}

func testHotel(t *testing.T, cost, markup string) *catalog.Hotel {
	t.Helper()
	h, err := catalog.NewHotel("Al Safwah Royale Orchid", "Makkah", decimal.RequireFromString(cost), decimal.RequireFromString(markup), uuid.New())
	require.NoError(t, err)
	return h
}

func testTravelService(t *testing.T, cost, markup string) *catalog.TravelService {
	t.Helper()
	ts, err := catalog.NewTravelService("Airport Transfer", "Jeddah airport to Makkah hotel", decimal.RequireFromString(cost), decimal.RequireFromString(markup), uuid.New())
	require.NoError(t, err)
	return ts
}

func TestBookingServiceCreate(t *testing.T) {
	ctx := context.Background()
	createdBy := uuid.New()

	t.Run("creates priced booking with mixed items", func(t *testing.T) {
		svc, m := newService(t)
		customer := testCustomer(t)
		hotel := testHotel(t, "100", "20")
		travelService := testTravelService(t, "50", "10")

		m.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
		m.hotels.On("FindByIDs", ctx, []uuid.UUID{hotel.ID}).Return([]catalog.Hotel{*hotel}, nil)
		m.services.On("FindByIDs", ctx, []uuid.UUID{travelService.ID}).Return([]catalog.TravelService{*travelService}, nil)
		m.bookings.On("Save", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil)

		resp, err := svc.Create(ctx, createdBy, CreateBookingRequest{
			CustomerID: customer.ID,
			HotelItems: []CreateHotelItemInput{{
				HotelID:  hotel.ID,
				RoomType: "double",
				MealPlan: "breakfast",
				CheckIn:  "2026-09-01",
				CheckOut: "2026-09-05",
				Rooms:    2,
			}},
			ServiceItems: []CreateServiceItemInput{{
				ServiceID: travelService.ID,
				Quantity:  2,
			}},
		})

		require.NoError(t, err)
		assert.Equal(t, "300", resp.TotalCostPrice.String())
		assert.Equal(t, "350", resp.TotalSellingPrice.String())
		assert.Equal(t, "draft", resp.Status)
		assert.Equal(t, "pending", resp.PaymentStatus)
		assert.Regexp(t, `^BKG-\d{8}-[0-9A-F]{6}$`, resp.BookingNumber)
		m.bookings.AssertExpectations(t)
	})

	t.Run("empty cart produces zero totals", func(t *testing.T) {
		svc, m := newService(t)
		customer := testCustomer(t)

		m.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
		m.bookings.On("Save", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil)

		resp, err := svc.Create(ctx, createdBy, CreateBookingRequest{CustomerID: customer.ID})

		require.NoError(t, err)
		assert.True(t, resp.TotalSellingPrice.IsZero())
		assert.Equal(t, 0, resp.ItemCount)
		m.hotels.AssertNotCalled(t, "FindByIDs")
		m.services.AssertNotCalled(t, "FindByIDs")
	})

	t.Run("unknown customer fails before master fetch", func(t *testing.T) {
		svc, m := newService(t)
		customerID := uuid.New()

		m.customers.On("FindByID", ctx, customerID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, createdBy, CreateBookingRequest{CustomerID: customerID})

		assert.Error(t, err)
		m.bookings.AssertNotCalled(t, "Save")
	})

	t.Run("missing hotel fails before persistence", func(t *testing.T) {
		svc, m := newService(t)
		customer := testCustomer(t)
		missingID := uuid.New()

		m.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
		m.hotels.On("FindByIDs", ctx, []uuid.UUID{missingID}).Return([]catalog.Hotel{}, nil)

		_, err := svc.Create(ctx, createdBy, CreateBookingRequest{
			CustomerID: customer.ID,
			HotelItems: []CreateHotelItemInput{{
				HotelID:  missingID,
				RoomType: "single",
				MealPlan: "no_meal",
				CheckIn:  "2026-09-01",
				CheckOut: "2026-09-02",
				Rooms:    1,
			}},
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		m.bookings.AssertNotCalled(t, "Save")
	})

	t.Run("retries twice on booking number conflict", func(t *testing.T) {
		svc, m := newService(t)
		customer := testCustomer(t)

		m.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
		m.bookings.On("Save", ctx, mock.AnythingOfType("*booking.Booking")).Return(shared.ErrAlreadyExists).Twice()
		m.bookings.On("Save", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil).Once()

		_, err := svc.Create(ctx, createdBy, CreateBookingRequest{CustomerID: customer.ID})

		require.NoError(t, err)
		m.bookings.AssertNumberOfCalls(t, "Save", 3)
	})

	t.Run("gives up after exhausted retries", func(t *testing.T) {
		svc, m := newService(t)
		customer := testCustomer(t)

		m.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
		m.bookings.On("Save", ctx, mock.AnythingOfType("*booking.Booking")).Return(shared.ErrAlreadyExists)

		_, err := svc.Create(ctx, createdBy, CreateBookingRequest{CustomerID: customer.ID})

		require.Error(t, err)
		m.bookings.AssertNumberOfCalls(t, "Save", 3)
	})
}

func TestBookingServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms draft booking", func(t *testing.T) {
		svc, m := newService(t)
		b, err := booking.NewBooking("BKG-20260826-A1B2C3", uuid.New(), "Ahmed Hassan", uuid.New())
		require.NoError(t, err)

		m.bookings.On("FindByID", ctx, b.ID).Return(b, nil)
		m.bookings.On("Save", ctx, b).Return(nil)

		resp, err := svc.UpdateStatus(ctx, b.ID, UpdateBookingStatusRequest{Status: "confirmed"})

		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
		assert.NotNil(t, resp.ConfirmedAt)
	})

	t.Run("rejects illegal transition without saving", func(t *testing.T) {
		svc, m := newService(t)
		b, err := booking.NewBooking("BKG-20260826-A1B2C3", uuid.New(), "Ahmed Hassan", uuid.New())
		require.NoError(t, err)

		m.bookings.On("FindByID", ctx, b.ID).Return(b, nil)

		_, err = svc.UpdateStatus(ctx, b.ID, UpdateBookingStatusRequest{Status: "completed"})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		m.bookings.AssertNotCalled(t, "Save")
	})
}

func TestBookingServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("applies default pagination", func(t *testing.T) {
		svc, m := newService(t)

		m.bookings.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Page == 1 && f.PageSize == 20 && f.OrderBy == "created_at" && f.OrderDir == "desc"
		})).Return([]booking.Booking{}, nil)
		m.bookings.On("Count", ctx, mock.Anything).Return(int64(0), nil)

		items, total, err := svc.List(ctx, BookingListFilter{})

		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Equal(t, int64(0), total)
	})
}
