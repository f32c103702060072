package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
)

// MockFlightAPI is a mock implementation of service.FlightAPI
type MockFlightAPI struct {
	mock.Mock
}

func (m *MockFlightAPI) ListFlights(ctx context.Context, limit int) ([]models.Flight, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockFlightAPI) SearchFlights(ctx context.Context, query models.SearchQuery) ([]models.Flight, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockFlightAPI) DynamicPrice(ctx context.Context, flightID int64) (*models.DynamicPrice, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DynamicPrice), args.Error(1)
}

func (m *MockFlightAPI) InitiateBooking(ctx context.Context, req models.InitiateBookingRequest) (*models.InitiateBookingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InitiateBookingResponse), args.Error(1)
}

func (m *MockFlightAPI) Pay(ctx context.Context, pnr string, req models.PaymentRequest) (*models.PaymentResponse, error) {
	args := m.Called(ctx, pnr, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentResponse), args.Error(1)
}

func (m *MockFlightAPI) GetBooking(ctx context.Context, pnr string) (*models.BookingRecord, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingRecord), args.Error(1)
}

func (m *MockFlightAPI) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.BookingSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingSummary), args.Error(1)
}

func (m *MockFlightAPI) CancelBooking(ctx context.Context, pnr string) (*models.CancelResponse, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CancelResponse), args.Error(1)
}

func (m *MockFlightAPI) EmailTicket(ctx context.Context, pnr string) (*models.EmailTicketResponse, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmailTicketResponse), args.Error(1)
}

func (m *MockFlightAPI) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}

func (m *MockFlightAPI) BookingsTrend(ctx context.Context) ([]models.TrendPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TrendPoint), args.Error(1)
}

func (m *MockFlightAPI) TopRoutes(ctx context.Context) ([]models.RouteStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RouteStat), args.Error(1)
}

func (m *MockFlightAPI) AirlineStats(ctx context.Context) ([]models.AirlineStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AirlineStat), args.Error(1)
}

// MockJourneyTracker is a mock implementation of service.JourneyTracker
type MockJourneyTracker struct {
	mock.Mock
}

func (m *MockJourneyTracker) Start(ctx context.Context, input models.JourneyWorkflowInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockJourneyTracker) Record(ctx context.Context, pnr string, event models.JourneyEvent) error {
	args := m.Called(ctx, pnr, event)
	return args.Error(0)
}

func (m *MockJourneyTracker) State(ctx context.Context, pnr string) (*models.JourneySnapshot, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JourneySnapshot), args.Error(1)
}

func (m *MockJourneyTracker) RequestTicketEmail(ctx context.Context, pnr string) error {
	args := m.Called(ctx, pnr)
	return args.Error(0)
}
