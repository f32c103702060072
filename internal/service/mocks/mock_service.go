package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cx-tal-miterani/flightsim-portal/internal/identity"
	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
	"github.com/cx-tal-miterani/flightsim-portal/internal/session"
)

// MockFlightService is a mock implementation of service.FlightService
type MockFlightService struct {
	mock.Mock
}

func (m *MockFlightService) ListFlights(ctx context.Context, limit int) ([]models.Flight, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockFlightService) SearchFlights(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SearchResult), args.Error(1)
}

func (m *MockFlightService) SeatMap(ctx context.Context, flightID int64) (*models.SeatMapView, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeatMapView), args.Error(1)
}

func (m *MockFlightService) QuoteSeat(ctx context.Context, flightID int64, action models.SeatAction) (*models.SeatQuoteView, error) {
	args := m.Called(ctx, flightID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeatQuoteView), args.Error(1)
}

func (m *MockFlightService) ContinueToBooking(ctx context.Context, flightID int64, action models.SeatAction) (*models.SeatHandoffView, error) {
	args := m.Called(ctx, flightID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeatHandoffView), args.Error(1)
}

// MockBookingService is a mock implementation of service.BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) BookingPage(ctx context.Context, flightID int64, token string) (*models.BookingDraft, error) {
	args := m.Called(ctx, flightID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingDraft), args.Error(1)
}

func (m *MockBookingService) SubmitBooking(ctx context.Context, flightID int64, sub models.BookingSubmission) (*models.BookingReceipt, error) {
	args := m.Called(ctx, flightID, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingReceipt), args.Error(1)
}

func (m *MockBookingService) PaymentPage(ctx context.Context, pnr, token string, addOns []string) (*models.PaymentView, error) {
	args := m.Called(ctx, pnr, token, addOns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentView), args.Error(1)
}

func (m *MockBookingService) SubmitPayment(ctx context.Context, pnr string, sub models.PaymentSubmission) (*models.PaymentResult, error) {
	args := m.Called(ctx, pnr, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentResult), args.Error(1)
}

func (m *MockBookingService) Confirmation(ctx context.Context, pnr, token string) (*models.ConfirmationView, error) {
	args := m.Called(ctx, pnr, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ConfirmationView), args.Error(1)
}

func (m *MockBookingService) EmailTicket(ctx context.Context, pnr string) (*models.EmailTicketResult, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmailTicketResult), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.BookingSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingSummary), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, pnr string) (*models.CancelResult, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CancelResult), args.Error(1)
}

func (m *MockBookingService) Journey(ctx context.Context, pnr string) (*models.JourneySnapshot, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JourneySnapshot), args.Error(1)
}

// MockDashboardService is a mock implementation of service.DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Dashboard(ctx context.Context) (*models.DashboardView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardView), args.Error(1)
}

func (m *MockDashboardService) Analytics(ctx context.Context) (*models.AnalyticsView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalyticsView), args.Error(1)
}

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, req identity.SignUp) (*session.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockAuthService) LoginWithGoogle(ctx context.Context, idToken string) (*session.Session, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthService) Current(ctx context.Context, sessionID string) (*session.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}
