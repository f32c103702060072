package service

import (
	"context"

	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
)

// FlightAPI is the upstream FlightSim API. *flightapi.Client satisfies it.
type FlightAPI interface {
	ListFlights(ctx context.Context, limit int) ([]models.Flight, error)
	SearchFlights(ctx context.Context, query models.SearchQuery) ([]models.Flight, error)
	DynamicPrice(ctx context.Context, flightID int64) (*models.DynamicPrice, error)
	InitiateBooking(ctx context.Context, req models.InitiateBookingRequest) (*models.InitiateBookingResponse, error)
	Pay(ctx context.Context, pnr string, req models.PaymentRequest) (*models.PaymentResponse, error)
	GetBooking(ctx context.Context, pnr string) (*models.BookingRecord, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.BookingSummary, error)
	CancelBooking(ctx context.Context, pnr string) (*models.CancelResponse, error)
	EmailTicket(ctx context.Context, pnr string) (*models.EmailTicketResponse, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	BookingsTrend(ctx context.Context) ([]models.TrendPoint, error)
	TopRoutes(ctx context.Context) ([]models.RouteStat, error)
	AirlineStats(ctx context.Context) ([]models.AirlineStat, error)
}

// JourneyTracker follows the booking chain of each PNR. State returns
// ErrJourneyNotFound for PNRs that were never tracked.
type JourneyTracker interface {
	Start(ctx context.Context, input models.JourneyWorkflowInput) error
	Record(ctx context.Context, pnr string, event models.JourneyEvent) error
	State(ctx context.Context, pnr string) (*models.JourneySnapshot, error)
	RequestTicketEmail(ctx context.Context, pnr string) error
}
