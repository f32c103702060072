package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/cx-tal-miterani/flightsim-portal/internal/handlers"
)

type Options struct {
	CORSOrigins       []string
	MaxRequestsPerMin int
	Sessions          SessionResolver
	Logger            *zap.Logger
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(h *handlers.Handler, opts Options) *mux.Router {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := mux.NewRouter()

	r.Use(recoveryMiddleware(logger))
	r.Use(loggingMiddleware(logger))
	r.Use(corsMiddleware(opts.CORSOrigins))
	if opts.MaxRequestsPerMin > 0 {
		r.Use(rateLimitMiddleware(opts.MaxRequestsPerMin, logger))
	}

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	// Flights
	api.HandleFunc("/flights", h.ListFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/search", h.SearchFlights).Methods(http.MethodGet, http.MethodOptions)

	// Dashboard
	api.HandleFunc("/dashboard", h.Dashboard).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/dashboard/ws", h.DashboardFeed).Methods(http.MethodGet)
	api.HandleFunc("/analytics", h.Analytics).Methods(http.MethodGet, http.MethodOptions)

	// Auth
	api.HandleFunc("/auth/signup", h.SignUp).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/google", h.GoogleLogin).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet, http.MethodOptions)

	// Pages behind sign-in
	pages := api.NewRoute().Subrouter()
	pages.Use(RequireSession(opts.Sessions))

	pages.HandleFunc("/flights/{id}/seatmap", h.SeatMap).Methods(http.MethodGet, http.MethodOptions)
	pages.HandleFunc("/flights/{id}/seatmap/quote", h.QuoteSeat).Methods(http.MethodPost, http.MethodOptions)
	pages.HandleFunc("/flights/{id}/seatmap/continue", h.ContinueToBooking).Methods(http.MethodPost, http.MethodOptions)

	pages.HandleFunc("/booking/{flightId}", h.BookingPage).Methods(http.MethodGet, http.MethodOptions)
	pages.HandleFunc("/booking/{flightId}", h.SubmitBooking).Methods(http.MethodPost)

	pages.HandleFunc("/payment/{pnr}", h.PaymentPage).Methods(http.MethodGet, http.MethodOptions)
	pages.HandleFunc("/payment/{pnr}", h.SubmitPayment).Methods(http.MethodPost)

	pages.HandleFunc("/confirmation/{pnr}", h.Confirmation).Methods(http.MethodGet, http.MethodOptions)
	pages.HandleFunc("/confirmation/{pnr}/email", h.EmailTicket).Methods(http.MethodPost, http.MethodOptions)

	pages.HandleFunc("/bookings", h.ListBookings).Methods(http.MethodGet, http.MethodOptions)
	pages.HandleFunc("/bookings/{pnr}/cancel", h.CancelBooking).Methods(http.MethodPost, http.MethodOptions)
	pages.HandleFunc("/bookings/{pnr}/journey", h.Journey).Methods(http.MethodGet, http.MethodOptions)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	return r
}
