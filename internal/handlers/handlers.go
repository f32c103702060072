package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/cx-tal-miterani/flightsim-portal/internal/flightapi"
	"github.com/cx-tal-miterani/flightsim-portal/internal/identity"
	"github.com/cx-tal-miterani/flightsim-portal/internal/seatmap"
	"github.com/cx-tal-miterani/flightsim-portal/internal/service"
	"github.com/cx-tal-miterani/flightsim-portal/internal/session"
	"github.com/cx-tal-miterani/flightsim-portal/internal/websocket"
)

// LiveFeed upgrades a request into a websocket subscription
type LiveFeed interface {
	ServeWS(w http.ResponseWriter, r *http.Request, topic string, initial *websocket.Message)
}

// Handler contains HTTP handlers for the portal pages
type Handler struct {
	flights       service.FlightService
	bookings      service.BookingService
	dashboard     service.DashboardService
	auth          service.AuthService
	feed          LiveFeed
	logger        *zap.Logger
	secureCookies bool
}

// NewHandler creates a new Handler instance
func NewHandler(
	flights service.FlightService,
	bookings service.BookingService,
	dashboard service.DashboardService,
	auth service.AuthService,
	feed LiveFeed,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		flights:   flights,
		bookings:  bookings,
		dashboard: dashboard,
		auth:      auth,
		feed:      feed,
		logger:    logger,
	}
}

// WithSecureCookies marks the session cookie Secure.
func (h *Handler) WithSecureCookies(secure bool) *Handler {
	h.secureCookies = secure
	return h
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respond writes data unless the client already went away, in which case
// the late result is dropped.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if r.Context().Err() != nil {
		h.logger.Debug("dropping response for cancelled request", zap.String("path", r.URL.Path))
		return
	}
	respondJSON(w, status, data)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if r.Context().Err() != nil {
		h.logger.Debug("dropping error for cancelled request", zap.String("path", r.URL.Path), zap.Error(err))
		return
	}

	status, message := errorStatus(err)
	switch {
	case status >= http.StatusInternalServerError:
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Int("status", status), zap.Error(err))
	case status != http.StatusNotFound:
		h.logger.Debug("request rejected", zap.String("path", r.URL.Path), zap.Int("status", status), zap.Error(err))
	}
	respondError(w, status, message)
}

func errorStatus(err error) (int, string) {
	var validation *service.ValidationError
	var upstream *flightapi.StatusError

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Message
	case errors.Is(err, seatmap.ErrInvalidSeatID), errors.Is(err, seatmap.ErrUnknownSeat):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, seatmap.ErrSeatBooked):
		return http.StatusConflict, "That seat is already booked"
	case errors.Is(err, service.ErrBasePriceUnavailable):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, service.ErrBookingCancelled):
		return http.StatusConflict, "This booking has been cancelled"
	case errors.Is(err, service.ErrJourneyNotFound):
		return http.StatusNotFound, "No journey is tracked for this booking"
	case errors.Is(err, identity.ErrInvalidSignUp):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, identity.ErrInvalidCredentials), errors.Is(err, identity.ErrInvalidToken):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, identity.ErrEmailTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, identity.ErrProviderUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, session.ErrNotFound):
		return http.StatusUnauthorized, "Not signed in"
	case errors.As(err, &upstream):
		if upstream.StatusCode >= 400 && upstream.StatusCode < 500 {
			return upstream.StatusCode, upstream.Message()
		}
		return http.StatusBadGateway, flightapi.UserMessage(err)
	case errors.Is(err, flightapi.ErrTransport), errors.Is(err, flightapi.ErrDecode):
		return http.StatusBadGateway, flightapi.UserMessage(err)
	}
	return http.StatusInternalServerError, "Internal server error"
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
