package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cx-tal-miterani/flightsim-portal/internal/flightapi"
	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
)

const dateLayout = "2006-01-02"

// ListFlights handles GET /api/flights
func (h *Handler) ListFlights(w http.ResponseWriter, r *http.Request) {
	limit := flightapi.DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive number")
			return
		}
		limit = n
	}

	flights, err := h.flights.ListFlights(r.Context(), limit)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, flights)
}

// SearchFlights handles GET /api/flights/search
func (h *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := models.SearchRequest{
		Origin:      q.Get("origin"),
		Destination: q.Get("destination"),
	}

	var err error
	if req.Date, err = parseDate(q.Get("date")); err != nil {
		respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	if req.ReturnDate, err = parseDate(q.Get("return_date")); err != nil {
		respondError(w, http.StatusBadRequest, "return_date must be YYYY-MM-DD")
		return
	}

	result, err := h.flights.SearchFlights(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, result)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, raw)
}

// SeatMap handles GET /api/flights/{id}/seatmap
func (h *Handler) SeatMap(w http.ResponseWriter, r *http.Request) {
	flightID, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid flight ID")
		return
	}

	view, err := h.flights.SeatMap(r.Context(), flightID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, view)
}

// QuoteSeat handles POST /api/flights/{id}/seatmap/quote
func (h *Handler) QuoteSeat(w http.ResponseWriter, r *http.Request) {
	flightID, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid flight ID")
		return
	}

	var action models.SeatAction
	if err := decodeJSON(r, &action); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quote, err := h.flights.QuoteSeat(r.Context(), flightID, action)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, quote)
}

// ContinueToBooking handles POST /api/flights/{id}/seatmap/continue
func (h *Handler) ContinueToBooking(w http.ResponseWriter, r *http.Request) {
	flightID, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid flight ID")
		return
	}

	var action models.SeatAction
	if err := decodeJSON(r, &action); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.flights.ContinueToBooking(r.Context(), flightID, action)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, out)
}
