package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
)

// BookingPage handles GET /api/booking/{flightId}
func (h *Handler) BookingPage(w http.ResponseWriter, r *http.Request) {
	flightID, ok := pathID(r, "flightId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid flight ID")
		return
	}

	draft, err := h.bookings.BookingPage(r.Context(), flightID, r.URL.Query().Get("handoff"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, draft)
}

// SubmitBooking handles POST /api/booking/{flightId}
func (h *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	flightID, ok := pathID(r, "flightId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid flight ID")
		return
	}

	var sub models.BookingSubmission
	if err := decodeJSON(r, &sub); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	receipt, err := h.bookings.SubmitBooking(r.Context(), flightID, sub)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusCreated, receipt)
}

// PaymentPage handles GET /api/payment/{pnr}
func (h *Handler) PaymentPage(w http.ResponseWriter, r *http.Request) {
	pnr := mux.Vars(r)["pnr"]
	q := r.URL.Query()

	view, err := h.bookings.PaymentPage(r.Context(), pnr, q.Get("handoff"), splitCSV(q.Get("addons")))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, view)
}

// SubmitPayment handles POST /api/payment/{pnr}
func (h *Handler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	pnr := mux.Vars(r)["pnr"]

	var sub models.PaymentSubmission
	if err := decodeJSON(r, &sub); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.bookings.SubmitPayment(r.Context(), pnr, sub)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	// A declined payment is a normal outcome, reported through Paid.
	h.respond(w, r, http.StatusOK, result)
}

// Confirmation handles GET /api/confirmation/{pnr}
func (h *Handler) Confirmation(w http.ResponseWriter, r *http.Request) {
	pnr := mux.Vars(r)["pnr"]

	view, err := h.bookings.Confirmation(r.Context(), pnr, r.URL.Query().Get("handoff"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, view)
}

// EmailTicket handles POST /api/confirmation/{pnr}/email
func (h *Handler) EmailTicket(w http.ResponseWriter, r *http.Request) {
	pnr := mux.Vars(r)["pnr"]

	result, err := h.bookings.EmailTicket(r.Context(), pnr)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusAccepted, result)
}

// ListBookings handles GET /api/bookings
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.BookingFilter{
		PassengerPhone: q.Get("passenger_phone"),
		Status:         models.BookingStatus(q.Get("status")),
		PaymentStatus:  models.PaymentStatus(q.Get("payment_status")),
	}

	bookings, err := h.bookings.ListBookings(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, bookings)
}

// CancelBooking handles POST /api/bookings/{pnr}/cancel
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	pnr := mux.Vars(r)["pnr"]

	result, err := h.bookings.CancelBooking(r.Context(), pnr)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, result)
}

// Journey handles GET /api/bookings/{pnr}/journey
func (h *Handler) Journey(w http.ResponseWriter, r *http.Request) {
	pnr := mux.Vars(r)["pnr"]

	snap, err := h.bookings.Journey(r.Context(), pnr)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, snap)
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
