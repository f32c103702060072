package models

import (
	"time"

	"github.com/cx-tal-miterani/flightsim-portal/internal/fare"
	"github.com/cx-tal-miterani/flightsim-portal/internal/seatmap"
)

// SearchRequest is the search page form. A non-zero ReturnDate makes it a
// round trip.
type SearchRequest struct {
	Origin      string
	Destination string
	Date        time.Time
	ReturnDate  time.Time
}

// SeatMapView is the seat page model. Seed must be echoed back on every
// seat action so the same booked subset is regenerated.
type SeatMapView struct {
	FlightID       int64            `json:"flight_id"`
	BasePrice      float64          `json:"base_price"`
	SeatsAvailable int              `json:"seats_available"`
	DemandIndex    float64          `json:"demand_index"`
	Seed           int64            `json:"seed,string"`
	Rows           [][]seatmap.Seat `json:"rows"`
	BookedSeats    []string         `json:"booked_seats"`
	Quote          fare.Quote       `json:"quote"`
	Bookable       bool             `json:"bookable"`
	Notice         string           `json:"notice,omitempty"`
}

// SeatAction is a class change, a seat toggle, or both.
type SeatAction struct {
	Seed           int64  `json:"seed,string"`
	CabinClass     string `json:"cabin_class"`
	SelectedSeat   string `json:"selected_seat"`
	Toggle         string `json:"toggle"`
	ReturnFlightID int64  `json:"return_flight_id"`
}

type SeatQuoteView struct {
	FlightID     int64           `json:"flight_id"`
	Seed         int64           `json:"seed,string"`
	SelectedSeat string          `json:"selected_seat,omitempty"`
	CabinClass   fare.CabinClass `json:"cabin_class"`
	Quote        fare.Quote      `json:"quote"`
	Bookable     bool            `json:"bookable"`
}

// SeatHandoffView is returned when the user continues to the booking page.
type SeatHandoffView struct {
	Handoff        string          `json:"handoff"`
	FlightID       int64           `json:"flight_id"`
	SelectedSeat   string          `json:"selected_seat"`
	CabinClass     fare.CabinClass `json:"cabin_class"`
	FinalPrice     float64         `json:"final_price"`
	ReturnFlightID int64           `json:"return_flight_id,omitempty"`
}

// BookingDraft is the booking page model before submission.
type BookingDraft struct {
	FlightID       int64           `json:"flight_id"`
	SelectedSeat   string          `json:"selected_seat,omitempty"`
	CabinClass     fare.CabinClass `json:"cabin_class"`
	FinalPrice     float64         `json:"final_price"`
	ReturnFlightID int64           `json:"return_flight_id,omitempty"`
	Carried        bool            `json:"carried"`
	Bookable       bool            `json:"bookable"`
	Notice         string          `json:"notice,omitempty"`
}

type BookingSubmission struct {
	PassengerName  string `json:"passenger_name"`
	PassengerPhone string `json:"passenger_phone"`
	Handoff        string `json:"handoff"`
}

type BookingReceipt struct {
	PNR           string        `json:"pnr"`
	Message       string        `json:"message,omitempty"`
	Price         float64       `json:"price"`
	QuotedFare    float64       `json:"quoted_fare"`
	SelectedSeat  string        `json:"selected_seat,omitempty"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Handoff       string        `json:"handoff"`
}

type PaymentView struct {
	PNR             string               `json:"pnr"`
	Carried         bool                 `json:"carried"`
	Breakdown       fare.Breakdown       `json:"breakdown"`
	AvailableAddOns []fare.AddOnLine     `json:"available_add_ons"`
	Methods         []fare.PaymentMethod `json:"methods"`
	DefaultMethod   fare.PaymentMethod   `json:"default_method"`
}

// PaymentSubmission simulates a payment. Success selects the outcome the
// upstream simulator should record.
type PaymentSubmission struct {
	Success bool     `json:"success"`
	AddOns  []string `json:"add_ons"`
	Method  string   `json:"method"`
	Handoff string   `json:"handoff"`
}

type PaymentResult struct {
	PNR           string             `json:"pnr"`
	Paid          bool               `json:"paid"`
	Status        BookingStatus      `json:"status,omitempty"`
	PaymentStatus PaymentStatus      `json:"payment_status,omitempty"`
	Method        fare.PaymentMethod `json:"method"`
	Amount        float64            `json:"amount"`
	Message       string             `json:"message"`
	Handoff       string             `json:"handoff,omitempty"`
}

type ConfirmationView struct {
	Booking     *BookingRecord `json:"booking"`
	TotalAmount float64        `json:"total_amount"`
	Carried     bool           `json:"carried"`
}

type EmailTicketResult struct {
	PNR     string `json:"pnr"`
	Queued  bool   `json:"queued"`
	Message string `json:"message"`
}

type CancelResult struct {
	PNR              string        `json:"pnr"`
	Status           BookingStatus `json:"status"`
	AlreadyCancelled bool          `json:"already_cancelled"`
	Message          string        `json:"message"`
}
