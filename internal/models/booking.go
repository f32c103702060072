package models

// BookingStatus mirrors the FlightSim booking status column
type BookingStatus string

const (
	BookingStatusInitiated BookingStatus = "INITIATED"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type Passenger struct {
	Name  string `json:"passenger_name"`
	Phone string `json:"passenger_phone"`
}

// InitiateBookingRequest is the body of POST /booking/initiate.
// SeatNo is the numeric row of the chosen seat, or null.
type InitiateBookingRequest struct {
	FlightID  int64     `json:"flight_id"`
	Passenger Passenger `json:"passenger"`
	SeatNo    *int      `json:"seat_no"`
}

type InitiateBookingResponse struct {
	Message       string        `json:"message"`
	PNR           string        `json:"pnr"`
	Price         float64       `json:"price"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

type PaymentRequest struct {
	Success bool    `json:"success"`
	Amount  float64 `json:"amount"`
}

type PaymentResponse struct {
	Message       string        `json:"message"`
	PNR           string        `json:"pnr"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

// BookingRecord is the detailed booking returned by GET /booking/{pnr}
type BookingRecord struct {
	PNR            string        `json:"pnr"`
	FlightNo       string        `json:"flight_no"`
	PassengerName  string        `json:"passenger_name"`
	PassengerPhone string        `json:"passenger_phone,omitempty"`
	PricePaid      float64       `json:"price_paid"`
	Status         BookingStatus `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	Departure      Timestamp     `json:"departure"`
	Arrival        Timestamp     `json:"arrival"`
	Origin         string        `json:"origin"`
	Destination    string        `json:"destination"`
}

// BookingSummary is one row of GET /bookings
type BookingSummary struct {
	PNR           string        `json:"pnr"`
	FlightNo      string        `json:"flight_no"`
	PassengerName string        `json:"passenger_name"`
	PricePaid     float64       `json:"price_paid"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	Departure     Timestamp     `json:"departure"`
}

type BookingFilter struct {
	PassengerPhone string
	Status         BookingStatus
	PaymentStatus  PaymentStatus
}

type CancelResponse struct {
	Message       string        `json:"message"`
	PNR           string        `json:"pnr"`
	Status        BookingStatus `json:"status,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
}

type EmailTicketResponse struct {
	Message string `json:"message"`
}
