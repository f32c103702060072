package models

import "time"

// JourneyState is the client-side view of one booking's
// booking -> payment -> confirmation chain.
type JourneyState string

const (
	JourneyDraft         JourneyState = "DRAFT"
	JourneyInitiated     JourneyState = "INITIATED"
	JourneyPaid          JourneyState = "PAID"
	JourneyFailedPayment JourneyState = "FAILED_PAYMENT"
	JourneyConfirmed     JourneyState = "CONFIRMED"
	JourneyCancelled     JourneyState = "CANCELLED"
)

func (s JourneyState) Terminal() bool {
	return s == JourneyConfirmed || s == JourneyCancelled
}

// JourneyEventType names an upstream outcome that may move a journey
type JourneyEventType string

const (
	EventInitiated      JourneyEventType = "initiated"
	EventPaymentSettled JourneyEventType = "payment_settled"
	EventPaymentFailed  JourneyEventType = "payment_failed"
	EventConfirmed      JourneyEventType = "confirmed"
	EventCancelled      JourneyEventType = "cancelled"
)

// JourneyEvent is sent to the journey workflow after an upstream call returns
type JourneyEvent struct {
	Type          JourneyEventType `json:"type"`
	BookingStatus BookingStatus    `json:"bookingStatus,omitempty"`
	PaymentStatus PaymentStatus    `json:"paymentStatus,omitempty"`
	Amount        float64          `json:"amount,omitempty"`
}

// JourneyWorkflowInput starts tracking a PNR right after /booking/initiate
// returned it.
type JourneyWorkflowInput struct {
	PNR          string  `json:"pnr"`
	FlightID     int64   `json:"flightId"`
	SeatID       string  `json:"seatId,omitempty"`
	CabinClass   string  `json:"cabinClass"`
	QuotedFare   float64 `json:"quotedFare"`
	UpstreamFare float64 `json:"upstreamFare"`
}

type JourneyTransition struct {
	From  JourneyState     `json:"from"`
	To    JourneyState     `json:"to"`
	Event JourneyEventType `json:"event"`
	At    time.Time        `json:"at"`
}

// JourneySnapshot is returned by the journey state query
type JourneySnapshot struct {
	PNR             string              `json:"pnr"`
	FlightID        int64               `json:"flightId"`
	SeatID          string              `json:"seatId,omitempty"`
	CabinClass      string              `json:"cabinClass"`
	QuotedFare      float64             `json:"quotedFare"`
	State           JourneyState        `json:"state"`
	PaymentAttempts int                 `json:"paymentAttempts"`
	AmountPaid      float64             `json:"amountPaid,omitempty"`
	TicketsEmailed  int                 `json:"ticketsEmailed"`
	LastError       string              `json:"lastError,omitempty"`
	History         []JourneyTransition `json:"history"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// Signals for workflow communication
const (
	SignalJourneyEvent = "journey_event"
	SignalEmailTicket  = "email_ticket"
)

// Queries for workflow state
const (
	QueryJourneyState = "journey_state"
)

type JourneyResult struct {
	PNR        string       `json:"pnr"`
	FinalState JourneyState `json:"finalState"`
}

const (
	JourneyTaskQueue    = "flightsim-journey-queue"
	JourneyWorkflowName = "JourneyWorkflow"
)

// JourneyWorkflowID is the workflow id that tracks pnr.
func JourneyWorkflowID(pnr string) string {
	return "journey-" + pnr
}
