package models

import "time"

// Flight represents a flight as listed by the FlightSim API
type Flight struct {
	ID             int64     `json:"id"`
	FlightNo       string    `json:"flight_no"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Departure      Timestamp `json:"departure"`
	Arrival        Timestamp `json:"arrival"`
	BaseFare       float64   `json:"base_fare"`
	SeatsAvailable int       `json:"seats_available"`
	TotalSeats     int       `json:"total_seats"`
	AirlineName    string    `json:"airline_name,omitempty"`
}

// DynamicPrice is the server-computed price for a flight before cabin and
// seat adjustments.
type DynamicPrice struct {
	FlightID       int64   `json:"flight_id"`
	DynamicPrice   float64 `json:"dynamic_price"`
	BaseFare       float64 `json:"base_fare"`
	SeatsAvailable int     `json:"seats_available"`
	DemandIndex    float64 `json:"demand_index"`
}

// SearchQuery filters the upstream /search endpoint. Empty fields are omitted.
type SearchQuery struct {
	Origin      string
	Destination string
	Date        time.Time
}

func (q SearchQuery) IsEmpty() bool {
	return q.Origin == "" && q.Destination == "" && q.Date.IsZero()
}

type TripType string

const (
	TripOneWay    TripType = "oneway"
	TripRoundTrip TripType = "roundtrip"
)

// SearchResult is the search page model. Return is only populated for
// round trips.
type SearchResult struct {
	TripType TripType `json:"trip_type"`
	Outbound []Flight `json:"outbound"`
	Return   []Flight `json:"return,omitempty"`
}
