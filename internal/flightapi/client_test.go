package flightapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", srv.Client(), nil)
}

func TestListFlights_DefaultLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flights", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"id":1,"flight_no":"AI101","origin":"DEL","destination":"BOM",
			"departure":"2025-03-01T08:30:00","arrival":"2025-03-01T10:45:00",
			"base_fare":4500.5,"seats_available":12,"total_seats":180,"airline_name":null}]`))
	})

	flights, err := c.ListFlights(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "AI101", flights[0].FlightNo)
	assert.Equal(t, 8, flights[0].Departure.Hour())
	assert.Equal(t, 4500.5, flights[0].BaseFare)
}

func TestSearchFlights_OmitsEmptyCriteria(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "DEL", q.Get("origin"))
		assert.False(t, q.Has("destination"))
		assert.Equal(t, "2025-03-01T00:00:00Z", q.Get("date"))
		w.Write([]byte(`null`))
	})

	flights, err := c.SearchFlights(context.Background(), models.SearchQuery{
		Origin: "DEL",
		Date:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotNil(t, flights)
	assert.Empty(t, flights)
}

func TestInitiateBooking_NestedPassenger(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/booking/initiate", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, float64(7), body["flight_id"])
		assert.Equal(t, float64(12), body["seat_no"])
		passenger := body["passenger"].(map[string]any)
		assert.Equal(t, "Asha Rao", passenger["passenger_name"])
		w.Write([]byte(`{"message":"Booking initiated","pnr":"AB12CD","price":5120.4,"status":"INITIATED","payment_status":"PENDING"}`))
	})

	seat := 12
	resp, err := c.InitiateBooking(context.Background(), models.InitiateBookingRequest{
		FlightID:  7,
		Passenger: models.Passenger{Name: "Asha Rao", Phone: "9999999999"},
		SeatNo:    &seat,
	})
	require.NoError(t, err)
	assert.Equal(t, "AB12CD", resp.PNR)
	assert.Equal(t, models.BookingStatusInitiated, resp.Status)
}

func TestStatusErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		notFound   bool
		wantDetail string
	}{
		{"fastapi detail", http.StatusNotFound, `{"detail":"Booking not found"}`, true, "Booking not found"},
		{"plain body", http.StatusBadGateway, "upstream down", false, "upstream down"},
		{"validation list", http.StatusUnprocessableEntity,
			`{"detail":[{"loc":["body","passenger","passenger_name"],"msg":"too short"}]}`, false, "passenger_name: too short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.GetBooking(context.Background(), "AB12CD")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUpstream)
			assert.Equal(t, tt.notFound, errors.Is(err, ErrNotFound))

			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.StatusCode)
			assert.Equal(t, tt.wantDetail, se.Detail)
			assert.Equal(t, tt.wantDetail, UserMessage(err))
		})
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, nil, nil)
	_, err := c.DashboardStats(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrUpstream)
}

func TestCancelledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.BookingsTrend(ctx)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})
	_, err := c.DynamicPrice(context.Background(), 3)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestListBookings_Filters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "9999999999", q.Get("passenger_phone"))
		assert.Equal(t, "CANCELLED", q.Get("status"))
		assert.False(t, q.Has("payment_status"))
		w.Write([]byte(`[{"pnr":"AB12CD","flight_no":"AI101","passenger_name":"Asha","price_paid":5120.4,
			"status":"CANCELLED","payment_status":"PAID","origin":"DEL","destination":"BOM","departure":"2025-03-01T08:30:00"}]`))
	})

	rows, err := c.ListBookings(context.Background(), models.BookingFilter{
		PassengerPhone: "9999999999",
		Status:         models.BookingStatusCancelled,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 5120.4, rows[0].PricePaid)
}
