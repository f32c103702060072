// Package flightapi is a typed client for the FlightSim HTTP API.
package flightapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
)

const (
	DefaultListLimit = 20
	maxErrorBody     = 4096
)

// Client calls the FlightSim API. Every call is bound to the caller's
// context and is never retried.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient builds a client for baseURL. A nil httpClient gets a client
// without a timeout.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// ListFlights handles GET /flights?limit=N
func (c *Client) ListFlights(ctx context.Context, limit int) ([]models.Flight, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	var flights []models.Flight
	if err := c.do(ctx, http.MethodGet, "/flights", q, nil, &flights); err != nil {
		return nil, err
	}
	return nonNil(flights), nil
}

// SearchFlights handles GET /search. Empty criteria are omitted.
func (c *Client) SearchFlights(ctx context.Context, query models.SearchQuery) ([]models.Flight, error) {
	q := url.Values{}
	if query.Origin != "" {
		q.Set("origin", query.Origin)
	}
	if query.Destination != "" {
		q.Set("destination", query.Destination)
	}
	if !query.Date.IsZero() {
		q.Set("date", query.Date.UTC().Format(time.RFC3339))
	}
	var flights []models.Flight
	if err := c.do(ctx, http.MethodGet, "/search", q, nil, &flights); err != nil {
		return nil, err
	}
	return nonNil(flights), nil
}

func (c *Client) DynamicPrice(ctx context.Context, flightID int64) (*models.DynamicPrice, error) {
	var price models.DynamicPrice
	if err := c.do(ctx, http.MethodGet, "/dynamic_price/"+strconv.FormatInt(flightID, 10), nil, nil, &price); err != nil {
		return nil, err
	}
	return &price, nil
}

func (c *Client) InitiateBooking(ctx context.Context, req models.InitiateBookingRequest) (*models.InitiateBookingResponse, error) {
	var resp models.InitiateBookingResponse
	if err := c.do(ctx, http.MethodPost, "/booking/initiate", nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.PNR == "" {
		return nil, fmt.Errorf("%w: booking response without pnr", ErrDecode)
	}
	return &resp, nil
}

func (c *Client) Pay(ctx context.Context, pnr string, req models.PaymentRequest) (*models.PaymentResponse, error) {
	var resp models.PaymentResponse
	if err := c.do(ctx, http.MethodPost, "/booking/pay/"+url.PathEscape(pnr), nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetBooking(ctx context.Context, pnr string) (*models.BookingRecord, error) {
	var rec models.BookingRecord
	if err := c.do(ctx, http.MethodGet, "/booking/"+url.PathEscape(pnr), nil, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.BookingSummary, error) {
	q := url.Values{}
	if filter.PassengerPhone != "" {
		q.Set("passenger_phone", filter.PassengerPhone)
	}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.PaymentStatus != "" {
		q.Set("payment_status", string(filter.PaymentStatus))
	}
	var rows []models.BookingSummary
	if err := c.do(ctx, http.MethodGet, "/bookings", q, nil, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.BookingSummary{}
	}
	return rows, nil
}

func (c *Client) CancelBooking(ctx context.Context, pnr string) (*models.CancelResponse, error) {
	var resp models.CancelResponse
	if err := c.do(ctx, http.MethodPost, "/booking/cancel/"+url.PathEscape(pnr), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EmailTicket(ctx context.Context, pnr string) (*models.EmailTicketResponse, error) {
	var resp models.EmailTicketResponse
	if err := c.do(ctx, http.MethodPost, "/email_ticket/"+url.PathEscape(pnr), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) BookingsTrend(ctx context.Context) ([]models.TrendPoint, error) {
	var points []models.TrendPoint
	if err := c.do(ctx, http.MethodGet, "/dashboard/bookings_trend", nil, nil, &points); err != nil {
		return nil, err
	}
	if points == nil {
		points = []models.TrendPoint{}
	}
	return points, nil
}

func (c *Client) TopRoutes(ctx context.Context) ([]models.RouteStat, error) {
	var routes []models.RouteStat
	if err := c.do(ctx, http.MethodGet, "/dashboard/top_routes", nil, nil, &routes); err != nil {
		return nil, err
	}
	if routes == nil {
		routes = []models.RouteStat{}
	}
	return routes, nil
}

func (c *Client) AirlineStats(ctx context.Context) ([]models.AirlineStat, error) {
	var airlines []models.AirlineStat
	if err := c.do(ctx, http.MethodGet, "/dashboard/airline_stats", nil, nil, &airlines); err != nil {
		return nil, err
	}
	if airlines == nil {
		airlines = []models.AirlineStat{}
	}
	return airlines, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("flight api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("flight api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newStatusError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDecode, method, path, err)
	}
	return nil
}

func nonNil(flights []models.Flight) []models.Flight {
	if flights == nil {
		return []models.Flight{}
	}
	return flights
}
