package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cx-tal-miterani/flightsim-portal/internal/fare"
	"github.com/cx-tal-miterani/flightsim-portal/internal/handoff"
	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
	"github.com/cx-tal-miterani/flightsim-portal/internal/seatmap"
)

// FlightService backs the listing, search and seat pages
type FlightService interface {
	ListFlights(ctx context.Context, limit int) ([]models.Flight, error)
	SearchFlights(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error)
	SeatMap(ctx context.Context, flightID int64) (*models.SeatMapView, error)
	QuoteSeat(ctx context.Context, flightID int64, action models.SeatAction) (*models.SeatQuoteView, error)
	ContinueToBooking(ctx context.Context, flightID int64, action models.SeatAction) (*models.SeatHandoffView, error)
}

type FlightOption func(*flightServiceImpl)

func WithSeatLayout(layout seatmap.Layout) FlightOption {
	return func(s *flightServiceImpl) { s.layout = layout }
}

// WithSeedSource replaces the seed picked for each new seat map.
func WithSeedSource(newSeed func() int64) FlightOption {
	return func(s *flightServiceImpl) { s.newSeed = newSeed }
}

// flightServiceImpl implements FlightService
type flightServiceImpl struct {
	api     FlightAPI
	carrier *handoff.Carrier
	logger  *zap.Logger
	layout  seatmap.Layout
	newSeed func() int64
}

// NewFlightService creates a new FlightService
func NewFlightService(api FlightAPI, carrier *handoff.Carrier, logger *zap.Logger, opts ...FlightOption) FlightService {
	s := &flightServiceImpl{
		api:     api,
		carrier: carrier,
		logger:  logger,
		layout:  seatmap.DefaultLayout(),
		newSeed: seatmap.NewSeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *flightServiceImpl) ListFlights(ctx context.Context, limit int) ([]models.Flight, error) {
	if limit < 0 {
		return nil, invalid("limit", "limit must not be negative")
	}
	return s.api.ListFlights(ctx, limit)
}

// SearchFlights runs the outbound search and, for round trips, the return
// search in parallel. Either failure fails the search.
func (s *flightServiceImpl) SearchFlights(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	outbound := models.SearchQuery{
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
		Date:        req.Date,
	}
	if outbound.IsEmpty() {
		return nil, invalid("query", "Enter an origin, a destination or a date to search")
	}

	if req.ReturnDate.IsZero() {
		flights, err := s.api.SearchFlights(ctx, outbound)
		if err != nil {
			return nil, err
		}
		return &models.SearchResult{TripType: models.TripOneWay, Outbound: flights}, nil
	}

	if outbound.Origin == "" || outbound.Destination == "" {
		return nil, invalid("return_date", "A round trip needs both an origin and a destination")
	}
	if !outbound.Date.IsZero() && req.ReturnDate.Before(outbound.Date) {
		return nil, invalid("return_date", "Return date must not be before the departure date")
	}
	inbound := models.SearchQuery{
		Origin:      outbound.Destination,
		Destination: outbound.Origin,
		Date:        req.ReturnDate,
	}

	result := &models.SearchResult{TripType: models.TripRoundTrip}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		flights, err := s.api.SearchFlights(gctx, outbound)
		if err != nil {
			return fmt.Errorf("outbound search: %w", err)
		}
		result.Outbound = flights
		return nil
	})
	g.Go(func() error {
		flights, err := s.api.SearchFlights(gctx, inbound)
		if err != nil {
			return fmt.Errorf("return search: %w", err)
		}
		result.Return = flights
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// SeatMap loads the base price and draws a fresh seat map for a new page
// load. The returned seed identifies the drawn map.
func (s *flightServiceImpl) SeatMap(ctx context.Context, flightID int64) (*models.SeatMapView, error) {
	if flightID <= 0 {
		return nil, invalid("flight_id", "Invalid flight")
	}

	price, err := s.api.DynamicPrice(ctx, flightID)
	if err != nil {
		return nil, err
	}

	seed := s.newSeed()
	m := seatmap.GenerateSeeded(s.layout, seed)
	quote := seatmap.NewSelection(m, price.DynamicPrice).Quote()

	view := &models.SeatMapView{
		FlightID:       flightID,
		BasePrice:      price.DynamicPrice,
		SeatsAvailable: price.SeatsAvailable,
		DemandIndex:    price.DemandIndex,
		Seed:           seed,
		Rows:           m.Rows,
		BookedSeats:    m.BookedSeats(),
		Quote:          quote,
		Bookable:       quote.Bookable(),
	}
	if !view.Bookable {
		view.Notice = ErrBasePriceUnavailable.Error()
	}
	return view, nil
}

// QuoteSeat applies a class change and an optional seat toggle to the map
// identified by action.Seed and prices the result.
func (s *flightServiceImpl) QuoteSeat(ctx context.Context, flightID int64, action models.SeatAction) (*models.SeatQuoteView, error) {
	sel, err := s.selection(ctx, flightID, action)
	if err != nil {
		return nil, err
	}
	if action.Toggle != "" {
		if err := sel.Toggle(action.Toggle); err != nil {
			return nil, err
		}
	}

	quote := sel.Quote()
	return &models.SeatQuoteView{
		FlightID:     flightID,
		Seed:         action.Seed,
		SelectedSeat: quote.Seat,
		CabinClass:   quote.CabinClass,
		Quote:        quote,
		Bookable:     quote.Bookable() && quote.Seat != "",
	}, nil
}

// ContinueToBooking prices the chosen seat and issues the booking handoff.
func (s *flightServiceImpl) ContinueToBooking(ctx context.Context, flightID int64, action models.SeatAction) (*models.SeatHandoffView, error) {
	if strings.TrimSpace(action.SelectedSeat) == "" {
		return nil, invalid("selected_seat", "Select a seat to continue")
	}

	sel, err := s.selection(ctx, flightID, action)
	if err != nil {
		return nil, err
	}
	quote := sel.Quote()
	if !quote.Bookable() {
		return nil, ErrBasePriceUnavailable
	}

	carried := handoff.Seat{
		FlightID:       flightID,
		SelectedSeat:   quote.Seat,
		CabinClass:     quote.CabinClass,
		FinalPrice:     quote.FinalPrice,
		ReturnFlightID: action.ReturnFlightID,
	}
	token, err := s.carrier.IssueSeat(carried)
	if err != nil {
		return nil, fmt.Errorf("failed to issue booking handoff: %w", err)
	}

	s.logger.Debug("seat selected",
		zap.Int64("flight_id", flightID),
		zap.String("seat", quote.Seat),
		zap.String("class", string(quote.CabinClass)),
		zap.Float64("fare", quote.FinalPrice),
	)

	return &models.SeatHandoffView{
		Handoff:        token,
		FlightID:       flightID,
		SelectedSeat:   quote.Seat,
		CabinClass:     quote.CabinClass,
		FinalPrice:     quote.FinalPrice,
		ReturnFlightID: action.ReturnFlightID,
	}, nil
}

// selection rebuilds the page state from the request: fresh base price,
// the seeded map, the class and the previously selected seat.
func (s *flightServiceImpl) selection(ctx context.Context, flightID int64, action models.SeatAction) (*seatmap.Selection, error) {
	if flightID <= 0 {
		return nil, invalid("flight_id", "Invalid flight")
	}
	if action.Seed == 0 {
		return nil, invalid("seed", "Seat map seed is required, reload the seat map")
	}
	class, err := fare.ParseCabinClass(action.CabinClass)
	if err != nil {
		return nil, invalid("cabin_class", err.Error())
	}

	price, err := s.api.DynamicPrice(ctx, flightID)
	if err != nil {
		return nil, err
	}

	sel := seatmap.NewSelection(seatmap.GenerateSeeded(s.layout, action.Seed), price.DynamicPrice)
	sel.SetClass(class)
	if err := sel.Select(strings.TrimSpace(action.SelectedSeat)); err != nil {
		if errors.Is(err, seatmap.ErrSeatBooked) {
			return nil, err
		}
		return nil, invalid("selected_seat", err.Error())
	}
	return sel, nil
}
