package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cx-tal-miterani/flightsim-portal/internal/fare"
	"github.com/cx-tal-miterani/flightsim-portal/internal/flightapi"
	"github.com/cx-tal-miterani/flightsim-portal/internal/handoff"
	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
	"github.com/cx-tal-miterani/flightsim-portal/internal/seatmap"
)

// BookingService backs the booking, payment, confirmation and bookings pages
type BookingService interface {
	BookingPage(ctx context.Context, flightID int64, token string) (*models.BookingDraft, error)
	SubmitBooking(ctx context.Context, flightID int64, sub models.BookingSubmission) (*models.BookingReceipt, error)
	PaymentPage(ctx context.Context, pnr, token string, addOns []string) (*models.PaymentView, error)
	SubmitPayment(ctx context.Context, pnr string, sub models.PaymentSubmission) (*models.PaymentResult, error)
	Confirmation(ctx context.Context, pnr, token string) (*models.ConfirmationView, error)
	EmailTicket(ctx context.Context, pnr string) (*models.EmailTicketResult, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.BookingSummary, error)
	CancelBooking(ctx context.Context, pnr string) (*models.CancelResult, error)
	Journey(ctx context.Context, pnr string) (*models.JourneySnapshot, error)
}

// bookingServiceImpl implements BookingService
type bookingServiceImpl struct {
	api     FlightAPI
	carrier *handoff.Carrier
	tracker JourneyTracker
	logger  *zap.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(api FlightAPI, carrier *handoff.Carrier, tracker JourneyTracker, logger *zap.Logger) BookingService {
	return &bookingServiceImpl{
		api:     api,
		carrier: carrier,
		tracker: tracker,
		logger:  logger,
	}
}

// BookingPage resolves the draft from the seat handoff. Missing or invalid
// carried state falls back to no seat, economy and a fresh base fare.
func (s *bookingServiceImpl) BookingPage(ctx context.Context, flightID int64, token string) (*models.BookingDraft, error) {
	if flightID <= 0 {
		return nil, invalid("flight_id", "Invalid flight")
	}
	return s.draft(ctx, flightID, token), nil
}

func (s *bookingServiceImpl) draft(ctx context.Context, flightID int64, token string) *models.BookingDraft {
	carried, err := s.carrier.Seat(token, flightID)
	if err == nil {
		d := &models.BookingDraft{
			FlightID:       flightID,
			SelectedSeat:   carried.SelectedSeat,
			CabinClass:     carried.CabinClass,
			FinalPrice:     carried.FinalPrice,
			ReturnFlightID: carried.ReturnFlightID,
			Carried:        true,
			Bookable:       carried.FinalPrice > 0,
		}
		if !d.Bookable {
			d.Notice = ErrBasePriceUnavailable.Error()
		}
		return d
	}
	if !errors.Is(err, handoff.ErrMissing) {
		s.logger.Warn("discarding carried seat state", zap.Int64("flight_id", flightID), zap.Error(err))
	}

	d := &models.BookingDraft{FlightID: flightID, CabinClass: fare.Economy}
	price, err := s.api.DynamicPrice(ctx, flightID)
	if err != nil {
		s.logger.Warn("base fare unavailable for booking draft", zap.Int64("flight_id", flightID), zap.Error(err))
		d.Notice = flightapi.UserMessage(err)
		return d
	}
	d.FinalPrice = fare.Calculate(price.DynamicPrice, fare.Economy, fare.PositionOther)
	d.Bookable = d.FinalPrice > 0
	if !d.Bookable {
		d.Notice = ErrBasePriceUnavailable.Error()
	}
	return d
}

// SubmitBooking validates the passenger, initiates the booking upstream and
// starts tracking the returned PNR.
func (s *bookingServiceImpl) SubmitBooking(ctx context.Context, flightID int64, sub models.BookingSubmission) (*models.BookingReceipt, error) {
	if flightID <= 0 {
		return nil, invalid("flight_id", "Invalid flight")
	}
	name := strings.TrimSpace(sub.PassengerName)
	if name == "" {
		return nil, invalid("passenger_name", "Passenger name is required")
	}
	// a seat selection that was carried but no longer verifies is never
	// swapped for defaults at submit time
	if strings.TrimSpace(sub.Handoff) != "" {
		if _, err := s.carrier.Seat(sub.Handoff, flightID); err != nil {
			s.logger.Info("rejecting stale seat handoff", zap.Int64("flight_id", flightID), zap.Error(err))
			return nil, invalid("handoff", "Your seat selection has expired. Please select your seat again.")
		}
	}

	d := s.draft(ctx, flightID, sub.Handoff)
	if !d.Bookable {
		return nil, ErrBasePriceUnavailable
	}

	req := models.InitiateBookingRequest{
		FlightID: flightID,
		Passenger: models.Passenger{
			Name:  name,
			Phone: strings.TrimSpace(sub.PassengerPhone),
		},
	}
	if row, ok := seatmap.SeatRow(d.SelectedSeat); ok {
		req.SeatNo = &row
	}

	resp, err := s.api.InitiateBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.tracker.Start(ctx, models.JourneyWorkflowInput{
		PNR:          resp.PNR,
		FlightID:     flightID,
		SeatID:       d.SelectedSeat,
		CabinClass:   string(d.CabinClass),
		QuotedFare:   d.FinalPrice,
		UpstreamFare: resp.Price,
	}); err != nil {
		s.logger.Warn("failed to start journey tracking", zap.String("pnr", resp.PNR), zap.Error(err))
	}

	token, err := s.carrier.IssuePayment(handoff.Payment{PNR: resp.PNR, TotalPrice: d.FinalPrice})
	if err != nil {
		return nil, fmt.Errorf("failed to issue payment handoff: %w", err)
	}

	s.logger.Info("booking initiated",
		zap.String("pnr", resp.PNR),
		zap.Int64("flight_id", flightID),
		zap.Float64("quoted_fare", d.FinalPrice),
		zap.Float64("upstream_price", resp.Price),
	)

	return &models.BookingReceipt{
		PNR:           resp.PNR,
		Message:       resp.Message,
		Price:         resp.Price,
		QuotedFare:    d.FinalPrice,
		SelectedSeat:  d.SelectedSeat,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		Handoff:       token,
	}, nil
}

// PaymentPage builds the fare breakdown from the carried booking total. A
// missing total is treated as a zero base fare.
func (s *bookingServiceImpl) PaymentPage(ctx context.Context, pnr, token string, addOnNames []string) (*models.PaymentView, error) {
	pnr = strings.TrimSpace(pnr)
	if pnr == "" {
		return nil, invalid("pnr", "PNR is required")
	}
	addOns, err := fare.ParseAddOns(addOnNames)
	if err != nil {
		return nil, invalid("add_ons", err.Error())
	}

	base, carried := s.carriedTotal(pnr, token)
	return &models.PaymentView{
		PNR:             pnr,
		Carried:         carried,
		Breakdown:       fare.NewBreakdown(base, addOns),
		AvailableAddOns: fare.AddOnCatalog(),
		Methods:         fare.PaymentMethods(),
		DefaultMethod:   fare.MethodUPI,
	}, nil
}

func (s *bookingServiceImpl) carriedTotal(pnr, token string) (float64, bool) {
	p, err := s.carrier.Payment(token, pnr)
	if err != nil {
		if !errors.Is(err, handoff.ErrMissing) {
			s.logger.Warn("discarding carried payment state", zap.String("pnr", pnr), zap.Error(err))
		}
		return 0, false
	}
	return p.TotalPrice, true
}

// SubmitPayment sends the simulated payment outcome upstream. A declined
// payment is reported in the result, not as an error, and may be retried.
func (s *bookingServiceImpl) SubmitPayment(ctx context.Context, pnr string, sub models.PaymentSubmission) (*models.PaymentResult, error) {
	pnr = strings.TrimSpace(pnr)
	if pnr == "" {
		return nil, invalid("pnr", "PNR is required")
	}
	method, err := fare.ParsePaymentMethod(sub.Method)
	if err != nil {
		return nil, invalid("method", err.Error())
	}
	addOns, err := fare.ParseAddOns(sub.AddOns)
	if err != nil {
		return nil, invalid("add_ons", err.Error())
	}
	if strings.TrimSpace(sub.Handoff) != "" {
		if _, err := s.carrier.Payment(sub.Handoff, pnr); err != nil {
			s.logger.Info("rejecting stale payment handoff", zap.String("pnr", pnr), zap.Error(err))
			return nil, invalid("handoff", "Your booking total has expired. Please reload the payment page.")
		}
	}

	base, _ := s.carriedTotal(pnr, sub.Handoff)
	breakdown := fare.NewBreakdown(base, addOns)

	resp, err := s.api.Pay(ctx, pnr, models.PaymentRequest{Success: sub.Success, Amount: breakdown.Total})
	if err != nil {
		return nil, err
	}

	paid := resp.PaymentStatus == models.PaymentStatusPaid ||
		(resp.PaymentStatus == "" && resp.Status == models.BookingStatusConfirmed)

	event := models.JourneyEvent{
		Type:          models.EventPaymentFailed,
		BookingStatus: resp.Status,
		PaymentStatus: resp.PaymentStatus,
		Amount:        breakdown.Total,
	}
	if paid {
		event.Type = models.EventPaymentSettled
		event.PaymentStatus = models.PaymentStatusPaid
	}
	s.record(ctx, pnr, event)

	result := &models.PaymentResult{
		PNR:           pnr,
		Paid:          paid,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		Method:        method,
		Amount:        breakdown.Total,
	}
	if !paid {
		result.Message = "Payment failed. You can retry the payment."
		s.logger.Info("payment declined", zap.String("pnr", pnr), zap.String("method", string(method)))
		return result, nil
	}

	token, err := s.carrier.IssueConfirmation(handoff.Confirmation{PNR: pnr, TotalAmount: breakdown.Total})
	if err != nil {
		return nil, fmt.Errorf("failed to issue confirmation handoff: %w", err)
	}
	result.Message = "Payment successful"
	result.Handoff = token
	s.logger.Info("payment settled",
		zap.String("pnr", pnr),
		zap.String("method", string(method)),
		zap.Float64("amount", breakdown.Total),
	)
	return result, nil
}

// Confirmation loads the booking record. The displayed total is the carried
// payment total, or the recorded price when nothing was carried.
func (s *bookingServiceImpl) Confirmation(ctx context.Context, pnr, token string) (*models.ConfirmationView, error) {
	pnr = strings.TrimSpace(pnr)
	if pnr == "" {
		return nil, invalid("pnr", "PNR is required")
	}

	rec, err := s.api.GetBooking(ctx, pnr)
	if err != nil {
		return nil, err
	}
	s.syncFromRecord(ctx, rec)

	view := &models.ConfirmationView{Booking: rec, TotalAmount: rec.PricePaid}
	cf, err := s.carrier.Confirmation(token, pnr)
	switch {
	case err == nil:
		view.TotalAmount = cf.TotalAmount
		view.Carried = true
	case !errors.Is(err, handoff.ErrMissing):
		s.logger.Warn("discarding carried confirmation state", zap.String("pnr", pnr), zap.Error(err))
	}
	return view, nil
}

// EmailTicket queues the e-ticket on the journey workflow. Untracked PNRs
// are emailed directly; cancelled journeys get no ticket.
func (s *bookingServiceImpl) EmailTicket(ctx context.Context, pnr string) (*models.EmailTicketResult, error) {
	pnr = strings.TrimSpace(pnr)
	if pnr == "" {
		return nil, invalid("pnr", "PNR is required")
	}

	err := s.tracker.RequestTicketEmail(ctx, pnr)
	if err == nil {
		return &models.EmailTicketResult{PNR: pnr, Queued: true, Message: "Your e-ticket will be emailed shortly"}, nil
	}
	if !errors.Is(err, ErrJourneyNotFound) {
		s.logger.Warn("failed to queue ticket email, sending directly", zap.String("pnr", pnr), zap.Error(err))
	}
	// a finished journey no longer takes signals but still answers queries
	if snap, serr := s.tracker.State(ctx, pnr); serr == nil && snap.State == models.JourneyCancelled {
		return nil, ErrBookingCancelled
	}

	resp, err := s.api.EmailTicket(ctx, pnr)
	if err != nil {
		return nil, err
	}
	msg := resp.Message
	if msg == "" {
		msg = "E-ticket sent"
	}
	return &models.EmailTicketResult{PNR: pnr, Message: msg}, nil
}

func (s *bookingServiceImpl) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.BookingSummary, error) {
	filter.PassengerPhone = strings.TrimSpace(filter.PassengerPhone)
	filter.Status = models.BookingStatus(strings.ToUpper(strings.TrimSpace(string(filter.Status))))
	filter.PaymentStatus = models.PaymentStatus(strings.ToUpper(strings.TrimSpace(string(filter.PaymentStatus))))

	switch filter.Status {
	case "", models.BookingStatusInitiated, models.BookingStatusConfirmed, models.BookingStatusCancelled:
	default:
		return nil, invalid("status", fmt.Sprintf("Unknown booking status %q", filter.Status))
	}
	switch filter.PaymentStatus {
	case "", models.PaymentStatusPending, models.PaymentStatusPaid, models.PaymentStatusFailed:
	default:
		return nil, invalid("payment_status", fmt.Sprintf("Unknown payment status %q", filter.PaymentStatus))
	}

	return s.api.ListBookings(ctx, filter)
}

// CancelBooking is idempotent: a booking already known to be cancelled,
// either by its journey or by the server, is not cancelled again.
func (s *bookingServiceImpl) CancelBooking(ctx context.Context, pnr string) (*models.CancelResult, error) {
	pnr = strings.TrimSpace(pnr)
	if pnr == "" {
		return nil, invalid("pnr", "PNR is required")
	}

	snap, err := s.tracker.State(ctx, pnr)
	if err != nil {
		if !errors.Is(err, ErrJourneyNotFound) {
			s.logger.Warn("journey state unavailable", zap.String("pnr", pnr), zap.Error(err))
		}
		snap = nil
	}
	if snap != nil && snap.State == models.JourneyCancelled {
		return alreadyCancelled(pnr), nil
	}
	// untracked and confirmed journeys defer to the upstream record, which
	// may already show the cancellation
	if snap == nil || snap.State.Terminal() {
		rec, err := s.api.GetBooking(ctx, pnr)
		if err != nil {
			return nil, err
		}
		if rec.Status == models.BookingStatusCancelled {
			if snap != nil {
				s.syncFromRecord(ctx, rec)
			}
			return alreadyCancelled(pnr), nil
		}
	}

	resp, err := s.api.CancelBooking(ctx, pnr)
	if err != nil {
		return nil, err
	}

	if snap != nil {
		s.record(ctx, pnr, models.JourneyEvent{
			Type:          models.EventCancelled,
			BookingStatus: models.BookingStatusCancelled,
			PaymentStatus: resp.PaymentStatus,
		})
	}

	s.logger.Info("booking cancelled", zap.String("pnr", pnr))
	result := &models.CancelResult{
		PNR:     pnr,
		Status:  models.BookingStatusCancelled,
		Message: resp.Message,
	}
	if resp.Status == "" && strings.Contains(strings.ToLower(resp.Message), "already") {
		result.AlreadyCancelled = true
	}
	if result.Message == "" {
		result.Message = "Booking cancelled"
	}
	return result, nil
}

func (s *bookingServiceImpl) Journey(ctx context.Context, pnr string) (*models.JourneySnapshot, error) {
	pnr = strings.TrimSpace(pnr)
	if pnr == "" {
		return nil, invalid("pnr", "PNR is required")
	}
	return s.tracker.State(ctx, pnr)
}

// syncFromRecord forwards a server-side final status to the journey.
func (s *bookingServiceImpl) syncFromRecord(ctx context.Context, rec *models.BookingRecord) {
	switch rec.Status {
	case models.BookingStatusConfirmed:
		s.record(ctx, rec.PNR, models.JourneyEvent{
			Type:          models.EventConfirmed,
			BookingStatus: rec.Status,
			PaymentStatus: rec.PaymentStatus,
		})
	case models.BookingStatusCancelled:
		s.record(ctx, rec.PNR, models.JourneyEvent{
			Type:          models.EventCancelled,
			BookingStatus: rec.Status,
			PaymentStatus: rec.PaymentStatus,
		})
	}
}

// record forwards an upstream outcome to the journey. Tracking failures
// never fail the page.
func (s *bookingServiceImpl) record(ctx context.Context, pnr string, event models.JourneyEvent) {
	err := s.tracker.Record(ctx, pnr, event)
	switch {
	case err == nil:
	case errors.Is(err, ErrJourneyNotFound):
		s.logger.Debug("no journey to record event", zap.String("pnr", pnr), zap.String("event", string(event.Type)))
	default:
		s.logger.Warn("failed to record journey event",
			zap.String("pnr", pnr),
			zap.String("event", string(event.Type)),
			zap.Error(err),
		)
	}
}

func alreadyCancelled(pnr string) *models.CancelResult {
	return &models.CancelResult{
		PNR:              pnr,
		Status:           models.BookingStatusCancelled,
		AlreadyCancelled: true,
		Message:          "Booking is already cancelled",
	}
}
