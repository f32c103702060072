package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cx-tal-miterani/flightsim-portal/internal/fare"
	"github.com/cx-tal-miterani/flightsim-portal/internal/flightapi"
	"github.com/cx-tal-miterani/flightsim-portal/internal/handoff"
	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
	"github.com/cx-tal-miterani/flightsim-portal/internal/service"
	"github.com/cx-tal-miterani/flightsim-portal/internal/service/mocks"
)

type bookingFixture struct {
	api     *mocks.MockFlightAPI
	tracker *mocks.MockJourneyTracker
	carrier *handoff.Carrier
	svc     service.BookingService
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		api:     new(mocks.MockFlightAPI),
		tracker: new(mocks.MockJourneyTracker),
		carrier: newCarrier(),
	}
	f.svc = service.NewBookingService(f.api, f.carrier, f.tracker, zap.NewNop())
	return f
}

func (f *bookingFixture) seatToken(t *testing.T, seat string, class fare.CabinClass, price float64) string {
	t.Helper()
	token, err := f.carrier.IssueSeat(handoff.Seat{FlightID: 7, SelectedSeat: seat, CabinClass: class, FinalPrice: price})
	require.NoError(t, err)
	return token
}

func TestBookingPage_NoCarriedStateUsesDefaults(t *testing.T) {
	f := newBookingFixture()
	f.api.On("DynamicPrice", mock.Anything, int64(7)).Return(price(4321.555), nil)

	draft, err := f.svc.BookingPage(context.Background(), 7, "")
	require.NoError(t, err)
	assert.Empty(t, draft.SelectedSeat)
	assert.Equal(t, fare.Economy, draft.CabinClass)
	assert.Equal(t, fare.Round2(4321.555), draft.FinalPrice)
	assert.False(t, draft.Carried)
	assert.True(t, draft.Bookable)
	assert.Empty(t, draft.Notice)
}

func TestBookingPage_CarriedState(t *testing.T) {
	f := newBookingFixture()
	token := f.seatToken(t, "A1", fare.Business, 1760)

	draft, err := f.svc.BookingPage(context.Background(), 7, token)
	require.NoError(t, err)
	assert.Equal(t, "A1", draft.SelectedSeat)
	assert.Equal(t, fare.Business, draft.CabinClass)
	assert.Equal(t, 1760.0, draft.FinalPrice)
	assert.True(t, draft.Carried)
	f.api.AssertNotCalled(t, "DynamicPrice", mock.Anything, mock.Anything)
}

func TestBookingPage_InvalidCarriedStateDegrades(t *testing.T) {
	f := newBookingFixture()
	f.api.On("DynamicPrice", mock.Anything, int64(7)).Return(price(1000), nil)

	draft, err := f.svc.BookingPage(context.Background(), 7, "garbage")
	require.NoError(t, err)
	assert.False(t, draft.Carried)
	assert.Equal(t, 1000.0, draft.FinalPrice)
}

func TestBookingPage_FareUnavailableNeverFails(t *testing.T) {
	f := newBookingFixture()
	f.api.On("DynamicPrice", mock.Anything, int64(7)).Return(nil, flightapi.ErrTransport)

	draft, err := f.svc.BookingPage(context.Background(), 7, "")
	require.NoError(t, err)
	assert.False(t, draft.Bookable)
	assert.NotEmpty(t, draft.Notice)
}

func TestSubmitBooking_EmptyNameMakesNoCall(t *testing.T) {
	f := newBookingFixture()
	token := f.seatToken(t, "A1", fare.Business, 1760)

	_, err := f.svc.SubmitBooking(context.Background(), 7, models.BookingSubmission{PassengerName: "   ", Handoff: token})
	assert.ErrorIs(t, err, service.ErrValidation)

	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "passenger_name", verr.Field)

	f.api.AssertNotCalled(t, "InitiateBooking", mock.Anything, mock.Anything)
	f.api.AssertNotCalled(t, "DynamicPrice", mock.Anything, mock.Anything)
	f.tracker.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestSubmitBooking_StaleHandoffRejected(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		tamper  bool
	}{
		{"expired", 31 * time.Minute, false},
		{"tampered", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture()
			now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
			f.carrier.WithClock(func() time.Time { return now })
			token := f.seatToken(t, "A1", fare.Business, 1760)
			if tt.tamper {
				token += "x"
			}
			now = now.Add(tt.advance)

			_, err := f.svc.SubmitBooking(context.Background(), 7, models.BookingSubmission{
				PassengerName: "Asha Rao",
				Handoff:       token,
			})
			var verr *service.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "handoff", verr.Field)

			f.api.AssertNotCalled(t, "DynamicPrice", mock.Anything, mock.Anything)
			f.api.AssertNotCalled(t, "InitiateBooking", mock.Anything, mock.Anything)
			f.tracker.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitBooking(t *testing.T) {
	f := newBookingFixture()
	token := f.seatToken(t, "C12", fare.Economy, 525)
	seatNo := 12

	f.api.On("InitiateBooking", mock.Anything, models.InitiateBookingRequest{
		FlightID:  7,
		Passenger: models.Passenger{Name: "Asha Rao", Phone: "9999999999"},
		SeatNo:    &seatNo,
	}).Return(&models.InitiateBookingResponse{
		PNR: "AB12CD", Price: 510.25, Status: models.BookingStatusInitiated, PaymentStatus: models.PaymentStatusPending,
	}, nil)
	f.tracker.On("Start", mock.Anything, models.JourneyWorkflowInput{
		PNR: "AB12CD", FlightID: 7, SeatID: "C12", CabinClass: "economy", QuotedFare: 525, UpstreamFare: 510.25,
	}).Return(nil)

	receipt, err := f.svc.SubmitBooking(context.Background(), 7, models.BookingSubmission{
		PassengerName: " Asha Rao ", PassengerPhone: "9999999999", Handoff: token,
	})
	require.NoError(t, err)
	assert.Equal(t, "AB12CD", receipt.PNR)
	assert.Equal(t, 525.0, receipt.QuotedFare)
	assert.Equal(t, 510.25, receipt.Price)

	carried, err := f.carrier.Payment(receipt.Handoff, "AB12CD")
	require.NoError(t, err)
	assert.Equal(t, 525.0, carried.TotalPrice)

	f.api.AssertExpectations(t)
	f.tracker.AssertExpectations(t)
}

func TestSubmitBooking_TrackerFailureIsNotFatal(t *testing.T) {
	f := newBookingFixture()
	f.api.On("DynamicPrice", mock.Anything, int64(7)).Return(price(1000), nil)
	f.api.On("InitiateBooking", mock.Anything, mock.MatchedBy(func(req models.InitiateBookingRequest) bool {
		return req.SeatNo == nil && req.Passenger.Name == "Asha"
	})).Return(&models.InitiateBookingResponse{PNR: "AB12CD", Price: 1000}, nil)
	f.tracker.On("Start", mock.Anything, mock.Anything).Return(errors.New("temporal unavailable"))

	receipt, err := f.svc.SubmitBooking(context.Background(), 7, models.BookingSubmission{PassengerName: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, "AB12CD", receipt.PNR)
	assert.Equal(t, 1000.0, receipt.QuotedFare)
}

func TestSubmitBooking_ZeroFareBlocks(t *testing.T) {
	f := newBookingFixture()
	f.api.On("DynamicPrice", mock.Anything, int64(7)).Return(price(0), nil)

	_, err := f.svc.SubmitBooking(context.Background(), 7, models.BookingSubmission{PassengerName: "Asha"})
	assert.ErrorIs(t, err, service.ErrBasePriceUnavailable)
	f.api.AssertNotCalled(t, "InitiateBooking", mock.Anything, mock.Anything)
}

func TestSubmitBooking_UpstreamError(t *testing.T) {
	f := newBookingFixture()
	token := f.seatToken(t, "A1", fare.Business, 1760)
	upstream := &flightapi.StatusError{StatusCode: 400, Detail: "No seats available"}
	f.api.On("InitiateBooking", mock.Anything, mock.Anything).Return(nil, upstream)

	_, err := f.svc.SubmitBooking(context.Background(), 7, models.BookingSubmission{PassengerName: "Asha", Handoff: token})
	assert.ErrorIs(t, err, flightapi.ErrUpstream)
	f.tracker.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestPaymentPage(t *testing.T) {
	f := newBookingFixture()

	view, err := f.svc.PaymentPage(context.Background(), "AB12CD", "", nil)
	require.NoError(t, err)
	assert.False(t, view.Carried)
	assert.Equal(t, 150.0, view.Breakdown.Total)
	assert.Equal(t, fare.MethodUPI, view.DefaultMethod)

	token, err := f.carrier.IssuePayment(handoff.Payment{PNR: "AB12CD", TotalPrice: 1000})
	require.NoError(t, err)

	view, err = f.svc.PaymentPage(context.Background(), "AB12CD", token, nil)
	require.NoError(t, err)
	assert.True(t, view.Carried)
	assert.Equal(t, 1330.0, view.Breakdown.Total)

	view, err = f.svc.PaymentPage(context.Background(), "AB12CD", token, []string{"meal"})
	require.NoError(t, err)
	assert.Equal(t, 1580.0, view.Breakdown.Total)

	_, err = f.svc.PaymentPage(context.Background(), "AB12CD", token, []string{"lounge"})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestSubmitPayment_Success(t *testing.T) {
	f := newBookingFixture()
	token, err := f.carrier.IssuePayment(handoff.Payment{PNR: "AB12CD", TotalPrice: 1000})
	require.NoError(t, err)

	f.api.On("Pay", mock.Anything, "AB12CD", models.PaymentRequest{Success: true, Amount: 1330}).
		Return(&models.PaymentResponse{PNR: "AB12CD", Status: models.BookingStatusConfirmed, PaymentStatus: models.PaymentStatusPaid}, nil)
	f.tracker.On("Record", mock.Anything, "AB12CD", models.JourneyEvent{
		Type:          models.EventPaymentSettled,
		BookingStatus: models.BookingStatusConfirmed,
		PaymentStatus: models.PaymentStatusPaid,
		Amount:        1330,
	}).Return(nil)

	res, err := f.svc.SubmitPayment(context.Background(), "AB12CD", models.PaymentSubmission{Success: true, Handoff: token})
	require.NoError(t, err)
	assert.True(t, res.Paid)
	assert.Equal(t, fare.MethodUPI, res.Method)
	assert.Equal(t, 1330.0, res.Amount)

	cf, err := f.carrier.Confirmation(res.Handoff, "AB12CD")
	require.NoError(t, err)
	assert.Equal(t, 1330.0, cf.TotalAmount)
	f.tracker.AssertExpectations(t)
}

func TestSubmitPayment_Declined(t *testing.T) {
	f := newBookingFixture()

	f.api.On("Pay", mock.Anything, "AB12CD", models.PaymentRequest{Success: false, Amount: 150}).
		Return(&models.PaymentResponse{PNR: "AB12CD", Status: models.BookingStatusInitiated, PaymentStatus: models.PaymentStatusFailed}, nil)
	f.tracker.On("Record", mock.Anything, "AB12CD", mock.MatchedBy(func(ev models.JourneyEvent) bool {
		return ev.Type == models.EventPaymentFailed
	})).Return(service.ErrJourneyNotFound)

	res, err := f.svc.SubmitPayment(context.Background(), "AB12CD", models.PaymentSubmission{Success: false, Method: "card"})
	require.NoError(t, err)
	assert.False(t, res.Paid)
	assert.Empty(t, res.Handoff)
	assert.NotEmpty(t, res.Message)
	assert.Equal(t, fare.MethodCard, res.Method)
}

func TestSubmitPayment_StaleHandoffRejected(t *testing.T) {
	f := newBookingFixture()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	f.carrier.WithClock(func() time.Time { return now })
	token, err := f.carrier.IssuePayment(handoff.Payment{PNR: "AB12CD", TotalPrice: 1760})
	require.NoError(t, err)
	now = now.Add(31 * time.Minute)

	_, err = f.svc.SubmitPayment(context.Background(), "AB12CD", models.PaymentSubmission{Success: true, Handoff: token})
	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "handoff", verr.Field)
	f.api.AssertNotCalled(t, "Pay", mock.Anything, mock.Anything, mock.Anything)
	f.tracker.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitPayment_HandoffForAnotherBookingRejected(t *testing.T) {
	f := newBookingFixture()
	token, err := f.carrier.IssuePayment(handoff.Payment{PNR: "ZZ99", TotalPrice: 1760})
	require.NoError(t, err)

	_, err = f.svc.SubmitPayment(context.Background(), "AB12CD", models.PaymentSubmission{Success: true, Handoff: token})
	assert.ErrorIs(t, err, service.ErrValidation)
	f.api.AssertNotCalled(t, "Pay", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitPayment_Validation(t *testing.T) {
	f := newBookingFixture()

	_, err := f.svc.SubmitPayment(context.Background(), "AB12CD", models.PaymentSubmission{Method: "cash"})
	assert.ErrorIs(t, err, service.ErrValidation)
	f.api.AssertNotCalled(t, "Pay", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmation(t *testing.T) {
	f := newBookingFixture()
	rec := &models.BookingRecord{PNR: "AB12CD", PricePaid: 1000, Status: models.BookingStatusConfirmed, PaymentStatus: models.PaymentStatusPaid}
	f.api.On("GetBooking", mock.Anything, "AB12CD").Return(rec, nil)
	f.tracker.On("Record", mock.Anything, "AB12CD", mock.MatchedBy(func(ev models.JourneyEvent) bool {
		return ev.Type == models.EventConfirmed
	})).Return(nil)

	view, err := f.svc.Confirmation(context.Background(), "AB12CD", "")
	require.NoError(t, err)
	assert.False(t, view.Carried)
	assert.Equal(t, 1000.0, view.TotalAmount)

	token, err := f.carrier.IssueConfirmation(handoff.Confirmation{PNR: "AB12CD", TotalAmount: 1580})
	require.NoError(t, err)
	view, err = f.svc.Confirmation(context.Background(), "AB12CD", token)
	require.NoError(t, err)
	assert.True(t, view.Carried)
	assert.Equal(t, 1580.0, view.TotalAmount)
}

func TestEmailTicket(t *testing.T) {
	f := newBookingFixture()
	f.tracker.On("RequestTicketEmail", mock.Anything, "AB12CD").Return(nil)

	res, err := f.svc.EmailTicket(context.Background(), "AB12CD")
	require.NoError(t, err)
	assert.True(t, res.Queued)
	f.api.AssertNotCalled(t, "EmailTicket", mock.Anything, mock.Anything)
}

func TestEmailTicket_UntrackedFallsBackToDirectCall(t *testing.T) {
	f := newBookingFixture()
	f.tracker.On("RequestTicketEmail", mock.Anything, "ZZ99").Return(service.ErrJourneyNotFound)
	f.tracker.On("State", mock.Anything, "ZZ99").Return(nil, service.ErrJourneyNotFound)
	f.api.On("EmailTicket", mock.Anything, "ZZ99").Return(&models.EmailTicketResponse{Message: "E-ticket sent to passenger"}, nil)

	res, err := f.svc.EmailTicket(context.Background(), "ZZ99")
	require.NoError(t, err)
	assert.False(t, res.Queued)
	assert.Equal(t, "E-ticket sent to passenger", res.Message)
}

func TestEmailTicket_CancelledJourneySendsNothing(t *testing.T) {
	f := newBookingFixture()
	f.tracker.On("RequestTicketEmail", mock.Anything, "AB12CD").Return(service.ErrJourneyNotFound)
	f.tracker.On("State", mock.Anything, "AB12CD").
		Return(&models.JourneySnapshot{PNR: "AB12CD", State: models.JourneyCancelled}, nil)

	_, err := f.svc.EmailTicket(context.Background(), "AB12CD")
	assert.ErrorIs(t, err, service.ErrBookingCancelled)
	f.api.AssertNotCalled(t, "EmailTicket", mock.Anything, mock.Anything)
}

func TestListBookings_Filters(t *testing.T) {
	f := newBookingFixture()
	f.api.On("ListBookings", mock.Anything, models.BookingFilter{Status: models.BookingStatusConfirmed}).
		Return([]models.BookingSummary{{PNR: "AB12CD"}}, nil)

	rows, err := f.svc.ListBookings(context.Background(), models.BookingFilter{Status: " confirmed "})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = f.svc.ListBookings(context.Background(), models.BookingFilter{PaymentStatus: "refunded"})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestCancelBooking_AlreadyCancelledJourneyMakesNoCall(t *testing.T) {
	f := newBookingFixture()
	f.tracker.On("State", mock.Anything, "AB12CD").
		Return(&models.JourneySnapshot{PNR: "AB12CD", State: models.JourneyCancelled}, nil)

	res, err := f.svc.CancelBooking(context.Background(), "AB12CD")
	require.NoError(t, err)
	assert.True(t, res.AlreadyCancelled)
	f.api.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything)
	f.api.AssertNotCalled(t, "GetBooking", mock.Anything, mock.Anything)
}

func TestCancelBooking_AlreadyCancelledUpstreamMakesNoCall(t *testing.T) {
	f := newBookingFixture()
	f.tracker.On("State", mock.Anything, "AB12CD").Return(nil, service.ErrJourneyNotFound)
	f.api.On("GetBooking", mock.Anything, "AB12CD").
		Return(&models.BookingRecord{PNR: "AB12CD", Status: models.BookingStatusCancelled}, nil)

	res, err := f.svc.CancelBooking(context.Background(), "AB12CD")
	require.NoError(t, err)
	assert.True(t, res.AlreadyCancelled)
	f.api.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything)
}

func TestCancelBooking_ActiveJourney(t *testing.T) {
	f := newBookingFixture()
	f.tracker.On("State", mock.Anything, "AB12CD").
		Return(&models.JourneySnapshot{PNR: "AB12CD", State: models.JourneyFailedPayment}, nil)
	f.api.On("CancelBooking", mock.Anything, "AB12CD").
		Return(&models.CancelResponse{Message: "Booking cancelled", PNR: "AB12CD", Status: models.BookingStatusCancelled, PaymentStatus: models.PaymentStatusFailed}, nil)
	f.tracker.On("Record", mock.Anything, "AB12CD", models.JourneyEvent{
		Type:          models.EventCancelled,
		BookingStatus: models.BookingStatusCancelled,
		PaymentStatus: models.PaymentStatusFailed,
	}).Return(nil)

	res, err := f.svc.CancelBooking(context.Background(), "AB12CD")
	require.NoError(t, err)
	assert.False(t, res.AlreadyCancelled)
	assert.Equal(t, models.BookingStatusCancelled, res.Status)
	f.api.AssertNotCalled(t, "GetBooking", mock.Anything, mock.Anything)
	f.tracker.AssertExpectations(t)
}

func TestCancelBooking_ConfirmedJourneyCancelledOnce(t *testing.T) {
	f := newBookingFixture()
	f.tracker.On("State", mock.Anything, "AB12CD").
		Return(&models.JourneySnapshot{PNR: "AB12CD", State: models.JourneyConfirmed}, nil).Once()
	f.tracker.On("State", mock.Anything, "AB12CD").
		Return(&models.JourneySnapshot{PNR: "AB12CD", State: models.JourneyCancelled}, nil).Once()
	f.api.On("GetBooking", mock.Anything, "AB12CD").
		Return(&models.BookingRecord{PNR: "AB12CD", Status: models.BookingStatusConfirmed, PaymentStatus: models.PaymentStatusPaid}, nil).Once()
	f.api.On("CancelBooking", mock.Anything, "AB12CD").
		Return(&models.CancelResponse{Message: "Booking cancelled", PNR: "AB12CD", Status: models.BookingStatusCancelled, PaymentStatus: models.PaymentStatusPaid}, nil).Once()
	f.tracker.On("Record", mock.Anything, "AB12CD", models.JourneyEvent{
		Type:          models.EventCancelled,
		BookingStatus: models.BookingStatusCancelled,
		PaymentStatus: models.PaymentStatusPaid,
	}).Return(nil).Once()

	first, err := f.svc.CancelBooking(context.Background(), "AB12CD")
	require.NoError(t, err)
	assert.False(t, first.AlreadyCancelled)

	second, err := f.svc.CancelBooking(context.Background(), "AB12CD")
	require.NoError(t, err)
	assert.True(t, second.AlreadyCancelled)

	f.api.AssertNumberOfCalls(t, "CancelBooking", 1)
	f.api.AssertExpectations(t)
	f.tracker.AssertExpectations(t)
}

func TestCancelBooking_LaggingJourneyChecksUpstream(t *testing.T) {
	f := newBookingFixture()
	f.tracker.On("State", mock.Anything, "AB12CD").
		Return(&models.JourneySnapshot{PNR: "AB12CD", State: models.JourneyConfirmed}, nil)
	f.api.On("GetBooking", mock.Anything, "AB12CD").
		Return(&models.BookingRecord{PNR: "AB12CD", Status: models.BookingStatusConfirmed}, nil).Once()
	f.api.On("GetBooking", mock.Anything, "AB12CD").
		Return(&models.BookingRecord{PNR: "AB12CD", Status: models.BookingStatusCancelled}, nil).Once()
	f.api.On("CancelBooking", mock.Anything, "AB12CD").
		Return(&models.CancelResponse{Message: "Booking cancelled", Status: models.BookingStatusCancelled}, nil).Once()
	f.tracker.On("Record", mock.Anything, "AB12CD", mock.MatchedBy(func(ev models.JourneyEvent) bool {
		return ev.Type == models.EventCancelled
	})).Return(errors.New("temporal unavailable"))

	_, err := f.svc.CancelBooking(context.Background(), "AB12CD")
	require.NoError(t, err)

	res, err := f.svc.CancelBooking(context.Background(), "AB12CD")
	require.NoError(t, err)
	assert.True(t, res.AlreadyCancelled)
	f.api.AssertNumberOfCalls(t, "CancelBooking", 1)
	f.tracker.AssertNumberOfCalls(t, "Record", 2)
}

func TestCancelBooking_UntrackedConfirmedBooking(t *testing.T) {
	f := newBookingFixture()
	f.tracker.On("State", mock.Anything, "AB12CD").Return(nil, service.ErrJourneyNotFound)
	f.api.On("GetBooking", mock.Anything, "AB12CD").
		Return(&models.BookingRecord{PNR: "AB12CD", Status: models.BookingStatusConfirmed}, nil)
	f.api.On("CancelBooking", mock.Anything, "AB12CD").
		Return(&models.CancelResponse{Message: "Booking cancelled", Status: models.BookingStatusCancelled}, nil)

	res, err := f.svc.CancelBooking(context.Background(), "AB12CD")
	require.NoError(t, err)
	assert.False(t, res.AlreadyCancelled)
	f.tracker.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything)
}

func TestJourney_NotFound(t *testing.T) {
	f := newBookingFixture()
	f.tracker.On("State", mock.Anything, "AB12CD").Return(nil, service.ErrJourneyNotFound)

	_, err := f.svc.Journey(context.Background(), "AB12CD")
	assert.ErrorIs(t, err, service.ErrJourneyNotFound)
}
