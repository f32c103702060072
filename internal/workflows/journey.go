package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/cx-tal-miterani/flightsim-portal/internal/activities"
	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
)

const (
	// TicketWindow is how long a confirmed journey keeps serving e-ticket requests
	TicketWindow = 24 * time.Hour
	// EmailTimeout bounds one e-ticket request to the FlightSim API
	EmailTimeout = 30 * time.Second
)

// Apply returns the state a journey moves to when ev arrives in state from.
// The second result is false when the event does not change the state.
// A confirmed journey only leaves CONFIRMED through an explicit cancel.
func Apply(from models.JourneyState, ev models.JourneyEvent) (models.JourneyState, bool) {
	if from == models.JourneyCancelled {
		return from, false
	}
	if from == models.JourneyConfirmed {
		if ev.Type == models.EventCancelled {
			return models.JourneyCancelled, true
		}
		return from, false
	}

	to := from
	switch ev.Type {
	case models.EventInitiated:
		if from == models.JourneyDraft {
			to = models.JourneyInitiated
		}
	case models.EventPaymentSettled:
		if from == models.JourneyInitiated || from == models.JourneyFailedPayment {
			to = models.JourneyPaid
		}
	case models.EventPaymentFailed:
		if from == models.JourneyInitiated || from == models.JourneyFailedPayment {
			to = models.JourneyFailedPayment
		}
	case models.EventConfirmed:
		if from != models.JourneyDraft {
			to = models.JourneyConfirmed
		}
	case models.EventCancelled:
		to = models.JourneyCancelled
	}
	return to, to != from
}

type journey struct {
	snap models.JourneySnapshot
}

func newJourney(input models.JourneyWorkflowInput, now time.Time) *journey {
	return &journey{snap: models.JourneySnapshot{
		PNR:        input.PNR,
		FlightID:   input.FlightID,
		SeatID:     input.SeatID,
		CabinClass: input.CabinClass,
		QuotedFare: input.QuotedFare,
		State:      models.JourneyDraft,
		History:    []models.JourneyTransition{},
		UpdatedAt:  now,
	}}
}

func (j *journey) apply(ev models.JourneyEvent, now time.Time) bool {
	switch ev.Type {
	case models.EventPaymentSettled:
		if !j.snap.State.Terminal() {
			j.snap.PaymentAttempts++
			j.snap.AmountPaid = ev.Amount
			j.snap.LastError = ""
		}
	case models.EventPaymentFailed:
		if !j.snap.State.Terminal() {
			j.snap.PaymentAttempts++
			j.snap.LastError = "payment declined"
		}
	}

	changed := j.step(ev, now)

	// a settlement that the upstream already confirmed still passes through PAID
	if ev.Type == models.EventPaymentSettled && ev.BookingStatus == models.BookingStatusConfirmed &&
		j.snap.State == models.JourneyPaid {
		confirmed := models.JourneyEvent{
			Type:          models.EventConfirmed,
			BookingStatus: ev.BookingStatus,
			PaymentStatus: ev.PaymentStatus,
		}
		if j.step(confirmed, now) {
			changed = true
		}
	}
	return changed
}

func (j *journey) step(ev models.JourneyEvent, now time.Time) bool {
	to, changed := Apply(j.snap.State, ev)
	if !changed {
		return false
	}
	j.snap.History = append(j.snap.History, models.JourneyTransition{
		From:  j.snap.State,
		To:    to,
		Event: ev.Type,
		At:    now,
	})
	j.snap.State = to
	j.snap.UpdatedAt = now
	return true
}

func (j *journey) snapshot() models.JourneySnapshot {
	out := j.snap
	out.History = append([]models.JourneyTransition(nil), j.snap.History...)
	return out
}

// JourneyWorkflow follows one PNR from initiation to a terminal state.
// Upstream outcomes arrive on the journey_event signal, e-ticket requests on
// email_ticket. Requests made before confirmation are held and sent once the
// booking is confirmed; a cancelled journey drops them and completes.
func JourneyWorkflow(ctx workflow.Context, input models.JourneyWorkflowInput) (*models.JourneyResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Journey workflow started", "pnr", input.PNR, "flightId", input.FlightID)

	j := newJourney(input, workflow.Now(ctx))
	j.apply(models.JourneyEvent{Type: models.EventInitiated}, workflow.Now(ctx))

	err := workflow.SetQueryHandler(ctx, models.QueryJourneyState, func() (models.JourneySnapshot, error) {
		return j.snapshot(), nil
	})
	if err != nil {
		return nil, err
	}

	emailCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: EmailTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	})

	eventCh := workflow.GetSignalChannel(ctx, models.SignalJourneyEvent)
	emailCh := workflow.GetSignalChannel(ctx, models.SignalEmailTicket)

	pendingEmails := 0
	sendTicket := func() {
		var out activities.SendTicketOutput
		err := workflow.ExecuteActivity(emailCtx, activities.SendTicketName, activities.SendTicketInput{
			PNR: input.PNR,
		}).Get(ctx, &out)
		if err != nil {
			logger.Error("E-ticket request failed", "pnr", input.PNR, "error", err)
			j.snap.LastError = err.Error()
			return
		}
		j.snap.TicketsEmailed++
	}

	var window workflow.Future
	windowClosed := false
	cancelled := false

	for {
		if j.snap.State == models.JourneyConfirmed && pendingEmails > 0 {
			for ; pendingEmails > 0; pendingEmails-- {
				sendTicket()
			}
		}
		if j.snap.State == models.JourneyConfirmed && window == nil {
			window = workflow.NewTimer(ctx, TicketWindow)
		}
		if j.snap.State == models.JourneyCancelled {
			if pendingEmails > 0 {
				logger.Info("Dropping e-ticket requests for cancelled journey", "pnr", input.PNR, "count", pendingEmails)
			}
			break
		}
		if windowClosed || cancelled {
			break
		}

		selector := workflow.NewSelector(ctx)

		selector.AddReceive(eventCh, func(c workflow.ReceiveChannel, more bool) {
			var ev models.JourneyEvent
			c.Receive(ctx, &ev)
			from := j.snap.State
			if j.apply(ev, workflow.Now(ctx)) {
				logger.Info("Journey transition", "pnr", input.PNR, "from", from, "to", j.snap.State, "event", ev.Type)
			} else if from.Terminal() {
				logger.Warn("Event ignored in terminal state", "pnr", input.PNR, "state", from, "event", ev.Type)
			}
		})

		selector.AddReceive(emailCh, func(c workflow.ReceiveChannel, more bool) {
			c.Receive(ctx, nil)
			if j.snap.State == models.JourneyConfirmed {
				sendTicket()
				return
			}
			pendingEmails++
			logger.Info("E-ticket request held until confirmation", "pnr", input.PNR, "state", j.snap.State)
		})

		if window != nil {
			selector.AddFuture(window, func(f workflow.Future) {
				windowClosed = true
			})
		}

		selector.AddReceive(ctx.Done(), func(c workflow.ReceiveChannel, more bool) {
			c.Receive(ctx, nil)
			cancelled = true
		})

		selector.Select(ctx)
	}

	logger.Info("Journey workflow completed", "pnr", input.PNR, "state", j.snap.State)
	return &models.JourneyResult{PNR: input.PNR, FinalState: j.snap.State}, nil
}
