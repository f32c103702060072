package activities

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/cx-tal-miterani/flightsim-portal/internal/flightapi"
	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
)

// SendTicketName is the registered name of the e-ticket activity
const SendTicketName = "SendTicket"

// TicketMailer is the part of the FlightSim API the activities need
type TicketMailer interface {
	EmailTicket(ctx context.Context, pnr string) (*models.EmailTicketResponse, error)
}

type SendTicketInput struct {
	PNR string `json:"pnr"`
}

type SendTicketOutput struct {
	PNR     string `json:"pnr"`
	Message string `json:"message"`
}

// Activities holds dependencies for activities
type Activities struct {
	mailer TicketMailer
}

// NewActivities creates a new Activities instance
func NewActivities(mailer TicketMailer) *Activities {
	return &Activities{mailer: mailer}
}

// SendTicket asks the FlightSim API to email the e-ticket for a PNR.
// Upstream 4xx answers are not retryable.
func (a *Activities) SendTicket(ctx context.Context, input SendTicketInput) (*SendTicketOutput, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Sending e-ticket", "pnr", input.PNR)

	if input.PNR == "" {
		return nil, temporal.NewNonRetryableApplicationError("pnr is required", "InvalidInput", nil)
	}

	resp, err := a.mailer.EmailTicket(ctx, input.PNR)
	if err != nil {
		var statusErr *flightapi.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode < 500 {
			return nil, temporal.NewNonRetryableApplicationError(statusErr.Message(), "UpstreamRejected", err)
		}
		return nil, fmt.Errorf("email ticket %s: %w", input.PNR, err)
	}

	logger.Info("E-ticket queued", "pnr", input.PNR, "message", resp.Message)
	return &SendTicketOutput{PNR: input.PNR, Message: resp.Message}, nil
}
