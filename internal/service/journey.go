package service

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
)

// temporalTracker runs one JourneyWorkflow per PNR
type temporalTracker struct {
	client    client.Client
	taskQueue string
}

// NewTemporalTracker creates a JourneyTracker backed by Temporal
func NewTemporalTracker(c client.Client, taskQueue string) JourneyTracker {
	if taskQueue == "" {
		taskQueue = models.JourneyTaskQueue
	}
	return &temporalTracker{client: c, taskQueue: taskQueue}
}

func (t *temporalTracker) Start(ctx context.Context, input models.JourneyWorkflowInput) error {
	workflowOptions := client.StartWorkflowOptions{
		ID:        models.JourneyWorkflowID(input.PNR),
		TaskQueue: t.taskQueue,
	}

	_, err := t.client.ExecuteWorkflow(ctx, workflowOptions, models.JourneyWorkflowName, input)
	if err != nil {
		return fmt.Errorf("failed to start workflow: %w", err)
	}
	return nil
}

func (t *temporalTracker) Record(ctx context.Context, pnr string, event models.JourneyEvent) error {
	err := t.client.SignalWorkflow(ctx, models.JourneyWorkflowID(pnr), "", models.SignalJourneyEvent, event)
	if err != nil {
		return translateWorkflowError(err)
	}
	return nil
}

func (t *temporalTracker) State(ctx context.Context, pnr string) (*models.JourneySnapshot, error) {
	response, err := t.client.QueryWorkflow(ctx, models.JourneyWorkflowID(pnr), "", models.QueryJourneyState)
	if err != nil {
		return nil, translateWorkflowError(err)
	}

	var snap models.JourneySnapshot
	if err := response.Get(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode workflow state: %w", err)
	}
	return &snap, nil
}

func (t *temporalTracker) RequestTicketEmail(ctx context.Context, pnr string) error {
	err := t.client.SignalWorkflow(ctx, models.JourneyWorkflowID(pnr), "", models.SignalEmailTicket, nil)
	if err != nil {
		return translateWorkflowError(err)
	}
	return nil
}

func translateWorkflowError(err error) error {
	var notFound *serviceerror.NotFound
	if errors.As(err, &notFound) {
		return ErrJourneyNotFound
	}
	return fmt.Errorf("journey workflow: %w", err)
}
