package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	temporalmocks "go.temporal.io/sdk/mocks"

	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
	"github.com/cx-tal-miterani/flightsim-portal/internal/service"
)

func TestTemporalTracker_Record(t *testing.T) {
	c := &temporalmocks.Client{}
	tracker := service.NewTemporalTracker(c, "")

	ev := models.JourneyEvent{Type: models.EventPaymentFailed}
	c.On("SignalWorkflow", mock.Anything, "journey-AB12CD", "", models.SignalJourneyEvent, ev).Return(nil)

	require.NoError(t, tracker.Record(context.Background(), "AB12CD", ev))
	c.AssertExpectations(t)
}

func TestTemporalTracker_NotFound(t *testing.T) {
	c := &temporalmocks.Client{}
	tracker := service.NewTemporalTracker(c, "")

	c.On("SignalWorkflow", mock.Anything, "journey-ZZ99", "", models.SignalEmailTicket, nil).
		Return(serviceerror.NewNotFound("workflow execution already completed"))

	err := tracker.RequestTicketEmail(context.Background(), "ZZ99")
	assert.ErrorIs(t, err, service.ErrJourneyNotFound)
}

func TestTemporalTracker_OtherErrorsAreWrapped(t *testing.T) {
	c := &temporalmocks.Client{}
	tracker := service.NewTemporalTracker(c, "")

	boom := errors.New("connection refused")
	c.On("SignalWorkflow", mock.Anything, "journey-AB12CD", "", models.SignalJourneyEvent, mock.Anything).Return(boom)

	err := tracker.Record(context.Background(), "AB12CD", models.JourneyEvent{Type: models.EventCancelled})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, service.ErrJourneyNotFound)
}
