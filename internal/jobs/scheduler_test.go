package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
	"github.com/cx-tal-miterani/flightsim-portal/internal/websocket"
)

type mockDashboard struct{ mock.Mock }

func (m *mockDashboard) Dashboard(ctx context.Context) (*models.DashboardView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardView), args.Error(1)
}

type fakePublisher struct {
	clients int
	sent    []any
}

func (p *fakePublisher) Broadcast(topic string, msgType websocket.MessageType, data any) bool {
	p.sent = append(p.sent, data)
	return true
}

func (p *fakePublisher) ClientCount(topic string) int { return p.clients }

type fakeSweeper struct {
	at      time.Time
	removed int64
	err     error
}

func (f *fakeSweeper) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.at = now
	return f.removed, f.err
}

func TestRefreshDashboard_PushesToSubscribers(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	src := new(mockDashboard)
	pub := &fakePublisher{clients: 2}
	view := &models.DashboardView{}
	src.On("Dashboard", mock.Anything).Return(view, nil).Once()

	s.refreshDashboard(src, pub)

	require.Len(t, pub.sent, 1)
	assert.Same(t, view, pub.sent[0])
	src.AssertExpectations(t)
}

func TestRefreshDashboard_SkipsWithoutSubscribers(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	src := new(mockDashboard)
	pub := &fakePublisher{}

	s.refreshDashboard(src, pub)

	assert.Empty(t, pub.sent)
	src.AssertNotCalled(t, "Dashboard", mock.Anything)
}

func TestRefreshDashboard_FailureSendsNothing(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	src := new(mockDashboard)
	pub := &fakePublisher{clients: 1}
	src.On("Dashboard", mock.Anything).Return(nil, errors.New("upstream down"))

	s.refreshDashboard(src, pub)

	assert.Empty(t, pub.sent)
}

func TestSweepSessions(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	sweeper := &fakeSweeper{removed: 3}
	s.sweepSessions(sweeper)
	assert.Equal(t, now, sweeper.at)

	sweeper = &fakeSweeper{err: errors.New("db gone")}
	assert.NotPanics(t, func() { s.sweepSessions(sweeper) })
}

func TestSchedule(t *testing.T) {
	s := NewScheduler(zap.NewNop())

	assert.NoError(t, s.AddDashboardRefresh(0, new(mockDashboard), &fakePublisher{}))
	assert.NoError(t, s.AddSessionSweep("@every 10m", &fakeSweeper{}))
	assert.Error(t, s.AddSessionSweep("every sometimes", &fakeSweeper{}))
	assert.Len(t, s.cron.Entries(), 2)

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
