package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
	"github.com/cx-tal-miterani/flightsim-portal/internal/websocket"
)

// DefaultDashboardRefresh matches the dashboard page's polling interval
const DefaultDashboardRefresh = 60 * time.Second

const jobTimeout = 30 * time.Second

type DashboardSource interface {
	Dashboard(ctx context.Context) (*models.DashboardView, error)
}

type Publisher interface {
	Broadcast(topic string, msgType websocket.MessageType, data any) bool
	ClientCount(topic string) int
}

// Sweeper is a session store that needs expired rows removed
type Sweeper interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Scheduler runs the portal's periodic jobs
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
	now    func() time.Time
}

func NewScheduler(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger{logger}),
			cron.SkipIfStillRunning(cronLogger{logger}),
		)),
		logger: logger,
		now:    time.Now,
	}
}

// AddDashboardRefresh pushes a fresh dashboard to live subscribers every
// interval. Nothing is fetched while nobody is subscribed.
func (s *Scheduler) AddDashboardRefresh(every time.Duration, src DashboardSource, pub Publisher) error {
	if every <= 0 {
		every = DefaultDashboardRefresh
	}
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", every), func() {
		s.refreshDashboard(src, pub)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule dashboard refresh: %w", err)
	}
	return nil
}

func (s *Scheduler) refreshDashboard(src DashboardSource, pub Publisher) {
	if pub.ClientCount(websocket.TopicDashboard) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	view, err := src.Dashboard(ctx)
	if err != nil {
		s.logger.Warn("dashboard refresh failed", zap.Error(err))
		return
	}
	pub.Broadcast(websocket.TopicDashboard, websocket.MessageTypeDashboard, view)
}

// AddSessionSweep removes expired sessions on the given cron spec
func (s *Scheduler) AddSessionSweep(spec string, sweeper Sweeper) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.sweepSessions(sweeper)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}
	return nil
}

func (s *Scheduler) sweepSessions(sweeper Sweeper) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := sweeper.DeleteExpired(ctx, s.now())
	if err != nil {
		s.logger.Warn("session sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Info("expired sessions removed", zap.Int64("count", n))
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out")
	}
}

// cronLogger adapts zap to cron.Logger
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
