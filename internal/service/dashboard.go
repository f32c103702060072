package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
)

// DashboardService backs the dashboard and analytics pages
type DashboardService interface {
	Dashboard(ctx context.Context) (*models.DashboardView, error)
	Analytics(ctx context.Context) (*models.AnalyticsView, error)
}

type dashboardServiceImpl struct {
	api    FlightAPI
	logger *zap.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(api FlightAPI, logger *zap.Logger) DashboardService {
	return &dashboardServiceImpl{api: api, logger: logger}
}

// Dashboard fetches stats and the bookings trend together. Any failure
// fails the whole view.
func (s *dashboardServiceImpl) Dashboard(ctx context.Context) (*models.DashboardView, error) {
	view := &models.DashboardView{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.api.DashboardStats(gctx)
		if err != nil {
			return err
		}
		view.Stats = *stats
		return nil
	})
	g.Go(func() error {
		trend, err := s.api.BookingsTrend(gctx)
		if err != nil {
			return err
		}
		view.Trend = trend
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *dashboardServiceImpl) Analytics(ctx context.Context) (*models.AnalyticsView, error) {
	view := &models.AnalyticsView{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		trend, err := s.api.BookingsTrend(gctx)
		if err != nil {
			return err
		}
		view.Trend = trend
		return nil
	})
	g.Go(func() error {
		routes, err := s.api.TopRoutes(gctx)
		if err != nil {
			return err
		}
		view.Routes = routes
		return nil
	})
	g.Go(func() error {
		airlines, err := s.api.AirlineStats(gctx)
		if err != nil {
			return err
		}
		view.Airlines = airlines
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}
