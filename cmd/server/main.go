package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/cx-tal-miterani/flightsim-portal/internal/config"
	"github.com/cx-tal-miterani/flightsim-portal/internal/database"
	"github.com/cx-tal-miterani/flightsim-portal/internal/flightapi"
	"github.com/cx-tal-miterani/flightsim-portal/internal/handlers"
	"github.com/cx-tal-miterani/flightsim-portal/internal/handoff"
	"github.com/cx-tal-miterani/flightsim-portal/internal/identity"
	"github.com/cx-tal-miterani/flightsim-portal/internal/jobs"
	"github.com/cx-tal-miterani/flightsim-portal/internal/logger"
	"github.com/cx-tal-miterani/flightsim-portal/internal/router"
	"github.com/cx-tal-miterani/flightsim-portal/internal/service"
	"github.com/cx-tal-miterani/flightsim-portal/internal/session"
	"github.com/cx-tal-miterani/flightsim-portal/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// FlightSim API client
	httpClient := &http.Client{Timeout: cfg.FlightAPITimeout}
	api := flightapi.NewClient(cfg.FlightAPIURL, httpClient, zl.Named("flightapi"))

	// Connect to Temporal
	zl.Info("connecting to Temporal", zap.String("host", cfg.TemporalHost))
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.TemporalNamespace,
	})
	if err != nil {
		zl.Fatal("failed to create Temporal client", zap.Error(err))
	}
	defer temporalClient.Close()

	// Database is optional: it backs local accounts and postgres sessions
	var repo *database.Repository
	if cfg.DatabaseURL != "" {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			zl.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()
		if err := database.EnsureSchema(ctx, pool); err != nil {
			zl.Fatal("failed to apply schema", zap.Error(err))
		}
		repo = database.NewRepository(pool)
		zl.Info("connected to database")
	}

	store, closeStore := sessionStore(cfg, repo, zl)
	defer closeStore()
	sessions := session.NewManager(store, cfg.SessionTTL, zl.Named("session"))

	// Identity providers; an unconfigured provider stays a nil interface
	var local service.PasswordAuthenticator
	if repo != nil {
		local = identity.NewLocalProvider(repo)
	} else {
		zl.Warn("DATABASE_URL not set, email sign-in is disabled")
	}
	var google service.TokenAuthenticator
	if cfg.GoogleSignInEnabled() {
		gp, err := identity.NewFirebaseProvider(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile)
		if err != nil {
			zl.Fatal("failed to initialise Firebase", zap.Error(err))
		}
		google = gp
	}

	secret := cfg.HandoffSecret
	if secret == "" {
		secret = uuid.NewString()
		zl.Warn("HANDOFF_SECRET not set, using a per-process secret")
	}
	carrier := handoff.NewCarrier(secret, cfg.HandoffTTL)

	// Initialize services
	tracker := service.NewTemporalTracker(temporalClient, cfg.TemporalTaskQueue)
	flightService := service.NewFlightService(api, carrier, zl.Named("flights"))
	bookingService := service.NewBookingService(api, carrier, tracker, zl.Named("bookings"))
	dashboardService := service.NewDashboardService(api, zl.Named("dashboard"))
	authService := service.NewAuthService(local, google, sessions, zl.Named("auth"))

	// Live dashboard feed
	hub := websocket.NewHub(zl.Named("ws"), cfg.CORSOrigins)
	go hub.Run(ctx)

	scheduler := jobs.NewScheduler(zl.Named("jobs"))
	if err := scheduler.AddDashboardRefresh(cfg.DashboardRefresh, dashboardService, hub); err != nil {
		zl.Fatal("failed to schedule jobs", zap.Error(err))
	}
	if sweeper, ok := store.(jobs.Sweeper); ok {
		if err := scheduler.AddSessionSweep(cfg.SessionSweep, sweeper); err != nil {
			zl.Fatal("failed to schedule jobs", zap.Error(err))
		}
	}
	scheduler.Start()

	h := handlers.NewHandler(flightService, bookingService, dashboardService, authService, hub, zl.Named("http")).
		WithSecureCookies(cfg.IsProduction())

	r := router.SetupRouter(h, router.Options{
		CORSOrigins:       cfg.CORSOrigins,
		MaxRequestsPerMin: cfg.MaxRequestsPerMin,
		Sessions:          authService,
		Logger:            zl.Named("http"),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zl.Info("portal server starting", zap.String("port", cfg.APIPort), zap.String("flight_api", cfg.FlightAPIURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	scheduler.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	zl.Info("server stopped")
}

func sessionStore(cfg *config.Config, repo *database.Repository, zl *zap.Logger) (session.Store, func()) {
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisSessionDB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			zl.Fatal("failed to connect to redis", zap.Error(err))
		}
		zl.Info("sessions stored in redis", zap.String("addr", cfg.RedisAddr))
		return session.NewRedisStore(rdb), func() { rdb.Close() }
	case config.SessionStorePostgres:
		if repo == nil {
			zl.Fatal("postgres session store needs DATABASE_URL")
		}
		zl.Info("sessions stored in postgres")
		return session.NewPostgresStore(repo), func() {}
	default:
		zl.Info("sessions stored in memory")
		return session.NewMemoryStore(), func() {}
	}
}
