package main

import (
	"log"
	"net/http"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/cx-tal-miterani/flightsim-portal/internal/activities"
	"github.com/cx-tal-miterani/flightsim-portal/internal/config"
	"github.com/cx-tal-miterani/flightsim-portal/internal/flightapi"
	"github.com/cx-tal-miterani/flightsim-portal/internal/logger"
	"github.com/cx-tal-miterani/flightsim-portal/internal/models"
	"github.com/cx-tal-miterani/flightsim-portal/internal/workflows"
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

	api := flightapi.NewClient(cfg.FlightAPIURL, &http.Client{Timeout: cfg.FlightAPITimeout}, zl.Named("flightapi"))

	// Connect to Temporal
	zl.Info("connecting to Temporal", zap.String("host", cfg.TemporalHost))
	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.TemporalNamespace,
	})
	if err != nil {
		zl.Fatal("failed to connect to Temporal", zap.Error(err))
	}
	defer c.Close()

	taskQueue := cfg.TemporalTaskQueue
	if taskQueue == "" {
		taskQueue = models.JourneyTaskQueue
	}
	w := worker.New(c, taskQueue, worker.Options{})

	w.RegisterWorkflowWithOptions(workflows.JourneyWorkflow, workflow.RegisterOptions{Name: models.JourneyWorkflowName})

	acts := activities.NewActivities(api)
	w.RegisterActivityWithOptions(acts.SendTicket, activity.RegisterOptions{Name: activities.SendTicketName})

	zl.Info("starting journey worker", zap.String("task_queue", taskQueue))
	if err := w.Run(worker.InterruptCh()); err != nil {
		zl.Fatal("worker failed", zap.Error(err))
	}
}
