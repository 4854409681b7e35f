package main

import (
	"KisaanPartner-Backend/src/config"
	"KisaanPartner-Backend/src/database"
	"KisaanPartner-Backend/src/jobs"
	"KisaanPartner-Backend/src/logger"
	"KisaanPartner-Backend/src/services/attendance"
	"KisaanPartner-Backend/src/services/labours"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		concurrency int
		noSchedule  bool
	)

	cmd := &cobra.Command{
		Use:           "worker",
		Short:         "Run the asynq worker that recounts labour present days",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), concurrency, !noSchedule)
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 5, "number of concurrent task handlers")
	cmd.Flags().BoolVar(&noSchedule, "no-schedule", false, "do not register the periodic full recount")
	return cmd
}

func run(ctx context.Context, concurrency int, schedule bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, _, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.RedisURI == "" {
		return errors.New("REDIS_URI environment variable not set")
	}

	log, err := logger.New(os.Stderr, "worker", cfg.LogLevel)
	if err != nil {
		return err
	}

	store, err := database.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	// worker ไม่ใช้ village cache
	labourService := labours.NewService(store.LabourCollection, nil, log)
	ledger := attendance.NewLedger(
		attendance.NewMongoAssignmentStore(store.AssignmentCollection),
		labourService,
		attendance.WithLogger(log),
	)

	redisOpt := asynq.RedisClientOpt{Addr: cfg.RedisURI}

	var scheduler *asynq.Scheduler
	if schedule {
		scheduler = asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{Logger: jobs.NewAsynqLogger(log)})
		task, err := jobs.NewReconcilePresentDaysTask("")
		if err != nil {
			return err
		}
		entryID, err := scheduler.Register(cfg.ReconcileCron, task, asynq.MaxRetry(3))
		if err != nil {
			return fmt.Errorf("register reconcile schedule %q: %w", cfg.ReconcileCron, err)
		}
		log.Info("✅ Periodic recount registered", "cron", cfg.ReconcileCron, "entry", entryID)
		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		defer scheduler.Shutdown()
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: concurrency,
		Logger:      jobs.NewAsynqLogger(log),
	})

	mux := asynq.NewServeMux()
	jobs.RegisterHandlers(mux, ledger, log)

	log.Info("🚀 Worker started", "concurrency", concurrency)
	return srv.Run(mux)
}
