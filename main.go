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

	"go.uber.org/zap"

	"package-tracker-service/api"
	"package-tracker-service/config"
	"package-tracker-service/core"
	"package-tracker-service/tracking"
	"package-tracker-service/workers/delays"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := core.NewLogger(*cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	store := tracking.NewStore(logger,
		tracking.WithActivityLimit(cfg.ActivityLimit),
		tracking.WithSatisfactionRate(cfg.SatisfactionRate),
	)

	sweeper := delays.NewWorker(logger, store, cfg.DelaySweepSchedule)
	orchestrator := core.NewOrchestrator(logger, []core.Worker{sweeper})

	c, err := orchestrator.Start()
	if err != nil {
		logger.Fatal("Failed to start orchestrator", zap.Error(err))
	}

	// Entering admin mode runs the first sweep right away instead of waiting a tick.
	router := api.NewRouter(logger, store, sweeper.Trigger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for termination signal to exit gracefully
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	stopped := make(chan struct{})
	go func() {
		<-c.Stop().Done()
		sweeper.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		logger.Warn("Timed out waiting for running workers")
	}
}
