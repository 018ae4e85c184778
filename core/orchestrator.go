package core

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Orchestrator struct {
	logger  *zap.Logger
	workers []Worker
}

func NewOrchestrator(logger *zap.Logger, workers []Worker) *Orchestrator {
	return &Orchestrator{logger: logger, workers: workers}
}

// Start registers every worker on a new cron scheduler and starts it.
// Callers stop the returned scheduler and wait on the context from Stop.
func (o *Orchestrator) Start() (*cron.Cron, error) {
	c := cron.New()

	for _, worker := range o.workers {
		_, err := c.AddFunc(worker.Schedule(), func() {
			if !worker.Ready(time.Now()) {
				o.logger.Debug("Worker not ready, skipping tick", zap.String("worker", worker.Name()))
				return
			}
			worker.Execute()
		})
		if err != nil {
			o.logger.Error("Error adding cron job",
				zap.String("worker", worker.Name()),
				zap.String("schedule", worker.Schedule()),
				zap.Error(err),
			)
			return nil, fmt.Errorf("schedule worker %s: %w", worker.Name(), err)
		}
		o.logger.Info("Worker scheduled",
			zap.String("worker", worker.Name()),
			zap.String("schedule", worker.Schedule()),
		)
	}

	c.Start()
	return c, nil
}
