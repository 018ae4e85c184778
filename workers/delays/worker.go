package delays

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"package-tracker-service/tracking"
)

const DefaultSchedule = "@every 5m"

// Worker periodically moves overdue packages to delayed. It only runs while
// admin mode is on, mirroring the admin dashboard that owns the check.
type Worker struct {
	logger    *zap.Logger
	store     *tracking.Store
	schedule  string
	now       func() time.Time
	busy      atomic.Bool
	triggered sync.WaitGroup
}

func NewWorker(logger *zap.Logger, store *tracking.Store, schedule string) *Worker {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &Worker{
		logger:   logger.With(zap.String("worker", "delays")),
		store:    store,
		schedule: schedule,
		now:      time.Now,
	}
}

func (w *Worker) Name() string {
	return "delays"
}

func (w *Worker) Schedule() string {
	return w.schedule
}

func (w *Worker) Ready(time.Time) bool {
	return w.store.IsAdmin() && !w.busy.Load()
}

// Trigger starts a sweep outside the schedule. Wait blocks until every
// triggered sweep has returned.
func (w *Worker) Trigger() {
	w.triggered.Add(1)
	go func() {
		defer w.triggered.Done()
		w.Execute()
	}()
}

func (w *Worker) Wait() {
	w.triggered.Wait()
}

// Execute runs one sweep. Overlapping calls return immediately.
func (w *Worker) Execute() {
	if !w.busy.CompareAndSwap(false, true) {
		w.logger.Debug("Delay sweep already running")
		return
	}
	defer w.busy.Store(false)

	begin := time.Now()
	count := w.store.SweepDelayed(w.now())

	if count == 0 {
		w.logger.Info("Delay sweep completed, no overdue packages")
		return
	}
	w.logger.Info("Delay sweep completed",
		zap.Int("delayed", count),
		zap.Duration("took", time.Since(begin)),
	)
}
