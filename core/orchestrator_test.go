package core

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeWorker struct {
	schedule string
	ready    atomic.Bool
	runs     atomic.Int32
}

func (w *fakeWorker) Name() string         { return "fake" }
func (w *fakeWorker) Schedule() string     { return w.schedule }
func (w *fakeWorker) Ready(time.Time) bool { return w.ready.Load() }
func (w *fakeWorker) Execute()             { w.runs.Add(1) }

func TestOrchestratorRejectsInvalidSchedule(t *testing.T) {
	o := NewOrchestrator(zaptest.NewLogger(t), []Worker{&fakeWorker{schedule: "every tuesday"}})

	c, err := o.Start()
	require.Error(t, err)
	require.Nil(t, c)
	require.Contains(t, err.Error(), "schedule worker fake")
}

func TestOrchestratorRunsReadyWorkers(t *testing.T) {
	w := &fakeWorker{schedule: "@every 1s"}
	w.ready.Store(true)

	c, err := NewOrchestrator(zaptest.NewLogger(t), []Worker{w}).Start()
	require.NoError(t, err)
	t.Cleanup(func() { <-c.Stop().Done() })

	require.Eventually(t, func() bool { return w.runs.Load() > 0 }, 5*time.Second, 50*time.Millisecond)
}

func TestOrchestratorSkipsWorkersThatAreNotReady(t *testing.T) {
	w := &fakeWorker{schedule: "@every 1s"}

	c, err := NewOrchestrator(zaptest.NewLogger(t), []Worker{w}).Start()
	require.NoError(t, err)

	time.Sleep(2500 * time.Millisecond)
	<-c.Stop().Done()
	require.Zero(t, w.runs.Load())
}
