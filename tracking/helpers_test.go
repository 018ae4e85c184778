package tracking

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"package-tracker-service/tracking/models"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type seqIDs struct {
	n    int
	fail error
	// trackingNumbers, when set, is handed out before falling back to the counter.
	trackingNumbers []string
}

func (g *seqIDs) NewID() (string, error) {
	if g.fail != nil {
		return "", g.fail
	}
	g.n++
	return fmt.Sprintf("id-%d", g.n), nil
}

func (g *seqIDs) NewTrackingNumber() (string, error) {
	if len(g.trackingNumbers) > 0 {
		tn := g.trackingNumbers[0]
		g.trackingNumbers = g.trackingNumbers[1:]
		return tn, nil
	}
	g.n++
	return fmt.Sprintf("PKT%07d", g.n), nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	success  []string
	warnings []string
	errors   []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.success = append(n.success, msg)
}

func (n *recordingNotifier) Warning(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warnings = append(n.warnings, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *recordingNotifier, *seqIDs) {
	t.Helper()
	notifier := &recordingNotifier{}
	ids := &seqIDs{}
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(ids),
		WithNotifier(notifier),
	}
	return NewStore(zaptest.NewLogger(t), append(base, opts...)...), notifier, ids
}

func draft(tn string, status models.PackageStatus, eta time.Time) models.PackageDraft {
	return models.PackageDraft{
		TrackingNumber:    tn,
		CustomerName:      "Ada Lovelace",
		CustomerEmail:     "ada@example.com",
		Origin:            "London",
		Destination:       "Paris",
		Status:            status,
		EstimatedDelivery: eta,
		Weight:            1.5,
		Description:       "books",
	}
}
