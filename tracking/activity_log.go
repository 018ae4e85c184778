package tracking

import (
	"strconv"
	"time"

	"package-tracker-service/tracking/models"
)

const DefaultActivityLimit = 50

// ActivityLog keeps the most recent activities first and evicts the oldest
// entry once the limit is exceeded. It is not safe for concurrent use; the
// Store guards it.
type ActivityLog struct {
	limit   int
	seq     uint64
	entries []models.Activity
}

func NewActivityLog(limit int) *ActivityLog {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	return &ActivityLog{limit: limit, entries: make([]models.Activity, 0, limit)}
}

// Add records an activity at t and returns it. IDs come from a monotonic
// counter so entries recorded within the same instant stay distinct.
func (l *ActivityLog) Add(action, trackingNumber string, severity models.Severity, t time.Time) models.Activity {
	l.seq++
	a := models.Activity{
		ID:      "act-" + strconv.FormatUint(l.seq, 10),
		Action:  action,
		Package: trackingNumber,
		Time:    t,
		Type:    severity,
	}

	if len(l.entries) < l.limit {
		l.entries = append(l.entries, models.Activity{})
	}
	copy(l.entries[1:], l.entries)
	l.entries[0] = a
	return a
}

// List returns a copy, newest first.
func (l *ActivityLog) List() []models.Activity {
	out := make([]models.Activity, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *ActivityLog) Len() int { return len(l.entries) }

func (l *ActivityLog) Limit() int { return l.limit }
