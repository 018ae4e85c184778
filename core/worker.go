package core

import "time"

// Worker is a unit of scheduled work. Ready is consulted on every tick; a
// worker that is not ready skips that tick.
type Worker interface {
	Name() string
	Schedule() string
	Ready(now time.Time) bool
	Execute()
}
