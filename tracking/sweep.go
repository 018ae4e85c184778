package tracking

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"package-tracker-service/tracking/models"
)

// SweepDelayed marks every overdue package as delayed and returns how many
// changed. Delivered and already delayed packages are never touched.
func (s *Store) SweepDelayed(now time.Time) int {
	s.mu.Lock()
	var changed []models.Package
	for _, p := range s.packages {
		if !p.Overdue(now) {
			continue
		}
		if pkg, ok := s.setStatusLocked(p.ID, models.StatusDelayed); ok {
			changed = append(changed, pkg)
		}
	}
	s.mu.Unlock()

	for _, p := range changed {
		s.logger.Debug("Package marked as delayed",
			zap.String("package_id", p.ID),
			zap.String("tracking_number", p.TrackingNumber),
			zap.Time("estimated_delivery", p.EstimatedDelivery),
		)
		s.notifier.Success(fmt.Sprintf("Package status updated to %s", models.StatusDelayed))
	}
	if len(changed) > 0 {
		s.notifier.Warning(fmt.Sprintf("%d package(s) marked as delayed", len(changed)))
	}
	return len(changed)
}
