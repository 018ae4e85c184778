package tracking

import "package-tracker-service/tracking/models"

// DeliveryStats is computed on every call. A delivered package counts as on
// time while its estimated delivery is still in the future.
func (s *Store) DeliveryStats() models.DeliveryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	breakdown := make(map[models.PackageStatus]int, len(models.PackageStatuses))
	for _, st := range models.PackageStatuses {
		breakdown[st] = 0
	}

	delivered, onTime := 0, 0
	for _, p := range s.packages {
		breakdown[p.Status]++
		if p.Status != models.StatusDelivered {
			continue
		}
		delivered++
		if now.Before(p.EstimatedDelivery) {
			onTime++
		}
	}

	rate := 0.0
	if delivered > 0 {
		rate = float64(onTime) / float64(delivered) * 100
	}

	return models.DeliveryStats{
		TotalDeliveries:  len(s.packages),
		OnTimeRate:       rate,
		SatisfactionRate: s.satisfactionRate,
		StatusBreakdown:  breakdown,
	}
}
