package models

type DeliveryStats struct {
	TotalDeliveries  int
	OnTimeRate       float64
	SatisfactionRate float64
	StatusBreakdown  map[PackageStatus]int
}
