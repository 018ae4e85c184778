package models

import "time"

// Package is a shipment tracked by the store.
// CourierID is empty while no courier is assigned.
type Package struct {
	ID                string
	TrackingNumber    string
	CustomerName      string
	CustomerEmail     string
	Origin            string
	Destination       string
	Status            PackageStatus
	EstimatedDelivery time.Time
	Weight            float64
	Description       string
	CourierID         string
	Priority          Priority
	CreatedAt         time.Time
}

// PackageDraft holds the caller-supplied fields of a new package.
// An empty TrackingNumber is generated by the store. Couriers are attached
// afterwards through Store.AssignCourier.
type PackageDraft struct {
	TrackingNumber    string
	CustomerName      string
	CustomerEmail     string
	Origin            string
	Destination       string
	Status            PackageStatus
	EstimatedDelivery time.Time
	Weight            float64
	Description       string
	Priority          Priority
}

// NewPackage builds a Package from the draft with the given identity.
func NewPackage(d PackageDraft, id string, createdAt time.Time) Package {
	return Package{
		ID:                id,
		TrackingNumber:    d.TrackingNumber,
		CustomerName:      d.CustomerName,
		CustomerEmail:     d.CustomerEmail,
		Origin:            d.Origin,
		Destination:       d.Destination,
		Status:            d.Status,
		EstimatedDelivery: d.EstimatedDelivery,
		Weight:            d.Weight,
		Description:       d.Description,
		Priority:          d.Priority,
		CreatedAt:         createdAt,
	}
}

// Overdue reports whether the estimated delivery has passed at now while the
// package is neither delivered nor already delayed.
func (p Package) Overdue(now time.Time) bool {
	if p.EstimatedDelivery.IsZero() {
		return false
	}
	if p.Status == StatusDelivered || p.Status == StatusDelayed {
		return false
	}
	return p.EstimatedDelivery.Before(now)
}
