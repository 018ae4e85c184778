package dto

import "time"

type PackageRequest struct {
	TrackingNumber    string  `json:"tracking_number"`
	CustomerName      string  `json:"customer_name"`
	CustomerEmail     string  `json:"customer_email"`
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	Status            string  `json:"status"`
	EstimatedDelivery string  `json:"estimated_delivery"`
	Weight            float64 `json:"weight"`
	Description       string  `json:"description"`
	Priority          string  `json:"priority"`
}

type PackageResponse struct {
	ID                string    `json:"id"`
	TrackingNumber    string    `json:"tracking_number"`
	CustomerName      string    `json:"customer_name"`
	CustomerEmail     string    `json:"customer_email"`
	Origin            string    `json:"origin"`
	Destination       string    `json:"destination"`
	Status            string    `json:"status"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
	Weight            float64   `json:"weight"`
	Description       string    `json:"description"`
	CourierID         string    `json:"courier_id,omitempty"`
	Priority          string    `json:"priority,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type ListPackagesResponse struct {
	Packages []PackageResponse `json:"packages"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type BulkStatusRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

type BulkStatusResponse struct {
	Updated int `json:"updated"`
}

type AssignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

// TrackingResponse is the customer-facing view of a package.
type TrackingResponse struct {
	TrackingNumber    string    `json:"tracking_number"`
	Status            string    `json:"status"`
	Origin            string    `json:"origin"`
	Destination       string    `json:"destination"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
	Weight            float64   `json:"weight"`
	Description       string    `json:"description"`
	CourierName       string    `json:"courier_name,omitempty"`
	Delayed           bool      `json:"delayed"`
}
