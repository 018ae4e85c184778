package dto

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CourierRequest struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Status          string    `json:"status"`
	CurrentLocation *Location `json:"current_location"`
	Area            string    `json:"area"`
	VehicleType     string    `json:"vehicle_type"`
}

type CourierResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Status           string    `json:"status"`
	CurrentLocation  *Location `json:"current_location,omitempty"`
	AssignedPackages []string  `json:"assigned_packages"`
	Area             string    `json:"area,omitempty"`
	VehicleType      string    `json:"vehicle_type,omitempty"`
}

type ListCouriersResponse struct {
	Couriers []CourierResponse `json:"couriers"`
}
