package models

// Coordinates is a courier position. Values are stored as given.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Courier is a delivery agent. AssignedPackages holds package IDs only;
// the packages themselves are owned by the package list.
type Courier struct {
	ID               string
	Name             string
	Email            string
	Phone            string
	Status           CourierStatus
	CurrentLocation  *Coordinates
	AssignedPackages []string
	Area             string
	VehicleType      string
}

type CourierDraft struct {
	Name            string
	Email           string
	Phone           string
	Status          CourierStatus
	CurrentLocation *Coordinates
	Area            string
	VehicleType     string
}

// Clone returns a copy that shares no memory with c.
func (c Courier) Clone() Courier {
	out := c
	if c.CurrentLocation != nil {
		loc := *c.CurrentLocation
		out.CurrentLocation = &loc
	}
	out.AssignedPackages = append([]string(nil), c.AssignedPackages...)
	if out.AssignedPackages == nil {
		out.AssignedPackages = []string{}
	}
	return out
}
