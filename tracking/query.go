package tracking

import (
	"cmp"
	"slices"
	"strings"

	"package-tracker-service/tracking/models"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type PackageSortKey string

const (
	SortByCreatedAt         PackageSortKey = "created_at"
	SortByTrackingNumber    PackageSortKey = "tracking_number"
	SortByCustomerName      PackageSortKey = "customer_name"
	SortByDestination       PackageSortKey = "destination"
	SortByStatus            PackageSortKey = "status"
	SortByEstimatedDelivery PackageSortKey = "estimated_delivery"
	SortByWeight            PackageSortKey = "weight"
)

// PackageQuery filters the package listing. Zero values mean: no search, all
// statuses, newest first.
type PackageQuery struct {
	Search    string
	Status    models.PackageStatus
	SortBy    PackageSortKey
	Direction SortDirection
}

type CourierSortKey string

const (
	SortCouriersByName   CourierSortKey = "name"
	SortCouriersByEmail  CourierSortKey = "email"
	SortCouriersByStatus CourierSortKey = "status"
	SortCouriersByArea   CourierSortKey = "area"
)

// CourierQuery filters the courier listing. Zero values sort by name ascending.
type CourierQuery struct {
	Search    string
	Status    models.CourierStatus
	SortBy    CourierSortKey
	Direction SortDirection
}

// ActivePackages returns the pending and in-transit packages.
func (s *Store) ActivePackages() []models.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Package, 0, len(s.packages))
	for _, p := range s.packages {
		if p.Status.Active() {
			out = append(out, p)
		}
	}
	return out
}

// FilterPackages matches the search term case-insensitively against tracking
// number, customer name and email, origin and destination.
func (s *Store) FilterPackages(q PackageQuery) []models.Package {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	s.mu.RLock()
	out := make([]models.Package, 0, len(s.packages))
	for _, p := range s.packages {
		if q.Status != "" && p.Status != q.Status {
			continue
		}
		if term != "" && !containsAny(term,
			p.TrackingNumber, p.CustomerName, p.CustomerEmail, p.Origin, p.Destination) {
			continue
		}
		out = append(out, p)
	}
	s.mu.RUnlock()

	dir := q.Direction
	if q.SortBy == "" {
		q.SortBy = SortByCreatedAt
		if dir == "" {
			dir = SortDesc
		}
	}
	slices.SortStableFunc(out, func(a, b models.Package) int {
		return directed(dir, comparePackages(q.SortBy, a, b))
	})
	return out
}

func comparePackages(key PackageSortKey, a, b models.Package) int {
	switch key {
	case SortByTrackingNumber:
		return cmp.Compare(a.TrackingNumber, b.TrackingNumber)
	case SortByCustomerName:
		return cmp.Compare(a.CustomerName, b.CustomerName)
	case SortByDestination:
		return cmp.Compare(a.Destination, b.Destination)
	case SortByStatus:
		return cmp.Compare(a.Status, b.Status)
	case SortByEstimatedDelivery:
		return a.EstimatedDelivery.Compare(b.EstimatedDelivery)
	case SortByWeight:
		return cmp.Compare(a.Weight, b.Weight)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

// FilterCouriers matches the search term against name, email and area
// (case-insensitive) and phone (verbatim).
func (s *Store) FilterCouriers(q CourierQuery) []models.Courier {
	raw := strings.TrimSpace(q.Search)
	term := strings.ToLower(raw)

	s.mu.RLock()
	out := make([]models.Courier, 0, len(s.couriers))
	for _, c := range s.couriers {
		if q.Status != "" && c.Status != q.Status {
			continue
		}
		if term != "" && !containsAny(term, c.Name, c.Email, c.Area) && !strings.Contains(c.Phone, raw) {
			continue
		}
		out = append(out, c.Clone())
	}
	s.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b models.Courier) int {
		return directed(q.Direction, compareCouriers(q.SortBy, a, b))
	})
	return out
}

func compareCouriers(key CourierSortKey, a, b models.Courier) int {
	switch key {
	case SortCouriersByEmail:
		return cmp.Compare(a.Email, b.Email)
	case SortCouriersByStatus:
		return cmp.Compare(a.Status, b.Status)
	case SortCouriersByArea:
		return cmp.Compare(a.Area, b.Area)
	default:
		return cmp.Compare(a.Name, b.Name)
	}
}

func directed(dir SortDirection, c int) int {
	if dir == SortDesc {
		return -c
	}
	return c
}

func containsAny(lowerTerm string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowerTerm) {
			return true
		}
	}
	return false
}
