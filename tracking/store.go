package tracking

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"package-tracker-service/tracking/models"
)

const (
	DefaultSatisfactionRate = 97

	// maxTrackingNumberAttempts bounds regeneration when a generated tracking
	// number is already taken.
	maxTrackingNumberAttempts = 8
)

var (
	ErrTrackingNumberExhausted = errors.New("could not generate an unused tracking number")
	ErrTrackingNumberTaken     = errors.New("tracking number already in use")
)

// Store is the single source of truth for packages, couriers, the activity log
// and the admin-mode flag. Read accessors return copies.
type Store struct {
	logger           *zap.Logger
	notifier         Notifier
	ids              IDGenerator
	now              func() time.Time
	satisfactionRate float64

	mu         sync.RWMutex
	isAdmin    bool
	packages   []models.Package
	couriers   []models.Courier
	activities *ActivityLog
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithActivityLimit(limit int) Option {
	return func(s *Store) { s.activities = NewActivityLog(limit) }
}

func WithSatisfactionRate(rate float64) Option {
	return func(s *Store) { s.satisfactionRate = rate }
}

// NewStore creates an empty store. Notifications go to the logger unless
// WithNotifier overrides them.
func NewStore(logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		logger:           logger,
		ids:              UUIDGenerator{},
		now:              time.Now,
		satisfactionRate: DefaultSatisfactionRate,
		activities:       NewActivityLog(DefaultActivityLimit),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = NewLogNotifier(logger)
	}
	return s
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAdmin
}

// ToggleAdminMode flips the admin flag and returns its new value.
func (s *Store) ToggleAdminMode() bool {
	s.mu.Lock()
	s.isAdmin = !s.isAdmin
	on := s.isAdmin
	s.mu.Unlock()

	if on {
		s.notifier.Success("Entered admin mode")
	} else {
		s.notifier.Success("Exited admin mode")
	}
	return on
}

func (s *Store) Packages() []models.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.packages)
}

func (s *Store) Couriers() []models.Courier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Courier, 0, len(s.couriers))
	for _, c := range s.couriers {
		out = append(out, c.Clone())
	}
	return out
}

func (s *Store) Activities() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activities.List()
}

func (s *Store) Package(id string) (models.Package, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.packageIndexLocked(id); i >= 0 {
		return s.packages[i], true
	}
	return models.Package{}, false
}

func (s *Store) Courier(id string) (models.Courier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.courierIndexLocked(id); i >= 0 {
		return s.couriers[i].Clone(), true
	}
	return models.Courier{}, false
}

// PackageByTrackingNumber returns the first package carrying code.
func (s *Store) PackageByTrackingNumber(code string) (models.Package, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.packages {
		if p.TrackingNumber == code {
			return p, true
		}
	}
	return models.Package{}, false
}

// AddPackage stores a new package built from draft. An empty status defaults
// to pending and an empty tracking number is generated. A supplied tracking
// number must not already be in use.
func (s *Store) AddPackage(draft models.PackageDraft) (models.Package, error) {
	pkg, err := s.addPackage(draft)
	if err != nil {
		s.logger.Error("Failed to add package", zap.Error(err))
		s.notifier.Error("Failed to add package")
		return models.Package{}, fmt.Errorf("add package: %w", err)
	}

	s.notifier.Success("Package added successfully")
	return pkg, nil
}

func (s *Store) addPackage(draft models.PackageDraft) (models.Package, error) {
	id, err := s.ids.NewID()
	if err != nil {
		return models.Package{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if draft.Status == "" {
		draft.Status = models.StatusPending
	} else if _, err := models.ParsePackageStatus(string(draft.Status)); err != nil {
		return models.Package{}, err
	}

	switch {
	case draft.TrackingNumber == "":
		tn, err := s.unusedTrackingNumberLocked()
		if err != nil {
			return models.Package{}, err
		}
		draft.TrackingNumber = tn
	case s.trackingNumberTakenLocked(draft.TrackingNumber):
		return models.Package{}, fmt.Errorf("%w: %s", ErrTrackingNumberTaken, draft.TrackingNumber)
	}

	now := s.now()
	pkg := models.NewPackage(draft, id, now)
	s.packages = append(s.packages, pkg)
	s.activities.Add("New package created", pkg.TrackingNumber, models.SeveritySuccess, now)
	return pkg, nil
}

func (s *Store) unusedTrackingNumberLocked() (string, error) {
	for range maxTrackingNumberAttempts {
		tn, err := s.ids.NewTrackingNumber()
		if err != nil {
			return "", err
		}
		if !s.trackingNumberTakenLocked(tn) {
			return tn, nil
		}
	}
	return "", ErrTrackingNumberExhausted
}

func (s *Store) trackingNumberTakenLocked(tn string) bool {
	for _, p := range s.packages {
		if p.TrackingNumber == tn {
			return true
		}
	}
	return false
}

// UpdatePackageStatus sets the status of package id. An unknown id changes
// nothing and records no activity. The activity entry is derived from the
// updated package.
func (s *Store) UpdatePackageStatus(id string, status models.PackageStatus) error {
	if _, err := models.ParsePackageStatus(string(status)); err != nil {
		return fmt.Errorf("update package status: %w", err)
	}

	s.mu.Lock()
	s.setStatusLocked(id, status)
	s.mu.Unlock()

	s.notifier.Success(fmt.Sprintf("Package status updated to %s", status))
	return nil
}

// BulkUpdateStatus applies UpdatePackageStatus to every id and returns how
// many packages matched.
func (s *Store) BulkUpdateStatus(ids []string, status models.PackageStatus) (int, error) {
	if _, err := models.ParsePackageStatus(string(status)); err != nil {
		return 0, fmt.Errorf("bulk update status: %w", err)
	}

	s.mu.Lock()
	updated := 0
	for _, id := range ids {
		if _, ok := s.setStatusLocked(id, status); ok {
			updated++
		}
	}
	s.mu.Unlock()

	s.notifier.Success(fmt.Sprintf("Updated %d packages to %s", updated, status))
	return updated, nil
}

func (s *Store) setStatusLocked(id string, status models.PackageStatus) (models.Package, bool) {
	i := s.packageIndexLocked(id)
	if i < 0 {
		return models.Package{}, false
	}

	s.packages[i].Status = status
	pkg := s.packages[i]
	s.activities.Add("Package "+status.String(), pkg.TrackingNumber, models.StatusSeverity(status), s.now())
	return pkg, true
}

// AssignCourier links a package to a courier and forces it in transit.
// The courier's assignment list grows on every call; neither the courier's
// status nor existing assignments are checked.
func (s *Store) AssignCourier(packageID, courierID string) {
	s.mu.Lock()
	if i := s.packageIndexLocked(packageID); i >= 0 {
		s.packages[i].CourierID = courierID
		s.packages[i].Status = models.StatusInTransit
		s.activities.Add("Courier assigned", s.packages[i].TrackingNumber, models.SeverityInfo, s.now())
	}
	if j := s.courierIndexLocked(courierID); j >= 0 {
		s.couriers[j].AssignedPackages = append(s.couriers[j].AssignedPackages, packageID)
	}
	s.mu.Unlock()

	s.notifier.Success("Courier assigned successfully")
}

// DeletePackage removes a package and drops it from every courier's
// assignment list.
func (s *Store) DeletePackage(id string) bool {
	s.mu.Lock()
	i := s.packageIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}

	pkg := s.packages[i]
	s.packages = slices.Delete(s.packages, i, i+1)
	for j := range s.couriers {
		s.couriers[j].AssignedPackages = slices.DeleteFunc(s.couriers[j].AssignedPackages, func(pid string) bool {
			return pid == id
		})
	}
	s.activities.Add("Package deleted", pkg.TrackingNumber, models.SeverityWarning, s.now())
	s.mu.Unlock()

	s.notifier.Success("Package deleted successfully")
	return true
}

// AddCourier stores a new courier with no assigned packages.
func (s *Store) AddCourier(draft models.CourierDraft) (models.Courier, error) {
	id, err := s.ids.NewID()
	if err != nil {
		s.logger.Error("Failed to add courier", zap.Error(err))
		s.notifier.Error("Failed to add courier")
		return models.Courier{}, fmt.Errorf("add courier: %w", err)
	}

	c := models.Courier{
		ID:               id,
		Name:             draft.Name,
		Email:            draft.Email,
		Phone:            draft.Phone,
		Status:           draft.Status,
		CurrentLocation:  draft.CurrentLocation,
		AssignedPackages: []string{},
		Area:             draft.Area,
		VehicleType:      draft.VehicleType,
	}
	c = c.Clone()

	s.mu.Lock()
	s.couriers = append(s.couriers, c)
	s.mu.Unlock()

	s.notifier.Success("Courier added successfully")
	return c.Clone(), nil
}

// UpdateCourier replaces the editable fields of a courier, keeping its
// identity and assignments.
func (s *Store) UpdateCourier(id string, draft models.CourierDraft) (models.Courier, bool) {
	s.mu.Lock()
	j := s.courierIndexLocked(id)
	if j < 0 {
		s.mu.Unlock()
		return models.Courier{}, false
	}

	c := &s.couriers[j]
	c.Name = draft.Name
	c.Email = draft.Email
	c.Phone = draft.Phone
	c.Status = draft.Status
	c.Area = draft.Area
	c.VehicleType = draft.VehicleType
	if draft.CurrentLocation != nil {
		loc := *draft.CurrentLocation
		c.CurrentLocation = &loc
	}
	out := c.Clone()
	s.mu.Unlock()

	s.notifier.Success("Courier updated successfully")
	return out, true
}

// DeleteCourier removes a courier and unassigns it from its packages.
// Package statuses are left as they are.
func (s *Store) DeleteCourier(id string) bool {
	s.mu.Lock()
	j := s.courierIndexLocked(id)
	if j < 0 {
		s.mu.Unlock()
		return false
	}

	s.couriers = slices.Delete(s.couriers, j, j+1)
	for i := range s.packages {
		if s.packages[i].CourierID == id {
			s.packages[i].CourierID = ""
		}
	}
	s.mu.Unlock()

	s.notifier.Success("Courier deleted successfully")
	return true
}

// UpdateCourierLocation replaces the courier's location. Coordinates are not
// range checked.
func (s *Store) UpdateCourierLocation(courierID string, coords models.Coordinates) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j := s.courierIndexLocked(courierID); j >= 0 {
		s.couriers[j].CurrentLocation = &coords
	}
}

func (s *Store) packageIndexLocked(id string) int {
	return slices.IndexFunc(s.packages, func(p models.Package) bool { return p.ID == id })
}

func (s *Store) courierIndexLocked(id string) int {
	return slices.IndexFunc(s.couriers, func(c models.Courier) bool { return c.ID == id })
}
