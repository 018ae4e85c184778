package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus        = errors.New("invalid package status")
	ErrInvalidCourierStatus = errors.New("invalid courier status")
	ErrInvalidPriority      = errors.New("invalid priority")
)

// PackageStatus is the delivery state of a package. Any status may follow any other.
type PackageStatus string

const (
	StatusPending   PackageStatus = "pending"
	StatusInTransit PackageStatus = "in_transit"
	StatusDelivered PackageStatus = "delivered"
	StatusDelayed   PackageStatus = "delayed"
)

// PackageStatuses lists every status in display order.
var PackageStatuses = []PackageStatus{StatusPending, StatusInTransit, StatusDelivered, StatusDelayed}

func ParsePackageStatus(s string) (PackageStatus, error) {
	switch st := PackageStatus(s); st {
	case StatusPending, StatusInTransit, StatusDelivered, StatusDelayed:
		return st, nil
	}
	return "", fmt.Errorf("parse package status %q: %w", s, ErrInvalidStatus)
}

func (s PackageStatus) String() string {
	return string(s)
}

// Active reports whether the package still awaits delivery work.
func (s PackageStatus) Active() bool {
	return s == StatusPending || s == StatusInTransit
}

type CourierStatus string

const (
	CourierActive   CourierStatus = "active"
	CourierInactive CourierStatus = "inactive"
	CourierOnLeave  CourierStatus = "on_leave"
)

func ParseCourierStatus(s string) (CourierStatus, error) {
	switch st := CourierStatus(s); st {
	case CourierActive, CourierInactive, CourierOnLeave:
		return st, nil
	}
	return "", fmt.Errorf("parse courier status %q: %w", s, ErrInvalidCourierStatus)
}

func (s CourierStatus) String() string {
	return string(s)
}

type Priority string

const (
	PriorityNone   Priority = ""
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority accepts the empty string as "no priority".
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(s); p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return "", fmt.Errorf("parse priority %q: %w", s, ErrInvalidPriority)
}
