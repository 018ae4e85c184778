package models

import "time"

// Severity tags an activity entry.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// Activity is an audit-trail entry. Package holds the related tracking number.
type Activity struct {
	ID      string
	Action  string
	Package string
	Time    time.Time
	Type    Severity
}

// StatusSeverity maps a status change to the severity of its activity entry.
func StatusSeverity(s PackageStatus) Severity {
	switch s {
	case StatusDelivered:
		return SeveritySuccess
	case StatusDelayed:
		return SeverityError
	default:
		return SeverityInfo
	}
}
