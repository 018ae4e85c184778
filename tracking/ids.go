package tracking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produces entity identifiers and customer-facing tracking numbers.
type IDGenerator interface {
	NewID() (string, error)
	NewTrackingNumber() (string, error)
}

// UUIDGenerator draws identifiers from random (v4) UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}

// NewTrackingNumber returns "PKT" followed by ten upper-case hex digits.
func (UUIDGenerator) NewTrackingNumber() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate tracking number: %w", err)
	}
	hex := strings.ReplaceAll(id.String(), "-", "")
	return "PKT" + strings.ToUpper(hex[:10]), nil
}
