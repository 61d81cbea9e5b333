package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTireScrapped rejects lifecycle movements on a scrapped tire.
	// Scrapped is terminal: nothing transitions out of it.
	ErrTireScrapped = errors.New("tire is scrapped and accepts no further movements")
)

// ValidationError is a user-correctable rejection raised before any store
// access (missing required field, unknown movement type, position outside
// the vehicle's layout).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// PositionOccupiedError rejects a Mount onto a slot that already holds a
// mounted tire. The occupant's fire number is carried so the operator can
// be told which tire to dismount first; the engine never evicts silently.
type PositionOccupiedError struct {
	VehicleID          string
	Position           TirePosition
	OccupantTireID     string
	OccupantFireNumber string
}

func (e *PositionOccupiedError) Error() string {
	return fmt.Sprintf("position %s on vehicle %s is occupied by tire %s",
		e.Position, e.VehicleID, e.OccupantFireNumber)
}
