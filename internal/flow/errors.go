package flow

import (
	"errors"
	"fmt"
)

// ErrGuardRejected base error for every rejected transition.
// A rejected transition never changes the controller state.
var ErrGuardRejected = errors.New("flow: transition rejected")

var (
	// ErrWrongState returned when the transition is not valid from the current state
	ErrWrongState = fmt.Errorf("%w: not allowed in current state", ErrGuardRejected)

	// ErrUnknownResource returned when the resource id is not in the catalog
	ErrUnknownResource = fmt.Errorf("%w: unknown resource", ErrGuardRejected)

	// ErrCellNotSelectable returned for weekend, booked or off-grid cells
	ErrCellNotSelectable = fmt.Errorf("%w: cell is not selectable", ErrGuardRejected)

	// ErrInvalidDate returned when the reference date is not set
	ErrInvalidDate = fmt.Errorf("%w: invalid reference date", ErrGuardRejected)

	// ErrConfirmGuard returned when the name is blank or the description is too short
	ErrConfirmGuard = fmt.Errorf("%w: confirmation form is incomplete", ErrGuardRejected)
)

// ErrStoreFailed returned when the reservation sink could not accept the draft
var ErrStoreFailed = errors.New("flow: failed to store reservation")
