package calendar

import "errors"

var (
	// ErrMonthViewNotImplemented returned when the month view is requested
	ErrMonthViewNotImplemented = errors.New("calendar: month view not implemented")

	// ErrUnknownView returned for a view name other than week or month
	ErrUnknownView = errors.New("calendar: unknown view")

	// ErrInvalidBooking returned when a seed booking points outside the grid
	ErrInvalidBooking = errors.New("calendar: invalid existing booking")
)
