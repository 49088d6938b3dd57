package domain

import (
	"time"

	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

// ExistingBooking seed entry marking a grid cell as taken by someone else
type ExistingBooking struct {
	DayIndex int
	Time     types.TimeString
	Occupant string
}

// BookingDraft in-progress selection held by the booking flow
type BookingDraft struct {
	Resource    *Resource
	Date        time.Time
	Slot        *TimeSlot
	Description string
}

// IsComplete returns true if the draft can be turned into a reservation
func (d *BookingDraft) IsComplete() bool {
	return d.Resource != nil && d.Slot != nil && !d.Date.IsZero()
}

// Clone returns a deep copy so callers cannot mutate the flow's state
func (d BookingDraft) Clone() BookingDraft {
	out := BookingDraft{Date: d.Date, Description: d.Description}
	if d.Resource != nil {
		r := *d.Resource
		out.Resource = &r
	}
	if d.Slot != nil {
		s := *d.Slot
		out.Slot = &s
	}
	return out
}
