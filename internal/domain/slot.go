package domain

import "github.com/m04kA/SMC-SpaceBooking/pkg/types"

// TimeSlot a chosen grid tick
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}

// Cell coordinates of a grid cell: DayIndex 0 is Monday, 6 is Sunday
type Cell struct {
	DayIndex int
	Time     types.TimeString
}

func (c Cell) Equal(other Cell) bool {
	return c.DayIndex == other.DayIndex && c.Time == other.Time
}
