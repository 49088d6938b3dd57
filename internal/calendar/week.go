package calendar

import (
	"time"

	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

// Week seven consecutive days, index 0 is Monday
type Week [domain.DaysInWeek]time.Time

// WeekOf returns the Monday-first week containing date.
// A Sunday belongs to the week that started six days earlier.
// Time of day and location of date are kept on every element.
func WeekOf(date time.Time) Week {
	var offset int
	if dow := int(date.Weekday()); dow == 0 {
		offset = -6
	} else {
		offset = 1 - dow
	}

	monday := date.AddDate(0, 0, offset)

	var week Week
	for i := range week {
		week[i] = monday.AddDate(0, 0, i)
	}
	return week
}

// IsWeekend Saturday and Sunday columns
func IsWeekend(dayIndex int) bool {
	return dayIndex == 5 || dayIndex == 6
}

func validDay(dayIndex int) bool {
	return dayIndex >= 0 && dayIndex < domain.DaysInWeek
}

var timeLabels = buildTimeLabels()

func buildTimeLabels() []types.TimeString {
	first := types.MustTimeString(domain.FirstSlotTime)
	last := types.MustTimeString(domain.LastSlotTime)

	labels := make([]types.TimeString, 0, 17)
	for t := first; !t.IsAfter(last); {
		labels = append(labels, t)
		next, err := t.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		t = next
	}
	return labels
}

// TimeLabels returns the fixed row ticks 07:00..19:00 spaced 45 minutes apart
func TimeLabels() []types.TimeString {
	out := make([]types.TimeString, len(timeLabels))
	copy(out, timeLabels)
	return out
}

// IsTimeLabel reports whether t is one of the grid rows
func IsTimeLabel(t types.TimeString) bool {
	for _, label := range timeLabels {
		if label == t {
			return true
		}
	}
	return false
}
