package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

func seedBookings() []domain.ExistingBooking {
	return []domain.ExistingBooking{
		{DayIndex: 1, Time: types.MustTimeString("08:30"), Occupant: "Paula Yuri"},
		{DayIndex: 2, Time: types.MustTimeString("10:00"), Occupant: "Luane Andrade"},
		{DayIndex: 4, Time: types.MustTimeString("13:00"), Occupant: "Alice Pereira"},
		// Seeds on weekend columns are shadowed by the weekend state
		{DayIndex: 5, Time: types.MustTimeString("08:30"), Occupant: "Hidden"},
	}
}

func TestCellStateOf(t *testing.T) {
	week := WeekOf(date(t, "2025-01-15"))
	bookings := seedBookings()

	t0830 := types.MustTimeString("08:30")
	t1000 := types.MustTimeString("10:00")

	tests := []struct {
		name     string
		day      int
		label    types.TimeString
		selected *domain.Cell
		want     CellState
	}{
		{name: "free weekday", day: 0, label: t0830, want: CellState{Kind: CellAvailable}},
		{name: "booked", day: 1, label: t0830, want: CellState{Kind: CellBooked, Occupant: "Paula Yuri"}},
		{name: "saturday", day: 5, label: t1000, want: CellState{Kind: CellWeekend}},
		{name: "sunday", day: 6, label: t1000, want: CellState{Kind: CellWeekend}},
		{name: "weekend wins over booked", day: 5, label: t0830, want: CellState{Kind: CellWeekend}},
		{
			name:     "booked wins over selected",
			day:      2,
			label:    t1000,
			selected: &domain.Cell{DayIndex: 2, Time: t1000},
			want:     CellState{Kind: CellBooked, Occupant: "Luane Andrade"},
		},
		{
			name:     "weekend wins over selected",
			day:      6,
			label:    t0830,
			selected: &domain.Cell{DayIndex: 6, Time: t0830},
			want:     CellState{Kind: CellWeekend},
		},
		{
			name:     "selected",
			day:      3,
			label:    t1000,
			selected: &domain.Cell{DayIndex: 3, Time: t1000},
			want:     CellState{Kind: CellSelected},
		},
		{
			name:     "selection elsewhere",
			day:      3,
			label:    t0830,
			selected: &domain.Cell{DayIndex: 3, Time: t1000},
			want:     CellState{Kind: CellAvailable},
		},
		{name: "day out of range", day: 7, label: t0830, want: CellState{Kind: CellUnknown}},
		{name: "negative day", day: -1, label: t0830, want: CellState{Kind: CellUnknown}},
		{name: "off grid time", day: 0, label: types.MustTimeString("08:00"), want: CellState{Kind: CellUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CellStateOf(week, bookings, tt.day, tt.label, tt.selected)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCellState_IsSelectable(t *testing.T) {
	assert.True(t, CellState{Kind: CellAvailable}.IsSelectable())
	assert.True(t, CellState{Kind: CellSelected}.IsSelectable())
	assert.False(t, CellState{Kind: CellBooked, Occupant: "X"}.IsSelectable())
	assert.False(t, CellState{Kind: CellWeekend}.IsSelectable())
	assert.False(t, CellState{}.IsSelectable())
}

func TestCellState_Title(t *testing.T) {
	assert.Equal(t, "Reservado por Paula Yuri", CellState{Kind: CellBooked, Occupant: "Paula Yuri"}.Title())
	assert.Equal(t, "Fim de semana", CellState{Kind: CellWeekend}.Title())
	assert.Equal(t, "Disponível", CellState{Kind: CellAvailable}.Title())
	assert.Empty(t, CellState{}.Title())
}
