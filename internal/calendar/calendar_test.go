package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

func TestNew_RejectsInvalidSeed(t *testing.T) {
	_, err := New([]domain.ExistingBooking{{DayIndex: 7, Time: types.MustTimeString("08:30")}})
	assert.ErrorIs(t, err, ErrInvalidBooking)

	_, err = New([]domain.ExistingBooking{{DayIndex: 1, Time: types.MustTimeString("08:00")}})
	assert.ErrorIs(t, err, ErrInvalidBooking)
}

func TestCalendar_BuildWeekGrid(t *testing.T) {
	cal, err := New(seedBookings()[:3])
	require.NoError(t, err)

	selected := &domain.Cell{DayIndex: 0, Time: types.MustTimeString("07:00")}
	grid := cal.BuildWeekGrid(date(t, "2025-01-19"), selected)

	assert.Equal(t, "2025-01-13", grid.Week[0].Format("2006-01-02"))
	require.Len(t, grid.Rows, 17)

	first := grid.Rows[0]
	assert.Equal(t, "07:00", first.Time.String())
	assert.Equal(t, CellSelected, first.Cells[0].State.Kind)
	assert.Equal(t, CellAvailable, first.Cells[1].State.Kind)
	assert.Equal(t, CellWeekend, first.Cells[5].State.Kind)
	assert.Equal(t, "Fim de semana", first.Cells[6].Title)
	assert.Equal(t, grid.Week[3], first.Cells[3].Date)

	booked := grid.Rows[2].Cells[1]
	assert.Equal(t, "08:30", booked.Time.String())
	assert.Equal(t, CellBooked, booked.State.Kind)
	assert.Equal(t, "Reservado por Paula Yuri", booked.Title)
}

func TestCalendar_BuildView(t *testing.T) {
	cal, err := New(nil)
	require.NoError(t, err)

	grid, err := cal.BuildView(ViewWeek, date(t, "2025-01-15"), nil)
	require.NoError(t, err)
	assert.Len(t, grid.Rows, 17)

	grid, err = cal.BuildView(ViewMonth, date(t, "2025-01-15"), nil)
	assert.ErrorIs(t, err, ErrMonthViewNotImplemented)
	assert.Empty(t, grid.Rows)

	_, err = cal.BuildView(View("year"), date(t, "2025-01-15"), nil)
	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestParseView(t *testing.T) {
	v, err := ParseView("")
	require.NoError(t, err)
	assert.Equal(t, ViewWeek, v)

	v, err = ParseView("Month")
	require.NoError(t, err)
	assert.Equal(t, ViewMonth, v)

	_, err = ParseView("year")
	assert.ErrorIs(t, err, ErrUnknownView)
}
