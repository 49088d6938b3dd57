package calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

// Calendar slot grid over a fixed set of existing bookings.
// Bookings are keyed by column and row only, so they repeat on every week.
type Calendar struct {
	bookings []domain.ExistingBooking
}

// GridCell one precomputed cell of the week grid
type GridCell struct {
	DayIndex int
	Date     time.Time
	Time     types.TimeString
	State    CellState
	Title    string
}

// GridRow one time label with its seven cells
type GridRow struct {
	Time  types.TimeString
	Cells [domain.DaysInWeek]GridCell
}

// WeekGrid full week view ready for rendering
type WeekGrid struct {
	Week Week
	Rows []GridRow
}

// New validates the seed bookings and builds a calendar
func New(bookings []domain.ExistingBooking) (*Calendar, error) {
	out := make([]domain.ExistingBooking, 0, len(bookings))
	for _, b := range bookings {
		if !validDay(b.DayIndex) {
			return nil, fmt.Errorf("%w: day index %d", ErrInvalidBooking, b.DayIndex)
		}
		if !IsTimeLabel(b.Time) {
			return nil, fmt.Errorf("%w: time %q is not a grid label", ErrInvalidBooking, b.Time.String())
		}
		out = append(out, b)
	}
	return &Calendar{bookings: out}, nil
}

// Bookings returns a copy of the seed bookings
func (c *Calendar) Bookings() []domain.ExistingBooking {
	out := make([]domain.ExistingBooking, len(c.bookings))
	copy(out, c.bookings)
	return out
}

func (c *Calendar) CellState(week Week, dayIndex int, label types.TimeString, selected *domain.Cell) CellState {
	return CellStateOf(week, c.bookings, dayIndex, label, selected)
}

// BuildWeekGrid computes every cell of the week containing referenceDate
func (c *Calendar) BuildWeekGrid(referenceDate time.Time, selected *domain.Cell) WeekGrid {
	week := WeekOf(referenceDate)
	labels := TimeLabels()

	grid := WeekGrid{
		Week: week,
		Rows: make([]GridRow, 0, len(labels)),
	}

	for _, label := range labels {
		row := GridRow{Time: label}
		for day := range row.Cells {
			state := c.CellState(week, day, label, selected)
			row.Cells[day] = GridCell{
				DayIndex: day,
				Date:     week[day],
				Time:     label,
				State:    state,
				Title:    state.Title(),
			}
		}
		grid.Rows = append(grid.Rows, row)
	}

	return grid
}

// BuildView returns the week grid or the month placeholder error
func (c *Calendar) BuildView(view View, referenceDate time.Time, selected *domain.Cell) (WeekGrid, error) {
	switch view {
	case ViewWeek:
		return c.BuildWeekGrid(referenceDate, selected), nil
	case ViewMonth:
		return WeekGrid{}, ErrMonthViewNotImplemented
	default:
		return WeekGrid{}, fmt.Errorf("%w: %q", ErrUnknownView, string(view))
	}
}
