package calendar

import (
	"fmt"

	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

// CellKind visual state of a grid cell
type CellKind string

const (
	CellUnknown   CellKind = ""
	CellAvailable CellKind = "available"
	CellSelected  CellKind = "selected"
	CellBooked    CellKind = "booked"
	CellWeekend   CellKind = "weekend"
)

// CellState computed state of one (day, time) cell.
// Occupant is set only for CellBooked.
type CellState struct {
	Kind     CellKind
	Occupant string
}

// IsSelectable weekend and booked cells reject selection
func (s CellState) IsSelectable() bool {
	return s.Kind == CellAvailable || s.Kind == CellSelected
}

// Title tooltip text shown over the cell
func (s CellState) Title() string {
	switch s.Kind {
	case CellBooked:
		return fmt.Sprintf("Reservado por %s", s.Occupant)
	case CellWeekend:
		return "Fim de semana"
	case CellAvailable, CellSelected:
		return "Disponível"
	default:
		return ""
	}
}

// CellStateOf computes the state of the cell at (dayIndex, label).
// Precedence: weekend, then booked, then selected, then available.
// Cells outside the week or off the time grid are CellUnknown.
func CellStateOf(week Week, bookings []domain.ExistingBooking, dayIndex int, label types.TimeString, selected *domain.Cell) CellState {
	if !validDay(dayIndex) || week[dayIndex].IsZero() || !IsTimeLabel(label) {
		return CellState{Kind: CellUnknown}
	}

	if IsWeekend(dayIndex) {
		return CellState{Kind: CellWeekend}
	}

	for _, b := range bookings {
		if b.DayIndex == dayIndex && b.Time == label {
			return CellState{Kind: CellBooked, Occupant: b.Occupant}
		}
	}

	if selected != nil && selected.Equal(domain.Cell{DayIndex: dayIndex, Time: label}) {
		return CellState{Kind: CellSelected}
	}

	return CellState{Kind: CellAvailable}
}
