package highlight_cell

import (
	"errors"

	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

var errMissingDayIndex = errors.New("dayIndex is required")

// HighlightCellRequest HTTP request model
type HighlightCellRequest struct {
	DayIndex *int   `json:"dayIndex"` // 0 = segunda-feira
	Time     string `json:"time"`     // "08:30"
}

// Parse проверяет наличие полей и формат времени
func (r *HighlightCellRequest) Parse() (int, types.TimeString, error) {
	if r.DayIndex == nil {
		return 0, types.TimeString{}, errMissingDayIndex
	}
	label, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return 0, types.TimeString{}, err
	}
	return *r.DayIndex, label, nil
}
