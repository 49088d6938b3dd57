package set_reference_date

import (
	"time"

	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
)

// SetDateRequest HTTP request model
type SetDateRequest struct {
	Date string `json:"date"` // "2025-10-15"
}

// ParseDate дата в указанном часовом поясе
func (r *SetDateRequest) ParseDate(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, r.Date, loc)
}
