package get_reservations

import (
	"errors"
	"net/url"

	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
)

// Значения статуса, означающие "любой"
const (
	statusAny    = "any"
	statusTodos  = "todos"
	statusAbsent = ""
)

var (
	errInvalidTab    = errors.New("invalid tab")
	errInvalidStatus = errors.New("invalid status")
)

// ReservationsResponse HTTP response model
type ReservationsResponse struct {
	Reservations   []handlers.ReservationResponse `json:"reservations"`
	ConfirmedCount int                            `json:"confirmedCount"`
}

// ParseFilter читает tab, status и search из query
func ParseFilter(query url.Values) (domain.ReservationsFilter, error) {
	tab, ok := domain.ParseReservationTab(query.Get("tab"))
	if !ok {
		return domain.ReservationsFilter{}, errInvalidTab
	}

	filter := domain.ReservationsFilter{
		Tab:           tab,
		NameSubstring: query.Get("search"),
	}

	switch raw := query.Get("status"); raw {
	case statusAbsent, statusAny, statusTodos:
	default:
		status, ok := domain.ParseReservationStatus(raw)
		if !ok {
			return domain.ReservationsFilter{}, errInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

func FromReservations(items []domain.Reservation) []handlers.ReservationResponse {
	out := make([]handlers.ReservationResponse, 0, len(items))
	for _, r := range items {
		out = append(out, handlers.FromReservation(r))
	}
	return out
}
