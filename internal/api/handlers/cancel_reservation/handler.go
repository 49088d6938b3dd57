package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceBooking/internal/reservations"
	"github.com/m04kA/SMC-SpaceBooking/internal/session"
)

const (
	msgSessionNotFound     = "sessão não encontrada"
	msgReservationNotFound = "reserva não encontrada"
)

type Handler struct {
	sessions SessionManager
	logger   Logger
}

func NewHandler(sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	reservationID := vars["reservationId"]

	s, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to get session: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	reservation, err := s.CancelReservation(reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Reservation not found: session_id=%s, reservation_id=%s",
				sessionID, reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel reservation: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: session_id=%s, reservation_id=%s",
		sessionID, reservationID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservation(reservation))
}
