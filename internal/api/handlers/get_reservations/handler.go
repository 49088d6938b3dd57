package get_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceBooking/internal/session"
)

const (
	msgSessionNotFound = "sessão não encontrada"
	msgInvalidFilter   = "filtro inválido: tab=active|all, status=confirmed|cancelled"
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

// Handle GET /api/v1/sessions/{sessionId}/reservations
// Query params: tab (active|all, по умолчанию active), status (optional), search (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	filter, err := ParseFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/reservations - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	s, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/reservations - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /sessions/{id}/reservations - Failed to get session: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	list := s.Reservations(filter)

	h.logger.Info("GET /sessions/{id}/reservations - Reservations listed: session_id=%s, count=%d",
		sessionID, len(list.Items))
	handlers.RespondJSON(w, http.StatusOK, &ReservationsResponse{
		Reservations:   FromReservations(list.Items),
		ConfirmedCount: list.ConfirmedCount,
	})
}
