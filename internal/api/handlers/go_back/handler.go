package go_back

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceBooking/internal/flow"
	"github.com/m04kA/SMC-SpaceBooking/internal/session"
)

const (
	msgSessionNotFound = "sessão não encontrada"
	msgWrongState      = "não há etapa anterior"
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

// Handle POST /api/v1/sessions/{sessionId}/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	s, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/back - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/back - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	snap, err := s.Back()
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrWrongState):
			h.logger.Warn("POST /sessions/{id}/back - Wrong state: session_id=%s, error=%v", sessionID, err)
			handlers.RespondConflict(w, msgWrongState)

		default:
			h.logger.Error("POST /sessions/{id}/back - Failed to go back: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/back - Went back: session_id=%s, state=%s", sessionID, snap.State)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
