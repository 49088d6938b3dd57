package start_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceBooking/internal/session"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgTooManySessions    = "limite de sessões atingido, tente novamente mais tarde"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	s, err := h.sessions.Start(req.PreselectedID())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrTooManySessions):
			h.logger.Warn("POST /sessions - Session limit reached: %v", err)
			handlers.RespondServiceUnavailable(w, msgTooManySessions)

		default:
			h.logger.Error("POST /sessions - Failed to start session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	snap := s.Snapshot()
	h.logger.Info("POST /sessions - Session started: session_id=%s, state=%s", snap.ID, snap.State)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSnapshot(snap))
}
