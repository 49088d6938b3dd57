package select_resource

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceBooking/internal/flow"
	"github.com/m04kA/SMC-SpaceBooking/internal/session"
)

const (
	msgSessionNotFound    = "sessão não encontrada"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingResourceID  = "resourceId é obrigatório"
	msgResourceNotFound   = "recurso não encontrado"
	msgWrongState         = "o recurso já foi escolhido, volte para trocar"
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

// Handle POST /api/v1/sessions/{sessionId}/resource
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectResourceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/resource - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.ResourceID == "" {
		h.logger.Warn("POST /sessions/{id}/resource - Missing resource ID: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgMissingResourceID)
		return
	}

	s, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/resource - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/resource - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	snap, err := s.SelectResource(req.ResourceID)
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrUnknownResource):
			h.logger.Warn("POST /sessions/{id}/resource - Resource not found: session_id=%s, resource_id=%s",
				sessionID, req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, flow.ErrWrongState):
			h.logger.Warn("POST /sessions/{id}/resource - Wrong state: session_id=%s, error=%v", sessionID, err)
			handlers.RespondConflict(w, msgWrongState)

		default:
			h.logger.Error("POST /sessions/{id}/resource - Failed to select resource: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/resource - Resource selected: session_id=%s, resource_id=%s",
		sessionID, req.ResourceID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
