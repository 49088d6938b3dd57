package navigate

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceBooking/internal/session"
)

const (
	msgSessionNotFound    = "sessão não encontrada"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgUnknownScreen      = "tela desconhecida"
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

// Handle PUT /api/v1/sessions/{sessionId}/screen
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/screen - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	screen, err := session.ParseScreen(req.Screen)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/screen - Unknown screen: %v", err)
		handlers.RespondBadRequest(w, msgUnknownScreen)
		return
	}

	s, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/screen - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("PUT /sessions/{id}/screen - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	snap := s.Navigate(screen)
	h.logger.Info("PUT /sessions/{id}/screen - Screen changed: session_id=%s, screen=%s", sessionID, screen)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
