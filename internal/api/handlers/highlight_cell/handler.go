package highlight_cell

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
	msgInvalidCell        = "dayIndex e time (HH:MM) são obrigatórios"
	msgCellNotSelectable  = "horário indisponível"
	msgWrongState         = "escolha um recurso antes de marcar um horário"
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

// Handle POST /api/v1/sessions/{sessionId}/highlight
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req HighlightCellRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/highlight - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	dayIndex, label, err := req.Parse()
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/highlight - Invalid cell: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCell)
		return
	}

	s, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/highlight - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/highlight - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	snap, err := s.Highlight(dayIndex, label)
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrCellNotSelectable):
			h.logger.Warn("POST /sessions/{id}/highlight - Cell not selectable: session_id=%s, error=%v", sessionID, err)
			handlers.RespondUnprocessable(w, msgCellNotSelectable)

		case errors.Is(err, flow.ErrWrongState):
			h.logger.Warn("POST /sessions/{id}/highlight - Wrong state: session_id=%s, error=%v", sessionID, err)
			handlers.RespondConflict(w, msgWrongState)

		default:
			h.logger.Error("POST /sessions/{id}/highlight - Failed to highlight cell: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
