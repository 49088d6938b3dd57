package get_week_grid

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceBooking/internal/calendar"
	"github.com/m04kA/SMC-SpaceBooking/internal/session"
)

const (
	msgSessionNotFound = "sessão não encontrada"
	msgInvalidView     = "visualização inválida, use week ou month"
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

// Handle GET /api/v1/sessions/{sessionId}/week
// Query params: view (optional, week|month, по умолчанию week)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := calendar.ParseView(r.URL.Query().Get("view"))
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/week - Invalid view: %v", err)
		handlers.RespondBadRequest(w, msgInvalidView)
		return
	}

	s, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/week - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /sessions/{id}/week - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	grid, err := s.Grid(view)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrMonthViewNotImplemented):
			h.logger.Info("GET /sessions/{id}/week - Month view placeholder: session_id=%s", sessionID)
			handlers.RespondJSON(w, http.StatusOK, &PlaceholderResponse{
				View:    string(calendar.ViewMonth),
				Message: calendar.MonthPlaceholderMessage,
			})

		case errors.Is(err, calendar.ErrUnknownView):
			h.logger.Warn("GET /sessions/{id}/week - Unknown view: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidView)

		default:
			h.logger.Error("GET /sessions/{id}/week - Failed to build grid: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWeekGrid(grid))
}
