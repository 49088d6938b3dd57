package confirm_booking

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
	msgConfirmGuard       = "informe o nome e uma descrição com pelo menos 5 caracteres"
	msgWrongState         = "escolha um recurso e um horário antes de confirmar"
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

// Handle POST /api/v1/sessions/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	s, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/confirm - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/confirm - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	reservation, err := s.Confirm(req.UserName, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrConfirmGuard):
			h.logger.Warn("POST /sessions/{id}/confirm - Form rejected: session_id=%s, error=%v", sessionID, err)
			handlers.RespondUnprocessable(w, msgConfirmGuard)

		case errors.Is(err, flow.ErrWrongState):
			h.logger.Warn("POST /sessions/{id}/confirm - Wrong state: session_id=%s, error=%v", sessionID, err)
			handlers.RespondConflict(w, msgWrongState)

		default:
			h.logger.Error("POST /sessions/{id}/confirm - Failed to confirm booking: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/confirm - Booking confirmed: session_id=%s, reservation_id=%s",
		sessionID, reservation.ID)
	handlers.RespondJSON(w, http.StatusCreated, &ConfirmBookingResponse{
		Reservation: handlers.FromReservation(reservation),
		Session:     handlers.FromSnapshot(s.Snapshot()),
	})
}
