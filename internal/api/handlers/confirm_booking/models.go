package confirm_booking

import "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	UserName    string `json:"userName"`
	Description string `json:"description"`
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	Reservation handlers.ReservationResponse `json:"reservation"`
	Session     *handlers.SessionResponse    `json:"session"`
}
