package navigate

// NavigateRequest HTTP request model
type NavigateRequest struct {
	Screen string `json:"screen"` // home | resources | booking | my-reservations
}
