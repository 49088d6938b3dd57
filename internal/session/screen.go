package session

import "fmt"

// Screen экран, который сейчас показывает клиент
type Screen string

const (
	ScreenHome           Screen = "home"
	ScreenResources      Screen = "resources"
	ScreenBooking        Screen = "booking"
	ScreenMyReservations Screen = "my-reservations"
)

// ParseScreen проверяет название экрана
func ParseScreen(s string) (Screen, error) {
	switch Screen(s) {
	case ScreenHome, ScreenResources, ScreenBooking, ScreenMyReservations:
		return Screen(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScreen, s)
	}
}

// navigator реализует flow.Navigator; вызывается под мьютексом сессии
type navigator struct {
	screen Screen
}

func (n *navigator) ShowReservations() {
	n.screen = ScreenMyReservations
}
