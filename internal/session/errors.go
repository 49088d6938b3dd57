package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия с указанным ID отсутствует
	ErrSessionNotFound = errors.New("session not found")

	// ErrTooManySessions возвращается при достижении лимита сессий
	ErrTooManySessions = errors.New("too many active sessions")

	// ErrUnknownScreen возвращается для неизвестного экрана
	ErrUnknownScreen = errors.New("unknown screen")
)
