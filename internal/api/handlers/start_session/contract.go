package start_session

import "github.com/m04kA/SMC-SpaceBooking/internal/session"

type SessionManager interface {
	Start(preselectedID string) (*session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
