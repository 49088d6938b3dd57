package session

import (
	"time"

	"github.com/m04kA/SMC-SpaceBooking/internal/flow"
)

// Catalog каталог ресурсов, общий для всех сессий
type Catalog interface {
	flow.Catalog
}

// Calendar сетка слотов, общая для всех сессий
type Calendar interface {
	flow.Calendar
}

// Metrics счетчики сценария бронирования
type Metrics interface {
	flow.TransitionRecorder
	IncReservationCreated(resourceID string)
	IncReservationCancelled()
	SetActiveSessions(n int)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) IncFlowTransition(string, string) {}
func (noopMetrics) IncReservationCreated(string)     {}
func (noopMetrics) IncReservationCancelled()         {}
func (noopMetrics) SetActiveSessions(int)            {}
