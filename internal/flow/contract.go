package flow

import (
	"time"

	"github.com/m04kA/SMC-SpaceBooking/internal/calendar"
	"github.com/m04kA/SMC-SpaceBooking/internal/catalog"
	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

// Catalog источник ресурсов для выбора
type Catalog interface {
	Get(id string) (domain.Resource, bool)
	Filter(f catalog.Filter) []domain.Resource
}

// Calendar сетка слотов недели
type Calendar interface {
	CellState(week calendar.Week, dayIndex int, label types.TimeString, selected *domain.Cell) calendar.CellState
	BuildWeekGrid(referenceDate time.Time, selected *domain.Cell) calendar.WeekGrid
	BuildView(view calendar.View, referenceDate time.Time, selected *domain.Cell) (calendar.WeekGrid, error)
}

// ReservationSink принимает подтвержденный черновик
type ReservationSink interface {
	Add(draft domain.BookingDraft, userName string) (domain.Reservation, error)
}

// Navigator переключает экран после подтверждения
type Navigator interface {
	ShowReservations()
}

// TransitionRecorder учитывает попытки переходов (метрики)
type TransitionRecorder interface {
	IncFlowTransition(transition, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
