package session

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-SpaceBooking/internal/calendar"
	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
	"github.com/m04kA/SMC-SpaceBooking/internal/flow"
	"github.com/m04kA/SMC-SpaceBooking/internal/reservations"
	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

// Session состояние одного клиента: сценарий бронирования, его бронирования и текущий экран.
// Все операции сериализуются мьютексом сессии.
type Session struct {
	mu sync.Mutex

	id              string
	createdAt       time.Time
	defaultUserName string
	lastSeen        time.Time // под мьютексом менеджера

	controller *flow.Controller
	store      *reservations.Store
	nav        *navigator
	metrics    Metrics
	logger     Logger
}

// Snapshot состояние сессии для отображения
type Snapshot struct {
	ID              string
	State           flow.State
	Screen          Screen
	Draft           domain.BookingDraft
	Highlighted     *domain.Cell
	ReferenceDate   time.Time
	DefaultUserName string
	ConfirmedCount  int
	CreatedAt       time.Time
}

// ReservationList результат поиска по бронированиям
type ReservationList struct {
	Items          []domain.Reservation
	ConfirmedCount int
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		ID:              s.id,
		State:           s.controller.State(),
		Screen:          s.nav.screen,
		Draft:           s.controller.Draft(),
		ReferenceDate:   s.controller.ReferenceDate(),
		DefaultUserName: s.defaultUserName,
		ConfirmedCount:  s.store.ConfirmedCount(),
		CreatedAt:       s.createdAt,
	}
	if cell, ok := s.controller.Highlighted(); ok {
		snap.Highlighted = &cell
	}
	return snap
}

// Navigate переключает экран без изменения сценария бронирования
func (s *Session) Navigate(screen Screen) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nav.screen = screen
	return s.snapshot()
}

// Grid сетка текущей недели; для месяца возвращает calendar.ErrMonthViewNotImplemented,
// для прочих значений calendar.ErrUnknownView
func (s *Session) Grid(view calendar.View) (calendar.WeekGrid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.View(view)
}

// FilterResources поиск ресурсов по названию
func (s *Session) FilterResources(term string) []domain.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.FilterResources(term)
}

func (s *Session) SelectResource(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.controller.SelectResource(id); err != nil {
		return Snapshot{}, err
	}
	s.nav.screen = ScreenBooking
	return s.snapshot(), nil
}

func (s *Session) SetReferenceDate(date time.Time) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.controller.SetReferenceDate(date); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), nil
}

func (s *Session) Highlight(dayIndex int, label types.TimeString) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.controller.Highlight(dayIndex, label); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), nil
}

func (s *Session) SelectSlot(dayIndex int, label types.TimeString) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.controller.SelectSlot(dayIndex, label); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), nil
}

func (s *Session) Back() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.controller.Back(); err != nil {
		return Snapshot{}, err
	}
	if s.controller.State() == flow.StateChoosingResource {
		s.nav.screen = ScreenResources
	}
	return s.snapshot(), nil
}

// Confirm подтверждает бронирование; при успехе клиент переходит на экран "мои бронирования"
func (s *Session) Confirm(userName, description string) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.controller.Confirm(userName, description)
	if err != nil {
		return domain.Reservation{}, err
	}

	s.metrics.IncReservationCreated(r.Resource.ID)
	s.logger.Info("Confirm: session=%s reservation=%s resource=%s", s.id, r.ID, r.Resource.ID)
	return r, nil
}

func (s *Session) Reservations(filter domain.ReservationsFilter) ReservationList {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ReservationList{
		Items:          s.store.List(filter),
		ConfirmedCount: s.store.ConfirmedCount(),
	}
}

// CancelReservation отменяет бронирование; повторная отмена не ошибка
func (s *Session) CancelReservation(id string) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed, err := s.store.Cancel(id)
	if err != nil {
		return domain.Reservation{}, err
	}
	if changed {
		s.metrics.IncReservationCancelled()
	}
	return s.store.Get(id)
}
