package reservations

import (
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
)

// Store хранилище бронирований одной сессии в памяти.
// Записи только добавляются; отмена меняет статус, порядок вставки сохраняется.
type Store struct {
	mu    sync.RWMutex
	items []*domain.Reservation
	index map[string]int

	ids    IDGenerator
	clock  TimeProvider
	logger Logger
}

// NewStore создает пустое хранилище
func NewStore(ids IDGenerator, clock TimeProvider, logger Logger) *Store {
	if ids == nil {
		ids = UUIDv7Generator{}
	}
	if clock == nil {
		clock = RealTimeProvider{}
	}
	return &Store{
		items:  make([]*domain.Reservation, 0),
		index:  make(map[string]int),
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

// Add создает подтвержденное бронирование из черновика.
// Пересечения с другими бронированиями не проверяются.
func (s *Store) Add(draft domain.BookingDraft, userName string) (domain.Reservation, error) {
	if !draft.IsComplete() {
		s.logger.Warn("Add: incomplete draft (resource=%t, slot=%t, date=%t)",
			draft.Resource != nil, draft.Slot != nil, !draft.Date.IsZero())
		return domain.Reservation{}, ErrIncompleteDraft
	}

	id, err := s.ids.NewID()
	if err != nil {
		s.logger.Error("Add: failed to generate reservation id: %v", err)
		return domain.Reservation{}, fmt.Errorf("%w: generate id: %v", ErrInternal, err)
	}

	r := &domain.Reservation{
		ID:          id,
		Resource:    draft.Resource.Snapshot(),
		Date:        draft.Date,
		Slot:        *draft.Slot,
		Description: draft.Description,
		UserName:    userName,
		Status:      domain.StatusConfirmed,
		CreatedAt:   s.clock.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[id]; exists {
		s.logger.Error("Add: duplicate reservation id=%s", id)
		return domain.Reservation{}, fmt.Errorf("%w: duplicate id %s", ErrInternal, id)
	}

	s.index[id] = len(s.items)
	s.items = append(s.items, r)

	s.logger.Info("Add: reservation id=%s created for resource=%s at %s %s",
		id, r.Resource.ID, r.Date.Format(domain.DateFormat), r.Slot.Time.String())
	return *r, nil
}

// Cancel переводит бронирование в статус cancelled.
// Повторная отмена ничего не меняет и не считается ошибкой.
// changed сообщает, изменился ли статус.
func (s *Store) Cancel(id string) (changed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[id]
	if !ok {
		s.logger.Warn("Cancel: reservation id=%s not found", id)
		return false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	r := s.items[idx]
	if r.IsCancelled() {
		s.logger.Info("Cancel: reservation id=%s already cancelled", id)
		return false, nil
	}

	r.Status = domain.StatusCancelled
	s.logger.Info("Cancel: reservation id=%s cancelled", id)
	return true, nil
}

// Get возвращает копию бронирования по ID
func (s *Store) Get(id string) (domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.index[id]
	if !ok {
		return domain.Reservation{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return *s.items[idx], nil
}

// List возвращает копии бронирований, подходящих под фильтр, в порядке создания.
// TabActive оставляет только подтвержденные; пустая вкладка не ограничивает список.
func (s *Store) List(filter domain.ReservationsFilter) []domain.Reservation {
	search := strings.ToLower(strings.TrimSpace(filter.NameSubstring))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Reservation, 0, len(s.items))
	for _, r := range s.items {
		if filter.Tab == domain.TabActive && !r.IsActive() {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Resource.Name), search) {
			continue
		}
		out = append(out, *r)
	}
	return out
}

// ConfirmedCount количество неотмененных бронирований
func (s *Store) ConfirmedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, r := range s.items {
		if r.IsActive() {
			count++
		}
	}
	return count
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
