package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceBooking/internal/flow"
	"github.com/m04kA/SMC-SpaceBooking/internal/reservations"
)

// Config параметры менеджера сессий
type Config struct {
	MaxSessions     int            // 0 = без ограничения
	IdleTimeout     time.Duration  // 0 = сессии не истекают
	DefaultUserName string         // Имя, подставляемое в форму подтверждения
	Location        *time.Location // Часовой пояс для "сегодня"
}

// Deps зависимости менеджера. Metrics и Clock могут быть nil.
type Deps struct {
	Catalog  Catalog
	Calendar Calendar
	Clock    TimeProvider
	Metrics  Metrics
	Logger   Logger
}

// Manager хранит активные сессии в памяти процесса
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	deps Deps
	cfg  Config
}

func NewManager(deps Deps, cfg Config) *Manager {
	if deps.Clock == nil {
		deps.Clock = reservations.RealTimeProvider{}
	}
	if deps.Metrics == nil {
		deps.Metrics = noopMetrics{}
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Manager{
		sessions: make(map[string]*Session),
		deps:     deps,
		cfg:      cfg,
	}
}

// Start открывает новую сессию. Известный preselectedID сразу ведет к выбору слота.
func (m *Manager) Start(preselectedID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneExpired(m.deps.Clock.Now())

	if m.cfg.MaxSessions > 0 && len(m.sessions) >= m.cfg.MaxSessions {
		m.deps.Logger.Warn("Start: session limit %d reached", m.cfg.MaxSessions)
		return nil, fmt.Errorf("%w: limit %d", ErrTooManySessions, m.cfg.MaxSessions)
	}

	now := m.deps.Clock.Now().In(m.cfg.Location)
	nav := &navigator{screen: ScreenHome}

	store := reservations.NewStore(reservations.UUIDv7Generator{}, m.deps.Clock, m.deps.Logger)
	s := &Session{
		id:              uuid.NewString(),
		createdAt:       now,
		defaultUserName: m.cfg.DefaultUserName,
		store:           store,
		nav:             nav,
		lastSeen:        now,
		metrics:         m.deps.Metrics,
		logger:          m.deps.Logger,
	}
	s.controller = flow.NewController(flow.Deps{
		Catalog:   m.deps.Catalog,
		Calendar:  m.deps.Calendar,
		Store:     store,
		Navigator: nav,
		Metrics:   m.deps.Metrics,
		Logger:    m.deps.Logger,
	}, now, preselectedID)

	if s.controller.State() == flow.StateChoosingSlot {
		nav.screen = ScreenBooking
	}

	m.sessions[s.id] = s
	m.deps.Metrics.SetActiveSessions(len(m.sessions))
	m.deps.Logger.Info("Start: session=%s started, state=%s", s.id, s.controller.State())
	return s, nil
}

// Get возвращает сессию и продлевает ее время жизни.
// Истекшая сессия удаляется и считается не найденной.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	now := m.deps.Clock.Now()
	if m.expired(s, now) {
		m.remove(id)
		m.deps.Logger.Info("Get: session=%s expired", id)
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	s.lastSeen = now
	return s, nil
}

// Close удаляет сессию вместе с ее бронированиями
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	m.remove(id)
	m.deps.Logger.Info("Close: session=%s closed", id)
	return nil
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.cfg.IdleTimeout > 0 && now.Sub(s.lastSeen) >= m.cfg.IdleTimeout
}

// pruneExpired вызывается под m.mu
func (m *Manager) pruneExpired(now time.Time) {
	if m.cfg.IdleTimeout <= 0 {
		return
	}

	var removed int
	for id, s := range m.sessions {
		if m.expired(s, now) {
			m.remove(id)
			removed++
		}
	}
	if removed > 0 {
		m.deps.Logger.Info("Start: %d idle sessions expired, open=%d", removed, len(m.sessions))
	}
}

func (m *Manager) remove(id string) {
	delete(m.sessions, id)
	m.deps.Metrics.SetActiveSessions(len(m.sessions))
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
