package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/idgen"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Manager keeps the open sessions of all clients. Sessions not looked up
// for longer than the idle TTL are dropped, along with their drafts.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	idleTTL  time.Duration // <= 0 keeps sessions until closed
	now      func() time.Time

	products usecase.ProductUseCase
	keys     idgen.Generator
	log      *logrus.Logger
}

func NewManager(products usecase.ProductUseCase, keys idgen.Generator, idleTTL time.Duration, logger *logrus.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*entry),
		idleTTL:  idleTTL,
		now:      time.Now,
		products: products,
		keys:     keys,
		log:      logger,
	}
}

func (m *Manager) Open() *Session {
	s := New(uuid.NewString(), m.products, m.keys, m.log)

	m.mu.Lock()
	now := m.now()
	m.sweep(now)
	m.sessions[s.ID()] = &entry{session: s, lastSeen: now}
	m.mu.Unlock()

	m.log.Infof("Session %s: Opened", s.ID())
	return s
}

// Get returns the session and marks it as used.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)
	e, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	e.lastSeen = now
	return e.session, nil
}

func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep(m.now())
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(m.sessions, id)
	m.log.Infof("Session %s: Closed", id)
	return nil
}

// Len reports the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// sweep must be called with m.mu held.
func (m *Manager) sweep(now time.Time) {
	if m.idleTTL <= 0 {
		return
	}
	for id, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.idleTTL {
			delete(m.sessions, id)
			m.log.Infof("Session %s: Expired after %s idle", id, m.idleTTL)
		}
	}
}
