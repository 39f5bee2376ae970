package cart

import (
	"sync"

	"flavourfleet/internal/pricing"
	"flavourfleet/internal/storeapi"
	"flavourfleet/pkg/logger"

	"go.uber.org/fx"
)

var Module = fx.Provide(NewManager)

type (
	ManagerParams struct {
		fx.In
		Logger logger.Logger
		Store  storeapi.Client
		Rules  pricing.Rules
	}

	// Manager owns one Session per storefront session id. Sessions live for
	// as long as the id keeps arriving; Drop releases one explicitly.
	Manager struct {
		logger logger.Logger
		store  storeapi.Client
		rules  pricing.Rules

		mu       sync.RWMutex
		sessions map[string]*Session
	}
)

func NewManager(p ManagerParams) *Manager {
	return &Manager{
		logger:   p.Logger,
		store:    p.Store,
		rules:    p.Rules,
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Session(id string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}
	s = NewSession(id, m.store, m.rules, m.logger)
	m.sessions[id] = s
	return s
}

func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
