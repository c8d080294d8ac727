package session

import (
	"time"

	"github.com/BerylCAtieno/creator-command-center/internal/logger"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const DefaultTTL = 2 * time.Hour

// Manager keeps live sessions in memory. Idle sessions expire after the TTL;
// access slides the expiry forward.
type Manager struct {
	store *cache.Cache
	log   *logger.Logger
}

func NewManager(ttl time.Duration, log *logger.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}

	cleanup := ttl / 4
	if cleanup < time.Minute {
		cleanup = time.Minute
	}

	m := &Manager{
		store: cache.New(ttl, cleanup),
		log:   log,
	}
	m.store.OnEvicted(func(id string, v interface{}) {
		if s, ok := v.(*Session); ok {
			s.clear()
		}
		m.log.Debug("session ended", "session_id", id)
	})
	return m
}

func (m *Manager) Create() *Session {
	s := New(uuid.New().String())
	m.store.SetDefault(s.ID, s)
	m.log.Debug("session started", "session_id", s.ID)
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	v, ok := m.store.Get(id)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	if !ok {
		return nil, false
	}
	m.store.SetDefault(id, s)
	return s, true
}

// End discards the session and everything it held.
func (m *Manager) End(id string) {
	m.store.Delete(id)
}

func (m *Manager) Count() int {
	return m.store.ItemCount()
}
