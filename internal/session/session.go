package session

import (
	"sync"

	"github.com/BerylCAtieno/creator-command-center/internal/models"
)

// Session holds everything one user has entered or generated. The credential
// lives here and nowhere else.
type Session struct {
	ID string

	mu      sync.RWMutex
	apiKey  string
	profile *models.BrandProfile
	results map[models.Mode]string

	// action serializes panel actions: one generation in flight per session.
	action sync.Mutex
}

// Snapshot is a read-only copy of a session for rendering.
type Snapshot struct {
	ID            string
	HasCredential bool
	Profile       *models.BrandProfile
	Results       map[models.Mode]string
}

func (s Snapshot) Result(mode models.Mode) string {
	return s.Results[mode]
}

func New(id string) *Session {
	return &Session{
		ID:      id,
		results: make(map[models.Mode]string),
	}
}

func (s *Session) SetCredential(apiKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = apiKey
}

func (s *Session) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey
}

// SaveProfile replaces the stored profile wholesale.
func (s *Session) SaveProfile(p models.BrandProfile) {
	c := p.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &c
}

// Profile returns a copy of the saved profile, or nil if none was saved.
func (s *Session) Profile() *models.BrandProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	c := s.profile.Clone()
	return &c
}

func (s *Session) SetResult(mode models.Mode, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[mode] = text
}

func (s *Session) Result(mode models.Mode) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.results[mode]
	return text, ok
}

func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		ID:            s.ID,
		HasCredential: s.apiKey != "",
		Results:       make(map[models.Mode]string, len(s.results)),
	}
	if s.profile != nil {
		c := s.profile.Clone()
		snap.Profile = &c
	}
	for m, text := range s.results {
		snap.Results[m] = text
	}
	return snap
}

// BeginAction blocks until no other action of this session is running. The
// returned func must be called when the action completes. Waiting is not
// context-aware: a queued action cannot give up, it runs once its turn comes.
func (s *Session) BeginAction() func() {
	s.action.Lock()
	return s.action.Unlock
}

// clear drops all state, the credential included.
func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = ""
	s.profile = nil
	s.results = make(map[models.Mode]string)
}
