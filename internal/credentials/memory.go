package credentials

import "sync"

// MemoryStore keeps both credentials in process memory. Used by portalctl
// and by tests, where there is no browser to hold cookies.
type MemoryStore struct {
	mu      sync.RWMutex
	session string
	apiKey  string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SessionToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session, s.session != ""
}

func (s *MemoryStore) SetSessionToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = token
}

func (s *MemoryStore) ClearSessionToken() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = ""
}

func (s *MemoryStore) APIKey() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.apiKey, s.apiKey != ""
}

func (s *MemoryStore) SetAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apiKey = key
}

func (s *MemoryStore) ClearAPIKey() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apiKey = ""
}
