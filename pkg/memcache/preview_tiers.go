package memcache

import (
	"sync"
	"time"
)

// PreviewTierStore holds the per-admin preview tier. Entries live only in
// process memory: preview state is a viewing aid and must never reach the
// database or any billing path.
type PreviewTierStore interface {
	Set(accountID string, tier string, ttl time.Duration)
	Get(accountID string) (string, bool)
	Clear(accountID string)
}

type previewEntry struct {
	tier      string
	expiresAt time.Time
}

type PreviewTiers struct {
	mu   sync.RWMutex
	data map[string]previewEntry
}

func NewPreviewTiers() *PreviewTiers {
	return &PreviewTiers{data: make(map[string]previewEntry)}
}

func (s *PreviewTiers) Set(accountID string, tier string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[accountID] = previewEntry{tier: tier, expiresAt: time.Now().Add(ttl)}
}

func (s *PreviewTiers) Get(accountID string) (string, bool) {
	s.mu.RLock()
	e, ok := s.data[accountID]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		s.Clear(accountID)
		return "", false
	}
	return e.tier, true
}

func (s *PreviewTiers) Clear(accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, accountID)
}
