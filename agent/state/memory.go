package state

import (
	"context"
	"sync"

	contractx "github.com/siamtel/assistant/agent/contract"
)

// MemoryHistoryStore is an in-process history store. Used in tests and in
// single-instance deployments that do not need Redis.
type MemoryHistoryStore struct {
	mu    sync.RWMutex
	turns map[string][]contractx.Turn
}

func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{turns: make(map[string][]contractx.Turn)}
}

func (s *MemoryHistoryStore) Load(_ context.Context, sessionID string) ([]contractx.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.turns[sessionID]
	if len(stored) == 0 {
		return nil, nil
	}
	out := make([]contractx.Turn, len(stored))
	copy(out, stored)
	return out, nil
}

func (s *MemoryHistoryStore) Append(_ context.Context, sessionID string, turns ...contractx.Turn) error {
	if len(turns) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns[sessionID] = append(s.turns[sessionID], turns...)
	return nil
}

func (s *MemoryHistoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.turns, sessionID)
	return nil
}

var _ contractx.HistoryStore = (*MemoryHistoryStore)(nil)
