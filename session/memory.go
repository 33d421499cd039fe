package session

import (
	"context"
	"sync"
	"time"
	"travel-companion/domain"
)

// sweepInterval how often writes look for expired sessions
const sweepInterval = time.Minute

type state struct {
	// history oldest first, reversed on read
	history  []domain.HistoryEntry
	phrases  []domain.SavedPhrase
	// lastSeen time of the last write to the session
	lastSeen time.Time
}

// memoryStore keeps sessions in process memory; everything is lost on restart.
type memoryStore struct {
	// lock synchronizes access to sessions, many sessions share one process
	lock     sync.RWMutex
	sessions map[string]*state

	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryStore returns an empty in-memory Store. A session expires ttl
// after its last write; a ttl of zero keeps sessions for the life of the process.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		sessions: map[string]*state{},
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *memoryStore) PrependHistory(_ context.Context, id string, entry domain.HistoryEntry) error {
	if id == "" {
		return ErrNoSession
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	st := s.touch(id)
	st.history = append(st.history, entry)
	return nil
}

func (s *memoryStore) History(_ context.Context, id string) ([]domain.HistoryEntry, error) {
	if id == "" {
		return nil, ErrNoSession
	}
	s.lock.RLock()
	defer s.lock.RUnlock()
	st, ok := s.live(id)
	if !ok {
		return []domain.HistoryEntry{}, nil
	}
	out := make([]domain.HistoryEntry, len(st.history))
	for i, entry := range st.history {
		out[len(st.history)-1-i] = entry
	}
	return out, nil
}

func (s *memoryStore) ClearHistory(_ context.Context, id string) error {
	if id == "" {
		return ErrNoSession
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.live(id); ok {
		s.touch(id).history = nil
	}
	return nil
}

func (s *memoryStore) AppendPhrase(_ context.Context, id string, phrase domain.SavedPhrase) error {
	if id == "" {
		return ErrNoSession
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	st := s.touch(id)
	st.phrases = append(st.phrases, phrase)
	return nil
}

func (s *memoryStore) Phrases(_ context.Context, id string) ([]domain.SavedPhrase, error) {
	if id == "" {
		return nil, ErrNoSession
	}
	s.lock.RLock()
	defer s.lock.RUnlock()
	st, ok := s.live(id)
	if !ok {
		return []domain.SavedPhrase{}, nil
	}
	out := make([]domain.SavedPhrase, len(st.phrases))
	copy(out, st.phrases)
	return out, nil
}

func (s *memoryStore) expired(st *state, now time.Time) bool {
	return s.ttl > 0 && now.Sub(st.lastSeen) > s.ttl
}

// live returns the state for id unless it has expired. Callers must hold a lock.
func (s *memoryStore) live(id string) (*state, bool) {
	st, ok := s.sessions[id]
	if !ok || s.expired(st, s.now()) {
		return nil, false
	}
	return st, true
}

// touch returns the state for id, creating it or replacing an expired one,
// and marks it as written now. Expired sessions are swept at most once per
// sweepInterval. Callers must hold the write lock.
func (s *memoryStore) touch(id string) *state {
	now := s.now()

	if s.ttl > 0 && now.Sub(s.lastSweep) > sweepInterval {
		for k, st := range s.sessions {
			if s.expired(st, now) {
				delete(s.sessions, k)
			}
		}
		s.lastSweep = now
	}

	st, ok := s.sessions[id]
	if !ok || s.expired(st, now) {
		st = &state{}
		s.sessions[id] = st
	}
	st.lastSeen = now
	return st
}
