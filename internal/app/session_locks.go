package app

import "sync"

// sessionLocks hands out one mutex per session id. Entries are reference
// counted and dropped once no goroutine holds or waits on them, so the map
// only grows with the number of sessions in flight.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

// lock acquires the mutex for id and returns the function that releases it.
func (s *sessionLocks) lock(id string) (unlock func()) {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

// inFlight reports how many session ids currently have a lock entry.
func (s *sessionLocks) inFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}
