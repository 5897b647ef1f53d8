// match/locker.go
package match

import "sync"

// MatchLocker serializes scoring mutations per match. Deliveries for one
// match must apply one at a time, but independent matches should not queue
// behind each other, so each match ID gets its own mutex.
type MatchLocker struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

// NewMatchLocker creates an empty locker.
func NewMatchLocker() *MatchLocker {
	return &MatchLocker{locks: make(map[uint]*sync.Mutex)}
}

// Lock acquires the mutex for the given match, creating it on first use.
// The returned function releases it.
func (l *MatchLocker) Lock(matchID uint) func() {
	l.mu.Lock()
	m, ok := l.locks[matchID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[matchID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
