package service

import "sync"

// lockTable hands out one mutex per game id, serializing the
// read-modify-write operations that cannot be expressed as a single
// atomic store call. Entries are never reclaimed; the table grows with
// the number of distinct games seen by this process.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: map[string]*sync.Mutex{}}
}

// acquire locks the mutex for id and returns its release func.
func (t *lockTable) acquire(id string) func() {
	t.mu.Lock()
	l, ok := t.locks[id]
	if !ok {
		l = &sync.Mutex{}
		t.locks[id] = l
	}
	t.mu.Unlock()

	l.Lock()
	return l.Unlock
}
