package storage

import "sync"

// keyedMutex hands out one mutex per session id so turns for the same
// session serialize while different sessions proceed in parallel.
// Entries are reference counted and removed once nobody waits on them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() keyedMutex {
	return keyedMutex{locks: make(map[string]*lockEntry)}
}

func (k *keyedMutex) acquire(id string) (release func()) {
	k.mu.Lock()
	e, exists := k.locks[id]
	if !exists {
		e = &lockEntry{}
		k.locks[id] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}
