package storage

import (
	"container/list"
	"log"
	"sync"
	"time"

	"github.com/hawaco/booking-backend/internal/models"
)

// MemoryStore holds sessions in memory, bounded by capacity (least
// recently active evicted first) and by a TTL sweep, so an abandoned
// dialogue cannot grow the map forever.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*list.Element
	order    *list.List // front = most recently active
	capacity int
	ttl      time.Duration

	turns keyedMutex

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates a new in-memory session store and starts its
// cleanup routine.
func NewMemoryStore(ttl time.Duration, capacity int) *MemoryStore {
	m := &MemoryStore{
		sessions: make(map[string]*list.Element),
		order:    list.New(),
		capacity: capacity,
		ttl:      ttl,
		turns:    newKeyedMutex(),
		stop:     make(chan struct{}),
	}

	go m.cleanupExpiredSessions()

	return m
}

func (m *MemoryStore) GetOrCreate(id string) *models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, exists := m.sessions[id]; exists {
		sess := el.Value.(*models.Session)
		sess.LastActive = time.Now()
		m.order.MoveToFront(el)
		return sess
	}

	sess := &models.Session{
		ID:         id,
		CreatedAt:  time.Now(),
		LastActive: time.Now(),
	}
	m.sessions[id] = m.order.PushFront(sess)

	// Capacity bound: drop the least recently active session
	if m.order.Len() > m.capacity {
		oldest := m.order.Back()
		if oldest != nil {
			evicted := oldest.Value.(*models.Session)
			m.order.Remove(oldest)
			delete(m.sessions, evicted.ID)
			log.Printf("Session evicted (capacity): %s", evicted.ID)
		}
	}

	return sess
}

func (m *MemoryStore) Get(id string) (*models.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, exists := m.sessions[id]
	if !exists {
		return nil, false
	}
	return el.Value.(*models.Session), true
}

func (m *MemoryStore) Acquire(id string) func() {
	return m.turns.acquire(id)
}

func (m *MemoryStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close stops the cleanup goroutine
func (m *MemoryStore) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// cleanupExpiredSessions runs periodically to clean up expired sessions
func (m *MemoryStore) cleanupExpiredSessions() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.removeExpired()
		case <-m.stop:
			return
		}
	}
}

func (m *MemoryStore) removeExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-m.ttl)
	removed := 0

	// Walk from the back: least recently active first
	for el := m.order.Back(); el != nil; {
		sess := el.Value.(*models.Session)
		if sess.LastActive.After(cutoff) {
			break
		}
		prev := el.Prev()
		m.order.Remove(el)
		delete(m.sessions, sess.ID)
		removed++
		el = prev
	}

	if removed > 0 {
		log.Printf("Cleaned up %d expired sessions", removed)
	}
}
