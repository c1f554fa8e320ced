package scheduling

import (
	"fmt"
	"sync"
)

// slotLocks serializes booking writes per (business, staff, date). The
// conflict check and insert for a staffed booking run under the key's mutex,
// so two concurrent requests for overlapping slots cannot both pass the scan.
// Staffless bookings are never conflict-checked and take no lock.
type slotLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSlotLocks() *slotLocks {
	return &slotLocks{locks: make(map[string]*sync.Mutex)}
}

func slotKey(businessID, staffID, date string) string {
	return fmt.Sprintf("%s|%s|%s", businessID, staffID, date)
}

// lock acquires the mutex for key, creating it on first use. The caller must
// Unlock the returned mutex. Entries are tiny and reused; no eviction.
func (l *slotLocks) lock(key string) *sync.Mutex {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}
