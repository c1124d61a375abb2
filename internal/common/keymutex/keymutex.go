// Package keymutex provides fail-fast mutual exclusion scoped to string
// keys. It serializes moves on a single game: a second caller for the
// same key is turned away immediately instead of queueing.
package keymutex

import "sync"

// KeyMutex tracks which keys are currently held
type KeyMutex struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// New creates an empty key mutex
func New() *KeyMutex {
	return &KeyMutex{
		held: make(map[string]struct{}),
	}
}

// TryLock acquires the key if it is free and reports whether it did.
// It never blocks.
func (m *KeyMutex) TryLock(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.held[key]; taken {
		return false
	}

	m.held[key] = struct{}{}
	return true
}

// Unlock releases the key. Unlocking a key that is not held is a no-op.
func (m *KeyMutex) Unlock(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.held, key)
}
