// Package locks provides a keyed mutual-exclusion primitive. Operations that
// read-then-write the order/table pair for one table must be serialized per
// table identifier, while operations on different tables proceed fully
// concurrently. The same discipline guards the configuration singletons.
package locks

import "sync"

// KeyedMutex serializes critical sections per string key. Locks for distinct
// keys are independent. Idle keys hold no memory: entries are reference
// counted and removed once the last holder releases them.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex creates an empty keyed mutex registry.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: make(map[string]*entry)}
}

// Lock acquires the exclusive section for key, blocking until it is free.
// The returned function releases the section and must be called exactly once,
// typically via defer so the lock is released on all exit paths.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}
