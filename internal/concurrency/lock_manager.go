// Package concurrency provides keyed mutual exclusion for per-match work.
package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. An entry lives only while some
// caller holds or waits on it, so keys of deleted matches do not pile up.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock acquires the mutex for key and returns its unlock function. The
// entry is dropped when the last holder unlocks.
func (lm *LockManager) Lock(key string) func() {
	lm.mu.Lock()
	kl, ok := lm.locks[key]
	if !ok {
		kl = &keyLock{}
		lm.locks[key] = kl
	}
	kl.refs++
	lm.mu.Unlock()

	kl.mu.Lock()
	return func() {
		kl.mu.Unlock()

		lm.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(lm.locks, key)
		}
		lm.mu.Unlock()
	}
}

// Len is the number of keys currently held or waited on
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
