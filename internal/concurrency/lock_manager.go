package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Locks are never freed; keys are
// expected to be long-lived session ids.
type LockManager[K comparable] struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager[K comparable]() *LockManager[K] {
	return &LockManager[K]{}
}

// GetLock returns the mutex for the given key
func (lm *LockManager[K]) GetLock(key K) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the key's mutex
func (lm *LockManager[K]) WithLock(key K, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// Forget drops the mutex for a key that will not be used again
func (lm *LockManager[K]) Forget(key K) {
	lm.locks.Delete(key)
}
