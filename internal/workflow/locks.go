// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import "sync"

// keyedMutex serializes operations per project id. Locks are created
// lazily on first use and never reclaimed; the population is bounded by
// the number of distinct projects an instance touches.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// lock acquires the mutex for key and returns its release func.
func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
