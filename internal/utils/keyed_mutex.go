package utils

import "sync"

// KeyedMutex serializes operations per key. It is used to lock a single
// reservation's folio without stalling writes to other reservations.
// Mutexes are created on first use and kept for the process lifetime; the
// key space (reservation IDs) is small enough that they are never reaped.
type KeyedMutex struct {
	mutexes sync.Map
}

// Lock acquires the mutex for key and returns the matching unlock func.
//
//	unlock := km.Lock(reservationID)
//	defer unlock()
func (km *KeyedMutex) Lock(key string) func() {
	v, _ := km.mutexes.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
