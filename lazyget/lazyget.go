// Package lazyget provides value-semantics helpers for exactly-once
// lazy initialization. It shares the claim-flag/published-slot protocol
// of package cell but accepts the constructor at the call site, so the
// zero value of Cache is ready to use as a struct field.
package lazyget

import (
	"runtime"
	"sync/atomic"
)

type Cache[T any] struct {
	claimed atomic.Bool
	slot    atomic.Pointer[T]
}

// Get returns the cached value, running initFunc exactly once across
// all callers to produce it. Callers that lose the first-access race
// spin until the winner publishes; nobody parks.
func (v *Cache[T]) Get(initFunc func() T) T {
	if p := v.slot.Load(); p != nil {
		return *p
	}
	if v.claimed.CompareAndSwap(false, true) {
		val := initFunc()
		v.slot.Store(&val)
		return val
	}
	for {
		if p := v.slot.Load(); p != nil {
			return *p
		}
		runtime.Gosched()
	}
}

func New[T any](fn func() T) func() T {
	var v Cache[T]
	return func() T { return v.Get(fn) }
}
