// Package cell provides an atomic-guarded container for exactly-once,
// deferred initialization of process-wide values.
//
// A Cell defers an expensive constructor (heap allocations, function
// calls, derived state) until the first Get, runs it exactly once even
// under concurrent first access, and then hands every caller the same
// pointer for the remainder of the process. It is lock-free: goroutines
// that lose the initialization race spin until the winner publishes the
// value rather than parking on a mutex, and once the value is published
// Get is a single atomic load plus a nil check.
package cell

import (
	"runtime"
	"sync/atomic"
)

// Cell holds a value of type T constructed on first access and shared,
// unchanged, until the process exits.
//
// The claim flag transitions one way, Uninitialized -> Initialized, via
// a single CompareAndSwap; the goroutine that wins the swap runs the
// constructor and publishes the result into the slot. Publication uses
// a release store on the slot pointer paired with acquire loads on
// every read, so a reader that observes a non-nil slot is guaranteed to
// observe the fully constructed value behind it, never a partial write.
//
// T must be safe for concurrent readers once constructed. Cell
// guarantees readers only ever see the completed value; it cannot make
// it safe to mutate T through the shared pointer afterward.
//
// Do not instantiate Cell directly; use New.
type Cell[T any] struct {
	fn      func() T
	claimed atomic.Bool
	slot    atomic.Pointer[T]
}

// New returns a Cell whose value is produced by fn on the first Get.
// Panics if fn is nil, so a bad declaration fails where it is written
// rather than at first use.
func New[T any](fn func() T) *Cell[T] {
	if fn == nil {
		panic("cell: nil constructor")
	}
	return &Cell[T]{fn: fn}
}

// Func returns a getter bound to a new Cell over fn. Intended for
// package-level declarations of lazily computed values:
//
//	var registry = cell.Func(buildRegistry)
func Func[T any](fn func() T) func() *T {
	c := New(fn)
	return c.Get
}

// Get returns the shared instance of T, constructing it if this is the
// first access. The returned pointer compares equal across all calls
// and all goroutines and stays valid for the life of the process.
//
// Get never parks the calling goroutine. If the constructor panics, the
// panic propagates to the goroutine that ran it and the Cell is left
// permanently claimed-but-empty; there is no recovery or retry.
func (c *Cell[T]) Get() *T {
	if p := c.slot.Load(); p != nil {
		return p
	}
	return c.getSlow()
}

func (c *Cell[T]) getSlow() *T {
	if c.claimed.CompareAndSwap(false, true) {
		v := c.fn()
		p := &v
		c.slot.Store(p)
		c.fn = nil // release the constructor and anything it captured
		return p
	}
	// Lost the claim race. The winner is mid-construction; spin until
	// the value lands.
	for {
		if p := c.slot.Load(); p != nil {
			return p
		}
		runtime.Gosched()
	}
}

// Initialized reports whether the value has been constructed and
// published. It never triggers construction.
func (c *Cell[T]) Initialized() bool {
	return c.slot.Load() != nil
}
