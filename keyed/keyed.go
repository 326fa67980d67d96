// Package keyed provides maps whose entries are lazily initialized at
// most once per key. Each entry is backed by its own cell, so distinct
// keys initialize independently and concurrently while racing callers
// of the same key share a single constructor run.
package keyed

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vormadev/lazykit/cell"
)

type Map[K comparable, V any] struct {
	fn    func(K) V
	cells sync.Map // K -> *cell.Cell[V]
}

// New returns a Map that produces the value for each key with fn on the
// key's first Get. Panics if fn is nil.
func New[K comparable, V any](fn func(K) V) *Map[K, V] {
	if fn == nil {
		panic("keyed: nil constructor")
	}
	return &Map[K, V]{fn: fn}
}

// Get returns the value for key, constructing it if this is the key's
// first access. The constructor runs exactly once per key regardless of
// how many goroutines race the first access.
func (m *Map[K, V]) Get(key K) V {
	return *m.cellFor(key).Get()
}

func (m *Map[K, V]) cellFor(key K) *cell.Cell[V] {
	if c, ok := m.cells.Load(key); ok {
		return c.(*cell.Cell[V])
	}
	// Racing stores may allocate spare cells for the same key, but only
	// the one that lands in the map is ever constructed through.
	c, _ := m.cells.LoadOrStore(key, cell.New(func() V { return m.fn(key) }))
	return c.(*cell.Cell[V])
}

// Len reports how many keys have been fully initialized.
func (m *Map[K, V]) Len() int {
	n := 0
	m.cells.Range(func(_, v any) bool {
		if v.(*cell.Cell[V]).Initialized() {
			n++
		}
		return true
	})
	return n
}

// Range calls f for each initialized entry until f returns false.
// Entries mid-construction are skipped, never observed partially built.
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	m.cells.Range(func(k, v any) bool {
		c := v.(*cell.Cell[V])
		if !c.Initialized() {
			return true
		}
		return f(k.(K), *c.Get())
	})
}

type errResult[V any] struct {
	val V
	err error
}

// ErrMap is a Map whose per-key constructor can fail. The first attempt
// for a key is the only attempt: its outcome, value or error, is cached
// and returned to every caller of that key from then on.
type ErrMap[K comparable, V any] struct {
	inner *Map[K, errResult[V]]
}

// NewErr returns an ErrMap over fn. Panics if fn is nil.
func NewErr[K comparable, V any](fn func(K) (V, error)) *ErrMap[K, V] {
	if fn == nil {
		panic("keyed: nil constructor")
	}
	return &ErrMap[K, V]{inner: New(func(key K) errResult[V] {
		v, err := fn(key)
		return errResult[V]{val: v, err: err}
	})}
}

// Get returns the value for key, running the constructor if this is the
// key's first access. A constructor error is cached alongside the zero
// value and surfaced to all callers of that key.
func (m *ErrMap[K, V]) Get(key K) (V, error) {
	r := m.inner.Get(key)
	return r.val, r.err
}

// Warm initializes the given keys in parallel. It returns the first
// constructor error and cancels the remaining uninitialized keys; keys
// whose constructors already ran are unaffected.
func (m *ErrMap[K, V]) Warm(ctx context.Context, keys ...K) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := m.Get(key)
			return err
		})
	}
	return g.Wait()
}

// Len reports how many keys have a cached outcome, including cached
// errors.
func (m *ErrMap[K, V]) Len() int {
	return m.inner.Len()
}
