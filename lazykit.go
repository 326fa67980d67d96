package lazykit

import (
	"github.com/vormadev/lazykit/cell"
	"github.com/vormadev/lazykit/keyed"
	"github.com/vormadev/lazykit/lazyget"
)

// Type aliases for public API
type (
	Cell[T any]                 = cell.Cell[T]
	Cache[T any]                = lazyget.Cache[T]
	Map[K comparable, V any]    = keyed.Map[K, V]
	ErrMap[K comparable, V any] = keyed.ErrMap[K, V]
)

// New returns a Cell whose value is produced by fn on first access.
func New[T any](fn func() T) *Cell[T] { return cell.New(fn) }

// Func returns a getter bound to a new Cell over fn.
func Func[T any](fn func() T) func() *T { return cell.Func(fn) }

// Getter returns a value-semantics getter that runs fn exactly once.
func Getter[T any](fn func() T) func() T { return lazyget.New(fn) }

// NewMap returns a Map whose entries are initialized at most once per key.
func NewMap[K comparable, V any](fn func(K) V) *Map[K, V] { return keyed.New(fn) }

// NewErrMap is NewMap for constructors that can fail.
func NewErrMap[K comparable, V any](fn func(K) (V, error)) *ErrMap[K, V] { return keyed.NewErr(fn) }
