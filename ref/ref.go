/*
Package ref implements reference-counted strong and weak handles to a value.

A value stays alive while at least one strong handle exists. Weak handles
never extend the value's lifetime; upgrading a weak handle succeeds only
while the strong count is nonzero.
*/
package ref

import (
	"sync/atomic"
)

type control struct {
	strong atomic.Int64
}

// Ref is an owning handle to a value of type T.
//
// Each Ref must be released exactly once by its holder. Release is
// idempotent per handle. A Ref must not be copied; use Clone to create
// an independent handle.
type Ref[T any] struct {
	v        *T
	c        *control
	released atomic.Bool
}

// New creates a value and returns a strong handle to it.
func New[T any](value T) *Ref[T] {
	c := &control{}
	c.strong.Store(1)

	return &Ref[T]{v: &value, c: c}
}

// NewCyclic creates a value that refers to itself through a weak handle.
//
// The storage is allocated first, then build is called with a weak handle
// to it. The weak handle cannot be upgraded until build returns. This is
// the two-phase construction entry point for owners that embed a list
// element referring back to themselves.
func NewCyclic[T any](build func(self Weak[T]) T) *Ref[T] {
	c := &control{}
	v := new(T)

	*v = build(Weak[T]{v: v, c: c})

	c.strong.Store(1)

	return &Ref[T]{v: v, c: c}
}

// Value returns the referenced value.
//
// The value is valid for as long as the handle is not released.
func (r *Ref[T]) Value() *T {
	if r.released.Load() {
		panic("ref: use of released reference")
	}
	return r.v
}

// Clone returns a new independent strong handle to the same value.
func (r *Ref[T]) Clone() *Ref[T] {
	if r.released.Load() {
		panic("ref: clone of released reference")
	}

	r.c.strong.Add(1)

	return &Ref[T]{v: r.v, c: r.c}
}

// Release drops this handle's ownership. When the last strong handle is
// released, the value becomes unreachable through weak handles.
//
// Release is idempotent: releasing the same handle twice is a no-op.
func (r *Ref[T]) Release() {
	if r.released.CompareAndSwap(false, true) {
		r.c.strong.Add(-1)
	}
}

// Weak returns a non-owning handle to the value.
func (r *Ref[T]) Weak() Weak[T] {
	return Weak[T]{v: r.v, c: r.c}
}

// Weak is a non-owning handle to a value of type T.
//
// Weak handles are freely copyable. The zero value is a handle to nothing;
// its Upgrade always fails.
type Weak[T any] struct {
	v *T
	c *control
}

// Upgrade returns a strong handle to the value, or false if all strong
// handles are gone.
func (w Weak[T]) Upgrade() (*Ref[T], bool) {
	if w.c == nil {
		return nil, false
	}

	for {
		n := w.c.strong.Load()
		if n == 0 {
			return nil, false
		}

		if w.c.strong.CompareAndSwap(n, n+1) {
			return &Ref[T]{v: w.v, c: w.c}, true
		}
	}
}
