/*
Package unsync implements the single-goroutine variant of the weak list.

It shares the contract of the root package without any internal locking:
lists and elements must be confined to one goroutine. Mutating the list
from within an iteration, including detaching the element being visited,
remains safe.
*/
package unsync

import (
	"iter"

	"github.com/mgnsk/weaklist/internal/chain"
)

// List is a list of weakly referenced elements.
//
// The zero value is a ready to use empty list.
type List[T any] struct {
	ring chain.Ring[T]
}

// Len returns the number of attached elements, including elements whose
// value is gone but not yet pruned.
func (l *List[T]) Len() int {
	return l.ring.Len()
}

// Clear detaches every element from the list.
//
// No caller code is run and no element values are touched. In-flight
// iterations terminate normally.
func (l *List[T]) Clear() {
	l.ring.Clear()
}

// All returns an iterator over the values of the attached elements, in
// attach order.
//
// Elements whose value is gone are pruned and skipped. The loop body may
// mutate the list; an element attached while the iteration is in flight
// is not visited by it.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		cur := l.ring.Cursor()
		defer cur.Close()

		for {
			s, ok := cur.Step()
			if !ok {
				return
			}

			proceed := yield(s.Value())
			s.Release()

			if !proceed {
				return
			}
		}
	}
}

// Do calls f on the value of each attached element, in attach order.
// If f returns false, Do stops the iteration.
func (l *List[T]) Do(f func(value *T) bool) {
	for v := range l.All() {
		if !f(v) {
			return
		}
	}
}
