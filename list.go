/*
Package weaklist implements a thread-safe list of weakly referenced
elements that supports concurrent iteration and modification.

The list holds no strong references to its elements and the elements hold
no strong references to the list. Elements whose value has been released
are silently skipped and lazily pruned during iteration. Callbacks run
during iteration may attach or detach any element of the same list,
including the one being visited.
*/
package weaklist

import (
	"iter"
	"sync"

	"github.com/mgnsk/weaklist/internal/chain"
)

// List is a list of weakly referenced elements.
//
// The zero value is a ready to use empty list.
type List[T any] struct {
	mu   sync.Mutex
	ring chain.Ring[T]
}

// Len returns the number of attached elements, including elements whose
// value is gone but not yet pruned.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.ring.Len()
}

// Clear detaches every element from the list.
//
// No caller code is run and no element values are touched. In-flight
// iterations terminate normally.
func (l *List[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ring.Clear()
}

// All returns an iterator over the values of the attached elements, in
// attach order.
//
// Each step upgrades the element's weak reference; elements whose value
// is gone are pruned and skipped. The strong reference is held for the
// duration of the visit and released when the loop body returns.
//
// The list may be mutated during iteration, by the loop body itself or
// concurrently. An element attached while the iteration is in flight is
// not visited by it. An element that was attached when the iteration
// began and is not detached during it is visited exactly once.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		l.mu.Lock()
		cur := l.ring.Cursor()
		l.mu.Unlock()

		defer func() {
			l.mu.Lock()
			cur.Close()
			l.mu.Unlock()
		}()

		for {
			l.mu.Lock()
			s, ok := cur.Step()
			l.mu.Unlock()

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
