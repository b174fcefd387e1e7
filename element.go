package weaklist

import (
	"sync"

	"github.com/mgnsk/weaklist/internal/chain"
	"github.com/mgnsk/weaklist/ref"
)

// Element is a handle that can be attached to a list.
//
// An element is attached to at most one list at a time. It holds a weak
// reference to its value; the value is kept alive only by strong
// references held elsewhere. Often the element is embedded in the value
// itself, constructed with ref.NewCyclic.
type Element[T any] struct {
	mu   sync.Mutex
	list *List[T]
	node chain.Node[T]
}

// NewElement creates a detached element bound to the given weak reference.
func NewElement[T any](payload ref.Weak[T]) *Element[T] {
	e := &Element[T]{}
	e.node.Payload = payload
	return e
}

// Attach attaches the element to the back of a list.
//
// If the element is attached to a list, the same or a different one, it
// is first detached: attach re-parents instead of failing, and a
// re-attach to the same list moves the element to the back. An in-flight
// iteration over the target list does not visit the element.
func (e *Element[T]) Attach(l *List[T]) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if old := e.list; old != nil {
		old.mu.Lock()
		old.ring.Remove(&e.node)
		old.mu.Unlock()
	}

	l.mu.Lock()
	l.ring.PushBack(&e.node)
	l.mu.Unlock()

	e.list = l
}

// Detach detaches the element from its current list.
//
// Detach is idempotent and safe to call from within a callback run by an
// iteration of the same list, for this very element or any other.
func (e *Element[T]) Detach() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if l := e.list; l != nil {
		l.mu.Lock()
		l.ring.Remove(&e.node)
		l.mu.Unlock()

		e.list = nil
	}
}
