package unsync

import (
	"github.com/mgnsk/weaklist/internal/chain"
	"github.com/mgnsk/weaklist/ref"
)

// Element is a handle that can be attached to a list.
//
// An element is attached to at most one list at a time and holds only a
// weak reference to its value.
type Element[T any] struct {
	list *List[T]
	node chain.Node[T]
}

// NewElement creates a detached element bound to the given weak reference.
func NewElement[T any](payload ref.Weak[T]) *Element[T] {
	e := &Element[T]{}
	e.node.Payload = payload
	return e
}

// Attach attaches the element to the back of a list, detaching it first
// if it is attached to a list. A re-attach to the same list moves the
// element to the back.
func (e *Element[T]) Attach(l *List[T]) {
	if old := e.list; old != nil {
		old.ring.Remove(&e.node)
	}

	l.ring.PushBack(&e.node)
	e.list = l
}

// Detach detaches the element from its current list.
//
// Detach is idempotent and safe to call from within a callback run by an
// iteration of the same list, for this very element or any other.
func (e *Element[T]) Detach() {
	if l := e.list; l != nil {
		l.ring.Remove(&e.node)
		e.list = nil
	}
}
