/*
Package chain implements the unlocked ring of weakly referenced nodes
shared by the list variants. Callers provide their own synchronization.
*/
package chain

import (
	"github.com/mgnsk/weaklist/ref"
)

// Node is a link in a ring.
//
// A detached payload node is self-linked. Marker nodes belong to cursors
// and carry no payload.
type Node[T any] struct {
	Payload    ref.Weak[T]
	next, prev *Node[T]
	ring       *Ring[T]
	marker     bool
}

// Attached returns whether the node is linked into r.
func (n *Node[T]) Attached(r *Ring[T]) bool {
	return n.ring == r
}

// link inserts s after this node.
func (n *Node[T]) link(s *Node[T]) {
	next := n.next
	n.next = s
	s.prev = n
	next.prev = s
	s.next = next
}

// unlink removes this node from its ring and self-links it.
func (n *Node[T]) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = n
	n.prev = n
}

// Ring is a ring of payload nodes around an embedded root.
//
// The zero value is a ready to use empty ring.
type Ring[T any] struct {
	root Node[T]
	len  int
}

func (r *Ring[T]) lazyInit() {
	if r.root.next == nil {
		r.root.next = &r.root
		r.root.prev = &r.root
	}
}

// Len returns the number of attached payload nodes.
func (r *Ring[T]) Len() int {
	return r.len
}

// PushBack links a node at the back of the ring.
// The node must not be attached to any ring.
func (r *Ring[T]) PushBack(n *Node[T]) {
	if n.ring != nil {
		panic("chain: node is already attached")
	}

	r.lazyInit()

	r.root.prev.link(n)
	n.ring = r
	r.len++
}

// Remove unlinks a node from the ring.
// It is a no-op unless the node is attached to this ring.
func (r *Ring[T]) Remove(n *Node[T]) {
	if n.ring != r {
		return
	}

	n.unlink()
	n.ring = nil
	r.len--
}

// Clear unlinks every payload node, leaving cursor markers in place.
// It never touches payloads.
func (r *Ring[T]) Clear() {
	if r.root.next == nil {
		return
	}

	for n := r.root.next; n != &r.root; {
		next := n.next
		if !n.marker {
			r.Remove(n)
		}
		n = next
	}
}

// Cursor is a traversal position spliced into the ring as a pair of
// marker nodes. The position marker trails the last visited node; the end
// marker pins the back of the ring as it was when the cursor was created.
// Nodes attached later land behind the end marker and are not visited.
//
// Chain mutation relinks around markers, so removing any payload node,
// including the one just visited, never invalidates a cursor.
type Cursor[T any] struct {
	pos, end Node[T]
	ring     *Ring[T]
}

// Cursor creates a traversal position starting at the front of the ring.
func (r *Ring[T]) Cursor() *Cursor[T] {
	r.lazyInit()

	c := &Cursor[T]{ring: r}
	c.pos.marker = true
	c.end.marker = true

	r.root.link(&c.pos)
	r.root.prev.link(&c.end)

	return c
}

// Step advances to the next live payload node and returns a strong
// reference to its payload, or false when the traversal is done. Dead
// nodes encountered on the way are unlinked.
func (c *Cursor[T]) Step() (*ref.Ref[T], bool) {
	if c.pos.next == &c.pos {
		// Closed cursor.
		return nil, false
	}

	for {
		n := c.pos.next
		if n == &c.ring.root || n == &c.end {
			return nil, false
		}

		if n.marker {
			// Another cursor's marker.
			c.pos.unlink()
			n.link(&c.pos)
			continue
		}

		if s, ok := n.Payload.Upgrade(); ok {
			c.pos.unlink()
			n.link(&c.pos)
			return s, true
		}

		c.ring.Remove(n)
	}
}

// Close unsplices the cursor's markers from the ring. Idempotent.
func (c *Cursor[T]) Close() {
	c.pos.unlink()
	c.end.unlink()
}
