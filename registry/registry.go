/*
Package registry implements a topic-keyed callback registry built on weak
lists.

Subscribers attach an element per topic and are notified in subscribe
order. A subscriber may unsubscribe itself from within its own callback,
and a subscriber whose value has been released is silently dropped.
*/
package registry

import (
	"github.com/mgnsk/weaklist"
	"github.com/puzpuzpuz/xsync/v2"
)

// Registry maps topics to lists of weakly referenced subscribers.
type Registry[T any] struct {
	topics *xsync.MapOf[string, *weaklist.List[T]]
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		topics: xsync.NewMapOf[*weaklist.List[T]](),
	}
}

// Subscribe attaches an element to a topic, creating the topic on demand.
//
// An element subscribed to another topic is moved: the element's attach
// re-parenting applies across topic lists.
func (r *Registry[T]) Subscribe(topic string, e *weaklist.Element[T]) {
	l, _ := r.topics.LoadOrCompute(topic, func() *weaklist.List[T] {
		return &weaklist.List[T]{}
	})

	e.Attach(l)
}

// Notify calls f on every live subscriber of a topic, in subscribe order.
func (r *Registry[T]) Notify(topic string, f func(value *T)) {
	if l, ok := r.topics.Load(topic); ok {
		for v := range l.All() {
			f(v)
		}
	}
}

// Len returns the number of elements subscribed to a topic, including
// elements whose value is gone but not yet pruned.
func (r *Registry[T]) Len(topic string) int {
	if l, ok := r.topics.Load(topic); ok {
		return l.Len()
	}
	return 0
}

// Clear detaches all subscribers from all topics.
func (r *Registry[T]) Clear() {
	r.topics.Range(func(topic string, l *weaklist.List[T]) bool {
		l.Clear()
		return true
	})
}
