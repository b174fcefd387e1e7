package main

import (
	"fmt"

	"github.com/mgnsk/weaklist"
	"github.com/mgnsk/weaklist/ref"
)

// Service notifies registered clients. It holds no strong references to
// them: a client that goes away is dropped from the list automatically.
type Service struct {
	callbacks weaklist.List[Client]
}

func (s *Service) Register(c *Client) {
	c.element.Attach(&s.callbacks)
}

func (s *Service) RunCallbacks() {
	for c := range s.callbacks.All() {
		c.Run()
	}
}

// Client embeds its own list element, referring back to itself through a
// weak reference.
type Client struct {
	id      int
	element *weaklist.Element[Client]
}

func (c *Client) Run() {
	fmt.Printf("callback %d invoked\n", c.id)

	if c.id == 1 {
		// Unsubscribe from within the notification.
		c.element.Detach()
	}
}

func main() {
	service := &Service{}

	var clients []*ref.Ref[Client]
	for id := 0; id < 3; id++ {
		c := ref.NewCyclic(func(self ref.Weak[Client]) Client {
			return Client{
				id:      id,
				element: weaklist.NewElement(self),
			}
		})
		clients = append(clients, c)
		service.Register(c.Value())
	}

	service.RunCallbacks()
	// callback 0 invoked
	// callback 1 invoked
	// callback 2 invoked

	service.RunCallbacks()
	// callback 0 invoked
	// callback 2 invoked

	// Drop client 0 entirely; it disappears without unsubscribing.
	clients[0].Release()

	service.RunCallbacks()
	// callback 2 invoked
}
