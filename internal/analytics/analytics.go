// Package analytics is the fire-and-forget event sink. Orchestration
// services hand fully formed events to a Tracker after a successful state
// transition; nothing here may block or fail the transition that produced
// the event.
package analytics

import (
	"context"
	"encoding/json"
	"sync"
)

// Kind identifies what happened.
type Kind string

const (
	PageView             Kind = "page_view"
	Search               Kind = "search"
	ProductView          Kind = "product_view"
	CheckoutView         Kind = "checkout_view"
	CartItemAdded        Kind = "cart_item_added"
	CartItemUpdated      Kind = "cart_item_updated"
	CartItemDeleted      Kind = "cart_item_deleted"
	ShippingMethodChosen Kind = "shipping_method_chosen"
	PaymentMethodChosen  Kind = "payment_method_chosen"
	CheckoutSuccess      Kind = "checkout_success"
)

// Event is one emitted occurrence. Only the fields meaningful for the
// Kind are set; Payload carries the product/cart/order snapshot when the
// event reports on one.
type Event struct {
	Kind       Kind
	Path       string
	Title      string
	SearchText string
	ItemID     string
	MethodID   string
	Payload    json.RawMessage
}

// Tracker consumes events. Implementations must be safe for concurrent
// use and must never propagate failures to the caller.
type Tracker interface {
	Track(ctx context.Context, e Event)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Track(context.Context, Event) {}

// Capture records events for test assertions.
type Capture struct {
	mu     sync.Mutex
	events []Event
}

func (c *Capture) Track(_ context.Context, e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

// Events returns a copy of everything tracked so far.
func (c *Capture) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Kinds returns just the tracked kinds, in order.
func (c *Capture) Kinds() []Kind {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Kind, len(c.events))
	for i, e := range c.events {
		out[i] = e.Kind
	}
	return out
}
