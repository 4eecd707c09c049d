// Package cart carries the quick-add signal from the catalog view to the
// cart subsystem. The catalog only originates these events; it never
// validates or processes them, and there is no acknowledgment.
package cart

// Event is one quick-add action on a visible product.
type Event struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Notifier receives quick-add events. Implementations must not block:
// the signal is fire-and-forget.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

// ChannelNotifier buffers events on a channel for a consumer goroutine.
// When the buffer is full the event is dropped rather than blocking the
// originating event handler.
type ChannelNotifier struct {
	ch chan Event
}

func NewChannelNotifier(buffer int) *ChannelNotifier {
	if buffer < 1 {
		buffer = 1
	}
	return &ChannelNotifier{ch: make(chan Event, buffer)}
}

func (n *ChannelNotifier) Notify(e Event) {
	select {
	case n.ch <- e:
	default:
	}
}

// Events exposes the receive side for the cart consumer.
func (n *ChannelNotifier) Events() <-chan Event { return n.ch }
