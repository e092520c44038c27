package event

import "reflect"

// Bus delivers typed events to subscribers synchronously, in subscription order.
// A nil *Bus is valid and drops every event.
type Bus struct {
	handlers map[reflect.Type][]any
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{handlers: make(map[reflect.Type][]any)}
}

// Subscribe registers fn for events of type T. Subscribing to a nil bus does nothing.
func Subscribe[T any](b *Bus, fn func(T)) {
	if b == nil {
		return
	}
	t := reflect.TypeFor[T]()
	b.handlers[t] = append(b.handlers[t], fn)
}

// Publish calls every handler subscribed to T
func Publish[T any](b *Bus, ev T) {
	if b == nil {
		return
	}
	for _, h := range b.handlers[reflect.TypeFor[T]()] {
		h.(func(T))(ev)
	}
}

// Subscribers returns the number of handlers registered for T
func Subscribers[T any](b *Bus) int {
	if b == nil {
		return 0
	}
	return len(b.handlers[reflect.TypeFor[T]()])
}
