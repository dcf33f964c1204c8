package event

import (
	"log"
	"slices"
)

// Listener receives lifecycle events.
type Listener func(*Event)

// Filter returns a listener forwarding only events of the given types.
func Filter(listener Listener, types ...Type) Listener {
	return func(e *Event) {
		if slices.Contains(types, e.Type) {
			listener(e)
		}
	}
}

// Publisher delivers events synchronously to its listeners. A failing
// listener is logged and skipped; it never interrupts the publisher.
type Publisher struct {
	listeners []Listener
	logger    *log.Logger
}

// NewPublisher returns a publisher logging listener failures to logger, or
// to the standard logger when nil.
func NewPublisher(logger *log.Logger) *Publisher {
	if logger == nil {
		logger = log.Default()
	}
	return &Publisher{logger: logger}
}

// Subscribe registers listener.
func (p *Publisher) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	p.listeners = append(p.listeners, listener)
}

// Len returns the number of listeners.
func (p *Publisher) Len() int {
	if p == nil {
		return 0
	}
	return len(p.listeners)
}

// Publish delivers e to every listener in subscription order.
func (p *Publisher) Publish(e *Event) {
	if p == nil {
		return
	}
	for _, listener := range p.listeners {
		p.deliver(listener, e)
	}
}

func (p *Publisher) deliver(listener Listener, e *Event) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Printf("event: listener failed on %s %s: %v", e.Type, e.Context.Command, r)
		}
	}()
	listener(e)
}
