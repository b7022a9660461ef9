// Package eventbus provides the contract and an in-memory
// implementation for publishing domain events.
package eventbus

// Event is implemented by every domain event.
type Event interface {
	EventType() string
}
