// Package event provides a synchronous lifecycle event bus.
//
// Handlers run on the publishing goroutine in registration order. Every
// Subscribe returns a Subscription so listeners can be removed again when a
// session is torn down, instead of leaking across restarts.
package event

import "fmt"

// Kind identifies a lifecycle event
type Kind int

const (
	KindNone Kind = iota
	EnteredGame
	QuitToMenu
	SceneMapSet
	SceneChanged
)

// String returns the event name used in logs
func (k Kind) String() string {
	switch k {
	case EnteredGame:
		return "EnteredGame"
	case QuitToMenu:
		return "QuitToMenu"
	case SceneMapSet:
		return "SceneMapSet"
	case SceneChanged:
		return "SceneChanged"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is a single published occurrence. Scene is only set for SceneChanged.
type Event struct {
	Kind  Kind
	Scene string
}

// Handler receives events
type Handler func(Event)

type listener struct {
	id uint64
	fn Handler
}

// Bus dispatches events to handlers. Not safe for concurrent use; the
// overlay publishes and subscribes from the frame goroutine only.
type Bus struct {
	nextID    uint64
	listeners map[Kind][]listener
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{listeners: make(map[Kind][]listener)}
}

// Subscription removes its handler from the bus when Unsubscribe is called
type Subscription struct {
	bus  *Bus
	kind Kind
	id   uint64
}

// Subscribe registers fn for kind
func (b *Bus) Subscribe(kind Kind, fn Handler) *Subscription {
	b.nextID++
	b.listeners[kind] = append(b.listeners[kind], listener{id: b.nextID, fn: fn})
	return &Subscription{bus: b, kind: kind, id: b.nextID}
}

// Unsubscribe removes the handler. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.bus == nil {
		return
	}
	ls := s.bus.listeners[s.kind]
	for i, l := range ls {
		if l.id == s.id {
			s.bus.listeners[s.kind] = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	s.bus = nil
}

// Publish delivers ev to every handler registered for ev.Kind
func (b *Bus) Publish(ev Event) {
	// Copy so a handler may unsubscribe itself mid-dispatch
	ls := append([]listener(nil), b.listeners[ev.Kind]...)
	for _, l := range ls {
		l.fn(ev)
	}
}

// HandlerCount returns the number of handlers registered for kind
func (b *Bus) HandlerCount(kind Kind) int {
	return len(b.listeners[kind])
}
