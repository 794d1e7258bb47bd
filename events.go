package menu

import "log/slog"

// EventType identifies the mutation an Event describes.
type EventType uint8

const (
	// EventSelect fires when a leaf becomes the selected item.
	EventSelect EventType = iota
	// EventOpenChange fires when a branch is expanded.
	EventOpenChange
	// EventCollapse fires when a branch is collapsed.
	EventCollapse
	// EventHover fires when the pointer settles on an item.
	EventHover
	// EventCollapsedChange fires when rail presentation toggles.
	EventCollapsedChange
)

// Event carries the affected id(s) and the resulting canonical field for a
// single mutation. It is deliberately not a full state snapshot — consumers
// that need more pull it from the engine's getters.
type Event struct {
	Type EventType
	ID   string // the item the mutation targeted

	Open   bool     // EventOpenChange: resulting open state
	Closed []string // ids removed from the expanded set (cascade or accordion)

	Collapsed bool // EventCollapsedChange: resulting rail state
}

// emitter fans a mutation event out to subscribers, one listener list per
// event type. Unsubscribing nils the slot rather than reslicing so handles
// registered mid-dispatch stay valid.
type emitter struct {
	listeners map[EventType][]func(Event)
	log       *slog.Logger
}

func newEmitter(log *slog.Logger) *emitter {
	return &emitter{
		listeners: make(map[EventType][]func(Event)),
		log:       log,
	}
}

// on registers fn for events of type t and returns an unsubscribe closure.
func (e *emitter) on(t EventType, fn func(Event)) func() {
	e.listeners[t] = append(e.listeners[t], fn)
	idx := len(e.listeners[t]) - 1
	return func() {
		e.listeners[t][idx] = nil
	}
}

// emit invokes every live listener for ev's type, synchronously and in
// registration order. A panicking handler is logged and skipped so one bad
// subscriber cannot block the rest or corrupt engine state.
func (e *emitter) emit(ev Event) {
	for _, fn := range e.listeners[ev.Type] {
		if fn == nil {
			continue
		}
		e.dispatch(fn, ev)
	}
}

func (e *emitter) dispatch(fn func(Event), ev Event) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("menu event handler panicked",
				"event", ev.Type,
				"id", ev.ID,
				"panic", r,
			)
		}
	}()
	fn(ev)
}
