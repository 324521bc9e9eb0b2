package vrec

import (
	"reflect"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	verr "github.com/vango-dev/vrec/internal/errors"
	"github.com/vango-dev/vrec/pkg/surface"
	"github.com/vango-dev/vrec/pkg/vdom"
)

// Event is a synthetic event passed to handlers while it bubbles from its
// target through the target's ancestors.
type Event struct {
	// Type is the lower-cased event name, e.g. "click".
	Type string

	// Target is the surface node the event was dispatched on.
	Target surface.Node

	// CurrentTarget is the node whose handler is running.
	CurrentTarget surface.Node

	// Payload carries event data supplied by the host, such as an input
	// value or key code.
	Payload any

	// Handled counts the handlers that ran.
	Handled int

	stopped bool
}

// StopPropagation stops the event after the current handler.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether StopPropagation was called.
func (e *Event) Stopped() bool {
	return e.stopped
}

// eventTable maps live nodes to their registered handlers by event name.
type eventTable struct {
	handlers map[surface.Node]map[string]any
	lower    cases.Caser
}

func newEventTable() *eventTable {
	return &eventTable{
		handlers: make(map[surface.Node]map[string]any),
		lower:    cases.Lower(language.Und),
	}
}

// eventName turns a prop name or event type into its canonical form:
// "onClick", "onclick" and "click" all become "click".
func (t *eventTable) eventName(name string) string {
	if vdom.IsEventProp(name) {
		name = name[len(vdom.EventPrefix):]
	}
	return t.lower.String(name)
}

// register sets the handler for the event named by prop on node. A nil
// handler removes it.
func (t *eventTable) register(node surface.Node, prop string, handler any) {
	event := t.eventName(prop)
	if handler == nil {
		if m := t.handlers[node]; m != nil {
			delete(m, event)
			if len(m) == 0 {
				delete(t.handlers, node)
			}
		}
		return
	}
	switch handler.(type) {
	case func(), func(*Event):
	default:
		verr.Raise(verr.CodeInvalidHandler, "RegisterHandler", "handler for %q has type %T", event, handler)
	}
	m := t.handlers[node]
	if m == nil {
		m = make(map[string]any)
		t.handlers[node] = m
	}
	m[event] = handler
}

func (t *eventTable) lookup(node surface.Node, event string) any {
	return t.handlers[node][event]
}

func (t *eventTable) unregisterAll(node surface.Node) {
	delete(t.handlers, node)
}

// count returns the number of registered handlers.
func (t *eventTable) count() int {
	n := 0
	for _, m := range t.handlers {
		n += len(m)
	}
	return n
}

// RegisterHandler registers handler for event on a live node outside of
// element props. handler must be func() or func(*Event); nil removes it.
func (r *Root) RegisterHandler(node surface.Node, event string, handler any) {
	r.events.register(node, event, handler)
}

// HasHandler reports whether node has a handler for event.
func (r *Root) HasHandler(node surface.Node, event string) bool {
	return r.events.lookup(node, r.events.eventName(event)) != nil
}

// DispatchEvent dispatches an event of the given type at target and
// bubbles it through the target's ancestors. All handlers run inside one
// batch window, so state updates they make render once, after the last
// handler.
func (r *Root) DispatchEvent(target surface.Node, eventType string, payload any) *Event {
	ev := &Event{
		Type:    r.events.eventName(strings.TrimSpace(eventType)),
		Target:  target,
		Payload: payload,
	}
	r.logger.Debug("dispatch event", "type", ev.Type)

	r.scheduler.Batch(func() {
		for cur := target; cur != nil; cur = r.surface.ParentNode(cur) {
			if h := r.events.lookup(cur, ev.Type); h != nil {
				ev.CurrentTarget = cur
				ev.Handled++
				switch fn := h.(type) {
				case func():
					fn()
				case func(*Event):
					fn(ev)
				}
				if ev.stopped {
					return
				}
			}
		}
	})
	return ev
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
