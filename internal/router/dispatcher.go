package router

import "github.com/Amor-Self-learning/docview/internal/registry"

// Handler reacts to a navigation change.
type Handler func(State)

// Dispatcher owns the current address fragment and is the single source of
// truth for "where am I". Components subscribe handlers; every fragment
// change triggers a full re-parse and one publish in registration order.
//
// A Dispatcher belongs to a single session event loop and is not safe for
// concurrent use.
type Dispatcher struct {
	reg      *registry.Registry
	fragment string
	current  State
	handlers []Handler
}

// NewDispatcher creates a dispatcher positioned at home.
func NewDispatcher(reg *registry.Registry) *Dispatcher {
	return &Dispatcher{reg: reg, fragment: "#", current: Home}
}

// Subscribe registers a handler. Handlers run synchronously on every
// fragment change, in the order they were registered.
func (d *Dispatcher) Subscribe(h Handler) {
	d.handlers = append(d.handlers, h)
}

// Current returns the state parsed from the latest fragment.
func (d *Dispatcher) Current() State { return d.current }

// Fragment returns the raw current fragment.
func (d *Dispatcher) Fragment() string { return d.fragment }

// SetFragment records a new raw fragment, re-parses it, and publishes the
// resulting state. Setting the same fragment twice yields the same state and
// the same publishes.
func (d *Dispatcher) SetFragment(raw string) {
	d.fragment = raw
	d.current = ParseState(raw, d.reg)
	for _, h := range d.handlers {
		h(d.current)
	}
}

// Navigate sets the fragment for the given target. It never renders
// directly: all rendering flows through the fragment-change publish, so
// every navigation takes the same code path.
func (d *Dispatcher) Navigate(sectionID, file string) {
	if sectionID == "" {
		d.SetFragment("#")
		return
	}
	d.SetFragment(Serialize(State{Mode: ModeSection, SectionID: sectionID, File: file}))
}
