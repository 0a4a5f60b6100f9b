package interact

import "errors"

// --- Lifecycle ---

// LifecycleState identifies where an EventRouter is in its lifecycle.
type LifecycleState uint8

const (
	StateUninitialized LifecycleState = iota // constructed, Initialize has not completed
	StateInitialized                         // initialized, never enabled
	StateActive                              // enabled, subscription attached
	StateInactive                            // disabled after having been active
)

// String returns a short name for the state, for error messages and traces.
func (s LifecycleState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateActive:
		return "active"
	case StateInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// --- Errors ---

var (
	// ErrNoPointable reports an EventRouter initialized without an event
	// source. This is a static wiring mistake; the router stays non-functional.
	ErrNoPointable = errors.New("interact: event router has no pointable source")

	// ErrAlreadyInitialized reports an Initialize or SetPointable call after
	// initialization has already begun or completed.
	ErrAlreadyInitialized = errors.New("interact: event router already initialized")
)

// --- EventSink ---

// EventSink is the interface for optional downstream bridges (ECS stores,
// recorders, replay logs). When set on a router, every routed event is
// forwarded to the sink after channel dispatch for that event completes.
type EventSink interface {
	EmitPointerEvent(ev PointerEvent)
}

// --- EventRouter ---

// EventRouter bridges one Pointable event stream to seven independently
// subscribable channels: one per raw event kind, plus the derived Release
// channel. Release fires on an Unselect whose pointer is still hovering —
// "deselected while actively tracked" — strictly before the Unselect channel.
//
// The router is single-threaded by contract: the source invokes the handler
// synchronously on whatever goroutine raises the event (in practice the host
// loop's update goroutine), and nothing here locks. The host lifecycle is
// expected to enforce single activation; state-machine guards make repeated
// Enable/Disable calls no-ops rather than errors.
type EventRouter struct {
	state        LifecycleState
	initializing bool
	disposed     bool

	source Pointable
	sub    Subscription
	sink   EventSink

	// hovering holds the pointer IDs whose most recent Hover has not been
	// followed by an Unhover or Cancel. Unselect never mutates it, so a
	// pointer can stay tracked across any number of Select/Unselect cycles.
	hovering map[int]struct{}

	hoverCh    Channel
	unhoverCh  Channel
	selectCh   Channel
	unselectCh Channel
	moveCh     Channel
	cancelCh   Channel
	releaseCh  Channel

	debug bool
}

// NewEventRouter creates a router bound to the given source. The source is
// statically known to satisfy Pointable, so this path cannot misconfigure;
// use Registry.Resolve (or NewEventRouterFromRef) when the source comes from
// configuration data instead.
func NewEventRouter(source Pointable) *EventRouter {
	return &EventRouter{source: source}
}

// SetPointable injects the event source, replacing any configured one.
// Only legal before Initialize; afterwards the wiring is fixed.
func (r *EventRouter) SetPointable(p Pointable) error {
	if r.initializing || r.state != StateUninitialized {
		return ErrAlreadyInitialized
	}
	r.source = p
	return nil
}

// Initialize validates the wiring and creates the tracked-pointer set.
// It runs at most once per router; re-entrant or repeated calls return
// ErrAlreadyInitialized. A router without a source fails with ErrNoPointable
// and never routes an event.
func (r *EventRouter) Initialize() error {
	if r.initializing || r.state != StateUninitialized {
		return ErrAlreadyInitialized
	}
	if r.source == nil {
		return ErrNoPointable
	}
	r.initializing = true
	r.hovering = make(map[int]struct{})
	r.initializing = false
	r.state = StateInitialized
	return nil
}

// Enable attaches the router's single subscription to its source. Before
// Initialize has completed (including during it) this is a no-op, so the
// handler can never run against a missing tracked set. Enabling an already
// active or disposed router is also a no-op.
func (r *EventRouter) Enable() {
	if r.initializing || r.disposed {
		return
	}
	if r.state != StateInitialized && r.state != StateInactive {
		return
	}
	r.sub = r.source.OnPointerEvent(r.route)
	r.state = StateActive
}

// Disable detaches the subscription so the source no longer holds a callback
// into this router. Safe to call repeatedly; only the first call after Enable
// does any work.
func (r *EventRouter) Disable() {
	if r.state != StateActive {
		return
	}
	r.sub.Remove()
	r.sub = nil
	r.state = StateInactive
}

// Dispose disables the router and makes it permanently inert.
func (r *EventRouter) Dispose() {
	r.Disable()
	r.disposed = true
}

// State returns the router's current lifecycle state.
func (r *EventRouter) State() LifecycleState {
	return r.state
}

// SetEventSink sets the optional raw-stream bridge. Pass nil to detach.
func (r *EventRouter) SetEventSink(sink EventSink) {
	r.sink = sink
}

// --- Dispatch ---

// route is the single handler subscribed to the source. Channel invocation
// happens before the tracked-set mutation for the same event, so a subscriber
// querying IsHovering mid-call observes the state prior to this event.
func (r *EventRouter) route(ev PointerEvent) {
	if r.debug {
		r.debugLogEvent(ev)
	}
	switch ev.Kind {
	case EventHover:
		r.hoverCh.Emit(ev)
		r.hovering[ev.PointerID] = struct{}{}
	case EventUnhover:
		r.unhoverCh.Emit(ev)
		delete(r.hovering, ev.PointerID)
	case EventSelect:
		r.selectCh.Emit(ev)
	case EventUnselect:
		if _, tracked := r.hovering[ev.PointerID]; tracked {
			r.releaseCh.Emit(ev)
		}
		r.unselectCh.Emit(ev)
	case EventMove:
		r.moveCh.Emit(ev)
	case EventCancel:
		r.cancelCh.Emit(ev)
		delete(r.hovering, ev.PointerID)
	}
	if r.sink != nil {
		r.sink.EmitPointerEvent(ev)
	}
}

// --- Channel registration ---

// OnHover registers a callback for hover events.
func (r *EventRouter) OnHover(fn func(PointerEvent)) CallbackHandle {
	return r.hoverCh.Add(fn)
}

// OnUnhover registers a callback for unhover events.
func (r *EventRouter) OnUnhover(fn func(PointerEvent)) CallbackHandle {
	return r.unhoverCh.Add(fn)
}

// OnSelect registers a callback for select events.
func (r *EventRouter) OnSelect(fn func(PointerEvent)) CallbackHandle {
	return r.selectCh.Add(fn)
}

// OnUnselect registers a callback for unselect events. Fired for every
// Unselect, whether or not Release fired for it.
func (r *EventRouter) OnUnselect(fn func(PointerEvent)) CallbackHandle {
	return r.unselectCh.Add(fn)
}

// OnMove registers a callback for move events.
func (r *EventRouter) OnMove(fn func(PointerEvent)) CallbackHandle {
	return r.moveCh.Add(fn)
}

// OnCancel registers a callback for cancel events.
func (r *EventRouter) OnCancel(fn func(PointerEvent)) CallbackHandle {
	return r.cancelCh.Add(fn)
}

// OnRelease registers a callback for the derived release notification:
// an Unselect arriving while the same pointer is still hovering. When it
// fires, it completes before any Unselect callback for the same event begins.
func (r *EventRouter) OnRelease(fn func(PointerEvent)) CallbackHandle {
	return r.releaseCh.Add(fn)
}

// ChannelByName returns the channel for a binding-document name: "hover",
// "unhover", "select", "unselect", "move", "cancel", or "release".
// Returns nil for an unknown name.
func (r *EventRouter) ChannelByName(name string) *Channel {
	switch name {
	case "hover":
		return &r.hoverCh
	case "unhover":
		return &r.unhoverCh
	case "select":
		return &r.selectCh
	case "unselect":
		return &r.unselectCh
	case "move":
		return &r.moveCh
	case "cancel":
		return &r.cancelCh
	case "release":
		return &r.releaseCh
	default:
		return nil
	}
}

// --- Tracked-set queries ---

// IsHovering reports whether the given pointer is currently tracked as
// hovering this router's pointable.
func (r *EventRouter) IsHovering(pointerID int) bool {
	_, ok := r.hovering[pointerID]
	return ok
}

// HoveringCount returns the number of pointers currently tracked as hovering.
func (r *EventRouter) HoveringCount() int {
	return len(r.hovering)
}
