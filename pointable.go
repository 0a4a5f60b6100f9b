package interact

// Subscription represents an active callback registration on a Pointable.
type Subscription interface {
	// Remove unregisters the callback. Safe to call more than once.
	Remove()
}

// Pointable is implemented by anything capable of raising pointer-interaction
// events: input frontends, interactable proxies, or compositors over either.
// Implementations invoke the callback synchronously, once per event, on the
// goroutine that raises it.
type Pointable interface {
	OnPointerEvent(fn func(PointerEvent)) Subscription
}

// --- Emitter ---

// Emitter is a concrete Pointable that raises events programmatically. It is
// the composition primitive for adapting device input into the event stream
// and the main tool for driving routers in tests and scripts.
type Emitter struct {
	ch Channel
}

// NewEmitter creates an empty emitter with no subscribers.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// OnPointerEvent registers fn to receive every event raised on this emitter.
func (e *Emitter) OnPointerEvent(fn func(PointerEvent)) Subscription {
	return e.ch.Add(fn)
}

// SubscriberCount returns the number of active subscriptions.
func (e *Emitter) SubscriberCount() int {
	return e.ch.Len()
}

// Emit raises ev to all subscribers, synchronously.
func (e *Emitter) Emit(ev PointerEvent) {
	e.ch.Emit(ev)
}

// --- Convenience raisers ---

// Hover raises an EventHover for the given pointer at (x, y).
func (e *Emitter) Hover(pointerID int, x, y float64) {
	e.Emit(PointerEvent{Kind: EventHover, PointerID: pointerID, X: x, Y: y})
}

// Unhover raises an EventUnhover for the given pointer at (x, y).
func (e *Emitter) Unhover(pointerID int, x, y float64) {
	e.Emit(PointerEvent{Kind: EventUnhover, PointerID: pointerID, X: x, Y: y})
}

// Select raises an EventSelect for the given pointer at (x, y).
func (e *Emitter) Select(pointerID int, x, y float64) {
	e.Emit(PointerEvent{Kind: EventSelect, PointerID: pointerID, X: x, Y: y})
}

// Unselect raises an EventUnselect for the given pointer at (x, y).
func (e *Emitter) Unselect(pointerID int, x, y float64) {
	e.Emit(PointerEvent{Kind: EventUnselect, PointerID: pointerID, X: x, Y: y})
}

// Move raises an EventMove for the given pointer at (x, y).
func (e *Emitter) Move(pointerID int, x, y float64) {
	e.Emit(PointerEvent{Kind: EventMove, PointerID: pointerID, X: x, Y: y})
}

// Cancel raises an EventCancel for the given pointer at (x, y).
func (e *Emitter) Cancel(pointerID int, x, y float64) {
	e.Emit(PointerEvent{Kind: EventCancel, PointerID: pointerID, X: x, Y: y})
}
