// Package interact routes pointer-interaction events from a pointable source
// to independently bindable notification channels.
//
// The source of truth for "what happened" is a [Pointable]: anything that
// raises [PointerEvent] values (hover, unhover, select, unselect, move,
// cancel) tagged with an integer pointer ID so concurrent fingers, rays, or
// controllers stay distinguishable. An [EventRouter] subscribes to one
// pointable and fans each event out to a per-kind [Channel], plus a seventh
// derived channel, Release, which fires when a pointer is deselected while it
// is still hovering.
//
// # Quick start
//
//	emitter := interact.NewEmitter()
//	router := interact.NewEventRouter(emitter)
//	if err := router.Initialize(); err != nil {
//		log.Fatal(err)
//	}
//	router.OnRelease(func(ev interact.PointerEvent) {
//		fmt.Println("activated by pointer", ev.PointerID)
//	})
//	router.Enable()
//
//	emitter.Hover(1, 0, 0)
//	emitter.Select(1, 0, 0)
//	emitter.Unselect(1, 0, 0) // fires Release, then Unselect
//
// # Lifecycle
//
// A router moves through explicit states: Uninitialized → Initialized →
// Active ⇄ Inactive, with [EventRouter.Dispose] as the terminal exit.
// [EventRouter.Enable] attaches exactly one subscription and
// [EventRouter.Disable] is guaranteed to detach it, so a disabled or
// disposed router leaves no callback behind in its source.
//
// # Composition
//
// [Composite] merges several pointables into one stream and [Filter] narrows
// a stream by kind, pointer ID, or arbitrary predicate. [Registry] resolves
// configured reference names to pointables — the only fallible wiring path —
// and LoadBindings builds fully wired routers from a YAML document, so
// interaction behavior can be authored without code. [LoadScript] drives an
// [Emitter] from a JSON step script for automated interaction tests.
//
// Everything is single-threaded by contract: sources invoke handlers
// synchronously on the raising goroutine and channel dispatch is a plain
// sequential fan-out. Nothing blocks, queues, or locks.
package interact
