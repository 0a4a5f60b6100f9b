package interact

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables per-event trace logging. When enabled,
// every event entering the router is printed to stderr before dispatch.
func (r *EventRouter) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// debugLogEvent prints one trace line to stderr. The hovering count is the
// value before this event's dispatch and mutation.
func (r *EventRouter) debugLogEvent(ev PointerEvent) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[interact] %s pointer=%d (%.1f, %.1f) | state: %s | hovering: %d\n",
		ev.Kind, ev.PointerID, ev.X, ev.Y, r.state, len(r.hovering))
}
