package interact

// EventKind identifies a kind of pointer-interaction event.
type EventKind uint8

const (
	EventHover    EventKind = iota // fires when a pointer begins hovering the pointable
	EventUnhover                   // fires when a pointer stops hovering
	EventSelect                    // fires when a pointer selects (press, pinch, trigger)
	EventUnselect                  // fires when a selection ends
	EventMove                      // fires when a pointer moves during an interaction
	EventCancel                    // fires when the source aborts an interaction
)

// String returns the lowercase channel name for the kind ("hover", "select", ...).
// These names are also the channel identifiers used by binding documents.
func (k EventKind) String() string {
	switch k {
	case EventHover:
		return "hover"
	case EventUnhover:
		return "unhover"
	case EventSelect:
		return "select"
	case EventUnselect:
		return "unselect"
	case EventMove:
		return "move"
	case EventCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent describes a single interaction occurrence raised by a
// Pointable. Events are immutable values; subscribers receive them read-only.
type PointerEvent struct {
	Kind      EventKind
	PointerID int     // distinguishes concurrent pointers (fingers, rays, controllers)
	X, Y      float64 // pointer position in the source's coordinate space
	UserData  any     // opaque payload supplied by the source
}
