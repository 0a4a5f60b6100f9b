package interact

// Filter is a Pointable that forwards only events from its source matching a
// predicate. Filters compose: wrap a Filter in another Filter to intersect
// conditions. The predicate runs on the raising goroutine, before the
// subscriber callback.
type Filter struct {
	source Pointable
	keep   func(PointerEvent) bool
}

// NewFilter wraps source so that only events for which keep returns true are
// forwarded to subscribers.
func NewFilter(source Pointable, keep func(PointerEvent) bool) *Filter {
	return &Filter{source: source, keep: keep}
}

// FilterKinds wraps source so that only events of the given kinds pass.
func FilterKinds(source Pointable, kinds ...EventKind) *Filter {
	var mask uint8
	for _, k := range kinds {
		mask |= 1 << k
	}
	return NewFilter(source, func(ev PointerEvent) bool {
		return mask&(1<<ev.Kind) != 0
	})
}

// FilterPointers wraps source so that only events from the given pointer IDs
// pass.
func FilterPointers(source Pointable, pointerIDs ...int) *Filter {
	allowed := make(map[int]struct{}, len(pointerIDs))
	for _, id := range pointerIDs {
		allowed[id] = struct{}{}
	}
	return NewFilter(source, func(ev PointerEvent) bool {
		_, ok := allowed[ev.PointerID]
		return ok
	})
}

// OnPointerEvent registers fn on the underlying source behind the predicate.
func (f *Filter) OnPointerEvent(fn func(PointerEvent)) Subscription {
	return f.source.OnPointerEvent(func(ev PointerEvent) {
		if f.keep(ev) {
			fn(ev)
		}
	})
}
