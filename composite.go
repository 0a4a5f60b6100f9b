package interact

// Composite merges the event streams of several Pointables into one. A
// subscription on the composite is a subscription on every source, removed
// as a unit. The source list is fixed at construction so that an active
// subscription always covers exactly the sources it was created over.
type Composite struct {
	sources []Pointable
}

// NewComposite creates a composite over the given sources. The slice is
// copied; later mutation of the argument does not affect the composite.
func NewComposite(sources ...Pointable) *Composite {
	c := &Composite{sources: make([]Pointable, len(sources))}
	copy(c.sources, sources)
	return c
}

// Len returns the number of merged sources.
func (c *Composite) Len() int {
	return len(c.sources)
}

// OnPointerEvent registers fn on every source. Events arrive in whatever
// order the sources raise them; events from one source keep their order.
func (c *Composite) OnPointerEvent(fn func(PointerEvent)) Subscription {
	subs := make(multiSubscription, len(c.sources))
	for i, s := range c.sources {
		subs[i] = s.OnPointerEvent(fn)
	}
	return subs
}

type multiSubscription []Subscription

func (m multiSubscription) Remove() {
	for _, s := range m {
		s.Remove()
	}
}
