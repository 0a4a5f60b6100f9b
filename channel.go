package interact

// --- Handler registry ---

type channelHandler struct {
	id uint32
	fn func(PointerEvent)
}

// Channel is an ordered multi-subscriber callback list for pointer events.
// Subscribers are invoked synchronously, in registration order, on whatever
// goroutine calls Emit. The zero value is ready to use.
//
// Callbacks may add or remove subscribers during dispatch: a callback removed
// mid-emit (itself included) no longer fires, and one added mid-emit first
// fires on the next Emit.
type Channel struct {
	handlers []channelHandler
	nextID   uint32
	emitting int  // reentrant Emit depth
	dirty    bool // a removal was deferred during dispatch
}

// Add registers fn and returns a handle that can remove it later.
func (c *Channel) Add(fn func(PointerEvent)) CallbackHandle {
	c.nextID++
	id := c.nextID
	c.handlers = append(c.handlers, channelHandler{id: id, fn: fn})
	return CallbackHandle{id: id, ch: c}
}

// Emit invokes every registered callback with ev, in registration order.
// Only callbacks registered before this Emit began are considered.
func (c *Channel) Emit(ev PointerEvent) {
	c.emitting++
	n := len(c.handlers)
	for i := 0; i < n; i++ {
		if fn := c.handlers[i].fn; fn != nil {
			fn(ev)
		}
	}
	c.emitting--
	if c.emitting == 0 && c.dirty {
		c.compact()
	}
}

// Len returns the number of registered callbacks.
func (c *Channel) Len() int {
	return len(c.handlers)
}

// compact drops entries cleared by a mid-emit Remove. Runs only once the
// outermost Emit returns, so dispatch never observes shifted slots.
func (c *Channel) compact() {
	kept := c.handlers[:0]
	for _, h := range c.handlers {
		if h.fn != nil {
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(c.handlers); i++ {
		c.handlers[i] = channelHandler{}
	}
	c.handlers = kept
	c.dirty = false
}

// CallbackHandle allows removing a registered callback from its Channel.
type CallbackHandle struct {
	id uint32
	ch *Channel
}

// Remove unregisters this callback so it no longer fires. Safe to call more
// than once, and safe to call from inside a callback during dispatch. Outside
// dispatch the entry is removed from the slice to avoid nil iteration waste;
// during dispatch it is cleared in place and compacted after Emit returns.
func (h CallbackHandle) Remove() {
	if h.ch == nil {
		return
	}
	if h.ch.emitting > 0 {
		for i := range h.ch.handlers {
			if h.ch.handlers[i].id == h.id && h.ch.handlers[i].fn != nil {
				h.ch.handlers[i].fn = nil
				h.ch.dirty = true
				return
			}
		}
		return
	}
	h.ch.handlers = removeChannelHandler(h.ch.handlers, h.id)
}

func removeChannelHandler(s []channelHandler, id uint32) []channelHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = channelHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}
