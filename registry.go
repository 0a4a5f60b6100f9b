package interact

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownReference reports a pointable reference name with no
	// registered value.
	ErrUnknownReference = errors.New("interact: unknown pointable reference")

	// ErrNotPointable reports a registered value that does not implement
	// the Pointable capability.
	ErrNotPointable = errors.New("interact: reference is not a pointable")
)

// Registry maps reference names from configuration documents to live values.
// It is the boundary where untyped wiring data enters the system; Resolve is
// the only place a "reference lacks the Pointable capability" failure can
// occur. Values registered under a name may be anything — resolution checks
// the capability, matching how an authoring tool stores loose object handles.
type Registry struct {
	entries map[string]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]any)}
}

// Register stores value under name, replacing any previous entry.
func (g *Registry) Register(name string, value any) {
	g.entries[name] = value
}

// Lookup returns the raw value registered under name.
func (g *Registry) Lookup(name string) (any, bool) {
	v, ok := g.entries[name]
	return v, ok
}

// Resolve returns the Pointable registered under name. It fails with
// ErrUnknownReference if nothing is registered, or ErrNotPointable if the
// registered value lacks the capability. Both are authoring mistakes, not
// transient conditions; callers should not retry.
func (g *Registry) Resolve(name string) (Pointable, error) {
	v, ok := g.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReference, name)
	}
	p, ok := v.(Pointable)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T", ErrNotPointable, name, v)
	}
	return p, nil
}

// NewEventRouterFromRef resolves name in reg and returns an initialized (but
// not yet enabled) router for it. Any error is a fatal configuration error:
// no router is returned and no events will ever be routed for the reference.
func NewEventRouterFromRef(reg *Registry, name string) (*EventRouter, error) {
	p, err := reg.Resolve(name)
	if err != nil {
		return nil, err
	}
	r := NewEventRouter(p)
	if err := r.Initialize(); err != nil {
		return nil, err
	}
	return r, nil
}
