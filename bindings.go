package interact

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ActionSet maps action names to callbacks for declarative bindings. An
// application registers its behaviors once; binding documents then refer to
// them by name, so interaction wiring needs no code.
type ActionSet struct {
	actions map[string]func(PointerEvent)
}

// NewActionSet creates an empty action set.
func NewActionSet() *ActionSet {
	return &ActionSet{actions: make(map[string]func(PointerEvent))}
}

// Register stores fn under name, replacing any previous action.
func (a *ActionSet) Register(name string, fn func(PointerEvent)) {
	a.actions[name] = fn
}

// --- Binding document ---

type bindingSpec struct {
	Channel string `yaml:"channel"`
	Action  string `yaml:"action"`
}

type routerSpec struct {
	Pointable string        `yaml:"pointable"`
	Bindings  []bindingSpec `yaml:"bindings"`
}

type bindingsFile struct {
	Routers []routerSpec `yaml:"routers"`
}

// LoadBindings parses a YAML wiring document and returns the routers it
// describes, initialized, bound, and enabled. Each router entry names a
// pointable reference in refs and binds channels ("hover" ... "release") to
// actions in actions. Every unresolved name is a fatal configuration error:
// nothing is returned and nothing routes.
//
// Document shape:
//
//	routers:
//	  - pointable: door_handle
//	    bindings:
//	      - channel: hover
//	        action: highlight
//	      - channel: release
//	        action: open_door
func LoadBindings(data []byte, refs *Registry, actions *ActionSet) ([]*EventRouter, error) {
	var file bindingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse bindings: %w", err)
	}
	if len(file.Routers) == 0 {
		return nil, fmt.Errorf("parse bindings: no routers")
	}

	routers := make([]*EventRouter, 0, len(file.Routers))
	for _, entry := range file.Routers {
		r, err := NewEventRouterFromRef(refs, entry.Pointable)
		if err != nil {
			return nil, err
		}
		for _, b := range entry.Bindings {
			ch := r.ChannelByName(b.Channel)
			if ch == nil {
				return nil, fmt.Errorf("bindings: pointable %q: unknown channel %q",
					entry.Pointable, b.Channel)
			}
			fn, ok := actions.actions[b.Action]
			if !ok {
				return nil, fmt.Errorf("bindings: pointable %q: unknown action %q",
					entry.Pointable, b.Action)
			}
			ch.Add(fn)
		}
		routers = append(routers, r)
	}

	for _, r := range routers {
		r.Enable()
	}
	return routers, nil
}
