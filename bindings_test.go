package interact

import (
	"errors"
	"strings"
	"testing"
)

const bindingsDoc = `
routers:
  - pointable: door_handle
    bindings:
      - channel: hover
        action: highlight
      - channel: release
        action: open_door
  - pointable: window_latch
    bindings:
      - channel: select
        action: highlight
`

func TestLoadBindings(t *testing.T) {
	door := NewEmitter()
	window := NewEmitter()
	reg := NewRegistry()
	reg.Register("door_handle", door)
	reg.Register("window_latch", window)

	var calls []string
	actions := NewActionSet()
	actions.Register("highlight", func(ev PointerEvent) {
		calls = append(calls, "highlight")
	})
	actions.Register("open_door", func(ev PointerEvent) {
		calls = append(calls, "open_door")
	})

	routers, err := LoadBindings([]byte(bindingsDoc), reg, actions)
	if err != nil {
		t.Fatalf("LoadBindings() error: %v", err)
	}
	if len(routers) != 2 {
		t.Fatalf("got %d routers, want 2", len(routers))
	}
	for i, r := range routers {
		if r.State() != StateActive {
			t.Errorf("router %d state = %v, want %v", i, r.State(), StateActive)
		}
	}

	door.Hover(1, 0, 0)
	door.Select(1, 0, 0)
	door.Unselect(1, 0, 0)
	window.Select(2, 0, 0)

	assertCalls(t, calls, []string{"highlight", "open_door", "highlight"})
}

func TestLoadBindingsErrors(t *testing.T) {
	reg := NewRegistry()
	reg.Register("door_handle", NewEmitter())
	reg.Register("window_latch", NewEmitter())
	actions := NewActionSet()
	actions.Register("highlight", func(PointerEvent) {})
	actions.Register("open_door", func(PointerEvent) {})

	tests := []struct {
		name    string
		doc     string
		wantErr error  // matched with errors.Is when set
		wantMsg string // substring match otherwise
	}{
		{
			name:    "invalid yaml",
			doc:     "routers: [",
			wantMsg: "parse bindings",
		},
		{
			name:    "no routers",
			doc:     "routers: []",
			wantMsg: "no routers",
		},
		{
			name: "unknown pointable",
			doc: `
routers:
  - pointable: trapdoor
    bindings:
      - channel: hover
        action: highlight
`,
			wantErr: ErrUnknownReference,
		},
		{
			name: "unknown channel",
			doc: `
routers:
  - pointable: door_handle
    bindings:
      - channel: doubleclick
        action: highlight
`,
			wantMsg: `unknown channel "doubleclick"`,
		},
		{
			name: "unknown action",
			doc: `
routers:
  - pointable: door_handle
    bindings:
      - channel: hover
        action: explode
`,
			wantMsg: `unknown action "explode"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBindings([]byte(tt.doc), reg, actions)
			if err == nil {
				t.Fatal("LoadBindings() succeeded, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadBindingsFailureRoutesNothing(t *testing.T) {
	// A document with one bad entry must not leave earlier entries attached.
	good := NewEmitter()
	reg := NewRegistry()
	reg.Register("good", good)
	actions := NewActionSet()
	actions.Register("noop", func(PointerEvent) {})

	doc := `
routers:
  - pointable: good
    bindings:
      - channel: hover
        action: noop
  - pointable: bad
    bindings:
      - channel: hover
        action: noop
`
	if _, err := LoadBindings([]byte(doc), reg, actions); err == nil {
		t.Fatal("LoadBindings() succeeded, want error")
	}
	if good.SubscriberCount() != 0 {
		t.Errorf("failed load left %d subscriptions attached", good.SubscriberCount())
	}
}
