package interact

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an event script.
type scriptStep struct {
	Action  string  `json:"action"`
	Pointer int     `json:"pointer,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for an event script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences pointer events across frames for automated interaction
// testing. Load one with LoadScript, then call Step once per frame with the
// emitter that feeds the routers under test.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON event script. Valid actions are "hover",
// "unhover", "select", "unselect", "move", "cancel", and "wait".
//
//	{"steps": [
//	  {"action": "hover", "pointer": 1, "x": 10, "y": 20},
//	  {"action": "select", "pointer": 1},
//	  {"action": "wait", "frames": 3},
//	  {"action": "unselect", "pointer": 1}
//	]}
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse event script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse event script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "hover", "unhover", "select", "unselect", "move", "cancel", "wait":
		default:
			return nil, fmt.Errorf("parse event script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether all steps have been executed.
func (sc *Script) Done() bool {
	return sc.done
}

// Step advances the script by one frame, raising at most one event on e.
func (sc *Script) Step(e *Emitter) {
	if sc.done {
		return
	}
	// Count down wait frames.
	if sc.waitCount > 0 {
		sc.waitCount--
		return
	}
	if sc.cursor >= len(sc.steps) {
		sc.done = true
		return
	}

	st := sc.steps[sc.cursor]
	sc.cursor++

	switch st.Action {
	case "hover":
		e.Hover(st.Pointer, st.X, st.Y)
	case "unhover":
		e.Unhover(st.Pointer, st.X, st.Y)
	case "select":
		e.Select(st.Pointer, st.X, st.Y)
	case "unselect":
		e.Unselect(st.Pointer, st.X, st.Y)
	case "move":
		e.Move(st.Pointer, st.X, st.Y)
	case "cancel":
		e.Cancel(st.Pointer, st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			sc.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if sc.cursor >= len(sc.steps) && sc.waitCount == 0 {
		sc.done = true
	}
}
