package nodeflow

import (
	"encoding/json"
	"fmt"
	"strings"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action    string   `json:"action"`
	X         float64  `json:"x,omitempty"`
	Y         float64  `json:"y,omitempty"`
	FromX     float64  `json:"fromX,omitempty"`
	FromY     float64  `json:"fromY,omitempty"`
	ToX       float64  `json:"toX,omitempty"`
	ToY       float64  `json:"toY,omitempty"`
	Frames    int      `json:"frames,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer events across frames so that
// gestures can be replayed without a human at the mouse. Attach it to an
// Editor via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script. Supported actions:
// click, press, move, release (x, y); drag (fromX, fromY, toX, toY, frames);
// modifiers (modifiers: shift, ctrl, alt, meta; empty releases all);
// captureLost; wait (frames).
func LoadGestureScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "press", "move", "release", "drag", "captureLost", "wait":
		case "modifiers":
			if _, err := parseModifiers(st.Modifiers); err != nil {
				return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// parseModifiers converts modifier names to a KeyModifiers mask.
func parseModifiers(names []string) (KeyModifiers, error) {
	var mods KeyModifiers
	for _, name := range names {
		switch strings.ToLower(name) {
		case "shift":
			mods |= ModShift
		case "ctrl", "control":
			mods |= ModCtrl
		case "alt", "option":
			mods |= ModAlt
		case "meta", "cmd", "super":
			mods |= ModMeta
		default:
			return 0, fmt.Errorf("unknown modifier %q", name)
		}
	}
	return mods, nil
}

// SetScriptRunner attaches a ScriptRunner to the editor. The runner's step
// method is called from Editor.Update before input is processed each frame.
func (e *Editor) SetScriptRunner(runner *ScriptRunner) {
	e.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Editor.Update.
func (r *ScriptRunner) step(e *Editor) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		e.InjectClick(st.X, st.Y)
	case "press":
		e.InjectPress(st.X, st.Y)
	case "move":
		e.InjectMove(st.X, st.Y)
	case "release":
		e.InjectRelease(st.X, st.Y)
	case "drag":
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "modifiers":
		mods, _ := parseModifiers(st.Modifiers)
		e.InjectModifiers(mods)
	case "captureLost":
		e.InjectCaptureLost()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
