package birch

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a pointer script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// pointerScript is the top-level JSON structure for a pointer script.
type pointerScript struct {
	Steps []scriptStep `json:"steps"`
}

// PointerScript sequences injected pointer events across frames, driving the
// chart's picking deterministically for demos and recorded interaction
// tests. Attach to a chart via SetPointerScript.
//
// Supported actions: "move" (x, y), "path" (fromX/fromY to toX/toY over
// frames), "exit", and "wait" (frames).
type PointerScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadPointerScript parses a JSON pointer script.
func LoadPointerScript(jsonData []byte) (*PointerScript, error) {
	var script pointerScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse pointer script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse pointer script: no steps")
	}
	return &PointerScript{steps: script.Steps}, nil
}

// SetPointerScript attaches a script to the chart. The script's step method
// is called from Scatter.Update before input handling each frame.
func (s *Scatter) SetPointerScript(script *PointerScript) {
	s.script = script
}

// Done reports whether all steps in the script have been executed.
func (r *PointerScript) Done() bool {
	return r.done
}

// step advances the script by one frame. Called from Scatter.Update.
func (r *PointerScript) step(s *Scatter) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
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
	case "move":
		s.InjectMove(st.X, st.Y)
	case "path":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		s.InjectPath(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "exit":
		s.InjectExit()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
