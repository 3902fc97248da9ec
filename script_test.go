package birch

import "testing"

func TestLoadPointerScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "move", "x": 5, "y": 95},
			{"action": "path", "fromX": 0, "fromY": 100, "toX": 100, "toY": 0, "frames": 4},
			{"action": "wait", "frames": 3},
			{"action": "exit"}
		]
	}`)

	script, err := LoadPointerScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(script.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(script.steps))
	}
	if script.steps[0].Action != "move" || script.steps[0].X != 5 || script.steps[0].Y != 95 {
		t.Error("step 0 mismatch")
	}
	if script.steps[1].Action != "path" || script.steps[1].ToX != 100 || script.steps[1].Frames != 4 {
		t.Error("step 1 mismatch")
	}
	if script.steps[2].Action != "wait" || script.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if script.steps[3].Action != "exit" {
		t.Error("step 3 mismatch")
	}
}

func TestLoadPointerScript_Invalid(t *testing.T) {
	_, err := LoadPointerScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadPointerScript_Empty(t *testing.T) {
	_, err := LoadPointerScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestScriptStep_Move(t *testing.T) {
	s := testChart(t, ScatterConfig{})

	data := []byte(`{"steps": [{"action": "move", "x": 5, "y": 95}]}`)
	script, err := LoadPointerScript(data)
	if err != nil {
		t.Fatal(err)
	}
	s.SetPointerScript(script)

	// First step call: move queues one event.
	script.step(s)
	if len(s.injectQueue) != 1 {
		t.Fatalf("expected 1 queued event, got %d", len(s.injectQueue))
	}
	// Script should not be done yet — the injection is still pending.
	if script.Done() {
		t.Error("script should not be done while inject queue has events")
	}

	drain(s)
	if got := s.Active(); got != (PointRef{Series: 0, Index: 0}) {
		t.Errorf("expected active point (0, 0), got %v", got)
	}

	// Now step again — should finalize.
	script.step(s)
	if !script.Done() {
		t.Error("script should be done after all steps executed and queue drained")
	}
}

func TestScriptStep_Wait(t *testing.T) {
	s := testChart(t, ScatterConfig{})

	data := []byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "move", "x": 95, "y": 5}
	]}`)
	script, err := LoadPointerScript(data)
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1: execute wait (waitCount becomes 2).
	script.step(s)
	if script.Done() {
		t.Error("should not be done during wait")
	}

	// Frame 2: waitCount 2→1.
	script.step(s)
	if script.Done() {
		t.Error("should not be done during wait countdown")
	}

	// Frame 3: waitCount 1→0.
	script.step(s)
	if script.Done() {
		t.Error("should not be done — move step not yet executed")
	}

	// Frame 4: execute move step.
	script.step(s)
	if len(s.injectQueue) != 1 {
		t.Fatalf("expected 1 queued event after wait, got %d", len(s.injectQueue))
	}

	drain(s)
	if got := s.Active(); got != (PointRef{Series: 0, Index: 1}) {
		t.Errorf("expected active point (0, 1), got %v", got)
	}

	// Frame 5: script finishes.
	script.step(s)
	if !script.Done() {
		t.Error("script should be done after move step drained")
	}
}

func TestScriptStep_Path(t *testing.T) {
	s := testChart(t, ScatterConfig{})

	data := []byte(`{"steps": [{"action": "path", "fromX": 0, "fromY": 100, "toX": 100, "toY": 0, "frames": 4}]}`)
	script, err := LoadPointerScript(data)
	if err != nil {
		t.Fatal(err)
	}

	script.step(s)
	if len(s.injectQueue) != 4 {
		t.Fatalf("expected 4 queued events for path, got %d", len(s.injectQueue))
	}

	// The path ends on the pixel of series 0 point 1.
	drain(s)
	if got := s.Active(); got != (PointRef{Series: 0, Index: 1}) {
		t.Errorf("expected active point (0, 1) at path end, got %v", got)
	}
}

func TestScriptStep_Exit(t *testing.T) {
	s := testChart(t, ScatterConfig{})

	data := []byte(`{"steps": [
		{"action": "move", "x": 5, "y": 95},
		{"action": "exit"}
	]}`)
	script, err := LoadPointerScript(data)
	if err != nil {
		t.Fatal(err)
	}

	script.step(s)
	drain(s)
	if s.Active().None() {
		t.Fatal("move should have activated a point")
	}

	script.step(s)
	drain(s)
	if !s.Active().None() {
		t.Errorf("exit should clear the active point, got %v", s.Active())
	}

	script.step(s)
	if !script.Done() {
		t.Error("script should be done")
	}
}

func TestScriptDone(t *testing.T) {
	s := testChart(t, ScatterConfig{})

	data := []byte(`{"steps": [{"action": "move", "x": 50, "y": 50}]}`)
	script, err := LoadPointerScript(data)
	if err != nil {
		t.Fatal(err)
	}

	if script.Done() {
		t.Error("script should not be done before any steps")
	}

	script.step(s)
	drain(s)
	script.step(s)
	if !script.Done() {
		t.Error("script should be done after single move step")
	}
}

func TestScriptWaitsForInjectQueue(t *testing.T) {
	s := testChart(t, ScatterConfig{})

	data := []byte(`{"steps": [
		{"action": "move", "x": 5, "y": 95},
		{"action": "move", "x": 95, "y": 5}
	]}`)
	script, err := LoadPointerScript(data)
	if err != nil {
		t.Fatal(err)
	}

	// Step 1: first move queues an event.
	script.step(s)
	if len(s.injectQueue) != 1 {
		t.Fatalf("expected 1 event, got %d", len(s.injectQueue))
	}

	// Step again — should NOT advance because the inject queue is not drained.
	script.step(s)
	if script.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", script.cursor)
	}

	drain(s)

	// Now step — should execute the second move.
	script.step(s)
	drain(s)
	if got := s.Active(); got != (PointRef{Series: 0, Index: 1}) {
		t.Errorf("expected active point (0, 1), got %v", got)
	}

	script.step(s)
	if !script.Done() {
		t.Error("script should be done")
	}
}
