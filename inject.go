package birch

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates, matching what real cursor polling would produce.
type syntheticPointerEvent struct {
	x, y float64
	exit bool
}

// InjectMove queues a synthetic pointer move at the given screen
// coordinates. The event is consumed on the next Update call, taking the
// place of real cursor input for that frame. Used by tests and scripted
// demos to drive picking deterministically.
func (s *Scatter) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectExit queues a synthetic pointer exit, as if the cursor left the
// chart surface entirely.
func (s *Scatter) InjectExit() {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{exit: true})
}

// InjectPath queues linearly interpolated moves from (fromX, fromY) to
// (toX, toY) across the given number of frames (minimum 2: start and end).
func (s *Scatter) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// consumeInjected pops one event from the inject queue and feeds it through
// the picker. Returns true if an event was consumed (real cursor input
// should be skipped this frame).
func (s *Scatter) consumeInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if evt.exit {
		if s.picker != nil {
			s.picker.PointerExited()
		}
		return true
	}
	s.routePointer(evt.x, evt.y)
	return true
}
