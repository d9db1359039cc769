package balloonpump

// syntheticEvent is a single injected input event. Canvas events use surface
// coordinates, identical to real mouse input after Layout.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	pump    bool // targets the pump button instead of the canvas
}

// InjectPress queues a canvas pointer press at (x, y). Consumed on the next
// frame's processInput call.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a canvas pointer release at (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectPump queues a pump press, holds it for holdFrames frames, then
// releases. Consumes holdFrames+2 frames.
func (s *Scene) InjectPump(holdFrames int) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{pump: true, pressed: true})
	for i := 0; i < holdFrames; i++ {
		// A repeated press while held is a no-op and keeps the frame count.
		s.injectQueue = append(s.injectQueue, syntheticEvent{pump: true, pressed: true})
	}
	s.injectQueue = append(s.injectQueue, syntheticEvent{pump: true})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same paths as real input. Returns true if an event was
// consumed (real devices are skipped that frame).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch {
	case evt.pump && evt.pressed:
		s.PressPump()
	case evt.pump:
		s.ReleasePump()
	default:
		s.processPointer(0, evt.x, evt.y, evt.pressed)
	}
	return true
}
