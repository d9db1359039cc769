package balloonpump

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	maxPointers          = 10  // pointer 0 = mouse, 1-9 = touch
	defaultClickDeadZone = 4.0 // surface units
)

// --- Hit shapes ---

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	startX float64
	startY float64
	lastX  float64
	lastY  float64
	// onPump is set when the press landed on the pump button; the release
	// then never counts as a canvas click.
	onPump bool
}

// --- Callbacks ---

// SpawnContext carries the balloon that just left the pump.
type SpawnContext struct {
	Balloon *Balloon
}

// PopContext carries a popped balloon and the click that burst it.
type PopContext struct {
	Balloon *Balloon
	X, Y    float64
}

type spawnHandler struct {
	id uint32
	fn func(SpawnContext)
}

type popHandler struct {
	id uint32
	fn func(PopContext)
}

type loadedHandler struct {
	id uint32
	fn func()
}

type handlerRegistry struct {
	spawn  []spawnHandler
	pop    []popHandler
	loaded []loadedHandler
	nextID uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventSpawn:
		h.reg.spawn = removeHandler(h.reg.spawn, func(e spawnHandler) bool { return e.id == h.id })
	case EventPop:
		h.reg.pop = removeHandler(h.reg.pop, func(e popHandler) bool { return e.id == h.id })
	case EventLoaded:
		h.reg.loaded = removeHandler(h.reg.loaded, func(e loadedHandler) bool { return e.id == h.id })
	}
}

func removeHandler[T any](s []T, match func(T) bool) []T {
	for i := range s {
		if match(s[i]) {
			var zero T
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// OnSpawn registers a callback fired after each pump press adds a balloon.
func (s *Scene) OnSpawn(fn func(SpawnContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.spawn = append(s.handlers.spawn, spawnHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventSpawn}
}

// OnPop registers a callback fired for every balloon a click bursts.
func (s *Scene) OnPop(fn func(PopContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.pop = append(s.handlers.pop, popHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPop}
}

// OnLoaded registers a callback fired once when the asset gate opens.
func (s *Scene) OnLoaded(fn func()) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.loaded = append(s.handlers.loaded, loadedHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventLoaded}
}

// SetPumpBounds marks the on-screen pump button. Presses starting inside it
// never pop balloons.
func (s *Scene) SetPumpBounds(r Rect) {
	s.pumpBounds = r
}

// SetClickDeadZone sets how far a pointer may travel between press and
// release and still count as a click.
func (s *Scene) SetClickDeadZone(units float64) {
	s.clickDeadZone = units
}

// --- Input processing ---

// processInput consumes one injected event if any are queued; otherwise it
// polls the keyboard, mouse and touch screen.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	s.processKeyboard()
	s.processMousePointer()
	s.processTouchPointers()
}

// processKeyboard maps the space bar onto the pump button.
func (s *Scene) processKeyboard() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.PressPump()
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		s.ReleasePump()
	}
}

// processMousePointer handles mouse input (pointer 0). Layout already maps
// the cursor into surface coordinates.
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/release state machine for one pointer. A
// release within the dead zone of its press is a canvas click.
func (s *Scene) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.onPump = !s.pumpBounds.Empty() && s.pumpBounds.Contains(x, y)
	case !pressed && ps.down:
		ps.down = false
		dx, dy := x-ps.startX, y-ps.startY
		moved := dx*dx+dy*dy > s.clickDeadZone*s.clickDeadZone
		if !ps.onPump && !moved {
			s.Click(x, y)
		}
		ps.onPump = false
	}
	ps.lastX, ps.lastY = x, y
}
