package balloonpump

import "image/color"

// Surface size in logical units. Ebitengine scales it to the window.
const (
	SurfaceWidth  = 1500
	SurfaceHeight = 600
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the label color and the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// colorSky is drawn while assets are still loading.
var colorSky = Color{R: 0.53, G: 0.81, B: 0.92, A: 1}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

// toRGBA converts to a premultiplied 8-bit color.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and velocities.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Range is a general-purpose [Min, Max) range used for randomized tuning.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// BalloonState is the lifecycle stage of a balloon.
type BalloonState uint8

const (
	StateInflating BalloonState = iota // rising out of the pump and growing
	StateFlying                        // fully inflated, drifting and bobbing
	StatePopping                       // burst, confetti still animating
	StatePopped                        // burst, confetti gone; renders nothing
)

func (s BalloonState) String() string {
	switch s {
	case StateInflating:
		return "inflating"
	case StateFlying:
		return "flying"
	case StatePopping:
		return "popping"
	case StatePopped:
		return "popped"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of scene event.
type EventType uint8

const (
	EventSpawn  EventType = iota // a balloon left the pump
	EventPop                     // a balloon was burst
	EventLoaded                  // assets finished loading
)
