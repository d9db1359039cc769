package balloonpump

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// cloudLane is one cloud track. Each cloud drifts right at a fixed rate and
// wraps around the surface width.
type cloudLane struct {
	msPerUnit float64
	offsetX   float64
	y         float64
}

var cloudLanes = [...]cloudLane{
	{msPerUnit: 30, offsetX: 150, y: 50},
	{msPerUnit: 60, offsetX: 250, y: 120},
	{msPerUnit: 90, offsetX: 350, y: 200},
	{msPerUnit: 120, offsetX: 450, y: 300},
	{msPerUnit: 30, offsetX: 550, y: 400},
}

const (
	cloudWidth  = 100
	cloudHeight = 90
)

// cloudPositions returns the top-left corner of every cloud at elapsed time t.
func cloudPositions(t time.Duration) [len(cloudLanes)]Vec2 {
	ms := float64(t) / float64(time.Millisecond)
	var out [len(cloudLanes)]Vec2
	for i, lane := range cloudLanes {
		out[i] = Vec2{
			X: math.Mod(ms/lane.msPerUnit, SurfaceWidth) - lane.offsetX,
			Y: lane.y,
		}
	}
	return out
}

// Draw renders one frame. Until the asset gate opens it only clears to the
// sky colour.
func (s *Scene) Draw(screen *ebiten.Image) {
	if !s.loaded || s.assets == nil {
		screen.Fill(colorSky)
		s.flushScreenshots(screen)
		return
	}

	screen.Clear()
	drawImageRect(screen, s.assets.Background, Rect{Width: SurfaceWidth, Height: SurfaceHeight})
	for _, p := range cloudPositions(s.sched.Now()) {
		drawImageRect(screen, s.assets.Cloud, Rect{X: p.X, Y: p.Y, Width: cloudWidth, Height: cloudHeight})
	}

	for _, b := range s.balloons {
		switch balloonDrawKind(b.State) {
		case drawSprite:
			s.drawBalloon(screen, b)
		case drawBurst:
			drawConfetti(screen, b.confetti)
		}
	}

	drawImageRect(screen, s.assets.Pump, s.pump.bounds())

	if s.debug {
		s.drawDebug(screen)
	}
	s.flushScreenshots(screen)
}

type drawKind uint8

const (
	drawNothing drawKind = iota
	drawSprite
	drawBurst
)

// balloonDrawKind picks what a balloon in state st renders as. A balloon is
// either a sprite or its confetti, never both.
func balloonDrawKind(st BalloonState) drawKind {
	switch st {
	case StateInflating, StateFlying:
		return drawSprite
	case StatePopping:
		return drawBurst
	default:
		return drawNothing
	}
}

// drawBalloon draws the sprite centred on the balloon, scaled then rotated,
// followed by its letter and string.
func (s *Scene) drawBalloon(screen *ebiten.Image, b *Balloon) {
	img := s.assets.Balloons[b.ColorIndex%len(s.assets.Balloons)]
	if img != nil {
		bw, bh := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		// Fit the sprite to the unscaled balloon size, centred on the origin.
		op.GeoM.Scale(b.Width/float64(bw), b.Height/float64(bh))
		op.GeoM.Translate(-b.Width/2, -b.Height/2)
		op.GeoM.Rotate(b.Rotation)
		op.GeoM.Scale(b.Scale, b.Scale)
		op.GeoM.Translate(b.X, b.Y)
		op.ColorScale.ScaleAlpha(float32(b.Opacity))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	if s.labelFace != nil {
		op := &text.DrawOptions{}
		// text/v2 positions the top of the line box; shift up so the
		// baseline lands LabelOffsetY below the centre.
		ascent := s.labelFace.Metrics().HAscent
		op.GeoM.Translate(b.X, b.Y+s.cfg.Balloon.LabelOffsetY-ascent)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(ColorWhite)
		text.Draw(screen, string(b.Label), s.labelFace, op)
	}

	drawImageRect(screen, s.assets.String, Rect{X: b.X - 10, Y: b.Y - 10, Width: 20, Height: b.Height})
}

// drawConfetti fills one square per alive particle.
func drawConfetti(screen *ebiten.Image, burst *ConfettiBurst) {
	for _, p := range burst.Particles() {
		vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Size), float32(p.Size), p.Color, false)
	}
}

// drawImageRect stretches img over r.
func drawImageRect(dst, img *ebiten.Image, r Rect) {
	if img == nil {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/float64(w), r.Height/float64(h))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
