package balloonpump

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pump sprite placement, relative to the bottom-right corner of the surface.
const (
	pumpWidth       = 100
	pumpHeight      = 120
	pumpOffsetX     = 110
	pumpRestOffsetY = 170
	pumpPressTravel = 10 // the pressed pose sits this much higher
)

// pumpSprite tracks the plunger between its rest and pressed poses. The
// vertical offset is tweened so the sprite eases into each pose.
type pumpSprite struct {
	offset   float64 // 0 at rest, -pumpPressTravel when pressed
	target   float64
	duration time.Duration
	tween    *gween.Tween
}

func newPumpSprite(cfg PumpConfig) pumpSprite {
	return pumpSprite{duration: cfg.PressDuration}
}

func (p *pumpSprite) press() {
	p.moveTo(-pumpPressTravel)
}

func (p *pumpSprite) release() {
	p.moveTo(0)
}

func (p *pumpSprite) moveTo(target float64) {
	p.target = target
	if p.duration <= 0 {
		p.offset = target
		p.tween = nil
		return
	}
	p.tween = gween.New(float32(p.offset), float32(target), float32(p.duration.Seconds()), ease.OutQuad)
}

// update advances the running tween by d.
func (p *pumpSprite) update(d time.Duration) {
	if p.tween == nil {
		return
	}
	val, finished := p.tween.Update(float32(d.Seconds()))
	p.offset = float64(val)
	if finished {
		p.offset = p.target
		p.tween = nil
	}
}

// settled reports whether the sprite rests in its target pose.
func (p *pumpSprite) settled() bool {
	return p.tween == nil
}

// bounds returns where the sprite is drawn this frame.
func (p *pumpSprite) bounds() Rect {
	return Rect{
		X:      SurfaceWidth - pumpOffsetX,
		Y:      SurfaceHeight - pumpRestOffsetY + p.offset,
		Width:  pumpWidth,
		Height: pumpHeight,
	}
}
