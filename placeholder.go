package balloonpump

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Placeholders stand in for sprites that failed to load. Each is drawn at
// the sprite's native size so the renderer scales it the same way.

func placeholderBackground() *ebiten.Image {
	img := ebiten.NewImage(SurfaceWidth, SurfaceHeight)
	img.Fill(colorSky)
	ground := Color{R: 0.35, G: 0.70, B: 0.30, A: 1}
	vector.FillRect(img, 0, SurfaceHeight-80, SurfaceWidth, 80, ground, false)
	return img
}

func placeholderCloud() *ebiten.Image {
	img := ebiten.NewImage(100, 90)
	white := Color{R: 1, G: 1, B: 1, A: 0.9}
	vector.FillCircle(img, 30, 55, 25, white, true)
	vector.FillCircle(img, 55, 40, 30, white, true)
	vector.FillCircle(img, 75, 58, 22, white, true)
	return img
}

func placeholderString() *ebiten.Image {
	img := ebiten.NewImage(20, 50)
	vector.FillRect(img, 9, 0, 2, 50, Color{R: 0.3, G: 0.3, B: 0.3, A: 1}, false)
	return img
}

func placeholderBalloon(c Color) *ebiten.Image {
	img := ebiten.NewImage(50, 50)
	vector.FillCircle(img, 25, 25, 25, c, true)
	highlight := Color{R: 1, G: 1, B: 1, A: 0.35}
	vector.FillCircle(img, 17, 16, 6, highlight, true)
	return img
}

func placeholderPump() *ebiten.Image {
	img := ebiten.NewImage(pumpWidth, pumpHeight)
	body := Color{R: 0.55, G: 0.55, B: 0.6, A: 1}
	dark := Color{R: 0.25, G: 0.25, B: 0.3, A: 1}
	vector.FillRect(img, 10, 0, 80, 10, dark, false)  // handle
	vector.FillRect(img, 46, 10, 8, 30, dark, false)  // rod
	vector.FillRect(img, 30, 40, 40, 70, body, false) // barrel
	vector.FillRect(img, 15, 110, 70, 10, dark, false)
	return img
}
