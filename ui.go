package balloonpump

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const pumpButtonFontSize = 18

// pumpUI is the on-screen pump button. Holding it keeps the pump down;
// each press spawns one balloon.
type pumpUI struct {
	ui     *ebitenui.UI
	button *widget.Button
}

func newPumpUI(s *Scene) (*pumpUI, error) {
	gf, err := newLabelFace(pumpButtonFontSize)
	if err != nil {
		return nil, fmt.Errorf("pump button: %w", err)
	}
	var face text.Face = gf

	buttonImage := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0xd9, G: 0x3a, B: 0x3a, A: 0xff}),
		Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0xe8, G: 0x55, B: 0x55, A: 0xff}),
		Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0xa8, G: 0x22, B: 0x22, A: 0xff}),
	}

	button := widget.NewButton(
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Pump", &face, &widget.ButtonTextColor{Idle: color.White}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 40)),
		widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
			s.PressPump()
		}),
		widget.ButtonOpts.ReleasedHandler(func(args *widget.ButtonReleasedEventArgs) {
			s.ReleasePump()
		}),
	)

	corner := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Bottom: 8, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	corner.AddChild(button)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(corner)

	return &pumpUI{ui: &ebitenui.UI{Container: root}, button: button}, nil
}

// update runs the widget tree and publishes the button bounds so canvas
// clicks on it are ignored.
func (p *pumpUI) update(s *Scene) {
	p.ui.Update()
	s.SetPumpBounds(rectFromImage(p.button.GetWidget().Rect))
}

func (p *pumpUI) draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}

func rectFromImage(r image.Rectangle) Rect {
	return Rect{
		X:      float64(r.Min.X),
		Y:      float64(r.Min.Y),
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
	}
}
