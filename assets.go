package balloonpump

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder for sprite files
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite file names, without the .png extension.
const (
	assetPump       = "pump"
	assetCloud      = "cloud"
	assetBackground = "background"
	assetString     = "string"
)

// balloonColorNames lists the balloon sprites in spawn order.
var balloonColorNames = [...]string{
	"red", "blue", "green", "orange", "hotpink", "darkblue", "dullpink", "dullyellow",
}

// balloonPlaceholderColors tint the generated balloon when its sprite is
// missing, index-aligned with balloonColorNames.
var balloonPlaceholderColors = [len(balloonColorNames)]Color{
	{R: 0.90, G: 0.10, B: 0.15, A: 1},
	{R: 0.20, G: 0.50, B: 0.95, A: 1},
	{R: 0.20, G: 0.75, B: 0.30, A: 1},
	{R: 1.00, G: 0.55, B: 0.10, A: 1},
	{R: 1.00, G: 0.25, B: 0.65, A: 1},
	{R: 0.10, G: 0.15, B: 0.55, A: 1},
	{R: 0.85, G: 0.60, B: 0.70, A: 1},
	{R: 0.90, G: 0.85, B: 0.45, A: 1},
}

// AssetNames returns every sprite name the scene loads.
func AssetNames() []string {
	names := []string{assetPump, assetCloud, assetBackground, assetString}
	return append(names, balloonColorNames[:]...)
}

// Assets holds the GPU images the renderer draws.
type Assets struct {
	Pump       *ebiten.Image
	Cloud      *ebiten.Image
	Background *ebiten.Image
	String     *ebiten.Image
	Balloons   [len(balloonColorNames)]*ebiten.Image
}

// AssetFuture is the completion signal for a background sprite load.
// Decoding happens off the game loop; GPU upload happens on it, once Done
// is closed.
type AssetFuture struct {
	done   chan struct{}
	images map[string]image.Image
	err    error
}

// LoadAssets starts decoding every sprite from fsys in a goroutine.
func LoadAssets(fsys fs.FS) *AssetFuture {
	f := &AssetFuture{
		done:   make(chan struct{}),
		images: make(map[string]image.Image),
	}
	go f.load(fsys)
	return f
}

func (f *AssetFuture) load(fsys fs.FS) {
	defer close(f.done)
	var errs []error
	for _, name := range AssetNames() {
		img, err := decodeImage(fsys, name+".png")
		if err != nil {
			errs = append(errs, err)
			continue
		}
		f.images[name] = img
	}
	f.err = errors.Join(errs...)
}

func decodeImage(fsys fs.FS, name string) (image.Image, error) {
	file, err := fsys.Open(path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Done is closed when decoding has finished, successfully or not.
func (f *AssetFuture) Done() <-chan struct{} {
	return f.done
}

// Result returns the decoded images and the joined per-file errors. Only
// valid after Done is closed.
func (f *AssetFuture) Result() (map[string]image.Image, error) {
	return f.images, f.err
}

// Wait blocks until decoding finishes or ctx ends.
func (f *AssetFuture) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// newAssets uploads decoded images, generating placeholders for any that
// failed to load.
func newAssets(decoded map[string]image.Image) *Assets {
	upload := func(name string, fallback func() *ebiten.Image) *ebiten.Image {
		if img, ok := decoded[name]; ok {
			return ebiten.NewImageFromImage(img)
		}
		return fallback()
	}
	a := &Assets{
		Pump:       upload(assetPump, placeholderPump),
		Cloud:      upload(assetCloud, placeholderCloud),
		Background: upload(assetBackground, placeholderBackground),
		String:     upload(assetString, placeholderString),
	}
	for i, name := range balloonColorNames {
		c := balloonPlaceholderColors[i]
		a.Balloons[i] = upload(name, func() *ebiten.Image { return placeholderBalloon(c) })
	}
	return a
}

// Preload attaches a pending load. The scene opens its gate on the first
// update after the future completes.
func (s *Scene) Preload(f *AssetFuture) {
	s.pending = f
}

// pollAssets checks the pending future without blocking.
func (s *Scene) pollAssets() {
	if s.loaded || s.pending == nil {
		return
	}
	select {
	case <-s.pending.Done():
	default:
		return
	}
	images, err := s.pending.Result()
	if err != nil {
		log.Printf("[balloonpump] assets: %v (using placeholders)", err)
	}
	s.pending = nil
	s.SetAssets(newAssets(images))
}

// SetAssets installs ready images and opens the gate. A nil Assets opens the
// gate with nothing to draw, which headless runs rely on.
func (s *Scene) SetAssets(a *Assets) {
	s.assets = a
	if a != nil && s.labelFace == nil {
		face, err := newLabelFace(s.cfg.Balloon.LabelSize)
		if err != nil {
			log.Printf("[balloonpump] label font: %v", err)
		}
		s.labelFace = face
	}
	if s.loaded {
		return
	}
	s.loaded = true
	for _, h := range s.handlers.loaded {
		h.fn()
	}
}
