package balloonpump

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/jonboulle/clockwork"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func fullAssetFS(t *testing.T) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	for _, name := range AssetNames() {
		fsys[name+".png"] = &fstest.MapFile{Data: pngBytes(t, 4, 4)}
	}
	return fsys
}

func waitAssets(t *testing.T, f *AssetFuture) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := f.Wait(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("asset load timed out")
	}
	return err
}

func TestAssetNames(t *testing.T) {
	names := AssetNames()
	if len(names) != 4+len(balloonColorNames) {
		t.Fatalf("names = %v", names)
	}
	if names[4] != "red" || names[len(names)-1] != "dullyellow" {
		t.Errorf("balloon sprites out of order: %v", names)
	}
}

func TestLoadAssetsDecodesAll(t *testing.T) {
	f := LoadAssets(fullAssetFS(t))
	if err := waitAssets(t, f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	images, err := f.Result()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range AssetNames() {
		img, ok := images[name]
		if !ok {
			t.Errorf("missing %s", name)
			continue
		}
		if img.Bounds().Dx() != 4 {
			t.Errorf("%s width = %d, want 4", name, img.Bounds().Dx())
		}
	}
}

func TestLoadAssetsReportsEachFailure(t *testing.T) {
	fsys := fullAssetFS(t)
	delete(fsys, "cloud.png")
	fsys["pump.png"] = &fstest.MapFile{Data: []byte("not a png")}

	f := LoadAssets(fsys)
	err := waitAssets(t, f)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want to wrap fs.ErrNotExist", err)
	}
	images, _ := f.Result()
	if _, ok := images["pump"]; ok {
		t.Error("undecodable pump should be absent")
	}
	if _, ok := images["red"]; !ok {
		t.Error("good sprites should still load")
	}
}

func TestAssetFutureWaitCancelled(t *testing.T) {
	f := &AssetFuture{done: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := f.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestPreloadOpensGate(t *testing.T) {
	s := NewScene(DefaultConfig(), WithClock(clockwork.NewFakeClockAt(testEpoch)))
	loaded := 0
	s.OnLoaded(func() { loaded++ })

	f := LoadAssets(fstest.MapFS{})
	s.Preload(f)
	if err := waitAssets(t, f); err == nil {
		t.Fatal("empty fs should report missing sprites")
	}
	if s.Loaded() {
		t.Fatal("gate opened before the next update")
	}

	s.Advance(0)
	if !s.Loaded() || loaded != 1 {
		t.Fatalf("loaded=%v callbacks=%d", s.Loaded(), loaded)
	}
	if s.assets == nil || s.assets.Pump == nil || s.assets.Balloons[7] == nil {
		t.Error("missing sprites should fall back to placeholders")
	}
}
