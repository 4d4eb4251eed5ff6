package sink

import (
	"bytes"
	"errors"
	"testing"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/layout"
	"github.com/drawnet/drawnet/pkg/render"
	"github.com/drawnet/drawnet/pkg/shape"
)

func TestRasterPixelFill(t *testing.T) {
	b, err := shape.NewBlock(shape.BlockConfig{})
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	d := layout.NewSequence()
	d.AddShape(b)

	// Width 110 makes the device scale exactly 1: the view spans
	// (-5,-80)..(105,80), so the block center (50,0) lands at (55,80).
	c := NewRaster(WithRasterWidth(110))
	if err := render.Draw(d, c, render.Options{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	img := c.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}

	r, g, bl, _ := img.At(55, 80).RGBA()
	if r>>8 != 230 || g>>8 != 230 || bl>>8 != 230 {
		t.Errorf("center pixel = (%d, %d, %d), want (230, 230, 230)", r>>8, g>>8, bl>>8)
	}

	r, g, bl, _ = img.At(1, 1).RGBA()
	if r>>8 != 255 || g>>8 != 255 || bl>>8 != 255 {
		t.Errorf("corner pixel = (%d, %d, %d), want white", r>>8, g>>8, bl>>8)
	}
}

func TestRenderRasterPNGSignature(t *testing.T) {
	png, err := RenderRaster(pipeline(t), render.Options{})
	if err != nil {
		t.Fatalf("RenderRaster: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output is not a PNG")
	}
}

func TestRenderRasterDeterministic(t *testing.T) {
	d := pipeline(t)
	first, err := RenderRaster(d, render.Options{})
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := RenderRaster(d, render.Options{})
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("renders differ between passes")
	}
}

func TestRasterUnsupportedPatch(t *testing.T) {
	c := NewRaster()
	if err := c.SetView(render.View{Bounds: geom.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}}); err != nil {
		t.Fatalf("SetView: %v", err)
	}
	if err := c.DrawPatch(fakePatch{}); !errors.Is(err, render.ErrUnsupportedPrimitive) {
		t.Fatalf("DrawPatch error = %v, want ErrUnsupportedPrimitive", err)
	}
}

func TestRasterBeforeView(t *testing.T) {
	c := NewRaster()
	if _, err := c.EncodePNG(); err == nil {
		t.Error("expected error encoding before SetView")
	}
	if img := c.Image(); img != nil {
		t.Error("Image() should be nil before SetView")
	}
}
