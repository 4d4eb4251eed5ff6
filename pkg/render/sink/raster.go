package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/drawnet/drawnet/pkg/layout"
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/render"
)

var (
	fontOnce    sync.Once
	fontRegular *truetype.Font
	fontBold    *truetype.Font
	fontErr     error
)

func loadFonts() error {
	fontOnce.Do(func() {
		fontRegular, fontErr = truetype.Parse(goregular.TTF)
		if fontErr != nil {
			return
		}
		fontBold, fontErr = truetype.Parse(gobold.TTF)
	})
	return fontErr
}

// RasterOption configures the raster canvas.
type RasterOption func(*Raster)

// WithRasterWidth sets the output width in pixels. Default 960.
func WithRasterWidth(px int) RasterOption { return func(c *Raster) { c.width = px } }

// WithRasterBackground fills the backdrop with the given color. The
// default is white.
func WithRasterBackground(fill prim.RGB) RasterOption { return func(c *Raster) { c.bg = fill } }

type faceKey struct {
	size float64
	bold bool
}

// Raster is a [render.Canvas] drawing onto an in-memory image. It needs
// no external tooling, making it the PNG path of choice for servers.
type Raster struct {
	width int
	bg    prim.RGB

	view  render.View
	scale float64
	dc    *gg.Context
	faces map[faceKey]font.Face
}

// NewRaster builds a raster canvas ready for [render.Draw].
func NewRaster(opts ...RasterOption) *Raster {
	c := &Raster{width: int(DefaultWidth), bg: prim.White, faces: make(map[faceKey]font.Face)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetView fixes the world window, allocates the surface, and clears it.
func (c *Raster) SetView(v render.View) error {
	if c.width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.width)
	}
	b := v.Bounds
	if b.Width() <= 0 || b.Height() <= 0 {
		return fmt.Errorf("view must have positive size, got %gx%g", b.Width(), b.Height())
	}
	if err := loadFonts(); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	c.view = v
	c.scale = float64(c.width) / b.Width()
	height := max(1, int(math.Round(b.Height()*c.scale)))

	c.dc = gg.NewContext(c.width, height)
	c.dc.SetColor(c.bg)
	c.dc.Clear()

	if v.ShowAxis {
		c.drawAxis(height)
	}
	return nil
}

func (c *Raster) px(x float64) float64 { return (x - c.view.Bounds.MinX) * c.scale }
func (c *Raster) py(y float64) float64 { return (c.view.Bounds.MaxY - y) * c.scale }

func (c *Raster) drawAxis(height int) {
	c.dc.SetColor(color.Gray{Y: 0x99})
	c.dc.SetLineWidth(1)
	c.dc.DrawRectangle(0.5, 0.5, float64(c.width)-1, float64(height)-1)
	c.dc.Stroke()

	b := c.view.Bounds
	c.dc.SetDash(4, 3)
	if b.MinY < 0 && b.MaxY > 0 {
		c.dc.DrawLine(0, c.py(0), float64(c.width), c.py(0))
		c.dc.Stroke()
	}
	if b.MinX < 0 && b.MaxX > 0 {
		c.dc.DrawLine(c.px(0), 0, c.px(0), float64(height))
		c.dc.Stroke()
	}
	c.dc.SetDash()
}

func (c *Raster) fillStroke(fill prim.RGB) {
	c.dc.SetColor(fill)
	c.dc.FillPreserve()
	c.dc.SetColor(color.Black)
	c.dc.SetLineWidth(patchStroke)
	c.dc.Stroke()
}

// DrawPatch rasterizes a filled patch.
func (c *Raster) DrawPatch(p prim.Patch) error {
	if c.dc == nil {
		return errNoView
	}

	switch p := p.(type) {
	case prim.Rect:
		c.dc.DrawRectangle(c.px(p.X), c.py(p.Y+p.H), p.W*c.scale, p.H*c.scale)
		c.fillStroke(p.Fill)

	case prim.Circle:
		c.dc.DrawCircle(c.px(p.Center.X), c.py(p.Center.Y), p.R*c.scale)
		c.fillStroke(p.Fill)

	case prim.Polygon:
		for i, pt := range p.Points {
			if i == 0 {
				c.dc.MoveTo(c.px(pt.X), c.py(pt.Y))
				continue
			}
			c.dc.LineTo(c.px(pt.X), c.py(pt.Y))
		}
		c.dc.ClosePath()
		c.fillStroke(p.Fill)

	case prim.Image:
		return c.drawImage(p)

	default:
		return fmt.Errorf("%w: %T", render.ErrUnsupportedPrimitive, p)
	}
	return nil
}

func (c *Raster) drawImage(p prim.Image) error {
	f, err := os.Open(p.Path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode image %s: %w", p.Path, err)
	}

	w := max(1, int(math.Round(p.W*c.scale)))
	h := max(1, int(math.Round(p.H*c.scale)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	c.dc.DrawImage(dst, int(math.Round(c.px(p.X))), int(math.Round(c.py(p.Y+p.H))))
	return nil
}

// DrawLine strokes an open polyline.
func (c *Raster) DrawLine(l prim.Polyline) error {
	if c.dc == nil {
		return errNoView
	}
	if len(l) < 2 {
		return nil
	}

	for i, pt := range l {
		if i == 0 {
			c.dc.MoveTo(c.px(pt.X), c.py(pt.Y))
			continue
		}
		c.dc.LineTo(c.px(pt.X), c.py(pt.Y))
	}
	c.dc.SetColor(color.Black)
	c.dc.SetLineWidth(lineStroke)
	c.dc.Stroke()
	return nil
}

// DrawText rasterizes a centered text block line by line.
func (c *Raster) DrawText(t prim.Text) error {
	if c.dc == nil {
		return errNoView
	}
	if t.Content == "" {
		return nil
	}

	size := textSize(t, float64(c.width))
	c.dc.SetFontFace(c.face(size, t.Bold))
	c.dc.SetColor(color.Black)

	x := c.px(t.Pos.X)
	lines, first, lineH := textLayout(t, c.py(t.Pos.Y), size)
	for i, line := range lines {
		w, _ := c.dc.MeasureString(line)
		c.dc.DrawString(line, x-w/2, first+float64(i)*lineH)
	}
	return nil
}

func (c *Raster) face(size float64, bold bool) font.Face {
	key := faceKey{size: size, bold: bold}
	if f, ok := c.faces[key]; ok {
		return f
	}

	fnt := fontRegular
	if bold {
		fnt = fontBold
	}
	f := truetype.NewFace(fnt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c.faces[key] = f
	return f
}

// Image returns the drawn surface, or nil before SetView.
func (c *Raster) Image() image.Image {
	if c.dc == nil {
		return nil
	}
	return c.dc.Image()
}

// EncodePNG serializes the surface as PNG.
func (c *Raster) EncodePNG() ([]byte, error) {
	if c.dc == nil {
		return nil, errNoView
	}
	var buf bytes.Buffer
	if err := c.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderRaster arranges and draws the diagram, returning PNG bytes
// produced without external tooling.
func RenderRaster(d layout.Diagram, opts render.Options, rOpts ...RasterOption) ([]byte, error) {
	c := NewRaster(rOpts...)
	if err := render.Draw(d, c, opts); err != nil {
		return nil, err
	}
	return c.EncodePNG()
}
