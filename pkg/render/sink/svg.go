package sink

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/drawnet/drawnet/pkg/layout"
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/render"
)

const (
	fontFamily  = "Helvetica, Arial, sans-serif"
	patchStroke = 1.0
	lineStroke  = 1.5
)

// SVGOption configures the SVG canvas.
type SVGOption func(*SVG)

// WithWidth sets the output width in pixels. The height follows from
// the view's aspect ratio. Default 960.
func WithWidth(px float64) SVGOption { return func(c *SVG) { c.width = px } }

// WithBackground fills the backdrop with the given color. The default
// is white.
func WithBackground(fill prim.RGB) SVGOption { return func(c *SVG) { c.bg = fill.Hex() } }

// WithTransparentBackground leaves the backdrop unfilled.
func WithTransparentBackground() SVGOption { return func(c *SVG) { c.bg = "" } }

// SVG is a [render.Canvas] that accumulates SVG elements and serializes
// them with [SVG.Bytes].
type SVG struct {
	width float64
	bg    string

	view  render.View
	scale float64
	w, h  float64
	body  bytes.Buffer
	ready bool
}

// NewSVG builds an SVG canvas ready for [render.Draw].
func NewSVG(opts ...SVGOption) *SVG {
	c := &SVG{width: DefaultWidth, bg: prim.White.Hex()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetView fixes the world window and the device scale.
func (c *SVG) SetView(v render.View) error {
	if c.width <= 0 {
		return fmt.Errorf("width must be positive, got %g", c.width)
	}
	b := v.Bounds
	if b.Width() <= 0 || b.Height() <= 0 {
		return fmt.Errorf("view must have positive size, got %gx%g", b.Width(), b.Height())
	}

	c.view = v
	c.scale = c.width / b.Width()
	c.w = c.width
	c.h = b.Height() * c.scale
	c.ready = true

	if v.ShowAxis {
		c.drawAxis()
	}
	return nil
}

func (c *SVG) px(x float64) float64 { return (x - c.view.Bounds.MinX) * c.scale }
func (c *SVG) py(y float64) float64 { return (c.view.Bounds.MaxY - y) * c.scale }

func (c *SVG) drawAxis() {
	fmt.Fprintf(&c.body, `  <rect x="0.5" y="0.5" width="%.2f" height="%.2f" fill="none" stroke="#999" stroke-width="1"/>`+"\n",
		c.w-1, c.h-1)

	b := c.view.Bounds
	if b.MinY < 0 && b.MaxY > 0 {
		fmt.Fprintf(&c.body, `  <line x1="0" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#999" stroke-width="1" stroke-dasharray="4,3"/>`+"\n",
			c.py(0), c.w, c.py(0))
	}
	if b.MinX < 0 && b.MaxX > 0 {
		fmt.Fprintf(&c.body, `  <line x1="%.2f" y1="0" x2="%.2f" y2="%.2f" stroke="#999" stroke-width="1" stroke-dasharray="4,3"/>`+"\n",
			c.px(0), c.px(0), c.h)
	}
}

// DrawPatch emits the SVG element for a filled patch.
func (c *SVG) DrawPatch(p prim.Patch) error {
	if !c.ready {
		return errNoView
	}

	switch p := p.(type) {
	case prim.Rect:
		fmt.Fprintf(&c.body, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="#000" stroke-width="%g"/>`+"\n",
			c.px(p.X), c.py(p.Y+p.H), p.W*c.scale, p.H*c.scale, p.Fill.Hex(), patchStroke)

	case prim.Circle:
		fmt.Fprintf(&c.body, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="#000" stroke-width="%g"/>`+"\n",
			c.px(p.Center.X), c.py(p.Center.Y), p.R*c.scale, p.Fill.Hex(), patchStroke)

	case prim.Polygon:
		var pts strings.Builder
		for i, pt := range p.Points {
			if i > 0 {
				pts.WriteByte(' ')
			}
			fmt.Fprintf(&pts, "%.2f,%.2f", c.px(pt.X), c.py(pt.Y))
		}
		fmt.Fprintf(&c.body, `  <polygon points="%s" fill="%s" stroke="#000" stroke-width="%g"/>`+"\n",
			pts.String(), p.Fill.Hex(), patchStroke)

	case prim.Image:
		data, err := imageData(p.Path)
		if err != nil {
			return err
		}
		fmt.Fprintf(&c.body, `  <image x="%.2f" y="%.2f" width="%.2f" height="%.2f" preserveAspectRatio="none" href="%s"/>`+"\n",
			c.px(p.X), c.py(p.Y+p.H), p.W*c.scale, p.H*c.scale, data)

	default:
		return fmt.Errorf("%w: %T", render.ErrUnsupportedPrimitive, p)
	}
	return nil
}

// DrawLine emits a stroked polyline.
func (c *SVG) DrawLine(l prim.Polyline) error {
	if !c.ready {
		return errNoView
	}
	if len(l) < 2 {
		return nil
	}

	var pts strings.Builder
	for i, pt := range l {
		if i > 0 {
			pts.WriteByte(' ')
		}
		fmt.Fprintf(&pts, "%.2f,%.2f", c.px(pt.X), c.py(pt.Y))
	}
	fmt.Fprintf(&c.body, `  <polyline points="%s" fill="none" stroke="#000" stroke-width="%g"/>`+"\n",
		pts.String(), lineStroke)
	return nil
}

// DrawText emits a centered text element, one tspan per line.
func (c *SVG) DrawText(t prim.Text) error {
	if !c.ready {
		return errNoView
	}
	if t.Content == "" {
		return nil
	}

	size := textSize(t, c.width)
	lines, first, lineH := textLayout(t, c.py(t.Pos.Y), size)
	x := c.px(t.Pos.X)

	weight := ""
	if t.Bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(&c.body, `  <text text-anchor="middle" font-family="%s" font-size="%.1f" fill="#000"%s>`,
		fontFamily, size, weight)
	for i, line := range lines {
		fmt.Fprintf(&c.body, `<tspan x="%.2f" y="%.2f">%s</tspan>`, x, first+float64(i)*lineH, escapeXML(line))
	}
	c.body.WriteString("</text>\n")
	return nil
}

// Bytes serializes the canvas into a standalone SVG document.
func (c *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.w, c.h, c.w, c.h)
	if c.bg != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", c.bg)
	}
	buf.Write(c.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// imageData loads an image file as a data URI so the SVG stays
// self-contained.
func imageData(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	mime := "image/png"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		mime = "image/jpeg"
	case ".gif":
		mime = "image/gif"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// RenderSVG arranges and draws the diagram, returning the SVG document.
func RenderSVG(d layout.Diagram, opts render.Options, svgOpts ...SVGOption) ([]byte, error) {
	c := NewSVG(svgOpts...)
	if err := render.Draw(d, c, opts); err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}
