// Package prim defines the drawable primitives exchanged between the
// geometry packages and a rendering canvas: filled patches (rectangles,
// circles, polygons, images), polyline sets, and positioned text, grouped
// into collections with computable bounds.
//
// Primitives carry diagram coordinates (Y up). Canvas implementations are
// responsible for mapping them into their own device space.
package prim

import (
	"fmt"

	"github.com/drawnet/drawnet/pkg/geom"
)

// RGB is a color with components in [0, 1]. It implements color.Color so
// it can be handed directly to raster backends.
type RGB struct {
	R, G, B float64
}

// Common fills.
var (
	Black = RGB{}
	White = RGB{R: 1, G: 1, B: 1}
)

// Gray returns the neutral gray with the given intensity.
func Gray(v float64) RGB { return RGB{R: v, G: v, B: v} }

// RGBA implements color.Color. Components are clamped to [0, 1].
func (c RGB) RGBA() (r, g, b, a uint32) {
	conv := func(v float64) uint32 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint32(v*65535 + 0.5)
	}
	return conv(c.R), conv(c.G), conv(c.B), 65535
}

// Hex returns the color as a #rrggbb string for SVG output.
func (c RGB) Hex() string {
	conv := func(v float64) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v*255 + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", conv(c.R), conv(c.G), conv(c.B))
}

// Patch is a filled drawable. Canvases switch over the concrete types
// below; anything else is rejected as unsupported.
type Patch interface {
	Bounds() geom.Rect
}

// Rect is a filled rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y float64
	W, H float64
	Fill RGB
}

// Bounds returns the rectangle's extent.
func (r Rect) Bounds() geom.Rect {
	return geom.Rect{MinX: r.X, MinY: r.Y, MaxX: r.X + r.W, MaxY: r.Y + r.H}
}

// Circle is a filled circle.
type Circle struct {
	Center geom.Point
	R      float64
	Fill   RGB
}

// Bounds returns the circle's extent.
func (c Circle) Bounds() geom.Rect {
	return geom.Rect{
		MinX: c.Center.X - c.R, MinY: c.Center.Y - c.R,
		MaxX: c.Center.X + c.R, MaxY: c.Center.Y + c.R,
	}
}

// Polygon is a filled closed polygon.
type Polygon struct {
	Points []geom.Point
	Fill   RGB
}

// Bounds returns the polygon's extent.
func (p Polygon) Bounds() geom.Rect {
	r, _ := geom.Bounds(p.Points)
	return r
}

// Image places the referenced image file into the given rectangle,
// anchored at its bottom-left corner.
type Image struct {
	X, Y float64
	W, H float64
	Path string
}

// Bounds returns the image's extent.
func (i Image) Bounds() geom.Rect {
	return geom.Rect{MinX: i.X, MinY: i.Y, MaxX: i.X + i.W, MaxY: i.Y + i.H}
}

// Polyline is an open stroked path through two or more points.
type Polyline []geom.Point

// Bounds returns the polyline's extent.
func (p Polyline) Bounds() geom.Rect {
	r, _ := geom.Bounds(p)
	return r
}

// Line returns the two-point polyline from a to b.
func Line(a, b geom.Point) Polyline { return Polyline{a, b} }

// VAlign positions text relative to its anchor point.
type VAlign int

const (
	// AlignBottom places the anchor under the text block (text extends up).
	AlignBottom VAlign = iota
	// AlignTop places the anchor above the text block (text extends down).
	AlignTop
	// AlignMiddle centers the text block on the anchor.
	AlignMiddle
)

// Text is a horizontally centered text block. Size is in device units so
// labels stay legible regardless of diagram scale; zero means the canvas
// default.
type Text struct {
	Pos     geom.Point
	Content string
	Align   VAlign
	Size    float64
	Bold    bool
}

// Collection groups the primitives emitted by one shape or connector.
type Collection struct {
	Patches []Patch
	Lines   []Polyline
	Texts   []Text
}

// AddPatch appends filled patches to the collection.
func (c *Collection) AddPatch(ps ...Patch) { c.Patches = append(c.Patches, ps...) }

// AddLine appends polylines to the collection.
func (c *Collection) AddLine(ls ...Polyline) { c.Lines = append(c.Lines, ls...) }

// AddText appends text blocks to the collection.
func (c *Collection) AddText(ts ...Text) { c.Texts = append(c.Texts, ts...) }

// Merge appends the contents of o. A nil o is ignored.
func (c *Collection) Merge(o *Collection) {
	if o == nil {
		return
	}
	c.Patches = append(c.Patches, o.Patches...)
	c.Lines = append(c.Lines, o.Lines...)
	c.Texts = append(c.Texts, o.Texts...)
}

// Empty reports whether the collection holds no drawables.
func (c *Collection) Empty() bool {
	return c == nil || (len(c.Patches) == 0 && len(c.Lines) == 0 && len(c.Texts) == 0)
}

// Bounds returns the union of all patch and line extents. Text is
// excluded: its world-space size depends on the canvas. The second return
// value is false when the collection holds no measurable geometry.
func (c *Collection) Bounds() (geom.Rect, bool) {
	if c == nil {
		return geom.Rect{}, false
	}
	var r geom.Rect
	have := false
	add := func(b geom.Rect) {
		if !have {
			r = b
			have = true
			return
		}
		r = r.Union(b)
	}
	for _, p := range c.Patches {
		add(p.Bounds())
	}
	for _, l := range c.Lines {
		if len(l) > 0 {
			add(l.Bounds())
		}
	}
	return r, have
}
