// Package shape implements the visual layer primitives a diagram is built
// from: diagonally stacked feature blocks, vertical circle and rectangle
// columns, parallelograms, solid blocks, polygons, and image placeholders.
//
// Every variant is constructed from a config struct with documented
// defaults, resolves its own footprint, and exposes the four corner
// anchors that connectors attach to. Construction validates parameters;
// anchor queries before Resolve fail with ErrUnresolved.
package shape

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
)

// Sentinel errors for configuration and ordering violations.
var (
	// ErrConfig wraps invalid construction parameters.
	ErrConfig = errors.New("invalid shape config")

	// ErrUnresolved is returned when anchors or extents are queried before
	// Resolve has computed the footprint.
	ErrUnresolved = errors.New("shape footprint not resolved")
)

// Default fill colors. Stacked elements alternate light and dark;
// placeholder markers use the near-black dot color.
var (
	LightFill       = prim.Gray(0.7)
	DarkFill        = prim.Gray(0.4)
	PlaceholderFill = prim.Gray(0.1)
	DefaultFill     = prim.Gray(0.9)
)

// Side selects where a label is placed relative to its owner.
type Side string

const (
	Above Side = "above"
	Below Side = "below"
)

func validSide(s Side) error {
	if s != Above && s != Below {
		return fmt.Errorf("%w: label side %q (must be %q or %q)", ErrConfig, s, Above, Below)
	}
	return nil
}

// Label is the text attached to a shape or connector. An empty Text means
// nothing is drawn.
type Label struct {
	Text string
	Side Side
}

// Frame is a shape's resolved placement: base origin and dimensions plus
// the total footprint including any stacking offset.
type Frame struct {
	X, Y          float64
	Width, Height float64
	TotalW, TotalH float64
}

// Shape is the contract every layer variant satisfies and the one
// interface all connectors depend on.
type Shape interface {
	// Resolve computes the total footprint and pins an automatic Y so the
	// shape is vertically centered on the baseline. Idempotent.
	Resolve()

	// Corners returns the four attachment anchors. Fails with
	// ErrUnresolved before Resolve.
	Corners() (geom.Corners, error)

	// Extents returns the bounding rectangle spanned by the corners.
	Extents() (geom.Rect, error)

	// Geometry builds the drawable primitives, resolving first if needed.
	Geometry() *prim.Collection

	// Frame returns the resolved placement.
	Frame() (Frame, error)

	// Label returns the shape's label for the render pass to place.
	Label() Label

	// LabelX returns the horizontal anchor labels are centered on.
	LabelX() float64

	// Pitch reports the pre-declared uniform vertical spacing between
	// stacked elements, when the variant has one. Fan-out connectors use
	// it instead of estimating tap spacing from the total extent.
	Pitch() (float64, bool)

	// SetX moves the shape horizontally. The layout engine assigns X
	// during arrangement.
	SetX(float64)
}

// core carries the placement state shared by all variants.
type core struct {
	x        float64
	y        geom.Dim
	yv       float64
	w, h     float64
	totW     float64
	totH     float64
	label    Label
	resolved bool
}

func (c *core) SetX(x float64)  { c.x = x }
func (c *core) Label() Label    { return c.label }
func (c *core) LabelX() float64 { return c.x + c.w/2 }

func (c *core) Pitch() (float64, bool) { return 0, false }

func (c *core) Frame() (Frame, error) {
	if !c.resolved {
		return Frame{}, ErrUnresolved
	}
	return Frame{
		X: c.x, Y: c.yv,
		Width: c.w, Height: c.h,
		TotalW: c.totW, TotalH: c.totH,
	}, nil
}

// columnCorners is the anchor set shared by vertical stacks, blocks, and
// images: the base rectangle on top, the footprint extending downward.
func (c *core) columnCorners() (geom.Corners, error) {
	if !c.resolved {
		return geom.Corners{}, ErrUnresolved
	}
	return geom.Corners{
		TL: geom.Point{X: c.x, Y: c.yv + c.h},
		TR: geom.Point{X: c.x + c.w, Y: c.yv + c.h},
		BL: geom.Point{X: c.x, Y: c.yv + c.h - c.totH},
		BR: geom.Point{X: c.x + c.w, Y: c.yv + c.h - c.totH},
	}, nil
}

func cornerExtents(cs geom.Corners, err error) (geom.Rect, error) {
	if err != nil {
		return geom.Rect{}, err
	}
	return cs.Bounds(), nil
}

// clampEnds reduces the per-end element count when showing both ends in
// full would exceed the display limit.
func clampEnds(limited, ends int) int {
	if limited > 0 && ends*2 > limited {
		return limited / 2
	}
	return ends
}

// formatNum renders a dimension the way labels display it: no trailing
// zeros, no exponent for typical diagram sizes.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func orFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orColor(c, def prim.RGB) prim.RGB {
	if c == (prim.RGB{}) {
		return def
	}
	return c
}

func orSide(s Side) Side {
	if s == "" {
		return Above
	}
	return s
}
