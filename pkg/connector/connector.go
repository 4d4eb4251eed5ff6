// Package connector implements the operation glyphs drawn between two
// shapes: pass-through lines, kernel proxies, dense fan-outs, arrows,
// residual loops, symbol nodes, ellipses, and blank label-only gaps.
//
// A connector never owns its endpoints. Connect reads both shapes'
// anchors and extents, emits drawable primitives, and latches the
// horizontal label midpoint for the render pass. Endpoint shapes must be
// resolved before Connect.
package connector

import (
	"errors"
	"fmt"

	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/shape"
)

var (
	// ErrConfig wraps invalid construction parameters.
	ErrConfig = errors.New("invalid connector config")

	// ErrKernelTooLarge is returned by kernel connectors when the glyph
	// would not fit inside the shape it is drawn against.
	ErrKernelTooLarge = errors.New("kernel exceeds shape dimensions")
)

// Connector is the contract every operation glyph satisfies.
type Connector interface {
	// Connect computes the drawable geometry between a and b and latches
	// the label midpoint. A nil collection with a nil error means there
	// is nothing to draw.
	Connect(a, b shape.Shape) (*prim.Collection, error)

	// MidX returns the label midpoint computed by the last Connect.
	MidX() float64

	// Label returns the connector's label for the render pass to place.
	Label() shape.Label
}

// base carries the label and the latched midpoint shared by all
// connectors.
type base struct {
	label shape.Label
	midX  float64
}

func (b *base) MidX() float64      { return b.midX }
func (b *base) Label() shape.Label { return b.label }

func newBase(text string, side shape.Side) (base, error) {
	if side == "" {
		side = shape.Below
	}
	if side != shape.Above && side != shape.Below {
		return base{}, fmt.Errorf("%w: label side %q (must be %q or %q)", ErrConfig, side, shape.Above, shape.Below)
	}
	return base{label: shape.Label{Text: text, Side: side}}, nil
}

func orFloat(v, def float64) float64 {
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

// headRight builds a right-pointing triangular arrowhead with its tip at
// (x, y), drawn as a closed polyline.
func headRight(x, y, size float64) prim.Polyline {
	return prim.Polyline{
		{X: x - size, Y: y + size},
		{X: x, Y: y},
		{X: x - size, Y: y - size},
		{X: x - size, Y: y + size},
	}
}

// headDown builds a downward arrowhead with its tip at (x, y).
func headDown(x, y, size float64) prim.Polyline {
	return prim.Polyline{
		{X: x - size, Y: y + size},
		{X: x, Y: y},
		{X: x + size, Y: y + size},
		{X: x - size, Y: y + size},
	}
}

// headUp builds an upward arrowhead with its tip at (x, y).
func headUp(x, y, size float64) prim.Polyline {
	return prim.Polyline{
		{X: x - size, Y: y - size},
		{X: x, Y: y},
		{X: x + size, Y: y - size},
		{X: x - size, Y: y - size},
	}
}
