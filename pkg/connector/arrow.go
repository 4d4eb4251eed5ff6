package connector

import (
	"fmt"
	"math"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/shape"
)

// ArrowConfig configures a horizontal arrow. Zero values take the
// documented defaults.
type ArrowConfig struct {
	Label     string
	LabelSide shape.Side

	// Size scales the triangular head. Default 3.
	Size float64

	// HeadOffset shifts the head horizontally off the span midpoint.
	HeadOffset float64

	// Trim shortens the body at both ends. Auto trims 5% of the span.
	Trim geom.Dim

	// HeadOnly suppresses the body segments.
	HeadOnly bool
}

// Arrow draws a line from the source's right vertical center to the
// destination's left vertical center with a triangular head at the
// midpoint.
type Arrow struct {
	base
	size       float64
	headOffset float64
	trim       geom.Dim
	headOnly   bool
}

// NewArrow validates cfg and builds the arrow.
func NewArrow(cfg ArrowConfig) (*Arrow, error) {
	cfg.Size = orFloat(cfg.Size, 3)
	if cfg.Size < 0 {
		return nil, fmt.Errorf("%w: arrow size %g (must be >= 0)", ErrConfig, cfg.Size)
	}

	b, err := newBase(cfg.Label, cfg.LabelSide)
	if err != nil {
		return nil, err
	}
	return &Arrow{
		base:       b,
		size:       cfg.Size,
		headOffset: cfg.HeadOffset,
		trim:       cfg.Trim,
		headOnly:   cfg.HeadOnly,
	}, nil
}

func (c *Arrow) Connect(a, b shape.Shape) (*prim.Collection, error) {
	acs, err := a.Corners()
	if err != nil {
		return nil, err
	}
	bcs, err := b.Corners()
	if err != nil {
		return nil, err
	}
	af, err := a.Frame()
	if err != nil {
		return nil, err
	}
	bf, err := b.Frame()
	if err != nil {
		return nil, err
	}

	// Endpoints sit at the vertical center of each footprint.
	x1, y1 := acs.BR.X, acs.BR.Y+af.TotalH/2
	x2, y2 := bcs.TL.X, bcs.TL.Y-bf.TotalH/2

	trim := c.trim.Or(0.05 * math.Abs(x2-x1))

	xmid := (x1+x2)/2 + c.size/2 + c.headOffset
	ymid := (y1 + y2) / 2

	col := &prim.Collection{}
	if !c.headOnly {
		col.AddLine(prim.Line(
			geom.Point{X: x1 + trim, Y: y1},
			geom.Point{X: xmid - c.size, Y: ymid},
		))
		col.AddLine(prim.Line(
			geom.Point{X: xmid, Y: ymid},
			geom.Point{X: x2 - trim, Y: y2},
		))
	}
	col.AddLine(headRight(xmid, ymid, c.size))

	c.midX = (x1 + x2) / 2
	return col, nil
}
