package connector

import (
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/shape"
)

// LineConfig configures a direct two-segment connection.
type LineConfig struct {
	Label     string
	LabelSide shape.Side
}

// Line joins the inner-facing corners of two shapes with a pair of
// straight segments, the plainest way to show data passing through.
type Line struct {
	base
}

// NewLine validates cfg and builds the connector.
func NewLine(cfg LineConfig) (*Line, error) {
	b, err := newBase(cfg.Label, cfg.LabelSide)
	if err != nil {
		return nil, err
	}
	return &Line{base: b}, nil
}

func (c *Line) Connect(a, b shape.Shape) (*prim.Collection, error) {
	acs, err := a.Corners()
	if err != nil {
		return nil, err
	}
	bcs, err := b.Corners()
	if err != nil {
		return nil, err
	}

	col := &prim.Collection{}
	col.AddLine(prim.Line(acs.TR, bcs.TL))
	col.AddLine(prim.Line(acs.BR, bcs.BL))

	c.midX = (acs.BR.X + bcs.BL.X) / 2
	return col, nil
}
