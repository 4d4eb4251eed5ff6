package connector

import (
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/shape"
)

// BlankConfig configures a gap with no geometry.
type BlankConfig struct {
	Label     string
	LabelSide shape.Side
}

// Blank draws nothing and only resolves a label midpoint, for gaps that
// need an annotation without a glyph.
type Blank struct {
	base
}

// NewBlank validates cfg and builds the connector.
func NewBlank(cfg BlankConfig) (*Blank, error) {
	b, err := newBase(cfg.Label, cfg.LabelSide)
	if err != nil {
		return nil, err
	}
	return &Blank{base: b}, nil
}

func (c *Blank) Connect(a, b shape.Shape) (*prim.Collection, error) {
	acs, err := a.Corners()
	if err != nil {
		return nil, err
	}
	bcs, err := b.Corners()
	if err != nil {
		return nil, err
	}
	c.midX = (acs.TR.X + bcs.TL.X) / 2
	return nil, nil
}
