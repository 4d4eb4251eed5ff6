package connector

import (
	"fmt"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/shape"
)

// CircleSymbolConfig configures a circled symbol node. Zero values take
// the documented defaults.
type CircleSymbolConfig struct {
	// Diameter of the circle. Default 10.
	Diameter float64

	// Symbol is the glyph centered in the node. Default "+".
	Symbol string

	// Bold renders the symbol in a bold face.
	Bold bool

	Label     string
	LabelSide shape.Side
}

// DiamondSymbolConfig configures a diamond symbol node. Zero values take
// the documented defaults.
type DiamondSymbolConfig struct {
	// Width and Height of the diamond. Defaults 10x10.
	Width  float64
	Height float64

	// Symbol is the glyph centered in the node. Default "+".
	Symbol string

	// Bold renders the symbol in a bold face.
	Bold bool

	Label     string
	LabelSide shape.Side
}

// Symbol draws a line-node-line sequence between two shapes: a short
// segment from each shape to a white circle or diamond holding a
// centered symbol, typically a summation or join marker.
type Symbol struct {
	base
	w, h    float64
	diamond bool
	symbol  string
	bold    bool
}

// NewCircleSymbol validates cfg and builds a circular node.
func NewCircleSymbol(cfg CircleSymbolConfig) (*Symbol, error) {
	cfg.Diameter = orFloat(cfg.Diameter, 10)
	if cfg.Diameter <= 0 {
		return nil, fmt.Errorf("%w: diameter %g (must be positive)", ErrConfig, cfg.Diameter)
	}
	return newSymbol(cfg.Diameter, cfg.Diameter, false, cfg.Symbol, cfg.Bold, cfg.Label, cfg.LabelSide)
}

// NewDiamondSymbol validates cfg and builds a diamond node.
func NewDiamondSymbol(cfg DiamondSymbolConfig) (*Symbol, error) {
	cfg.Width = orFloat(cfg.Width, 10)
	cfg.Height = orFloat(cfg.Height, 10)
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: size %gx%g (must be positive)", ErrConfig, cfg.Width, cfg.Height)
	}
	return newSymbol(cfg.Width, cfg.Height, true, cfg.Symbol, cfg.Bold, cfg.Label, cfg.LabelSide)
}

func newSymbol(w, h float64, diamond bool, symbol string, bold bool, label string, side shape.Side) (*Symbol, error) {
	if symbol == "" {
		symbol = "+"
	}
	b, err := newBase(label, side)
	if err != nil {
		return nil, err
	}
	return &Symbol{
		base:    b,
		w:       w,
		h:       h,
		diamond: diamond,
		symbol:  symbol,
		bold:    bold,
	}, nil
}

func (c *Symbol) Connect(a, b shape.Shape) (*prim.Collection, error) {
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

	from := geom.Point{X: acs.BR.X, Y: acs.BR.Y + af.TotalH/2}
	to := geom.Point{X: bcs.TL.X, Y: bcs.TL.Y - bf.TotalH/2}
	center := geom.Point{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}

	col := &prim.Collection{}
	col.AddLine(prim.Line(from, geom.Point{X: center.X - c.w/2, Y: center.Y}))
	col.AddLine(prim.Line(geom.Point{X: center.X + c.w/2, Y: center.Y}, to))

	if c.diamond {
		col.AddPatch(prim.Polygon{
			Points: []geom.Point{
				{X: center.X - c.w/2, Y: center.Y},
				{X: center.X, Y: center.Y + c.h/2},
				{X: center.X + c.w/2, Y: center.Y},
				{X: center.X, Y: center.Y - c.h/2},
			},
			Fill: prim.White,
		})
	} else {
		col.AddPatch(prim.Circle{Center: center, R: c.w / 2, Fill: prim.White})
	}

	col.AddText(prim.Text{
		Pos:     center,
		Content: c.symbol,
		Align:   prim.AlignMiddle,
		Bold:    c.bold,
	})

	c.midX = center.X
	return col, nil
}
