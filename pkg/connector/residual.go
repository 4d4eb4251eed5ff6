package connector

import (
	"fmt"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/shape"
)

// ResidualConfig configures a skip-connection loop routed around the
// shapes between its endpoints. Zero values take the documented
// defaults.
type ResidualConfig struct {
	Label     string
	LabelSide shape.Side

	// YOffset is the level of the horizontal run. Negative routes below
	// the shapes, positive above. Default -35.
	YOffset float64

	// XOffset insets the drop points from the facing outer edges of the
	// two shapes.
	XOffset float64

	// Size scales the arrowheads. Default 3.
	Size float64

	// HeadOffset shifts the central head horizontally off the run
	// midpoint.
	HeadOffset float64

	// NodeRadius draws filled connection dots at the two bend points
	// when positive.
	NodeRadius float64

	// VerticalHeads adds arrowheads on the two vertical runs, pointing
	// along the flow.
	VerticalHeads bool
}

// Residual routes a connection from the source shape's outer edge, out
// to a horizontal run at YOffset, and back into the destination's outer
// edge, bypassing whatever sits between them. A central arrowhead marks
// the direction.
type Residual struct {
	base
	yoffset    float64
	xoffset    float64
	size       float64
	headOffset float64
	nodeRadius float64
	vertHeads  bool
}

// NewResidual validates cfg and builds the loop.
func NewResidual(cfg ResidualConfig) (*Residual, error) {
	if cfg.YOffset == 0 {
		cfg.YOffset = -35
	}
	cfg.Size = orFloat(cfg.Size, 3)

	if cfg.Size < 0 {
		return nil, fmt.Errorf("%w: arrow size %g (must be >= 0)", ErrConfig, cfg.Size)
	}
	if cfg.XOffset < 0 {
		return nil, fmt.Errorf("%w: x offset %g (must be >= 0)", ErrConfig, cfg.XOffset)
	}
	if cfg.NodeRadius < 0 {
		return nil, fmt.Errorf("%w: node radius %g (must be >= 0)", ErrConfig, cfg.NodeRadius)
	}

	b, err := newBase(cfg.Label, cfg.LabelSide)
	if err != nil {
		return nil, err
	}
	return &Residual{
		base:       b,
		yoffset:    cfg.YOffset,
		xoffset:    cfg.XOffset,
		size:       cfg.Size,
		headOffset: cfg.HeadOffset,
		nodeRadius: cfg.NodeRadius,
		vertHeads:  cfg.VerticalHeads,
	}, nil
}

func (c *Residual) Connect(a, b shape.Shape) (*prim.Collection, error) {
	ea, err := a.Extents()
	if err != nil {
		return nil, err
	}
	eb, err := b.Extents()
	if err != nil {
		return nil, err
	}

	// Drop points sit on the edges facing the run: bottom edges when
	// routing below, top edges when routing above.
	start := geom.Point{X: ea.MaxX - c.xoffset, Y: ea.MinY}
	end := geom.Point{X: eb.MinX + c.xoffset, Y: eb.MinY}
	if c.yoffset > 0 {
		start.Y = ea.MaxY
		end.Y = eb.MaxY
	}

	col := &prim.Collection{}
	col.AddLine(prim.Line(start, geom.Point{X: start.X, Y: c.yoffset}))
	col.AddLine(prim.Line(
		geom.Point{X: start.X, Y: c.yoffset},
		geom.Point{X: end.X, Y: c.yoffset},
	))
	col.AddLine(prim.Line(geom.Point{X: end.X, Y: c.yoffset}, end))

	xmid := (start.X+end.X)/2 + c.size/2 + c.headOffset
	col.AddLine(headRight(xmid, c.yoffset, c.size))

	if c.vertHeads {
		// Flow leaves the source along the first vertical run and
		// re-enters the destination along the second.
		startMid := (start.Y + c.yoffset) / 2
		endMid := (c.yoffset + end.Y) / 2
		if c.yoffset < 0 {
			col.AddLine(headDown(start.X, startMid, c.size))
			col.AddLine(headUp(end.X, endMid, c.size))
		} else {
			col.AddLine(headUp(start.X, startMid, c.size))
			col.AddLine(headDown(end.X, endMid, c.size))
		}
	}

	if c.nodeRadius > 0 {
		col.AddPatch(prim.Circle{Center: start, R: c.nodeRadius, Fill: prim.Black})
		col.AddPatch(prim.Circle{Center: end, R: c.nodeRadius, Fill: prim.Black})
	}

	c.midX = (start.X + end.X) / 2
	return col, nil
}
