package connector

import (
	"fmt"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/shape"
)

// EllipsisConfig configures a three-dot "layers omitted" marker. Zero
// values take the documented defaults.
type EllipsisConfig struct {
	// Diameter of each dot. Default 2.
	Diameter float64

	// Spacing between dot centers. Auto spreads the dots at the
	// quarter points of the gap.
	Spacing geom.Dim

	// Fill colors the dots. Default black.
	Fill prim.RGB

	Label     string
	LabelSide shape.Side
}

// Ellipsis draws three dots between two shapes with no connecting
// lines, signaling repeated layers left out of the diagram.
type Ellipsis struct {
	base
	d       float64
	spacing geom.Dim
	fill    prim.RGB
}

// NewEllipsis validates cfg and builds the marker.
func NewEllipsis(cfg EllipsisConfig) (*Ellipsis, error) {
	cfg.Diameter = orFloat(cfg.Diameter, 2)
	if cfg.Diameter <= 0 {
		return nil, fmt.Errorf("%w: diameter %g (must be positive)", ErrConfig, cfg.Diameter)
	}
	if !cfg.Spacing.IsAuto() && cfg.Spacing.Value() <= 0 {
		return nil, fmt.Errorf("%w: spacing %g (must be positive)", ErrConfig, cfg.Spacing.Value())
	}

	b, err := newBase(cfg.Label, cfg.LabelSide)
	if err != nil {
		return nil, err
	}
	return &Ellipsis{
		base:    b,
		d:       cfg.Diameter,
		spacing: cfg.Spacing,
		fill:    orColor(cfg.Fill, prim.Black),
	}, nil
}

func (c *Ellipsis) Connect(a, b shape.Shape) (*prim.Collection, error) {
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

	var centers [3]geom.Point
	if c.spacing.IsAuto() {
		// Quarter points of the gap.
		for i := range centers {
			t := float64(i+1) / 4
			centers[i] = geom.Point{
				X: from.X + (to.X-from.X)*t,
				Y: from.Y + (to.Y-from.Y)*t,
			}
		}
	} else {
		s := c.spacing.Value()
		centers = [3]geom.Point{
			{X: center.X - s, Y: center.Y},
			center,
			{X: center.X + s, Y: center.Y},
		}
	}

	col := &prim.Collection{}
	for _, p := range centers {
		col.AddPatch(prim.Circle{Center: p, R: c.d / 2, Fill: c.fill})
	}

	c.midX = center.X
	return col, nil
}
