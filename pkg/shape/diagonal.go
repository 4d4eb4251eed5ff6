package shape

import (
	"fmt"
	"math"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
)

// DiagonalConfig configures a single parallelogram slanted at 45
// degrees, used to depict a flattened layer in perspective. Zero values
// take the documented defaults.
type DiagonalConfig struct {
	// Width of the vertical edge pair. Default 10.
	Width float64

	// Height is the slant length; the horizontal and vertical reach of
	// the slant is Height/sqrt(2). Default 100.
	Height float64

	Label     string
	LabelSide Side

	// X is the left edge. Y is the top edge; auto centers the shape
	// about the baseline.
	X float64
	Y geom.Dim

	Fill prim.RGB
}

// Diagonal is a single slanted parallelogram block.
type Diagonal struct {
	core
	fill prim.RGB
}

// NewDiagonal validates cfg and builds the parallelogram.
func NewDiagonal(cfg DiagonalConfig) (*Diagonal, error) {
	cfg.Width = orFloat(cfg.Width, 10)
	cfg.Height = orFloat(cfg.Height, 100)
	cfg.LabelSide = orSide(cfg.LabelSide)

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: size %gx%g (must be positive)", ErrConfig, cfg.Width, cfg.Height)
	}
	if err := validSide(cfg.LabelSide); err != nil {
		return nil, err
	}

	return &Diagonal{
		core: core{
			x: cfg.X, y: cfg.Y,
			w: cfg.Width, h: cfg.Height,
			label: Label{Text: cfg.Label, Side: cfg.LabelSide},
		},
		fill: orColor(cfg.Fill, DefaultFill),
	}, nil
}

func (s *Diagonal) Resolve() {
	if s.resolved {
		return
	}
	slant := s.h / math.Sqrt2
	s.totW = s.w + slant
	s.totH = slant
	if s.y.IsAuto() {
		s.yv = s.totH / 2
	} else {
		s.yv = s.y.Value()
	}
	s.resolved = true
}

// Corners returns the anchors of the slanted footprint: the top edge
// pair at Y, the bottom edge pair shifted right by the slant reach.
func (s *Diagonal) Corners() (geom.Corners, error) {
	if !s.resolved {
		return geom.Corners{}, ErrUnresolved
	}
	return geom.Corners{
		TL: geom.Point{X: s.x, Y: s.yv},
		TR: geom.Point{X: s.x + s.w, Y: s.yv},
		BL: geom.Point{X: s.x + s.totW - s.w, Y: s.yv - s.totH},
		BR: geom.Point{X: s.x + s.totW, Y: s.yv - s.totH},
	}, nil
}

func (s *Diagonal) Extents() (geom.Rect, error) {
	return cornerExtents(s.Corners())
}

func (s *Diagonal) Geometry() *prim.Collection {
	s.Resolve()
	col := &prim.Collection{}
	col.AddPatch(prim.Polygon{
		Points: []geom.Point{
			{X: s.x, Y: s.yv},
			{X: s.x + s.w, Y: s.yv},
			{X: s.x + s.totW, Y: s.yv - s.totH},
			{X: s.x + s.totW - s.w, Y: s.yv - s.totH},
		},
		Fill: s.fill,
	})
	return col
}
