package shape

import (
	"fmt"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
)

// BlockConfig configures a single solid rectangle. Zero values take the
// documented defaults.
type BlockConfig struct {
	// Width and Height of the rectangle. Defaults 100x100.
	Width  float64
	Height float64

	Label     string
	LabelSide Side

	// X is the left edge. Y is the bottom edge; auto centers the block
	// about the baseline.
	X float64
	Y geom.Dim

	Fill prim.RGB
}

// Block is a single filled rectangle, the simplest layer visual.
type Block struct {
	core
	fill prim.RGB
}

// NewBlock validates cfg and builds the rectangle.
func NewBlock(cfg BlockConfig) (*Block, error) {
	cfg.Width = orFloat(cfg.Width, 100)
	cfg.Height = orFloat(cfg.Height, 100)
	cfg.LabelSide = orSide(cfg.LabelSide)

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: size %gx%g (must be positive)", ErrConfig, cfg.Width, cfg.Height)
	}
	if err := validSide(cfg.LabelSide); err != nil {
		return nil, err
	}

	return &Block{
		core: core{
			x: cfg.X, y: cfg.Y,
			w: cfg.Width, h: cfg.Height,
			label: Label{Text: cfg.Label, Side: cfg.LabelSide},
		},
		fill: orColor(cfg.Fill, DefaultFill),
	}, nil
}

func (s *Block) Resolve() {
	if s.resolved {
		return
	}
	s.totW = s.w
	s.totH = s.h
	if s.y.IsAuto() {
		s.yv = -s.h / 2
	} else {
		s.yv = s.y.Value()
	}
	s.resolved = true
}

func (s *Block) Corners() (geom.Corners, error) {
	return s.columnCorners()
}

func (s *Block) Extents() (geom.Rect, error) {
	return cornerExtents(s.Corners())
}

func (s *Block) Geometry() *prim.Collection {
	s.Resolve()
	col := &prim.Collection{}
	col.AddPatch(prim.Rect{X: s.x, Y: s.yv, W: s.w, H: s.h, Fill: s.fill})
	return col
}
