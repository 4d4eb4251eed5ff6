package connector

import (
	"fmt"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/shape"
)

// KernelConfig configures a convolution glyph: a kernel-sized rectangle
// on one shape projected to a unit square on the other. Zero values take
// the documented defaults.
type KernelConfig struct {
	// Width and Height are the kernel dimensions. Defaults 4x4.
	Width  float64
	Height float64

	// Stride is reported in the label. Default 2.
	Stride int

	Label     string
	LabelSide shape.Side

	// Fill colors the kernel rectangles. Default near-black.
	Fill prim.RGB

	// Reverse swaps the sides: the unit square sits on the source shape
	// and the full kernel on the destination, depicting upsampling.
	Reverse bool

	// LabelOnly suppresses all geometry, keeping only the label
	// midpoint. Size preconditions still apply.
	LabelOnly bool
}

// Kernel draws a convolution between two shapes: a filled rectangle
// sized to the kernel near the source's bottom-right corner, a 1x1
// projection near the destination's top-left region, and two diagonals
// joining their edges.
type Kernel struct {
	base
	kw, kh    float64
	fill      prim.RGB
	reverse   bool
	labelOnly bool
}

// NewKernel validates cfg and builds the glyph. The label is extended
// with the kernel size and stride.
func NewKernel(cfg KernelConfig) (*Kernel, error) {
	cfg.Width = orFloat(cfg.Width, 4)
	cfg.Height = orFloat(cfg.Height, 4)
	if cfg.Stride == 0 {
		cfg.Stride = 2
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: kernel size %gx%g (must be positive)", ErrConfig, cfg.Width, cfg.Height)
	}
	if cfg.Stride < 1 {
		return nil, fmt.Errorf("%w: stride %d (must be >= 1)", ErrConfig, cfg.Stride)
	}

	text := fmt.Sprintf("%s\n%gx%g Kernel\nStride %d", cfg.Label, cfg.Width, cfg.Height, cfg.Stride)
	b, err := newBase(text, cfg.LabelSide)
	if err != nil {
		return nil, err
	}

	return &Kernel{
		base:      b,
		kw:        cfg.Width,
		kh:        cfg.Height,
		fill:      orColor(cfg.Fill, shape.PlaceholderFill),
		reverse:   cfg.Reverse,
		labelOnly: cfg.LabelOnly,
	}, nil
}

func (c *Kernel) Connect(a, b shape.Shape) (*prim.Collection, error) {
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

	// The kernel rectangle must fit inside the shape it is drawn
	// against: the source normally, the destination when reversed.
	host := af
	if c.reverse {
		host = bf
	}
	if c.kw > host.Width || c.kh > host.Height {
		return nil, fmt.Errorf("%w: kernel %gx%g on shape %gx%g",
			ErrKernelTooLarge, c.kw, c.kh, host.Width, host.Height)
	}

	// Each side shows either the full kernel or its 1x1 projection.
	aw, ah := c.kw, c.kh
	bw, bh := 1.0, 1.0
	if c.reverse {
		aw, ah = 1, 1
		bw, bh = c.kw, c.kh
	}

	x1 := acs.BR.X - min(af.Width, 0.1*af.Width+aw)
	y1 := acs.BR.Y + min(af.Height-ah, 0.1*af.Height)
	x2 := bcs.BR.X - 0.9*bf.Width
	y2 := bcs.BR.Y + 0.9*bf.Height - bh

	c.midX = (x1 + aw + x2) / 2

	if c.labelOnly {
		return nil, nil
	}

	col := &prim.Collection{}
	col.AddPatch(prim.Rect{X: x1, Y: y1, W: aw, H: ah, Fill: c.fill})
	col.AddPatch(prim.Rect{X: x2, Y: y2, W: bw, H: bh, Fill: c.fill})
	col.AddLine(prim.Line(
		geom.Point{X: x1 + aw, Y: y1 + ah},
		geom.Point{X: x2, Y: y2 + bh},
	))
	col.AddLine(prim.Line(
		geom.Point{X: x1 + aw, Y: y1},
		geom.Point{X: x2, Y: y2},
	))
	return col, nil
}
