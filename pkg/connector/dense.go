package connector

import (
	"fmt"
	"math"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/shape"
)

// DenseConfig configures a fully connected fan-out. Zero values take the
// documented defaults.
type DenseConfig struct {
	// TapsA and TapsB are the attachment counts on the source and
	// destination side. Defaults 1.
	TapsA int
	TapsB int

	// LimitA and LimitB keep only the first and last n taps per side
	// when positive, thinning the drawn segments without changing tap
	// positions. Zero draws every tap.
	LimitA int
	LimitB int

	Label     string
	LabelSide shape.Side
}

// Dense draws one segment per source/destination tap pair. Taps spread
// along each shape's inner edge; shapes exposing a pitch get taps
// aligned to their true element spacing instead of an even split of the
// total extent.
type Dense struct {
	base
	numA, numB     int
	limitA, limitB int
}

// NewDense validates cfg and builds the fan-out.
func NewDense(cfg DenseConfig) (*Dense, error) {
	if cfg.TapsA == 0 {
		cfg.TapsA = 1
	}
	if cfg.TapsB == 0 {
		cfg.TapsB = 1
	}

	if cfg.TapsA < 1 || cfg.TapsB < 1 {
		return nil, fmt.Errorf("%w: tap counts %d and %d (must be >= 1)", ErrConfig, cfg.TapsA, cfg.TapsB)
	}
	if cfg.LimitA < 0 || cfg.LimitB < 0 {
		return nil, fmt.Errorf("%w: tap limits %d and %d (must be >= 0)", ErrConfig, cfg.LimitA, cfg.LimitB)
	}

	b, err := newBase(cfg.Label, cfg.LabelSide)
	if err != nil {
		return nil, err
	}
	return &Dense{
		base:   b,
		numA:   cfg.TapsA,
		numB:   cfg.TapsB,
		limitA: cfg.LimitA,
		limitB: cfg.LimitB,
	}, nil
}

// tapIndices returns all n indices, or the first and last limit indices
// when limited. Overlapping ends are kept as-is, so a limited side
// always contributes 2*limit entries.
func tapIndices(n, limit int) []int {
	if limit == 0 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	idx := make([]int, 0, 2*limit)
	for i := 0; i < limit; i++ {
		idx = append(idx, i)
	}
	for i := n - limit; i < n; i++ {
		idx = append(idx, i)
	}
	return idx
}

func (c *Dense) Connect(a, b shape.Shape) (*prim.Collection, error) {
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

	ivalAY, offsetAY := tapSpacing(a, af, acs.TR, acs.BR, c.numA)
	ivalBY, offsetBY := tapSpacing(b, bf, bcs.TL, bcs.BL, c.numB)

	ivalAX := (acs.BR.X - acs.TR.X) / float64(c.numA)
	ivalBX := (bcs.BL.X - bcs.TL.X) / float64(c.numB)

	baseX1 := acs.TR.X + ivalAX/2
	baseY1 := acs.TR.Y - offsetAY
	baseX2 := bcs.TL.X + ivalBX/2
	baseY2 := bcs.TL.Y - offsetBY

	col := &prim.Collection{}
	for _, i := range tapIndices(c.numA, c.limitA) {
		for _, j := range tapIndices(c.numB, c.limitB) {
			col.AddLine(prim.Line(
				geom.Point{X: baseX1 + ivalAX*float64(i), Y: baseY1 - ivalAY*float64(i)},
				geom.Point{X: baseX2 + ivalBX*float64(j), Y: baseY2 - ivalBY*float64(j)},
			))
		}
	}

	c.midX = (acs.BR.X + bcs.BL.X) / 2
	return col, nil
}

// tapSpacing computes the vertical interval between taps and the offset
// of the first tap from the shape's top corner. A declared pitch wins
// over estimating from the corner span.
func tapSpacing(s shape.Shape, f shape.Frame, top, bottom geom.Point, n int) (ival, offset float64) {
	if pitch, ok := s.Pitch(); ok {
		return pitch, f.Height / 2
	}
	ival = math.Abs(bottom.Y-top.Y) / float64(n)
	return ival, ival / 2
}
