package layout

import (
	"fmt"

	"github.com/drawnet/drawnet/pkg/connector"
	"github.com/drawnet/drawnet/pkg/shape"
)

// Sequence is an ordered diagram: shapes appended left to right with one
// connector group per gap. Positions are assigned by Arrange.
type Sequence struct {
	shapes []shape.Shape
	gaps   [][]connector.Connector
}

// NewSequence returns an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// AddShape appends the next shape.
func (s *Sequence) AddShape(sh shape.Shape) {
	s.shapes = append(s.shapes, sh)
}

// AddConnectors appends the connector group for the next gap. Multiple
// connectors share one gap; an empty group leaves the gap unconnected.
func (s *Sequence) AddConnectors(cs ...connector.Connector) {
	s.gaps = append(s.gaps, cs)
}

func (s *Sequence) Shapes() []shape.Shape {
	return s.shapes
}

// Arrange resolves every footprint and assigns X positions in a single
// forward pass. Each shape is first offered a diagonal position climbing
// the accumulated baseline ramp; when that would regress behind the last
// right edge, or overshoot past it, horizontal spacing wins instead, and
// shapes narrower than the spacing get one and a half steps.
//
// The pass reads only footprints and Y positions, so calling it again
// reproduces identical placements.
func (s *Sequence) Arrange(sp Spacing) error {
	if len(s.gaps) >= len(s.shapes) {
		return fmt.Errorf("%w: %d entries for %d shapes", ErrTooManyConnectors, len(s.gaps), len(s.shapes))
	}

	for _, sh := range s.shapes {
		sh.Resolve()
	}

	if sp.ManualX != nil {
		if len(sp.ManualX) != len(s.shapes) {
			return fmt.Errorf("%w: %d positions for %d shapes", ErrManualPositions, len(sp.ManualX), len(s.shapes))
		}
		for i, sh := range s.shapes {
			sh.SetX(sp.ManualX[i])
		}
		return nil
	}

	sp = sp.withDefaults()

	var x, ramp, lastRight float64
	for i, sh := range s.shapes {
		f, err := sh.Frame()
		if err != nil {
			return err
		}

		if i > 0 {
			x = sp.Diagonal + ramp - f.Y
		}
		if x > lastRight || x+f.TotalW < lastRight {
			if f.TotalW < sp.Horizontal {
				x = lastRight + sp.Horizontal*1.5
			} else {
				x = lastRight + sp.Horizontal
			}
		}

		ramp = x + f.Width + f.Y + f.Height
		lastRight = x + f.TotalW
		sh.SetX(x)
	}
	return nil
}

// Edges pairs each gap's connectors with its neighboring shapes.
func (s *Sequence) Edges() ([]Edge, error) {
	if len(s.gaps) >= len(s.shapes) {
		return nil, fmt.Errorf("%w: %d entries for %d shapes", ErrTooManyConnectors, len(s.gaps), len(s.shapes))
	}
	edges := make([]Edge, 0, len(s.gaps))
	for i, cs := range s.gaps {
		edges = append(edges, Edge{
			Connectors: cs,
			A:          s.shapes[i],
			B:          s.shapes[i+1],
		})
	}
	return edges, nil
}
