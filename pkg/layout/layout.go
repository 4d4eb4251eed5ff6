// Package layout arranges shapes into diagrams. Sequence places an
// ordered shape list automatically with the staircase spacing pass;
// Freeform keeps an identifier keyed store with author-supplied
// positions. Both expose the same Diagram view the render pass consumes.
package layout

import (
	"errors"

	"github.com/drawnet/drawnet/pkg/connector"
	"github.com/drawnet/drawnet/pkg/shape"
)

var (
	// ErrTooManyConnectors is returned when a sequence holds as many or
	// more connector entries than shapes.
	ErrTooManyConnectors = errors.New("connector entries must be fewer than shapes")

	// ErrManualPositions is returned when a manual X list does not match
	// the shape count.
	ErrManualPositions = errors.New("manual positions must cover every shape")

	// ErrDuplicateID is returned when adding a shape under an identifier
	// that is already present.
	ErrDuplicateID = errors.New("shape id already present")

	// ErrUnknownID is returned when a connector references an identifier
	// with no shape behind it.
	ErrUnknownID = errors.New("no shape with id")
)

// Spacing carries the placement parameters of the arrangement pass.
// Zero values take the documented defaults.
type Spacing struct {
	// Horizontal is the gap between non-diagonal neighbors. Default 100.
	Horizontal float64 `json:"horizontal,omitempty"`

	// Diagonal is the stagger distance for diagonal footprints.
	// Default 200.
	Diagonal float64 `json:"diagonal,omitempty"`

	// ManualX overrides automatic placement entirely when non-nil. It
	// must hold one X per shape.
	ManualX []float64 `json:"manual_x,omitempty"`
}

func (s Spacing) withDefaults() Spacing {
	if s.Horizontal == 0 {
		s.Horizontal = 100
	}
	if s.Diagonal == 0 {
		s.Diagonal = 200
	}
	return s
}

// Edge is one connector group resolved to its endpoint shapes.
type Edge struct {
	Connectors []connector.Connector
	A, B       shape.Shape
}

// Diagram is the arranged view of a shape collection, ready to draw.
type Diagram interface {
	// Shapes returns every shape in a stable draw order.
	Shapes() []shape.Shape

	// Arrange resolves every shape's footprint and assigns positions
	// where the layout owns them. Fails on count preconditions.
	Arrange(Spacing) error

	// Edges resolves every connector group to its endpoint shapes.
	Edges() ([]Edge, error)
}
