package layout

import (
	"fmt"

	"github.com/drawnet/drawnet/pkg/connector"
	"github.com/drawnet/drawnet/pkg/shape"
)

// Freeform is an identifier keyed diagram with author-supplied
// positions. Connectors reference shapes by id; unknown ids surface when
// the edges are resolved.
type Freeform struct {
	shapes map[string]shape.Shape
	order  []string
	edges  []freeformEdge
}

type freeformEdge struct {
	connectors []connector.Connector
	from, to   string
}

// NewFreeform returns an empty freeform diagram.
func NewFreeform() *Freeform {
	return &Freeform{shapes: make(map[string]shape.Shape)}
}

// Add registers sh under id, failing if the id is taken.
func (f *Freeform) Add(id string, sh shape.Shape) error {
	if _, ok := f.shapes[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	f.shapes[id] = sh
	f.order = append(f.order, id)
	return nil
}

// Set registers sh under id, replacing any prior shape silently. A
// replaced shape keeps its original draw position.
func (f *Freeform) Set(id string, sh shape.Shape) {
	if _, ok := f.shapes[id]; !ok {
		f.order = append(f.order, id)
	}
	f.shapes[id] = sh
}

// Remove deletes and returns the shape under id, or nil when absent.
func (f *Freeform) Remove(id string) shape.Shape {
	sh, ok := f.shapes[id]
	if !ok {
		return nil
	}
	delete(f.shapes, id)
	for i, o := range f.order {
		if o == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return sh
}

// AddConnectors records a connector group between the shapes under from
// and to. The ids are resolved when Edges runs, so shapes may be added
// in any order.
func (f *Freeform) AddConnectors(from, to string, cs ...connector.Connector) {
	f.edges = append(f.edges, freeformEdge{connectors: cs, from: from, to: to})
}

// Shapes returns the shapes in insertion order.
func (f *Freeform) Shapes() []shape.Shape {
	out := make([]shape.Shape, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.shapes[id])
	}
	return out
}

// Arrange resolves every footprint. Freeform diagrams keep their
// author-supplied positions, so the spacing parameters are ignored.
func (f *Freeform) Arrange(Spacing) error {
	for _, id := range f.order {
		f.shapes[id].Resolve()
	}
	return nil
}

// Edges resolves every connector group to its endpoint shapes.
func (f *Freeform) Edges() ([]Edge, error) {
	edges := make([]Edge, 0, len(f.edges))
	for _, e := range f.edges {
		a, ok := f.shapes[e.from]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownID, e.from)
		}
		b, ok := f.shapes[e.to]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownID, e.to)
		}
		edges = append(edges, Edge{Connectors: e.connectors, A: a, B: b})
	}
	return edges, nil
}
