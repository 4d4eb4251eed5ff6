package render

import (
	"errors"
	"fmt"

	"github.com/drawnet/drawnet/pkg/connector"
	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/layout"
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/shape"
)

// ErrEmptyDiagram is returned when a diagram yields no drawable
// geometry to size the view from.
var ErrEmptyDiagram = errors.New("nothing to draw")

// connected is a connector paired with its endpoints and the
// collection it produced. The collection is nil for label-only
// connectors.
type connected struct {
	conn connector.Connector
	col  *prim.Collection
	a, b shape.Shape
}

// Draw arranges the diagram and replays it onto the canvas.
//
// The view is the union of every shape's extents and every connector's
// geometry bounds, expanded by the configured margins. Primitives are
// drawn in three passes - patches, then lines, then text - so lines
// always stroke above fills no matter which collection they came from.
// Labels are placed last.
//
// Draw does not mutate the diagram beyond arrangement, so calling it
// again with the same options reproduces the same output.
func Draw(d layout.Diagram, c Canvas, opts Options) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if err := d.Arrange(opts.Spacing); err != nil {
		return fmt.Errorf("arrange: %w", err)
	}

	shapes := d.Shapes()
	cols := make([]*prim.Collection, 0, len(shapes))
	for _, s := range shapes {
		cols = append(cols, s.Geometry())
	}

	conns, err := connectEdges(d)
	if err != nil {
		return err
	}
	for _, cn := range conns {
		if !cn.col.Empty() {
			cols = append(cols, cn.col)
		}
	}

	view, err := viewRect(shapes, conns, opts)
	if err != nil {
		return err
	}
	if err := c.SetView(View{Bounds: view, ShowAxis: opts.ShowAxis}); err != nil {
		return fmt.Errorf("set view: %w", err)
	}

	for _, col := range cols {
		for _, p := range col.Patches {
			if err := c.DrawPatch(p); err != nil {
				return err
			}
		}
	}
	for _, col := range cols {
		for _, l := range col.Lines {
			if err := c.DrawLine(l); err != nil {
				return err
			}
		}
	}
	for _, col := range cols {
		for _, t := range col.Texts {
			if err := c.DrawText(t); err != nil {
				return err
			}
		}
	}

	return drawLabels(c, shapes, conns, view, opts)
}

func connectEdges(d layout.Diagram) ([]connected, error) {
	edges, err := d.Edges()
	if err != nil {
		return nil, err
	}

	var conns []connected
	for i, e := range edges {
		for _, cn := range e.Connectors {
			col, err := cn.Connect(e.A, e.B)
			if err != nil {
				return nil, fmt.Errorf("connect edge %d: %w", i, err)
			}
			conns = append(conns, connected{conn: cn, col: col, a: e.A, b: e.B})
		}
	}
	return conns, nil
}

// viewRect unions shape extents with connector geometry bounds, so
// connectors that overshoot their endpoints still land inside the view,
// and expands the result by the fractional margins.
func viewRect(shapes []shape.Shape, conns []connected, opts Options) (geom.Rect, error) {
	var view geom.Rect
	have := false
	add := func(r geom.Rect) {
		if !have {
			view = r
			have = true
			return
		}
		view = view.Union(r)
	}

	for _, s := range shapes {
		ext, err := s.Extents()
		if err != nil {
			return geom.Rect{}, err
		}
		add(ext)
	}
	for _, cn := range conns {
		if b, ok := cn.col.Bounds(); ok {
			add(b)
		}
	}
	if !have {
		return geom.Rect{}, ErrEmptyDiagram
	}

	return view.Expand(view.Width()*opts.XMargin, view.Height()*opts.YMargin), nil
}

func drawLabels(c Canvas, shapes []shape.Shape, conns []connected, view geom.Rect, opts Options) error {
	for _, s := range shapes {
		lb := s.Label()
		if lb.Text == "" {
			continue
		}
		ext, err := s.Extents()
		if err != nil {
			return err
		}
		if err := c.DrawText(labelText(lb, s.LabelX(), ext.MaxY, ext.MinY, view, opts)); err != nil {
			return err
		}
	}

	for _, cn := range conns {
		lb := cn.conn.Label()
		if lb.Text == "" {
			continue
		}
		extA, err := cn.a.Extents()
		if err != nil {
			return err
		}
		extB, err := cn.b.Extents()
		if err != nil {
			return err
		}
		top := max(extA.MaxY, extB.MaxY)
		bottom := min(extA.MinY, extB.MinY)
		if err := c.DrawText(labelText(lb, cn.conn.MidX(), top, bottom, view, opts)); err != nil {
			return err
		}
	}
	return nil
}

// labelText places one label. Above-labels sit on top of the owner's
// extents and grow upward; below-labels hang under them and grow
// downward. With LabelsAtLimits the anchors move to the view edges and
// the growth direction flips inward so the text stays visible.
func labelText(lb shape.Label, x, top, bottom float64, view geom.Rect, opts Options) prim.Text {
	t := prim.Text{Content: lb.Text, Size: opts.LabelSize}
	switch {
	case opts.LabelsAtLimits && lb.Side == shape.Above:
		t.Pos = geom.Point{X: x, Y: view.MaxY - opts.LabelOffset}
		t.Align = prim.AlignTop
	case opts.LabelsAtLimits:
		t.Pos = geom.Point{X: x, Y: view.MinY + opts.LabelOffset}
		t.Align = prim.AlignBottom
	case lb.Side == shape.Above:
		t.Pos = geom.Point{X: x, Y: top + opts.LabelOffset}
		t.Align = prim.AlignBottom
	default:
		t.Pos = geom.Point{X: x, Y: bottom - opts.LabelOffset}
		t.Align = prim.AlignTop
	}
	return t
}
