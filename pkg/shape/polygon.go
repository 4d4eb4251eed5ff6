package shape

import (
	"fmt"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
)

// PolygonConfig configures an arbitrary filled polygon. Points are
// offsets from the shape's center position.
type PolygonConfig struct {
	// Points are the polygon vertices relative to (X, Y). At least 3.
	Points []geom.Point

	Label     string
	LabelSide Side

	// X and Y locate the polygon's center. Auto Y resolves to the
	// baseline.
	X float64
	Y geom.Dim

	Fill prim.RGB
}

// Polygon is an arbitrary filled polygon. Its footprint is the bounding
// box of the configured points, assumed centered on (X, Y); connectors
// attach to that box rather than to individual vertices.
type Polygon struct {
	core
	points []geom.Point
	fill   prim.RGB
}

// NewPolygon validates cfg and builds the polygon.
func NewPolygon(cfg PolygonConfig) (*Polygon, error) {
	cfg.LabelSide = orSide(cfg.LabelSide)

	if len(cfg.Points) < 3 {
		return nil, fmt.Errorf("%w: %d polygon points (need at least 3)", ErrConfig, len(cfg.Points))
	}
	if err := validSide(cfg.LabelSide); err != nil {
		return nil, err
	}

	box, _ := geom.Bounds(cfg.Points)

	pts := make([]geom.Point, len(cfg.Points))
	copy(pts, cfg.Points)

	return &Polygon{
		core: core{
			x: cfg.X, y: cfg.Y,
			w: box.Width(), h: box.Height(),
			label: Label{Text: cfg.Label, Side: cfg.LabelSide},
		},
		points: pts,
		fill:   orColor(cfg.Fill, DefaultFill),
	}, nil
}

// LabelX centers labels on the polygon's X, which is already the
// horizontal center.
func (s *Polygon) LabelX() float64 { return s.x }

func (s *Polygon) Resolve() {
	if s.resolved {
		return
	}
	s.totW = s.w
	s.totH = s.h
	if s.y.IsAuto() {
		s.yv = 0
	} else {
		s.yv = s.y.Value()
	}
	s.resolved = true
}

func (s *Polygon) Corners() (geom.Corners, error) {
	if !s.resolved {
		return geom.Corners{}, ErrUnresolved
	}
	return geom.Corners{
		TL: geom.Point{X: s.x - s.w/2, Y: s.yv + s.h/2},
		TR: geom.Point{X: s.x + s.w/2, Y: s.yv + s.h/2},
		BL: geom.Point{X: s.x - s.w/2, Y: s.yv - s.h/2},
		BR: geom.Point{X: s.x + s.w/2, Y: s.yv - s.h/2},
	}, nil
}

func (s *Polygon) Extents() (geom.Rect, error) {
	return cornerExtents(s.Corners())
}

func (s *Polygon) Geometry() *prim.Collection {
	s.Resolve()
	pts := make([]geom.Point, len(s.points))
	for i, p := range s.points {
		pts[i] = geom.Point{X: p.X + s.x, Y: p.Y + s.yv}
	}
	col := &prim.Collection{}
	col.AddPatch(prim.Polygon{Points: pts, Fill: s.fill})
	return col
}
