package shape

import (
	"fmt"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
)

// CircleStackConfig configures a vertical column of circles. Zero values
// take the documented defaults.
type CircleStackConfig struct {
	// Features is the number of stacked circles. Default 9.
	Features int

	// Diameter of each circle. Default 1.
	Diameter float64

	// Gap is extra vertical space between consecutive circles. Default 0;
	// negative values overlap the circles but must keep the pitch
	// positive.
	Gap float64

	// Limited caps how many stack positions are depicted, as in
	// Stack2DConfig. Default 0 (show all).
	Limited int

	// LimitedRadius is the placeholder dot radius. Default 0.25.
	LimitedRadius float64

	// SkipStride keeps every n-th placeholder dot. Default 1.
	SkipStride int

	// EndFeatures is how many real circles remain at each end of a
	// limited stack. Default 5, clamped to Limited/2.
	EndFeatures int

	Label     string
	LabelSide Side

	X float64
	Y geom.Dim

	Fill prim.RGB
}

// CircleStack depicts a dense feature vector as a column of circles
// stacked downward from the origin.
type CircleStack struct {
	core
	features int
	d        float64
	pitch    float64
	limited  int
	radius   float64
	stride   int
	ends     int
	fill     prim.RGB
}

// NewCircleStack validates cfg and builds the column. The label is
// extended with the feature count.
func NewCircleStack(cfg CircleStackConfig) (*CircleStack, error) {
	cfg.Features = orInt(cfg.Features, 9)
	cfg.Diameter = orFloat(cfg.Diameter, 1)
	cfg.LimitedRadius = orFloat(cfg.LimitedRadius, 0.25)
	cfg.SkipStride = orInt(cfg.SkipStride, 1)
	cfg.EndFeatures = orInt(cfg.EndFeatures, 5)
	cfg.LabelSide = orSide(cfg.LabelSide)

	if cfg.Features < 1 {
		return nil, fmt.Errorf("%w: features %d (must be >= 1)", ErrConfig, cfg.Features)
	}
	if cfg.Diameter <= 0 {
		return nil, fmt.Errorf("%w: diameter %g (must be positive)", ErrConfig, cfg.Diameter)
	}
	if cfg.Gap <= -cfg.Diameter {
		return nil, fmt.Errorf("%w: gap %g collapses the stack pitch", ErrConfig, cfg.Gap)
	}
	if cfg.Limited < 0 || cfg.Limited >= cfg.Features {
		return nil, fmt.Errorf("%w: limited %d (must be 0 or < features %d)", ErrConfig, cfg.Limited, cfg.Features)
	}
	if cfg.LimitedRadius < 0 {
		return nil, fmt.Errorf("%w: limited radius %g (must be >= 0)", ErrConfig, cfg.LimitedRadius)
	}
	if cfg.SkipStride < 1 {
		return nil, fmt.Errorf("%w: skip stride %d (must be >= 1)", ErrConfig, cfg.SkipStride)
	}
	if cfg.EndFeatures < 0 {
		return nil, fmt.Errorf("%w: end features %d (must be >= 0)", ErrConfig, cfg.EndFeatures)
	}
	if err := validSide(cfg.LabelSide); err != nil {
		return nil, err
	}

	text := fmt.Sprintf("%s\n%d", cfg.Label, cfg.Features)

	return &CircleStack{
		core: core{
			x: cfg.X, y: cfg.Y,
			w: cfg.Diameter, h: cfg.Diameter,
			label: Label{Text: text, Side: cfg.LabelSide},
		},
		features: cfg.Features,
		d:        cfg.Diameter,
		pitch:    cfg.Diameter + cfg.Gap,
		limited:  cfg.Limited,
		radius:   cfg.LimitedRadius,
		stride:   cfg.SkipStride,
		ends:     clampEnds(cfg.Limited, cfg.EndFeatures),
		fill:     orColor(cfg.Fill, DefaultFill),
	}, nil
}

// Pitch reports the uniform element spacing fan-out connectors align to.
func (s *CircleStack) Pitch() (float64, bool) { return s.pitch, true }

func (s *CircleStack) Resolve() {
	if s.resolved {
		return
	}
	shown := s.features
	if s.limited > 0 {
		shown = s.limited
	}
	s.totW = s.d
	s.totH = s.pitch*float64(shown) - (s.pitch - s.d)
	if s.y.IsAuto() {
		s.yv = s.totH/2 - s.d
	} else {
		s.yv = s.y.Value()
	}
	s.resolved = true
}

func (s *CircleStack) Corners() (geom.Corners, error) {
	return s.columnCorners()
}

func (s *CircleStack) Extents() (geom.Rect, error) {
	return cornerExtents(s.Corners())
}

func (s *CircleStack) Geometry() *prim.Collection {
	s.Resolve()
	col := &prim.Collection{}
	rad := s.d / 2
	circle := func(i int) {
		col.AddPatch(prim.Circle{
			Center: geom.Point{X: s.x + rad, Y: s.yv - s.pitch*float64(i) + rad},
			R:      rad,
			Fill:   s.fill,
		})
	}

	if s.limited == 0 {
		for i := 0; i < s.features; i++ {
			circle(i)
		}
		return col
	}

	for i := 0; i < s.ends; i++ {
		circle(i)
	}
	interior := s.limited - 2*s.ends
	for i := 0; i < interior; i++ {
		if i%s.stride != 0 {
			continue
		}
		col.AddPatch(prim.Circle{
			Center: geom.Point{X: s.x + rad, Y: s.yv - s.pitch*float64(i+s.ends) + rad},
			R:      s.radius,
			Fill:   PlaceholderFill,
		})
	}
	off := s.ends + max(0, interior)
	for i := 0; i < s.ends; i++ {
		circle(i + off)
	}
	return col
}
