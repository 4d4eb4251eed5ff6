package shape

import (
	"fmt"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
)

// RectStackConfig configures a vertical column of rectangles. Zero
// values take the documented defaults.
type RectStackConfig struct {
	// Features is the number of stacked rectangles. Default 9.
	Features int

	// Width and Height size each rectangle. Defaults 10x10.
	Width  float64
	Height float64

	// Gap is extra vertical space between consecutive rectangles.
	// Default 0; negative values overlap but must keep the pitch
	// positive.
	Gap float64

	// Limited caps how many stack positions are depicted. Default 0
	// (show all).
	Limited int

	// LimitedRadius is the placeholder dot radius. Default 5.
	LimitedRadius float64

	// SkipStride keeps every n-th placeholder dot. Default 1.
	SkipStride int

	// EndFeatures is how many real rectangles remain at each end of a
	// limited stack. Default 5, clamped to Limited/2.
	EndFeatures int

	Label     string
	LabelSide Side

	X float64
	Y geom.Dim

	Fill prim.RGB
}

// RectStack depicts a feature column as vertically stacked rectangles.
type RectStack struct {
	core
	features int
	pitch    float64
	limited  int
	radius   float64
	stride   int
	ends     int
	fill     prim.RGB
}

// NewRectStack validates cfg and builds the column. The label is
// extended with the feature count.
func NewRectStack(cfg RectStackConfig) (*RectStack, error) {
	cfg.Features = orInt(cfg.Features, 9)
	cfg.Width = orFloat(cfg.Width, 10)
	cfg.Height = orFloat(cfg.Height, 10)
	cfg.LimitedRadius = orFloat(cfg.LimitedRadius, 5)
	cfg.SkipStride = orInt(cfg.SkipStride, 1)
	cfg.EndFeatures = orInt(cfg.EndFeatures, 5)
	cfg.LabelSide = orSide(cfg.LabelSide)

	if cfg.Features < 1 {
		return nil, fmt.Errorf("%w: features %d (must be >= 1)", ErrConfig, cfg.Features)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: element size %gx%g (must be positive)", ErrConfig, cfg.Width, cfg.Height)
	}
	if cfg.Gap <= -cfg.Height {
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

	return &RectStack{
		core: core{
			x: cfg.X, y: cfg.Y,
			w: cfg.Width, h: cfg.Height,
			label: Label{Text: text, Side: cfg.LabelSide},
		},
		features: cfg.Features,
		pitch:    cfg.Height + cfg.Gap,
		limited:  cfg.Limited,
		radius:   cfg.LimitedRadius,
		stride:   cfg.SkipStride,
		ends:     clampEnds(cfg.Limited, cfg.EndFeatures),
		fill:     orColor(cfg.Fill, DefaultFill),
	}, nil
}

// Pitch reports the uniform element spacing fan-out connectors align to.
func (s *RectStack) Pitch() (float64, bool) { return s.pitch, true }

func (s *RectStack) Resolve() {
	if s.resolved {
		return
	}
	shown := s.features
	if s.limited > 0 {
		shown = s.limited
	}
	s.totW = s.w
	s.totH = s.pitch*float64(shown) - (s.pitch - s.h)
	if s.y.IsAuto() {
		s.yv = s.totH/2 - s.h
	} else {
		s.yv = s.y.Value()
	}
	s.resolved = true
}

func (s *RectStack) Corners() (geom.Corners, error) {
	return s.columnCorners()
}

func (s *RectStack) Extents() (geom.Rect, error) {
	return cornerExtents(s.Corners())
}

func (s *RectStack) Geometry() *prim.Collection {
	s.Resolve()
	col := &prim.Collection{}
	rect := func(i int) {
		col.AddPatch(prim.Rect{
			X: s.x, Y: s.yv - s.pitch*float64(i),
			W: s.w, H: s.h,
			Fill: s.fill,
		})
	}

	if s.limited == 0 {
		for i := 0; i < s.features; i++ {
			rect(i)
		}
		return col
	}

	for i := 0; i < s.ends; i++ {
		rect(i)
	}
	interior := s.limited - 2*s.ends
	for i := 0; i < interior; i++ {
		if i%s.stride != 0 {
			continue
		}
		// Dot centers ride half a radius above the slot center.
		col.AddPatch(prim.Circle{
			Center: geom.Point{
				X: s.x + s.w/2,
				Y: s.yv - s.pitch*float64(i+s.ends) + s.radius/2 + s.h/2,
			},
			R:    s.radius,
			Fill: PlaceholderFill,
		})
	}
	off := s.ends + max(0, interior)
	for i := 0; i < s.ends; i++ {
		rect(i + off)
	}
	return col
}
