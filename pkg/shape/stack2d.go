package shape

import (
	"fmt"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
)

// Stack2DConfig configures a diagonally stacked feature block. Zero
// values take the documented defaults; Label is literal (empty draws
// only the summary lines).
type Stack2DConfig struct {
	// Channels is the number of stacked elements. Default 3.
	Channels int

	// Width and Height size each element. Defaults 100x100.
	Width  float64
	Height float64

	// Space is the diagonal offset between consecutive elements.
	// Default 10.
	Space float64

	// Limited caps how many stack positions are depicted. Zero shows
	// every channel; a positive value must stay below Channels and
	// collapses the interior into placeholder dots.
	Limited int

	// LimitedRadius is the placeholder dot radius. Default 5.
	LimitedRadius float64

	// SkipStride thins the placeholder run, keeping every n-th dot.
	// Default 3.
	SkipStride int

	// EndChannels is how many real elements remain at each end of a
	// limited stack. Default 3, clamped to Limited/2 when both ends
	// would overlap.
	EndChannels int

	Label     string
	LabelSide Side

	X float64
	Y geom.Dim

	// Light and Dark alternate as fills for consecutive elements.
	Light prim.RGB
	Dark  prim.RGB
}

// Stack2D depicts a convolutional feature map: Channels rectangles
// offset diagonally, rendered back-to-front with alternating fills.
type Stack2D struct {
	core
	channels int
	space    float64
	limited  int
	radius   float64
	stride   int
	ends     int
	light    prim.RGB
	dark     prim.RGB
}

// NewStack2D validates cfg and builds the stack. The label is extended
// with channel count and element dimensions.
func NewStack2D(cfg Stack2DConfig) (*Stack2D, error) {
	cfg.Channels = orInt(cfg.Channels, 3)
	cfg.Width = orFloat(cfg.Width, 100)
	cfg.Height = orFloat(cfg.Height, 100)
	cfg.Space = orFloat(cfg.Space, 10)
	cfg.LimitedRadius = orFloat(cfg.LimitedRadius, 5)
	cfg.SkipStride = orInt(cfg.SkipStride, 3)
	cfg.EndChannels = orInt(cfg.EndChannels, 3)
	cfg.LabelSide = orSide(cfg.LabelSide)

	if cfg.Channels < 1 {
		return nil, fmt.Errorf("%w: channels %d (must be >= 1)", ErrConfig, cfg.Channels)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: element size %gx%g (must be positive)", ErrConfig, cfg.Width, cfg.Height)
	}
	if cfg.Space < 0 {
		return nil, fmt.Errorf("%w: space %g (must be >= 0)", ErrConfig, cfg.Space)
	}
	if cfg.Limited < 0 || cfg.Limited >= cfg.Channels {
		return nil, fmt.Errorf("%w: limited %d (must be 0 or < channels %d)", ErrConfig, cfg.Limited, cfg.Channels)
	}
	if cfg.LimitedRadius < 0 {
		return nil, fmt.Errorf("%w: limited radius %g (must be >= 0)", ErrConfig, cfg.LimitedRadius)
	}
	if cfg.SkipStride < 1 {
		return nil, fmt.Errorf("%w: skip stride %d (must be >= 1)", ErrConfig, cfg.SkipStride)
	}
	if cfg.EndChannels < 0 {
		return nil, fmt.Errorf("%w: end channels %d (must be >= 0)", ErrConfig, cfg.EndChannels)
	}
	if err := validSide(cfg.LabelSide); err != nil {
		return nil, err
	}

	unit := "Channels"
	if cfg.Channels == 1 {
		unit = "Channel"
	}
	text := fmt.Sprintf("%s\n%d %s\n%sx%s",
		cfg.Label, cfg.Channels, unit, formatNum(cfg.Width), formatNum(cfg.Height))

	return &Stack2D{
		core: core{
			x: cfg.X, y: cfg.Y,
			w: cfg.Width, h: cfg.Height,
			label: Label{Text: text, Side: cfg.LabelSide},
		},
		channels: cfg.Channels,
		space:    cfg.Space,
		limited:  cfg.Limited,
		radius:   cfg.LimitedRadius,
		stride:   cfg.SkipStride,
		ends:     clampEnds(cfg.Limited, cfg.EndChannels),
		light:    orColor(cfg.Light, LightFill),
		dark:     orColor(cfg.Dark, DarkFill),
	}, nil
}

func (s *Stack2D) Resolve() {
	if s.resolved {
		return
	}
	shown := s.channels
	if s.limited > 0 {
		shown = s.limited
	}
	off := float64(shown-1) * s.space
	s.totW = s.w + off
	s.totH = s.h + off
	if s.y.IsAuto() {
		s.yv = s.totH/2 - s.h
	} else {
		s.yv = s.y.Value()
	}
	s.resolved = true
}

// Corners returns the anchors of the diagonal footprint: the base
// element spans the top-left, the deepest element the bottom-right.
func (s *Stack2D) Corners() (geom.Corners, error) {
	if !s.resolved {
		return geom.Corners{}, ErrUnresolved
	}
	return geom.Corners{
		TL: geom.Point{X: s.x, Y: s.yv + s.h},
		TR: geom.Point{X: s.x + s.w, Y: s.yv + s.h},
		BL: geom.Point{X: s.x + s.totW - s.w, Y: s.yv + s.h - s.totH},
		BR: geom.Point{X: s.x + s.totW, Y: s.yv + s.h - s.totH},
	}, nil
}

func (s *Stack2D) Extents() (geom.Rect, error) {
	return cornerExtents(s.Corners())
}

func (s *Stack2D) Geometry() *prim.Collection {
	s.Resolve()
	col := &prim.Collection{}
	dark := false
	elem := func(i int) {
		f := s.light
		if dark {
			f = s.dark
		}
		dark = !dark
		col.AddPatch(prim.Rect{
			X: s.x + s.space*float64(i),
			Y: s.yv - s.space*float64(i),
			W: s.w, H: s.h,
			Fill: f,
		})
	}

	if s.limited == 0 {
		for i := 0; i < s.channels; i++ {
			elem(i)
		}
		return col
	}

	for i := 0; i < s.ends; i++ {
		elem(i)
	}
	interior := s.limited - 2*s.ends
	for i := 0; i < interior; i++ {
		if i%s.stride != 0 {
			continue
		}
		p := float64(i + s.ends)
		col.AddPatch(prim.Circle{
			Center: geom.Point{X: s.x + s.space*p + s.w/2, Y: s.yv - s.space*p + s.h/2},
			R:      s.radius,
			Fill:   PlaceholderFill,
		})
	}
	off := s.ends + max(0, interior)
	for i := 0; i < s.ends; i++ {
		elem(i + off)
	}
	return col
}
