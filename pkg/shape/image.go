package shape

import (
	"fmt"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
)

// ImageConfig configures an image placeholder block. The image itself is
// loaded by the canvas at draw time; layout only needs the frame.
type ImageConfig struct {
	// Path locates the image file. Required.
	Path string

	// Width and Height of the frame the image is fitted into.
	// Defaults 100x100.
	Width  float64
	Height float64

	Label     string
	LabelSide Side

	// X is the left edge. Y is the bottom edge; auto centers the frame
	// about the baseline.
	X float64
	Y geom.Dim
}

// Image is a bordered frame carrying an image reference.
type Image struct {
	core
	path string
}

// NewImage validates cfg and builds the frame.
func NewImage(cfg ImageConfig) (*Image, error) {
	cfg.Width = orFloat(cfg.Width, 100)
	cfg.Height = orFloat(cfg.Height, 100)
	cfg.LabelSide = orSide(cfg.LabelSide)

	if cfg.Path == "" {
		return nil, fmt.Errorf("%w: image path is empty", ErrConfig)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: size %gx%g (must be positive)", ErrConfig, cfg.Width, cfg.Height)
	}
	if err := validSide(cfg.LabelSide); err != nil {
		return nil, err
	}

	return &Image{
		core: core{
			x: cfg.X, y: cfg.Y,
			w: cfg.Width, h: cfg.Height,
			label: Label{Text: cfg.Label, Side: cfg.LabelSide},
		},
		path: cfg.Path,
	}, nil
}

// Path returns the configured image file location.
func (s *Image) Path() string { return s.path }

func (s *Image) Resolve() {
	if s.resolved {
		return
	}
	s.totW = s.w
	s.totH = s.h
	if s.y.IsAuto() {
		s.yv = -s.h / 2
	} else {
		s.yv = s.y.Value()
	}
	s.resolved = true
}

func (s *Image) Corners() (geom.Corners, error) {
	return s.columnCorners()
}

func (s *Image) Extents() (geom.Rect, error) {
	return cornerExtents(s.Corners())
}

// Geometry emits a white backing frame plus the image reference. The
// canvas stretches the image over the frame and draws the border on top.
func (s *Image) Geometry() *prim.Collection {
	s.Resolve()
	col := &prim.Collection{}
	col.AddPatch(prim.Rect{X: s.x, Y: s.yv, W: s.w, H: s.h, Fill: prim.White})
	col.AddPatch(prim.Image{X: s.x, Y: s.yv, W: s.w, H: s.h, Path: s.path})
	return col
}
