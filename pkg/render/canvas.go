package render

import (
	"errors"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
)

// ErrUnsupportedPrimitive is returned by canvases handed a patch type
// they do not know how to draw.
var ErrUnsupportedPrimitive = errors.New("unsupported primitive")

// View is the world-coordinate window a canvas maps onto its surface.
// Bounds carries diagram coordinates with Y growing upward; canvases
// flip the axis into their own device space.
type View struct {
	Bounds geom.Rect

	// ShowAxis asks the canvas to draw the view frame and the
	// coordinate axes through the origin.
	ShowAxis bool
}

// Canvas receives the draw calls produced by [Draw]. Implementations
// translate world coordinates into their device space; SetView is
// called exactly once, before any drawing.
type Canvas interface {
	// SetView fixes the world window for all subsequent calls.
	SetView(v View) error

	// DrawPatch draws a filled patch (rect, circle, polygon, image).
	DrawPatch(p prim.Patch) error

	// DrawLine strokes an open polyline.
	DrawLine(l prim.Polyline) error

	// DrawText draws a horizontally centered text block.
	DrawText(t prim.Text) error
}
