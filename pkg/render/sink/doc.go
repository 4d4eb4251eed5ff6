// Package sink provides the output backends for diagram rendering.
//
// # Overview
//
// A "sink" is a [render.Canvas] that turns the draw calls produced by
// [render.Draw] into a final output format. This package provides:
//
//   - SVG: scalable vector output, the primary format
//   - PNG: raster output, either pure Go or via rsvg-convert
//   - PDF: print-ready output (requires rsvg-convert)
//   - JSON: the draw calls as structured data
//
// # One-Call Helpers
//
// Each format has a helper that arranges, draws, and encodes in one
// step:
//
//	svg, err := sink.RenderSVG(diagram, render.Options{})
//	png, err := sink.RenderRaster(diagram, render.Options{})
//	pdf, err := sink.RenderPDF(diagram, render.Options{})
//	doc, err := sink.RenderJSON(diagram, render.Options{})
//
// For more control, construct a canvas and drive it through
// [render.Draw] directly:
//
//	c := sink.NewSVG(sink.WithWidth(1280))
//	if err := render.Draw(diagram, c, opts); err != nil { ... }
//	svg := c.Bytes()
//
// # PNG Paths
//
// [RenderRaster] draws straight onto a raster surface and needs no
// external tooling. [RenderPNG] converts the SVG output through
// rsvg-convert instead, which reproduces the vector rendering exactly
// but requires librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// # Coordinate Mapping
//
// Primitives arrive in diagram coordinates with Y growing upward. The
// SVG and raster canvases flip the axis and scale uniformly so the view
// fills the configured pixel width. Text sizes are device sizes scaled
// only by the output width, so labels stay legible regardless of how
// large or small the diagram coordinates are. The JSON canvas performs
// no mapping and records diagram coordinates as-is.
//
// [render.Canvas]: github.com/drawnet/drawnet/pkg/render.Canvas
// [render.Draw]: github.com/drawnet/drawnet/pkg/render.Draw
package sink
