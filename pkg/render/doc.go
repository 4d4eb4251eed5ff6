// Package render turns an arranged diagram into draw calls against a
// [Canvas] and converts finished SVG output to other formats.
//
// # Overview
//
// This package contains the drawing pipeline that transforms diagrams
// into visual outputs. It provides:
//
//   - The [Draw] pipeline: arrange, measure, and emit primitives
//   - The [Canvas] interface implemented by the output backends
//   - Generic format conversion (SVG to PDF/PNG)
//
// # Drawing
//
// [Draw] arranges the diagram, computes the world-coordinate view from
// the union of shape and connector extents, and replays every primitive
// onto the canvas: patches first, then lines, then text. Labels are
// placed last, either beside their owners or pinned to the view limits.
//
//	canvas := sink.NewSVG()
//	err := render.Draw(diagram, canvas, render.Options{})
//	svg := canvas.Bytes()
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats
// using the external rsvg-convert tool (from librsvg). The [sink]
// subpackage also provides a pure-Go PNG path that needs no external
// tooling.
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Output Backends
//
// Key subpackages:
//   - [sink]: SVG, raster PNG, and JSON canvases plus one-call helpers
//   - [nodelink]: Graphviz topology overviews of a diagram
//
// [sink]: github.com/drawnet/drawnet/pkg/render/sink
// [nodelink]: github.com/drawnet/drawnet/pkg/render/nodelink
package render
