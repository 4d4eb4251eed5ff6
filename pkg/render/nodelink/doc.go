// Package nodelink provides node-and-edge topology overviews using Graphviz.
//
// Where the geometric renderer draws every channel, tap, and arrowhead,
// nodelink reduces a diagram to its structure: shapes become boxes and
// connector groups become directed edges. This makes large pipelines
// easy to inspect and is the backing for the "dot" output format.
//
// # Architecture
//
// Graphviz handles placement and rendering in a single step:
//
//	Geometric: Diagram → render.Draw() → Canvas → SVG/PNG/PDF
//	Nodelink:  Diagram → ToDOT() → DOT → RenderSVG() → SVG
//
// The DOT string is a stable intermediate form, so it can be stored and
// re-rendered without rebuilding the diagram.
//
// # Usage
//
//	dot, err := nodelink.ToDOT(diagram, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//
// [render.ToPDF]: github.com/drawnet/drawnet/pkg/render.ToPDF
package nodelink
