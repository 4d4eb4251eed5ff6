// Package gallery ships ready-made diagrams exercising every shape and
// connector the library draws.
//
// # Overview
//
// Each [Scene] pairs a name with a builder that assembles a fresh
// diagram and the options it renders best with. The CLI lists and
// renders scenes by name, and the preview server serves them over HTTP;
// both go through [Lookup].
//
// # Rendering a Scene
//
// Build returns a plain [layout.Diagram], so any canvas works:
//
//	sc, _ := gallery.Lookup("blocks")
//	d, opts, _ := sc.Build()
//	data, _ := sink.RenderSVG(d, opts)
//
// # Scenes
//
// The catalog covers the construction surface end to end:
//
//   - shapes: one of every shape kind
//   - connectors: one of every connector kind
//   - blocks: a colored block pipeline
//   - convnet: stacked feature maps with multi-connector gaps
//   - dense: a fully connected network with every tap drawn
//   - images: image frames joined by an arrow
//   - resnet: a residual encoder-decoder with label-only kernels
//   - residuals: skip connections routed around a free-form chain
//   - generator: a free-form pipeline with a residual loop and summation
//
// Scenes needing an image file render a small placeholder into the
// system temp directory on first use, so nothing ships beside the
// binary.
//
// [layout.Diagram]: github.com/drawnet/drawnet/pkg/layout.Diagram
package gallery
