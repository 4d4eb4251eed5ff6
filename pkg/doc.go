// Package pkg provides the core libraries for Drawnet diagram rendering.
//
// # Overview
//
// Drawnet renders schematic diagrams of layered networks: blocks, stacks,
// and polygons arranged left to right on a shared baseline, with operation
// glyphs drawn in the gaps between them. The pkg directory is organized
// into four main areas:
//
//  1. [shape] / [connector] - Visual vocabulary (layer shapes, operation glyphs)
//  2. [layout] - Arrangement (sequential and freeform diagrams)
//  3. [render] - Rendering (draw-call generation and output backends)
//  4. [cache] / [observability] - Infrastructure (artifact caching, hooks)
//
// # Architecture
//
// The typical data flow through Drawnet:
//
//	Shape/Connector construction
//	         ↓
//	    [layout] package (assign positions, pair shapes into edges)
//	         ↓
//	    [render] package (shapes to primitive draw calls)
//	         ↓
//	    [render/sink] package (draw calls to bytes)
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
// Build a two-layer diagram and render it to SVG:
//
//	import (
//	    "os"
//
//	    "github.com/drawnet/drawnet/pkg/connector"
//	    "github.com/drawnet/drawnet/pkg/layout"
//	    "github.com/drawnet/drawnet/pkg/render"
//	    "github.com/drawnet/drawnet/pkg/render/sink"
//	    "github.com/drawnet/drawnet/pkg/shape"
//	)
//
//	// 1. Construct the layer shapes
//	in, _ := shape.NewBlock(shape.BlockConfig{Width: 80, Height: 120, Label: "input"})
//	out, _ := shape.NewBlock(shape.BlockConfig{Width: 80, Height: 60, Label: "output"})
//
//	// 2. Arrange them in sequence with an arrow in the gap
//	seq := layout.NewSequence()
//	seq.AddShape(in)
//	arrow, _ := connector.NewArrow(connector.ArrowConfig{})
//	seq.AddConnectors(arrow)
//	seq.AddShape(out)
//
//	// 3. Render to SVG
//	svg, _ := sink.RenderSVG(seq, render.Options{})
//	os.WriteFile("net.svg", svg, 0o644)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [geom] - Small geometric value types shared across the module: dimensions
// that distinguish explicit values from auto, extents, and bounding boxes.
//
// [prim] - Drawable primitives exchanged between shapes and renderers:
// patches, polylines, text runs, and RGB colors.
//
// [shape] - Layer visuals. Block, RectStack, CircleStack, Stack2D, Diagonal,
// Polygon, and Image, each built from a validated config struct.
//
// [connector] - Operation glyphs drawn between two neighboring shapes:
// Arrow, Line, Dense, Kernel, Residual, Ellipsis, Symbol, and Blank.
//
// [layout] - Diagram arrangement. [layout.Sequence] places shapes left to
// right with uniform gaps; [layout.Freeform] keeps caller-assigned positions
// and explicit connector wiring. Both satisfy [layout.Diagram].
//
// ## Rendering
//
// [render] - Render options with validation and defaulting, output format
// names, and the View type that maps diagram geometry onto a canvas.
//
// [render/sink] - Output backends. SVG generation plus PDF and PNG
// conversion via rsvg-convert, a pure-Go raster fallback, and JSON geometry
// export.
//
// [render/nodelink] - Node-and-edge topology overviews rendered through
// Graphviz, an alternative view of the same diagram.
//
// ## Scene Library
//
// [gallery] - Ready-made scenes exercising every shape and connector type.
// Each scene builds a complete diagram with canonical render options. The
// CLI and the HTTP server both serve from this set.
//
// ## Infrastructure
//
// [cache] - Artifact cache keyed by scene and render parameters, with file,
// Redis, and null backends plus retry helpers for flaky backends.
//
// [observability] - Process-wide hook points for render, cache, and HTTP
// events. Defaults are no-ops; binaries install loggers or metrics.
//
// [buildinfo] - Build-time version metadata stamped via ldflags.
//
// # Common Workflows
//
// Render a gallery scene:
//
//	scene, _ := gallery.Lookup("convnet")
//	d, opts, _ := scene.Build()
//	svg, _ := sink.RenderSVG(d, opts)
//
// Produce a topology overview instead of the geometric view:
//
//	dot, _ := nodelink.ToDOT(d, nodelink.Options{Detailed: true})
//	png, _ := nodelink.RenderPNG(dot, 2.0)
//
// Cache rendered bytes between runs:
//
//	store, _ := cache.NewFileCache(dir)
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ArtifactKey("convnet", cache.ArtifactKeyOpts{Format: "svg"})
//	_ = store.Set(ctx, key, svg, time.Hour)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//	go test -run Example       # Examples only
//	go test -short ./...       # Skip tests needing external services
//
// [geom]: https://pkg.go.dev/github.com/drawnet/drawnet/pkg/geom
// [prim]: https://pkg.go.dev/github.com/drawnet/drawnet/pkg/prim
// [shape]: https://pkg.go.dev/github.com/drawnet/drawnet/pkg/shape
// [connector]: https://pkg.go.dev/github.com/drawnet/drawnet/pkg/connector
// [layout]: https://pkg.go.dev/github.com/drawnet/drawnet/pkg/layout
// [render]: https://pkg.go.dev/github.com/drawnet/drawnet/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/drawnet/drawnet/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/drawnet/drawnet/pkg/render/nodelink
// [gallery]: https://pkg.go.dev/github.com/drawnet/drawnet/pkg/gallery
// [cache]: https://pkg.go.dev/github.com/drawnet/drawnet/pkg/cache
// [observability]: https://pkg.go.dev/github.com/drawnet/drawnet/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/drawnet/drawnet/pkg/buildinfo
package pkg
