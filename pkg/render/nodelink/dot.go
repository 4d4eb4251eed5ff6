package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/drawnet/drawnet/pkg/layout"
	"github.com/drawnet/drawnet/pkg/render"
	"github.com/drawnet/drawnet/pkg/shape"
)

// Options configures topology rendering.
type Options struct {
	// Detailed includes the shape kind and footprint dimensions in
	// node labels. When false, only the display name is shown.
	Detailed bool
}

// ToDOT converts a diagram's topology to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG],
// [RenderPDF], or [RenderPNG].
//
// Nodes take their display name from the first label line, falling back
// to the shape kind for unlabeled shapes. Edges carry the connector
// names of the gap they summarize.
func ToDOT(d layout.Diagram, opts Options) (string, error) {
	shapes := d.Shapes()
	edges, err := d.Edges()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	index := make(map[shape.Shape]int, len(shapes))
	for i, s := range shapes {
		index[s] = i
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", i, nodeLabel(s, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		from, okF := index[e.A]
		to, okT := index[e.B]
		if !okF || !okT {
			continue
		}
		if lbl := edgeLabel(e); lbl != "" {
			fmt.Fprintf(&buf, "  n%d -> n%d [label=%q, fontsize=11];\n", from, to, lbl)
		} else {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", from, to)
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// kindName strips the pointer and package prefix from a concrete type,
// leaving the bare name ("Stack2D", "Arrow").
func kindName(v any) string {
	name := fmt.Sprintf("%T", v)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func nodeLabel(s shape.Shape, detailed bool) string {
	name := firstLine(s.Label().Text)
	kind := kindName(s)
	if name == "" {
		name = kind
	}
	if !detailed {
		return name
	}

	s.Resolve()
	f, err := s.Frame()
	if err != nil {
		return name
	}
	return fmt.Sprintf("%s\n%s\n%gx%g", name, kind, f.TotalW, f.TotalH)
}

func edgeLabel(e layout.Edge) string {
	parts := make([]string, 0, len(e.Connectors))
	for _, c := range e.Connectors {
		if lbl := firstLine(c.Label().Text); lbl != "" {
			parts = append(parts, lbl)
			continue
		}
		parts = append(parts, kindName(c))
	}
	return strings.Join(parts, ", ")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz svg tag so the document scales
// to its container instead of a fixed point size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
