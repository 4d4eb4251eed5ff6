package sink

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/drawnet/drawnet/pkg/connector"
	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/layout"
	"github.com/drawnet/drawnet/pkg/render"
	"github.com/drawnet/drawnet/pkg/shape"
)

// pipeline builds the two-block fixture shared by the sink tests.
func pipeline(t *testing.T) *layout.Sequence {
	t.Helper()

	a, err := shape.NewBlock(shape.BlockConfig{Width: 50, Height: 50, Label: "Input"})
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	b, err := shape.NewBlock(shape.BlockConfig{Width: 50, Height: 50})
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	ln, err := connector.NewLine(connector.LineConfig{Label: "flow"})
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}

	d := layout.NewSequence()
	d.AddShape(a)
	d.AddConnectors(ln)
	d.AddShape(b)
	return d
}

type fakePatch struct{}

func (fakePatch) Bounds() geom.Rect { return geom.Rect{} }

func TestRenderSVGStructure(t *testing.T) {
	svg, err := RenderSVG(pipeline(t), render.Options{})
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}

	out := string(svg)
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 960.0`,
		`<rect width="100%" height="100%" fill="#ffffff"/>`,
		`<rect x=`,
		`<polyline points=`,
		`text-anchor="middle"`,
		`<tspan`,
		`>Input</tspan>`,
		`>flow</tspan>`,
		"</svg>\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	d := pipeline(t)
	first, err := RenderSVG(d, render.Options{})
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := RenderSVG(d, render.Options{})
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("renders differ between passes")
	}
}

func TestSVGCoordinateFlip(t *testing.T) {
	b, err := shape.NewBlock(shape.BlockConfig{})
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	d := layout.NewSequence()
	d.AddShape(b)

	svg, err := RenderSVG(d, render.Options{})
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}

	// View is (-5,-80)..(105,80), so scale = 960/110 and the block's
	// top edge at y=50 lands 30 world units under the view top.
	out := string(svg)
	for _, want := range []string{`x="43.64"`, `y="261.82"`, `fill="#e6e6e6"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSVGEscapesLabels(t *testing.T) {
	b, err := shape.NewBlock(shape.BlockConfig{Label: `a<b & "c"`})
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	d := layout.NewSequence()
	d.AddShape(b)

	svg, err := RenderSVG(d, render.Options{})
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}

	out := string(svg)
	if strings.Contains(out, `>a<b`) {
		t.Error("label not escaped")
	}
	if !strings.Contains(out, "a&lt;b &amp; &#34;c&#34;") {
		t.Errorf("escaped label missing, got: %s", out)
	}
}

func TestSVGUnsupportedPatch(t *testing.T) {
	c := NewSVG()
	if err := c.SetView(render.View{Bounds: geom.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}}); err != nil {
		t.Fatalf("SetView: %v", err)
	}
	if err := c.DrawPatch(fakePatch{}); !errors.Is(err, render.ErrUnsupportedPrimitive) {
		t.Fatalf("DrawPatch error = %v, want ErrUnsupportedPrimitive", err)
	}
}

func TestSVGDrawBeforeView(t *testing.T) {
	c := NewSVG()
	if err := c.DrawLine(nil); err == nil {
		t.Error("expected error drawing before SetView")
	}
}

func TestSVGShowAxis(t *testing.T) {
	svg, err := RenderSVG(pipeline(t), render.Options{ShowAxis: true})
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.Contains(string(svg), `stroke-dasharray="4,3"`) {
		t.Error("axis lines missing")
	}
}
