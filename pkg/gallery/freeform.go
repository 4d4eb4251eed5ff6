package gallery

import (
	"github.com/drawnet/drawnet/pkg/connector"
	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/layout"
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/render"
	"github.com/drawnet/drawnet/pkg/shape"
)

var sceneResiduals = &Scene{
	Name:  "residuals",
	Title: "Skip connections routed around a free-form chain",
	Build: buildResiduals,
}

func buildResiduals() (layout.Diagram, render.Options, error) {
	const step = 120

	b := newFreeScene()
	b.add("A", b.shape(shape.NewStack2D(shape.Stack2DConfig{Channels: 4})))
	x := step + 40.0
	for _, id := range []string{"B", "C", "D", "E"} {
		b.add(id, b.shape(shape.NewBlock(shape.BlockConfig{X: x})))
		x += step
	}

	arrow := func(from, to string, trim float64) {
		b.link(from, to, b.conn(connector.NewArrow(connector.ArrowConfig{
			Size: 5, Trim: geom.Fixed(trim),
		})))
	}
	arrow("A", "B", 8)
	arrow("B", "C", 3)
	arrow("C", "D", 3)
	arrow("D", "E", 3)

	skip := func(to string, yoffset float64) {
		b.link("A", to, b.conn(connector.NewResidual(connector.ResidualConfig{
			YOffset: yoffset, XOffset: 15, Size: 5, NodeRadius: 2,
		})))
	}
	skip("C", -60)
	skip("D", -70)
	skip("E", -80)

	return b.done(render.Options{})
}

var sceneGenerator = &Scene{
	Name:  "generator",
	Title: "Free-form pipeline with a residual loop and summation",
	Build: buildGenerator,
}

func buildGenerator() (layout.Diagram, render.Options, error) {
	stages := []struct {
		label string
		fill  prim.RGB
	}{
		{"Input", prim.RGB{G: 0.5, B: 0.5}},
		{"Reflection\nPad2d", prim.RGB{G: 0.7}},
		{"Conv2d", prim.RGB{R: 0.7, B: 0.7}},
		{"Instance\nNorm2d", prim.RGB{G: 0.7}},
		{"ReLU", prim.Gray(0.8)},
		{"Reflection\nPad2d", prim.RGB{G: 0.7}},
		{"Conv2d", prim.RGB{R: 0.7, B: 0.7}},
		{"Instance\nNorm2d", prim.RGB{G: 0.7}},
		{"Output", prim.RGB{G: 0.5, B: 0.5}},
	}
	ids := "ABCDEFGHI"

	b := newFreeScene()
	for i, st := range stages {
		b.add(string(ids[i]), b.shape(shape.NewBlock(shape.BlockConfig{
			Width: 10, Height: 50, X: float64(i) * 25,
			Label: st.label, Fill: st.fill,
		})))
	}

	b.link("A", "B", b.conn(connector.NewArrow(connector.ArrowConfig{Size: 1})))
	for i := 1; i+2 < len(stages); i++ {
		b.link(string(ids[i]), string(ids[i+1]),
			b.conn(connector.NewArrow(connector.ArrowConfig{})))
	}
	b.link("H", "I", b.conn(connector.NewCircleSymbol(connector.CircleSymbolConfig{
		Diameter: 6, Bold: true,
	})))
	b.link("A", "I", b.conn(connector.NewResidual(connector.ResidualConfig{
		YOffset: -35, XOffset: 7.5,
	})))

	return b.done(render.Options{LabelOffset: 5})
}
