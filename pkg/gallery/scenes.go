package gallery

import (
	"math"

	"github.com/drawnet/drawnet/pkg/connector"
	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/layout"
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/render"
	"github.com/drawnet/drawnet/pkg/shape"
)

var sceneShapes = &Scene{
	Name:  "shapes",
	Title: "One of every shape kind",
	Build: buildShapes,
}

func buildShapes() (layout.Diagram, render.Options, error) {
	img, err := sampleImage()
	if err != nil {
		return nil, render.Options{}, err
	}

	b := newSeqScene()
	b.shape(shape.NewStack2D(shape.Stack2DConfig{
		Channels: 20, Width: 16, Height: 40, Label: "Stack2D", Space: 5,
	}))
	b.shape(shape.NewStack2D(shape.Stack2DConfig{
		Channels: 32, Width: 12, Height: 12, Label: "Stack2D",
		Limited: 16, EndChannels: 2, LimitedRadius: 2, SkipStride: 1, Space: 5,
		Dark:  prim.RGB{B: 1},
		Light: prim.RGB{G: 1},
	}))
	b.shape(shape.NewCircleStack(shape.CircleStackConfig{
		Features: 9, Diameter: 10, Label: "CircleStack", Gap: 3,
	}))
	b.shape(shape.NewCircleStack(shape.CircleStackConfig{
		Features: 50, Diameter: 10, Label: "CircleStack", Gap: -5,
		Limited: 16, LimitedRadius: 2, Fill: prim.Gray(0.5),
	}))
	b.shape(shape.NewCircleStack(shape.CircleStackConfig{
		Features: 50, Diameter: 10, Label: "CircleStack", Gap: 5,
		Limited: 16, LimitedRadius: 2, Fill: prim.Gray(0.5),
	}))
	b.shape(shape.NewRectStack(shape.RectStackConfig{
		Features: 20, Width: 10, Height: 10, Label: "RectStack",
	}))
	b.shape(shape.NewRectStack(shape.RectStackConfig{
		Features: 80, Width: 10, Height: 10, Label: "RectStack",
		Limited: 20, Gap: 5, Fill: prim.RGB{R: 0.9, G: 0.4, B: 0.3},
	}))
	b.shape(shape.NewDiagonal(shape.DiagonalConfig{
		Width: 10, Height: 64, Label: "Diagonal",
	}))
	b.shape(shape.NewDiagonal(shape.DiagonalConfig{
		Width: 50, Height: 12, Label: "Diagonal",
		Fill: prim.RGB{R: 0.1, G: 0.9, B: 0.5},
	}))
	b.shape(shape.NewBlock(shape.BlockConfig{
		Width: 60, Height: 20, Label: "Block",
	}))
	b.shape(shape.NewBlock(shape.BlockConfig{
		Width: 5, Height: 90, Label: "Block",
		Fill: prim.RGB{R: 0.9, G: 0.8, B: 0.7},
	}))
	b.shape(shape.NewPolygon(shape.PolygonConfig{
		Points: crescent(), Label: "Polygon",
	}))
	b.shape(shape.NewImage(shape.ImageConfig{
		Path: img, Width: 100, Height: 60, Label: "Image",
	}))

	return b.done(render.Options{
		Spacing: layout.Spacing{Horizontal: 75, Diagonal: 150},
		YMargin: 0.25,
	})
}

// crescent samples a cosine-cubed arc, a shape with no straight edges to
// show polygons are not limited to boxes.
func crescent() []geom.Point {
	pts := make([]geom.Point, 0, 11)
	for i := 0; i <= 10; i++ {
		t := -0.5 + float64(i)/10
		c := math.Cos(t)
		pts = append(pts, geom.Point{
			X: 100*c*c*c - 70,
			Y: 50 * math.Sin(t),
		})
	}
	return pts
}

var sceneConnectors = &Scene{
	Name:  "connectors",
	Title: "One of every connector kind",
	Build: buildConnectors,
}

func buildConnectors() (layout.Diagram, render.Options, error) {
	b := newSeqScene()
	block := func(h float64) {
		b.shape(shape.NewBlock(shape.BlockConfig{Width: 10, Height: h}))
	}

	block(50)
	b.gap(b.conn(connector.NewArrow(connector.ArrowConfig{Label: "Arrow"})))
	block(50)
	b.gap(b.conn(connector.NewBlank(connector.BlankConfig{Label: "Blank"})))
	block(50)
	b.gap(b.conn(connector.NewKernel(connector.KernelConfig{Label: "Kernel"})))
	block(50)
	b.gap(b.conn(connector.NewDense(connector.DenseConfig{TapsA: 3, TapsB: 8, Label: "Dense"})))
	block(50)
	b.gap(b.conn(connector.NewLine(connector.LineConfig{Label: "Line"})))
	block(75)
	b.gap(b.conn(connector.NewCircleSymbol(connector.CircleSymbolConfig{
		Diameter: 10, Symbol: "Σ", Bold: true, Label: "Circle",
	})))
	block(50)
	b.gap(b.conn(connector.NewDiamondSymbol(connector.DiamondSymbolConfig{
		Width: 10, Height: 10, Symbol: "Σ", Bold: true, Label: "Diamond",
	})))
	block(50)
	b.gap(b.conn(connector.NewResidual(connector.ResidualConfig{
		VerticalHeads: true, Label: "Residual",
	})))
	block(50)
	b.gap(b.conn(connector.NewEllipsis(connector.EllipsisConfig{
		Diameter: 2, Label: "Ellipsis",
	})))
	block(50)

	return b.done(render.Options{Spacing: layout.Spacing{Horizontal: 20}})
}

var sceneBlocks = &Scene{
	Name:  "blocks",
	Title: "Colored block pipeline",
	Build: buildBlocks,
}

func buildBlocks() (layout.Diagram, render.Options, error) {
	blue := prim.RGB{B: 1}
	green := prim.RGB{G: 1}

	b := newSeqScene()
	b.shape(shape.NewBlock(shape.BlockConfig{Width: 10, Height: 100, Label: "Input"}))
	b.gap(b.conn(connector.NewArrow(connector.ArrowConfig{})))
	b.shape(shape.NewBlock(shape.BlockConfig{Width: 10, Height: 100, Fill: blue}))
	b.gap(b.conn(connector.NewLine(connector.LineConfig{Label: "Conv2D", LabelSide: shape.Above})))
	b.shape(shape.NewBlock(shape.BlockConfig{Width: 20, Height: 50, Fill: blue}))
	b.gap(b.conn(connector.NewArrow(connector.ArrowConfig{})))
	b.shape(shape.NewBlock(shape.BlockConfig{
		Width: 20, Height: 50, Label: "Activation\nFunction", Fill: green,
	}))
	b.gap(b.conn(connector.NewArrow(connector.ArrowConfig{})))
	b.shape(shape.NewBlock(shape.BlockConfig{
		Width: 20, Height: 50, Label: "BatchNorm2d", Fill: green,
	}))
	b.gap(b.conn(connector.NewArrow(connector.ArrowConfig{})))
	b.shape(shape.NewBlock(shape.BlockConfig{
		Width: 20, Height: 50, Label: "Dropout\n(Optional)", Fill: green,
	}))
	b.gap(b.conn(connector.NewArrow(connector.ArrowConfig{})))
	b.shape(shape.NewBlock(shape.BlockConfig{
		Width: 20, Height: 50, Label: "Output", Fill: prim.Gray(0.2),
	}))

	return b.done(render.Options{
		Spacing:     layout.Spacing{Horizontal: 20},
		LabelOffset: 5,
	})
}

var sceneConvnet = &Scene{
	Name:  "convnet",
	Title: "Stacked feature maps with multi-connector gaps",
	Build: buildConvnet,
}

func buildConvnet() (layout.Diagram, render.Options, error) {
	b := newSeqScene()
	b.shape(shape.NewStack2D(shape.Stack2DConfig{
		Channels: 3, Width: 60, Height: 60, Label: "Input",
	}))
	b.gap(
		b.conn(connector.NewLine(connector.LineConfig{Label: "Transform"})),
		b.conn(connector.NewArrow(connector.ArrowConfig{})),
	)
	b.shape(shape.NewStack2D(shape.Stack2DConfig{
		Channels: 16, Width: 30, Height: 30,
		Limited: 8, EndChannels: 2, SkipStride: 1, Space: 5,
	}))
	b.gap(
		b.conn(connector.NewLine(connector.LineConfig{})),
		b.conn(connector.NewKernel(connector.KernelConfig{})),
		b.conn(connector.NewArrow(connector.ArrowConfig{})),
	)
	b.shape(shape.NewStack2D(shape.Stack2DConfig{
		Channels: 32, Width: 15, Height: 15,
		Limited: 16, EndChannels: 3, SkipStride: 3, LimitedRadius: 3, Space: 5,
	}))

	return b.done(render.Options{
		Spacing: layout.Spacing{Horizontal: 50},
		YMargin: 0.25,
	})
}

var sceneDense = &Scene{
	Name:  "dense",
	Title: "Fully connected network with every tap drawn",
	Build: buildDense,
}

func buildDense() (layout.Diagram, render.Options, error) {
	b := newSeqScene()
	features := func(n int) {
		b.shape(shape.NewCircleStack(shape.CircleStackConfig{
			Features: n, Diameter: 1, Gap: 0.5, Label: "Features",
		}))
	}

	b.shape(shape.NewRectStack(shape.RectStackConfig{
		Features: 10, Width: 1, Height: 1, Label: "Input",
	}))
	b.gap(b.conn(connector.NewDense(connector.DenseConfig{TapsA: 10, TapsB: 30, Label: "Dense"})))
	features(30)
	b.gap(b.conn(connector.NewDense(connector.DenseConfig{TapsA: 30, TapsB: 30, Label: "Dense"})))
	features(30)
	b.gap(b.conn(connector.NewDense(connector.DenseConfig{TapsA: 30, TapsB: 5, Label: "Dense"})))
	features(5)

	return b.done(render.Options{
		Spacing:     layout.Spacing{Horizontal: 30},
		LabelOffset: 1,
	})
}

var sceneImages = &Scene{
	Name:  "images",
	Title: "Image frames joined by an arrow",
	Build: buildImages,
}

func buildImages() (layout.Diagram, render.Options, error) {
	img, err := sampleImage()
	if err != nil {
		return nil, render.Options{}, err
	}

	b := newSeqScene()
	b.shape(shape.NewImage(shape.ImageConfig{
		Path: img, Width: 100, Height: 60, Label: "Image",
	}))
	b.gap(b.conn(connector.NewArrow(connector.ArrowConfig{})))
	b.shape(shape.NewImage(shape.ImageConfig{
		Path: img, Width: 60, Height: 100, Label: "Image",
	}))

	return b.done(render.Options{
		Spacing:     layout.Spacing{Horizontal: 30},
		LabelOffset: 1,
	})
}

var sceneResnet = &Scene{
	Name:  "resnet",
	Title: "Residual encoder-decoder with label-only kernels",
	Build: buildResnet,
}

func buildResnet() (layout.Diagram, render.Options, error) {
	b := newSeqScene()
	stack := func(channels int, size float64, limited, ends int) {
		b.shape(shape.NewStack2D(shape.Stack2DConfig{
			Channels: channels, Width: size, Height: size,
			Limited: limited, EndChannels: ends,
		}))
	}
	down := func() {
		b.gap(b.conn(connector.NewKernel(connector.KernelConfig{
			Width: 16, Height: 16, Label: "Downsample", LabelOnly: true,
		})))
	}
	residual := func() {
		b.gap(b.conn(connector.NewLine(connector.LineConfig{Label: "Residual\nBlock"})))
	}
	up := func() {
		b.gap(b.conn(connector.NewKernel(connector.KernelConfig{
			Width: 16, Height: 16, Label: "Upsample", LabelOnly: true, Reverse: true,
		})))
	}

	b.shape(shape.NewStack2D(shape.Stack2DConfig{
		Channels: 3, Width: 256, Height: 256, Label: "Input",
		Light: prim.RGB{R: 0.7, G: 0.7, B: 0.5},
	}))
	down()
	stack(64, 256, 16, 5)
	down()
	stack(128, 128, 32, 10)
	down()
	stack(256, 64, 64, 20)
	residual()
	stack(256, 64, 64, 20)
	residual()
	stack(256, 64, 64, 20)
	residual()
	stack(256, 64, 64, 20)
	residual()
	stack(256, 64, 64, 20)
	up()
	stack(128, 128, 32, 10)
	up()
	stack(64, 256, 16, 5)
	up()
	b.shape(shape.NewStack2D(shape.Stack2DConfig{
		Channels: 3, Width: 256, Height: 256, Label: "Output",
		Light: prim.RGB{R: 0.5, G: 0.7, B: 0.7},
	}))

	return b.done(render.Options{
		Spacing:     layout.Spacing{Horizontal: 75, Diagonal: 150},
		LabelOffset: 20,
	})
}
