package connector

import (
	"errors"
	"math"
	"testing"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/shape"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func samePoint(a, b geom.Point) bool {
	return almost(a.X, b.X) && almost(a.Y, b.Y)
}

func block(t *testing.T, w, h, x float64) shape.Shape {
	t.Helper()
	s, err := shape.NewBlock(shape.BlockConfig{Width: w, Height: h, X: x})
	if err != nil {
		t.Fatalf("build block: %v", err)
	}
	s.Resolve()
	return s
}

func TestLineConnect(t *testing.T) {
	a := block(t, 50, 50, 0)
	b := block(t, 50, 50, 120)

	c, err := NewLine(LineConfig{Label: "Linear"})
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	col, err := c.Connect(a, b)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if len(col.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(col.Lines))
	}
	if !samePoint(col.Lines[0][0], geom.Point{X: 50, Y: 25}) || !samePoint(col.Lines[0][1], geom.Point{X: 120, Y: 25}) {
		t.Errorf("top segment = %v", col.Lines[0])
	}
	if !samePoint(col.Lines[1][0], geom.Point{X: 50, Y: -25}) || !samePoint(col.Lines[1][1], geom.Point{X: 120, Y: -25}) {
		t.Errorf("bottom segment = %v", col.Lines[1])
	}
	if !almost(c.MidX(), 85) {
		t.Errorf("MidX = %v, want 85", c.MidX())
	}
}

func TestArrowMidpointAndHead(t *testing.T) {
	a := block(t, 50, 50, 0)
	b := block(t, 50, 50, 120)

	c, err := NewArrow(ArrowConfig{})
	if err != nil {
		t.Fatalf("NewArrow: %v", err)
	}
	col, err := c.Connect(a, b)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if !almost(c.MidX(), 85) {
		t.Errorf("MidX = %v, want midpoint of adjoining edges 85", c.MidX())
	}

	if len(col.Lines) != 3 {
		t.Fatalf("lines = %d, want 2 body segments plus head", len(col.Lines))
	}

	// Head tip sits half an arrow size past the midpoint.
	head := col.Lines[2]
	if !samePoint(head[1], geom.Point{X: 86.5, Y: 0}) {
		t.Errorf("head tip = %v, want (86.5, 0)", head[1])
	}
	if !samePoint(head[0], geom.Point{X: 83.5, Y: 3}) || !samePoint(head[2], geom.Point{X: 83.5, Y: -3}) {
		t.Errorf("head flanks = %v, %v", head[0], head[2])
	}

	// Body ends trim 5% of the 70-unit span.
	if !samePoint(col.Lines[0][0], geom.Point{X: 53.5, Y: 0}) {
		t.Errorf("body start = %v, want (53.5, 0)", col.Lines[0][0])
	}
	if !samePoint(col.Lines[1][1], geom.Point{X: 116.5, Y: 0}) {
		t.Errorf("body end = %v, want (116.5, 0)", col.Lines[1][1])
	}
}

func TestArrowHeadOnlyAndOffsets(t *testing.T) {
	a := block(t, 50, 50, 0)
	b := block(t, 50, 50, 120)

	c, err := NewArrow(ArrowConfig{HeadOnly: true, HeadOffset: 8, Trim: geom.Fixed(0)})
	if err != nil {
		t.Fatalf("NewArrow: %v", err)
	}
	col, err := c.Connect(a, b)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if len(col.Lines) != 1 {
		t.Fatalf("lines = %d, want head only", len(col.Lines))
	}
	if !samePoint(col.Lines[0][1], geom.Point{X: 94.5, Y: 0}) {
		t.Errorf("head tip = %v, want (94.5, 0)", col.Lines[0][1])
	}
}

func TestKernelConnect(t *testing.T) {
	a := block(t, 100, 100, 0)
	b := block(t, 100, 100, 250)

	c, err := NewKernel(KernelConfig{})
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}
	if got, want := c.Label().Text, "\n4x4 Kernel\nStride 2"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}

	col, err := c.Connect(a, b)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if len(col.Patches) != 2 || len(col.Lines) != 2 {
		t.Fatalf("got %d patches, %d lines, want 2 and 2", len(col.Patches), len(col.Lines))
	}
	kernel, ok := col.Patches[0].(prim.Rect)
	if !ok {
		t.Fatalf("patch 0 is %T, want rect", col.Patches[0])
	}
	if !almost(kernel.X, 86) || !almost(kernel.Y, -40) || !almost(kernel.W, 4) || !almost(kernel.H, 4) {
		t.Errorf("kernel rect = %+v, want 4x4 at (86, -40)", kernel)
	}
	unit, ok := col.Patches[1].(prim.Rect)
	if !ok {
		t.Fatalf("patch 1 is %T, want rect", col.Patches[1])
	}
	if !almost(unit.X, 260) || !almost(unit.Y, 39) || !almost(unit.W, 1) || !almost(unit.H, 1) {
		t.Errorf("unit rect = %+v, want 1x1 at (260, 39)", unit)
	}
	if !almost(c.MidX(), 175) {
		t.Errorf("MidX = %v, want 175", c.MidX())
	}
}

func TestKernelReverse(t *testing.T) {
	a := block(t, 100, 100, 0)
	b := block(t, 100, 100, 250)

	c, err := NewKernel(KernelConfig{Reverse: true})
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}
	col, err := c.Connect(a, b)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	unit := col.Patches[0].(prim.Rect)
	if !almost(unit.X, 89) || !almost(unit.Y, -40) || !almost(unit.W, 1) || !almost(unit.H, 1) {
		t.Errorf("source unit rect = %+v, want 1x1 at (89, -40)", unit)
	}
	kernel := col.Patches[1].(prim.Rect)
	if !almost(kernel.X, 260) || !almost(kernel.Y, 36) || !almost(kernel.W, 4) || !almost(kernel.H, 4) {
		t.Errorf("kernel rect = %+v, want 4x4 at (260, 36)", kernel)
	}
	if !almost(c.MidX(), 175) {
		t.Errorf("MidX = %v, want 175", c.MidX())
	}
}

func TestKernelTooLarge(t *testing.T) {
	small := block(t, 50, 50, 0)
	big := block(t, 100, 100, 250)

	c, err := NewKernel(KernelConfig{Width: 60, Height: 60})
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}
	if _, err := c.Connect(small, big); !errors.Is(err, ErrKernelTooLarge) {
		t.Errorf("forward err = %v, want ErrKernelTooLarge", err)
	}

	// Reverse mode validates against the destination instead.
	r, err := NewKernel(KernelConfig{Width: 60, Height: 60, Reverse: true})
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}
	if _, err := r.Connect(big, small); !errors.Is(err, ErrKernelTooLarge) {
		t.Errorf("reverse err = %v, want ErrKernelTooLarge", err)
	}
	if _, err := r.Connect(small, big); err != nil {
		t.Errorf("reverse with large destination: %v", err)
	}
}

func TestKernelLabelOnly(t *testing.T) {
	a := block(t, 100, 100, 0)
	b := block(t, 100, 100, 250)

	c, err := NewKernel(KernelConfig{LabelOnly: true})
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}
	col, err := c.Connect(a, b)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if col != nil {
		t.Errorf("collection = %+v, want nil", col)
	}
	if !almost(c.MidX(), 175) {
		t.Errorf("MidX = %v, want 175", c.MidX())
	}
}

func TestDenseSegmentCounts(t *testing.T) {
	tests := []struct {
		name string
		cfg  DenseConfig
		want int
	}{
		{"unlimited", DenseConfig{TapsA: 10, TapsB: 5}, 50},
		{"limited both", DenseConfig{TapsA: 10, TapsB: 5, LimitA: 2, LimitB: 1}, 8},
		{"limited one side", DenseConfig{TapsA: 10, TapsB: 5, LimitA: 3}, 30},
		{"overlapping limit", DenseConfig{TapsA: 4, TapsB: 1, LimitA: 3}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := block(t, 20, 100, 0)
			b := block(t, 20, 100, 200)
			c, err := NewDense(tt.cfg)
			if err != nil {
				t.Fatalf("NewDense: %v", err)
			}
			col, err := c.Connect(a, b)
			if err != nil {
				t.Fatalf("Connect: %v", err)
			}
			if len(col.Lines) != tt.want {
				t.Errorf("segments = %d, want %d", len(col.Lines), tt.want)
			}
		})
	}
}

func TestDenseTapPositions(t *testing.T) {
	a, err := shape.NewBlock(shape.BlockConfig{Width: 20, Height: 100, Y: geom.Fixed(0)})
	if err != nil {
		t.Fatalf("build block: %v", err)
	}
	a.Resolve()
	b, err := shape.NewBlock(shape.BlockConfig{Width: 20, Height: 100, X: 100, Y: geom.Fixed(0)})
	if err != nil {
		t.Fatalf("build block: %v", err)
	}
	b.Resolve()

	c, err := NewDense(DenseConfig{TapsA: 2, TapsB: 1})
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	col, err := c.Connect(a, b)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if len(col.Lines) != 2 {
		t.Fatalf("segments = %d, want 2", len(col.Lines))
	}
	if !samePoint(col.Lines[0][0], geom.Point{X: 20, Y: 75}) {
		t.Errorf("first tap = %v, want (20, 75)", col.Lines[0][0])
	}
	if !samePoint(col.Lines[1][0], geom.Point{X: 20, Y: 25}) {
		t.Errorf("second tap = %v, want (20, 25)", col.Lines[1][0])
	}
	if !samePoint(col.Lines[0][1], geom.Point{X: 100, Y: 50}) {
		t.Errorf("destination tap = %v, want (100, 50)", col.Lines[0][1])
	}
}

func TestDensePitchAlignment(t *testing.T) {
	src, err := shape.NewCircleStack(shape.CircleStackConfig{Features: 3, Diameter: 10, Gap: 2, Y: geom.Fixed(0)})
	if err != nil {
		t.Fatalf("build stack: %v", err)
	}
	src.Resolve()
	dst := block(t, 20, 100, 100)

	c, err := NewDense(DenseConfig{TapsA: 3, TapsB: 1})
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	col, err := c.Connect(src, dst)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	// Source taps ride the declared 12-unit pitch, stepping down from
	// the top corner offset by half the element height.
	ys := []float64{col.Lines[0][0].Y, col.Lines[1][0].Y, col.Lines[2][0].Y}
	want := []float64{5, -7, -19}
	for i := range want {
		if !almost(ys[i], want[i]) {
			t.Errorf("tap %d Y = %v, want %v", i, ys[i], want[i])
		}
	}
}

func TestBlankConnect(t *testing.T) {
	a := block(t, 50, 50, 0)
	b := block(t, 50, 50, 120)

	c, err := NewBlank(BlankConfig{Label: "skip"})
	if err != nil {
		t.Fatalf("NewBlank: %v", err)
	}
	col, err := c.Connect(a, b)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if col != nil {
		t.Errorf("collection = %+v, want nil", col)
	}
	if !almost(c.MidX(), 85) {
		t.Errorf("MidX = %v, want 85", c.MidX())
	}
}

func TestSymbolConnect(t *testing.T) {
	a := block(t, 10, 50, 0)
	b := block(t, 10, 50, 60)

	t.Run("circle", func(t *testing.T) {
		c, err := NewCircleSymbol(CircleSymbolConfig{Diameter: 10, Symbol: "Σ", Bold: true})
		if err != nil {
			t.Fatalf("NewCircleSymbol: %v", err)
		}
		col, err := c.Connect(a, b)
		if err != nil {
			t.Fatalf("Connect: %v", err)
		}

		circle, ok := col.Patches[0].(prim.Circle)
		if !ok {
			t.Fatalf("patch is %T, want circle", col.Patches[0])
		}
		if !samePoint(circle.Center, geom.Point{X: 35, Y: 0}) || !almost(circle.R, 5) {
			t.Errorf("node = %+v, want r5 at (35, 0)", circle)
		}
		if !samePoint(col.Lines[0][1], geom.Point{X: 30, Y: 0}) {
			t.Errorf("lead-in ends at %v, want (30, 0)", col.Lines[0][1])
		}
		if !samePoint(col.Lines[1][0], geom.Point{X: 40, Y: 0}) {
			t.Errorf("lead-out starts at %v, want (40, 0)", col.Lines[1][0])
		}
		if len(col.Texts) != 1 || col.Texts[0].Content != "Σ" || !col.Texts[0].Bold {
			t.Errorf("symbol text = %+v", col.Texts)
		}
		if col.Texts[0].Align != prim.AlignMiddle {
			t.Errorf("symbol align = %v, want middle", col.Texts[0].Align)
		}
		if !almost(c.MidX(), 35) {
			t.Errorf("MidX = %v, want 35", c.MidX())
		}
	})

	t.Run("diamond", func(t *testing.T) {
		c, err := NewDiamondSymbol(DiamondSymbolConfig{Width: 10, Height: 10, Symbol: "Σ"})
		if err != nil {
			t.Fatalf("NewDiamondSymbol: %v", err)
		}
		col, err := c.Connect(a, b)
		if err != nil {
			t.Fatalf("Connect: %v", err)
		}

		poly, ok := col.Patches[0].(prim.Polygon)
		if !ok {
			t.Fatalf("patch is %T, want polygon", col.Patches[0])
		}
		if len(poly.Points) != 4 {
			t.Fatalf("diamond points = %d, want 4", len(poly.Points))
		}
		if !samePoint(poly.Points[1], geom.Point{X: 35, Y: 5}) {
			t.Errorf("diamond top = %v, want (35, 5)", poly.Points[1])
		}
	})
}

func TestEllipsisConnect(t *testing.T) {
	a := block(t, 10, 50, 0)
	b := block(t, 10, 50, 50)

	t.Run("auto spacing", func(t *testing.T) {
		c, err := NewEllipsis(EllipsisConfig{})
		if err != nil {
			t.Fatalf("NewEllipsis: %v", err)
		}
		col, err := c.Connect(a, b)
		if err != nil {
			t.Fatalf("Connect: %v", err)
		}
		if len(col.Patches) != 3 || len(col.Lines) != 0 {
			t.Fatalf("got %d patches, %d lines, want 3 dots and no lines", len(col.Patches), len(col.Lines))
		}
		wantX := []float64{20, 30, 40}
		for i, p := range col.Patches {
			dot := p.(prim.Circle)
			if !almost(dot.Center.X, wantX[i]) || !almost(dot.Center.Y, 0) {
				t.Errorf("dot %d = %+v, want (%v, 0)", i, dot.Center, wantX[i])
			}
		}
	})

	t.Run("fixed spacing", func(t *testing.T) {
		c, err := NewEllipsis(EllipsisConfig{Spacing: geom.Fixed(4)})
		if err != nil {
			t.Fatalf("NewEllipsis: %v", err)
		}
		col, err := c.Connect(a, b)
		if err != nil {
			t.Fatalf("Connect: %v", err)
		}
		wantX := []float64{26, 30, 34}
		for i, p := range col.Patches {
			dot := p.(prim.Circle)
			if !almost(dot.Center.X, wantX[i]) {
				t.Errorf("dot %d X = %v, want %v", i, dot.Center.X, wantX[i])
			}
		}
	})
}

func TestResidualConnect(t *testing.T) {
	a := block(t, 100, 100, 0)
	b := block(t, 100, 100, 300)

	c, err := NewResidual(ResidualConfig{YOffset: -60, XOffset: 15, Size: 5, NodeRadius: 2})
	if err != nil {
		t.Fatalf("NewResidual: %v", err)
	}
	col, err := c.Connect(a, b)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if len(col.Lines) != 4 {
		t.Fatalf("lines = %d, want 3 runs plus head", len(col.Lines))
	}
	if !samePoint(col.Lines[0][0], geom.Point{X: 85, Y: -50}) || !samePoint(col.Lines[0][1], geom.Point{X: 85, Y: -60}) {
		t.Errorf("drop run = %v", col.Lines[0])
	}
	if !samePoint(col.Lines[1][0], geom.Point{X: 85, Y: -60}) || !samePoint(col.Lines[1][1], geom.Point{X: 315, Y: -60}) {
		t.Errorf("horizontal run = %v", col.Lines[1])
	}
	if !samePoint(col.Lines[2][1], geom.Point{X: 315, Y: -50}) {
		t.Errorf("rise run ends at %v, want (315, -50)", col.Lines[2][1])
	}
	if !samePoint(col.Lines[3][1], geom.Point{X: 202.5, Y: -60}) {
		t.Errorf("head tip = %v, want (202.5, -60)", col.Lines[3][1])
	}

	if len(col.Patches) != 2 {
		t.Fatalf("patches = %d, want 2 connection dots", len(col.Patches))
	}
	dot := col.Patches[0].(prim.Circle)
	if !samePoint(dot.Center, geom.Point{X: 85, Y: -50}) || !almost(dot.R, 2) {
		t.Errorf("start dot = %+v", dot)
	}
	if !almost(c.MidX(), 200) {
		t.Errorf("MidX = %v, want 200", c.MidX())
	}
}

func TestResidualAboveWithVerticalHeads(t *testing.T) {
	a := block(t, 100, 100, 0)
	b := block(t, 100, 100, 300)

	c, err := NewResidual(ResidualConfig{YOffset: 80, VerticalHeads: true})
	if err != nil {
		t.Fatalf("NewResidual: %v", err)
	}
	col, err := c.Connect(a, b)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if len(col.Lines) != 6 {
		t.Fatalf("lines = %d, want 3 runs plus 3 heads", len(col.Lines))
	}
	if !samePoint(col.Lines[0][0], geom.Point{X: 100, Y: 50}) {
		t.Errorf("drop run starts at %v, want top edge (100, 50)", col.Lines[0][0])
	}
	// Rising source head points up, entering destination head points
	// down.
	up := col.Lines[4]
	if up[1].Y <= up[0].Y {
		t.Errorf("source head not pointing up: %v", up)
	}
	down := col.Lines[5]
	if down[1].Y >= down[0].Y {
		t.Errorf("destination head not pointing down: %v", down)
	}
}

func TestConnectUnresolvedShape(t *testing.T) {
	a, err := shape.NewBlock(shape.BlockConfig{Width: 50, Height: 50})
	if err != nil {
		t.Fatalf("build block: %v", err)
	}
	b := block(t, 50, 50, 120)

	c, err := NewLine(LineConfig{})
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	if _, err := c.Connect(a, b); !errors.Is(err, shape.ErrUnresolved) {
		t.Errorf("err = %v, want shape.ErrUnresolved", err)
	}
}

func TestConnectorDefaults(t *testing.T) {
	c, err := NewLine(LineConfig{Label: "fc"})
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	if got := c.Label().Side; got != shape.Below {
		t.Errorf("default side = %q, want below", got)
	}

	if _, err := NewArrow(ArrowConfig{Size: -1}); !errors.Is(err, ErrConfig) {
		t.Errorf("negative arrow size err = %v, want ErrConfig", err)
	}
	if _, err := NewDense(DenseConfig{TapsA: -2}); !errors.Is(err, ErrConfig) {
		t.Errorf("negative taps err = %v, want ErrConfig", err)
	}
	if _, err := NewBlank(BlankConfig{LabelSide: "sideways"}); !errors.Is(err, ErrConfig) {
		t.Errorf("bad side err = %v, want ErrConfig", err)
	}
}
