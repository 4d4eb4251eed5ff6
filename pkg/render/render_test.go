package render

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/drawnet/drawnet/pkg/connector"
	"github.com/drawnet/drawnet/pkg/layout"
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/shape"
)

// recordCanvas captures draw calls for inspection.
type recordCanvas struct {
	view    View
	ops     []string
	patches []prim.Patch
	lines   []prim.Polyline
	texts   []prim.Text
}

func (r *recordCanvas) SetView(v View) error { r.view = v; return nil }

func (r *recordCanvas) DrawPatch(p prim.Patch) error {
	r.ops = append(r.ops, "patch")
	r.patches = append(r.patches, p)
	return nil
}

func (r *recordCanvas) DrawLine(l prim.Polyline) error {
	r.ops = append(r.ops, "line")
	r.lines = append(r.lines, l)
	return nil
}

func (r *recordCanvas) DrawText(t prim.Text) error {
	r.ops = append(r.ops, "text")
	r.texts = append(r.texts, t)
	return nil
}

func almost(a, b float64) bool { return math.Abs(a-b) <= 1e-9 }

func block(t *testing.T, w, h float64, label string) *shape.Block {
	t.Helper()
	b, err := shape.NewBlock(shape.BlockConfig{Width: w, Height: h, Label: label})
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	return b
}

func TestDrawViewMargins(t *testing.T) {
	d := layout.NewSequence()
	d.AddShape(block(t, 100, 100, ""))

	rc := &recordCanvas{}
	if err := Draw(d, rc, Options{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	b := rc.view.Bounds
	want := [4]float64{-5, -80, 105, 80}
	got := [4]float64{b.MinX, b.MinY, b.MaxX, b.MaxY}
	for i := range want {
		if !almost(got[i], want[i]) {
			t.Errorf("view bounds = %v, want %v", got, want)
			break
		}
	}
}

func TestDrawPassOrderAndLabels(t *testing.T) {
	ln, err := connector.NewLine(connector.LineConfig{Label: "ab"})
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}

	d := layout.NewSequence()
	d.AddShape(block(t, 50, 50, "A"))
	d.AddConnectors(ln)
	d.AddShape(block(t, 50, 50, ""))

	rc := &recordCanvas{}
	if err := Draw(d, rc, Options{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	wantOps := []string{"patch", "patch", "line", "line", "text", "text"}
	if !reflect.DeepEqual(rc.ops, wantOps) {
		t.Fatalf("ops = %v, want %v", rc.ops, wantOps)
	}

	above := rc.texts[0]
	if above.Content != "A" || !almost(above.Pos.X, 25) || !almost(above.Pos.Y, 35) {
		t.Errorf("shape label = %q at (%g, %g), want \"A\" at (25, 35)", above.Content, above.Pos.X, above.Pos.Y)
	}
	if above.Align != prim.AlignBottom {
		t.Errorf("shape label align = %v, want AlignBottom", above.Align)
	}

	below := rc.texts[1]
	if below.Content != "ab" || !almost(below.Pos.X, 125) || !almost(below.Pos.Y, -35) {
		t.Errorf("connector label = %q at (%g, %g), want \"ab\" at (125, -35)", below.Content, below.Pos.X, below.Pos.Y)
	}
	if below.Align != prim.AlignTop {
		t.Errorf("connector label align = %v, want AlignTop", below.Align)
	}
}

func TestDrawLabelsAtLimits(t *testing.T) {
	ln, err := connector.NewLine(connector.LineConfig{Label: "ab"})
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}

	d := layout.NewSequence()
	d.AddShape(block(t, 50, 50, "A"))
	d.AddConnectors(ln)
	d.AddShape(block(t, 50, 50, ""))

	rc := &recordCanvas{}
	if err := Draw(d, rc, Options{LabelsAtLimits: true}); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// View spans y in [-40, 40] after the 0.3 margin on a height of 50.
	above := rc.texts[0]
	if !almost(above.Pos.Y, 30) || above.Align != prim.AlignTop {
		t.Errorf("above label at y=%g align=%v, want y=30 align=AlignTop", above.Pos.Y, above.Align)
	}
	below := rc.texts[1]
	if !almost(below.Pos.Y, -30) || below.Align != prim.AlignBottom {
		t.Errorf("below label at y=%g align=%v, want y=-30 align=AlignBottom", below.Pos.Y, below.Align)
	}
}

func TestDrawViewIncludesConnectorOvershoot(t *testing.T) {
	res, err := connector.NewResidual(connector.ResidualConfig{YOffset: -60})
	if err != nil {
		t.Fatalf("NewResidual: %v", err)
	}

	d := layout.NewSequence()
	d.AddShape(block(t, 50, 50, ""))
	d.AddConnectors(res)
	d.AddShape(block(t, 50, 50, ""))

	rc := &recordCanvas{}
	if err := Draw(d, rc, Options{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// The skip line runs at y=-60 and its arrowhead flanks reach -63,
	// well under the shape extents at -25. With the 0.3 margin on the
	// resulting height of 88 the view floor lands at -89.4.
	if !almost(rc.view.Bounds.MinY, -89.4) {
		t.Errorf("view MinY = %g, want -89.4", rc.view.Bounds.MinY)
	}
	if !almost(rc.view.Bounds.MaxY, 51.4) {
		t.Errorf("view MaxY = %g, want 51.4", rc.view.Bounds.MaxY)
	}
}

func TestDrawEmptyDiagram(t *testing.T) {
	rc := &recordCanvas{}
	err := Draw(layout.NewFreeform(), rc, Options{})
	if !errors.Is(err, ErrEmptyDiagram) {
		t.Fatalf("Draw error = %v, want ErrEmptyDiagram", err)
	}
}

func TestDrawConnectErrorPropagates(t *testing.T) {
	k, err := connector.NewKernel(connector.KernelConfig{Width: 400, Height: 400})
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}

	d := layout.NewSequence()
	d.AddShape(block(t, 50, 50, ""))
	d.AddConnectors(k)
	d.AddShape(block(t, 50, 50, ""))

	if err := Draw(d, &recordCanvas{}, Options{}); !errors.Is(err, connector.ErrKernelTooLarge) {
		t.Fatalf("Draw error = %v, want ErrKernelTooLarge", err)
	}
}

func TestDrawDeterministic(t *testing.T) {
	build := func() layout.Diagram {
		st, err := shape.NewStack2D(shape.Stack2DConfig{Channels: 5, Label: "in"})
		if err != nil {
			t.Fatalf("NewStack2D: %v", err)
		}
		k, err := connector.NewKernel(connector.KernelConfig{Label: "conv"})
		if err != nil {
			t.Fatalf("NewKernel: %v", err)
		}
		d := layout.NewSequence()
		d.AddShape(st)
		d.AddConnectors(k)
		d.AddShape(block(t, 80, 80, "out"))
		return d
	}

	d := build()
	first := &recordCanvas{}
	if err := Draw(d, first, Options{}); err != nil {
		t.Fatalf("first Draw: %v", err)
	}
	second := &recordCanvas{}
	if err := Draw(d, second, Options{}); err != nil {
		t.Fatalf("second Draw: %v", err)
	}

	if first.view != second.view {
		t.Errorf("views differ: %+v vs %+v", first.view, second.view)
	}
	if !reflect.DeepEqual(first.patches, second.patches) {
		t.Errorf("patches differ between passes")
	}
	if !reflect.DeepEqual(first.lines, second.lines) {
		t.Errorf("lines differ between passes")
	}
	if !reflect.DeepEqual(first.texts, second.texts) {
		t.Errorf("texts differ between passes")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{LabelOffset: 3}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	if opts.LabelOffset != 3 || opts.XMargin != DefaultXMargin {
		t.Fatalf("defaults not applied: %+v", opts)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second validate: %v", err)
	}
	if opts.LabelOffset != 3 {
		t.Errorf("LabelOffset changed on revalidation: %g", opts.LabelOffset)
	}
}

func TestOptionsRejectNegative(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"x margin", Options{XMargin: -0.1}},
		{"y margin", Options{YMargin: -0.1}},
		{"label offset", Options{LabelOffset: -1}},
		{"label size", Options{LabelSize: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png", "pdf", "json", "dot"}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
	if err := ValidateFormat("bmp"); err == nil {
		t.Error("expected error for unknown format")
	}
}
