package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drawnet/drawnet/pkg/gallery"
	"github.com/drawnet/drawnet/pkg/layout"
	"github.com/drawnet/drawnet/pkg/render"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"dot only", "dot", []string{"dot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateView(t *testing.T) {
	tests := []struct {
		name    string
		view    string
		wantErr bool
	}{
		{"diagram", "diagram", false},
		{"topology", "topology", false},
		{"invalid", "sideways", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateView(tt.view)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateView(%q) error = %v, wantErr %v", tt.view, err, tt.wantErr)
			}
		})
	}
}

func TestParseManualX(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []float64
		wantErr bool
	}{
		{"single value", "100", []float64{100}, false},
		{"multiple values", "0,150,320", []float64{0, 150, 320}, false},
		{"spaces allowed", "0, 150.5, 320", []float64{0, 150.5, 320}, false},
		{"negative values", "-50,50", []float64{-50, 50}, false},
		{"not a number", "0,abc", nil, true},
		{"trailing comma", "0,150,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseManualX(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseManualX(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseManualX(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseManualX(%q)[%d] = %v, want %v", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestApplyLayoutFlags(t *testing.T) {
	changed := map[string]bool{"hspace": true, "label-size": true, "axis": true}
	lf := layoutFlags{hspace: 150, labelSize: 14, showAxis: true, dspace: 999}

	ropts := render.Options{
		Spacing:   layout.Spacing{Horizontal: 80, Diagonal: 120},
		LabelSize: 8,
	}

	if err := applyLayoutFlags(&ropts, &lf, func(name string) bool { return changed[name] }); err != nil {
		t.Fatalf("applyLayoutFlags() error: %v", err)
	}

	if ropts.Spacing.Horizontal != 150 {
		t.Errorf("Spacing.Horizontal = %v, want 150", ropts.Spacing.Horizontal)
	}
	if ropts.Spacing.Diagonal != 120 {
		t.Errorf("Spacing.Diagonal = %v, want 120 (unset flag must keep scene value)", ropts.Spacing.Diagonal)
	}
	if ropts.LabelSize != 14 {
		t.Errorf("LabelSize = %v, want 14", ropts.LabelSize)
	}
	if !ropts.ShowAxis {
		t.Error("ShowAxis = false, want true")
	}
}

func TestApplyLayoutFlagsManualX(t *testing.T) {
	lf := layoutFlags{xposStr: "0,200,450"}
	var ropts render.Options

	if err := applyLayoutFlags(&ropts, &lf, func(name string) bool { return name == "xpos" }); err != nil {
		t.Fatalf("applyLayoutFlags() error: %v", err)
	}
	if len(ropts.Spacing.ManualX) != 3 {
		t.Fatalf("Spacing.ManualX length = %d, want 3", len(ropts.Spacing.ManualX))
	}
	if ropts.Spacing.ManualX[2] != 450 {
		t.Errorf("Spacing.ManualX[2] = %v, want 450", ropts.Spacing.ManualX[2])
	}
}

func TestApplyLayoutFlagsBadManualX(t *testing.T) {
	lf := layoutFlags{xposStr: "0,nope"}
	var ropts render.Options

	err := applyLayoutFlags(&ropts, &lf, func(name string) bool { return name == "xpos" })
	if err == nil {
		t.Fatal("applyLayoutFlags() with invalid xpos should return an error")
	}
}

func TestApplyRenderConfig(t *testing.T) {
	opts := renderOpts{view: viewDiagram}
	formatsStr := ""
	cfg := RenderConfig{Formats: []string{"png", "pdf"}, Width: 1200, Open: true}

	applyRenderConfig(&opts, &formatsStr, cfg, func(string) bool { return false })

	if formatsStr != "png,pdf" {
		t.Errorf("formatsStr = %q, want %q", formatsStr, "png,pdf")
	}
	if opts.width != 1200 {
		t.Errorf("width = %v, want 1200", opts.width)
	}
	if !opts.open {
		t.Error("open = false, want true")
	}
}

func TestApplyRenderConfigFlagsWin(t *testing.T) {
	opts := renderOpts{view: viewDiagram, width: 640}
	formatsStr := "svg"
	cfg := RenderConfig{Formats: []string{"png"}, Width: 1200, Open: true}

	applyRenderConfig(&opts, &formatsStr, cfg, func(name string) bool {
		return name == "width" || name == "open"
	})

	if formatsStr != "svg" {
		t.Errorf("formatsStr = %q, want %q (explicit flag must win)", formatsStr, "svg")
	}
	if opts.width != 640 {
		t.Errorf("width = %v, want 640 (explicit flag must win)", opts.width)
	}
	if opts.open {
		t.Error("open = true, want false (explicit flag must win)")
	}
}

func TestWidthOptions(t *testing.T) {
	if got := widthOptions(0); got != nil {
		t.Errorf("widthOptions(0) = %v, want nil", got)
	}
	if got := widthOptions(-10); got != nil {
		t.Errorf("widthOptions(-10) = %v, want nil", got)
	}
	if got := widthOptions(1600); len(got) != 1 {
		t.Errorf("widthOptions(1600) length = %d, want 1", len(got))
	}
}

func TestRenderSceneWritesFiles(t *testing.T) {
	c := New(io.Discard, LogInfo)
	scene, err := gallery.Lookup("blocks")
	if err != nil {
		t.Fatalf("Lookup(blocks) error: %v", err)
	}

	dir := t.TempDir()
	opts := renderOpts{
		formats: []string{"svg", "json", "dot"},
		output:  dir,
		view:    viewDiagram,
	}
	var lf layoutFlags
	notChanged := func(string) bool { return false }

	written, stats, err := c.renderScene(scene, &opts, &lf, notChanged)
	if err != nil {
		t.Fatalf("renderScene() error: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("renderScene() wrote %d files, want 3", len(written))
	}
	if stats.shapes == 0 {
		t.Error("stats.shapes = 0, want > 0")
	}

	for _, path := range written {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", path)
		}
	}

	svg, err := os.ReadFile(filepath.Join(dir, "blocks.svg"))
	if err != nil {
		t.Fatalf("read blocks.svg: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("blocks.svg does not contain an <svg element")
	}
}

func TestRenderSceneTopologySkipsJSON(t *testing.T) {
	c := New(io.Discard, LogInfo)
	scene, err := gallery.Lookup("dense")
	if err != nil {
		t.Fatalf("Lookup(dense) error: %v", err)
	}

	opts := renderOpts{
		formats: []string{"json", "dot"},
		output:  t.TempDir(),
		view:    viewTopology,
	}
	var lf layoutFlags

	written, _, err := c.renderScene(scene, &opts, &lf, func(string) bool { return false })
	if err != nil {
		t.Fatalf("renderScene() error: %v", err)
	}
	if len(written) != 1 {
		t.Fatalf("renderScene() wrote %d files, want 1 (json skipped for topology)", len(written))
	}
	if !strings.HasSuffix(written[0], "dense.dot") {
		t.Errorf("written[0] = %q, want dense.dot", written[0])
	}

	data, err := os.ReadFile(written[0])
	if err != nil {
		t.Fatalf("read %s: %v", written[0], err)
	}
	if !strings.Contains(string(data), "digraph") {
		t.Error("dense.dot does not contain a digraph")
	}
}
