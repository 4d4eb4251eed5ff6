package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drawnet/drawnet/pkg/gallery"
	"github.com/drawnet/drawnet/pkg/layout"
	"github.com/drawnet/drawnet/pkg/render"
	"github.com/drawnet/drawnet/pkg/render/nodelink"
	"github.com/drawnet/drawnet/pkg/render/sink"
)

// Views selectable via --view.
const (
	viewDiagram  = "diagram"  // full shape drawing
	viewTopology = "topology" // node-link preview via Graphviz
)

// renderOpts holds the command-line flags shared by render and gallery render.
type renderOpts struct {
	formats  []string // output formats: "svg", "png", "pdf", "json", "dot"
	output   string   // output directory
	view     string   // diagram (default) or topology
	detailed bool     // include shape dimensions in topology labels
	width    float64  // device width in pixels for svg/png (0 = renderer default)
	raster   bool     // rasterize png in-process instead of via rsvg-convert
	open     bool     // open the first artifact in the system viewer
}

// layoutFlags holds overrides for a scene's canonical render options.
// Only flags the user explicitly set are applied.
type layoutFlags struct {
	hspace         float64
	dspace         float64
	xposStr        string
	xmargin        float64
	ymargin        float64
	labelOffset    float64
	labelSize      float64
	labelsAtLimits bool
	showAxis       bool
}

// renderCommand creates the render command for rendering a single gallery scene.
//
// Default settings:
//   - format: svg
//   - view: diagram
//   - output: current directory
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{view: viewDiagram}
	var lf layoutFlags

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render a gallery scene to SVG, PNG, PDF, JSON, or DOT",
		Long: `Render a gallery scene to one or more output formats.

The scene is built with its canonical layout options; spacing and label
flags override individual options. The topology view replaces the shape
drawing with a Graphviz node-link preview of shapes and connections.

Use 'drawnet gallery list' to see the available scenes.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: gallery.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolveRenderOpts(&opts, &formatsStr, cmd.Flags().Changed); err != nil {
				return err
			}
			scene, err := gallery.Lookup(args[0])
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), scene, &opts, &lf, cmd.Flags().Changed)
		},
	}

	addRenderFlags(cmd, &opts, &formatsStr)
	addLayoutFlags(cmd, &lf)

	return cmd
}

// addRenderFlags registers the output flags shared by render and gallery render.
func addRenderFlags(cmd *cobra.Command, opts *renderOpts, formatsStr *string) {
	cmd.Flags().StringVarP(formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default current directory)")
	cmd.Flags().StringVar(&opts.view, "view", opts.view, "view: diagram (default), topology")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include shape dimensions in topology labels")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "device width in pixels for svg/png output")
	cmd.Flags().BoolVar(&opts.raster, "raster", false, "rasterize png in-process instead of via rsvg-convert")
	cmd.Flags().BoolVar(&opts.open, "open", false, "open the first artifact in the system viewer")
}

// addLayoutFlags registers overrides for the scene's canonical layout options.
func addLayoutFlags(cmd *cobra.Command, lf *layoutFlags) {
	cmd.Flags().Float64Var(&lf.hspace, "hspace", 100, "horizontal gap between neighboring shapes")
	cmd.Flags().Float64Var(&lf.dspace, "dspace", 200, "stagger distance for diagonal shapes")
	cmd.Flags().StringVar(&lf.xposStr, "xpos", "", "explicit x offsets, comma-separated (overrides spacing)")
	cmd.Flags().Float64Var(&lf.xmargin, "xmargin", render.DefaultXMargin, "horizontal view margin as a fraction of drawing width")
	cmd.Flags().Float64Var(&lf.ymargin, "ymargin", render.DefaultYMargin, "vertical view margin as a fraction of drawing height")
	cmd.Flags().Float64Var(&lf.labelOffset, "label-offset", render.DefaultLabelOffset, "gap between labels and shape extents")
	cmd.Flags().Float64Var(&lf.labelSize, "label-size", render.DefaultLabelSize, "label text size")
	cmd.Flags().BoolVar(&lf.labelsAtLimits, "labels-at-limits", false, "align all labels to the diagram extents")
	cmd.Flags().BoolVar(&lf.showAxis, "axis", false, "draw the coordinate axes")
}

// resolveRenderOpts loads config defaults into unset flags and validates
// the resulting render options.
func (c *CLI) resolveRenderOpts(opts *renderOpts, formatsStr *string, changed func(string) bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	applyRenderConfig(opts, formatsStr, cfg.Render, changed)

	opts.formats = parseFormats(*formatsStr)
	if err := render.ValidateFormats(opts.formats); err != nil {
		return err
	}
	return validateView(opts.view)
}

// applyRenderConfig fills unset render flags from the config file.
func applyRenderConfig(opts *renderOpts, formatsStr *string, cfg RenderConfig, changed func(string) bool) {
	if *formatsStr == "" && len(cfg.Formats) > 0 {
		*formatsStr = strings.Join(cfg.Formats, ",")
	}
	if !changed("width") && cfg.Width > 0 {
		opts.width = cfg.Width
	}
	if !changed("open") && cfg.Open {
		opts.open = true
	}
}

// applyLayoutFlags overlays explicitly set layout flags onto a scene's
// canonical render options.
func applyLayoutFlags(ropts *render.Options, lf *layoutFlags, changed func(string) bool) error {
	if changed("hspace") {
		ropts.Spacing.Horizontal = lf.hspace
	}
	if changed("dspace") {
		ropts.Spacing.Diagonal = lf.dspace
	}
	if changed("xpos") {
		xs, err := parseManualX(lf.xposStr)
		if err != nil {
			return err
		}
		ropts.Spacing.ManualX = xs
	}
	if changed("xmargin") {
		ropts.XMargin = lf.xmargin
	}
	if changed("ymargin") {
		ropts.YMargin = lf.ymargin
	}
	if changed("label-offset") {
		ropts.LabelOffset = lf.labelOffset
	}
	if changed("label-size") {
		ropts.LabelSize = lf.labelSize
	}
	if changed("labels-at-limits") {
		ropts.LabelsAtLimits = lf.labelsAtLimits
	}
	if changed("axis") {
		ropts.ShowAxis = lf.showAxis
	}
	return nil
}

// parseManualX parses the --xpos flag, a comma-separated list of x offsets.
func parseManualX(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	xs := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x position %q", p)
		}
		xs = append(xs, v)
	}
	return xs, nil
}

// validateView checks that the view is either "diagram" or "topology".
func validateView(s string) error {
	if s != viewDiagram && s != viewTopology {
		return fmt.Errorf("invalid view: %s (must be 'diagram' or 'topology')", s)
	}
	return nil
}

// sceneStats summarizes a built scene for display.
type sceneStats struct {
	shapes     int
	connectors int
}

// runRender builds the scene, renders every requested format, and reports
// the written files.
func (c *CLI) runRender(ctx context.Context, scene *gallery.Scene, opts *renderOpts, lf *layoutFlags, changed func(string) bool) error {
	if opts.output != "" {
		if err := os.MkdirAll(opts.output, 0755); err != nil {
			return err
		}
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", scene.Name))
	spinner.Start()

	written, stats, err := c.renderScene(scene, opts, lf, changed)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Rendering %s failed", scene.Name))
		if spinner.Cancelled() {
			return ctx.Err()
		}
		return err
	}
	spinner.Stop()

	printSuccess("Rendered %s", scene.Name)
	for _, path := range written {
		printFile(path)
	}
	printStats(stats.shapes, stats.connectors)

	if opts.open && len(written) > 0 {
		if err := openInViewer(written[0]); err != nil {
			c.Logger.Warn("could not open viewer", "err", err)
		}
	}
	return nil
}

// renderScene builds the scene, applies flag overrides, and writes one file
// per requested format. It returns the written paths.
func (c *CLI) renderScene(scene *gallery.Scene, opts *renderOpts, lf *layoutFlags, changed func(string) bool) ([]string, sceneStats, error) {
	var stats sceneStats

	d, ropts, err := scene.Build()
	if err != nil {
		return nil, stats, fmt.Errorf("build %s: %w", scene.Name, err)
	}
	if err := applyLayoutFlags(&ropts, lf, changed); err != nil {
		return nil, stats, err
	}

	stats.shapes = len(d.Shapes())
	edges, err := d.Edges()
	if err != nil {
		return nil, stats, fmt.Errorf("connections %s: %w", scene.Name, err)
	}
	for _, e := range edges {
		stats.connectors += len(e.Connectors)
	}

	var written []string
	for _, format := range opts.formats {
		data, err := c.renderView(d, ropts, format, opts)
		if errors.Is(err, errSkipFormat) {
			c.Logger.Debugf("Skipping %s/%s (unsupported combination)", opts.view, format)
			continue
		}
		if err != nil {
			return nil, stats, fmt.Errorf("%s/%s: %w", opts.view, format, err)
		}

		path := filepath.Join(opts.output, scene.Name+"."+format)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, stats, err
		}
		c.Logger.Debugf("Generated %s: %d bytes", path, len(data))
		written = append(written, path)
	}
	return written, stats, nil
}

// errSkipFormat is a sentinel error indicating an unsupported view/format combination.
var errSkipFormat = fmt.Errorf("skip unsupported format")

// renderView dispatches to the diagram or topology renderer.
func (c *CLI) renderView(d layout.Diagram, ropts render.Options, format string, opts *renderOpts) ([]byte, error) {
	switch opts.view {
	case viewTopology:
		return c.renderTopology(d, format, opts)
	case viewDiagram:
		return c.renderDiagram(d, ropts, format, opts)
	default:
		return nil, fmt.Errorf("unknown view: %s", opts.view)
	}
}

// renderTopology generates a node-link preview of the diagram using Graphviz.
// It supports SVG, PDF, PNG, and DOT. JSON returns errSkipFormat.
func (c *CLI) renderTopology(d layout.Diagram, format string, opts *renderOpts) ([]byte, error) {
	dot, err := nodelink.ToDOT(d, nodelink.Options{Detailed: opts.detailed})
	if err != nil {
		return nil, err
	}

	switch format {
	case render.FormatDOT:
		return []byte(dot), nil
	case render.FormatSVG:
		c.Logger.Debug("Rendering topology SVG")
		return nodelink.RenderSVG(dot)
	case render.FormatPDF:
		c.Logger.Debug("Rendering topology PDF")
		return nodelink.RenderPDF(dot)
	case render.FormatPNG:
		c.Logger.Debug("Rendering topology PNG")
		return nodelink.RenderPNG(dot, 2.0)
	case render.FormatJSON:
		return nil, errSkipFormat // geometry export only makes sense for the diagram view
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// renderDiagram renders the full shape drawing in the requested format.
func (c *CLI) renderDiagram(d layout.Diagram, ropts render.Options, format string, opts *renderOpts) ([]byte, error) {
	switch format {
	case render.FormatSVG:
		c.Logger.Debug("Rendering SVG")
		return sink.RenderSVG(d, ropts, widthOptions(opts.width)...)
	case render.FormatPNG:
		if opts.raster {
			c.Logger.Debug("Rasterizing PNG in-process")
			var rasterOpts []sink.RasterOption
			if opts.width > 0 {
				rasterOpts = append(rasterOpts, sink.WithRasterWidth(int(opts.width)))
			}
			return sink.RenderRaster(d, ropts, rasterOpts...)
		}
		c.Logger.Debug("Rendering PNG via rsvg-convert")
		return sink.RenderPNG(d, ropts, sink.WithPNGSVGOptions(widthOptions(opts.width)...))
	case render.FormatPDF:
		c.Logger.Debug("Rendering PDF")
		return sink.RenderPDF(d, ropts, sink.WithPDFSVGOptions(widthOptions(opts.width)...))
	case render.FormatJSON:
		c.Logger.Debug("Rendering JSON geometry")
		return sink.RenderJSON(d, ropts)
	case render.FormatDOT:
		dot, err := nodelink.ToDOT(d, nodelink.Options{Detailed: opts.detailed})
		if err != nil {
			return nil, err
		}
		return []byte(dot), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// widthOptions converts the --width flag into SVG sink options.
func widthOptions(width float64) []sink.SVGOption {
	if width <= 0 {
		return nil
	}
	return []sink.SVGOption{sink.WithWidth(width)}
}

// openInViewer opens path with the platform's default viewer.
func openInViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
