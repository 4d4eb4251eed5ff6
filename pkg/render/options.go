package render

import (
	"fmt"

	"github.com/drawnet/drawnet/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Sinks
// =============================================================================

const (
	// DefaultXMargin is the horizontal view margin as a fraction of the
	// diagram width.
	DefaultXMargin = 0.05

	// DefaultYMargin is the vertical view margin as a fraction of the
	// diagram height. Taller than the horizontal margin so labels above
	// and below the shapes stay inside the view.
	DefaultYMargin = 0.3

	// DefaultLabelOffset is the gap between a label and the extents of
	// the shape or connector it annotates, in diagram units.
	DefaultLabelOffset = 10.0

	// DefaultLabelSize is the label text size in device units.
	DefaultLabelSize = 10.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options - Draw Configuration
// =============================================================================

// Options configures one [Draw] pass. The zero value draws with the
// documented defaults. This struct supports JSON serialization for API
// requests.
type Options struct {
	// Spacing is forwarded to the diagram's arrangement pass.
	Spacing layout.Spacing `json:"spacing,omitempty"`

	// XMargin widens the view by this fraction of the diagram width on
	// each side. Zero selects the default.
	XMargin float64 `json:"x_margin,omitempty"`

	// YMargin heightens the view by this fraction of the diagram
	// height on each side. Zero selects the default.
	YMargin float64 `json:"y_margin,omitempty"`

	// LabelOffset is the gap between labels and the extents they
	// annotate, in diagram units. Zero selects the default.
	LabelOffset float64 `json:"label_offset,omitempty"`

	// LabelSize is the label text size in device units. Zero selects
	// the default.
	LabelSize float64 `json:"label_size,omitempty"`

	// LabelsAtLimits pins above-labels to the top view edge and
	// below-labels to the bottom edge instead of hugging their owners.
	LabelsAtLimits bool `json:"labels_at_limits,omitempty"`

	// ShowAxis draws the view frame and origin axes.
	ShowAxis bool `json:"show_axis,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks fields and applies defaults. This
// method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.XMargin < 0 {
		return fmt.Errorf("x_margin must not be negative, got %g", o.XMargin)
	}
	if o.YMargin < 0 {
		return fmt.Errorf("y_margin must not be negative, got %g", o.YMargin)
	}
	if o.LabelOffset < 0 {
		return fmt.Errorf("label_offset must not be negative, got %g", o.LabelOffset)
	}
	if o.LabelSize < 0 {
		return fmt.Errorf("label_size must not be negative, got %g", o.LabelSize)
	}

	if o.XMargin == 0 {
		o.XMargin = DefaultXMargin
	}
	if o.YMargin == 0 {
		o.YMargin = DefaultYMargin
	}
	if o.LabelOffset == 0 {
		o.LabelOffset = DefaultLabelOffset
	}
	if o.LabelSize == 0 {
		o.LabelSize = DefaultLabelSize
	}

	o.validated = true
	return nil
}
