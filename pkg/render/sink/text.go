package sink

import (
	"errors"
	"strings"

	"github.com/drawnet/drawnet/pkg/prim"
)

// DefaultWidth is the device width in pixels canvases render at unless
// configured otherwise.
const DefaultWidth = 960.0

const (
	// baseWidth is the reference device width at which text sizes are
	// taken literally. Wider outputs scale text up proportionally.
	baseWidth = 640.0

	// defaultTextSize is used for text that does not carry a size.
	defaultTextSize = 10.0

	lineSpacing = 1.2
	ascent      = 0.8
	halfCap     = 0.35
)

var errNoView = errors.New("canvas has no view")

// textLayout resolves a text block into lines and the device Y of the
// first baseline. anchor is the device Y of the text position (Y down)
// and size the font pixel size. Alignment follows the block as a whole:
// bottom-aligned text stacks upward from the anchor, top-aligned text
// hangs below it, middle-aligned text centers on it.
func textLayout(t prim.Text, anchor, size float64) (lines []string, first, lineH float64) {
	lines = strings.Split(t.Content, "\n")
	lineH = size * lineSpacing
	n := float64(len(lines))

	switch t.Align {
	case prim.AlignTop:
		first = anchor + ascent*size
	case prim.AlignMiddle:
		first = anchor - (n-1)/2*lineH + halfCap*size
	default:
		first = anchor - (n-1)*lineH
	}
	return lines, first, lineH
}

// textSize returns the font pixel size for a text block on a canvas of
// the given device width.
func textSize(t prim.Text, deviceWidth float64) float64 {
	size := t.Size
	if size == 0 {
		size = defaultTextSize
	}
	return size * deviceWidth / baseWidth
}
