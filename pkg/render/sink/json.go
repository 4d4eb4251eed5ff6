package sink

import (
	"encoding/json"
	"fmt"

	"github.com/drawnet/drawnet/pkg/geom"
	"github.com/drawnet/drawnet/pkg/layout"
	"github.com/drawnet/drawnet/pkg/prim"
	"github.com/drawnet/drawnet/pkg/render"
)

// JSON is a [render.Canvas] that records draw calls as structured data.
// Unlike the visual canvases it keeps diagram coordinates untouched, so
// the output can be replayed by external tooling at any scale.
type JSON struct {
	doc   jsonDoc
	ready bool
}

type jsonDoc struct {
	View    jsonView    `json:"view"`
	Patches []jsonPatch `json:"patches"`
	Lines   []jsonLine  `json:"lines"`
	Texts   []jsonText  `json:"texts"`
}

type jsonView struct {
	MinX     float64 `json:"min_x"`
	MinY     float64 `json:"min_y"`
	MaxX     float64 `json:"max_x"`
	MaxY     float64 `json:"max_y"`
	ShowAxis bool    `json:"show_axis,omitempty"`
}

type jsonPatch struct {
	Kind   string       `json:"kind"`
	X      float64      `json:"x,omitempty"`
	Y      float64      `json:"y,omitempty"`
	W      float64      `json:"w,omitempty"`
	H      float64      `json:"h,omitempty"`
	R      float64      `json:"r,omitempty"`
	Points [][2]float64 `json:"points,omitempty"`
	Path   string       `json:"path,omitempty"`
	Fill   string       `json:"fill,omitempty"`
}

type jsonLine struct {
	Points [][2]float64 `json:"points"`
}

type jsonText struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Text  string  `json:"text"`
	Align string  `json:"align"`
	Size  float64 `json:"size,omitempty"`
	Bold  bool    `json:"bold,omitempty"`
}

// NewJSON builds a JSON canvas ready for [render.Draw].
func NewJSON() *JSON {
	return &JSON{doc: jsonDoc{
		Patches: []jsonPatch{},
		Lines:   []jsonLine{},
		Texts:   []jsonText{},
	}}
}

// SetView records the world window.
func (c *JSON) SetView(v render.View) error {
	b := v.Bounds
	c.doc.View = jsonView{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY, ShowAxis: v.ShowAxis}
	c.ready = true
	return nil
}

// DrawPatch records a filled patch.
func (c *JSON) DrawPatch(p prim.Patch) error {
	if !c.ready {
		return errNoView
	}

	switch p := p.(type) {
	case prim.Rect:
		c.doc.Patches = append(c.doc.Patches, jsonPatch{
			Kind: "rect", X: p.X, Y: p.Y, W: p.W, H: p.H, Fill: p.Fill.Hex(),
		})
	case prim.Circle:
		c.doc.Patches = append(c.doc.Patches, jsonPatch{
			Kind: "circle", X: p.Center.X, Y: p.Center.Y, R: p.R, Fill: p.Fill.Hex(),
		})
	case prim.Polygon:
		c.doc.Patches = append(c.doc.Patches, jsonPatch{
			Kind: "polygon", Points: pointPairs(p.Points), Fill: p.Fill.Hex(),
		})
	case prim.Image:
		c.doc.Patches = append(c.doc.Patches, jsonPatch{
			Kind: "image", X: p.X, Y: p.Y, W: p.W, H: p.H, Path: p.Path,
		})
	default:
		return fmt.Errorf("%w: %T", render.ErrUnsupportedPrimitive, p)
	}
	return nil
}

// DrawLine records a polyline.
func (c *JSON) DrawLine(l prim.Polyline) error {
	if !c.ready {
		return errNoView
	}
	if len(l) < 2 {
		return nil
	}
	c.doc.Lines = append(c.doc.Lines, jsonLine{Points: pointPairs(l)})
	return nil
}

// DrawText records a text block.
func (c *JSON) DrawText(t prim.Text) error {
	if !c.ready {
		return errNoView
	}
	c.doc.Texts = append(c.doc.Texts, jsonText{
		X: t.Pos.X, Y: t.Pos.Y,
		Text:  t.Content,
		Align: alignName(t.Align),
		Size:  t.Size,
		Bold:  t.Bold,
	})
	return nil
}

// Bytes serializes the recorded scene as a pretty-printed JSON document.
func (c *JSON) Bytes() ([]byte, error) {
	return json.MarshalIndent(c.doc, "", "  ")
}

func pointPairs(pts []geom.Point) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

func alignName(a prim.VAlign) string {
	switch a {
	case prim.AlignTop:
		return "top"
	case prim.AlignMiddle:
		return "middle"
	default:
		return "bottom"
	}
}

// RenderJSON arranges and draws the diagram, returning the draw calls
// as a JSON document.
func RenderJSON(d layout.Diagram, opts render.Options) ([]byte, error) {
	c := NewJSON()
	if err := render.Draw(d, c, opts); err != nil {
		return nil, err
	}
	return c.Bytes()
}
