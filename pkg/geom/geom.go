// Package geom provides the small geometric value types shared by the
// shape, connector, and render packages: points, rectangles, corner sets,
// and the Auto|Fixed dimension used for lazily resolved coordinates.
package geom

// Point is a position in diagram coordinates. Y grows upward.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle spanning [MinX, MaxX] x [MinY, MaxY].
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// CenterX returns the horizontal center point of the rectangle.
func (r Rect) CenterX() float64 { return (r.MinX + r.MaxX) / 2 }

// CenterY returns the vertical center point of the rectangle.
func (r Rect) CenterY() float64 { return (r.MinY + r.MaxY) / 2 }

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Expand grows the rectangle by dx on the left and right and dy on the
// bottom and top. Negative values shrink it.
func (r Rect) Expand(dx, dy float64) Rect {
	return Rect{
		MinX: r.MinX - dx,
		MinY: r.MinY - dy,
		MaxX: r.MaxX + dx,
		MaxY: r.MaxY + dy,
	}
}

// Bounds returns the bounding rectangle of the given points. The second
// return value is false when pts is empty.
func Bounds(pts []Point) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	r := Rect{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		r.MinX = min(r.MinX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxX = max(r.MaxX, p.X)
		r.MaxY = max(r.MaxY, p.Y)
	}
	return r, true
}

// Corners holds the four canonical attachment points of a shape, in the
// order connectors read them: top-left, top-right, bottom-left,
// bottom-right. For diagonally stacked shapes the bottom pair belongs to
// the rearmost element, so the corner set spans the full footprint rather
// than the base rectangle.
type Corners struct {
	TL, TR, BL, BR Point
}

// Bounds returns the rectangle spanned by the corner set.
func (c Corners) Bounds() Rect {
	return Rect{MinX: c.TL.X, MinY: c.BR.Y, MaxX: c.BR.X, MaxY: c.TL.Y}
}

// Dim is a dimension that is either fixed or resolved automatically at
// footprint computation. The zero value is Auto, so config structs default
// to automatic placement unless a caller opts in with Fixed.
type Dim struct {
	v     float64
	fixed bool
}

// Fixed returns a Dim pinned to v.
func Fixed(v float64) Dim { return Dim{v: v, fixed: true} }

// Auto returns the automatic Dim. Equivalent to the zero value.
func Auto() Dim { return Dim{} }

// IsAuto reports whether the dimension still needs resolution.
func (d Dim) IsAuto() bool { return !d.fixed }

// Value returns the fixed value, or 0 for an Auto dim.
func (d Dim) Value() float64 { return d.v }

// Or returns the fixed value, or def when the dim is Auto.
func (d Dim) Or(def float64) float64 {
	if d.fixed {
		return d.v
	}
	return def
}
