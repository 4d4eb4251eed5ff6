package geom

import "testing"

func TestRectDimensions(t *testing.T) {
	r := Rect{MinX: 10, MinY: 20, MaxX: 60, MaxY: 70}

	if r.Width() != 50 {
		t.Errorf("Width() = %v, want 50", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Height() = %v, want 50", r.Height())
	}
	if r.CenterX() != 35 {
		t.Errorf("CenterX() = %v, want 35", r.CenterX())
	}
	if r.CenterY() != 45 {
		t.Errorf("CenterY() = %v, want 45", r.CenterY())
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "disjoint",
			a:    Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
			b:    Rect{MinX: 20, MinY: 20, MaxX: 30, MaxY: 30},
			want: Rect{MinX: 0, MinY: 0, MaxX: 30, MaxY: 30},
		},
		{
			name: "contained",
			a:    Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100},
			b:    Rect{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20},
			want: Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100},
		},
		{
			name: "negative coordinates",
			a:    Rect{MinX: -50, MinY: -50, MaxX: 0, MaxY: 0},
			b:    Rect{MinX: 0, MinY: 0, MaxX: 50, MaxY: 50},
			want: Rect{MinX: -50, MinY: -50, MaxX: 50, MaxY: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectExpand(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 50}
	got := r.Expand(5, 15)
	want := Rect{MinX: -5, MinY: -15, MaxX: 105, MaxY: 65}
	if got != want {
		t.Errorf("Expand(5, 15) = %+v, want %+v", got, want)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name   string
		pts    []Point
		want   Rect
		wantOK bool
	}{
		{
			name:   "empty",
			pts:    nil,
			wantOK: false,
		},
		{
			name:   "single point",
			pts:    []Point{{X: 3, Y: 4}},
			want:   Rect{MinX: 3, MinY: 4, MaxX: 3, MaxY: 4},
			wantOK: true,
		},
		{
			name:   "triangle",
			pts:    []Point{{X: -10, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 25}},
			want:   Rect{MinX: -10, MinY: 0, MaxX: 10, MaxY: 25},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Bounds(tt.pts)
			if ok != tt.wantOK {
				t.Fatalf("Bounds() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCornersBounds(t *testing.T) {
	c := Corners{
		TL: Point{X: 0, Y: 100},
		TR: Point{X: 80, Y: 100},
		BL: Point{X: 20, Y: -20},
		BR: Point{X: 120, Y: -20},
	}
	got := c.Bounds()
	want := Rect{MinX: 0, MinY: -20, MaxX: 120, MaxY: 100}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestDim(t *testing.T) {
	var zero Dim
	if !zero.IsAuto() {
		t.Error("zero Dim should be Auto")
	}
	if !Auto().IsAuto() {
		t.Error("Auto() should be Auto")
	}

	f := Fixed(42)
	if f.IsAuto() {
		t.Error("Fixed(42) should not be Auto")
	}
	if f.Value() != 42 {
		t.Errorf("Value() = %v, want 42", f.Value())
	}
	if f.Or(7) != 42 {
		t.Errorf("Or(7) = %v, want 42", f.Or(7))
	}
	if Auto().Or(7) != 7 {
		t.Errorf("Auto().Or(7) = %v, want 7", Auto().Or(7))
	}
}
