package geom

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if got := r.Right(); got != 110 {
		t.Errorf("Right() = %v, want 110", got)
	}
	if got := r.Bottom(); got != 70 {
		t.Errorf("Bottom() = %v, want 70", got)
	}
	if got := r.CenterX(); got != 60 {
		t.Errorf("CenterX() = %v, want 60", got)
	}
	if got := r.CenterY(); got != 45 {
		t.Errorf("CenterY() = %v, want 45", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 50, true},
		{"origin", 0, 0, true},
		{"right edge", 100, 50, false},
		{"outside", 150, 50, false},
		{"negative", -1, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			if got := (Point{X: tt.x, Y: tt.y}).In(r); got != tt.want {
				t.Errorf("Point.In = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	if !outer.ContainsRect(Rect{X: 10, Y: 10, Width: 50, Height: 50}) {
		t.Error("inner rect not contained")
	}
	if !outer.ContainsRect(outer) {
		t.Error("rect does not contain itself")
	}
	if outer.ContainsRect(Rect{X: 60, Y: 60, Width: 50, Height: 50}) {
		t.Error("overflowing rect reported as contained")
	}
}

func TestRectInset(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 80}
	got := r.Inset(Edges{Top: 5, Right: 10, Bottom: 15, Left: 20})
	want := Rect{X: 20, Y: 5, Width: 70, Height: 60}
	if got != want {
		t.Errorf("Inset = %+v, want %+v", got, want)
	}
}

func TestRectTranslate(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	got := r.Translate(5, -10)
	want := Rect{X: 15, Y: 10, Width: 30, Height: 40}
	if got != want {
		t.Errorf("Translate = %+v, want %+v", got, want)
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 50, Height: 50}
	b := Rect{X: 30, Y: 40, Width: 50, Height: 50}
	got := a.Union(b)
	want := Rect{X: 0, Y: 0, Width: 80, Height: 90}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}

	if got := a.Union(Rect{}); got != a {
		t.Errorf("union with empty = %+v, want %+v", got, a)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty union rect = %+v, want %+v", got, b)
	}
}

func TestEdgesConstructors(t *testing.T) {
	if got := EdgeAll(7); got != (Edges{Top: 7, Right: 7, Bottom: 7, Left: 7}) {
		t.Errorf("EdgeAll(7) = %+v", got)
	}
	if got := EdgeSymmetric(3, 9); got != (Edges{Top: 3, Right: 9, Bottom: 3, Left: 9}) {
		t.Errorf("EdgeSymmetric(3, 9) = %+v", got)
	}
	e := EdgeTRBL(1, 2, 3, 4)
	if e.Horizontal() != 6 {
		t.Errorf("Horizontal() = %v, want 6", e.Horizontal())
	}
	if e.Vertical() != 4 {
		t.Errorf("Vertical() = %v, want 4", e.Vertical())
	}
	if !(Edges{}).IsZero() || e.IsZero() {
		t.Error("IsZero misreports")
	}
}
