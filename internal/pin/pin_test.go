package pin

import (
	"math"
	"testing"

	"github.com/designlibre/layout/internal/geom"
	"github.com/designlibre/layout/internal/solver"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// fixParent pins the parent's geometry and weakly anchors the child at its
// current bounds, mirroring what the engine does per pass.
func fixParent(s *solver.Adapter, parent geom.Rect, child geom.Rect) {
	s.AddValueConstraint("p:x", s.X("p"), parent.X, solver.Required)
	s.AddValueConstraint("p:y", s.Y("p"), parent.Y, solver.Required)
	s.AddValueConstraint("p:w", s.Width("p"), parent.Width, solver.Required)
	s.AddValueConstraint("p:h", s.Height("p"), parent.Height, solver.Required)
	s.AddValueConstraint("c:x", s.X("c"), child.X, solver.Weak)
	s.AddValueConstraint("c:y", s.Y("c"), child.Y, solver.Weak)
	s.AddValueConstraint("c:w", s.Width("c"), child.Width, solver.Weak)
	s.AddValueConstraint("c:h", s.Height("c"), child.Height, solver.Weak)
}

func TestCalculateOffsets(t *testing.T) {
	parent := geom.NewRect(100, 50, 400, 300)
	child := geom.NewRect(120, 70, 100, 80)
	off := CalculateOffsets(parent, child)

	if off.Left != 20 || off.Top != 20 {
		t.Errorf("near offsets = (%v, %v), want (20, 20)", off.Left, off.Top)
	}
	if off.Right != 180 || off.Bottom != 150 {
		t.Errorf("far offsets = (%v, %v), want (180, 150)", off.Right, off.Bottom)
	}
	if off.Width != 100 || off.Height != 80 {
		t.Errorf("size = (%v, %v), want (100, 80)", off.Width, off.Height)
	}
}

func TestApply_MinTracksNearEdge(t *testing.T) {
	s := solver.New()
	parent := geom.NewRect(0, 0, 400, 300)
	child := geom.NewRect(30, 40, 100, 50)
	off := CalculateOffsets(parent, child)

	// Parent moves to (200, 100); child keeps its original offsets.
	moved := geom.NewRect(200, 100, 400, 300)
	fixParent(s, moved, child)
	Apply(s, "p", "c", Constraints{Horizontal: Min, Vertical: Min}, off)
	s.Solve()

	if got := s.Value(s.X("c")); !approx(got, 230) {
		t.Errorf("child x = %v, want 230", got)
	}
	if got := s.Value(s.Y("c")); !approx(got, 140) {
		t.Errorf("child y = %v, want 140", got)
	}
}

func TestApply_MaxTracksFarEdge(t *testing.T) {
	s := solver.New()
	parent := geom.NewRect(0, 0, 400, 300)
	child := geom.NewRect(280, 230, 100, 50)
	off := CalculateOffsets(parent, child) // Right=20, Bottom=20

	// Parent grows; child stays 20 from the far edges.
	grown := geom.NewRect(0, 0, 600, 500)
	fixParent(s, grown, child)
	Apply(s, "p", "c", Constraints{Horizontal: Max, Vertical: Max}, off)
	s.Solve()

	if got := s.Value(s.X("c")); !approx(got, 480) {
		t.Errorf("child x = %v, want 480 (600-20-100)", got)
	}
	if got := s.Value(s.Y("c")); !approx(got, 430) {
		t.Errorf("child y = %v, want 430 (500-20-50)", got)
	}
}

func TestApply_CenterRecenters(t *testing.T) {
	s := solver.New()
	parent := geom.NewRect(0, 0, 400, 300)
	child := geom.NewRect(10, 10, 100, 50) // Off-center on purpose
	off := CalculateOffsets(parent, child)

	fixParent(s, parent, child)
	Apply(s, "p", "c", Constraints{Horizontal: Center, Vertical: Center}, off)
	s.Solve()

	if got := s.Value(s.X("c")); !approx(got, 150) {
		t.Errorf("child x = %v, want 150 (centered)", got)
	}
	if got := s.Value(s.Y("c")); !approx(got, 125) {
		t.Errorf("child y = %v, want 125 (centered)", got)
	}
}

func TestApply_StretchContainment(t *testing.T) {
	// For margins (L,T,R,B) in a parent of size (W,H):
	// child.x == parent.x+L and child.width == W-L-R, for multiple sizes.
	margins := CalculateOffsets(geom.NewRect(0, 0, 400, 300), geom.NewRect(25, 15, 350, 270))

	for _, size := range []geom.Size{
		{Width: 400, Height: 300},
		{Width: 1000, Height: 80},
		{Width: 41, Height: 31}, // Barely above L+R / T+B
	} {
		s := solver.New()
		parent := geom.NewRect(10, 20, size.Width, size.Height)
		fixParent(s, parent, geom.NewRect(0, 0, 1, 1))
		Apply(s, "p", "c", Constraints{Horizontal: Stretch, Vertical: Stretch}, margins)
		s.Solve()

		if got := s.Value(s.X("c")); !approx(got, parent.X+25) {
			t.Errorf("size %v: child x = %v, want %v", size, got, parent.X+25)
		}
		if got := s.Value(s.Width("c")); !approx(got, size.Width-25-25) {
			t.Errorf("size %v: child width = %v, want %v", size, got, size.Width-50)
		}
		if got := s.Value(s.Y("c")); !approx(got, parent.Y+15) {
			t.Errorf("size %v: child y = %v, want %v", size, got, parent.Y+15)
		}
		if got := s.Value(s.Height("c")); !approx(got, size.Height-15-15) {
			t.Errorf("size %v: child height = %v, want %v", size, got, size.Height-30)
		}
	}
}

func TestApply_ScaleMatchesMin(t *testing.T) {
	off := CalculateOffsets(geom.NewRect(0, 0, 400, 300), geom.NewRect(30, 40, 100, 50))
	moved := geom.NewRect(200, 100, 800, 600)

	solveX := func(c Constraints) float64 {
		s := solver.New()
		fixParent(s, moved, geom.NewRect(30, 40, 100, 50))
		Apply(s, "p", "c", c, off)
		s.Solve()
		return s.Value(s.X("c"))
	}

	minX := solveX(Constraints{Horizontal: Min, Vertical: Min})
	scaleX := solveX(Constraints{Horizontal: Scale, Vertical: Scale})
	if !approx(minX, scaleX) {
		t.Errorf("scale x = %v, min x = %v, want identical", scaleX, minX)
	}
}

func TestApply_ModeSwitchRemovesStaleConstraints(t *testing.T) {
	// Switching stretch -> min must drop the stretch-specific far-edge
	// constraint; constraint count reflects exactly the active mode.
	s := solver.New()
	off := CalculateOffsets(geom.NewRect(0, 0, 400, 300), geom.NewRect(30, 40, 100, 50))

	Apply(s, "p", "c", Constraints{Horizontal: Stretch, Vertical: Stretch}, off)
	stretchCount := s.ConstraintCount()

	Apply(s, "p", "c", Constraints{Horizontal: Min, Vertical: Min}, off)
	minCount := s.ConstraintCount()

	if stretchCount != 4 {
		t.Errorf("stretch count = %d, want 4 (near+far per axis)", stretchCount)
	}
	if minCount != 2 {
		t.Errorf("min count = %d, want 2 (pos per axis)", minCount)
	}
}

func TestRemove_NoOpWhenAbsent(t *testing.T) {
	s := solver.New()
	Remove(s, "p", "c")
	if got := s.ConstraintCount(); got != 0 {
		t.Errorf("count = %d, want 0", got)
	}
}
