// Package pin translates per-axis pinning modes into solver constraints.
//
// A pinned child tracks its parent's edges when the parent resizes. Each axis
// carries one of five modes; both axes are applied and removed together under
// a deterministic ID scheme so repeated registration per layout pass never
// leaks stale constraint variants.
package pin

import (
	"github.com/designlibre/layout/internal/geom"
	"github.com/designlibre/layout/internal/solver"
)

// Type is a per-axis pinning mode.
type Type uint8

const (
	Min     Type = iota // Fixed distance from the near edge
	Max                 // Fixed distance from the far edge
	Center              // Child center tracks parent center
	Scale               // Same formula as Min; see Apply
	Stretch             // Both edges pinned, child resizes with parent
)

// String returns the lowercase mode name.
func (t Type) String() string {
	switch t {
	case Min:
		return "min"
	case Max:
		return "max"
	case Center:
		return "center"
	case Scale:
		return "scale"
	case Stretch:
		return "stretch"
	default:
		return "unknown"
	}
}

// Constraints holds the pin mode for each axis. The zero value pins to the
// top-left with fixed offsets (Min/Min).
type Constraints struct {
	Horizontal Type
	Vertical   Type
}

// Offsets captures a child's original distances to its parent's edges, plus
// the child's size at capture time. These feed the pin formulas and must be
// recomputed whenever either node's authoritative bounds change.
type Offsets struct {
	Left, Right float64
	Top, Bottom float64
	Width       float64
	Height      float64
}

// CalculateOffsets derives Offsets from the current parent and child bounds.
func CalculateOffsets(parent, child geom.Rect) Offsets {
	return Offsets{
		Left:   child.X - parent.X,
		Right:  parent.Right() - child.Right(),
		Top:    child.Y - parent.Y,
		Bottom: parent.Bottom() - child.Bottom(),
		Width:  child.Width,
		Height: child.Height,
	}
}

// Apply registers both axes' constraints for child relative to parent.
// Scale intentionally reuses the Min formula: true proportional scaling would
// need the parent size at offset-capture time, which is not recorded. Do not
// "fix" this without changing the capture model.
func Apply(s *solver.Adapter, parent, child string, c Constraints, off Offsets) {
	Remove(s, parent, child)

	hID := "hconstraint:" + parent + ":" + child
	switch c.Horizontal {
	case Max:
		// child.right == parent.right - off.Right
		expr := s.Right(child).
			Plus(solver.T(s.X(parent), -1)).
			Plus(solver.T(s.Width(parent), -1)).
			Offset(off.Right)
		s.AddEquality(hID+":pos", expr, solver.Required)
	case Center:
		// child.centerX == parent.centerX
		expr := s.CenterX(child).
			Plus(solver.T(s.X(parent), -1)).
			Plus(solver.T(s.Width(parent), -0.5))
		s.AddEquality(hID+":pos", expr, solver.Required)
	case Stretch:
		s.AddRelationConstraint(hID+":near", s.X(child), s.X(parent), off.Left, solver.Required)
		expr := s.Right(child).
			Plus(solver.T(s.X(parent), -1)).
			Plus(solver.T(s.Width(parent), -1)).
			Offset(off.Right)
		s.AddEquality(hID+":far", expr, solver.Required)
	default: // Min, Scale
		s.AddRelationConstraint(hID+":pos", s.X(child), s.X(parent), off.Left, solver.Required)
	}

	vID := "vconstraint:" + parent + ":" + child
	switch c.Vertical {
	case Max:
		expr := s.Bottom(child).
			Plus(solver.T(s.Y(parent), -1)).
			Plus(solver.T(s.Height(parent), -1)).
			Offset(off.Bottom)
		s.AddEquality(vID+":pos", expr, solver.Required)
	case Center:
		expr := s.CenterY(child).
			Plus(solver.T(s.Y(parent), -1)).
			Plus(solver.T(s.Height(parent), -0.5))
		s.AddEquality(vID+":pos", expr, solver.Required)
	case Stretch:
		s.AddRelationConstraint(vID+":near", s.Y(child), s.Y(parent), off.Top, solver.Required)
		expr := s.Bottom(child).
			Plus(solver.T(s.Y(parent), -1)).
			Plus(solver.T(s.Height(parent), -1)).
			Offset(off.Bottom)
		s.AddEquality(vID+":far", expr, solver.Required)
	default: // Min, Scale
		s.AddRelationConstraint(vID+":pos", s.Y(child), s.Y(parent), off.Top, solver.Required)
	}
}

// Remove clears every constraint variant both axes may have registered,
// including mode-specific sub-constraints from a previous mode.
func Remove(s *solver.Adapter, parent, child string) {
	hID := "hconstraint:" + parent + ":" + child
	vID := "vconstraint:" + parent + ":" + child
	for _, suffix := range [...]string{":pos", ":near", ":far"} {
		s.RemoveConstraint(hID + suffix)
		s.RemoveConstraint(vID + suffix)
	}
}
