package layout

import "github.com/designlibre/layout/internal/pin"

// AutoLayoutConfig is a container's persistent auto-layout configuration.
// Children, explicit sizes, and flex factors are assembled transiently per
// pass; this struct holds only what the container itself declares.
type AutoLayoutConfig struct {
	Mode         LayoutMode
	ItemSpacing  float64
	Padding      Edges
	PrimaryAlign Justify
	CounterAlign Align

	// Sizing on the primary/counter axis. SizingAuto means the engine
	// resizes the container to hug its content before placing children.
	PrimarySizing Sizing
	CounterSizing Sizing
}

// NodeLayoutData is the engine's cached resolved state for one node. It is a
// cache, not the source of truth: the scene graph stays authoritative for
// node existence and rendered geometry.
type NodeLayoutData struct {
	X, Y          float64
	Width, Height float64

	// Constraints holds per-axis pin modes for constraint-based parents.
	// Nil means the default: pinned top-left with fixed offsets.
	Constraints *PinConstraints

	// AutoLayout, when non-nil with Mode != ModeNone, makes this node a
	// container whose children bypass pin constraints entirely.
	AutoLayout *AutoLayoutConfig

	// Flex item properties, consumed by the parent's auto-layout.
	FlexGrow   float64
	FlexShrink float64
	AlignSelf  *Align

	// pinOffsets is the captured original offset from the parent, feeding
	// pin constraints. Lazily computed from a consistent cache snapshot and
	// invalidated whenever this node's own geometry or constraints change,
	// so a parent mutation solves against the child's original margins.
	pinOffsets *pin.Offsets
}

// Bounds returns the cached geometry as a Rect.
func (d *NodeLayoutData) Bounds() Rect {
	return NewRect(d.X, d.Y, d.Width, d.Height)
}

// Size returns the cached dimensions.
func (d *NodeLayoutData) Size() Size {
	return Size{Width: d.Width, Height: d.Height}
}

// clone returns a copy safe to hand to callers without exposing cache
// internals to mutation.
func (d *NodeLayoutData) clone() *NodeLayoutData {
	out := *d
	if d.Constraints != nil {
		c := *d.Constraints
		out.Constraints = &c
	}
	if d.AutoLayout != nil {
		a := *d.AutoLayout
		out.AutoLayout = &a
	}
	if d.AlignSelf != nil {
		s := *d.AlignSelf
		out.AlignSelf = &s
	}
	return &out
}
