// layout.go re-exports types from the internal packages.
// Any changes to internal types must be mirrored here.
package layout

import (
	"github.com/designlibre/layout/internal/autolayout"
	"github.com/designlibre/layout/internal/geom"
	"github.com/designlibre/layout/internal/pin"
)

// LayoutMode specifies the layout direction for a container's children.
type LayoutMode = autolayout.Mode

const (
	ModeNone       = autolayout.ModeNone
	ModeHorizontal = autolayout.ModeHorizontal
	ModeVertical   = autolayout.ModeVertical
)

// Justify specifies how children are distributed along the main axis.
type Justify = autolayout.Justify

const (
	JustifyMin          = autolayout.JustifyMin
	JustifyMax          = autolayout.JustifyMax
	JustifyCenter       = autolayout.JustifyCenter
	JustifySpaceBetween = autolayout.JustifySpaceBetween
)

// Align specifies how children are positioned on the cross axis.
type Align = autolayout.Align

const (
	AlignMin      = autolayout.AlignMin
	AlignMax      = autolayout.AlignMax
	AlignCenter   = autolayout.AlignCenter
	AlignBaseline = autolayout.AlignBaseline
)

// Sizing specifies whether a container dimension is fixed or hugs content.
type Sizing = autolayout.Sizing

const (
	SizingFixed = autolayout.SizingFixed
	SizingAuto  = autolayout.SizingAuto
)

// Placement is the resolved geometry for one auto-layout child, relative to
// the container's origin.
type Placement = autolayout.Placement

// PinMode is a per-axis pinning rule describing how a child tracks its
// parent's edges.
type PinMode = pin.Type

const (
	PinMin     = pin.Min
	PinMax     = pin.Max
	PinCenter  = pin.Center
	PinScale   = pin.Scale
	PinStretch = pin.Stretch
)

// PinConstraints holds the pin mode for each axis. The zero value pins to
// the top-left with fixed offsets.
type PinConstraints = pin.Constraints

// Rect represents a rectangle in canvas coordinates.
type Rect = geom.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = geom.Edges

// Size represents a width/height pair.
type Size = geom.Size

// Point represents an (X, Y) coordinate.
type Point = geom.Point

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return geom.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return geom.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return geom.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return geom.EdgeTRBL(t, r, b, l)
}
