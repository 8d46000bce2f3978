package autolayout

import "github.com/designlibre/layout/internal/geom"

// Mode specifies the layout direction for a container's children.
type Mode uint8

const (
	ModeNone       Mode = iota // Children positioned by pin constraints
	ModeHorizontal             // Children laid out left-to-right
	ModeVertical               // Children laid out top-to-bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyMin          Justify = iota // Pack at the leading padding edge
	JustifyMax                         // Pack at the trailing edge
	JustifyCenter                      // Center the flexed block
	JustifySpaceBetween                // Expand gaps to consume free space
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignMin      Align = iota // Align to the leading padding edge
	AlignMax                   // Align to the trailing edge
	AlignCenter                // Center within available cross space
	AlignBaseline              // Treated as AlignMin
)

// Sizing specifies whether a container dimension is fixed or hugs content.
type Sizing uint8

const (
	SizingFixed Sizing = iota // Dimension set explicitly
	SizingAuto                // Dimension derived from content (hug)
)

// Child describes one participant in a container's layout.
type Child struct {
	ID            string
	Width, Height float64 // Intrinsic size
	FlexGrow      float64
	FlexShrink    float64
	AlignSelf     *Align // Override container's CounterAlign (nil = inherit)
}

// Config is the full input to a layout calculation. It is constructed
// transiently per pass and never stored.
type Config struct {
	Mode         Mode
	ItemSpacing  float64
	Padding      geom.Edges
	PrimaryAlign Justify
	CounterAlign Align

	// Explicit container dimensions. When nil the container is content-sized
	// on that axis.
	Width  *float64
	Height *float64

	Children []Child
}

// Placement is the resolved geometry for one child, relative to the
// container's origin (padding already applied). Order matches Config.Children.
type Placement struct {
	ID            string
	X, Y          float64
	Width, Height float64
}

// effectiveAlign returns the cross-axis alignment for a child, falling back
// to the container's CounterAlign when the child has no override.
func (c Child) effectiveAlign(container Align) Align {
	if c.AlignSelf != nil {
		return *c.AlignSelf
	}
	return container
}
