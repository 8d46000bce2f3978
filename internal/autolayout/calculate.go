package autolayout

import "github.com/designlibre/layout/internal/geom"

// flexItem holds intermediate calculation state for a child.
// This is stack-allocated per layout call, not stored anywhere.
type flexItem struct {
	mainSize  float64
	crossSize float64
	grow      float64
	shrink    float64
}

// Calculate maps a container configuration to resolved child geometry.
// Positions are relative to the container's origin with padding applied, so
// the first child of a JustifyMin row starts at x = Padding.Left.
func Calculate(cfg Config) []Placement {
	if len(cfg.Children) == 0 || cfg.Mode == ModeNone {
		return nil
	}

	isRow := cfg.Mode == ModeHorizontal
	n := len(cfg.Children)

	// Phase 1: intrinsic content size on both axes.
	items := make([]flexItem, n)
	naturalMain := 0.0
	maxCross := 0.0
	for i, child := range cfg.Children {
		item := &items[i]
		if isRow {
			item.mainSize = child.Width
			item.crossSize = child.Height
		} else {
			item.mainSize = child.Height
			item.crossSize = child.Width
		}
		item.grow = child.FlexGrow
		item.shrink = child.FlexShrink
		naturalMain += item.mainSize
		if item.crossSize > maxCross {
			maxCross = item.crossSize
		}
	}
	naturalMain += cfg.ItemSpacing * float64(n-1)

	// Phase 2: available space. Explicit container dimensions win (minus
	// padding, deliberately not clamped at zero so forced overlap stays
	// representable); otherwise the container is content-sized on that axis.
	availMain := naturalMain
	availCross := maxCross
	mainPad, crossPad := axisPadding(cfg.Padding, isRow)
	if explicit := mainDimension(cfg, isRow); explicit != nil {
		availMain = *explicit - mainPad
	}
	if explicit := crossDimension(cfg, isRow); explicit != nil {
		availCross = *explicit - crossPad
	}

	// Phase 3: flex distribution. Children with grow 0 count as fixed, along
	// with all inter-item spacing.
	totalGrow := 0.0
	totalShrink := 0.0
	fixedMain := cfg.ItemSpacing * float64(n-1)
	for i := range items {
		if items[i].grow > 0 {
			totalGrow += items[i].grow
		} else {
			fixedMain += items[i].mainSize
		}
		totalShrink += items[i].shrink
	}
	remaining := availMain - fixedMain

	if remaining > 0 && totalGrow > 0 {
		// Growing children split the full available size proportionally.
		// This is not canonical flexbox (which distributes only the
		// remainder); downstream numeric behavior depends on it.
		for i := range items {
			if items[i].grow > 0 {
				items[i].mainSize = items[i].grow / totalGrow * availMain
			}
		}
	} else if remaining < 0 && totalShrink > 0 {
		// Shrink proportionally, flooring each child at zero. Leftover
		// deficit from floored children is not rebalanced.
		deficit := -remaining
		for i := range items {
			if items[i].shrink > 0 {
				items[i].mainSize -= deficit * items[i].shrink / totalShrink
				if items[i].mainSize < 0 {
					items[i].mainSize = 0
				}
			}
		}
	}

	// Phase 4: main-axis start offset and inter-item gap.
	flexedMain := 0.0
	for i := range items {
		flexedMain += items[i].mainSize
	}
	blockMain := flexedMain + cfg.ItemSpacing*float64(n-1)

	leadMain, leadCross := leadingPadding(cfg.Padding, isRow)
	cursor := leadMain
	gap := cfg.ItemSpacing
	switch cfg.PrimaryAlign {
	case JustifyMax:
		cursor += availMain - blockMain
	case JustifyCenter:
		cursor += (availMain - blockMain) / 2
	case JustifySpaceBetween:
		if n > 1 {
			gap = (availMain - flexedMain) / float64(n-1)
		}
	}

	// Phase 5: emit placements, advancing the main cursor per child and
	// positioning each child on the cross axis per its effective alignment.
	results := make([]Placement, n)
	for i, child := range cfg.Children {
		crossPos := leadCross
		switch child.effectiveAlign(cfg.CounterAlign) {
		case AlignMax:
			crossPos += availCross - items[i].crossSize
		case AlignCenter:
			crossPos += (availCross - items[i].crossSize) / 2
		}

		p := Placement{ID: child.ID}
		if isRow {
			p.X = cursor
			p.Y = crossPos
			p.Width = items[i].mainSize
			p.Height = items[i].crossSize
		} else {
			p.X = crossPos
			p.Y = cursor
			p.Width = items[i].crossSize
			p.Height = items[i].mainSize
		}
		results[i] = p

		cursor += items[i].mainSize + gap
	}

	return results
}

// MinSize returns the container size that exactly hugs the natural (unflexed)
// content: padding plus the intrinsic sum along the main axis and the
// intrinsic max along the cross axis.
func MinSize(cfg Config) geom.Size {
	size := geom.Size{
		Width:  cfg.Padding.Horizontal(),
		Height: cfg.Padding.Vertical(),
	}
	if len(cfg.Children) == 0 || cfg.Mode == ModeNone {
		return size
	}

	isRow := cfg.Mode == ModeHorizontal
	naturalMain := cfg.ItemSpacing * float64(len(cfg.Children)-1)
	maxCross := 0.0
	for _, child := range cfg.Children {
		if isRow {
			naturalMain += child.Width
			if child.Height > maxCross {
				maxCross = child.Height
			}
		} else {
			naturalMain += child.Height
			if child.Width > maxCross {
				maxCross = child.Width
			}
		}
	}

	if isRow {
		size.Width += naturalMain
		size.Height += maxCross
	} else {
		size.Width += maxCross
		size.Height += naturalMain
	}
	return size
}

// NeedsRelayout reports whether a container resize can change child placement.
// A main-axis change always can. A cross-axis change only matters when some
// child's effective alignment is not baseline, since baseline children keep
// their leading-edge position.
func NeedsRelayout(cfg Config, oldSize, newSize geom.Size) bool {
	if cfg.Mode == ModeNone {
		return false
	}
	isRow := cfg.Mode == ModeHorizontal

	oldMain, oldCross := oldSize.Width, oldSize.Height
	newMain, newCross := newSize.Width, newSize.Height
	if !isRow {
		oldMain, oldCross = oldCross, oldMain
		newMain, newCross = newCross, newMain
	}

	if oldMain != newMain {
		return true
	}
	if oldCross != newCross {
		for _, child := range cfg.Children {
			if child.effectiveAlign(cfg.CounterAlign) != AlignBaseline {
				return true
			}
		}
	}
	return false
}

// axisPadding returns total padding on the (main, cross) axes.
func axisPadding(p geom.Edges, isRow bool) (float64, float64) {
	if isRow {
		return p.Horizontal(), p.Vertical()
	}
	return p.Vertical(), p.Horizontal()
}

// leadingPadding returns the leading padding on the (main, cross) axes.
func leadingPadding(p geom.Edges, isRow bool) (float64, float64) {
	if isRow {
		return p.Left, p.Top
	}
	return p.Top, p.Left
}

// mainDimension returns the explicit container dimension on the main axis, or nil.
func mainDimension(cfg Config, isRow bool) *float64 {
	if isRow {
		return cfg.Width
	}
	return cfg.Height
}

// crossDimension returns the explicit container dimension on the cross axis, or nil.
func crossDimension(cfg Config, isRow bool) *float64 {
	if isRow {
		return cfg.Height
	}
	return cfg.Width
}
