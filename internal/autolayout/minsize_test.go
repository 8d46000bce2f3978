package autolayout

import (
	"testing"

	"github.com/designlibre/layout/internal/geom"
)

func TestMinSize_Row(t *testing.T) {
	// Min width = left + sum(widths) + spacing*(n-1) + right.
	cfg := Config{
		Mode:        ModeHorizontal,
		ItemSpacing: 10,
		Padding:     geom.EdgeTRBL(2, 3, 4, 5),
		Children: []Child{
			{ID: "a", Width: 30, Height: 20},
			{ID: "b", Width: 50, Height: 45},
			{ID: "c", Width: 20, Height: 10},
		},
	}
	got := MinSize(cfg)
	if want := 5.0 + 100 + 20 + 3; got.Width != want {
		t.Errorf("width = %v, want %v", got.Width, want)
	}
	if want := 2.0 + 45 + 4; got.Height != want {
		t.Errorf("height = %v, want %v", got.Height, want)
	}
}

func TestMinSize_ColumnScenario(t *testing.T) {
	cfg := Config{
		Mode:        ModeVertical,
		ItemSpacing: 8,
		Children: []Child{
			{ID: "a", Width: 100, Height: 20},
			{ID: "b", Width: 100, Height: 30},
			{ID: "c", Width: 100, Height: 10},
		},
	}
	got := MinSize(cfg)
	if got.Height != 76 {
		t.Errorf("height = %v, want 76", got.Height)
	}
	if got.Width != 100 {
		t.Errorf("width = %v, want 100", got.Width)
	}
}

func TestMinSize_NoChildren(t *testing.T) {
	cfg := Config{
		Mode:    ModeHorizontal,
		Padding: geom.EdgeAll(7),
	}
	got := MinSize(cfg)
	if got.Width != 14 || got.Height != 14 {
		t.Errorf("size = %v, want {14 14}", got)
	}
}

func TestMinSize_IgnoresFlex(t *testing.T) {
	// Hug sizing uses natural (unflexed) sizes.
	cfg := Config{
		Mode: ModeHorizontal,
		Children: []Child{
			{ID: "a", Width: 30, FlexGrow: 5},
			{ID: "b", Width: 40, FlexGrow: 1},
		},
	}
	got := MinSize(cfg)
	if got.Width != 70 {
		t.Errorf("width = %v, want 70", got.Width)
	}
}

func TestNeedsRelayout_MainAxis(t *testing.T) {
	cfg := Config{
		Mode:     ModeHorizontal,
		Children: []Child{{ID: "a", Width: 10, Height: 10}},
	}
	oldSize := geom.Size{Width: 100, Height: 50}
	if !NeedsRelayout(cfg, oldSize, geom.Size{Width: 120, Height: 50}) {
		t.Error("main-axis change should need relayout")
	}
}

func TestNeedsRelayout_CrossAxis(t *testing.T) {
	cfg := Config{
		Mode:         ModeHorizontal,
		CounterAlign: AlignCenter,
		Children:     []Child{{ID: "a", Width: 10, Height: 10}},
	}
	oldSize := geom.Size{Width: 100, Height: 50}
	if !NeedsRelayout(cfg, oldSize, geom.Size{Width: 100, Height: 80}) {
		t.Error("cross-axis change with centered child should need relayout")
	}

	// All-baseline children keep their leading position under cross resize.
	baseline := AlignBaseline
	cfg.Children[0].AlignSelf = &baseline
	if NeedsRelayout(cfg, oldSize, geom.Size{Width: 100, Height: 80}) {
		t.Error("cross-axis change with baseline children should not need relayout")
	}
}

func TestNeedsRelayout_NoChange(t *testing.T) {
	cfg := Config{
		Mode:     ModeVertical,
		Children: []Child{{ID: "a", Width: 10, Height: 10}},
	}
	size := geom.Size{Width: 100, Height: 50}
	if NeedsRelayout(cfg, size, size) {
		t.Error("unchanged size should not need relayout")
	}
}
