package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/designlibre/layout"
)

// sceneDoc is the TOML schema for a scene file. Nodes are declared in
// document order; parents must appear before their children.
type sceneDoc struct {
	Nodes []nodeDoc `toml:"nodes"`
}

type nodeDoc struct {
	ID     string  `toml:"id"`
	Parent string  `toml:"parent"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	Pin        *pinDoc  `toml:"pin"`
	Flex       *flexDoc `toml:"flex"`
	AutoLayout *autoDoc `toml:"autolayout"`
}

type pinDoc struct {
	Horizontal string `toml:"horizontal"`
	Vertical   string `toml:"vertical"`
}

type flexDoc struct {
	Grow   float64 `toml:"grow"`
	Shrink float64 `toml:"shrink"`
	Align  string  `toml:"align"` // Optional align-self override
}

type autoDoc struct {
	Mode          string    `toml:"mode"`
	Spacing       float64   `toml:"spacing"`
	Padding       []float64 `toml:"padding"` // Top, right, bottom, left
	PrimaryAlign  string    `toml:"primary-align"`
	CounterAlign  string    `toml:"counter-align"`
	PrimarySizing string    `toml:"primary-sizing"`
	CounterSizing string    `toml:"counter-sizing"`
}

// loadScene parses a scene file into a populated MemScene plus an engine
// configured with its pin, flex, and auto-layout declarations.
func loadScene(path string) (*layout.MemScene, *layout.Engine, []layout.NodeID, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading scene: %w", err)
	}
	var doc sceneDoc
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, nil, fmt.Errorf("parsing scene: %w", err)
	}

	scene := layout.NewMemScene()
	engine, err := layout.NewEngine(scene)
	if err != nil {
		return nil, nil, nil, err
	}

	order := make([]layout.NodeID, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if n.ID == "" {
			return nil, nil, nil, fmt.Errorf("scene node without id")
		}
		id := scene.AddNode(layout.NodeData{
			ID:       layout.NodeID(n.ID),
			ParentID: layout.NodeID(n.Parent),
			X:        n.X,
			Y:        n.Y,
			Width:    n.Width,
			Height:   n.Height,
		})
		order = append(order, id)

		if n.Pin != nil {
			pc, err := parsePin(n.Pin)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("node %q: %w", n.ID, err)
			}
			engine.SetConstraints(id, pc)
		}
		if n.Flex != nil {
			engine.SetFlex(id, n.Flex.Grow, n.Flex.Shrink)
			if n.Flex.Align != "" {
				align, err := parseAlign(n.Flex.Align)
				if err != nil {
					return nil, nil, nil, fmt.Errorf("node %q: %w", n.ID, err)
				}
				engine.SetAlignSelf(id, &align)
			}
		}
		if n.AutoLayout != nil {
			cfg, err := parseAutoLayout(n.AutoLayout)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("node %q: %w", n.ID, err)
			}
			engine.SetAutoLayout(id, cfg)
		}
	}
	return scene, engine, order, nil
}

func parsePin(p *pinDoc) (layout.PinConstraints, error) {
	var pc layout.PinConstraints
	var err error
	if pc.Horizontal, err = parsePinMode(p.Horizontal); err != nil {
		return pc, err
	}
	pc.Vertical, err = parsePinMode(p.Vertical)
	return pc, err
}

func parsePinMode(s string) (layout.PinMode, error) {
	switch s {
	case "", "min":
		return layout.PinMin, nil
	case "max":
		return layout.PinMax, nil
	case "center":
		return layout.PinCenter, nil
	case "scale":
		return layout.PinScale, nil
	case "stretch":
		return layout.PinStretch, nil
	}
	return layout.PinMin, fmt.Errorf("unknown pin mode %q", s)
}

func parseAutoLayout(a *autoDoc) (layout.AutoLayoutConfig, error) {
	var cfg layout.AutoLayoutConfig
	switch a.Mode {
	case "horizontal", "row":
		cfg.Mode = layout.ModeHorizontal
	case "vertical", "column":
		cfg.Mode = layout.ModeVertical
	case "", "none":
		cfg.Mode = layout.ModeNone
	default:
		return cfg, fmt.Errorf("unknown layout mode %q", a.Mode)
	}

	cfg.ItemSpacing = a.Spacing
	if len(a.Padding) > 0 {
		if len(a.Padding) == 1 {
			cfg.Padding = layout.EdgeAll(a.Padding[0])
		} else if len(a.Padding) == 4 {
			cfg.Padding = layout.EdgeTRBL(a.Padding[0], a.Padding[1], a.Padding[2], a.Padding[3])
		} else {
			return cfg, fmt.Errorf("padding needs 1 or 4 values, got %d", len(a.Padding))
		}
	}

	switch a.PrimaryAlign {
	case "", "min":
		cfg.PrimaryAlign = layout.JustifyMin
	case "max":
		cfg.PrimaryAlign = layout.JustifyMax
	case "center":
		cfg.PrimaryAlign = layout.JustifyCenter
	case "space-between":
		cfg.PrimaryAlign = layout.JustifySpaceBetween
	default:
		return cfg, fmt.Errorf("unknown primary-align %q", a.PrimaryAlign)
	}

	var err error
	if cfg.CounterAlign, err = parseAlign(a.CounterAlign); err != nil {
		return cfg, err
	}
	if cfg.PrimarySizing, err = parseSizing(a.PrimarySizing); err != nil {
		return cfg, err
	}
	cfg.CounterSizing, err = parseSizing(a.CounterSizing)
	return cfg, err
}

func parseAlign(s string) (layout.Align, error) {
	switch s {
	case "", "min":
		return layout.AlignMin, nil
	case "max":
		return layout.AlignMax, nil
	case "center":
		return layout.AlignCenter, nil
	case "baseline":
		return layout.AlignBaseline, nil
	}
	return layout.AlignMin, fmt.Errorf("unknown align %q", s)
}

func parseSizing(s string) (layout.Sizing, error) {
	switch s {
	case "", "fixed":
		return layout.SizingFixed, nil
	case "auto", "hug":
		return layout.SizingAuto, nil
	}
	return layout.SizingFixed, fmt.Errorf("unknown sizing %q", s)
}
