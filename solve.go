package layout

import (
	"fmt"
	"slices"
	"time"

	"github.com/designlibre/layout/internal/autolayout"
	"github.com/designlibre/layout/internal/pin"
	"github.com/designlibre/layout/internal/solver"
)

// performLayoutLocked runs one recompute cycle and returns the lifecycle
// events to emit after the lock is released. The dirty set is cleared even
// when the pass fails, so a poisoned state cannot retry forever.
func (e *Engine) performLayoutLocked() []Event {
	if len(e.dirty) == 0 {
		return nil
	}
	start := time.Now()
	events := []Event{{Kind: LayoutStarted}}

	updated, err := e.runPassLocked()
	e.dirty = make(map[NodeID]struct{})

	if err != nil {
		if e.logger != nil {
			e.logger.Warn("layout pass failed", "err", err)
		}
		return append(events, Event{Kind: LayoutError, Err: err})
	}

	duration := time.Since(start)
	if e.logger != nil {
		e.logger.Debug("layout pass", "nodes", len(updated), "duration", duration)
	}
	return append(events,
		Event{Kind: LayoutUpdated, NodeIDs: updated},
		Event{Kind: LayoutCompleted, Duration: duration},
	)
}

// runPassLocked rebuilds the solver from scratch, processes the dirty
// closure parent-first, solves once, and reads results back into the cache.
func (e *Engine) runPassLocked() (updated []NodeID, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("layout pass: %v", r)
		}
	}()

	closure := e.closureLocked()
	e.solver.Clear()
	order := e.topoOrderLocked(closure)

	// Children an auto-layout container resolved directly this cycle; they
	// skip solver readback entirely.
	autoChildren := make(map[NodeID]struct{})
	processed := make(map[NodeID]struct{})
	for _, id := range order {
		if e.processNodeLocked(id, closure, autoChildren) {
			processed[id] = struct{}{}
		}
	}

	// Pending drag suggestions bind to the symbols this pass just minted.
	// Strong edit preferences, so Required pins still win.
	for id, p := range e.suggestions {
		if _, ok := processed[id]; !ok {
			continue
		}
		sid := string(id)
		e.solver.SuggestValue(e.solver.X(sid), p.X)
		e.solver.SuggestValue(e.solver.Y(sid), p.Y)
		delete(e.suggestions, id)
	}

	e.solver.Solve()

	for _, id := range order {
		if _, ok := processed[id]; !ok {
			continue
		}
		if _, ok := autoChildren[id]; ok {
			updated = append(updated, id)
			continue
		}
		d := e.data[id]
		if d == nil {
			continue
		}
		d.X, d.Y, d.Width, d.Height = e.solver.NodeLayout(string(id))
		updated = append(updated, id)
	}
	return updated, nil
}

// closureLocked expands the dirty set with every ancestor (constraint chains
// reach up the tree) and every descendant (auto-layout and stretch propagate
// down). Nodes no longer in the scene are skipped.
func (e *Engine) closureLocked() map[NodeID]struct{} {
	closure := make(map[NodeID]struct{})
	for id := range e.dirty {
		if _, ok := e.scene.GetNode(id); !ok {
			continue
		}
		closure[id] = struct{}{}
		for _, anc := range e.scene.Ancestors(id) {
			closure[anc.ID] = struct{}{}
		}
		for _, desc := range e.scene.Descendants(id) {
			closure[desc.ID] = struct{}{}
		}
	}
	return closure
}

// topoOrderLocked sorts the closure so every parent precedes its children.
// Seeding from sorted IDs keeps the order deterministic.
func (e *Engine) topoOrderLocked(closure map[NodeID]struct{}) []NodeID {
	ids := make([]NodeID, 0, len(closure))
	for id := range closure {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	order := make([]NodeID, 0, len(closure))
	visited := make(map[NodeID]struct{}, len(closure))
	var visit func(id NodeID)
	visit = func(id NodeID) {
		if _, ok := visited[id]; ok {
			return
		}
		visited[id] = struct{}{}
		if node, ok := e.scene.GetNode(id); ok && node.ParentID != "" {
			if _, in := closure[node.ParentID]; in {
				visit(node.ParentID)
			}
		}
		order = append(order, id)
	}
	for _, id := range ids {
		visit(id)
	}
	return order
}

// processNodeLocked registers one node's constraints, and for auto-layout
// containers resolves child geometry directly. Returns false when the node
// vanished from the scene (skipped this cycle).
func (e *Engine) processNodeLocked(id NodeID, closure, autoChildren map[NodeID]struct{}) bool {
	node, ok := e.scene.GetNode(id)
	if !ok {
		return false
	}
	d := e.ensureDataLocked(id)
	if d == nil {
		return false
	}

	// Auto-layout containers first hug their content if asked, so the weak
	// anchors below capture the resized dimensions.
	var placements []autolayout.Placement
	if d.AutoLayout != nil && d.AutoLayout.Mode != ModeNone {
		cfg := e.buildConfigLocked(id, d)
		e.hugContentLocked(id, d, cfg)
		placements = autolayout.Calculate(cfg)
	}

	// Weak anchors keep the solve near current state when nothing else pins
	// a variable.
	sid := string(id)
	s := e.solver
	s.AddValueConstraint("anchor:"+sid+":x", s.X(sid), d.X, solver.Weak)
	s.AddValueConstraint("anchor:"+sid+":y", s.Y(sid), d.Y, solver.Weak)
	s.AddValueConstraint("anchor:"+sid+":width", s.Width(sid), d.Width, solver.Weak)
	s.AddValueConstraint("anchor:"+sid+":height", s.Height(sid), d.Height, solver.Weak)

	if node.ParentID != "" {
		if _, in := closure[node.ParentID]; in {
			pd := e.data[node.ParentID]
			switch {
			case pd == nil:
				// Parent skipped this cycle; leave the node anchored.
			case pd.AutoLayout != nil && pd.AutoLayout.Mode != ModeNone:
				// Positioned exclusively by the parent's auto-layout branch.
			default:
				pc := PinConstraints{}
				if d.Constraints != nil {
					pc = *d.Constraints
				}
				if d.pinOffsets == nil {
					off := pin.CalculateOffsets(pd.Bounds(), d.Bounds())
					d.pinOffsets = &off
				}
				pin.Apply(s, string(node.ParentID), sid, pc, *d.pinOffsets)
			}
		}
	}

	// Resolved auto-layout geometry goes straight into the cache and the
	// scene graph; the solver never sees these children's results.
	for _, p := range placements {
		cid := NodeID(p.ID)
		cd := e.ensureDataLocked(cid)
		if cd == nil {
			continue
		}
		cd.X = d.X + p.X
		cd.Y = d.Y + p.Y
		cd.Width = p.Width
		cd.Height = p.Height
		cd.pinOffsets = nil
		x, y, w, h := cd.X, cd.Y, cd.Width, cd.Height
		e.scene.UpdateNode(cid, NodeUpdate{X: &x, Y: &y, Width: &w, Height: &h})
		autoChildren[cid] = struct{}{}
	}
	return true
}

// hugContentLocked resizes a container to its content on axes with
// SizingAuto and pushes the new size to the scene graph.
func (e *Engine) hugContentLocked(id NodeID, d *NodeLayoutData, cfg autolayout.Config) {
	al := d.AutoLayout
	if al.PrimarySizing != SizingAuto && al.CounterSizing != SizingAuto {
		return
	}
	ms := autolayout.MinSize(cfg)
	isRow := al.Mode == ModeHorizontal
	if al.PrimarySizing == SizingAuto {
		if isRow {
			d.Width = ms.Width
		} else {
			d.Height = ms.Height
		}
	}
	if al.CounterSizing == SizingAuto {
		if isRow {
			d.Height = ms.Height
		} else {
			d.Width = ms.Width
		}
	}
	w, h := d.Width, d.Height
	e.scene.UpdateNode(id, NodeUpdate{Width: &w, Height: &h})
}

// buildConfigLocked assembles the transient auto-layout input for a
// container from its cached config, its children's cached geometry, and the
// scene's child order.
func (e *Engine) buildConfigLocked(id NodeID, d *NodeLayoutData) autolayout.Config {
	al := d.AutoLayout
	cfg := autolayout.Config{
		Mode:         al.Mode,
		ItemSpacing:  al.ItemSpacing,
		Padding:      al.Padding,
		PrimaryAlign: al.PrimaryAlign,
		CounterAlign: al.CounterAlign,
	}

	isRow := al.Mode == ModeHorizontal
	if al.PrimarySizing == SizingFixed {
		if isRow {
			w := d.Width
			cfg.Width = &w
		} else {
			h := d.Height
			cfg.Height = &h
		}
	}
	if al.CounterSizing == SizingFixed {
		if isRow {
			h := d.Height
			cfg.Height = &h
		} else {
			w := d.Width
			cfg.Width = &w
		}
	}

	for _, cid := range e.scene.ChildIDs(id) {
		child := autolayout.Child{ID: string(cid)}
		if cd, ok := e.data[cid]; ok {
			child.Width, child.Height = cd.Width, cd.Height
			child.FlexGrow, child.FlexShrink = cd.FlexGrow, cd.FlexShrink
			child.AlignSelf = cd.AlignSelf
		} else if node, ok := e.scene.GetNode(cid); ok {
			child.Width, child.Height = node.Width, node.Height
		} else {
			continue
		}
		cfg.Children = append(cfg.Children, child)
	}
	return cfg
}
