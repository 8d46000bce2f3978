package layout

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/designlibre/layout/internal/autolayout"
	"github.com/designlibre/layout/internal/solver"
)

// Engine owns per-node layout state and orchestrates recomputation. It
// subscribes to scene-graph mutations, tracks dirty nodes, coalesces bursts
// of changes into one deferred solve, and writes resolved geometry back into
// both its cache and the scene graph.
//
// All engine state is guarded by one mutex; the deferred pass runs on a
// timer goroutine but never overlaps with callers. Scene reads during that
// pass rely on the SceneGraph concurrency contract.
type Engine struct {
	mu    sync.Mutex
	scene SceneGraph

	solver *solver.Adapter
	data   map[NodeID]*NodeLayoutData
	dirty  map[NodeID]struct{}

	// suggestions holds pending drag coordinates, applied as strong edit
	// preferences during the next pass and consumed by it.
	suggestions map[NodeID]Point

	events        *Events[Event]
	logger        *log.Logger
	frameInterval time.Duration

	timer    *time.Timer
	pending  bool
	disposed bool
}

// NewEngine creates an engine bound to the given scene graph and subscribes
// to its mutation stream.
func NewEngine(scene SceneGraph, opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		scene:         scene,
		solver:        solver.New(),
		data:          make(map[NodeID]*NodeLayoutData),
		dirty:         make(map[NodeID]struct{}),
		suggestions:   make(map[NodeID]Point),
		events:        NewEvents[Event](),
		frameInterval: 16 * time.Millisecond,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	scene.Subscribe(e.onMutation)
	return e, nil
}

// Events returns the engine's lifecycle event bus.
func (e *Engine) Events() *Events[Event] {
	return e.events
}

// GetLayout returns a copy of the cached layout data for a node, or nil when
// none exists. It never triggers recomputation.
func (e *Engine) GetLayout(id NodeID) *NodeLayoutData {
	e.mu.Lock()
	defer e.mu.Unlock()
	d, ok := e.data[id]
	if !ok {
		return nil
	}
	return d.clone()
}

// SetConstraints sets a node's per-axis pin modes and marks it dirty.
func (e *Engine) SetConstraints(id NodeID, c PinConstraints) {
	e.withDirty(id, func(d *NodeLayoutData) {
		d.Constraints = &c
		d.pinOffsets = nil
	})
}

// SetAutoLayout enables auto-layout on a container and marks it and its
// subtree dirty.
func (e *Engine) SetAutoLayout(id NodeID, cfg AutoLayoutConfig) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return
	}
	d := e.ensureDataLocked(id)
	if d == nil {
		return
	}
	d.AutoLayout = &cfg
	e.markDirtyWithChildrenLocked(id)
	e.scheduleLocked()
}

// ClearAutoLayout disables auto-layout on a container and marks it and its
// subtree dirty.
func (e *Engine) ClearAutoLayout(id NodeID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return
	}
	d := e.ensureDataLocked(id)
	if d == nil {
		return
	}
	d.AutoLayout = nil
	e.markDirtyWithChildrenLocked(id)
	e.scheduleLocked()
}

// SetFlex sets a node's flex factors, consumed by an auto-layout parent.
func (e *Engine) SetFlex(id NodeID, grow, shrink float64) {
	e.withDirty(id, func(d *NodeLayoutData) {
		d.FlexGrow = grow
		d.FlexShrink = shrink
	})
}

// SetAlignSelf overrides the parent container's cross-axis alignment for
// this node. Pass nil to inherit again.
func (e *Engine) SetAlignSelf(id NodeID, align *Align) {
	e.withDirty(id, func(d *NodeLayoutData) {
		d.AlignSelf = align
	})
}

// SetPosition moves a node and marks it dirty. It also ends any drag
// gesture on the node, discarding a pending suggestion.
func (e *Engine) SetPosition(id NodeID, x, y float64) {
	e.withDirty(id, func(d *NodeLayoutData) {
		d.X = x
		d.Y = y
		d.pinOffsets = nil
		delete(e.suggestions, id)
	})
}

// SetSize resizes a node and marks its subtree dirty. A resize of a root
// auto-layout container that provably cannot shift any child skips
// scheduling entirely: its children keep their placements and there are no
// ancestors to reflow, so the cache update above is the whole effect.
func (e *Engine) SetSize(id NodeID, width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return
	}
	d := e.ensureDataLocked(id)
	if d == nil {
		return
	}
	oldSize := d.Size()
	d.Width = width
	d.Height = height
	d.pinOffsets = nil

	if d.AutoLayout != nil && d.AutoLayout.Mode != ModeNone {
		cfg := e.buildConfigLocked(id, d)
		if !autolayout.NeedsRelayout(cfg, oldSize, d.Size()) {
			if node, ok := e.scene.GetNode(id); ok && node.ParentID == "" {
				return
			}
		}
	}
	e.markDirtyWithChildrenLocked(id)
	e.scheduleLocked()
}

// SuggestPosition proposes interactive drag coordinates for a node. The
// suggestion is applied as a strong edit preference during the next pass,
// so Required pin constraints still win. SetPosition ends the gesture.
func (e *Engine) SuggestPosition(id NodeID, x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return
	}
	if _, ok := e.scene.GetNode(id); !ok {
		return
	}
	e.suggestions[id] = Point{X: x, Y: y}
	e.markDirtyLocked(id)
	e.scheduleLocked()
}

// MarkDirty marks a single node for recomputation on the next cycle.
func (e *Engine) MarkDirty(id NodeID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return
	}
	e.markDirtyLocked(id)
	e.scheduleLocked()
}

// MarkDirtyWithChildren marks a node and its full descendant subtree.
func (e *Engine) MarkDirtyWithChildren(id NodeID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return
	}
	e.markDirtyWithChildrenLocked(id)
	e.scheduleLocked()
}

// CalculateContainerAutoLayout computes child placements for a container
// from current cached state, without mutating anything. Returns nil when the
// node has no active auto-layout.
func (e *Engine) CalculateContainerAutoLayout(id NodeID) []Placement {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return nil
	}
	d, ok := e.data[id]
	if !ok || d.AutoLayout == nil || d.AutoLayout.Mode == ModeNone {
		return nil
	}
	return autolayout.Calculate(e.buildConfigLocked(id, d))
}

// AutoLayoutMinSize returns the hug-content size for a container, and false
// when the node has no active auto-layout.
func (e *Engine) AutoLayoutMinSize(id NodeID) (Size, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return Size{}, false
	}
	d, ok := e.data[id]
	if !ok || d.AutoLayout == nil || d.AutoLayout.Mode == ModeNone {
		return Size{}, false
	}
	return autolayout.MinSize(e.buildConfigLocked(id, d)), true
}

// LayoutNow cancels any pending deferred pass and recomputes synchronously.
func (e *Engine) LayoutNow() {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	e.pending = false
	events := e.performLayoutLocked()
	e.mu.Unlock()

	for _, ev := range events {
		e.events.Emit(ev)
	}
}

// Dispose cancels pending work, resets the solver, and clears all caches.
// Subsequent public calls are no-ops.
func (e *Engine) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return
	}
	e.disposed = true
	e.pending = false
	if e.timer != nil {
		e.timer.Stop()
	}
	e.solver.Reset()
	e.data = make(map[NodeID]*NodeLayoutData)
	e.dirty = make(map[NodeID]struct{})
	e.suggestions = make(map[NodeID]Point)
}

// withDirty runs a cache mutation under the lock, marks the node dirty, and
// schedules a pass.
func (e *Engine) withDirty(id NodeID, fn func(*NodeLayoutData)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return
	}
	d := e.ensureDataLocked(id)
	if d == nil {
		return
	}
	fn(d)
	e.markDirtyLocked(id)
	e.scheduleLocked()
}

// ensureDataLocked returns the cache entry for a node, creating it from the
// scene graph's current geometry when absent. Returns nil when the node does
// not exist in the scene.
func (e *Engine) ensureDataLocked(id NodeID) *NodeLayoutData {
	if d, ok := e.data[id]; ok {
		return d
	}
	node, ok := e.scene.GetNode(id)
	if !ok {
		return nil
	}
	d := &NodeLayoutData{X: node.X, Y: node.Y, Width: node.Width, Height: node.Height}
	e.data[id] = d
	return d
}

// onMutation is the scene-graph subscription callback.
func (e *Engine) onMutation(mut Mutation) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return
	}

	switch mut.Kind {
	case NodeCreated:
		if e.ensureDataLocked(mut.NodeID) == nil {
			return
		}
		e.markDirtyLocked(mut.NodeID)

	case NodeDeleted:
		delete(e.data, mut.NodeID)
		delete(e.dirty, mut.NodeID)
		delete(e.suggestions, mut.NodeID)
		if mut.ParentID == "" {
			return
		}
		// Siblings reflow under the former parent.
		e.markDirtyWithChildrenLocked(mut.ParentID)

	case NodePropertyChanged:
		if !relevantPath(mut.Path) {
			return
		}
		d := e.ensureDataLocked(mut.NodeID)
		if d == nil {
			return
		}
		if node, ok := e.scene.GetNode(mut.NodeID); ok {
			d.X, d.Y = node.X, node.Y
			d.Width, d.Height = node.Width, node.Height
			d.pinOffsets = nil
		}
		if mut.Path == "width" || mut.Path == "height" {
			e.markDirtyWithChildrenLocked(mut.NodeID)
		} else {
			e.markDirtyLocked(mut.NodeID)
		}

	case NodeParentChanged:
		if d, ok := e.data[mut.NodeID]; ok {
			d.pinOffsets = nil
		}
		e.markDirtyWithChildrenLocked(mut.NodeID)
	}

	e.scheduleLocked()
}

// relevantPath reports whether a property change affects layout.
func relevantPath(path string) bool {
	switch path {
	case "x", "y", "width", "height", "rotation":
		return true
	}
	return strings.HasPrefix(path, "autoLayout")
}
