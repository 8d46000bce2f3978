package layout

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// MemScene is an in-memory SceneGraph: a flat node store with ordered
// children and synchronous event fan-out. It backs the CLI and tests and
// serves as the reference implementation for hosts without their own store.
//
// MemScene supports one mutating goroutine plus any number of concurrent
// readers, which is what the engine's deferred pass requires. Mutation
// events are delivered on the mutating goroutine after the internal lock is
// released, so listeners may call back into the scene or the engine.
type MemScene struct {
	mu        sync.RWMutex
	nodes     map[NodeID]*NodeData
	children  map[NodeID][]NodeID
	listeners []func(Mutation)
}

// NewMemScene creates an empty scene.
func NewMemScene() *MemScene {
	return &MemScene{
		nodes:    make(map[NodeID]*NodeData),
		children: make(map[NodeID][]NodeID),
	}
}

// AddNode inserts a node and emits NodeCreated. When data.ID is empty a new
// ID is minted. Returns the node's ID.
func (m *MemScene) AddNode(data NodeData) NodeID {
	m.mu.Lock()
	if data.ID == "" {
		data.ID = NodeID(uuid.NewString())
	}
	m.nodes[data.ID] = &data
	if data.ParentID != "" {
		m.children[data.ParentID] = append(m.children[data.ParentID], data.ID)
	}
	m.mu.Unlock()

	m.emit(Mutation{Kind: NodeCreated, NodeID: data.ID})
	return data.ID
}

// RemoveNode deletes a node and its subtree, emitting NodeDeleted for each
// removed node, children first.
func (m *MemScene) RemoveNode(id NodeID) {
	m.mu.Lock()
	muts := m.removeLocked(id)
	m.mu.Unlock()

	for _, mut := range muts {
		m.emit(mut)
	}
}

func (m *MemScene) removeLocked(id NodeID) []Mutation {
	node, ok := m.nodes[id]
	if !ok {
		return nil
	}
	var muts []Mutation
	for _, childID := range slices.Clone(m.children[id]) {
		muts = append(muts, m.removeLocked(childID)...)
	}
	if node.ParentID != "" {
		m.children[node.ParentID] = slices.DeleteFunc(m.children[node.ParentID], func(c NodeID) bool {
			return c == id
		})
	}
	delete(m.children, id)
	delete(m.nodes, id)
	return append(muts, Mutation{Kind: NodeDeleted, NodeID: id, ParentID: node.ParentID})
}

// SetParent reparents a node (appended to the new parent's children) and
// emits NodeParentChanged.
func (m *MemScene) SetParent(id, parentID NodeID) {
	m.mu.Lock()
	node, ok := m.nodes[id]
	if !ok {
		m.mu.Unlock()
		return
	}
	if node.ParentID != "" {
		m.children[node.ParentID] = slices.DeleteFunc(m.children[node.ParentID], func(c NodeID) bool {
			return c == id
		})
	}
	node.ParentID = parentID
	if parentID != "" {
		m.children[parentID] = append(m.children[parentID], id)
	}
	m.mu.Unlock()

	m.emit(Mutation{Kind: NodeParentChanged, NodeID: id})
}

// SetBounds writes node geometry as a user-facing mutation, emitting
// NodePropertyChanged per changed property.
func (m *MemScene) SetBounds(id NodeID, r Rect) {
	m.mu.Lock()
	node, ok := m.nodes[id]
	if !ok {
		m.mu.Unlock()
		return
	}
	changed := make([]string, 0, 4)
	if node.X != r.X {
		node.X = r.X
		changed = append(changed, "x")
	}
	if node.Y != r.Y {
		node.Y = r.Y
		changed = append(changed, "y")
	}
	if node.Width != r.Width {
		node.Width = r.Width
		changed = append(changed, "width")
	}
	if node.Height != r.Height {
		node.Height = r.Height
		changed = append(changed, "height")
	}
	m.mu.Unlock()

	for _, path := range changed {
		m.emit(Mutation{Kind: NodePropertyChanged, NodeID: id, Path: path})
	}
}

// GetNode returns the node, or false if it does not exist.
func (m *MemScene) GetNode(id NodeID) (NodeData, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	node, ok := m.nodes[id]
	if !ok {
		return NodeData{}, false
	}
	return *node, true
}

// ChildIDs returns the node's children in insertion order.
func (m *MemScene) ChildIDs(id NodeID) []NodeID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.children[id])
}

// Ancestors returns the chain from the node's parent up to the root.
func (m *MemScene) Ancestors(id NodeID) []NodeData {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []NodeData
	node, ok := m.nodes[id]
	for ok && node.ParentID != "" {
		node, ok = m.nodes[node.ParentID]
		if ok {
			out = append(out, *node)
		}
	}
	return out
}

// Descendants returns the node's full subtree, depth-first, excluding the
// node itself.
func (m *MemScene) Descendants(id NodeID) []NodeData {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.descendantsLocked(id)
}

func (m *MemScene) descendantsLocked(id NodeID) []NodeData {
	var out []NodeData
	for _, childID := range m.children[id] {
		if child, ok := m.nodes[childID]; ok {
			out = append(out, *child)
			out = append(out, m.descendantsLocked(childID)...)
		}
	}
	return out
}

// UpdateNode applies an engine write-back. It deliberately does not emit
// mutation events: resolved geometry flowing back into the dirty set would
// re-trigger the pass that produced it.
func (m *MemScene) UpdateNode(id NodeID, update NodeUpdate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	node, ok := m.nodes[id]
	if !ok {
		return
	}
	if update.X != nil {
		node.X = *update.X
	}
	if update.Y != nil {
		node.Y = *update.Y
	}
	if update.Width != nil {
		node.Width = *update.Width
	}
	if update.Height != nil {
		node.Height = *update.Height
	}
}

// Subscribe registers a mutation listener.
func (m *MemScene) Subscribe(fn func(Mutation)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

func (m *MemScene) emit(mut Mutation) {
	m.mu.RLock()
	listeners := m.listeners
	m.mu.RUnlock()

	for _, fn := range listeners {
		fn(mut)
	}
}
