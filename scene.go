package layout

// NodeID identifies a node in the scene graph.
type NodeID string

// NodeData is the engine's read view of a scene-graph node.
type NodeData struct {
	ID       NodeID
	ParentID NodeID

	X, Y          float64
	Width, Height float64
	Rotation      float64
}

// Bounds returns the node's geometry as a Rect.
func (n NodeData) Bounds() Rect {
	return NewRect(n.X, n.Y, n.Width, n.Height)
}

// NodeUpdate is a partial geometry write. Nil fields are left untouched.
type NodeUpdate struct {
	X, Y          *float64
	Width, Height *float64
}

// MutationKind classifies a scene-graph mutation event.
type MutationKind uint8

const (
	NodeCreated MutationKind = iota
	NodeDeleted
	NodePropertyChanged
	NodeParentChanged
)

// Mutation is one scene-graph change, delivered synchronously and in-order.
type Mutation struct {
	Kind   MutationKind
	NodeID NodeID

	// ParentID is the node's former parent for NodeDeleted. The node is
	// already gone when the event fires, so siblings can only be relaid out
	// if the event carries this.
	ParentID NodeID

	// Path names the changed property for NodePropertyChanged
	// (e.g. "x", "width", "autoLayout.itemSpacing").
	Path string
}

// SceneGraph is the engine's upstream collaborator: the authoritative store
// for node existence and the geometry ultimately rendered. The engine only
// reads nodes, subscribes to mutations, and writes resolved geometry back.
//
// The engine's deferred pass runs on a timer goroutine and reads the scene
// while holding only its own state lock. Implementations must therefore
// allow GetNode, ChildIDs, Ancestors, and Descendants to run concurrently
// with host mutation, must not hold internal locks while delivering
// mutation events, and must deliver events synchronously on the mutating
// goroutine. MemScene satisfies all three.
type SceneGraph interface {
	// GetNode returns the node, or false if it does not exist.
	GetNode(id NodeID) (NodeData, bool)

	// ChildIDs returns the node's children in document order.
	ChildIDs(id NodeID) []NodeID

	// Ancestors returns the chain from the node's parent up to the root.
	Ancestors(id NodeID) []NodeData

	// Descendants returns the node's full subtree, excluding the node itself.
	Descendants(id NodeID) []NodeData

	// UpdateNode applies a partial geometry write. Used by the engine to push
	// resolved auto-layout geometry back so the renderer sees authoritative
	// positions. Must not feed back into the mutation stream.
	UpdateNode(id NodeID, update NodeUpdate)

	// Subscribe registers a mutation listener.
	Subscribe(fn func(Mutation))
}
