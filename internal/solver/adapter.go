package solver

// Adapter is the string-addressable layout façade over the backend solver.
// It memoizes per-node variables, tracks registered constraints by ID, and
// swallows backend rejections so a pathological constraint set degrades to a
// best-effort layout instead of an error.
//
// Adapter is not safe for concurrent use; the layout engine serializes all
// access.
type Adapter struct {
	backend     backend
	vars        map[string]Variable
	constraints map[string]constraintRef
}

// New creates an adapter with a fresh solver instance.
func New() *Adapter {
	return &Adapter{
		backend:     newCassoBackend(),
		vars:        make(map[string]Variable),
		constraints: make(map[string]constraintRef),
	}
}

// Var returns (creating if absent) the solver variable for a node property.
func (a *Adapter) Var(node string, prop Property) Variable {
	key := node + ":" + prop.String()
	if v, ok := a.vars[key]; ok {
		return v
	}
	v := Variable{Node: node, Prop: prop, ref: a.backend.newVariable()}
	a.vars[key] = v
	return v
}

// X returns the x variable for a node.
func (a *Adapter) X(node string) Variable { return a.Var(node, PropX) }

// Y returns the y variable for a node.
func (a *Adapter) Y(node string) Variable { return a.Var(node, PropY) }

// Width returns the width variable for a node.
func (a *Adapter) Width(node string) Variable { return a.Var(node, PropWidth) }

// Height returns the height variable for a node.
func (a *Adapter) Height(node string) Variable { return a.Var(node, PropHeight) }

// Right returns the derived expression x + width.
func (a *Adapter) Right(node string) Expr {
	return NewExpr(0, T(a.X(node), 1), T(a.Width(node), 1))
}

// Bottom returns the derived expression y + height.
func (a *Adapter) Bottom(node string) Expr {
	return NewExpr(0, T(a.Y(node), 1), T(a.Height(node), 1))
}

// CenterX returns the derived expression x + width/2.
func (a *Adapter) CenterX(node string) Expr {
	return NewExpr(0, T(a.X(node), 1), T(a.Width(node), 0.5))
}

// CenterY returns the derived expression y + height/2.
func (a *Adapter) CenterY(node string) Expr {
	return NewExpr(0, T(a.Y(node), 1), T(a.Height(node), 0.5))
}

// AddEquality registers expr == 0 under id, replacing any prior constraint
// with the same id.
func (a *Adapter) AddEquality(id string, expr Expr, strength Strength) {
	a.add(id, Equal, expr, strength)
}

// AddLessOrEqual registers expr <= 0 under id.
func (a *Adapter) AddLessOrEqual(id string, expr Expr, strength Strength) {
	a.add(id, LessOrEqual, expr, strength)
}

// AddGreaterOrEqual registers expr >= 0 under id.
func (a *Adapter) AddGreaterOrEqual(id string, expr Expr, strength Strength) {
	a.add(id, GreaterOrEqual, expr, strength)
}

// AddValueConstraint registers v == value under id.
func (a *Adapter) AddValueConstraint(id string, v Variable, value float64, strength Strength) {
	a.AddEquality(id, NewExpr(-value, T(v, 1)), strength)
}

// AddRelationConstraint registers v1 == v2 + offset under id.
func (a *Adapter) AddRelationConstraint(id string, v1, v2 Variable, offset float64, strength Strength) {
	a.AddEquality(id, NewExpr(-offset, T(v1, 1), T(v2, -1)), strength)
}

func (a *Adapter) add(id string, rel Relation, expr Expr, strength Strength) {
	a.RemoveConstraint(id)
	ref, err := a.backend.addConstraint(rel, strength, expr.Const, expr.backendTerms())
	if err != nil {
		// Conflicting or degenerate constraints degrade silently.
		return
	}
	a.constraints[id] = ref
}

// RemoveConstraint removes the constraint registered under id.
// It is a no-op when the id is unknown.
func (a *Adapter) RemoveConstraint(id string) {
	ref, ok := a.constraints[id]
	if !ok {
		return
	}
	delete(a.constraints, id)
	_ = a.backend.removeConstraint(ref)
}

// SuggestValue marks v as an edit variable if needed and proposes a value.
// Used for interactive dragging; silently no-ops when the backend refuses.
func (a *Adapter) SuggestValue(v Variable, value float64) {
	if err := a.backend.edit(v.ref, Strong); err != nil {
		return
	}
	_ = a.backend.suggest(v.ref, value)
}

// Solve resolves the system. The backend solves incrementally on every
// mutation, so this is a synchronization point rather than a batch solve;
// callers must still invoke it before reading values.
func (a *Adapter) Solve() {}

// Value returns the solved value of a variable.
func (a *Adapter) Value(v Variable) float64 {
	return a.backend.value(v.ref)
}

// NodeLayout reads back the solved x, y, width, height for a node.
func (a *Adapter) NodeLayout(node string) (x, y, width, height float64) {
	return a.Value(a.X(node)), a.Value(a.Y(node)),
		a.Value(a.Width(node)), a.Value(a.Height(node))
}

// ConstraintCount returns the number of active registered constraints.
func (a *Adapter) ConstraintCount() int {
	return len(a.constraints)
}

// Clear removes all constraints and forgets all variables. Called at the
// start of every recompute cycle so each pass rebuilds the system from
// scratch.
func (a *Adapter) Clear() {
	for id := range a.constraints {
		a.RemoveConstraint(id)
	}
	a.vars = make(map[string]Variable)
}

// Reset clears all state and discards the underlying solver instance.
func (a *Adapter) Reset() {
	a.backend = newCassoBackend()
	a.vars = make(map[string]Variable)
	a.constraints = make(map[string]constraintRef)
}
