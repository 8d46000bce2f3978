package solver

import "github.com/lithdew/casso"

// Relation is the comparison between a linear expression and zero.
type Relation uint8

const (
	Equal Relation = iota
	LessOrEqual
	GreaterOrEqual
)

// Strength is the priority tier used to resolve over-constrained systems.
type Strength uint8

const (
	Required Strength = iota
	Strong
	Medium
	Weak
)

// String returns the lowercase name of the strength.
func (s Strength) String() string {
	switch s {
	case Required:
		return "required"
	case Strong:
		return "strong"
	case Medium:
		return "medium"
	case Weak:
		return "weak"
	default:
		return "unknown"
	}
}

// varRef and constraintRef are backend-minted opaque handles.
type (
	varRef        uint64
	constraintRef uint64
)

// backendTerm is one coefficient*variable term of a constraint expression.
type backendTerm struct {
	ref   varRef
	coeff float64
}

// backend abstracts the underlying incremental solver so the concrete
// library stays swappable behind the adapter.
type backend interface {
	newVariable() varRef
	addConstraint(rel Relation, strength Strength, constant float64, terms []backendTerm) (constraintRef, error)
	removeConstraint(ref constraintRef) error
	edit(ref varRef, strength Strength) error
	suggest(ref varRef, value float64) error
	value(ref varRef) float64
}

// cassoBackend implements backend on top of github.com/lithdew/casso.
type cassoBackend struct {
	solver   *casso.Solver
	vars     map[varRef]casso.Symbol
	tags     map[constraintRef]casso.Symbol
	editable map[varRef]bool
	nextVar  varRef
	nextCon  constraintRef
}

func newCassoBackend() *cassoBackend {
	return &cassoBackend{
		solver:   casso.NewSolver(),
		vars:     make(map[varRef]casso.Symbol),
		tags:     make(map[constraintRef]casso.Symbol),
		editable: make(map[varRef]bool),
	}
}

func (b *cassoBackend) newVariable() varRef {
	b.nextVar++
	ref := b.nextVar
	b.vars[ref] = casso.New()
	return ref
}

func (b *cassoBackend) addConstraint(rel Relation, strength Strength, constant float64, terms []backendTerm) (constraintRef, error) {
	cassoTerms := make([]casso.Term, 0, len(terms))
	for _, t := range terms {
		sym, ok := b.vars[t.ref]
		if !ok {
			continue
		}
		cassoTerms = append(cassoTerms, sym.T(t.coeff))
	}

	var op casso.Op
	switch rel {
	case LessOrEqual:
		op = casso.LTE
	case GreaterOrEqual:
		op = casso.GTE
	default:
		op = casso.EQ
	}

	tag, err := b.solver.AddConstraintWithPriority(cassoPriority(strength), casso.NewConstraint(op, constant, cassoTerms...))
	if err != nil {
		return 0, err
	}
	b.nextCon++
	ref := b.nextCon
	b.tags[ref] = tag
	return ref, nil
}

func (b *cassoBackend) removeConstraint(ref constraintRef) error {
	tag, ok := b.tags[ref]
	if !ok {
		return nil
	}
	delete(b.tags, ref)
	return b.solver.RemoveConstraint(tag)
}

func (b *cassoBackend) edit(ref varRef, strength Strength) error {
	sym, ok := b.vars[ref]
	if !ok {
		return nil
	}
	if b.editable[ref] {
		return nil
	}
	if err := b.solver.Edit(sym, cassoPriority(strength)); err != nil {
		return err
	}
	b.editable[ref] = true
	return nil
}

func (b *cassoBackend) suggest(ref varRef, value float64) error {
	sym, ok := b.vars[ref]
	if !ok {
		return nil
	}
	return b.solver.Suggest(sym, value)
}

func (b *cassoBackend) value(ref varRef) float64 {
	sym, ok := b.vars[ref]
	if !ok {
		return 0
	}
	return b.solver.Val(sym)
}

func cassoPriority(s Strength) casso.Priority {
	switch s {
	case Strong:
		return casso.Strong
	case Medium:
		return casso.Medium
	case Weak:
		return casso.Weak
	default:
		return casso.Required
	}
}
