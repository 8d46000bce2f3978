package solver

// Property identifies one of the four scalar unknowns tracked per node.
type Property uint8

const (
	PropX Property = iota
	PropY
	PropWidth
	PropHeight
)

// String returns the lowercase property name used in variable keys.
func (p Property) String() string {
	switch p {
	case PropX:
		return "x"
	case PropY:
		return "y"
	case PropWidth:
		return "width"
	case PropHeight:
		return "height"
	default:
		return "unknown"
	}
}

// Variable identifies one scalar unknown: a (node, property) pair backed by a
// solver variable. Variables are memoized by the adapter and stay valid until
// the next Clear or Reset.
type Variable struct {
	Node string
	Prop Property

	ref varRef
}

// Term is one coefficient*variable component of a linear expression.
type Term struct {
	Var   Variable
	Coeff float64
}

// Expr is a linear expression: sum of terms plus a constant. Constraints are
// registered in the form expr {=,<=,>=} 0.
type Expr struct {
	Terms []Term
	Const float64
}

// NewExpr builds an expression from a constant and terms.
func NewExpr(constant float64, terms ...Term) Expr {
	return Expr{Terms: terms, Const: constant}
}

// T builds a single term.
func T(v Variable, coeff float64) Term {
	return Term{Var: v, Coeff: coeff}
}

// Plus returns a new expression with the term appended.
func (e Expr) Plus(t Term) Expr {
	terms := make([]Term, len(e.Terms), len(e.Terms)+1)
	copy(terms, e.Terms)
	return Expr{Terms: append(terms, t), Const: e.Const}
}

// Offset returns a new expression with the constant shifted by c.
func (e Expr) Offset(c float64) Expr {
	return Expr{Terms: e.Terms, Const: e.Const + c}
}

func (e Expr) backendTerms() []backendTerm {
	terms := make([]backendTerm, len(e.Terms))
	for i, t := range e.Terms {
		terms[i] = backendTerm{ref: t.Var.ref, coeff: t.Coeff}
	}
	return terms
}
