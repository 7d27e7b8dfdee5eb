package symbol

import (
	"strconv"
)

// Kind identifies the discriminant of an expression node.
type Kind string

const (
	KindScalar          Kind = "scalar"
	KindParameter       Kind = "parameter"
	KindVariable        Kind = "variable"
	KindSpatialVariable Kind = "spatial variable"
	KindBinary          Kind = "binary"
	KindNegation        Kind = "negation"
	KindFunction        Kind = "function"
	KindBroadcast       Kind = "broadcast"
	KindConcatenation   Kind = "concatenation"
	KindGradient        Kind = "gradient"
	KindDivergence      Kind = "divergence"
	KindAverage         Kind = "average"
	KindSurfaceValue    Kind = "surface value"
)

// Symbol is a node in an immutable expression tree.
type Symbol interface {
	// Kind returns the node discriminant.
	Kind() Kind

	// Name returns the node label: a variable, parameter, or function
	// name, an operator glyph, or a formatted scalar value.
	Name() string

	// Domain returns the subdomains the expression is defined over.
	// An empty domain marks a domain-independent quantity. Callers must
	// not modify the returned slice.
	Domain() Domain

	// Children returns the ordered sub-expressions. Callers must not
	// modify the returned slice.
	Children() []Symbol

	String() string
}

// Equal reports structural equality: same discriminant, name, domain, and
// recursively equal children. Used for deduplication and testing, never as
// a substitute for identity.
func Equal(a, b Symbol) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() || a.Name() != b.Name() {
		return false
	}
	if !a.Domain().Equal(b.Domain()) {
		return false
	}
	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !Equal(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// Variables walks the expression and returns every distinct Variable node
// reachable from it, in first-visit order.
func Variables(s Symbol) []*Variable {
	var out []*Variable
	seen := make(map[*Variable]bool)
	var walk func(Symbol)
	walk = func(n Symbol) {
		if v, ok := n.(*Variable); ok {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(s)
	return out
}

// Scalar is a constant leaf.
type Scalar struct {
	value float64
}

// NewScalar creates a domain-independent constant.
func NewScalar(v float64) *Scalar { return &Scalar{value: v} }

// Zero and One are shared convenience constants for equation building.
// They are ordinary nodes; sharing is an allocation nicety, not identity.
func Zero() *Scalar { return NewScalar(0) }
func One() *Scalar  { return NewScalar(1) }

func (s *Scalar) Value() float64     { return s.value }
func (s *Scalar) Kind() Kind         { return KindScalar }
func (s *Scalar) Name() string       { return strconv.FormatFloat(s.value, 'g', -1, 64) }
func (s *Scalar) Domain() Domain     { return nil }
func (s *Scalar) Children() []Symbol { return nil }
func (s *Scalar) String() string     { return s.Name() }

// Parameter is a named, domain-independent leaf supplied by the external
// parameter collaborator. The engine treats its value as opaque.
type Parameter struct {
	name string
}

// NewParameter creates a named parameter leaf.
func NewParameter(name string) *Parameter { return &Parameter{name: name} }

func (p *Parameter) Kind() Kind         { return KindParameter }
func (p *Parameter) Name() string       { return p.name }
func (p *Parameter) Domain() Domain     { return nil }
func (p *Parameter) Children() []Symbol { return nil }
func (p *Parameter) String() string     { return p.name }

// Variable is a named unknown of the system (state variable). Variables are
// the keys of a model's equation mappings, either directly or through a
// concatenation of per-subdomain variables.
type Variable struct {
	name   string
	domain Domain
}

// NewVariable creates a state variable over the given subdomains.
func NewVariable(name string, domain ...string) *Variable {
	return &Variable{name: name, domain: NewDomain(domain...)}
}

func (v *Variable) Kind() Kind         { return KindVariable }
func (v *Variable) Name() string       { return v.name }
func (v *Variable) Domain() Domain     { return v.domain }
func (v *Variable) Children() []Symbol { return nil }
func (v *Variable) String() string     { return v.name }

// SpatialVariable is the coordinate along a subdomain, e.g. the position
// through the negative electrode or the radius within a particle. Supplied
// by the parameter collaborator, consumed opaquely by submodels.
type SpatialVariable struct {
	name   string
	domain Domain
}

// NewSpatialVariable creates a spatial coordinate over the given subdomains.
func NewSpatialVariable(name string, domain ...string) *SpatialVariable {
	return &SpatialVariable{name: name, domain: NewDomain(domain...)}
}

func (v *SpatialVariable) Kind() Kind         { return KindSpatialVariable }
func (v *SpatialVariable) Name() string       { return v.name }
func (v *SpatialVariable) Domain() Domain     { return v.domain }
func (v *SpatialVariable) Children() []Symbol { return nil }
func (v *SpatialVariable) String() string     { return v.name }
