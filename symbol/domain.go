// Package symbol implements the immutable expression graph used to build
// symbolic models of electrochemical cells. Expressions are trees of nodes
// (scalars, parameters, state variables, arithmetic, spatial operators)
// tagged with the spatial subdomains they are defined over. All constructors
// are pure: nodes are never mutated after construction, and transformations
// always produce new nodes.
//
// Constructors panic with *DomainError when asked to combine expressions
// over incompatible subdomains. Model assembly recovers these at its
// boundary and reports them as ordinary errors.
package symbol

import "strings"

// Subdomain names recognised by the canonical cell geometry.
const (
	NegativeElectrode = "negative electrode"
	Separator         = "separator"
	PositiveElectrode = "positive electrode"
	NegativeParticle  = "negative particle"
	PositiveParticle  = "positive particle"
)

// canonicalOrder fixes the left-to-right ordering of subdomains along the
// cell axis. Concatenations must be contiguous with respect to it.
var canonicalOrder = map[string]int{
	NegativeElectrode: 0,
	Separator:         1,
	PositiveElectrode: 2,
	NegativeParticle:  3,
	PositiveParticle:  4,
}

// Domain is an ordered list of subdomain names. An empty (nil) Domain marks
// a domain-independent quantity, e.g. a scalar constant or an averaged
// value.
type Domain []string

// NewDomain builds a Domain from subdomain names. Unknown names panic with
// a *DomainError so that typos surface at construction time.
func NewDomain(names ...string) Domain {
	for _, name := range names {
		if _, ok := canonicalOrder[name]; !ok {
			failDomain("domain", "unknown subdomain %q", name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	d := make(Domain, len(names))
	copy(d, names)
	return d
}

// Empty reports whether the domain is domain-independent.
func (d Domain) Empty() bool { return len(d) == 0 }

// Equal reports whether two domains contain the same subdomains in the
// same order.
func (d Domain) Equal(other Domain) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}
	return true
}

// Contains reports whether the domain includes the named subdomain.
func (d Domain) Contains(name string) bool {
	for _, s := range d {
		if s == name {
			return true
		}
	}
	return false
}

// Copy returns an independent copy of the domain.
func (d Domain) Copy() Domain {
	if len(d) == 0 {
		return nil
	}
	out := make(Domain, len(d))
	copy(out, d)
	return out
}

func (d Domain) String() string {
	if len(d) == 0 {
		return "(none)"
	}
	return strings.Join(d, ", ")
}

// unionDomain combines operand domains for an arithmetic operation: an
// empty domain defers to the other operand, equal domains pass through, and
// anything else is a domain mismatch.
func unionDomain(op string, a, b Domain) Domain {
	switch {
	case a.Empty():
		return b.Copy()
	case b.Empty():
		return a.Copy()
	case a.Equal(b):
		return a.Copy()
	default:
		failDomain(op, "incompatible domains [%s] and [%s]", a, b)
		return nil
	}
}

// contiguous reports whether the subdomains occupy consecutive positions in
// the canonical ordering.
func contiguous(d Domain) bool {
	for i := 1; i < len(d); i++ {
		if canonicalOrder[d[i]] != canonicalOrder[d[i-1]]+1 {
			return false
		}
	}
	return true
}
