package symbol

import "fmt"

// Spatial operators. Each validates that its argument is defined over a
// domain it can act on, and produces a new tagged expression; arguments are
// never mutated.

// Gradient is a flux-like spatial derivative over its argument's domain.
type Gradient struct {
	child Symbol
}

// Grad takes the spatial gradient of an expression. The argument must carry
// a single subdomain, or a concatenation domain made of electrode and
// separator subdomains (particle domains cannot be concatenated).
func Grad(s Symbol) *Gradient {
	d := s.Domain()
	if d.Empty() {
		failDomain("grad", "argument %s has no domain", s)
	}
	if len(d) > 1 {
		for _, sub := range d {
			if sub == NegativeParticle || sub == PositiveParticle {
				failDomain("grad", "particle subdomain %q cannot appear in a composite domain", sub)
			}
		}
	}
	return &Gradient{child: s}
}

func (g *Gradient) Kind() Kind         { return KindGradient }
func (g *Gradient) Name() string       { return "grad" }
func (g *Gradient) Domain() Domain     { return g.child.Domain() }
func (g *Gradient) Children() []Symbol { return []Symbol{g.child} }
func (g *Gradient) String() string     { return fmt.Sprintf("grad(%s)", g.child) }

// IsFlux reports whether an expression is flux-like: a gradient, or
// arithmetic or concatenation over at least one flux-like operand. Only
// flux-like expressions may be fed to Div.
func IsFlux(s Symbol) bool {
	switch s.Kind() {
	case KindGradient:
		return true
	case KindBinary, KindNegation, KindConcatenation, KindFunction:
		for _, c := range s.Children() {
			if IsFlux(c) {
				return true
			}
		}
	}
	return false
}

// Divergence consumes a flux-like expression and yields a scalar field over
// the same domain, used to build conservation-law residuals.
type Divergence struct {
	child Symbol
}

// Div takes the divergence of a flux-like expression.
func Div(flux Symbol) *Divergence {
	if flux.Domain().Empty() {
		failDomain("div", "argument %s has no domain", flux)
	}
	if !IsFlux(flux) {
		failDomain("div", "argument %s is not flux-like", flux)
	}
	return &Divergence{child: flux}
}

func (d *Divergence) Kind() Kind         { return KindDivergence }
func (d *Divergence) Name() string       { return "div" }
func (d *Divergence) Domain() Domain     { return d.child.Domain() }
func (d *Divergence) Children() []Symbol { return []Symbol{d.child} }
func (d *Divergence) String() string     { return fmt.Sprintf("div(%s)", d.child) }

// XAverage is the domain-weighted spatial mean of an expression, reducing
// it to a domain-independent quantity.
type XAverage struct {
	child Symbol
}

// Average reduces a domain-tagged expression to its domain-weighted mean.
// The average of a broadcast value is the value itself, so that case
// simplifies structurally.
func Average(s Symbol) Symbol {
	if s.Domain().Empty() {
		failDomain("average", "argument %s has no domain", s)
	}
	if b, ok := s.(*Broadcast); ok {
		return b.child
	}
	return &XAverage{child: s}
}

func (a *XAverage) Kind() Kind         { return KindAverage }
func (a *XAverage) Name() string       { return "average" }
func (a *XAverage) Domain() Domain     { return nil }
func (a *XAverage) Children() []Symbol { return []Symbol{a.child} }
func (a *XAverage) String() string     { return fmt.Sprintf("average(%s)", a.child) }

// SurfaceValue evaluates an expression at the outer boundary of its
// subdomain: the particle surface for particle-scale quantities, or the
// current-collector edge for electrode-scale ones.
type SurfaceValue struct {
	child  Symbol
	domain Domain
}

// Surf evaluates a single-subdomain expression at its outer boundary. The
// result is domain-independent; for a particle-scale argument, setDomain
// re-tags it onto the enclosing electrode so it can couple to
// electrode-scale kinetics.
func Surf(s Symbol, setDomain bool) *SurfaceValue {
	d := s.Domain()
	if len(d) != 1 {
		failDomain("surf", "argument %s must carry exactly one subdomain, got [%s]", s, d)
	}
	var out Domain
	if setDomain {
		switch d[0] {
		case NegativeParticle:
			out = NewDomain(NegativeElectrode)
		case PositiveParticle:
			out = NewDomain(PositiveElectrode)
		default:
			failDomain("surf", "no enclosing electrode for subdomain %q", d[0])
		}
	}
	return &SurfaceValue{child: s, domain: out}
}

func (s *SurfaceValue) Kind() Kind         { return KindSurfaceValue }
func (s *SurfaceValue) Name() string       { return "surf" }
func (s *SurfaceValue) Domain() Domain     { return s.domain }
func (s *SurfaceValue) Children() []Symbol { return []Symbol{s.child} }
func (s *SurfaceValue) String() string     { return fmt.Sprintf("surf(%s)", s.child) }
