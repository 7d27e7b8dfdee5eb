package symbol

import (
	"fmt"
	"sort"
	"strings"
)

// Broadcast lifts a domain-independent expression onto a subdomain so it is
// treated as constant in space over that region.
type Broadcast struct {
	child  Symbol
	domain Domain
}

// NewBroadcast wraps child over the given subdomains. The child must itself
// be domain-independent.
func NewBroadcast(child Symbol, domain ...string) *Broadcast {
	if !child.Domain().Empty() {
		failDomain("broadcast", "child already carries domain [%s]", child.Domain())
	}
	d := NewDomain(domain...)
	if d.Empty() {
		failDomain("broadcast", "no target domain given")
	}
	return &Broadcast{child: child, domain: d}
}

func (b *Broadcast) Child() Symbol      { return b.child }
func (b *Broadcast) Kind() Kind         { return KindBroadcast }
func (b *Broadcast) Name() string       { return "broadcast" }
func (b *Broadcast) Domain() Domain     { return b.domain }
func (b *Broadcast) Children() []Symbol { return []Symbol{b.child} }
func (b *Broadcast) String() string {
	return fmt.Sprintf("broadcast(%s, [%s])", b.child, b.domain)
}

// Concatenation joins per-subdomain expressions into one composite
// quantity. Part domains must be pairwise disjoint and contiguous in the
// canonical subdomain ordering; the composite domain is their ordered
// union.
type Concatenation struct {
	parts  []Symbol
	domain Domain
}

// NewConcatenation joins the given parts. Parts may be supplied in any
// order; they are stored in canonical domain order.
func NewConcatenation(parts ...Symbol) *Concatenation {
	if len(parts) == 0 {
		failDomain("concatenation", "no parts given")
	}
	ordered := make([]Symbol, len(parts))
	copy(ordered, parts)
	for _, p := range ordered {
		if p.Domain().Empty() {
			failDomain("concatenation", "part %s has no domain", p)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return canonicalOrder[ordered[i].Domain()[0]] < canonicalOrder[ordered[j].Domain()[0]]
	})

	var domain Domain
	seen := make(map[string]bool)
	for _, p := range ordered {
		for _, sub := range p.Domain() {
			if seen[sub] {
				failDomain("concatenation", "duplicate subdomain %q", sub)
			}
			seen[sub] = true
			domain = append(domain, sub)
		}
	}
	if !contiguous(domain) {
		failDomain("concatenation", "subdomains [%s] are not adjacent in the canonical ordering", domain)
	}
	return &Concatenation{parts: ordered, domain: domain}
}

// Orphans returns the parts in canonical order with their domain tags
// preserved. Concatenating and taking Orphans is a lossless round trip,
// and this is the only sanctioned way to split a concatenation.
func (c *Concatenation) Orphans() []Symbol {
	out := make([]Symbol, len(c.parts))
	copy(out, c.parts)
	return out
}

func (c *Concatenation) Kind() Kind         { return KindConcatenation }
func (c *Concatenation) Name() string       { return "concatenation" }
func (c *Concatenation) Domain() Domain     { return c.domain }
func (c *Concatenation) Children() []Symbol { return c.parts }
func (c *Concatenation) String() string {
	parts := make([]string, len(c.parts))
	for i, p := range c.parts {
		parts[i] = p.String()
	}
	return fmt.Sprintf("concatenation(%s)", strings.Join(parts, ", "))
}
