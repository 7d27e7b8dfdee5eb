package symbol

import (
	"fmt"
	"strings"
)

// Binary is an arithmetic combination of two expressions. Its domain is the
// union of the operand domains; construction fails when both operands carry
// non-empty, unequal domains.
type Binary struct {
	op          string
	left, right Symbol
	domain      Domain
}

func newBinary(op string, a, b Symbol) *Binary {
	return &Binary{
		op:     op,
		left:   a,
		right:  b,
		domain: unionDomain(op, a.Domain(), b.Domain()),
	}
}

// Add returns a + b.
func Add(a, b Symbol) Symbol { return newBinary("+", a, b) }

// Sub returns a - b.
func Sub(a, b Symbol) Symbol { return newBinary("-", a, b) }

// Mul returns a * b.
func Mul(a, b Symbol) Symbol { return newBinary("*", a, b) }

// Divide returns a / b. Named to leave Div for the spatial divergence.
func Divide(a, b Symbol) Symbol { return newBinary("/", a, b) }

// Pow returns a ^ b.
func Pow(a, b Symbol) Symbol { return newBinary("^", a, b) }

func (b *Binary) Op() string         { return b.op }
func (b *Binary) Left() Symbol       { return b.left }
func (b *Binary) Right() Symbol      { return b.right }
func (b *Binary) Kind() Kind         { return KindBinary }
func (b *Binary) Name() string       { return b.op }
func (b *Binary) Domain() Domain     { return b.domain }
func (b *Binary) Children() []Symbol { return []Symbol{b.left, b.right} }
func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.left, b.op, b.right)
}

// Negation is unary minus.
type Negation struct {
	child Symbol
}

// Neg returns -a.
func Neg(a Symbol) Symbol { return &Negation{child: a} }

func (n *Negation) Kind() Kind         { return KindNegation }
func (n *Negation) Name() string       { return "-" }
func (n *Negation) Domain() Domain     { return n.child.Domain() }
func (n *Negation) Children() []Symbol { return []Symbol{n.child} }
func (n *Negation) String() string     { return fmt.Sprintf("(-%s)", n.child) }

// Function is the application of a named scalar function to one or more
// expressions, e.g. log, sinh, or a parameter-supplied property function
// such as an open-circuit potential. The result domain is the union of the
// argument domains.
type Function struct {
	name   string
	args   []Symbol
	domain Domain
}

// Fn applies the named scalar function to the given arguments.
func Fn(name string, args ...Symbol) *Function {
	if len(args) == 0 {
		failDomain("function", "%s applied to no arguments", name)
	}
	domain := args[0].Domain().Copy()
	for _, a := range args[1:] {
		domain = unionDomain("function "+name, domain, a.Domain())
	}
	return &Function{name: name, args: args, domain: domain}
}

func (f *Function) Kind() Kind         { return KindFunction }
func (f *Function) Name() string       { return f.name }
func (f *Function) Domain() Domain     { return f.domain }
func (f *Function) Children() []Symbol { return f.args }
func (f *Function) String() string {
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", f.name, strings.Join(parts, ", "))
}
