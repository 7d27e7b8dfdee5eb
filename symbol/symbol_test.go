package symbol

import "testing"

// wantDomainError runs fn and fails the test unless it panics with a
// *DomainError.
func wantDomainError(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("expected *DomainError panic, got none")
			return
		}
		if _, ok := r.(*DomainError); !ok {
			panic(r)
		}
	}()
	fn()
}

func TestDomainUnionForArithmetic(t *testing.T) {
	c := NewVariable("c", NegativeElectrode)
	k := NewScalar(2)

	// An empty domain defers to the other operand.
	sum := Add(c, k)
	if !sum.Domain().Equal(NewDomain(NegativeElectrode)) {
		t.Errorf("expected domain [negative electrode], got [%s]", sum.Domain())
	}
	sum = Add(k, c)
	if !sum.Domain().Equal(NewDomain(NegativeElectrode)) {
		t.Errorf("expected domain [negative electrode], got [%s]", sum.Domain())
	}

	// Equal domains pass through.
	d := NewVariable("d", NegativeElectrode)
	if got := Mul(c, d).Domain(); !got.Equal(NewDomain(NegativeElectrode)) {
		t.Errorf("expected domain [negative electrode], got [%s]", got)
	}

	// Unequal non-empty domains are a mismatch.
	e := NewVariable("e", PositiveElectrode)
	wantDomainError(t, func() { Add(c, e) })
	wantDomainError(t, func() { Divide(c, e) })
}

func TestFunctionDomainUnion(t *testing.T) {
	c := NewVariable("c", Separator)
	f := Fn("kappa", c)
	if !f.Domain().Equal(NewDomain(Separator)) {
		t.Errorf("expected domain [separator], got [%s]", f.Domain())
	}

	e := NewVariable("e", PositiveElectrode)
	wantDomainError(t, func() { Fn("f", c, e) })
	wantDomainError(t, func() { Fn("f") })
}

func TestUnknownSubdomain(t *testing.T) {
	wantDomainError(t, func() { NewDomain("mystery region") })
}

func TestStructuralEquality(t *testing.T) {
	a := Add(NewVariable("c", NegativeElectrode), NewScalar(1))
	b := Add(NewVariable("c", NegativeElectrode), NewScalar(1))
	if !Equal(a, b) {
		t.Errorf("structurally identical expressions should be Equal")
	}

	// Distinct pointers are still structurally equal, never identical.
	if a == b {
		t.Errorf("expected distinct nodes")
	}

	c := Add(NewVariable("c", PositiveElectrode), NewScalar(1))
	if Equal(a, c) {
		t.Errorf("different domains should not be Equal")
	}
	d := Sub(NewVariable("c", NegativeElectrode), NewScalar(1))
	if Equal(a, d) {
		t.Errorf("different operators should not be Equal")
	}
}

func TestVariablesWalk(t *testing.T) {
	c := NewVariable("c", NegativeElectrode)
	phi := NewVariable("phi", NegativeElectrode)
	expr := Add(Mul(c, phi), Fn("U", c))

	vars := Variables(expr)
	if len(vars) != 2 {
		t.Fatalf("expected 2 distinct variables, got %d", len(vars))
	}
	if vars[0] != c || vars[1] != phi {
		t.Errorf("expected first-visit order [c phi], got [%s %s]", vars[0], vars[1])
	}
}

func TestConstructorCopiesDomainInput(t *testing.T) {
	names := []string{NegativeElectrode}
	v := NewVariable("v", names...)
	names[0] = PositiveElectrode
	if !v.Domain().Equal(NewDomain(NegativeElectrode)) {
		t.Errorf("constructor should copy its domain input")
	}
}
