package model

import (
	"errors"
	"testing"

	"github.com/cellsim-xyz/go-cellsim/symbol"
)

func TestUpdateMergesDisjointContributions(t *testing.T) {
	m := New("test")
	c := symbol.NewVariable("c", symbol.NegativeElectrode)
	phi := symbol.NewVariable("phi", symbol.NegativeElectrode)

	first := &Contribution{
		RHS: map[symbol.Symbol]symbol.Symbol{
			c: symbol.Neg(symbol.Div(symbol.Neg(symbol.Grad(c)))),
		},
		InitialConditions: map[symbol.Symbol]symbol.Symbol{c: symbol.One()},
		Variables:         map[string]symbol.Symbol{"Concentration": c},
		Solver:            SolverODE,
	}
	second := &Contribution{
		Algebraic: map[symbol.Symbol]symbol.Symbol{
			phi: symbol.Div(symbol.Neg(symbol.Grad(phi))),
		},
		InitialConditions: map[symbol.Symbol]symbol.Symbol{phi: symbol.Zero()},
		Variables:         map[string]symbol.Symbol{"Potential": phi},
		Events:            []Event{{Name: "stop", Expression: symbol.Sub(c, symbol.One())}},
		Solver:            SolverDAE,
	}

	if err := m.Update(first); err != nil {
		t.Fatalf("first merge: %v", err)
	}
	if err := m.Update(second); err != nil {
		t.Fatalf("second merge: %v", err)
	}

	if len(m.RHS) != 1 || len(m.Algebraic) != 1 {
		t.Errorf("expected 1 rhs and 1 algebraic entry, got %d and %d", len(m.RHS), len(m.Algebraic))
	}
	if len(m.Variables) != 2 {
		t.Errorf("expected 2 variables, got %d", len(m.Variables))
	}
	if len(m.Events) != 1 {
		t.Errorf("expected 1 event, got %d", len(m.Events))
	}
	if m.DefaultSolver() != SolverDAE {
		t.Errorf("expected dae solver hint, got %s", m.DefaultSolver())
	}
}

func TestUpdateCollisionIsAtomic(t *testing.T) {
	m := New("test")
	c := symbol.NewVariable("c", symbol.NegativeElectrode)
	d := symbol.NewVariable("d", symbol.NegativeElectrode)

	if err := m.Update(&Contribution{
		RHS:               map[symbol.Symbol]symbol.Symbol{c: symbol.Zero()},
		InitialConditions: map[symbol.Symbol]symbol.Symbol{c: symbol.One()},
	}); err != nil {
		t.Fatalf("seed merge: %v", err)
	}

	// The colliding contribution carries new entries in other fields; none
	// of them may land.
	err := m.Update(&Contribution{
		RHS: map[symbol.Symbol]symbol.Symbol{
			d: symbol.Zero(),
			c: symbol.One(), // collides
		},
		Variables: map[string]symbol.Symbol{"New variable": d},
		Events:    []Event{{Name: "never", Expression: symbol.Zero()}},
	})
	if err == nil {
		t.Fatalf("expected a collision error")
	}
	if !errors.Is(err, ErrKeyCollision) {
		t.Errorf("expected ErrKeyCollision, got %v", err)
	}
	var merr *MergeError
	if !errors.As(err, &merr) || merr.Field != FieldRHS || merr.Key != "c" {
		t.Errorf("expected MergeError on rhs key c, got %v", err)
	}

	if len(m.RHS) != 1 {
		t.Errorf("failed merge should leave rhs unchanged, got %d entries", len(m.RHS))
	}
	if len(m.Variables) != 0 {
		t.Errorf("failed merge should leave variables unchanged, got %d entries", len(m.Variables))
	}
	if len(m.Events) != 0 {
		t.Errorf("failed merge should not append events, got %d", len(m.Events))
	}
	if _, ok := m.RHS[d]; ok {
		t.Errorf("non-colliding entries of a failed merge must not land")
	}
}

func TestUpdateRejectsBadStateKey(t *testing.T) {
	m := New("test")
	c := symbol.NewVariable("c", symbol.NegativeElectrode)
	expr := symbol.Add(c, symbol.One())

	err := m.Update(&Contribution{
		RHS: map[symbol.Symbol]symbol.Symbol{expr: symbol.Zero()},
	})
	if !errors.Is(err, ErrBadKey) {
		t.Errorf("expected ErrBadKey for a non-variable key, got %v", err)
	}
}

func TestConcatenationKeyIsAccepted(t *testing.T) {
	m := New("test")
	cn := symbol.NewVariable("c_n", symbol.NegativeElectrode)
	cs := symbol.NewVariable("c_s", symbol.Separator)
	cp := symbol.NewVariable("c_p", symbol.PositiveElectrode)
	ce := symbol.NewConcatenation(cn, cs, cp)

	err := m.Update(&Contribution{
		RHS:               map[symbol.Symbol]symbol.Symbol{ce: symbol.Zero()},
		InitialConditions: map[symbol.Symbol]symbol.Symbol{ce: symbol.One()},
	})
	if err != nil {
		t.Fatalf("concatenation-of-variables key should merge: %v", err)
	}
	if err := m.CheckWellPosed(); err != nil {
		t.Errorf("well-posedness: %v", err)
	}
}

func TestVariableLookup(t *testing.T) {
	m := New("test")
	c := symbol.NewVariable("c", symbol.NegativeElectrode)
	m.Report(map[string]symbol.Symbol{"Concentration": c})

	got, err := m.Variable("Concentration")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != symbol.Symbol(c) {
		t.Errorf("expected the reported symbol back")
	}

	if _, err := m.Variable("Missing"); !errors.Is(err, ErrVariableNotFound) {
		t.Errorf("expected ErrVariableNotFound, got %v", err)
	}
}

func TestReportRefreshesExistingName(t *testing.T) {
	m := New("test")
	a := symbol.NewScalar(1)
	b := symbol.NewScalar(2)

	m.Report(map[string]symbol.Symbol{"Value": a})
	m.Report(map[string]symbol.Symbol{"Value": b})

	got, err := m.Variable("Value")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != symbol.Symbol(b) {
		t.Errorf("Report should refresh an existing name")
	}
}

func TestCheckWellPosed(t *testing.T) {
	c := symbol.NewVariable("c", symbol.NegativeElectrode)
	phi := symbol.NewVariable("phi", symbol.NegativeElectrode)

	t.Run("rhs and algebraic overlap", func(t *testing.T) {
		m := New("test")
		m.RHS[c] = symbol.Zero()
		m.Algebraic[c] = symbol.Zero()
		if err := m.CheckWellPosed(); !errors.Is(err, ErrIllPosed) {
			t.Errorf("expected ErrIllPosed, got %v", err)
		}
	})

	t.Run("boundary condition on ungoverned variable", func(t *testing.T) {
		m := New("test")
		m.RHS[c] = symbol.Zero()
		m.InitialConditions[c] = symbol.One()
		m.BoundaryConditions[symbol.Grad(phi)] = BoundaryCondition{Left: symbol.Zero(), Right: symbol.Zero()}
		if err := m.CheckWellPosed(); !errors.Is(err, ErrIllPosed) {
			t.Errorf("expected ErrIllPosed, got %v", err)
		}
	})

	t.Run("boundary condition with no variable", func(t *testing.T) {
		m := New("test")
		m.RHS[c] = symbol.Zero()
		m.BoundaryConditions[symbol.NewScalar(1)] = BoundaryCondition{Left: symbol.Zero(), Right: symbol.Zero()}
		if err := m.CheckWellPosed(); !errors.Is(err, ErrIllPosed) {
			t.Errorf("expected ErrIllPosed, got %v", err)
		}
	})

	t.Run("initial condition without governing equation", func(t *testing.T) {
		m := New("test")
		m.RHS[c] = symbol.Zero()
		m.InitialConditions[phi] = symbol.Zero()
		if err := m.CheckWellPosed(); !errors.Is(err, ErrIllPosed) {
			t.Errorf("expected ErrIllPosed, got %v", err)
		}
	})

	t.Run("consistent system passes", func(t *testing.T) {
		m := New("test")
		flux := symbol.Neg(symbol.Grad(c))
		m.RHS[c] = symbol.Neg(symbol.Div(flux))
		m.InitialConditions[c] = symbol.One()
		m.BoundaryConditions[flux] = BoundaryCondition{Left: symbol.Zero(), Right: symbol.Zero()}
		if err := m.CheckWellPosed(); err != nil {
			t.Errorf("expected a well-posed system, got %v", err)
		}
	})
}

func TestSummarizeIsDeterministic(t *testing.T) {
	build := func() *Model {
		m := New("test")
		for _, name := range []string{"b", "a", "c"} {
			v := symbol.NewVariable(name, symbol.NegativeElectrode)
			m.RHS[v] = symbol.Zero()
			m.Variables[name] = v
		}
		m.AddEvent(Event{Name: "z", Expression: symbol.Zero()})
		m.AddEvent(Event{Name: "a", Expression: symbol.Zero()})
		return m
	}

	s1, s2 := build().Summarize(), build().Summarize()
	if len(s1.Differential) != 3 {
		t.Fatalf("expected 3 differential entries, got %d", len(s1.Differential))
	}
	for i := range s1.Differential {
		if s1.Differential[i] != s2.Differential[i] {
			t.Errorf("differential entry %d differs between identical builds", i)
		}
	}
	for i, name := range []string{"a", "b", "c"} {
		if s1.Differential[i].State != name {
			t.Errorf("expected sorted state order, got %q at %d", s1.Differential[i].State, i)
		}
	}
	if s1.Events[0] != "a" || s1.Events[1] != "z" {
		t.Errorf("events should be sorted, got %v", s1.Events)
	}
}
