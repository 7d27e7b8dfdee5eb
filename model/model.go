// Package model implements the accumulation target for symbolic cell
// models and the merge protocol by which independently authored physical
// submodels contribute equations to it. A submodel construction call
// returns an immutable Contribution; Model.Update merges contributions,
// rejecting key collisions; CheckWellPosed verifies the finished system
// before it is handed to an external discretizer.
package model

import (
	"fmt"
	"sort"

	"github.com/cellsim-xyz/go-cellsim/symbol"
)

// Field names one of the five merged mappings, for error reporting.
type Field string

const (
	FieldVariables          Field = "variables"
	FieldRHS                Field = "rhs"
	FieldAlgebraic          Field = "algebraic"
	FieldBoundaryConditions Field = "boundary conditions"
	FieldInitialConditions  Field = "initial conditions"
)

// SolverHint tells the external integrator what kind of system it faces.
type SolverHint int

const (
	// SolverODE marks a purely differential system.
	SolverODE SolverHint = iota
	// SolverDAE marks a system with algebraic constraints, requiring a
	// DAE-capable integrator.
	SolverDAE
)

func (h SolverHint) String() string {
	if h == SolverDAE {
		return "dae"
	}
	return "ode"
}

// Event is a root-finding trigger: integration halts when the expression
// crosses zero.
type Event struct {
	Name       string
	Expression symbol.Symbol
}

// BoundaryCondition holds the left and right boundary values attached to a
// flux or field expression.
type BoundaryCondition struct {
	Left  symbol.Symbol
	Right symbol.Symbol
}

// Contribution is the immutable record a submodel construction call
// returns: equations, conditions, reporting variables, and termination
// events, ready to be merged into a Model. A contribution is merged into
// at most one target and not read afterwards.
type Contribution struct {
	Variables          map[string]symbol.Symbol
	RHS                map[symbol.Symbol]symbol.Symbol
	Algebraic          map[symbol.Symbol]symbol.Symbol
	BoundaryConditions map[symbol.Symbol]BoundaryCondition
	InitialConditions  map[symbol.Symbol]symbol.Symbol
	Events             []Event
	Solver             SolverHint
}

// Model is the accumulation target for a full cell model. It owns the
// merged mappings plus the geometry and solver hints consumed by the
// external discretization and solving collaborators.
type Model struct {
	Name string

	Variables          map[string]symbol.Symbol
	RHS                map[symbol.Symbol]symbol.Symbol
	Algebraic          map[symbol.Symbol]symbol.Symbol
	BoundaryConditions map[symbol.Symbol]BoundaryCondition
	InitialConditions  map[symbol.Symbol]symbol.Symbol
	Events             []Event

	// DefaultGeometry names the spatial-domain/mesh specification the
	// discretizer should use.
	DefaultGeometry string

	solver SolverHint
}

// New creates an empty model.
func New(name string) *Model {
	return &Model{
		Name:               name,
		Variables:          make(map[string]symbol.Symbol),
		RHS:                make(map[symbol.Symbol]symbol.Symbol),
		Algebraic:          make(map[symbol.Symbol]symbol.Symbol),
		BoundaryConditions: make(map[symbol.Symbol]BoundaryCondition),
		InitialConditions:  make(map[symbol.Symbol]symbol.Symbol),
	}
}

// DefaultSolver reports the solver kind the accumulated system requires.
func (m *Model) DefaultSolver() SolverHint { return m.solver }

// Variable looks up a named reporting variable populated by an earlier
// assembly step.
func (m *Model) Variable(name string) (symbol.Symbol, error) {
	s, ok := m.Variables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVariableNotFound, name)
	}
	return s, nil
}

// Report inserts or refreshes derived reporting variables. Unlike Update,
// refreshing an existing name is allowed: post-processing recomputes
// derived quantities once all upstream variables exist. Reporting
// variables have no effect on the solved system.
func (m *Model) Report(vars map[string]symbol.Symbol) {
	for name, s := range vars {
		m.Variables[name] = s
	}
}

// AddEvent appends a termination event.
func (m *Model) AddEvent(e Event) {
	m.Events = append(m.Events, e)
}

// Update merges a contribution into the model. For each of the five
// mappings, a key already present in the target is a construction error;
// events always append. The merge is atomic: every mapping is scanned for
// collisions, in deterministic order, before anything is inserted, so a
// failed Update leaves the model unchanged.
func (m *Model) Update(c *Contribution) error {
	for key := range c.RHS {
		if err := checkStateKey(key); err != nil {
			return err
		}
	}
	for key := range c.Algebraic {
		if err := checkStateKey(key); err != nil {
			return err
		}
	}

	for _, name := range sortedNames(c.Variables) {
		if _, ok := m.Variables[name]; ok {
			return &MergeError{Field: FieldVariables, Key: name}
		}
	}
	for _, key := range sortedKeys(c.RHS) {
		if _, ok := m.RHS[key]; ok {
			return &MergeError{Field: FieldRHS, Key: key.String()}
		}
	}
	for _, key := range sortedKeys(c.Algebraic) {
		if _, ok := m.Algebraic[key]; ok {
			return &MergeError{Field: FieldAlgebraic, Key: key.String()}
		}
	}
	for _, key := range sortedBCKeys(c.BoundaryConditions) {
		if _, ok := m.BoundaryConditions[key]; ok {
			return &MergeError{Field: FieldBoundaryConditions, Key: key.String()}
		}
	}
	for _, key := range sortedKeys(c.InitialConditions) {
		if _, ok := m.InitialConditions[key]; ok {
			return &MergeError{Field: FieldInitialConditions, Key: key.String()}
		}
	}

	for name, s := range c.Variables {
		m.Variables[name] = s
	}
	for key, s := range c.RHS {
		m.RHS[key] = s
	}
	for key, s := range c.Algebraic {
		m.Algebraic[key] = s
	}
	for key, bc := range c.BoundaryConditions {
		m.BoundaryConditions[key] = bc
	}
	for key, s := range c.InitialConditions {
		m.InitialConditions[key] = s
	}
	m.Events = append(m.Events, c.Events...)
	if c.Solver > m.solver {
		m.solver = c.Solver
	}
	return nil
}

// CheckWellPosed verifies the merged system: the RHS and Algebraic key
// sets must be disjoint (each state variable governed by exactly one kind
// of equation), and every boundary or initial condition must refer to
// governed state variables. Run at finalization, not per merge, so that
// multi-step assembly can attach conditions as it goes.
func (m *Model) CheckWellPosed() error {
	for _, key := range sortedKeys(m.RHS) {
		if _, ok := m.Algebraic[key]; ok {
			return fmt.Errorf("%w: %q governed by both rhs and algebraic", ErrIllPosed, key)
		}
	}

	governed := make(map[*symbol.Variable]bool)
	for key := range m.RHS {
		for _, v := range symbol.Variables(key) {
			governed[v] = true
		}
	}
	for key := range m.Algebraic {
		for _, v := range symbol.Variables(key) {
			governed[v] = true
		}
	}

	for _, key := range sortedBCKeys(m.BoundaryConditions) {
		vars := symbol.Variables(key)
		if len(vars) == 0 {
			return fmt.Errorf("%w: boundary condition on %q references no state variable", ErrIllPosed, key)
		}
		for _, v := range vars {
			if !governed[v] {
				return fmt.Errorf("%w: boundary condition on %q references ungoverned variable %q", ErrIllPosed, key, v.Name())
			}
		}
	}
	for _, key := range sortedKeys(m.InitialConditions) {
		if _, ok := m.RHS[key]; ok {
			continue
		}
		if _, ok := m.Algebraic[key]; ok {
			continue
		}
		return fmt.Errorf("%w: initial condition on %q, which has no governing equation", ErrIllPosed, key)
	}
	return nil
}

// checkStateKey verifies that an equation key is a state variable or a
// concatenation of state variables.
func checkStateKey(key symbol.Symbol) error {
	switch k := key.(type) {
	case *symbol.Variable:
		return nil
	case *symbol.Concatenation:
		for _, part := range k.Orphans() {
			if _, ok := part.(*symbol.Variable); !ok {
				return fmt.Errorf("%w: concatenation part %q", ErrBadKey, part)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrBadKey, key)
	}
}

func sortedNames(m map[string]symbol.Symbol) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(m map[symbol.Symbol]symbol.Symbol) []symbol.Symbol {
	keys := make([]symbol.Symbol, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func sortedBCKeys(m map[symbol.Symbol]BoundaryCondition) []symbol.Symbol {
	keys := make([]symbol.Symbol, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}
