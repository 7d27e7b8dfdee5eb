package battery

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cellsim-xyz/go-cellsim/model"
)

func TestDFNAssembles(t *testing.T) {
	dfn, err := NewDFN(nil, DefaultOptions())
	if err != nil {
		t.Fatalf("assembly: %v", err)
	}

	if got := dfn.DefaultSolver(); got != model.SolverDAE {
		t.Errorf("expected dae solver hint, got %s", got)
	}
	if dfn.DefaultGeometry != Geometry1DMacroMicro {
		t.Errorf("expected geometry %q, got %q", Geometry1DMacroMicro, dfn.DefaultGeometry)
	}

	// Two particle concentrations and the electrolyte concentration are
	// differential; both electrode potentials and the electrolyte
	// potential are algebraic.
	if len(dfn.RHS) != 3 {
		t.Errorf("expected 3 differential states, got %d", len(dfn.RHS))
	}
	if len(dfn.Algebraic) != 3 {
		t.Errorf("expected 3 algebraic states, got %d", len(dfn.Algebraic))
	}

	// Exactly one termination event: the voltage cutoff.
	if len(dfn.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(dfn.Events))
	}
	if dfn.Events[0].Name != "Minimum voltage" {
		t.Errorf("expected event %q, got %q", "Minimum voltage", dfn.Events[0].Name)
	}

	// The isothermal assembly must not mention temperature.
	for _, name := range []string{"Cell temperature", "Average cell temperature"} {
		if _, ok := dfn.Variables[name]; ok {
			t.Errorf("isothermal model should not report %q", name)
		}
	}

	for _, name := range []string{
		"Terminal voltage",
		"Terminal voltage [V]",
		"Electrolyte concentration",
		"Electrolyte potential [V]",
		"Interfacial current density",
		"Exchange current density",
		"Measured open circuit voltage",
		"Negative particle surface concentration",
		"Positive particle surface concentration",
		"Electrolyte flux",
		"Electrode current density",
	} {
		if _, ok := dfn.Variables[name]; !ok {
			t.Errorf("missing reporting variable %q", name)
		}
	}
}

func TestDFNStatesAreDisjoint(t *testing.T) {
	dfn, err := NewDFN(nil, DefaultOptions())
	if err != nil {
		t.Fatalf("assembly: %v", err)
	}
	for key := range dfn.RHS {
		if _, ok := dfn.Algebraic[key]; ok {
			t.Errorf("state %q governed by both rhs and algebraic", key)
		}
	}
	// Every governed state has an initial condition.
	for key := range dfn.RHS {
		if _, ok := dfn.InitialConditions[key]; !ok {
			t.Errorf("differential state %q has no initial condition", key)
		}
	}
	for key := range dfn.Algebraic {
		if _, ok := dfn.InitialConditions[key]; !ok {
			t.Errorf("algebraic state %q has no initial condition", key)
		}
	}
}

func TestDFNThermalFull(t *testing.T) {
	dfn, err := NewDFN(nil, Options{Thermal: ThermalFull})
	if err != nil {
		t.Fatalf("assembly: %v", err)
	}

	// The temperature PDE adds one differential state.
	if len(dfn.RHS) != 4 {
		t.Errorf("expected 4 differential states, got %d", len(dfn.RHS))
	}
	for _, name := range []string{"Cell temperature", "Cell temperature [K]", "Heat source"} {
		if _, ok := dfn.Variables[name]; !ok {
			t.Errorf("missing reporting variable %q", name)
		}
	}
}

func TestDFNThermalLumped(t *testing.T) {
	dfn, err := NewDFN(nil, Options{Thermal: ThermalLumped})
	if err != nil {
		t.Fatalf("assembly: %v", err)
	}

	tAv, ok := dfn.Variables["Average cell temperature"]
	if !ok {
		t.Fatalf("missing reporting variable %q", "Average cell temperature")
	}
	if _, ok := dfn.RHS[tAv]; !ok {
		t.Errorf("averaged temperature should be a differential state")
	}
	if _, ok := dfn.Algebraic[tAv]; ok {
		t.Errorf("averaged temperature must not be algebraic")
	}
	if _, ok := dfn.Variables["Average heat source"]; !ok {
		t.Errorf("missing reporting variable %q", "Average heat source")
	}
}

func TestDFNRejectsUnknownThermal(t *testing.T) {
	_, err := NewDFN(nil, Options{Thermal: "convective"})
	if !errors.Is(err, ErrUnknownOption) {
		t.Errorf("expected ErrUnknownOption, got %v", err)
	}
}

func TestDFNAssemblyIsDeterministic(t *testing.T) {
	first, err := NewDFN(nil, Options{Thermal: ThermalLumped})
	if err != nil {
		t.Fatalf("first assembly: %v", err)
	}
	second, err := NewDFN(nil, Options{Thermal: ThermalLumped})
	if err != nil {
		t.Fatalf("second assembly: %v", err)
	}

	if !reflect.DeepEqual(first.Summarize(), second.Summarize()) {
		t.Errorf("repeated assemblies should produce identical summaries")
	}
}

func TestDFNAssembliesShareNoState(t *testing.T) {
	first, err := NewDFN(nil, DefaultOptions())
	if err != nil {
		t.Fatalf("first assembly: %v", err)
	}
	second, err := NewDFN(nil, DefaultOptions())
	if err != nil {
		t.Fatalf("second assembly: %v", err)
	}

	a := first.Variables["Electrolyte concentration"]
	b := second.Variables["Electrolyte concentration"]
	if a == b {
		t.Errorf("assemblies must not share symbol nodes")
	}
	if first.Param == second.Param {
		t.Errorf("assemblies must not share parameter sets")
	}
}
