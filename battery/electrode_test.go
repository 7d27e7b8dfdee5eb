package battery

import (
	"strings"
	"testing"

	"github.com/cellsim-xyz/go-cellsim/params"
	"github.com/cellsim-xyz/go-cellsim/symbol"
)

func TestElectrodeBoundaryOrientation(t *testing.T) {
	p, reg, reactions := electrolyteFixture()
	e := NewElectrode(p)

	// The applied current enters the negative electrode at the left
	// collector and the positive electrode at the right.
	neg := e.AlgebraicSystem(reg, reactions, Negative)
	for _, bc := range neg.BoundaryConditions {
		if !symbol.Equal(bc.Left, p.CurrentWithTime) || !symbol.Equal(bc.Right, symbol.Zero()) {
			t.Errorf("negative electrode current should enter on the left")
		}
	}
	pos := e.AlgebraicSystem(reg, reactions, Positive)
	for _, bc := range pos.BoundaryConditions {
		if !symbol.Equal(bc.Left, symbol.Zero()) || !symbol.Equal(bc.Right, p.CurrentWithTime) {
			t.Errorf("positive electrode current should enter on the right")
		}
	}

	// The negative potential is grounded; the positive starts at the
	// open-circuit voltage.
	if !symbol.Equal(neg.InitialConditions[reg.PhiSn], symbol.Zero()) {
		t.Errorf("negative electrode potential should initialise to zero")
	}
	posInit := pos.InitialConditions[reg.PhiSp]
	if posInit == nil || !strings.Contains(posInit.String(), "U_p(c_p_init)") {
		t.Errorf("unexpected positive electrode initial potential: %s", posInit)
	}
}

func TestVoltageVariables(t *testing.T) {
	p, reg, reactions := electrolyteFixture()
	e := NewElectrode(p)

	neg := e.AlgebraicSystem(reg, reactions, Negative)
	pos := e.AlgebraicSystem(reg, reactions, Positive)
	iSN := neg.Variables["Negative electrode current density"]
	iSP := pos.Variables["Positive electrode current density"]

	vars := e.VoltageVariables(reg.PhiSn, reg.PhiSp, iSN, iSP)

	voltage := vars["Terminal voltage"]
	if voltage == nil {
		t.Fatalf("missing terminal voltage")
	}
	// The voltage is the potential difference between the collector
	// surfaces, a domain-independent quantity.
	if !voltage.Domain().Empty() {
		t.Errorf("terminal voltage should be domain-independent, got [%s]", voltage.Domain())
	}
	if !strings.Contains(voltage.String(), "surf(") {
		t.Errorf("terminal voltage should be built from surface values, got %s", voltage)
	}

	whole := symbol.NewDomain(symbol.NegativeElectrode, symbol.Separator, symbol.PositiveElectrode)
	iS := vars["Electrode current density"]
	if iS == nil || !iS.Domain().Equal(whole) {
		t.Errorf("electrode current density should span the cell")
	}
}

func TestThermalSystems(t *testing.T) {
	p := params.NewLithiumIon()
	jn := symbol.NewVariable("j_n", symbol.NegativeElectrode)
	jp := symbol.NewVariable("j_p", symbol.PositiveElectrode)
	reactions := Reactions{
		ReactionMain: {
			Negative: ReactionTerm{InterfacialCurrent: jn, Stoichiometry: symbol.One()},
			Positive: ReactionTerm{InterfacialCurrent: jp, Stoichiometry: symbol.One()},
		},
	}
	etaRN := symbol.NewVariable("eta_r_n", symbol.NegativeElectrode)
	etaRP := symbol.NewVariable("eta_r_p", symbol.PositiveElectrode)
	th := NewThermal(p)

	t.Run("full", func(t *testing.T) {
		reg := NewRegistry(Options{Thermal: ThermalFull})
		c := th.FullDifferentialSystem(reg, reactions, etaRN, etaRP)
		rhs, ok := c.RHS[reg.T]
		if !ok {
			t.Fatalf("expected a PDE keyed by the cell temperature")
		}
		if !strings.Contains(rhs.String(), "div(") {
			t.Errorf("conduction should appear as a divergence, got %s", rhs)
		}
		if len(c.BoundaryConditions) != 1 {
			t.Errorf("expected insulating boundary conditions")
		}
	})

	t.Run("lumped", func(t *testing.T) {
		reg := NewRegistry(Options{Thermal: ThermalLumped})
		c := th.LumpedDifferentialSystem(reg, reactions, etaRN, etaRP)
		rhs, ok := c.RHS[reg.TAv]
		if !ok {
			t.Fatalf("expected an ODE keyed by the averaged temperature")
		}
		// Newton cooling toward the ambient temperature.
		if !strings.Contains(rhs.String(), "T_amb") {
			t.Errorf("lumped model should cool toward the ambient, got %s", rhs)
		}
		if len(c.BoundaryConditions) != 0 {
			t.Errorf("a lumped ODE has no boundary conditions")
		}
	})
}
