package battery

import (
	"github.com/cellsim-xyz/go-cellsim/model"
	"github.com/cellsim-xyz/go-cellsim/params"
	"github.com/cellsim-xyz/go-cellsim/symbol"
)

// Geometry1DMacroMicro names the default DFN geometry: a 1-D cell axis
// with a 1-D particle axis at every electrode point.
const Geometry1DMacroMicro = "1D macro, 1+1D micro"

// DFN is the Doyle-Fuller-Newman model of a lithium-ion battery: particle
// diffusion in both electrodes, Stefan-Maxwell electrolyte transport,
// Butler-Volmer kinetics, Ohmic electrode current, and an optional thermal
// submodel.
type DFN struct {
	*model.Model

	Param   *params.LithiumIon
	Options Options
}

// NewDFN assembles the DFN model. Submodels are constructed and merged in
// dependency order; any domain mismatch or merge collision aborts the
// whole assembly and no model is returned. Pass a nil parameter set to
// use the standard lithium-ion parameters.
func NewDFN(param *params.LithiumIon, opts Options) (_ *DFN, err error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if param == nil {
		param = params.NewLithiumIon()
	}
	defer symbol.RecoverDomainError(&err)

	m := model.New("Doyle-Fuller-Newman model")
	m.DefaultGeometry = Geometry1DMacroMicro
	reg := NewRegistry(opts)

	// Step 1: primary state variables and the potentials derived from
	// them. No dependencies.
	csnSurf := symbol.Surf(reg.CSn, true)
	cspSurf := symbol.Surf(reg.CSp, true)
	ocpN := param.UN(csnSurf)
	ocpP := param.UP(cspSurf)

	phiEParts := reg.PhiE.Orphans()
	deltaPhiN := symbol.Sub(reg.PhiSn, phiEParts[0])
	deltaPhiP := symbol.Sub(reg.PhiSp, phiEParts[2])
	etaRN := symbol.Sub(deltaPhiN, ocpN)
	etaRP := symbol.Sub(deltaPhiP, ocpP)

	primary := map[string]symbol.Symbol{
		"Current collector current density":               param.CurrentWithTime,
		"Electrolyte concentration":                       reg.CE,
		"Negative particle concentration":                 reg.CSn,
		"Positive particle concentration":                 reg.CSp,
		"Electrolyte potential":                           reg.PhiE,
		"Negative electrode potential":                    reg.PhiSn,
		"Positive electrode potential":                    reg.PhiSp,
		"Negative electrode surface potential difference": deltaPhiN,
		"Positive electrode surface potential difference": deltaPhiP,
		"Negative electrode open circuit potential":       ocpN,
		"Positive electrode open circuit potential":       ocpP,
		"Negative reaction overpotential":                 etaRN,
		"Positive reaction overpotential":                 etaRP,
	}
	switch opts.Thermal {
	case ThermalFull:
		primary["Cell temperature"] = reg.T
	case ThermalLumped:
		primary["Average cell temperature"] = reg.TAv
	}
	m.Report(primary)

	// Step 2: interfacial kinetics. Depends on surface concentrations
	// and potential differences.
	ceParts := reg.CE.Orphans()
	kin := NewKinetics(param)
	j0n := kin.ExchangeCurrentDensity(ceParts[0], csnSurf, Negative)
	j0p := kin.ExchangeCurrentDensity(ceParts[2], cspSurf, Positive)
	jn := kin.ButlerVolmer(j0n, etaRN)
	jp := kin.ButlerVolmer(j0p, etaRP)
	m.Report(kin.DerivedCurrentVariables(jn, jp, j0n, j0p))

	reactions := Reactions{
		ReactionMain: {
			Negative: ReactionTerm{InterfacialCurrent: jn, Stoichiometry: symbol.One()},
			Positive: ReactionTerm{InterfacialCurrent: jp, Stoichiometry: symbol.One()},
		},
	}

	// Step 3: particle diffusion, sourced by the interfacial currents.
	if err := m.Update(NewParticle(param, Negative).DifferentialSystem(reg.CSn, jn)); err != nil {
		return nil, err
	}
	if err := m.Update(NewParticle(param, Positive).DifferentialSystem(reg.CSp, jp)); err != nil {
		return nil, err
	}

	// Step 4: electrolyte transport.
	if err := m.Update(NewElectrolyteDiffusion(param).DifferentialSystem(reg, reactions)); err != nil {
		return nil, err
	}
	electrolyteCurrent := NewElectrolyteCurrent(param)
	if err := m.Update(electrolyteCurrent.AlgebraicSystem(reg, reactions, nil)); err != nil {
		return nil, err
	}

	// Step 5: electrode current, negative before positive so merge order
	// and error messages are reproducible.
	electrode := NewElectrode(param)
	if err := m.Update(electrode.AlgebraicSystem(reg, reactions, Negative)); err != nil {
		return nil, err
	}
	if err := m.Update(electrode.AlgebraicSystem(reg, reactions, Positive)); err != nil {
		return nil, err
	}

	// Step 6: thermal, per configuration.
	thermal := NewThermal(param)
	switch opts.Thermal {
	case ThermalFull:
		if err := m.Update(thermal.FullDifferentialSystem(reg, reactions, etaRN, etaRP)); err != nil {
			return nil, err
		}
	case ThermalLumped:
		if err := m.Update(thermal.LumpedDifferentialSystem(reg, reactions, etaRN, etaRP)); err != nil {
			return nil, err
		}
	}

	// Step 7: post-process. Refresh derived reporting variables now that
	// every upstream quantity exists, then record the voltage cutoff.
	m.Report(kin.DerivedCurrentVariables(jn, jp, j0n, j0p))
	potential := NewPotential(param)
	m.Report(potential.DerivedOpenCircuitPotentials(ocpN, ocpP))
	m.Report(potential.DerivedReactionOverpotentials(etaRN, etaRP))

	iSN, err := m.Variable("Negative electrode current density")
	if err != nil {
		return nil, err
	}
	iSP, err := m.Variable("Positive electrode current density")
	if err != nil {
		return nil, err
	}
	m.Report(electrode.VoltageVariables(reg.PhiSn, reg.PhiSp, iSN, iSP))

	voltage, err := m.Variable("Terminal voltage")
	if err != nil {
		return nil, err
	}
	m.AddEvent(model.Event{
		Name:       "Minimum voltage",
		Expression: symbol.Sub(voltage, param.VoltageLowCut),
	})

	if err := m.CheckWellPosed(); err != nil {
		return nil, err
	}
	return &DFN{Model: m, Param: param, Options: opts}, nil
}
