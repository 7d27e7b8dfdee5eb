package battery

import "github.com/cellsim-xyz/go-cellsim/symbol"

// Registry holds the primary state variables of one model assembly. A
// fresh registry is built per assembly call so that repeated assemblies
// never share symbol state.
type Registry struct {
	// Particle concentrations.
	CSn *symbol.Variable
	CSp *symbol.Variable

	// Electrolyte concentration, per subdomain and concatenated.
	CEn *symbol.Variable
	CEs *symbol.Variable
	CEp *symbol.Variable
	CE  *symbol.Concatenation

	// Electrolyte potential, per subdomain and concatenated.
	PhiEn *symbol.Variable
	PhiEs *symbol.Variable
	PhiEp *symbol.Variable
	PhiE  *symbol.Concatenation

	// Electrode potentials.
	PhiSn *symbol.Variable
	PhiSp *symbol.Variable

	// Cell temperature (full thermal model only).
	Tn *symbol.Variable
	Ts *symbol.Variable
	Tp *symbol.Variable
	T  *symbol.Concatenation

	// Averaged cell temperature (lumped thermal model only).
	TAv *symbol.Variable
}

// NewRegistry declares the primary state variables for one assembly. The
// thermal option decides which temperature state, if any, exists.
func NewRegistry(opts Options) *Registry {
	r := &Registry{
		CSn:   symbol.NewVariable("Negative particle concentration", symbol.NegativeParticle),
		CSp:   symbol.NewVariable("Positive particle concentration", symbol.PositiveParticle),
		CEn:   symbol.NewVariable("Negative electrolyte concentration", symbol.NegativeElectrode),
		CEs:   symbol.NewVariable("Separator electrolyte concentration", symbol.Separator),
		CEp:   symbol.NewVariable("Positive electrolyte concentration", symbol.PositiveElectrode),
		PhiEn: symbol.NewVariable("Negative electrolyte potential", symbol.NegativeElectrode),
		PhiEs: symbol.NewVariable("Separator electrolyte potential", symbol.Separator),
		PhiEp: symbol.NewVariable("Positive electrolyte potential", symbol.PositiveElectrode),
		PhiSn: symbol.NewVariable("Negative electrode potential", symbol.NegativeElectrode),
		PhiSp: symbol.NewVariable("Positive electrode potential", symbol.PositiveElectrode),
	}
	r.CE = symbol.NewConcatenation(r.CEn, r.CEs, r.CEp)
	r.PhiE = symbol.NewConcatenation(r.PhiEn, r.PhiEs, r.PhiEp)

	switch opts.Thermal {
	case ThermalFull:
		r.Tn = symbol.NewVariable("Negative electrode temperature", symbol.NegativeElectrode)
		r.Ts = symbol.NewVariable("Separator temperature", symbol.Separator)
		r.Tp = symbol.NewVariable("Positive electrode temperature", symbol.PositiveElectrode)
		r.T = symbol.NewConcatenation(r.Tn, r.Ts, r.Tp)
	case ThermalLumped:
		r.TAv = symbol.NewVariable("Average cell temperature")
	}
	return r
}
