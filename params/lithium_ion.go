// Package params supplies the named parameter symbols and spatial
// variables consumed by the physical submodels. The engine treats every
// parameter as an opaque leaf: values, scalings, and non-dimensionalization
// tables belong to the external parameter collaborator that substitutes
// into the assembled expressions.
package params

import "github.com/cellsim-xyz/go-cellsim/symbol"

// LithiumIon is the standard dimensionless lithium-ion parameter set.
// Construct one per assembly with NewLithiumIon.
type LithiumIon struct {
	// Geometry: electrode and separator thickness fractions.
	LN symbol.Symbol
	LS symbol.Symbol
	LP symbol.Symbol

	// Electrolyte transport.
	TPlus  symbol.Symbol // transference number
	CE     symbol.Symbol // ratio of diffusion to discharge timescales
	GammaE symbol.Symbol // concentration scale ratio
	B      symbol.Symbol // Bruggeman exponent

	// Porosity over the three cell subdomains.
	Epsilon *symbol.Concatenation

	// Particles.
	CN     symbol.Symbol // negative particle diffusion timescale ratio
	CP     symbol.Symbol // positive particle diffusion timescale ratio
	AN     symbol.Symbol // negative surface area to volume ratio
	AP     symbol.Symbol // positive surface area to volume ratio
	GammaP symbol.Symbol // positive/negative concentration scale ratio

	// Kinetics.
	GammaJN symbol.Symbol // negative exchange-current scale
	GammaJP symbol.Symbol // positive exchange-current scale
	Ne      symbol.Symbol // number of electrons in the reaction

	// Electrodes.
	SigmaN symbol.Symbol // negative solid conductivity
	SigmaP symbol.Symbol // positive solid conductivity

	// Thermal.
	CTh    symbol.Symbol // lumped heat capacity
	H      symbol.Symbol // cooling coefficient
	TAmb   symbol.Symbol // ambient temperature
	TInit  symbol.Symbol // initial temperature
	Lambda symbol.Symbol // thermal conductivity

	// Operating conditions.
	CurrentWithTime symbol.Symbol // applied current density over time
	VoltageLowCut   symbol.Symbol // lower voltage cutoff

	// Initial concentrations.
	CNInit symbol.Symbol
	CPInit symbol.Symbol
	CEInit symbol.Symbol

	// Scalings used for dimensional reporting variables.
	ITyp     symbol.Symbol // typical current density [A m-2]
	PotScale symbol.Symbol // thermal voltage scale [V]
	UNRef    symbol.Symbol // negative reference potential [V]
	DeltaT   symbol.Symbol // temperature scale [K]

	// Spatial variables per subdomain.
	XN *symbol.SpatialVariable
	XS *symbol.SpatialVariable
	XP *symbol.SpatialVariable
	RN *symbol.SpatialVariable
	RP *symbol.SpatialVariable
}

// NewLithiumIon builds the standard parameter set. Each call produces
// fresh leaves so repeated assemblies share no symbol state.
func NewLithiumIon() *LithiumIon {
	p := &LithiumIon{
		LN:              symbol.NewParameter("l_n"),
		LS:              symbol.NewParameter("l_s"),
		LP:              symbol.NewParameter("l_p"),
		TPlus:           symbol.NewParameter("t_plus"),
		CE:              symbol.NewParameter("C_e"),
		GammaE:          symbol.NewParameter("gamma_e"),
		B:               symbol.NewParameter("b"),
		CN:              symbol.NewParameter("C_n"),
		CP:              symbol.NewParameter("C_p"),
		AN:              symbol.NewParameter("a_n"),
		AP:              symbol.NewParameter("a_p"),
		GammaP:          symbol.NewParameter("gamma_p"),
		GammaJN:         symbol.NewParameter("gamma_j_n"),
		GammaJP:         symbol.NewParameter("gamma_j_p"),
		Ne:              symbol.NewParameter("ne"),
		SigmaN:          symbol.NewParameter("sigma_n"),
		SigmaP:          symbol.NewParameter("sigma_p"),
		CTh:             symbol.NewParameter("C_th"),
		H:               symbol.NewParameter("h"),
		TAmb:            symbol.NewParameter("T_amb"),
		TInit:           symbol.NewParameter("T_init"),
		Lambda:          symbol.NewParameter("lambda"),
		CurrentWithTime: symbol.NewParameter("i_cell"),
		VoltageLowCut:   symbol.NewParameter("voltage_low_cut"),
		CNInit:          symbol.NewParameter("c_n_init"),
		CPInit:          symbol.NewParameter("c_p_init"),
		CEInit:          symbol.NewParameter("c_e_init"),
		ITyp:            symbol.NewParameter("i_typ"),
		PotScale:        symbol.NewParameter("potential_scale"),
		UNRef:           symbol.NewParameter("U_n_ref"),
		DeltaT:          symbol.NewParameter("delta_T"),
		XN:              symbol.NewSpatialVariable("x_n", symbol.NegativeElectrode),
		XS:              symbol.NewSpatialVariable("x_s", symbol.Separator),
		XP:              symbol.NewSpatialVariable("x_p", symbol.PositiveElectrode),
		RN:              symbol.NewSpatialVariable("r_n", symbol.NegativeParticle),
		RP:              symbol.NewSpatialVariable("r_p", symbol.PositiveParticle),
	}
	p.Epsilon = symbol.NewConcatenation(
		symbol.NewBroadcast(symbol.NewParameter("eps_n"), symbol.NegativeElectrode),
		symbol.NewBroadcast(symbol.NewParameter("eps_s"), symbol.Separator),
		symbol.NewBroadcast(symbol.NewParameter("eps_p"), symbol.PositiveElectrode),
	)
	return p
}

// KappaE is the electrolyte conductivity as a function of concentration.
func (p *LithiumIon) KappaE(c symbol.Symbol) symbol.Symbol { return symbol.Fn("kappa_e", c) }

// Chi is the thermodynamic factor as a function of concentration.
func (p *LithiumIon) Chi(c symbol.Symbol) symbol.Symbol { return symbol.Fn("chi", c) }

// UN is the negative electrode open-circuit potential.
func (p *LithiumIon) UN(c symbol.Symbol) symbol.Symbol { return symbol.Fn("U_n", c) }

// UP is the positive electrode open-circuit potential.
func (p *LithiumIon) UP(c symbol.Symbol) symbol.Symbol { return symbol.Fn("U_p", c) }

// DN is the negative particle diffusivity.
func (p *LithiumIon) DN(c symbol.Symbol) symbol.Symbol { return symbol.Fn("D_n", c) }

// DP is the positive particle diffusivity.
func (p *LithiumIon) DP(c symbol.Symbol) symbol.Symbol { return symbol.Fn("D_p", c) }
