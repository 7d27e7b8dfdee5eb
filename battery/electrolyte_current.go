package battery

import (
	"github.com/cellsim-xyz/go-cellsim/model"
	"github.com/cellsim-xyz/go-cellsim/params"
	"github.com/cellsim-xyz/go-cellsim/symbol"
)

// ElectrolyteCurrent builds the MacInnes equation for the potential and
// current in the electrolyte, derived from the Stefan-Maxwell equations.
// The conservation equation is algebraic: charge has no capacitance here,
// so the model requires a DAE-capable integrator.
type ElectrolyteCurrent struct {
	param *params.LithiumIon
}

// NewElectrolyteCurrent creates the electrolyte current submodel.
func NewElectrolyteCurrent(param *params.LithiumIon) *ElectrolyteCurrent {
	return &ElectrolyteCurrent{param: param}
}

// AlgebraicSystem builds the electrolyte charge conservation constraint,
// with porosity optionally overridden; pass nil to use the parameter set's
// porosity.
func (e *ElectrolyteCurrent) AlgebraicSystem(reg *Registry, reactions Reactions, epsilon symbol.Symbol) *model.Contribution {
	p := e.param
	ce := reg.CE
	phiE := reg.PhiE
	if epsilon == nil {
		epsilon = p.Epsilon
	}

	j := reactions[ReactionMain].WholeCellCurrent()

	// MacInnes constitutive law for the electrolyte current density.
	conductivity := symbol.Divide(
		symbol.Mul(p.KappaE(ce), symbol.Mul(symbol.Pow(epsilon, p.B), p.GammaE)),
		p.CE,
	)
	iE := symbol.Mul(conductivity,
		symbol.Sub(
			symbol.Divide(symbol.Mul(p.Chi(ce), symbol.Grad(ce)), ce),
			symbol.Grad(phiE),
		))

	// Average electrolyte overpotential, ohmic plus concentration parts.
	orphans := phiE.Orphans()
	etaEAv := symbol.Sub(symbol.Average(orphans[2]), symbol.Average(orphans[0]))

	vars := e.getVariables(phiE, iE, etaEAv)

	return &model.Contribution{
		Algebraic: map[symbol.Symbol]symbol.Symbol{
			phiE: symbol.Sub(symbol.Div(iE), j),
		},
		BoundaryConditions: map[symbol.Symbol]model.BoundaryCondition{
			iE: {Left: symbol.Zero(), Right: symbol.Zero()},
		},
		InitialConditions: map[symbol.Symbol]symbol.Symbol{
			phiE: symbol.Neg(p.UN(p.CNInit)),
		},
		Variables: vars,
		Solver:    model.SolverDAE,
	}
}

// getVariables builds the reporting variables for the electrolyte current
// submodel, dimensionless and scaled. Pure: it never touches submodel
// state and may be called again during post-processing.
func (e *ElectrolyteCurrent) getVariables(phiE *symbol.Concatenation, iE, etaEAv symbol.Symbol) map[string]symbol.Symbol {
	p := e.param
	orphans := phiE.Orphans()
	phiEn, phiEs, phiEp := orphans[0], orphans[1], orphans[2]

	dim := func(phi symbol.Symbol) symbol.Symbol {
		return symbol.Add(symbol.Neg(p.UNRef), symbol.Mul(p.PotScale, phi))
	}

	return map[string]symbol.Symbol{
		"Electrolyte current density":           iE,
		"Average electrolyte overpotential":     etaEAv,
		"Negative electrolyte potential [V]":    dim(phiEn),
		"Separator electrolyte potential [V]":   dim(phiEs),
		"Positive electrolyte potential [V]":    dim(phiEp),
		"Electrolyte potential [V]":             dim(phiE),
		"Electrolyte current density [A m-2]":   symbol.Mul(p.ITyp, iE),
		"Average electrolyte overpotential [V]": symbol.Mul(p.PotScale, etaEAv),
	}
}

// splitOverpotentialVariables reports the electrolyte overpotential split
// into its concentration and ohmic parts.
func (e *ElectrolyteCurrent) splitOverpotentialVariables(etaCAv, deltaPhiEAv symbol.Symbol) map[string]symbol.Symbol {
	p := e.param
	return map[string]symbol.Symbol{
		"Average concentration overpotential":     etaCAv,
		"Average electrolyte ohmic losses":        deltaPhiEAv,
		"Average concentration overpotential [V]": symbol.Mul(p.PotScale, etaCAv),
		"Average electrolyte ohmic losses [V]":    symbol.Mul(p.PotScale, deltaPhiEAv),
	}
}

// ExplicitLeadingOrder returns the closed-form leading-order solution of
// the electrolyte current conservation equation. Used by reduced-order
// models in place of the algebraic system.
func (e *ElectrolyteCurrent) ExplicitLeadingOrder(ocpN, etaRN symbol.Symbol) map[string]symbol.Symbol {
	p := e.param
	iCell := p.CurrentWithTime

	// At leading order the electrolyte potential is spatially uniform.
	phiEConst := symbol.Neg(symbol.Add(symbol.Average(ocpN), symbol.Average(etaRN)))
	phiE := symbol.NewConcatenation(
		symbol.NewBroadcast(phiEConst, symbol.NegativeElectrode),
		symbol.NewBroadcast(phiEConst, symbol.Separator),
		symbol.NewBroadcast(phiEConst, symbol.PositiveElectrode),
	)

	// Current profile: linear ramps in the electrodes, uniform in the
	// separator.
	iEn := symbol.Divide(symbol.Mul(iCell, p.XN), p.LN)
	iEs := symbol.NewBroadcast(iCell, symbol.Separator)
	iEp := symbol.Divide(symbol.Mul(iCell, symbol.Sub(symbol.One(), p.XP)), p.LP)
	iE := symbol.NewConcatenation(iEn, iEs, iEp)

	etaCAv := symbol.Zero()
	deltaPhiEAv := symbol.Zero()
	etaEAv := symbol.Add(etaCAv, deltaPhiEAv)

	vars := e.getVariables(phiE, iE, etaEAv)
	for name, s := range e.splitOverpotentialVariables(etaCAv, deltaPhiEAv) {
		vars[name] = s
	}
	return vars
}

// ExplicitCombined returns the combined leading- and first-order solution
// of the electrolyte current conservation equation. The current density
// itself stays at leading order.
func (e *ElectrolyteCurrent) ExplicitCombined(ocpN, etaRN symbol.Symbol, ce *symbol.Concatenation, phiSN symbol.Symbol) map[string]symbol.Symbol {
	p := e.param
	iCell := p.CurrentWithTime
	two := symbol.NewScalar(2)
	migration := symbol.Mul(two, symbol.Sub(symbol.One(), p.TPlus))

	orphans := ce.Orphans()
	ceN, ceS, ceP := orphans[0], orphans[1], orphans[2]

	// Leading-order bulk conductivities per region.
	kappa0 := p.KappaE(symbol.One())
	epsOrphans := p.Epsilon.Orphans()
	effective := func(eps symbol.Symbol) symbol.Symbol {
		b, ok := eps.(*symbol.Broadcast)
		if ok {
			eps = b.Child()
		}
		return symbol.Mul(kappa0, symbol.Pow(eps, p.B))
	}
	kappaN := effective(epsOrphans[0])
	kappaS := effective(epsOrphans[1])
	kappaP := effective(epsOrphans[2])

	ohmicScale := symbol.Divide(symbol.Mul(iCell, p.CE), p.GammaE)

	phiEConst := symbol.Sub(
		symbol.Add(
			symbol.Neg(symbol.Add(symbol.Average(ocpN), symbol.Average(etaRN))),
			symbol.Average(phiSN),
		),
		symbol.Add(
			symbol.Mul(migration, symbol.Average(symbol.Fn("log", ceN))),
			symbol.Mul(symbol.Mul(ohmicScale, p.LN),
				symbol.Sub(
					symbol.Divide(symbol.One(), symbol.Mul(symbol.NewScalar(3), kappaN)),
					symbol.Divide(symbol.One(), kappaS),
				)),
		),
	)

	phiEn := symbol.Add(phiEConst,
		symbol.Sub(
			symbol.Mul(migration, symbol.Fn("log", ceN)),
			symbol.Mul(ohmicScale,
				symbol.Add(
					symbol.Divide(
						symbol.Sub(symbol.Pow(p.XN, two), symbol.Pow(p.LN, two)),
						symbol.Mul(two, symbol.Mul(kappaN, p.LN))),
					symbol.Divide(p.LN, kappaS),
				)),
		))
	phiEs := symbol.Add(phiEConst,
		symbol.Sub(
			symbol.Mul(migration, symbol.Fn("log", ceS)),
			symbol.Mul(ohmicScale, symbol.Divide(p.XS, kappaS)),
		))
	phiEp := symbol.Add(phiEConst,
		symbol.Sub(
			symbol.Mul(migration, symbol.Fn("log", ceP)),
			symbol.Mul(ohmicScale,
				symbol.Add(
					symbol.Divide(
						symbol.Sub(
							symbol.Add(symbol.Mul(p.XP, symbol.Sub(two, p.XP)), symbol.Pow(p.LP, two)),
							symbol.One()),
						symbol.Mul(two, symbol.Mul(kappaP, p.LP))),
					symbol.Divide(symbol.Sub(symbol.One(), p.LP), kappaS),
				)),
		))
	phiE := symbol.NewConcatenation(phiEn, phiEs, phiEp)

	iEn := symbol.Divide(symbol.Mul(iCell, p.XN), p.LN)
	iEs := symbol.NewBroadcast(iCell, symbol.Separator)
	iEp := symbol.Divide(symbol.Mul(iCell, symbol.Sub(symbol.One(), p.XP)), p.LP)
	iE := symbol.NewConcatenation(iEn, iEs, iEp)

	deltaPhiEAv := symbol.Neg(symbol.Mul(ohmicScale,
		symbol.Add(
			symbol.Divide(p.LN, symbol.Mul(symbol.NewScalar(3), kappaN)),
			symbol.Add(
				symbol.Divide(p.LS, kappaS),
				symbol.Divide(p.LP, symbol.Mul(symbol.NewScalar(3), kappaP)),
			))))
	etaCAv := symbol.Mul(migration,
		symbol.Sub(
			symbol.Average(symbol.Fn("log", ceP)),
			symbol.Average(symbol.Fn("log", ceN)),
		))
	etaEAv := symbol.Add(etaCAv, deltaPhiEAv)

	vars := e.getVariables(phiE, iE, etaEAv)
	for name, s := range e.splitOverpotentialVariables(etaCAv, deltaPhiEAv) {
		vars[name] = s
	}
	return vars
}
