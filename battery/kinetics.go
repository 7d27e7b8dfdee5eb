package battery

import (
	"github.com/cellsim-xyz/go-cellsim/params"
	"github.com/cellsim-xyz/go-cellsim/symbol"
)

// Kinetics builds interfacial reaction expressions: exchange-current
// densities from surface concentrations, and interfacial current densities
// from reaction overpotentials. It contributes no equations of its own;
// its outputs couple the particle, electrolyte, and electrode submodels
// through the reaction record.
type Kinetics struct {
	param *params.LithiumIon
}

// NewKinetics creates a kinetics submodel over the given parameters.
func NewKinetics(param *params.LithiumIon) *Kinetics {
	return &Kinetics{param: param}
}

// ExchangeCurrentDensity builds the exchange-current density from the
// local electrolyte concentration and the particle surface concentration,
// both tagged onto the electrode subdomain for the given side.
func (k *Kinetics) ExchangeCurrentDensity(ce, csSurf symbol.Symbol, side Side) symbol.Symbol {
	gamma := k.param.GammaJN
	if side == Positive {
		gamma = k.param.GammaJP
	}
	half := symbol.NewScalar(0.5)
	return symbol.Mul(gamma,
		symbol.Mul(symbol.Pow(ce, half),
			symbol.Mul(symbol.Pow(csSurf, half),
				symbol.Pow(symbol.Sub(symbol.One(), csSurf), half))))
}

// ButlerVolmer builds the symmetric Butler-Volmer interfacial current
// density j = 2 j0 sinh(ne eta / 2).
func (k *Kinetics) ButlerVolmer(j0, etaR symbol.Symbol) symbol.Symbol {
	arg := symbol.Mul(symbol.Divide(k.param.Ne, symbol.NewScalar(2)), etaR)
	return symbol.Mul(symbol.Mul(symbol.NewScalar(2), j0), symbol.Fn("sinh", arg))
}

// ForwardTafel builds the forward Tafel approximation
// j = j0 exp(ne eta / 2), valid for large positive overpotentials.
func (k *Kinetics) ForwardTafel(j0, etaR symbol.Symbol) symbol.Symbol {
	arg := symbol.Mul(symbol.Divide(k.param.Ne, symbol.NewScalar(2)), etaR)
	return symbol.Mul(j0, symbol.Fn("exp", arg))
}

// BackwardTafel builds the backward Tafel approximation
// j = -j0 exp(-ne eta / 2), valid for large negative overpotentials.
func (k *Kinetics) BackwardTafel(j0, etaR symbol.Symbol) symbol.Symbol {
	arg := symbol.Mul(symbol.Divide(k.param.Ne, symbol.NewScalar(2)), etaR)
	return symbol.Neg(symbol.Mul(j0, symbol.Fn("exp", symbol.Neg(arg))))
}

// DerivedCurrentVariables returns the reporting variables for the
// interfacial and exchange-current densities, dimensionless and scaled.
// Pure: callable again during post-processing to refresh the map.
func (k *Kinetics) DerivedCurrentVariables(jn, jp, j0n, j0p symbol.Symbol) map[string]symbol.Symbol {
	p := k.param
	sep := symbol.NewBroadcast(symbol.Zero(), symbol.Separator)
	j := symbol.NewConcatenation(jn, sep, jp)
	j0 := symbol.NewConcatenation(j0n, symbol.NewBroadcast(symbol.Zero(), symbol.Separator), j0p)

	return map[string]symbol.Symbol{
		"Negative electrode interfacial current density": jn,
		"Positive electrode interfacial current density": jp,
		"Interfacial current density":                    j,
		"Negative electrode exchange current density":    j0n,
		"Positive electrode exchange current density":    j0p,
		"Exchange current density":                       j0,
		"Interfacial current density [A m-2]":            symbol.Mul(p.ITyp, j),
		"Exchange current density [A m-2]":               symbol.Mul(p.ITyp, j0),
	}
}
