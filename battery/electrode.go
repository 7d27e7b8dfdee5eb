package battery

import (
	"github.com/cellsim-xyz/go-cellsim/model"
	"github.com/cellsim-xyz/go-cellsim/params"
	"github.com/cellsim-xyz/go-cellsim/symbol"
)

// Electrode builds Ohm's law for the solid-phase current in one electrode.
// Charge conservation in the solid is algebraic, like the electrolyte
// current constraint.
type Electrode struct {
	param *params.LithiumIon
}

// NewElectrode creates the electrode current submodel.
func NewElectrode(param *params.LithiumIon) *Electrode {
	return &Electrode{param: param}
}

// AlgebraicSystem builds the solid-phase charge conservation constraint
// for the given electrode side. The applied cell current enters through
// the current-collector boundary.
func (e *Electrode) AlgebraicSystem(reg *Registry, reactions Reactions, side Side) *model.Contribution {
	p := e.param
	main := reactions[ReactionMain]

	var (
		phiS   *symbol.Variable
		sigma  symbol.Symbol
		j      symbol.Symbol
		bc     model.BoundaryCondition
		init   symbol.Symbol
		prefix string
	)
	switch side {
	case Positive:
		phiS = reg.PhiSp
		sigma = p.SigmaP
		j = main.Positive.InterfacialCurrent
		// Current collector on the right.
		bc = model.BoundaryCondition{Left: symbol.Zero(), Right: p.CurrentWithTime}
		init = symbol.Sub(p.UP(p.CPInit), p.UN(p.CNInit))
		prefix = "Positive"
	default:
		phiS = reg.PhiSn
		sigma = p.SigmaN
		j = main.Negative.InterfacialCurrent
		// Current collector on the left.
		bc = model.BoundaryCondition{Left: p.CurrentWithTime, Right: symbol.Zero()}
		init = symbol.Zero()
		prefix = "Negative"
	}

	iS := symbol.Neg(symbol.Mul(sigma, symbol.Grad(phiS)))

	return &model.Contribution{
		Algebraic: map[symbol.Symbol]symbol.Symbol{
			phiS: symbol.Add(symbol.Div(iS), j),
		},
		BoundaryConditions: map[symbol.Symbol]model.BoundaryCondition{
			iS: bc,
		},
		InitialConditions: map[symbol.Symbol]symbol.Symbol{
			phiS: init,
		},
		Variables: map[string]symbol.Symbol{
			prefix + " electrode current density": iS,
			prefix + " electrode potential [V]": symbol.Add(
				symbol.Neg(p.UNRef), symbol.Mul(p.PotScale, phiS)),
		},
		Solver: model.SolverDAE,
	}
}

// VoltageVariables builds the terminal-voltage reporting variables from
// the electrode potentials and current densities. Pure; called during
// post-processing once both electrode systems have been merged.
func (e *Electrode) VoltageVariables(phiSN, phiSP, iSN, iSP symbol.Symbol) map[string]symbol.Symbol {
	p := e.param
	voltage := symbol.Sub(symbol.Surf(phiSP, false), symbol.Surf(phiSN, false))

	return map[string]symbol.Symbol{
		"Terminal voltage":     voltage,
		"Terminal voltage [V]": symbol.Mul(p.PotScale, voltage),
		"Electrode current density": symbol.NewConcatenation(
			iSN, symbol.NewBroadcast(symbol.Zero(), symbol.Separator), iSP),
	}
}
