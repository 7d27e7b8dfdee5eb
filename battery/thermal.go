package battery

import (
	"github.com/cellsim-xyz/go-cellsim/model"
	"github.com/cellsim-xyz/go-cellsim/params"
	"github.com/cellsim-xyz/go-cellsim/symbol"
)

// Thermal builds the temperature equations, either as a whole-cell PDE or
// a lumped averaged ODE. Heat is sourced by the irreversible reaction
// losses j * eta in each electrode.
type Thermal struct {
	param *params.LithiumIon
}

// NewThermal creates the thermal submodel.
func NewThermal(param *params.LithiumIon) *Thermal {
	return &Thermal{param: param}
}

// heatSource builds the reaction heating term over the whole cell.
func (t *Thermal) heatSource(reactions Reactions, etaRN, etaRP symbol.Symbol) *symbol.Concatenation {
	main := reactions[ReactionMain]
	return symbol.NewConcatenation(
		symbol.Mul(main.Negative.InterfacialCurrent, etaRN),
		symbol.NewBroadcast(symbol.Zero(), symbol.Separator),
		symbol.Mul(main.Positive.InterfacialCurrent, etaRP),
	)
}

// FullDifferentialSystem builds the whole-cell temperature PDE with
// conduction through the cell and reaction heat sources.
func (t *Thermal) FullDifferentialSystem(reg *Registry, reactions Reactions, etaRN, etaRP symbol.Symbol) *model.Contribution {
	p := t.param
	T := reg.T

	q := symbol.Neg(symbol.Mul(p.Lambda, symbol.Grad(T)))
	source := t.heatSource(reactions, etaRN, etaRP)

	return &model.Contribution{
		RHS: map[symbol.Symbol]symbol.Symbol{
			T: symbol.Divide(symbol.Add(symbol.Neg(symbol.Div(q)), source), p.CTh),
		},
		BoundaryConditions: map[symbol.Symbol]model.BoundaryCondition{
			q: {Left: symbol.Zero(), Right: symbol.Zero()},
		},
		InitialConditions: map[symbol.Symbol]symbol.Symbol{
			T: p.TInit,
		},
		Variables: map[string]symbol.Symbol{
			"Heat source":          source,
			"Cell temperature [K]": symbol.Mul(p.DeltaT, T),
		},
		Solver: model.SolverODE,
	}
}

// LumpedDifferentialSystem builds a single ODE for the averaged cell
// temperature with Newton cooling to the ambient.
func (t *Thermal) LumpedDifferentialSystem(reg *Registry, reactions Reactions, etaRN, etaRP symbol.Symbol) *model.Contribution {
	p := t.param
	TAv := reg.TAv
	main := reactions[ReactionMain]

	sourceAv := symbol.Add(
		symbol.Average(symbol.Mul(main.Negative.InterfacialCurrent, etaRN)),
		symbol.Average(symbol.Mul(main.Positive.InterfacialCurrent, etaRP)),
	)
	cooling := symbol.Mul(p.H, symbol.Sub(TAv, p.TAmb))

	return &model.Contribution{
		RHS: map[symbol.Symbol]symbol.Symbol{
			TAv: symbol.Divide(symbol.Sub(sourceAv, cooling), p.CTh),
		},
		InitialConditions: map[symbol.Symbol]symbol.Symbol{
			TAv: p.TInit,
		},
		Variables: map[string]symbol.Symbol{
			"Average heat source":          sourceAv,
			"Average cell temperature [K]": symbol.Mul(p.DeltaT, TAv),
		},
		Solver: model.SolverODE,
	}
}
