package battery

import (
	"github.com/cellsim-xyz/go-cellsim/model"
	"github.com/cellsim-xyz/go-cellsim/params"
	"github.com/cellsim-xyz/go-cellsim/symbol"
)

// ElectrolyteDiffusion builds the Stefan-Maxwell conservation equation for
// the electrolyte concentration across the whole cell.
type ElectrolyteDiffusion struct {
	param *params.LithiumIon
}

// NewElectrolyteDiffusion creates the electrolyte diffusion submodel.
func NewElectrolyteDiffusion(param *params.LithiumIon) *ElectrolyteDiffusion {
	return &ElectrolyteDiffusion{param: param}
}

// DifferentialSystem builds the electrolyte concentration PDE, sourced by
// the interfacial currents in the reaction record.
func (e *ElectrolyteDiffusion) DifferentialSystem(reg *Registry, reactions Reactions) *model.Contribution {
	p := e.param
	ce := reg.CE
	main := reactions[ReactionMain]

	// Migration source: stoichiometry-weighted interfacial currents,
	// zero in the separator.
	source := symbol.NewConcatenation(
		symbol.Mul(main.Negative.Stoichiometry, main.Negative.InterfacialCurrent),
		symbol.NewBroadcast(symbol.Zero(), symbol.Separator),
		symbol.Mul(main.Positive.Stoichiometry, main.Positive.InterfacialCurrent),
	)

	// Effective diffusive flux through the porous structure.
	flux := symbol.Neg(symbol.Mul(symbol.Pow(p.Epsilon, p.B), symbol.Grad(ce)))

	rhs := symbol.Mul(
		symbol.Divide(symbol.One(), p.Epsilon),
		symbol.Add(symbol.Neg(symbol.Divide(symbol.Div(flux), p.CE)), source),
	)

	orphans := ce.Orphans()
	return &model.Contribution{
		RHS: map[symbol.Symbol]symbol.Symbol{
			ce: rhs,
		},
		BoundaryConditions: map[symbol.Symbol]model.BoundaryCondition{
			flux: {Left: symbol.Zero(), Right: symbol.Zero()},
		},
		InitialConditions: map[symbol.Symbol]symbol.Symbol{
			ce: p.CEInit,
		},
		Variables: map[string]symbol.Symbol{
			"Negative electrolyte concentration":  orphans[0],
			"Separator electrolyte concentration": orphans[1],
			"Positive electrolyte concentration":  orphans[2],
			"Electrolyte flux":                    flux,
			"Average electrolyte concentration":   symbol.Average(ce),
		},
		Solver: model.SolverODE,
	}
}
