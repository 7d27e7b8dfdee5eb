package battery

import (
	"github.com/cellsim-xyz/go-cellsim/model"
	"github.com/cellsim-xyz/go-cellsim/params"
	"github.com/cellsim-xyz/go-cellsim/symbol"
)

// Particle builds the intra-particle diffusion system for one electrode:
// Fickian diffusion through the particle radius, driven at the surface by
// the interfacial current density.
type Particle struct {
	param *params.LithiumIon
	side  Side
}

// NewParticle creates a particle submodel for the given electrode side.
func NewParticle(param *params.LithiumIon, side Side) *Particle {
	return &Particle{param: param, side: side}
}

// DifferentialSystem builds the particle diffusion equations for the state
// variable cs, with the interfacial current density j as the surface flux.
func (s *Particle) DifferentialSystem(cs *symbol.Variable, j symbol.Symbol) *model.Contribution {
	p := s.param

	var (
		timescale symbol.Symbol
		area      symbol.Symbol
		diff      symbol.Symbol
		prefix    string
	)
	switch s.side {
	case Positive:
		timescale = p.CP
		area = symbol.Mul(p.AP, p.GammaP)
		diff = p.DP(cs)
		prefix = "Positive"
	default:
		timescale = p.CN
		area = p.AN
		diff = p.DN(cs)
		prefix = "Negative"
	}

	flux := symbol.Neg(symbol.Mul(diff, symbol.Grad(cs)))
	surfaceFlux := symbol.Divide(symbol.Mul(timescale, j), area)

	var init symbol.Symbol = p.CNInit
	if s.side == Positive {
		init = p.CPInit
	}

	return &model.Contribution{
		RHS: map[symbol.Symbol]symbol.Symbol{
			cs: symbol.Neg(symbol.Divide(symbol.Div(flux), timescale)),
		},
		BoundaryConditions: map[symbol.Symbol]model.BoundaryCondition{
			flux: {Left: symbol.Zero(), Right: surfaceFlux},
		},
		InitialConditions: map[symbol.Symbol]symbol.Symbol{
			cs: init,
		},
		Variables: map[string]symbol.Symbol{
			prefix + " particle surface concentration": symbol.Surf(cs, true),
			prefix + " particle flux":                  flux,
		},
		Solver: model.SolverODE,
	}
}
