package battery

import (
	"github.com/cellsim-xyz/go-cellsim/params"
	"github.com/cellsim-xyz/go-cellsim/symbol"
)

// Potential builds derived open-circuit potential and overpotential
// reporting variables. It contributes no equations.
type Potential struct {
	param *params.LithiumIon
}

// NewPotential creates the potential reporting submodel.
func NewPotential(param *params.LithiumIon) *Potential {
	return &Potential{param: param}
}

// DerivedOpenCircuitPotentials returns averaged and dimensional
// open-circuit potential variables.
func (p *Potential) DerivedOpenCircuitPotentials(ocpN, ocpP symbol.Symbol) map[string]symbol.Symbol {
	pm := p.param
	ocpNAv := symbol.Average(ocpN)
	ocpPAv := symbol.Average(ocpP)
	ocv := symbol.Sub(ocpPAv, ocpNAv)

	return map[string]symbol.Symbol{
		"Average negative electrode open circuit potential": ocpNAv,
		"Average positive electrode open circuit potential": ocpPAv,
		"Measured open circuit voltage":                     ocv,
		"Measured open circuit voltage [V]":                 symbol.Mul(pm.PotScale, ocv),
	}
}

// DerivedReactionOverpotentials returns averaged and dimensional reaction
// overpotential variables.
func (p *Potential) DerivedReactionOverpotentials(etaRN, etaRP symbol.Symbol) map[string]symbol.Symbol {
	pm := p.param
	etaRNAv := symbol.Average(etaRN)
	etaRPAv := symbol.Average(etaRP)
	etaRAv := symbol.Sub(etaRPAv, etaRNAv)

	return map[string]symbol.Symbol{
		"Average negative reaction overpotential": etaRNAv,
		"Average positive reaction overpotential": etaRPAv,
		"Average reaction overpotential":          etaRAv,
		"Average reaction overpotential [V]":      symbol.Mul(pm.PotScale, etaRAv),
	}
}
