package battery

import "github.com/cellsim-xyz/go-cellsim/symbol"

// ReactionID enumerates the reactions a cell model can carry. Keying the
// coupling record by an enumerated identifier, rather than a free-form
// name, catches a missing reaction at construction instead of at lookup.
type ReactionID string

// ReactionMain is the primary intercalation reaction.
const ReactionMain ReactionID = "main"

// ReactionTerm carries the quantities one electrode side contributes to a
// reaction: the interfacial current density and the stoichiometric
// coefficient of the transported species.
type ReactionTerm struct {
	InterfacialCurrent symbol.Symbol
	Stoichiometry      symbol.Symbol
}

// Reaction couples the two electrode sides of one reaction.
type Reaction struct {
	Negative ReactionTerm
	Positive ReactionTerm
}

// Reactions passes interfacial current densities and stoichiometries from
// the kinetics submodel to the transport, electrode, and thermal
// submodels. Producers build it, consumers read it; neither references the
// other, and the record lives only for one assembly call.
type Reactions map[ReactionID]Reaction

// WholeCellCurrent concatenates a reaction's per-electrode interfacial
// current densities with a zero separator contribution, yielding the
// source term used by whole-cell conservation equations.
func (r Reaction) WholeCellCurrent() *symbol.Concatenation {
	return symbol.NewConcatenation(
		r.Negative.InterfacialCurrent,
		symbol.NewBroadcast(symbol.Zero(), symbol.Separator),
		r.Positive.InterfacialCurrent,
	)
}
