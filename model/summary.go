package model

import "sort"

// Summary is a JSON-serializable report of an assembled model's structure,
// consumed by the CLI and the run archive. It names the governed states
// and reporting variables; the expressions themselves stay in memory.
type Summary struct {
	Name         string       `json:"name"`
	Geometry     string       `json:"geometry,omitempty"`
	Solver       string       `json:"solver"`
	Differential []StateEntry `json:"differential,omitempty"`
	Algebraic    []StateEntry `json:"algebraic,omitempty"`
	Variables    []string     `json:"variables,omitempty"`
	Events       []string     `json:"events,omitempty"`
}

// StateEntry describes one governed state variable.
type StateEntry struct {
	State    string `json:"state"`
	Equation string `json:"equation"`
}

// Summarize builds a deterministic summary of the model.
func (m *Model) Summarize() *Summary {
	s := &Summary{
		Name:     m.Name,
		Geometry: m.DefaultGeometry,
		Solver:   m.DefaultSolver().String(),
	}
	for _, key := range sortedKeys(m.RHS) {
		s.Differential = append(s.Differential, StateEntry{State: key.String(), Equation: m.RHS[key].String()})
	}
	for _, key := range sortedKeys(m.Algebraic) {
		s.Algebraic = append(s.Algebraic, StateEntry{State: key.String(), Equation: m.Algebraic[key].String()})
	}
	s.Variables = sortedNames(m.Variables)
	for _, e := range m.Events {
		s.Events = append(s.Events, e.Name)
	}
	sort.Strings(s.Events)
	return s
}
