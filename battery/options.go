// Package battery implements the physical submodels of a lithium-ion cell
// and the top-level assemblies that compose them: interfacial kinetics,
// particle diffusion, electrolyte transport, electrode current, thermal
// behaviour, and the Doyle-Fuller-Newman (DFN) pipeline that merges them
// into one model ready for an external discretizer.
package battery

import (
	"errors"
	"fmt"
)

// ErrUnknownOption is returned when a configuration option has an
// unrecognised value.
var ErrUnknownOption = errors.New("battery: unrecognised option")

// ThermalOption selects which thermal submodel the assembly builds.
type ThermalOption string

const (
	// ThermalOff builds no thermal submodel.
	ThermalOff ThermalOption = "off"
	// ThermalFull builds a whole-cell temperature PDE.
	ThermalFull ThermalOption = "full"
	// ThermalLumped builds a single averaged-temperature ODE.
	ThermalLumped ThermalOption = "lumped"
)

// Options configures a top-level model assembly.
type Options struct {
	Thermal ThermalOption
}

// DefaultOptions returns the default assembly configuration.
func DefaultOptions() Options {
	return Options{Thermal: ThermalOff}
}

// Validate checks the options for unrecognised values.
func (o Options) Validate() error {
	switch o.Thermal {
	case ThermalOff, ThermalFull, ThermalLumped:
		return nil
	default:
		return fmt.Errorf("%w: thermal=%q", ErrUnknownOption, o.Thermal)
	}
}

// Side identifies an electrode side of the cell.
type Side string

const (
	Negative Side = "negative"
	Positive Side = "positive"
)
