package units

import (
	"fmt"
	"strings"

	"foamcli/internal/errors"
)

// Variable binds a user-facing variable name to the exact database
// property keyword, the unit family its measurements live in, and the
// default target unit used when a caller does not pick one.
type Variable struct {
	Name        string
	Keyword     string
	Family      Family
	DefaultUnit string
}

// registry is the fixed set of plottable variables. Keyword strings are
// exact and case-sensitive per the database contract.
var registry = []Variable{
	{Name: "porosity", Keyword: "Porosity", Family: FamilyFraction, DefaultUnit: Decimal},
	{Name: "relative density", Keyword: "Relative density", Family: FamilyFraction, DefaultUnit: Decimal},
	{Name: "densification strain", Keyword: "Densification strain", Family: FamilyFraction, DefaultUnit: Decimal},
	{Name: "elastic Poisson ratio", Keyword: "Elastic Poisson ratio", Family: FamilyFraction, DefaultUnit: Decimal},
	{Name: "plastic Poisson ratio", Keyword: "Plastic Poisson ratio", Family: FamilyFraction, DefaultUnit: Decimal},
	{Name: "Young modulus", Keyword: "Young modulus", Family: FamilyPressure, DefaultUnit: MPa},
	{Name: "yield strength", Keyword: "Yield strength", Family: FamilyPressure, DefaultUnit: MPa},
	{Name: "plateau stress", Keyword: "Plateau stress", Family: FamilyPressure, DefaultUnit: MPa},
	{Name: "density", Keyword: "Density", Family: FamilyDensity, DefaultUnit: GramPerCm3},
	{Name: "cell size", Keyword: "Cell size", Family: FamilyLength, DefaultUnit: Millimeter},
	{Name: "pore size", Keyword: "Pore size", Family: FamilyLength, DefaultUnit: Millimeter},
	{Name: "wall thickness", Keyword: "Wall thickness", Family: FamilyLength, DefaultUnit: Micrometer},
	{Name: "permeability", Keyword: "Permeability", Family: FamilyArea, DefaultUnit: SquareMeter},
	{Name: "thermal conductivity", Keyword: "Thermal conductivity", Family: FamilyConductivity, DefaultUnit: WattPerMeterKelvin},
	{Name: "Forchheimer coefficient", Keyword: "Forchheimer coefficient", Family: FamilyInverseLength, DefaultUnit: PerMeter},
	{Name: "pores per length", Keyword: "Pores per length", Family: FamilyPoreDensity, DefaultUnit: PoresPerCm},
	{Name: "laser power", Keyword: "Laser power", Family: FamilyPower, DefaultUnit: Watt},
}

// Variables returns the registry in declaration order.
func Variables() []Variable {
	out := make([]Variable, len(registry))
	copy(out, registry)
	return out
}

// ResolveVariable looks up a variable by name, case-insensitively. An
// unknown name is a configuration error and must abort the run before
// any query executes.
func ResolveVariable(name string) (Variable, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, v := range registry {
		if strings.ToLower(v.Name) == needle {
			return v, nil
		}
	}
	return Variable{}, errors.NewConfigError(fmt.Sprintf("unknown variable %q", name), nil)
}

// ResolveTargetUnit validates that unit is a canonical member of the
// variable's family, falling back to the variable's default when empty.
func ResolveTargetUnit(table *ConversionTable, v Variable, unit string) (string, error) {
	if strings.TrimSpace(unit) == "" {
		return v.DefaultUnit, nil
	}
	family, ok := table.FamilyOf(unit)
	if !ok {
		return "", errors.NewConfigError(
			fmt.Sprintf("unknown unit %q for variable %q", unit, v.Name), nil)
	}
	if family != v.Family {
		return "", errors.NewConfigError(
			fmt.Sprintf("unit %q belongs to family %q, variable %q expects %q",
				unit, family, v.Name, v.Family), nil)
	}
	return unit, nil
}
