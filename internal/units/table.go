package units

import (
	"foamcli/internal/errors"
)

// Family identifies a group of mutually convertible canonical units.
type Family string

const (
	FamilyPressure      Family = "pressure"
	FamilyFraction      Family = "fraction"
	FamilyLength        Family = "length"
	FamilyDensity       Family = "density"
	FamilyPower         Family = "power"
	FamilyArea          Family = "area"
	FamilyPoreDensity   Family = "pore-density"
	FamilyConductivity  Family = "conductivity"
	FamilyInverseLength Family = "inverse-length"
)

// Canonical unit keys. These are internal lookup keys, distinct from
// both the raw recorded labels and the display strings.
const (
	Pa  = "Pa"
	MPa = "MPa"
	GPa = "GPa"

	Percent = "percent"
	Decimal = "decimal"

	Micrometer = "um"
	Millimeter = "mm"
	Centimeter = "cm"
	Meter      = "m"

	GramPerCm3 = "g_cm3"
	KgPerM3    = "kg_m3"

	Watt     = "W"
	Kilowatt = "kW"

	SquareMeter = "m2"

	PoresPerCm   = "pores_cm"
	PoresPerInch = "pores_inch"

	WattPerMeterKelvin = "W_mK"

	PerMeter = "one_m"
	PerFoot  = "one_ft"
)

// familyScales defines each family as a map from canonical unit to the
// magnitude of one such unit expressed in the family's base unit. The
// conversion factor between two members is the ratio of their scales.
var familyScales = map[Family]map[string]float64{
	FamilyPressure: {
		Pa:  1,
		MPa: 1e6,
		GPa: 1e9,
	},
	FamilyFraction: {
		Decimal: 1,
		Percent: 0.01,
	},
	FamilyLength: {
		Micrometer: 1e-6,
		Millimeter: 1e-3,
		Centimeter: 1e-2,
		Meter:      1,
	},
	FamilyDensity: {
		KgPerM3:    1,
		GramPerCm3: 1000,
	},
	FamilyPower: {
		Watt:     1,
		Kilowatt: 1000,
	},
	FamilyArea: {
		SquareMeter: 1,
	},
	FamilyPoreDensity: {
		PoresPerCm:   1,
		PoresPerInch: 1 / 2.54,
	},
	FamilyConductivity: {
		WattPerMeterKelvin: 1,
	},
	FamilyInverseLength: {
		PerMeter: 1,
		PerFoot:  1 / 0.3048,
	},
}

type conversionKey struct {
	From string
	To   string
}

// ConversionTable is a sparse lookup of scalar conversion factors keyed
// by (from, to) canonical unit pairs. Entries exist only within a unit
// family; an absent pair means "no defined conversion", never zero.
// Both directions of each pair are registered explicitly, so lookups
// never invert factors on the fly.
type ConversionTable struct {
	factors  map[conversionKey]float64
	families map[string]Family
}

// NewConversionTable builds the table from the fixed family definitions.
func NewConversionTable() *ConversionTable {
	t := &ConversionTable{
		factors:  make(map[conversionKey]float64),
		families: make(map[string]Family),
	}
	for family, scales := range familyScales {
		for from, fromScale := range scales {
			t.families[from] = family
			for to, toScale := range scales {
				t.factors[conversionKey{From: from, To: to}] = fromScale / toScale
			}
		}
	}
	return t
}

// Lookup returns the scalar factor that converts a value from one
// canonical unit to another. Undefined pairs, including every
// cross-family pair, return a unit conversion error.
func (t *ConversionTable) Lookup(from, to string) (float64, error) {
	factor, ok := t.factors[conversionKey{From: from, To: to}]
	if !ok {
		return 0, errors.NewUnitConversionError(from, to)
	}
	return factor, nil
}

// Known reports whether a canonical unit is a member of the table's key
// set. Property values whose canonicalized unit is unknown are unusable
// and their records are dropped.
func (t *ConversionTable) Known(unit string) bool {
	_, ok := t.families[unit]
	return ok
}

// FamilyOf returns the family a canonical unit belongs to.
func (t *ConversionTable) FamilyOf(unit string) (Family, bool) {
	f, ok := t.families[unit]
	return f, ok
}

// FamilyMembers returns the canonical units of a family in no
// particular order.
func (t *ConversionTable) FamilyMembers(family Family) []string {
	var members []string
	for unit, f := range t.families {
		if f == family {
			members = append(members, unit)
		}
	}
	return members
}
