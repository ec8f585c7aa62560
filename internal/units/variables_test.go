package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "foamcli/internal/errors"
)

func TestResolveVariable(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantKeyword string
		wantErr     bool
	}{
		{name: "exact name", input: "porosity", wantKeyword: "Porosity"},
		{name: "case insensitive", input: "YOUNG MODULUS", wantKeyword: "Young modulus"},
		{name: "surrounding whitespace", input: " density ", wantKeyword: "Density"},
		{name: "unknown variable", input: "hardness", wantErr: true},
		{name: "empty name", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ResolveVariable(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKeyword, v.Keyword)
		})
	}
}

func TestResolveTargetUnit(t *testing.T) {
	table := NewConversionTable()
	porosity, err := ResolveVariable("porosity")
	require.NoError(t, err)
	youngModulus, err := ResolveVariable("Young modulus")
	require.NoError(t, err)

	tests := []struct {
		name     string
		variable Variable
		unit     string
		expected string
		wantErr  bool
	}{
		{name: "member of family", variable: youngModulus, unit: GPa, expected: GPa},
		{name: "empty unit falls back to default", variable: porosity, unit: "", expected: Decimal},
		{name: "unknown unit", variable: porosity, unit: "psi", wantErr: true},
		{name: "wrong family", variable: porosity, unit: MPa, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTargetUnit(table, tt.variable, tt.unit)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name      string
		canonical string
		expected  string
	}{
		{name: "percent", canonical: Percent, expected: "%"},
		{name: "gram per cubic centimeter", canonical: GramPerCm3, expected: "g/cm^3"},
		{name: "kilogram per cubic meter", canonical: KgPerM3, expected: "kg/m^3"},
		{name: "square meter", canonical: SquareMeter, expected: "m^2"},
		{name: "pores per cm", canonical: PoresPerCm, expected: "pores/cm"},
		{name: "pores per inch", canonical: PoresPerInch, expected: "pores/in"},
		{name: "conductivity", canonical: WattPerMeterKelvin, expected: "W/mK"},
		{name: "per meter", canonical: PerMeter, expected: "1/m"},
		{name: "per foot", canonical: PerFoot, expected: "1/ft"},
		{name: "unmapped key passes through", canonical: MPa, expected: "MPa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Display(tt.canonical))
		})
	}
}
