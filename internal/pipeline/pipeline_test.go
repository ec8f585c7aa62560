package pipeline

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foamcli/internal/datasource"
	apperrors "foamcli/internal/errors"
	"foamcli/internal/shared/testutil"
	"foamcli/internal/units"
	"foamcli/pkg/contracts/domain"
)

// fullSource returns a source with one complete Aluminium closed-cell
// record (id 1) plus partial rows that must not survive the join.
func fullSource() *datasource.Memory {
	return &datasource.Memory{
		Values: map[string][]domain.PropertyValue{
			"Porosity": {
				{RecordID: "1", Value: 0.35, UnitLabel: ""},
				{RecordID: "2", Value: 88, UnitLabel: "%"},
			},
			"Young modulus": {
				{RecordID: "1", Value: 500, UnitLabel: "MPa"},
			},
			"Relative density": {
				{RecordID: "1", Value: 0.65, UnitLabel: ""},
			},
		},
		Metadata: map[string][]domain.MetadataEntry{
			datasource.KeywordFoamType: {
				{RecordID: "1", Entry: "Closed cell"},
				{RecordID: "2", Entry: "Open cell"},
			},
			datasource.KeywordMethod: {
				{RecordID: "1", Entry: "Powder metallurgy"},
				{RecordID: "2", Entry: "Investment casting"},
			},
			datasource.KeywordDescription: {
				{RecordID: "1", Entry: "Alporas"},
				{RecordID: "2", Entry: "Duocel"},
			},
		},
		Materials: []domain.MaterialRow{
			{RecordID: "1", BaseMaterial: "Aluminium"},
			{RecordID: "2", BaseMaterial: "Aluminium"},
		},
		References: []domain.ReferenceRow{
			{RecordID: "1", Label: "SM2014-3", Link: "https://doi.org/x"},
			{RecordID: "2", Label: "GB1997-1", Link: "https://doi.org/y"},
		},
	}
}

func TestRun_ConvertsAndFilters(t *testing.T) {
	p := New(fullSource(), nil)

	result, err := p.Run(context.Background(), domain.Criteria{
		Variable1: domain.VariableSelection{Name: "porosity", Unit: units.Percent},
		Variable2: domain.VariableSelection{Name: "Young modulus", Unit: units.MPa},
		Metals:    []string{"Aluminium"},
		CellType:  domain.CellTypeClosed,
	})
	require.NoError(t, err)

	// Record 2 has no Young modulus row, so only record 1 survives: the
	// empty porosity label canonicalizes to decimal and converts to 35%.
	require.Len(t, result.Records, 1)
	rec := result.Records[0]
	assert.Equal(t, "1", rec.RecordID)
	assert.InDelta(t, 35.0, rec.Value1, 1e-9)
	assert.Equal(t, units.Percent, rec.Unit1)
	assert.InDelta(t, 500.0, rec.Value2, 1e-9)
	assert.Equal(t, units.MPa, rec.Unit2)
	assert.Equal(t, "Aluminium", rec.BaseMaterial)
	assert.Equal(t, "Closed cell", rec.FoamType)
}

// For all surviving records the stored unit equals the requested target
// unit exactly.
func TestRun_StampsTargetUnits(t *testing.T) {
	p := New(fullSource(), nil)

	result, err := p.Run(context.Background(), domain.Criteria{
		Variable1: domain.VariableSelection{Name: "porosity", Unit: units.Decimal},
		Variable2: domain.VariableSelection{Name: "Young modulus", Unit: units.GPa},
		Metals:    []string{domain.MetalAll},
	})
	require.NoError(t, err)

	require.NotEmpty(t, result.Records)
	for _, rec := range result.Records {
		assert.Equal(t, units.Decimal, rec.Unit1)
		assert.Equal(t, units.GPa, rec.Unit2)
	}
	assert.InDelta(t, 0.5, result.Records[0].Value2, 1e-12)
}

func TestRun_NoMatchingMetalIsValidEmptyResult(t *testing.T) {
	p := New(fullSource(), nil)

	result, err := p.Run(context.Background(), domain.Criteria{
		Variable1: domain.VariableSelection{Name: "porosity", Unit: units.Percent},
		Variable2: domain.VariableSelection{Name: "Young modulus", Unit: units.MPa},
		Metals:    []string{"Titanium"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Empty(t, result.Table.Rows)
}

func TestRun_RangeFilterNarrowsAndExcludesBounds(t *testing.T) {
	tests := []struct {
		name     string
		lower    float64
		upper    float64
		expected int
	}{
		{name: "value strictly inside", lower: 0.6, upper: 0.7, expected: 1},
		{name: "value on lower bound dropped", lower: 0.65, upper: 0.9, expected: 0},
		{name: "value on upper bound dropped", lower: 0.1, upper: 0.65, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(fullSource(), nil)

			result, err := p.Run(context.Background(), domain.Criteria{
				Variable1: domain.VariableSelection{Name: "porosity", Unit: units.Percent},
				Variable2: domain.VariableSelection{Name: "Young modulus", Unit: units.MPa},
				Metals:    []string{domain.MetalAll},
				Range: &domain.RangeSpec{
					Variable: "relative density",
					Unit:     units.Decimal,
					Lower:    tt.lower,
					Upper:    tt.upper,
				},
			})
			require.NoError(t, err)
			assert.Len(t, result.Records, tt.expected)

			if tt.expected > 0 {
				assert.True(t, result.Records[0].HasFilter)
				assert.InDelta(t, 0.65, result.Records[0].FilterValue, 1e-9)
				assert.Contains(t, result.Table.Columns, "relative_density")
			}
		})
	}
}

func TestRun_UnknownVariableFailsBeforeFetch(t *testing.T) {
	src := fullSource()
	src.Err = apperrors.NewDataSourceError("must not be reached", nil)
	p := New(src, nil)

	_, err := p.Run(context.Background(), domain.Criteria{
		Variable1: domain.VariableSelection{Name: "hardness", Unit: units.MPa},
		Variable2: domain.VariableSelection{Name: "Young modulus", Unit: units.MPa},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}

func TestRun_UnknownUnitFailsBeforeFetch(t *testing.T) {
	src := fullSource()
	src.Err = apperrors.NewDataSourceError("must not be reached", nil)
	p := New(src, nil)

	_, err := p.Run(context.Background(), domain.Criteria{
		Variable1: domain.VariableSelection{Name: "porosity", Unit: "psi"},
		Variable2: domain.VariableSelection{Name: "Young modulus", Unit: units.MPa},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}

func TestRun_SourceFailureIsFatal(t *testing.T) {
	src := &datasource.Memory{Err: apperrors.NewDataSourceError("connection refused", nil)}
	p := New(src, nil)

	_, err := p.Run(context.Background(), domain.Criteria{
		Variable1: domain.VariableSelection{Name: "porosity", Unit: units.Percent},
		Variable2: domain.VariableSelection{Name: "Young modulus", Unit: units.MPa},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeDataSource))
}

func TestRun_DropsValuesWithUnresolvedUnits(t *testing.T) {
	// Record 2's Young modulus has an empty unit label; the pressure
	// family has no fixup rule for it, so the record is dropped while
	// record 1 survives.
	src := &datasource.Memory{
		Values: map[string][]domain.PropertyValue{
			"Porosity": {
				{RecordID: "1", Value: 0.1, UnitLabel: ""},
				{RecordID: "2", Value: 0.2, UnitLabel: ""},
			},
			"Young modulus": {
				{RecordID: "1", Value: 7, UnitLabel: "GPa"},
				{RecordID: "2", Value: 9, UnitLabel: ""},
			},
		},
		Metadata: map[string][]domain.MetadataEntry{
			datasource.KeywordFoamType: {
				{RecordID: "1", Entry: "Open cell"},
				{RecordID: "2", Entry: "Open cell"},
			},
			datasource.KeywordMethod: {
				{RecordID: "1", Entry: "m"},
				{RecordID: "2", Entry: "m"},
			},
			datasource.KeywordDescription: {
				{RecordID: "1", Entry: "d"},
				{RecordID: "2", Entry: "d"},
			},
		},
		Materials: []domain.MaterialRow{
			{RecordID: "1", BaseMaterial: "Aluminium"},
			{RecordID: "2", BaseMaterial: "Aluminium"},
		},
		References: []domain.ReferenceRow{
			{RecordID: "1", Label: "A", Link: ""},
			{RecordID: "2", Label: "B", Link: ""},
		},
	}
	logger, capture := testutil.NewTestLogger(t)
	p := New(src, logger)

	result, err := p.Run(context.Background(), domain.Criteria{
		Variable1: domain.VariableSelection{Name: "porosity", Unit: units.Decimal},
		Variable2: domain.VariableSelection{Name: "Young modulus", Unit: units.MPa},
		Metals:    []string{domain.MetalAll},
	})
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "1", result.Records[0].RecordID)
	assert.InDelta(t, 7000.0, result.Records[0].Value2, 1e-9)
	assert.True(t, capture.Contains(slog.LevelDebug, "Dropping value with unresolved unit"))
}
