package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foamcli/internal/units"
	"foamcli/pkg/contracts/domain"
)

func TestBuildTable(t *testing.T) {
	recs := []domain.DenormalizedRecord{
		{
			RecordID:       "12",
			Value1:         35,
			Unit1:          units.Percent,
			Value2:         500,
			Unit2:          units.MPa,
			BaseMaterial:   "Aluminium",
			FoamType:       "Closed cell",
			Method:         "Powder metallurgy",
			Description:    "Alporas",
			ReferenceLabel: "GB1997-2",
			ReferenceLink:  "https://doi.org/y",
		},
	}

	table := buildTable(recs, "porosity", "Young modulus", "")

	assert.Equal(t, []string{
		"record_id",
		"porosity", "porosity_unit",
		"Young_modulus", "Young_modulus_unit",
		"base_material", "foam_type", "method", "description",
		"reference", "reference_link",
	}, table.Columns)

	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.Equal(t, 35.0, row[table.ColumnIndex("porosity")])
	assert.Equal(t, "%", row[table.ColumnIndex("porosity_unit")])
	assert.Equal(t, 500.0, row[table.ColumnIndex("Young_modulus")])
	assert.Equal(t, "MPa", row[table.ColumnIndex("Young_modulus_unit")])
	assert.Equal(t, "Closed cell", row[table.ColumnIndex("foam_type")])
	assert.Equal(t, "GB1997-2", row[table.ColumnIndex("reference")])
}

func TestBuildTable_WithFilterColumns(t *testing.T) {
	recs := []domain.DenormalizedRecord{
		{
			RecordID:    "3",
			Value1:      1.2,
			Unit1:       units.GramPerCm3,
			Value2:      4,
			Unit2:       units.MPa,
			FilterValue: 0.4,
			FilterUnit:  units.Decimal,
			HasFilter:   true,
		},
	}

	table := buildTable(recs, "density", "yield strength", "relative density")

	assert.Contains(t, table.Columns, "relative_density")
	assert.Contains(t, table.Columns, "relative_density_unit")
	row := table.Rows[0]
	assert.Equal(t, 0.4, row[table.ColumnIndex("relative_density")])
	assert.Equal(t, "decimal", row[table.ColumnIndex("relative_density_unit")])
	assert.Equal(t, "g/cm^3", row[table.ColumnIndex("density_unit")])
}

func TestColumnIndex_MissingColumn(t *testing.T) {
	table := buildTable(nil, "porosity", "density", "")
	assert.Equal(t, -1, table.ColumnIndex("no_such_column"))
	assert.Empty(t, table.Rows)
}

func TestBuildChart_GroupByMaterial(t *testing.T) {
	recs := []domain.DenormalizedRecord{
		{RecordID: "1", BaseMaterial: "Aluminium"},
		{RecordID: "2", BaseMaterial: "Titanium"},
		{RecordID: "3", BaseMaterial: "Aluminium"},
	}
	c := domain.Criteria{
		GroupBy: domain.GroupByMaterial,
		XAxis:   domain.AxisConfig{Log: true},
		YAxis:   domain.AxisConfig{Limits: []float64{0, 1000}},
	}

	chart := buildChart(recs, c, "porosity", units.Percent, "Young modulus", units.MPa)

	assert.Equal(t, "porosity [%]", chart.XLabel)
	assert.Equal(t, "Young modulus [MPa]", chart.YLabel)
	assert.True(t, chart.XAxis.Log)
	assert.Equal(t, []float64{0, 1000}, chart.YAxis.Limits)

	require.Len(t, chart.Series, 2)
	assert.Equal(t, "Aluminium", chart.Series[0].Label)
	assert.Equal(t, []int{0, 2}, chart.Series[0].RowIdxs)
	assert.Equal(t, "Titanium", chart.Series[1].Label)
	assert.Equal(t, []int{1}, chart.Series[1].RowIdxs)
}

func TestBuildChart_GroupByStudyTruncatesLabels(t *testing.T) {
	// Rows from the same study share a 6-character label prefix; study
	// grouping must collapse them into one series.
	recs := []domain.DenormalizedRecord{
		{RecordID: "1", ReferenceLabel: "SM2014-3a"},
		{RecordID: "2", ReferenceLabel: "SM2014-3b"},
		{RecordID: "3", ReferenceLabel: "GB97"},
	}
	c := domain.Criteria{GroupBy: domain.GroupByStudy}

	chart := buildChart(recs, c, "porosity", units.Decimal, "density", units.GramPerCm3)

	require.Len(t, chart.Series, 2)
	assert.Equal(t, "SM2014", chart.Series[0].Label)
	assert.Equal(t, []int{0, 1}, chart.Series[0].RowIdxs)
	assert.Equal(t, "GB97", chart.Series[1].Label)
}

func TestBuildChart_DefaultsToMaterialGrouping(t *testing.T) {
	recs := []domain.DenormalizedRecord{{RecordID: "1", BaseMaterial: "Zinc"}}

	chart := buildChart(recs, domain.Criteria{}, "porosity", units.Decimal, "density", units.GramPerCm3)

	assert.Equal(t, domain.GroupByMaterial, chart.GroupBy)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, "Zinc", chart.Series[0].Label)
}
