package pipeline

import (
	"strings"

	"foamcli/internal/units"
	"foamcli/pkg/contracts/domain"
)

// columnSeparator replaces internal whitespace in variable names when
// they become column headers.
const columnSeparator = "_"

// Fixed metadata column names of the output table.
const (
	ColumnRecordID      = "record_id"
	ColumnBaseMaterial  = "base_material"
	ColumnFoamType      = "foam_type"
	ColumnMethod        = "method"
	ColumnDescription   = "description"
	ColumnReference     = "reference"
	ColumnReferenceLink = "reference_link"
)

// buildTable renders the surviving records as the final output table:
// semantically named columns, unit columns restored to human-readable
// display strings. filterVariable is empty when no range filter ran.
func buildTable(recs []domain.DenormalizedRecord, variable1, variable2, filterVariable string) domain.Table {
	col1 := columnName(variable1)
	col2 := columnName(variable2)

	columns := []string{
		ColumnRecordID,
		col1,
		col1 + columnSeparator + "unit",
		col2,
		col2 + columnSeparator + "unit",
		ColumnBaseMaterial,
		ColumnFoamType,
		ColumnMethod,
		ColumnDescription,
		ColumnReference,
		ColumnReferenceLink,
	}

	withFilter := filterVariable != ""
	if withFilter {
		fcol := columnName(filterVariable)
		columns = append(columns, fcol, fcol+columnSeparator+"unit")
	}

	rows := make([][]any, 0, len(recs))
	for _, rec := range recs {
		row := []any{
			rec.RecordID,
			rec.Value1,
			units.Display(rec.Unit1),
			rec.Value2,
			units.Display(rec.Unit2),
			rec.BaseMaterial,
			rec.FoamType,
			rec.Method,
			rec.Description,
			rec.ReferenceLabel,
			rec.ReferenceLink,
		}
		if withFilter {
			row = append(row, rec.FilterValue, units.Display(rec.FilterUnit))
		}
		rows = append(rows, row)
	}

	return domain.Table{Columns: columns, Rows: rows}
}

// columnName turns a variable name into a column header by replacing
// internal whitespace runs with the separator.
func columnName(variable string) string {
	return strings.Join(strings.Fields(variable), columnSeparator)
}
