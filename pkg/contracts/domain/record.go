package domain

// DenormalizedRecord is one fully joined row of the working dataset: the
// pair of numeric property values plus every categorical metadata field
// fetched for the same record identifier. Units start as canonical keys
// and are rewritten to the requested target units by the converter.
type DenormalizedRecord struct {
	RecordID       string  `json:"record_id"`
	Value1         float64 `json:"value1"`
	Unit1          string  `json:"unit1"`
	Value2         float64 `json:"value2"`
	Unit2          string  `json:"unit2"`
	BaseMaterial   string  `json:"base_material"`
	FoamType       string  `json:"foam_type"`
	Method         string  `json:"method"`
	Description    string  `json:"description"`
	ReferenceLabel string  `json:"reference_label"`
	ReferenceLink  string  `json:"reference_link"`

	// Filter columns are populated only when a numeric range filter joins
	// a third property onto the dataset.
	FilterValue float64 `json:"filter_value,omitempty"`
	FilterUnit  string  `json:"filter_unit,omitempty"`
	HasFilter   bool    `json:"has_filter,omitempty"`
}

// Table is the formatted output artifact: semantically named columns and
// one row per surviving record. Cells hold float64 for value columns and
// string everywhere else; sinks format them as needed.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ColumnIndex returns the position of a column by its semantic name, or
// -1 when the table has no such column. Sinks must address columns by
// name, never by assumed position.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
