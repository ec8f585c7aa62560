package domain

import "strings"

// CellTypeSelector selects which foam cell structure to keep.
type CellTypeSelector string

const (
	CellTypeAny    CellTypeSelector = "any"
	CellTypeOpen   CellTypeSelector = "open"
	CellTypeClosed CellTypeSelector = "closed"
)

// Grouping selects the column used to split the dataset into series for
// the visualization handoff.
type Grouping string

const (
	GroupByMaterial Grouping = "material"
	GroupByStudy    Grouping = "study"
)

// MetalAll is the sentinel allow-list token that disables metal filtering.
const MetalAll = "all"

// VariableSelection names one property to fetch and the unit its values
// must be converted to. An empty unit selects the variable's default.
type VariableSelection struct {
	Name string `json:"name" validate:"required"`
	Unit string `json:"unit"`
}

// AxisConfig is pass-through presentation configuration for one axis.
// The core never interprets it; the downstream renderer does.
type AxisConfig struct {
	Log    bool     `json:"log,omitempty"`
	Limits []float64 `json:"limits,omitempty" validate:"omitempty,len=2"`
}

// RangeSpec restricts the dataset to records whose converted value of a
// third property lies strictly between Lower and Upper. Both bounds are
// exclusive: a value equal to either bound is dropped.
type RangeSpec struct {
	Variable string  `json:"variable" validate:"required"`
	Unit     string  `json:"unit"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper" validate:"gtfield=Lower"`
}

// Criteria is the full configuration surface for one pipeline run.
type Criteria struct {
	Variable1 VariableSelection `json:"variable1" validate:"required"`
	Variable2 VariableSelection `json:"variable2" validate:"required"`

	XAxis AxisConfig `json:"x_axis,omitempty"`
	YAxis AxisConfig `json:"y_axis,omitempty"`

	// Metals is the base-material allow-list. The token "all"
	// (case-insensitive) bypasses the filter; an empty list without it
	// excludes every record.
	Metals   []string         `json:"metals"`
	CellType CellTypeSelector `json:"cell_type" validate:"omitempty,oneof=any open closed"`
	Range    *RangeSpec       `json:"range,omitempty"`

	GroupBy Grouping `json:"group_by" validate:"omitempty,oneof=material study"`
	Export  bool     `json:"export"`
}

// MetalsAllowAll reports whether the allow-list carries the "all" sentinel.
func (c Criteria) MetalsAllowAll() bool {
	for _, m := range c.Metals {
		if strings.EqualFold(m, MetalAll) {
			return true
		}
	}
	return false
}
