package domain

// PropertyValue represents one raw measurement of a single property,
// exactly as recorded in the materials database. UnitLabel is the raw
// recorded string and may be empty, inconsistent, or malformed; unit
// canonicalization happens downstream.
type PropertyValue struct {
	RecordID  string  `json:"record_id" db:"measurement_id" validate:"required"`
	Value     float64 `json:"value" db:"value"`
	UnitLabel string  `json:"unit_label" db:"unit"`
}

// MetadataEntry represents one free-text metadata entry for a measurement,
// fetched by metadata keyword (foam type, method, description).
type MetadataEntry struct {
	RecordID string `json:"record_id" db:"measurement_id" validate:"required"`
	Entry    string `json:"entry" db:"entry"`
}

// MaterialRow associates a measurement with its base material.
type MaterialRow struct {
	RecordID     string `json:"record_id" db:"measurement_id" validate:"required"`
	BaseMaterial string `json:"base_material" db:"material"`
}

// ReferenceRow associates a measurement with the study it was published in.
type ReferenceRow struct {
	RecordID string `json:"record_id" db:"measurement_id" validate:"required"`
	Label    string `json:"label" db:"label"`
	Link     string `json:"link" db:"link"`
}
