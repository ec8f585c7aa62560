package pipeline

import (
	"log/slog"

	"foamcli/internal/units"
	"foamcli/pkg/contracts/domain"
)

// canonicalValue is a property value whose raw unit label has been
// resolved to a canonical key known to the conversion table.
type canonicalValue struct {
	RecordID string
	Value    float64
	Unit     string
}

// canonicalizeValues applies the variable's unit fixup rules to a raw
// value set. Values whose canonical unit is empty or absent from the
// conversion table's key set are unusable; dropping one here drops the
// owning record from the run, because the join that follows is strict.
func canonicalizeValues(table *units.ConversionTable, variable string, values []domain.PropertyValue, logger *slog.Logger) []canonicalValue {
	out := make([]canonicalValue, 0, len(values))
	for _, v := range values {
		unit := units.Canonicalize(variable, v.UnitLabel)
		if unit == "" || !table.Known(unit) {
			logger.Debug("Dropping value with unresolved unit",
				slog.String("variable", variable),
				slog.String("record_id", v.RecordID),
				slog.String("raw_label", v.UnitLabel),
				slog.String("canonical", unit))
			continue
		}
		out = append(out, canonicalValue{
			RecordID: v.RecordID,
			Value:    v.Value,
			Unit:     unit,
		})
	}
	return out
}
