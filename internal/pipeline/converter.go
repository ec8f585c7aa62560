package pipeline

import (
	"log/slog"

	"foamcli/internal/units"
	"foamcli/pkg/contracts/domain"
)

// valueColumn identifies which numeric column of a denormalized record
// a conversion applies to.
type valueColumn int

const (
	column1 valueColumn = iota
	column2
	filterColumn
)

// convertColumn converts one numeric column of every record to the
// target unit: multiply by the table factor, stamp the target unit. The
// canonicalizer already filtered units absent from the table, so lookup
// is expected to succeed; if a canonical key slips through unregistered
// the row is excluded and the run continues.
func convertColumn(table *units.ConversionTable, recs []domain.DenormalizedRecord, col valueColumn, targetUnit string, logger *slog.Logger) []domain.DenormalizedRecord {
	out := make([]domain.DenormalizedRecord, 0, len(recs))
	for _, rec := range recs {
		value, unit := columnOf(&rec, col)

		factor, err := table.Lookup(unit, targetUnit)
		if err != nil {
			logger.Warn("Excluding record with unconvertible unit",
				slog.String("record_id", rec.RecordID),
				slog.String("from_unit", unit),
				slog.String("to_unit", targetUnit))
			continue
		}

		setColumn(&rec, col, value*factor, targetUnit)
		out = append(out, rec)
	}
	return out
}

func columnOf(rec *domain.DenormalizedRecord, col valueColumn) (float64, string) {
	switch col {
	case column1:
		return rec.Value1, rec.Unit1
	case column2:
		return rec.Value2, rec.Unit2
	default:
		return rec.FilterValue, rec.FilterUnit
	}
}

func setColumn(rec *domain.DenormalizedRecord, col valueColumn, value float64, unit string) {
	switch col {
	case column1:
		rec.Value1, rec.Unit1 = value, unit
	case column2:
		rec.Value2, rec.Unit2 = value, unit
	default:
		rec.FilterValue, rec.FilterUnit = value, unit
	}
}
