package pipeline

import (
	"strings"

	"foamcli/pkg/contracts/domain"
)

// Foam type literals as recorded in the database.
const (
	cellTypeOpen   = "Open cell"
	cellTypeClosed = "Closed cell"
)

// filterByMetal keeps records whose base material is in the allow-list,
// compared case-insensitively. The "all" sentinel bypasses the filter
// entirely; an empty allow-list without it excludes every record.
func filterByMetal(recs []domain.DenormalizedRecord, metals []string) []domain.DenormalizedRecord {
	allowed := make(map[string]bool, len(metals))
	for _, m := range metals {
		if strings.EqualFold(m, domain.MetalAll) {
			return recs
		}
		allowed[strings.ToLower(m)] = true
	}

	out := make([]domain.DenormalizedRecord, 0, len(recs))
	for _, rec := range recs {
		if allowed[strings.ToLower(rec.BaseMaterial)] {
			out = append(out, rec)
		}
	}
	return out
}

// filterByCellType keeps records whose foam type equals the selected
// category, case-insensitively. The "any" selector disables the filter.
func filterByCellType(recs []domain.DenormalizedRecord, selector domain.CellTypeSelector) []domain.DenormalizedRecord {
	var want string
	switch selector {
	case domain.CellTypeOpen:
		want = cellTypeOpen
	case domain.CellTypeClosed:
		want = cellTypeClosed
	default:
		return recs
	}

	out := make([]domain.DenormalizedRecord, 0, len(recs))
	for _, rec := range recs {
		if strings.EqualFold(rec.FoamType, want) {
			out = append(out, rec)
		}
	}
	return out
}

// filterByRange keeps records whose converted filter value lies strictly
// between the bounds. Both bounds are exclusive: a value equal to either
// bound is dropped. Callers wanting inclusive bounds must widen them.
func filterByRange(recs []domain.DenormalizedRecord, lower, upper float64) []domain.DenormalizedRecord {
	out := make([]domain.DenormalizedRecord, 0, len(recs))
	for _, rec := range recs {
		if rec.FilterValue > lower && rec.FilterValue < upper {
			out = append(out, rec)
		}
	}
	return out
}
