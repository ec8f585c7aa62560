package pipeline

import (
	"foamcli/pkg/contracts/domain"
)

// The joiner builds denormalized records through a chain of strict
// inner equality joins on the record identifier. Each step keeps a
// record only when the joined set has at least one row for its id, so
// output cardinality is the intersection of identifier sets. Record ids
// are assumed unique within each source set; a duplicated id produces
// cross-product rows rather than silent deduplication. That risk is
// accepted, not guarded.

// seedRecords starts the join chain from the first value column.
func seedRecords(values []canonicalValue) []domain.DenormalizedRecord {
	recs := make([]domain.DenormalizedRecord, 0, len(values))
	for _, v := range values {
		recs = append(recs, domain.DenormalizedRecord{
			RecordID: v.RecordID,
			Value1:   v.Value,
			Unit1:    v.Unit,
		})
	}
	return recs
}

// joinSecondValue inner-joins the second value column onto the records.
func joinSecondValue(recs []domain.DenormalizedRecord, values []canonicalValue) []domain.DenormalizedRecord {
	idx := indexValues(values)
	out := make([]domain.DenormalizedRecord, 0, len(recs))
	for _, rec := range recs {
		for _, v := range idx[rec.RecordID] {
			joined := rec
			joined.Value2 = v.Value
			joined.Unit2 = v.Unit
			out = append(out, joined)
		}
	}
	return out
}

// joinFilterValues inner-joins the optional third value column used by
// the numeric range filter, narrowing cardinality further.
func joinFilterValues(recs []domain.DenormalizedRecord, values []canonicalValue) []domain.DenormalizedRecord {
	idx := indexValues(values)
	out := make([]domain.DenormalizedRecord, 0, len(recs))
	for _, rec := range recs {
		for _, v := range idx[rec.RecordID] {
			joined := rec
			joined.FilterValue = v.Value
			joined.FilterUnit = v.Unit
			joined.HasFilter = true
			out = append(out, joined)
		}
	}
	return out
}

// joinMaterials inner-joins the base material relation.
func joinMaterials(recs []domain.DenormalizedRecord, rows []domain.MaterialRow) []domain.DenormalizedRecord {
	idx := make(map[string][]string, len(rows))
	for _, r := range rows {
		idx[r.RecordID] = append(idx[r.RecordID], r.BaseMaterial)
	}
	return joinField(recs, idx, func(rec *domain.DenormalizedRecord, material string) {
		rec.BaseMaterial = material
	})
}

// joinMetadata inner-joins one metadata entry set, assigning the entry
// through the supplied setter.
func joinMetadata(recs []domain.DenormalizedRecord, entries []domain.MetadataEntry, assign func(*domain.DenormalizedRecord, string)) []domain.DenormalizedRecord {
	idx := make(map[string][]string, len(entries))
	for _, e := range entries {
		idx[e.RecordID] = append(idx[e.RecordID], e.Entry)
	}
	return joinField(recs, idx, assign)
}

// joinReferences inner-joins the study reference relation.
func joinReferences(recs []domain.DenormalizedRecord, refs []domain.ReferenceRow) []domain.DenormalizedRecord {
	idx := make(map[string][]domain.ReferenceRow, len(refs))
	for _, r := range refs {
		idx[r.RecordID] = append(idx[r.RecordID], r)
	}
	out := make([]domain.DenormalizedRecord, 0, len(recs))
	for _, rec := range recs {
		for _, ref := range idx[rec.RecordID] {
			joined := rec
			joined.ReferenceLabel = ref.Label
			joined.ReferenceLink = ref.Link
			out = append(out, joined)
		}
	}
	return out
}

func joinField(recs []domain.DenormalizedRecord, idx map[string][]string, assign func(*domain.DenormalizedRecord, string)) []domain.DenormalizedRecord {
	out := make([]domain.DenormalizedRecord, 0, len(recs))
	for _, rec := range recs {
		for _, entry := range idx[rec.RecordID] {
			joined := rec
			assign(&joined, entry)
			out = append(out, joined)
		}
	}
	return out
}

func indexValues(values []canonicalValue) map[string][]canonicalValue {
	idx := make(map[string][]canonicalValue, len(values))
	for _, v := range values {
		idx[v.RecordID] = append(idx[v.RecordID], v)
	}
	return idx
}
