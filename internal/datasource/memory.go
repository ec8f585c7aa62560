package datasource

import (
	"context"

	"foamcli/pkg/contracts/domain"
)

// Memory is an in-memory Source used by tests and examples. Fetch
// copies only the requested keywords into the snapshot, mirroring the
// Postgres source's behavior of returning empty sets for keywords with
// no rows.
type Memory struct {
	Values     map[string][]domain.PropertyValue
	Metadata   map[string][]domain.MetadataEntry
	Materials  []domain.MaterialRow
	References []domain.ReferenceRow

	// Err, when set, is returned by Fetch to simulate source failure.
	Err error
}

// Fetch implements Source.
func (m *Memory) Fetch(_ context.Context, req FetchRequest) (*Snapshot, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	snap := &Snapshot{
		Values:     make(map[string][]domain.PropertyValue, len(req.ValueKeywords)),
		Metadata:   make(map[string][]domain.MetadataEntry, len(req.MetadataKeywords)),
		Materials:  m.Materials,
		References: m.References,
	}
	for _, keyword := range req.ValueKeywords {
		snap.Values[keyword] = m.Values[keyword]
	}
	for _, keyword := range req.MetadataKeywords {
		snap.Metadata[keyword] = m.Metadata[keyword]
	}
	return snap, nil
}
