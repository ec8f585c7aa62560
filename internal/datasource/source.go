package datasource

import (
	"context"

	"foamcli/pkg/contracts/domain"
)

// Fixed metadata keywords the pipeline always fetches.
const (
	KeywordFoamType    = "Foam type"
	KeywordMethod      = "Production method"
	KeywordDescription = "Description"
)

// FetchRequest names the row sets one pipeline run needs: the property
// keywords for the numeric values (two, or three when a range filter is
// active) plus the fixed metadata keywords.
type FetchRequest struct {
	ValueKeywords    []string
	MetadataKeywords []string
}

// Snapshot holds every row set fetched for a single pipeline run. All
// sets come from the same scoped connection, taken before any transform
// stage runs; the pipeline never goes back to the database.
type Snapshot struct {
	Values     map[string][]domain.PropertyValue
	Metadata   map[string][]domain.MetadataEntry
	Materials  []domain.MaterialRow
	References []domain.ReferenceRow
}

// Source is the data source contract: given property and metadata
// keywords it returns raw typed row sets. Implementations must release
// any connection before returning; the snapshot outlives the query
// scope.
type Source interface {
	Fetch(ctx context.Context, req FetchRequest) (*Snapshot, error)
}

// DefaultMetadataKeywords returns the metadata keywords every run fetches.
func DefaultMetadataKeywords() []string {
	return []string{KeywordFoamType, KeywordMethod, KeywordDescription}
}
