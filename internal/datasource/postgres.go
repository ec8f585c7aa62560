package datasource

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "foamcli/internal/errors"
	"foamcli/pkg/contracts/domain"
)

const (
	queryPropertyValues = `
		SELECT measurement_id, value, COALESCE(unit, '')
		FROM property_values
		WHERE property = $1 AND value IS NOT NULL
		ORDER BY measurement_id`

	queryMetadataEntries = `
		SELECT measurement_id, COALESCE(entry, '')
		FROM measurement_metadata
		WHERE keyword = $1
		ORDER BY measurement_id`

	queryBaseMaterials = `
		SELECT measurement_id, material
		FROM base_materials
		ORDER BY measurement_id`

	queryReferences = `
		SELECT measurement_id, label, COALESCE(link, '')
		FROM study_references
		ORDER BY measurement_id`
)

// Postgres is the materials database source backed by a pgx pool.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgres connects to the materials database and verifies the
// connection with a ping.
func NewPostgres(ctx context.Context, dsn string, logger *slog.Logger) (*Postgres, error) {
	if logger == nil {
		logger = slog.Default()
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, apperrors.NewDataSourceError("failed to create connection pool", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, apperrors.NewDataSourceError("failed to reach materials database", err)
	}

	return &Postgres{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

// Fetch acquires one connection, runs the fixed query set for the
// request, and releases the connection unconditionally before
// returning. Any failure aborts the whole fetch; no partial snapshot is
// returned.
func (p *Postgres) Fetch(ctx context.Context, req FetchRequest) (*Snapshot, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, apperrors.NewDataSourceError("failed to acquire connection", err)
	}
	defer conn.Release()

	snap := &Snapshot{
		Values:   make(map[string][]domain.PropertyValue, len(req.ValueKeywords)),
		Metadata: make(map[string][]domain.MetadataEntry, len(req.MetadataKeywords)),
	}

	for _, keyword := range req.ValueKeywords {
		values, err := p.fetchPropertyValues(ctx, conn, keyword)
		if err != nil {
			return nil, err
		}
		snap.Values[keyword] = values
		p.logger.Debug("Fetched property values",
			slog.String("keyword", keyword),
			slog.Int("rows", len(values)))
	}

	for _, keyword := range req.MetadataKeywords {
		entries, err := p.fetchMetadataEntries(ctx, conn, keyword)
		if err != nil {
			return nil, err
		}
		snap.Metadata[keyword] = entries
	}

	if snap.Materials, err = p.fetchBaseMaterials(ctx, conn); err != nil {
		return nil, err
	}
	if snap.References, err = p.fetchReferences(ctx, conn); err != nil {
		return nil, err
	}

	return snap, nil
}

func (p *Postgres) fetchPropertyValues(ctx context.Context, conn *pgxpool.Conn, keyword string) ([]domain.PropertyValue, error) {
	rows, err := conn.Query(ctx, queryPropertyValues, keyword)
	if err != nil {
		return nil, apperrors.NewDataSourceError(
			fmt.Sprintf("querying property values for %q", keyword), err)
	}

	values, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PropertyValue, error) {
		var v domain.PropertyValue
		err := row.Scan(&v.RecordID, &v.Value, &v.UnitLabel)
		return v, err
	})
	if err != nil {
		return nil, apperrors.NewDataSourceError(
			fmt.Sprintf("scanning property values for %q", keyword), err)
	}
	return values, nil
}

func (p *Postgres) fetchMetadataEntries(ctx context.Context, conn *pgxpool.Conn, keyword string) ([]domain.MetadataEntry, error) {
	rows, err := conn.Query(ctx, queryMetadataEntries, keyword)
	if err != nil {
		return nil, apperrors.NewDataSourceError(
			fmt.Sprintf("querying metadata for %q", keyword), err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MetadataEntry, error) {
		var e domain.MetadataEntry
		err := row.Scan(&e.RecordID, &e.Entry)
		return e, err
	})
	if err != nil {
		return nil, apperrors.NewDataSourceError(
			fmt.Sprintf("scanning metadata for %q", keyword), err)
	}
	return entries, nil
}

func (p *Postgres) fetchBaseMaterials(ctx context.Context, conn *pgxpool.Conn) ([]domain.MaterialRow, error) {
	rows, err := conn.Query(ctx, queryBaseMaterials)
	if err != nil {
		return nil, apperrors.NewDataSourceError("querying base materials", err)
	}

	materials, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MaterialRow, error) {
		var m domain.MaterialRow
		err := row.Scan(&m.RecordID, &m.BaseMaterial)
		return m, err
	})
	if err != nil {
		return nil, apperrors.NewDataSourceError("scanning base materials", err)
	}
	return materials, nil
}

func (p *Postgres) fetchReferences(ctx context.Context, conn *pgxpool.Conn) ([]domain.ReferenceRow, error) {
	rows, err := conn.Query(ctx, queryReferences)
	if err != nil {
		return nil, apperrors.NewDataSourceError("querying study references", err)
	}

	refs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ReferenceRow, error) {
		var r domain.ReferenceRow
		err := row.Scan(&r.RecordID, &r.Label, &r.Link)
		return r, err
	})
	if err != nil {
		return nil, apperrors.NewDataSourceError("scanning study references", err)
	}
	return refs, nil
}
