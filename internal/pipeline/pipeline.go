package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"foamcli/internal/datasource"
	"foamcli/internal/units"
	"foamcli/pkg/contracts/domain"
)

const tracerName = "foamcli.pipeline"

// Result is the outcome of one pipeline run: the surviving denormalized
// records, the formatted output table, and the visualization handoff.
// An empty record set is a valid outcome, not a failure.
type Result struct {
	RunID   string
	Records []domain.DenormalizedRecord
	Table   domain.Table
	Chart   domain.ChartConfig

	// Resolved selections, for sinks that derive file names.
	Variable1 string
	Variable2 string
	Unit1     string
	Unit2     string
}

// Pipeline turns a criteria document into a unit-consistent, filtered
// dataset. Every run is fully synchronous and recomputes everything
// from a fresh data snapshot; nothing is cached or mutated between runs.
type Pipeline struct {
	source  datasource.Source
	table   *units.ConversionTable
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *runMetrics
}

type runMetrics struct {
	runsTotal     metric.Int64Counter
	rowsFetched   metric.Int64Counter
	rowsJoined    metric.Int64Counter
	rowsSurviving metric.Int64Counter
}

// New creates a pipeline over the given data source.
func New(source datasource.Source, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	meter := otel.Meter(tracerName)
	m := &runMetrics{}
	m.runsTotal, _ = meter.Int64Counter("foamcli_pipeline_runs_total",
		metric.WithDescription("Completed pipeline runs"))
	m.rowsFetched, _ = meter.Int64Counter("foamcli_pipeline_rows_fetched_total",
		metric.WithDescription("Raw property value rows fetched from the data source"))
	m.rowsJoined, _ = meter.Int64Counter("foamcli_pipeline_rows_joined_total",
		metric.WithDescription("Denormalized rows after the metadata join"))
	m.rowsSurviving, _ = meter.Int64Counter("foamcli_pipeline_rows_surviving_total",
		metric.WithDescription("Rows surviving conversion and filtering"))

	return &Pipeline{
		source:  source,
		table:   units.NewConversionTable(),
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
		metrics: m,
	}
}

// Run executes the full pipeline for one criteria document.
//
// Stage order: resolve configuration (fatal on unknown keywords, before
// any query), fetch one snapshot (fatal on source failure), canonicalize
// units, join, convert, filter (metal, cell type, numeric range), format.
func (p *Pipeline) Run(ctx context.Context, c domain.Criteria) (*Result, error) {
	runID := uuid.New().String()
	ctx, span := p.tracer.Start(ctx, "pipeline.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.String("run.variable1", c.Variable1.Name),
			attribute.String("run.variable2", c.Variable2.Name),
		),
	)
	defer span.End()

	logger := p.logger.With(slog.String("run_id", runID))

	// Configuration resolution happens before any query touches the
	// database; unknown variable or unit keywords abort here.
	var1, err := units.ResolveVariable(c.Variable1.Name)
	if err != nil {
		return nil, err
	}
	unit1, err := units.ResolveTargetUnit(p.table, var1, c.Variable1.Unit)
	if err != nil {
		return nil, err
	}
	var2, err := units.ResolveVariable(c.Variable2.Name)
	if err != nil {
		return nil, err
	}
	unit2, err := units.ResolveTargetUnit(p.table, var2, c.Variable2.Unit)
	if err != nil {
		return nil, err
	}

	var filterVar units.Variable
	var filterUnit string
	if c.Range != nil {
		if filterVar, err = units.ResolveVariable(c.Range.Variable); err != nil {
			return nil, err
		}
		if filterUnit, err = units.ResolveTargetUnit(p.table, filterVar, c.Range.Unit); err != nil {
			return nil, err
		}
	}

	req := datasource.FetchRequest{
		ValueKeywords:    []string{var1.Keyword, var2.Keyword},
		MetadataKeywords: datasource.DefaultMetadataKeywords(),
	}
	if c.Range != nil {
		req.ValueKeywords = append(req.ValueKeywords, filterVar.Keyword)
	}

	snap, err := p.source.Fetch(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	raw1 := snap.Values[var1.Keyword]
	raw2 := snap.Values[var2.Keyword]
	p.metrics.rowsFetched.Add(ctx, int64(len(raw1)+len(raw2)))
	logger.Info("Fetched measurement snapshot",
		slog.String("variable1", var1.Name),
		slog.Int("rows1", len(raw1)),
		slog.String("variable2", var2.Name),
		slog.Int("rows2", len(raw2)))

	values1 := canonicalizeValues(p.table, var1.Name, raw1, logger)
	values2 := canonicalizeValues(p.table, var2.Name, raw2, logger)

	recs := seedRecords(values1)
	recs = joinSecondValue(recs, values2)
	recs = joinMaterials(recs, snap.Materials)
	recs = joinMetadata(recs, snap.Metadata[datasource.KeywordFoamType], func(r *domain.DenormalizedRecord, s string) { r.FoamType = s })
	recs = joinMetadata(recs, snap.Metadata[datasource.KeywordMethod], func(r *domain.DenormalizedRecord, s string) { r.Method = s })
	recs = joinMetadata(recs, snap.Metadata[datasource.KeywordDescription], func(r *domain.DenormalizedRecord, s string) { r.Description = s })
	recs = joinReferences(recs, snap.References)
	p.metrics.rowsJoined.Add(ctx, int64(len(recs)))

	recs = convertColumn(p.table, recs, column1, unit1, logger)
	recs = convertColumn(p.table, recs, column2, unit2, logger)

	recs = filterByMetal(recs, c.Metals)
	recs = filterByCellType(recs, c.CellType)

	filterVariableName := ""
	if c.Range != nil {
		filterVariableName = filterVar.Name
		filterValues := canonicalizeValues(p.table, filterVar.Name, snap.Values[filterVar.Keyword], logger)
		recs = joinFilterValues(recs, filterValues)
		recs = convertColumn(p.table, recs, filterColumn, filterUnit, logger)
		recs = filterByRange(recs, c.Range.Lower, c.Range.Upper)
	}

	p.metrics.rowsSurviving.Add(ctx, int64(len(recs)))
	p.metrics.runsTotal.Add(ctx, 1)
	span.SetAttributes(attribute.Int("run.surviving_rows", len(recs)))
	logger.Info("Pipeline run complete", slog.Int("surviving_rows", len(recs)))

	return &Result{
		RunID:     runID,
		Records:   recs,
		Table:     buildTable(recs, var1.Name, var2.Name, filterVariableName),
		Chart:     buildChart(recs, c, var1.Name, unit1, var2.Name, unit2),
		Variable1: var1.Name,
		Variable2: var2.Name,
		Unit1:     unit1,
		Unit2:     unit2,
	}, nil
}
