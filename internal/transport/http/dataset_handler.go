package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "foamcli/internal/errors"
	"foamcli/internal/exporter"
	"foamcli/internal/pipeline"
	"foamcli/internal/units"
	"foamcli/pkg/contracts/domain"
)

// DatasetService runs the measurement pipeline for one criteria document.
type DatasetService interface {
	Run(ctx context.Context, c domain.Criteria) (*pipeline.Result, error)
}

// TableExporter writes the final table to a spreadsheet sink.
type TableExporter interface {
	WriteTable(table domain.Table, baseName string) (string, error)
}

// DatasetHandler serves the dataset pipeline over HTTP.
type DatasetHandler struct {
	service  DatasetService
	exporter TableExporter
	validate *validator.Validate
	logger   *slog.Logger
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(service DatasetService, exporter TableExporter, logger *slog.Logger) *DatasetHandler {
	return &DatasetHandler{
		service:  service,
		exporter: exporter,
		validate: validator.New(),
		logger:   logger.With(slog.String("component", "dataset_handler")),
	}
}

// Routes returns the dataset routes
func (h *DatasetHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/dataset", h.BuildDataset)
	r.Get("/variables", h.ListVariables)

	return r
}

// DatasetResponse is the JSON body returned for a successful run.
type DatasetResponse struct {
	RunID        string             `json:"run_id"`
	Table        domain.Table       `json:"table"`
	Chart        domain.ChartConfig `json:"chart"`
	RowCount     int                `json:"row_count"`
	ExportedFile string             `json:"exported_file,omitempty"`
}

// BuildDataset runs the pipeline for the posted criteria and returns
// the formatted table plus the chart handoff. With the export flag set
// the table is also written server-side and the file path reported.
func (h *DatasetHandler) BuildDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var criteria domain.Criteria
	if err := render.DecodeJSON(r.Body, &criteria); err != nil {
		h.renderError(w, r, apierrors.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(criteria); err != nil {
		h.logger.WarnContext(ctx, "criteria validation failed", "error", err.Error())
		h.renderError(w, r, apierrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.service.Run(ctx, criteria)
	if err != nil {
		h.logger.ErrorContext(ctx, "pipeline run failed", "error", err.Error())
		h.renderError(w, r, err)
		return
	}

	resp := &DatasetResponse{
		RunID:    result.RunID,
		Table:    result.Table,
		Chart:    result.Chart,
		RowCount: len(result.Table.Rows),
	}

	if criteria.Export {
		baseName := exporter.FileBaseName(result.Variable1, result.Variable2)
		path, err := h.exporter.WriteTable(result.Table, baseName)
		if err != nil {
			h.logger.ErrorContext(ctx, "export failed", "error", err.Error())
			h.renderError(w, r, apierrors.NewStorageError("failed to write export file", err))
			return
		}
		resp.ExportedFile = path
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// VariableInfo describes one plottable variable for clients.
type VariableInfo struct {
	Name        string   `json:"name"`
	Family      string   `json:"family"`
	DefaultUnit string   `json:"default_unit"`
	Units       []string `json:"units"`
}

// ListVariables returns the variable registry with the units each
// variable can be converted to.
func (h *DatasetHandler) ListVariables(w http.ResponseWriter, r *http.Request) {
	table := units.NewConversionTable()

	vars := units.Variables()
	infos := make([]VariableInfo, 0, len(vars))
	for _, v := range vars {
		infos = append(infos, VariableInfo{
			Name:        v.Name,
			Family:      string(v.Family),
			DefaultUnit: v.DefaultUnit,
			Units:       table.FamilyMembers(v.Family),
		})
	}

	render.JSON(w, r, map[string]any{"variables": infos})
}

func (h *DatasetHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apierrors.ToAPIError(err)
	if renderErr := render.Render(w, r, apiErr); renderErr != nil {
		http.Error(w, apiErr.Message, apiErr.StatusCode)
	}
}
