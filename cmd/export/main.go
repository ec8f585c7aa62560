package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"foamcli/internal/config"
	"foamcli/internal/datasource"
	"foamcli/internal/exporter"
	"foamcli/internal/infrastructure"
	"foamcli/internal/pipeline"
	"foamcli/internal/units"
	"foamcli/pkg/contracts/domain"
)

func main() {
	variable1 := flag.String("var1", "", "first property to fetch (e.g. porosity)")
	unit1 := flag.String("unit1", "", "target unit for the first property (defaults to the variable's default unit)")
	variable2 := flag.String("var2", "", "second property to fetch (e.g. Young modulus)")
	unit2 := flag.String("unit2", "", "target unit for the second property (defaults to the variable's default unit)")
	metals := flag.String("metals", "all", "comma-separated base-material allow-list, or \"all\"")
	cellType := flag.String("cell-type", "any", "cell structure filter: any, open or closed")
	rangeVar := flag.String("range-var", "", "optional third property to filter on")
	rangeUnit := flag.String("range-unit", "", "unit for the range bounds")
	rangeLower := flag.Float64("range-lower", 0, "exclusive lower bound for the range filter")
	rangeUpper := flag.Float64("range-upper", 0, "exclusive upper bound for the range filter")
	groupBy := flag.String("group-by", "material", "series grouping: material or study")
	format := flag.String("format", "xlsx", "export format: xlsx or csv")
	listVars := flag.Bool("list", false, "list known variables and exit")
	flag.Parse()

	if *listVars {
		printVariables()
		return
	}

	if *variable1 == "" || *variable2 == "" {
		fmt.Fprintln(os.Stderr, "both -var1 and -var2 are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	workDir, err := os.Getwd()
	if err != nil {
		logger.Error("Failed to resolve working directory", slog.String("error", err.Error()))
		os.Exit(1)
	}
	paths, err := config.NewPaths(workDir, cfg.Paths)
	if err != nil {
		logger.Error("Failed to resolve paths", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create required directories", slog.String("error", err.Error()))
		os.Exit(1)
	}

	criteria := domain.Criteria{
		Variable1: domain.VariableSelection{Name: *variable1, Unit: *unit1},
		Variable2: domain.VariableSelection{Name: *variable2, Unit: *unit2},
		Metals:    splitList(*metals),
		CellType:  domain.CellTypeSelector(*cellType),
		GroupBy:   domain.Grouping(*groupBy),
	}
	if *rangeVar != "" {
		criteria.Range = &domain.RangeSpec{
			Variable: *rangeVar,
			Unit:     *rangeUnit,
			Lower:    *rangeLower,
			Upper:    *rangeUpper,
		}
	}

	ctx := context.Background()
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	source, err := datasource.NewPostgres(connectCtx, cfg.Database.DSN, logger)
	cancel()
	if err != nil {
		logger.Error("Failed to connect to materials database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer source.Close()

	result, err := pipeline.New(source, logger).Run(ctx, criteria)
	if err != nil {
		logger.Error("Pipeline run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Pipeline completed",
		slog.String("run_id", result.RunID),
		slog.Int("rows", len(result.Table.Rows)))

	baseName := exporter.FileBaseName(result.Variable1, result.Variable2)
	var path string
	switch strings.ToLower(*format) {
	case "xlsx":
		path, err = exporter.NewXLSXWriter(paths).WriteTable(result.Table, baseName)
	case "csv":
		path, err = exporter.NewCSVWriter(paths).WriteTable(result.Table, baseName)
	default:
		logger.Error("Unknown export format", slog.String("format", *format))
		os.Exit(2)
	}
	if err != nil {
		logger.Error("Export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Export written", slog.String("path", path))
	fmt.Println(path)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func printVariables() {
	table := units.NewConversionTable()
	for _, v := range units.Variables() {
		fmt.Printf("%-28s family=%-15s default=%-10s units=%s\n",
			v.Name, v.Family, v.DefaultUnit,
			strings.Join(table.FamilyMembers(v.Family), ","))
	}
}
