// Command menureport loads a menu dataset, validates it, derives per-item
// statistics, and prints the menu, popularity, underrated, and unprofitable
// reports to stdout. The first validation failure aborts the run with a
// non-zero exit and no report output.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"menucli/internal/config"
	"menucli/internal/dataprocessing"
	"menucli/internal/exporter"
	"menucli/internal/files"
	"menucli/internal/infrastructure"
	"menucli/pkg/contracts/domain"
)

func main() {
	os.Exit(run())
}

func run() int {
	file := flag.String("file", "", "dataset path (.csv or .xlsx; defaults to config input.file)")
	sheet := flag.String("sheet", "", "workbook sheet name (first sheet when empty)")
	generateSample := flag.Bool("generate-sample", false, "create the built-in sample dataset when the input file is missing")
	export := flag.String("export", "", "additionally export the analysis to this path (.csv or .xlsx)")
	configFile := flag.String("config", config.DefaultConfigFile, "config file path")
	flag.Parse()

	cfg, err := config.LoadFrom(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return 1
	}

	// Flags override config for this invocation.
	if *file != "" {
		cfg.Input.File = *file
	}
	if *sheet != "" {
		cfg.Input.Sheet = *sheet
	}
	if *generateSample {
		cfg.Input.GenerateSample = true
	}
	if *export != "" {
		cfg.Report.ExportPath = *export
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())
	logger.InfoContext(ctx, "starting menu report",
		slog.String("input_file", cfg.Input.File),
		slog.String("export_path", cfg.Report.ExportPath))

	if err := files.EnsureDataset(cfg.Input.File, cfg.Input.GenerateSample, logger); err != nil {
		logger.ErrorContext(ctx, "dataset unavailable", slog.String("error", err.Error()))
		return 1
	}

	loader := dataprocessing.NewLoader(logger)
	var items map[string]domain.MenuItem
	if strings.EqualFold(filepath.Ext(cfg.Input.File), ".xlsx") {
		items, err = loader.LoadWorkbook(cfg.Input.File, cfg.Input.Sheet)
	} else {
		items, err = loader.LoadFile(cfg.Input.File)
	}
	if err != nil {
		logger.ErrorContext(ctx, "run aborted", slog.String("error", err.Error()))
		return 1
	}

	analysis := dataprocessing.Analyze(items)

	reporter := exporter.NewConsoleReporter(os.Stdout)
	if err := reporter.WriteReport(items, analysis); err != nil {
		logger.ErrorContext(ctx, "failed to write report", slog.String("error", err.Error()))
		return 1
	}

	if cfg.Report.ExportPath != "" {
		if strings.EqualFold(filepath.Ext(cfg.Report.ExportPath), ".xlsx") {
			err = exporter.NewExcelWriter(logger).WriteAnalysis(cfg.Report.ExportPath, items, analysis)
		} else {
			err = exporter.NewCSVWriter(logger).WriteAnalysis(cfg.Report.ExportPath, items, analysis)
		}
		if err != nil {
			logger.ErrorContext(ctx, "export failed", slog.String("error", err.Error()))
			return 1
		}
	}

	logger.InfoContext(ctx, "menu report complete",
		slog.Int("items", len(items)),
		slog.Int("underrated", len(analysis.Underrated)),
		slog.Int("unprofitable", len(analysis.Unprofitable)))
	return 0
}
