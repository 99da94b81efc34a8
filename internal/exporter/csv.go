package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"menucli/internal/dataprocessing"
	"menucli/pkg/contracts/domain"
)

// CSVWriter exports the analysis views to a single sectioned CSV file.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV export writer
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteAnalysis writes the menu, ranking, and classification views to path.
func (w *CSVWriter) WriteAnalysis(path string, items map[string]domain.MenuItem, analysis dataprocessing.Analysis) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"Menu Analysis Report"})
	writer.Write([]string{"Items Analyzed:", strconv.Itoa(len(items))})
	writer.Write([]string{"Underrated Items:", strconv.Itoa(len(analysis.Underrated))})
	writer.Write([]string{"Unprofitable Items:", strconv.Itoa(len(analysis.Unprofitable))})
	writer.Write([]string{""})

	sections := []struct {
		title string
		table Table
	}{
		{"MENU", MenuTable(items)},
		{"POPULARITY RANKING", RankingTable(analysis.Ranking)},
		{"UNDERRATED ITEMS", UnderratedTable(analysis.Underrated)},
		{"UNPROFITABLE ITEMS", UnprofitableTable(analysis.Unprofitable)},
	}
	for _, s := range sections {
		writer.Write([]string{s.title})
		writer.Write(s.table.Headers)
		for _, row := range s.table.Rows {
			writer.Write(row)
		}
		writer.Write([]string{""})
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	w.logger.Info("analysis exported",
		slog.String("path", path),
		slog.Int("items", len(items)))
	return nil
}
