package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"menucli/internal/dataprocessing"
	"menucli/pkg/contracts/domain"
)

// Workbook sheet names for the exported analysis.
const (
	SheetMenu         = "Menu"
	SheetRanking      = "Ranking"
	SheetUnderrated   = "Underrated"
	SheetUnprofitable = "Unprofitable"
)

// ExcelWriter exports the analysis views to an Excel workbook, one sheet per
// view.
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates a new workbook export writer
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// WriteAnalysis writes the menu, ranking, and classification views to an
// .xlsx workbook at path.
func (w *ExcelWriter) WriteAnalysis(path string, items map[string]domain.MenuItem, analysis dataprocessing.Analysis) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name  string
		table Table
	}{
		{SheetMenu, MenuTable(items)},
		{SheetRanking, RankingTable(analysis.Ranking)},
		{SheetUnderrated, UnderratedTable(analysis.Underrated)},
		{SheetUnprofitable, UnprofitableTable(analysis.Unprofitable)},
	}

	// Reuse the default sheet for the first view, create the rest.
	if err := f.SetSheetName(f.GetSheetName(0), SheetMenu); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	for _, s := range sheets[1:] {
		if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}
	}

	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.table); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	w.logger.Info("analysis exported",
		slog.String("path", path),
		slog.Int("sheets", len(sheets)))
	return nil
}

func writeSheet(f *excelize.File, sheet string, table Table) error {
	rows := append([][]string{table.Headers}, table.Rows...)
	for r, row := range rows {
		for c, cell := range row {
			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to build cell reference: %w", err)
			}
			if err := f.SetCellValue(sheet, ref, cell); err != nil {
				return fmt.Errorf("failed to write cell %s on %s: %w", ref, sheet, err)
			}
		}
	}
	return nil
}
