package dataprocessing

import (
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"menucli/internal/errors"
	"menucli/pkg/contracts/domain"
)

// LoadWorkbook loads a menu dataset from one sheet of an Excel workbook,
// applying the same schema and row rules as the CSV loader. An empty sheet
// name selects the first sheet in the workbook.
func (l *Loader) LoadWorkbook(path, sheet string) (map[string]domain.MenuItem, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewAccessError(path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.NewStructuralError(RequiredColumns, RequiredColumns)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewAccessError(path, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewStructuralError(RequiredColumns, RequiredColumns)
	}

	header := rows[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, required := range RequiredColumns {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		l.logger.Error("workbook schema invalid",
			slog.String("sheet", sheet),
			slog.Any("missing_columns", missing))
		return nil, errors.NewStructuralError(missing, RequiredColumns)
	}

	items := make(map[string]domain.MenuItem)
	for rowNum, record := range rows[1:] {
		row := make(Row, len(RequiredColumns))
		for _, col := range RequiredColumns {
			// excelize drops trailing empty cells, so short rows read as "".
			if idx := columns[col]; idx < len(record) {
				row[col] = record[idx]
			}
		}

		item, err := ParseRecord(rowNum+1, row)
		if err != nil {
			l.logger.Error("row rejected",
				slog.String("sheet", sheet),
				slog.Int("row", rowNum+1),
				slog.String("error", err.Error()))
			return nil, err
		}
		items[item.Name] = item
	}

	l.logger.Info("workbook loaded",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("items", len(items)))
	return items, nil
}
