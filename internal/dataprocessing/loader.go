package dataprocessing

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strings"

	"menucli/internal/errors"
	"menucli/pkg/contracts/domain"
)

// Loader reads a full menu dataset, validates its column schema, and applies
// the record parser to every row. Loading is strictly fail-fast: the first
// invalid row aborts the load and no partial dataset is returned.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a dataset loader. A nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadFile opens path and loads the dataset it contains. Open and read
// failures surface as access errors.
func (l *Loader) LoadFile(path string) (map[string]domain.MenuItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewAccessError(path, err)
	}
	defer f.Close()

	items, err := l.Load(f)
	if err != nil {
		l.logger.Error("dataset load failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, err
	}
	l.logger.Info("dataset loaded",
		slog.String("path", path),
		slog.Int("items", len(items)))
	return items, nil
}

// Load reads a CSV dataset from r. The header row must contain every column
// in RequiredColumns, in any order; extra columns are ignored. An optional
// UTF-8 byte-order marker at the start of the stream is tolerated.
//
// Rows are parsed in file order. A later row with a duplicate item name
// silently replaces the earlier one in the returned by-name mapping.
func (l *Loader) Load(r io.Reader) (map[string]domain.MenuItem, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		// No header at all: every required column is missing.
		return nil, errors.NewStructuralError(RequiredColumns, RequiredColumns)
	}
	if err != nil {
		return nil, errors.NewAccessError("dataset", err)
	}
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
		l.logger.Error("dataset schema invalid",
			slog.Any("missing_columns", missing),
			slog.Any("required_columns", RequiredColumns))
		return nil, errors.NewStructuralError(missing, RequiredColumns)
	}

	items := make(map[string]domain.MenuItem)
	for rowNum := 1; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewFormatError(rowNum, "", "", err.Error())
		}

		row := make(Row, len(RequiredColumns))
		for _, col := range RequiredColumns {
			row[col] = record[columns[col]]
		}

		item, err := ParseRecord(rowNum, row)
		if err != nil {
			l.logger.Error("row rejected",
				slog.Int("row", rowNum),
				slog.Any("fields", row),
				slog.String("error", err.Error()))
			return nil, err
		}
		items[item.Name] = item
	}
	return items, nil
}
