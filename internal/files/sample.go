// Package files is the file-acquisition collaborator: it guarantees a
// readable dataset path exists before the loader runs, generating the
// built-in sample dataset when asked.
package files

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"menucli/internal/errors"
)

// SampleDataset is the built-in menu dataset, header row first.
// Garlic Bread is an underrated item and Cheesecake an unprofitable one.
var SampleDataset = [][]string{
	{"item", "price", "category", "ratings", "sales_per_day"},
	{"Chicken Parmigiana", "19.99", "Main", "4.5,4.7,5.0", "10,15,20,25,30,35,40"},
	{"Fish and Chips", "18.99", "Main", "4.8,4.9,4.7", "5,10,15,20,25,30,35"},
	{"Margherita Pizza", "15.99", "Main", "4.0,4.2,4.3", "50,60,70,80,90,100,110"},
	{"Caesar Salad", "9.99", "Starter", "4.5,4.6,4.8", "20,25,30,35,40,45,50"},
	{"Garlic Bread", "6.99", "Starter", "4.8,4.9,4.7", "10,5,1,15,3,5,10"},
	{"Tiramisu", "7.99", "Dessert", "4.7,4.8,4.9", "15,20,25,30,35,40,45"},
	{"Cheesecake", "6.99", "Dessert", "2.5,2.7,2.8", "1,2,3,4,5,6,7"},
}

// WriteSampleDataset writes the sample dataset as CSV to path, creating the
// parent directory if needed.
func WriteSampleDataset(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sample dataset: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(SampleDataset); err != nil {
		return fmt.Errorf("failed to write sample dataset: %w", err)
	}
	return nil
}

// EnsureDataset verifies that path names a readable regular file. When the
// file is missing and generateSample is set, the sample dataset is written
// there instead of failing. Missing without generation, or a directory at
// path, is an access error.
func EnsureDataset(path string, generateSample bool, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if !generateSample {
			return errors.NewAccessError(path, err)
		}
		if err := WriteSampleDataset(path); err != nil {
			return errors.NewAccessError(path, err)
		}
		logger.Info("sample dataset created", slog.String("path", path))
		return nil
	}
	if err != nil {
		return errors.NewAccessError(path, err)
	}
	if info.IsDir() {
		return errors.NewAccessError(path, fmt.Errorf("%s is a directory", path))
	}
	return nil
}
