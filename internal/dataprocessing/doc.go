// Package dataprocessing implements the menu dataset pipeline: parsing raw
// rows into validated records, loading complete datasets from CSV or Excel
// sources, and deriving per-item statistics and classifications.
//
// # Data Flow
//
// The typical flow through this package:
//
//	CSV/XLSX source → Loader → map[name]MenuItem → Analyze → Analysis → reporting
//
// # Error Handling
//
// Loading is strictly fail-fast. The schema is checked before any row is
// parsed, and the first invalid row aborts the entire load with an error
// naming the row and field that failed. Callers never see a partial dataset.
package dataprocessing
