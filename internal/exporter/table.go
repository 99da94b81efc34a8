// Package exporter renders the validated dataset and its derived views as
// aligned text tables, CSV, or an Excel workbook. The core pipeline hands it
// plain data only; all formatting decisions live here.
package exporter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"menucli/internal/dataprocessing"
	"menucli/pkg/contracts/domain"
)

// Table is a rendered report section: a header row plus data rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render writes the table with every column sized to its widest cell,
// cells separated by " | " and a dash rule under the header.
func (t Table) Render(w io.Writer) error {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	total := 0
	for _, wd := range widths {
		total += wd
	}

	if err := writeRow(w, t.Headers, widths); err != nil {
		return err
	}
	rule := strings.Repeat("-", total+3*(len(t.Headers)-1))
	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writeRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	_, err := fmt.Fprintln(w, strings.Join(padded, " | "))
	return err
}

// MenuTable builds the full-menu view, one row per item sorted by name.
func MenuTable(items map[string]domain.MenuItem) Table {
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	t := Table{Headers: []string{"Item", "Price", "Category", "Avg Rating", "Sales/Day"}}
	for _, name := range names {
		item := items[name]
		t.Rows = append(t.Rows, []string{
			item.Name,
			formatPrice(item.Price),
			item.Category,
			formatFloat(item.AverageRating()),
			formatWeek(item.SalesPerDay),
		})
	}
	return t
}

// RankingTable builds the popularity view, sorted by score descending with
// name as the tie-breaker.
func RankingTable(ranking []dataprocessing.ItemMetrics) Table {
	ordered := make([]dataprocessing.ItemMetrics, len(ranking))
	copy(ordered, ranking)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].PopularityScore != ordered[j].PopularityScore {
			return ordered[i].PopularityScore > ordered[j].PopularityScore
		}
		return ordered[i].Item.Name < ordered[j].Item.Name
	})

	t := Table{Headers: []string{"Item", "Category", "Avg Rating", "Total Sales", "Popularity Score"}}
	for _, m := range ordered {
		t.Rows = append(t.Rows, []string{
			m.Item.Name,
			m.Item.Category,
			formatFloat(m.AverageRating),
			formatInt(m.TotalSales),
			formatFloat(m.PopularityScore),
		})
	}
	return t
}

// classificationTable renders an underrated or unprofitable bucket, sorted
// by item name.
func classificationTable(metrics []dataprocessing.ItemMetrics) Table {
	ordered := make([]dataprocessing.ItemMetrics, len(metrics))
	copy(ordered, metrics)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Item.Name < ordered[j].Item.Name })

	t := Table{Headers: []string{"Item", "Category", "Avg Rating", "Total Sales"}}
	for _, m := range ordered {
		t.Rows = append(t.Rows, []string{
			m.Item.Name,
			m.Item.Category,
			formatFloat(m.AverageRating),
			formatInt(m.TotalSales),
		})
	}
	return t
}

// UnderratedTable builds the underrated-items view.
func UnderratedTable(metrics []dataprocessing.ItemMetrics) Table {
	return classificationTable(metrics)
}

// UnprofitableTable builds the unprofitable-items view.
func UnprofitableTable(metrics []dataprocessing.ItemMetrics) Table {
	return classificationTable(metrics)
}

// ConsoleReporter writes the full set of reports to a single writer.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a reporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// WriteReport renders the menu, popularity, underrated, and unprofitable
// sections in order. Empty classification buckets render a fallback line
// rather than an empty table.
func (r *ConsoleReporter) WriteReport(items map[string]domain.MenuItem, analysis dataprocessing.Analysis) error {
	if err := MenuTable(items).Render(r.w); err != nil {
		return err
	}

	if err := r.section("Analysis of Popular Items:"); err != nil {
		return err
	}
	if err := RankingTable(analysis.Ranking).Render(r.w); err != nil {
		return err
	}

	if err := r.section("Identification of Underrated Items:"); err != nil {
		return err
	}
	if len(analysis.Underrated) == 0 {
		if _, err := fmt.Fprintln(r.w, "No underrated items found."); err != nil {
			return err
		}
	} else if err := UnderratedTable(analysis.Underrated).Render(r.w); err != nil {
		return err
	}

	if err := r.section("Identification of Unprofitable Items:"); err != nil {
		return err
	}
	if len(analysis.Unprofitable) == 0 {
		if _, err := fmt.Fprintln(r.w, "No unprofitable items found."); err != nil {
			return err
		}
	} else if err := UnprofitableTable(analysis.Unprofitable).Render(r.w); err != nil {
		return err
	}
	return nil
}

func (r *ConsoleReporter) section(title string) error {
	_, err := fmt.Fprintf(r.w, "\n%s\n", title)
	return err
}

// formatWeek renders a sales map in the fixed weekday order.
func formatWeek(sales map[string]int) string {
	parts := make([]string, 0, len(domain.DaysOfWeek))
	for _, day := range domain.DaysOfWeek {
		parts = append(parts, fmt.Sprintf("%s:%d", day, sales[day]))
	}
	return strings.Join(parts, ", ")
}
