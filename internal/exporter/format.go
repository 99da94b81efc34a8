package exporter

import (
	"fmt"
)

// formatPrice formats a currency value with exactly 2 decimal places so that
// 15.9 renders as $15.90.
func formatPrice(f float64) string {
	return fmt.Sprintf("$%.2f", f)
}

// formatFloat formats a derived metric with exactly 2 decimal places
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatInt formats an integer cell value
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
