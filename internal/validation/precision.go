// Package validation provides field-level validators shared by the dataset
// pipeline.
package validation

import (
	"strconv"
	"strings"

	"menucli/internal/errors"
)

// DefaultMaxDecimals is the fractional-digit limit applied to monetary values.
const DefaultMaxDecimals = 2

// ValidatePrecision confirms that the decimal representation of value has no
// more than maxDecimals significant fractional digits, ignoring trailing
// zeros. 19.99 and 19.990 pass at the default limit; 19.999 does not.
//
// The value is rendered with one digit beyond the limit so that a violating
// digit survives rounding and can be detected.
func ValidatePrecision(value float64, maxDecimals int) error {
	rendered := strconv.FormatFloat(value, 'f', maxDecimals+1, 64)
	_, fraction, _ := strings.Cut(rendered, ".")
	if len(strings.TrimRight(fraction, "0")) > maxDecimals {
		return errors.NewPrecisionError(value, maxDecimals)
	}
	return nil
}
