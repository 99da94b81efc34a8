package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menucli/internal/errors"
)

func TestValidatePrecision(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		maxDecimals int
		wantErr     bool
	}{
		{
			name:        "two decimals accepted",
			value:       19.99,
			maxDecimals: 2,
			wantErr:     false,
		},
		{
			name:        "third significant decimal rejected",
			value:       19.999,
			maxDecimals: 2,
			wantErr:     true,
		},
		{
			name:        "trailing zero ignored",
			value:       19.990,
			maxDecimals: 2,
			wantErr:     false,
		},
		{
			name:        "whole number accepted",
			value:       20,
			maxDecimals: 2,
			wantErr:     false,
		},
		{
			name:        "single decimal accepted",
			value:       6.5,
			maxDecimals: 2,
			wantErr:     false,
		},
		{
			name:        "small violating fraction rejected",
			value:       0.005,
			maxDecimals: 2,
			wantErr:     true,
		},
		{
			name:        "zero accepted",
			value:       0,
			maxDecimals: 2,
			wantErr:     false,
		},
		{
			name:        "tighter limit rejects second decimal",
			value:       4.75,
			maxDecimals: 1,
			wantErr:     true,
		},
		{
			name:        "looser limit accepts third decimal",
			value:       19.999,
			maxDecimals: 3,
			wantErr:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrecision(tt.value, tt.maxDecimals)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsPrecision(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
