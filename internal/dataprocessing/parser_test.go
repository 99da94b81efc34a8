package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menucli/internal/errors"
)

func validRow() Row {
	return Row{
		ColumnItem:     "Garlic Bread",
		ColumnPrice:    "6.99",
		ColumnCategory: "Starter",
		ColumnRatings:  "4.8,4.9,4.7",
		ColumnSales:    "10,5,1,15,3,5,10",
	}
}

func TestParseRecord(t *testing.T) {
	item, err := ParseRecord(1, validRow())
	require.NoError(t, err)

	assert.Equal(t, "Garlic Bread", item.Name)
	assert.Equal(t, 6.99, item.Price)
	assert.Equal(t, "Starter", item.Category)
	assert.Equal(t, []float64{4.8, 4.9, 4.7}, item.Ratings)
	assert.Equal(t, map[string]int{
		"Mon": 10, "Tue": 5, "Wed": 1, "Thu": 15, "Fri": 3, "Sat": 5, "Sun": 10,
	}, item.SalesPerDay)
}

func TestParseRecord_Failures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(Row)
		wantCode string
		field    string
	}{
		{
			name:     "price not a number",
			mutate:   func(r Row) { r[ColumnPrice] = "abc" },
			wantCode: errors.CodeFormat,
			field:    ColumnPrice,
		},
		{
			name:     "price too precise",
			mutate:   func(r Row) { r[ColumnPrice] = "19.999" },
			wantCode: errors.CodePrecision,
			field:    ColumnPrice,
		},
		{
			name:     "rating not a number",
			mutate:   func(r Row) { r[ColumnRatings] = "4.5,great,5.0" },
			wantCode: errors.CodeFormat,
			field:    ColumnRatings,
		},
		{
			name: "empty ratings field fails as a parse error",
			// "" splits to one empty token, which fails the numeric parse.
			mutate:   func(r Row) { r[ColumnRatings] = "" },
			wantCode: errors.CodeFormat,
			field:    ColumnRatings,
		},
		{
			name:     "six sales values",
			mutate:   func(r Row) { r[ColumnSales] = "1,2,3,4,5,6" },
			wantCode: errors.CodeFormat,
			field:    ColumnSales,
		},
		{
			name:     "eight sales values",
			mutate:   func(r Row) { r[ColumnSales] = "1,2,3,4,5,6,7,8" },
			wantCode: errors.CodeFormat,
			field:    ColumnSales,
		},
		{
			name:     "sales value not an integer",
			mutate:   func(r Row) { r[ColumnSales] = "1,2,3,4.5,5,6,7" },
			wantCode: errors.CodeFormat,
			field:    ColumnSales,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			tt.mutate(row)

			_, err := ParseRecord(3, row)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.wantCode), "unexpected code for %v", err)

			var de *errors.DataError
			require.ErrorAs(t, err, &de)
			details, ok := de.Details.(errors.FieldDetails)
			require.True(t, ok, "error should carry field details")
			assert.Equal(t, 3, details.Row)
			assert.Equal(t, tt.field, details.Field)
			assert.Equal(t, row[tt.field], details.Value)
		})
	}
}

func TestParseRecord_ArityMessageNamesExpectedCount(t *testing.T) {
	row := validRow()
	row[ColumnSales] = "1,2,3,4,5,6"

	_, err := ParseRecord(1, row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 7 values")
	assert.Contains(t, err.Error(), "got 6")
}

func TestParseRecord_EmptyNameAccepted(t *testing.T) {
	// No emptiness check on name or category; an empty name is a known gap
	// in the identity-key behavior, not a parse failure.
	row := validRow()
	row[ColumnItem] = ""
	row[ColumnCategory] = ""

	item, err := ParseRecord(1, row)
	require.NoError(t, err)
	assert.Empty(t, item.Name)
	assert.Empty(t, item.Category)
}
