package dataprocessing

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menucli/internal/errors"
)

const validCSV = `item,price,category,ratings,sales_per_day
Garlic Bread,6.99,Starter,"4.8,4.9,4.7","10,5,1,15,3,5,10"
Cheesecake,6.99,Dessert,"2.5,2.7,2.8","1,2,3,4,5,6,7"
`

func TestLoader_Load(t *testing.T) {
	loader := NewLoader(slog.Default())

	items, err := loader.Load(strings.NewReader(validCSV))
	require.NoError(t, err)
	require.Len(t, items, 2)

	bread, ok := items["Garlic Bread"]
	require.True(t, ok)
	assert.Equal(t, 6.99, bread.Price)
	assert.Equal(t, "Starter", bread.Category)
	assert.Equal(t, []float64{4.8, 4.9, 4.7}, bread.Ratings)
	assert.Equal(t, 49, bread.TotalSales())
}

func TestLoader_Load_BOMTolerated(t *testing.T) {
	loader := NewLoader(nil)

	items, err := loader.Load(strings.NewReader("\ufeff" + validCSV))
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Contains(t, items, "Garlic Bread")
}

func TestLoader_Load_SchemaErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantMissing []string
	}{
		{
			name: "missing category column",
			input: `item,price,ratings,sales_per_day
Soup,5.00,"4.0","1,1,1,1,1,1,1"
`,
			wantMissing: []string{"category"},
		},
		{
			name:        "missing several columns",
			input:       "item,price\n",
			wantMissing: []string{"category", "ratings", "sales_per_day"},
		},
		{
			name:        "empty source treats every column as missing",
			input:       "",
			wantMissing: RequiredColumns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(nil)

			items, err := loader.Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, items)
			assert.True(t, errors.IsStructural(err))

			var de *errors.DataError
			require.ErrorAs(t, err, &de)
			details, ok := de.Details.(errors.StructuralDetails)
			require.True(t, ok)
			assert.Equal(t, tt.wantMissing, details.MissingColumns)
			assert.Equal(t, RequiredColumns, details.RequiredColumns)
		})
	}
}

func TestLoader_Load_FailFastOnFirstBadRow(t *testing.T) {
	input := `item,price,category,ratings,sales_per_day
Good Soup,5.00,Starter,"4.0","1,1,1,1,1,1,1"
Bad Soup,abc,Starter,"4.0","1,1,1,1,1,1,1"
Later Soup,5.00,Starter,"4.0","1,1,1,1,1,1,1"
`
	loader := NewLoader(nil)

	items, err := loader.Load(strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, items, "no partial dataset on failure")
	assert.True(t, errors.IsFormat(err))
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoader_Load_DuplicateNamesLastWriteWins(t *testing.T) {
	input := `item,price,category,ratings,sales_per_day
Soup,5.00,Starter,"4.0","1,1,1,1,1,1,1"
Soup,9.50,Main,"3.0","2,2,2,2,2,2,2"
`
	loader := NewLoader(nil)

	items, err := loader.Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, items, 1)

	soup := items["Soup"]
	assert.Equal(t, 9.5, soup.Price)
	assert.Equal(t, "Main", soup.Category)
	assert.Equal(t, 14, soup.TotalSales())
}

func TestLoader_Load_ExtraColumnsIgnored(t *testing.T) {
	input := `notes,item,price,category,ratings,sales_per_day,chef
tasty,Soup,5.00,Starter,"4.0","1,1,1,1,1,1,1",Ana
`
	loader := NewLoader(nil)

	items, err := loader.Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Starter", items["Soup"].Category)
}

func TestLoader_LoadFile_Missing(t *testing.T) {
	loader := NewLoader(nil)

	items, err := loader.LoadFile("does-not-exist.csv")
	require.Error(t, err)
	assert.Nil(t, items)
	assert.True(t, errors.IsAccess(err))
}
