package dataprocessing

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"menucli/internal/errors"
	"menucli/internal/validation"
	"menucli/pkg/contracts/domain"
)

// Source column names required in every menu dataset.
const (
	ColumnItem     = "item"
	ColumnPrice    = "price"
	ColumnCategory = "category"
	ColumnRatings  = "ratings"
	ColumnSales    = "sales_per_day"
)

// RequiredColumns is the column set every dataset header must contain.
// Extra columns are ignored.
var RequiredColumns = []string{ColumnItem, ColumnPrice, ColumnCategory, ColumnRatings, ColumnSales}

// Row is one raw data row keyed by header column name.
type Row map[string]string

// ParseRecord converts one raw row into a validated MenuItem or fails with a
// format or precision error naming the row and field. No partial record is
// ever produced.
//
// The name and category fields are taken as given text with no emptiness
// check. An empty name is accepted structurally even though it degrades the
// identity-key behavior of the loader's by-name mapping.
func ParseRecord(rowNum int, row Row) (domain.MenuItem, error) {
	price, err := parsePrice(rowNum, row[ColumnPrice])
	if err != nil {
		return domain.MenuItem{}, err
	}

	ratings, err := parseRatings(rowNum, row[ColumnRatings])
	if err != nil {
		return domain.MenuItem{}, err
	}

	sales, err := parseSales(rowNum, row[ColumnSales])
	if err != nil {
		return domain.MenuItem{}, err
	}

	return domain.MenuItem{
		Name:        row[ColumnItem],
		Price:       price,
		Category:    row[ColumnCategory],
		Ratings:     ratings,
		SalesPerDay: sales,
	}, nil
}

// parsePrice parses the price field and gates it through the precision
// validator before it is accepted.
func parsePrice(rowNum int, raw string) (float64, error) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.NewFormatError(rowNum, ColumnPrice, raw,
			fmt.Sprintf("price %q is not a valid decimal number", raw))
	}
	if err := validation.ValidatePrecision(price, validation.DefaultMaxDecimals); err != nil {
		var de *errors.DataError
		if stderrors.As(err, &de) {
			return 0, errors.WithLocation(de, rowNum, ColumnPrice, raw)
		}
		return 0, err
	}
	return price, nil
}

// parseRatings splits the ratings field on commas and parses every token.
// An empty field splits to a single empty token, which fails the numeric
// parse; the non-empty guard afterwards is therefore unreachable from text
// input but keeps the contract explicit.
func parseRatings(rowNum int, raw string) ([]float64, error) {
	tokens := strings.Split(raw, ",")
	ratings := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		r, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.NewFormatError(rowNum, ColumnRatings, raw,
				fmt.Sprintf("rating %q is not a valid decimal number", tok))
		}
		ratings = append(ratings, r)
	}
	if len(ratings) == 0 {
		return nil, errors.NewFormatError(rowNum, ColumnRatings, raw, "ratings cannot be empty")
	}
	return ratings, nil
}

// parseSales splits the sales field on commas and maps exactly seven integer
// values positionally onto the fixed weekday order. Six or eight values is an
// error, never a truncation or pad.
func parseSales(rowNum int, raw string) (map[string]int, error) {
	tokens := strings.Split(raw, ",")
	if len(tokens) != len(domain.DaysOfWeek) {
		return nil, errors.NewFormatError(rowNum, ColumnSales, raw,
			fmt.Sprintf("sales_per_day must have exactly %d values, got %d", len(domain.DaysOfWeek), len(tokens)))
	}
	sales := make(map[string]int, len(domain.DaysOfWeek))
	for i, day := range domain.DaysOfWeek {
		n, err := strconv.Atoi(tokens[i])
		if err != nil {
			return nil, errors.NewFormatError(rowNum, ColumnSales, raw,
				fmt.Sprintf("sales value %q is not a valid integer", tokens[i]))
		}
		sales[day] = n
	}
	return sales, nil
}
