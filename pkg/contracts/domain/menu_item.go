package domain

// DaysOfWeek is the fixed weekday order used to build sales maps positionally
// from the sales_per_day source field.
var DaysOfWeek = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// MenuItem represents one validated menu catalog entry. A MenuItem is
// immutable once constructed: construction either fully succeeds in the
// record parser or the item does not exist. The item name is the identity
// key within a dataset.
type MenuItem struct {
	Name        string         `json:"item"`
	Price       float64        `json:"price" validate:"min=0"`
	Category    string         `json:"category"`
	Ratings     []float64      `json:"ratings" validate:"required,min=1"`
	SalesPerDay map[string]int `json:"sales_per_day" validate:"required,len=7"`
}

// AverageRating returns the arithmetic mean of the item's ratings.
// Ratings are guaranteed non-empty by construction; a zero-length slice
// returns 0 rather than dividing by zero.
func (m MenuItem) AverageRating() float64 {
	if len(m.Ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range m.Ratings {
		sum += r
	}
	return sum / float64(len(m.Ratings))
}

// TotalSales returns the total units sold across the week.
func (m MenuItem) TotalSales() int {
	var total int
	for _, day := range DaysOfWeek {
		total += m.SalesPerDay[day]
	}
	return total
}
