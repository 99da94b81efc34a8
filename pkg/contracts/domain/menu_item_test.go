package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuItem_AverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []float64
		want    float64
	}{
		{"three ratings", []float64{4.5, 4.7, 5.0}, 4.7333},
		{"single rating", []float64{3.0}, 3.0},
		{"no ratings returns zero", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := MenuItem{Ratings: tt.ratings}
			assert.InDelta(t, tt.want, item.AverageRating(), 0.0001)
		})
	}
}

func TestMenuItem_TotalSales(t *testing.T) {
	item := MenuItem{SalesPerDay: map[string]int{
		"Mon": 10, "Tue": 15, "Wed": 20, "Thu": 25, "Fri": 30, "Sat": 35, "Sun": 40,
	}}
	assert.Equal(t, 175, item.TotalSales())
}

func TestDaysOfWeek_Order(t *testing.T) {
	assert.Equal(t, [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, DaysOfWeek)
}
