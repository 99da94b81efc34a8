package dataprocessing

import (
	"menucli/pkg/contracts/domain"
)

// Popularity score weights. The score favors raw sales volume over rating,
// with ratings rescaled from their 0-5 range onto 0-50.
const (
	SalesWeight  = 0.6
	RatingWeight = 0.4
	RatingScale  = 10
)

// Classification thresholds. Fixed policy values, not user-configurable.
const (
	// An item is underrated when rated at least UnderratedMinRating while
	// selling fewer than UnderratedMaxSales units per week.
	UnderratedMinRating = 4.5
	UnderratedMaxSales  = 50

	// An item is unprofitable when rated below UnprofitableMaxRating while
	// selling fewer than UnprofitableMaxSales units per week.
	UnprofitableMaxRating = 3.5
	UnprofitableMaxSales  = 30
)

// ItemMetrics pairs a menu item with its derived statistics. The values are
// pure functions of the item and are recomputed on demand, never persisted.
type ItemMetrics struct {
	Item            domain.MenuItem
	AverageRating   float64
	TotalSales      int
	PopularityScore float64
}

// Analysis holds the three derived views over a complete dataset. Empty
// classification sets are valid results.
type Analysis struct {
	Ranking      []ItemMetrics
	Underrated   []ItemMetrics
	Unprofitable []ItemMetrics
}

// PopularityScore computes the weighted popularity of an item from its total
// weekly sales and average rating.
func PopularityScore(item domain.MenuItem) float64 {
	return SalesWeight*float64(item.TotalSales()) + RatingWeight*RatingScale*item.AverageRating()
}

// ComputeMetrics derives the per-item statistics for a single menu item.
func ComputeMetrics(item domain.MenuItem) ItemMetrics {
	return ItemMetrics{
		Item:            item,
		AverageRating:   item.AverageRating(),
		TotalSales:      item.TotalSales(),
		PopularityScore: PopularityScore(item),
	}
}

// Analyze derives metrics for every item and classifies the underrated and
// unprofitable buckets. The input mapping is not mutated. No ordering is
// imposed on the views; ordering is a reporting concern.
func Analyze(items map[string]domain.MenuItem) Analysis {
	analysis := Analysis{Ranking: make([]ItemMetrics, 0, len(items))}
	for _, item := range items {
		m := ComputeMetrics(item)
		analysis.Ranking = append(analysis.Ranking, m)

		if m.AverageRating >= UnderratedMinRating && m.TotalSales < UnderratedMaxSales {
			analysis.Underrated = append(analysis.Underrated, m)
		}
		if m.AverageRating < UnprofitableMaxRating && m.TotalSales < UnprofitableMaxSales {
			analysis.Unprofitable = append(analysis.Unprofitable, m)
		}
	}
	return analysis
}
