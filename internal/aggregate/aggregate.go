// ABOUTME: Pure nutrition aggregation over daily log collections.
// ABOUTME: Daily totals, date-range summaries, food usage stats, carb trends.
package aggregate

import (
	"sort"

	"github.com/harperreed/keto/internal/models"
)

// Totals is the summed nutrition for one day. A day with no log entries has
// defined zero totals; the sum identity is 0, unlike the absent semantics of
// point health readings.
type Totals struct {
	TotalCarbs    float64 `json:"totalCarbs" yaml:"total_carbs"`
	TotalCalories float64 `json:"totalCalories" yaml:"total_calories"`
}

// DateSummary is one aggregate row for a date that has log entries.
type DateSummary struct {
	Date          string  `json:"date" yaml:"date"`
	TotalCarbs    float64 `json:"totalCarbs" yaml:"total_carbs"`
	TotalCalories float64 `json:"totalCalories" yaml:"total_calories"`
}

// FoodUsage is the consumption frequency for one catalog food.
type FoodUsage struct {
	FoodName         string  `json:"foodName" yaml:"food_name"`
	Count            int     `json:"count" yaml:"count"`
	AvgQuantityGrams float64 `json:"avgQuantityGrams" yaml:"avg_quantity_grams"`
}

// DailyCarbs is one point of a carb intake trend.
type DailyCarbs struct {
	Date       string  `json:"date" yaml:"date"`
	TotalCarbs float64 `json:"totalCarbs" yaml:"total_carbs"`
}

// DefaultFoodUsageLimit caps MostConsumedFoods when no limit is given.
const DefaultFoodUsageLimit = 10

// DailySummary sums carbs and calories of the entries logged on date.
func DailySummary(entries []*models.DailyLog, date string) Totals {
	var t Totals
	for _, e := range entries {
		if e.Date == date {
			t.TotalCarbs += e.TotalCarbs
			t.TotalCalories += e.TotalCalories
		}
	}
	return t
}

// SummariesByRange groups entries with start <= date <= end by date and
// returns one row per date that has at least one entry, most recent first.
// Dates without entries produce no row.
func SummariesByRange(entries []*models.DailyLog, startDate, endDate string) []DateSummary {
	byDate := make(map[string]*DateSummary)
	for _, e := range entries {
		if e.Date < startDate || e.Date > endDate {
			continue
		}
		s, ok := byDate[e.Date]
		if !ok {
			s = &DateSummary{Date: e.Date}
			byDate[e.Date] = s
		}
		s.TotalCarbs += e.TotalCarbs
		s.TotalCalories += e.TotalCalories
	}

	summaries := make([]DateSummary, 0, len(byDate))
	for _, s := range byDate {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date > summaries[j].Date
	})
	return summaries
}

// MostConsumedFoods ranks foods by how often they were logged, most frequent
// first with name as the tie-break, truncated to limit. A non-positive limit
// falls back to DefaultFoodUsageLimit.
func MostConsumedFoods(entries []*models.DailyLog, limit int) []FoodUsage {
	if limit <= 0 {
		limit = DefaultFoodUsageLimit
	}

	type acc struct {
		count      int
		totalGrams float64
	}
	byFood := make(map[string]*acc)
	for _, e := range entries {
		a, ok := byFood[e.FoodName]
		if !ok {
			a = &acc{}
			byFood[e.FoodName] = a
		}
		a.count++
		a.totalGrams += e.QuantityGrams
	}

	usages := make([]FoodUsage, 0, len(byFood))
	for name, a := range byFood {
		usages = append(usages, FoodUsage{
			FoodName:         name,
			Count:            a.count,
			AvgQuantityGrams: a.totalGrams / float64(a.count),
		})
	}
	sort.Slice(usages, func(i, j int) bool {
		if usages[i].Count != usages[j].Count {
			return usages[i].Count > usages[j].Count
		}
		return usages[i].FoodName < usages[j].FoodName
	})

	if len(usages) > limit {
		usages = usages[:limit]
	}
	return usages
}

// WeeklyCarbTrend returns per-day carb totals for the trailing seven days
// ending at referenceDate inclusive, oldest first. Days without entries are
// absent from the result, not zero-filled; charting callers handle the gaps.
func WeeklyCarbTrend(entries []*models.DailyLog, referenceDate string) ([]DailyCarbs, error) {
	endDate, err := models.ParseDate(referenceDate)
	if err != nil {
		return nil, err
	}
	startDate, err := models.AddDays(endDate, -6)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]float64)
	for _, e := range entries {
		if e.Date >= startDate && e.Date <= endDate {
			byDate[e.Date] += e.TotalCarbs
		}
	}

	trend := make([]DailyCarbs, 0, len(byDate))
	for date, carbs := range byDate {
		trend = append(trend, DailyCarbs{Date: date, TotalCarbs: carbs})
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date < trend[j].Date
	})
	return trend, nil
}
