// ABOUTME: Tests for nutrition aggregation functions.
// ABOUTME: Validates daily totals, range summaries, food ranking, carb trends.
package aggregate

import (
	"math"
	"testing"

	"github.com/harperreed/keto/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func logEntry(food string, carbs, calories float64, date string) *models.DailyLog {
	l := models.NewDailyLog(models.NewFoodItem(food, carbs, calories), 100, date)
	return l
}

func TestDailySummary(t *testing.T) {
	entries := []*models.DailyLog{
		logEntry("Eier (ganz)", 0.6, 155, "2025-08-15"),
		logEntry("Avocado", 1.8, 160, "2025-08-15"),
		logEntry("Butter", 0.1, 717, "2025-08-16"), // other day, excluded
	}

	got := DailySummary(entries, "2025-08-15")

	if !almostEqual(got.TotalCarbs, 2.4) {
		t.Errorf("TotalCarbs = %f, want 2.4", got.TotalCarbs)
	}
	if !almostEqual(got.TotalCalories, 315) {
		t.Errorf("TotalCalories = %f, want 315", got.TotalCalories)
	}
}

func TestDailySummaryEmptyDayIsZero(t *testing.T) {
	got := DailySummary(nil, "2025-08-15")

	if got.TotalCarbs != 0 || got.TotalCalories != 0 {
		t.Errorf("expected zero totals, got %+v", got)
	}
}

func TestSummariesByRange(t *testing.T) {
	entries := []*models.DailyLog{
		logEntry("Eier (ganz)", 0.6, 155, "2025-08-10"),
		logEntry("Avocado", 1.8, 160, "2025-08-10"),
		logEntry("Lachs", 0, 208, "2025-08-12"),
		logEntry("Butter", 0.1, 717, "2025-08-20"), // outside range
	}

	got := SummariesByRange(entries, "2025-08-08", "2025-08-14")

	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	// Most recent first.
	if got[0].Date != "2025-08-12" || got[1].Date != "2025-08-10" {
		t.Errorf("unexpected order: %s, %s", got[0].Date, got[1].Date)
	}
	if !almostEqual(got[1].TotalCarbs, 2.4) {
		t.Errorf("2025-08-10 TotalCarbs = %f, want 2.4", got[1].TotalCarbs)
	}
	if !almostEqual(got[0].TotalCalories, 208) {
		t.Errorf("2025-08-12 TotalCalories = %f, want 208", got[0].TotalCalories)
	}
}

func TestSummariesByRangeSkipsEmptyDates(t *testing.T) {
	entries := []*models.DailyLog{
		logEntry("Eier (ganz)", 0.6, 155, "2025-08-10"),
	}

	got := SummariesByRange(entries, "2025-08-01", "2025-08-31")

	if len(got) != 1 {
		t.Errorf("expected only dates with entries, got %d rows", len(got))
	}
}

func TestMostConsumedFoods(t *testing.T) {
	entries := []*models.DailyLog{
		logEntry("A", 1, 10, "2025-08-10"),
		logEntry("A", 1, 10, "2025-08-11"),
		logEntry("B", 1, 10, "2025-08-11"),
		logEntry("A", 1, 10, "2025-08-12"),
		logEntry("C", 1, 10, "2025-08-12"),
		logEntry("C", 1, 10, "2025-08-13"),
	}

	got := MostConsumedFoods(entries, 2)

	if len(got) != 2 {
		t.Fatalf("expected 2 usages, got %d", len(got))
	}
	if got[0].FoodName != "A" || got[0].Count != 3 {
		t.Errorf("top food = %s (%d), want A (3)", got[0].FoodName, got[0].Count)
	}
	if got[1].FoodName != "C" || got[1].Count != 2 {
		t.Errorf("second food = %s (%d), want C (2)", got[1].FoodName, got[1].Count)
	}
}

func TestMostConsumedFoodsTieBreakByName(t *testing.T) {
	entries := []*models.DailyLog{
		logEntry("Zucchini", 2, 17, "2025-08-10"),
		logEntry("Avocado", 1.8, 160, "2025-08-10"),
	}

	got := MostConsumedFoods(entries, 10)

	if got[0].FoodName != "Avocado" {
		t.Errorf("expected name tie-break, got %s first", got[0].FoodName)
	}
}

func TestMostConsumedFoodsAverageQuantity(t *testing.T) {
	food := models.NewFoodItem("Lachs", 0, 208)
	entries := []*models.DailyLog{
		models.NewDailyLog(food, 100, "2025-08-10"),
		models.NewDailyLog(food, 200, "2025-08-11"),
	}

	got := MostConsumedFoods(entries, 10)

	if !almostEqual(got[0].AvgQuantityGrams, 150) {
		t.Errorf("AvgQuantityGrams = %f, want 150", got[0].AvgQuantityGrams)
	}
}

func TestMostConsumedFoodsDefaultLimit(t *testing.T) {
	var entries []*models.DailyLog
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for _, n := range names {
		entries = append(entries, logEntry(n, 1, 10, "2025-08-10"))
	}

	got := MostConsumedFoods(entries, 0)

	if len(got) != DefaultFoodUsageLimit {
		t.Errorf("expected default limit %d, got %d", DefaultFoodUsageLimit, len(got))
	}
}

func TestWeeklyCarbTrend(t *testing.T) {
	entries := []*models.DailyLog{
		logEntry("Brokkoli", 4.4, 34, "2025-08-09"),     // ref-6, included
		logEntry("Avocado", 1.8, 160, "2025-08-12"),     // included
		logEntry("Avocado", 1.8, 160, "2025-08-12"),     // same day, summed
		logEntry("Eier (ganz)", 0.6, 155, "2025-08-08"), // before window
		logEntry("Butter", 0.1, 717, "2025-08-16"),      // after window
	}

	got, err := WeeklyCarbTrend(entries, "2025-08-15")
	if err != nil {
		t.Fatalf("WeeklyCarbTrend failed: %v", err)
	}

	// Sparse: only days with entries, oldest first.
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].Date != "2025-08-09" || got[1].Date != "2025-08-12" {
		t.Errorf("unexpected order: %s, %s", got[0].Date, got[1].Date)
	}
	if !almostEqual(got[1].TotalCarbs, 3.6) {
		t.Errorf("2025-08-12 TotalCarbs = %f, want 3.6", got[1].TotalCarbs)
	}
}

func TestWeeklyCarbTrendInvalidDate(t *testing.T) {
	if _, err := WeeklyCarbTrend(nil, "not-a-date"); err == nil {
		t.Error("expected error for invalid reference date")
	}
}
