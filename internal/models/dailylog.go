// ABOUTME: DailyLog model for individual food consumption events.
// ABOUTME: Totals are write-time snapshots of the referenced FoodItem's values.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DailyLog records one consumption event. TotalCarbs and TotalCalories are
// computed once from the referenced FoodItem at creation time and never
// recomputed, so logs keep reflecting what was true when they were written.
type DailyLog struct {
	ID            uuid.UUID `json:"id" yaml:"id"`
	FoodName      string    `json:"foodName" yaml:"food_name"`
	QuantityGrams float64   `json:"quantityGrams" yaml:"quantity_grams"`
	TotalCarbs    float64   `json:"totalCarbs" yaml:"total_carbs"`
	TotalCalories float64   `json:"totalCalories" yaml:"total_calories"`
	Date          string    `json:"date" yaml:"date"`
	Timestamp     time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewDailyLog creates a log entry for consuming quantityGrams of the given
// food on the given date, snapshotting the nutritional totals.
func NewDailyLog(food *FoodItem, quantityGrams float64, date string) *DailyLog {
	return &DailyLog{
		ID:            uuid.New(),
		FoodName:      food.Name,
		QuantityGrams: quantityGrams,
		TotalCarbs:    quantityGrams / 100 * food.CarbsPer100g,
		TotalCalories: quantityGrams / 100 * food.CaloriesPer100g,
		Date:          date,
		Timestamp:     time.Now(),
	}
}

// WithTimestamp sets a custom creation instant.
func (l *DailyLog) WithTimestamp(t time.Time) *DailyLog {
	l.Timestamp = t
	return l
}

// Validate checks log invariants before the entry reaches storage.
func (l *DailyLog) Validate() error {
	if l.FoodName == "" {
		return fmt.Errorf("food name must not be empty")
	}
	if l.QuantityGrams <= 0 {
		return fmt.Errorf("quantity must be positive: %g", l.QuantityGrams)
	}
	if _, err := ParseDate(l.Date); err != nil {
		return err
	}
	return nil
}
