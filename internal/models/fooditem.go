// ABOUTME: FoodItem model for the food catalog.
// ABOUTME: Stores carb and calorie content per 100g, keyed by name.
package models

import (
	"fmt"
	"strings"
	"time"
)

// FoodItem is a named nutritional reference. Name is the primary key;
// inserting an item with an existing name replaces the stored values.
type FoodItem struct {
	Name            string    `json:"name" yaml:"name"`
	CarbsPer100g    float64   `json:"carbsPer100g" yaml:"carbs_per_100g"`
	CaloriesPer100g float64   `json:"caloriesPer100g" yaml:"calories_per_100g"`
	CreatedAt       time.Time `json:"createdAt" yaml:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" yaml:"updated_at"`
}

// NewFoodItem creates a new FoodItem with current timestamps.
func NewFoodItem(name string, carbsPer100g, caloriesPer100g float64) *FoodItem {
	now := time.Now()
	return &FoodItem{
		Name:            name,
		CarbsPer100g:    carbsPer100g,
		CaloriesPer100g: caloriesPer100g,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Validate checks catalog invariants before the item reaches storage.
func (f *FoodItem) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("food name must not be empty")
	}
	if f.CarbsPer100g < 0 {
		return fmt.Errorf("carbs per 100g must not be negative: %g", f.CarbsPer100g)
	}
	if f.CaloriesPer100g < 0 {
		return fmt.Errorf("calories per 100g must not be negative: %g", f.CaloriesPer100g)
	}
	return nil
}
