// ABOUTME: Tests for FoodItem model.
// ABOUTME: Validates constructor defaults and catalog invariants.
package models

import (
	"testing"
)

func TestNewFoodItem(t *testing.T) {
	f := NewFoodItem("Walnüsse", 7.0, 654.0)

	if f.Name != "Walnüsse" {
		t.Errorf("Name = %s, want Walnüsse", f.Name)
	}
	if f.CarbsPer100g != 7.0 {
		t.Errorf("CarbsPer100g = %f, want 7.0", f.CarbsPer100g)
	}
	if f.CaloriesPer100g != 654.0 {
		t.Errorf("CaloriesPer100g = %f, want 654.0", f.CaloriesPer100g)
	}
	if f.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if f.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestFoodItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    *FoodItem
		wantErr bool
	}{
		{"valid", NewFoodItem("Butter", 0.1, 717), false},
		{"zero values ok", NewFoodItem("Olivenöl", 0, 884), false},
		{"empty name", NewFoodItem("", 1, 1), true},
		{"whitespace name", NewFoodItem("   ", 1, 1), true},
		{"negative carbs", NewFoodItem("Bad", -1, 100), true},
		{"negative calories", NewFoodItem("Bad", 1, -100), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
