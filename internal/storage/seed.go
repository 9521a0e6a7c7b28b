// ABOUTME: Default food catalog seeding for first-run databases.
// ABOUTME: Inserts the 13 reference foods only when the catalog is empty.
package storage

import (
	"fmt"

	"github.com/harperreed/keto/internal/models"
)

// DefaultFoodItems returns the built-in reference catalog with carb and
// calorie values per 100g.
func DefaultFoodItems() []*models.FoodItem {
	return []*models.FoodItem{
		models.NewFoodItem("Walnüsse", 7.0, 654.0),
		models.NewFoodItem("Eier (ganz)", 0.6, 155.0),
		models.NewFoodItem("Butter", 0.1, 717.0),
		models.NewFoodItem("Rindfleisch (fett)", 0.0, 250.0),
		models.NewFoodItem("Hähnchenbrust", 0.0, 165.0),
		models.NewFoodItem("Avocado", 1.8, 160.0),
		models.NewFoodItem("Brokkoli", 4.4, 34.0),
		models.NewFoodItem("Käse (Cheddar)", 1.3, 403.0),
		models.NewFoodItem("Olivenöl", 0.0, 884.0),
		models.NewFoodItem("Sahne (30%)", 3.0, 290.0),
		models.NewFoodItem("Lachs", 0.0, 208.0),
		models.NewFoodItem("Magerquark", 3.6, 67.0),
		models.NewFoodItem("10% Joghurt Natur", 4.7, 110.0),
	}
}

// SeedDefaultFoods populates an empty catalog with the default food items
// and returns how many were inserted. The guard is purely count == 0, so a
// catalog with any user data at all is left untouched; re-invocation is a
// no-op.
func (d *DB) SeedDefaultFoods() (int, error) {
	count, err := d.CountFoodItems()
	if err != nil {
		return 0, fmt.Errorf("seed default foods: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	items := DefaultFoodItems()
	if err := d.SaveFoodItems(items); err != nil {
		return 0, fmt.Errorf("seed default foods: %w", err)
	}
	return len(items), nil
}
