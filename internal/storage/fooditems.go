// ABOUTME: Food catalog CRUD operations for SQLite storage.
// ABOUTME: Name-keyed upserts that never trip the daily log delete cascade.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/keto/internal/models"
)

// SaveFoodItem inserts a food item, replacing the stored values if the name
// already exists. The conflict path is an UPDATE rather than REPLACE so the
// delete cascade on daily_logs does not fire; existing logs keep their
// snapshots and created_at is preserved.
func (d *DB) SaveFoodItem(f *models.FoodItem) error {
	if err := f.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO food_items (name, carbs_per_100g, calories_per_100g, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			carbs_per_100g = excluded.carbs_per_100g,
			calories_per_100g = excluded.calories_per_100g,
			updated_at = excluded.updated_at
	`
	_, err := d.db.Exec(query,
		f.Name,
		f.CarbsPer100g,
		f.CaloriesPer100g,
		f.CreatedAt.Format(time.RFC3339),
		f.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save food item: %w", err)
	}

	d.notify(TopicFoods)
	return nil
}

// SaveFoodItems inserts a batch of food items in one transaction.
func (d *DB) SaveFoodItems(items []*models.FoodItem) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("save food items: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO food_items (name, carbs_per_100g, calories_per_100g, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			carbs_per_100g = excluded.carbs_per_100g,
			calories_per_100g = excluded.calories_per_100g,
			updated_at = excluded.updated_at
	`
	for _, f := range items {
		if err := f.Validate(); err != nil {
			return err
		}
		if _, err := tx.Exec(query,
			f.Name, f.CarbsPer100g, f.CaloriesPer100g,
			f.CreatedAt.Format(time.RFC3339), f.UpdatedAt.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("save food item %q: %w", f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save food items: %w", err)
	}

	d.notify(TopicFoods)
	return nil
}

// GetFoodItem retrieves a catalog item by name.
func (d *DB) GetFoodItem(name string) (*models.FoodItem, error) {
	query := `
		SELECT name, carbs_per_100g, calories_per_100g, created_at, updated_at
		FROM food_items
		WHERE name = ?
	`
	f, err := scanFoodItem(d.db.QueryRow(query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("food not found: %s", name)
		}
		return nil, err
	}
	return f, nil
}

// ListFoodItems retrieves the whole catalog sorted by name.
func (d *DB) ListFoodItems() ([]*models.FoodItem, error) {
	query := `
		SELECT name, carbs_per_100g, calories_per_100g, created_at, updated_at
		FROM food_items
		ORDER BY name ASC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}
	defer rows.Close()

	return scanFoodItems(rows)
}

// SearchFoodItems retrieves catalog items whose name contains the query.
func (d *DB) SearchFoodItems(query string) ([]*models.FoodItem, error) {
	stmt := `
		SELECT name, carbs_per_100g, calories_per_100g, created_at, updated_at
		FROM food_items
		WHERE name LIKE '%' || ? || '%'
		ORDER BY name ASC
	`
	rows, err := d.db.Query(stmt, query)
	if err != nil {
		return nil, fmt.Errorf("search food items: %w", err)
	}
	defer rows.Close()

	return scanFoodItems(rows)
}

// UpdateFoodItem rewrites an existing item's nutritional values and
// refreshes its updated_at timestamp.
func (d *DB) UpdateFoodItem(f *models.FoodItem) error {
	if err := f.Validate(); err != nil {
		return err
	}

	f.UpdatedAt = time.Now()
	result, err := d.db.Exec(`
		UPDATE food_items
		SET carbs_per_100g = ?, calories_per_100g = ?, updated_at = ?
		WHERE name = ?`,
		f.CarbsPer100g, f.CaloriesPer100g, f.UpdatedAt.Format(time.RFC3339), f.Name,
	)
	if err != nil {
		return fmt.Errorf("update food item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update food item: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("food not found: %s", f.Name)
	}

	d.notify(TopicFoods)
	return nil
}

// DeleteFoodItem removes a catalog item by name. The schema cascade deletes
// all daily logs referencing the item.
func (d *DB) DeleteFoodItem(name string) error {
	result, err := d.db.Exec("DELETE FROM food_items WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete food item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete food item: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("food not found: %s", name)
	}

	d.notify(TopicFoods)
	d.notify(TopicLogs)
	return nil
}

// DeleteAllFoodItems empties the catalog, cascading all daily logs.
func (d *DB) DeleteAllFoodItems() error {
	if _, err := d.db.Exec("DELETE FROM food_items"); err != nil {
		return fmt.Errorf("delete food items: %w", err)
	}
	d.notify(TopicFoods)
	d.notify(TopicLogs)
	return nil
}

// CountFoodItems returns the number of items in the catalog.
func (d *DB) CountFoodItems() (int, error) {
	var count int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM food_items").Scan(&count); err != nil {
		return 0, fmt.Errorf("count food items: %w", err)
	}
	return count, nil
}

// scanFoodItem scans a single row into a FoodItem struct.
func scanFoodItem(row *sql.Row) (*models.FoodItem, error) {
	var f models.FoodItem
	var createdAt, updatedAt string

	err := row.Scan(&f.Name, &f.CarbsPer100g, &f.CaloriesPer100g, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan food item: %w", err)
	}

	f.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	f.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &f, nil
}

// scanFoodItems scans multiple rows into a slice of FoodItems.
func scanFoodItems(rows *sql.Rows) ([]*models.FoodItem, error) {
	var items []*models.FoodItem

	for rows.Next() {
		var f models.FoodItem
		var createdAt, updatedAt string

		if err := rows.Scan(&f.Name, &f.CarbsPer100g, &f.CaloriesPer100g, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan food item: %w", err)
		}

		f.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		f.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		items = append(items, &f)
	}

	return items, rows.Err()
}
