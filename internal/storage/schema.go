// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for food_items, daily_logs, and health_metrics.
package storage

// initSchema creates or updates the database schema. Deleting a food item
// cascades to its daily logs; health metrics are unique per date.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS food_items (
		name TEXT PRIMARY KEY,
		carbs_per_100g REAL NOT NULL,
		calories_per_100g REAL NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS daily_logs (
		id TEXT PRIMARY KEY,
		food_name TEXT NOT NULL,
		quantity_grams REAL NOT NULL,
		total_carbs REAL NOT NULL,
		total_calories REAL NOT NULL,
		date TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		FOREIGN KEY (food_name) REFERENCES food_items(name) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS health_metrics (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		weight_kg REAL,
		waist_cm REAL,
		glucose_mg_dl REAL,
		ketones_mmol_l REAL,
		bp_systolic INTEGER,
		bp_diastolic INTEGER,
		pulse_bpm INTEGER,
		notes TEXT,
		timestamp DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_daily_logs_food ON daily_logs(food_name);
	CREATE INDEX IF NOT EXISTS idx_daily_logs_date ON daily_logs(date);
	CREATE INDEX IF NOT EXISTS idx_daily_logs_date_ts ON daily_logs(date, timestamp DESC);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_health_metrics_date ON health_metrics(date);
	`

	_, err := d.db.Exec(schema)
	return err
}
