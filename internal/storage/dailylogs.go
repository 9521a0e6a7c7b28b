// ABOUTME: Daily log CRUD and nutrition aggregate queries for SQLite storage.
// ABOUTME: Aggregation itself is delegated to the pure aggregate package.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/keto/internal/aggregate"
	"github.com/harperreed/keto/internal/models"
)

const dailyLogColumns = "id, food_name, quantity_grams, total_carbs, total_calories, date, timestamp"

// CreateDailyLog stores a new consumption event. Logs are never updated in
// place; edits are a delete followed by a fresh insert.
func (d *DB) CreateDailyLog(l *models.DailyLog) error {
	if err := l.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO daily_logs (id, food_name, quantity_grams, total_carbs, total_calories, date, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		l.ID.String(),
		l.FoodName,
		l.QuantityGrams,
		l.TotalCarbs,
		l.TotalCalories,
		l.Date,
		l.Timestamp.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create daily log: %w", err)
	}

	d.notify(TopicLogs)
	return nil
}

// GetDailyLog retrieves a log entry by ID or ID prefix.
func (d *DB) GetDailyLog(idOrPrefix string) (*models.DailyLog, error) {
	id, err := d.resolveDailyLogID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	row := d.db.QueryRow("SELECT "+dailyLogColumns+" FROM daily_logs WHERE id = ?", id)
	return scanDailyLog(row)
}

// ListDailyLogs retrieves log entries, most recent date first and most
// recent entry first within a date. A non-positive limit returns all.
func (d *DB) ListDailyLogs(limit int) ([]*models.DailyLog, error) {
	query := "SELECT " + dailyLogColumns + " FROM daily_logs ORDER BY date DESC, timestamp DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	defer rows.Close()

	return scanDailyLogs(rows)
}

// ListDailyLogsByDate retrieves the entries logged on one date, most
// recent first.
func (d *DB) ListDailyLogsByDate(date string) ([]*models.DailyLog, error) {
	rows, err := d.db.Query(
		"SELECT "+dailyLogColumns+" FROM daily_logs WHERE date = ? ORDER BY timestamp DESC", date)
	if err != nil {
		return nil, fmt.Errorf("list daily logs by date: %w", err)
	}
	defer rows.Close()

	return scanDailyLogs(rows)
}

// ListDailyLogsByRange retrieves entries with startDate <= date <= endDate,
// most recent first.
func (d *DB) ListDailyLogsByRange(startDate, endDate string) ([]*models.DailyLog, error) {
	rows, err := d.db.Query(
		"SELECT "+dailyLogColumns+" FROM daily_logs WHERE date BETWEEN ? AND ? ORDER BY date DESC, timestamp DESC",
		startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list daily logs by range: %w", err)
	}
	defer rows.Close()

	return scanDailyLogs(rows)
}

// DeleteDailyLog removes a log entry by ID or prefix.
func (d *DB) DeleteDailyLog(idOrPrefix string) error {
	id, err := d.resolveDailyLogID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete daily log: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM daily_logs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete daily log: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete daily log: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}

	d.notify(TopicLogs)
	return nil
}

// DeleteDailyLogsByDate removes every entry logged on the given date.
func (d *DB) DeleteDailyLogsByDate(date string) error {
	if _, err := d.db.Exec("DELETE FROM daily_logs WHERE date = ?", date); err != nil {
		return fmt.Errorf("delete daily logs by date: %w", err)
	}
	d.notify(TopicLogs)
	return nil
}

// DeleteAllDailyLogs empties the daily log.
func (d *DB) DeleteAllDailyLogs() error {
	if _, err := d.db.Exec("DELETE FROM daily_logs"); err != nil {
		return fmt.Errorf("delete daily logs: %w", err)
	}
	d.notify(TopicLogs)
	return nil
}

// DailySummary sums the totals logged on one date. A day with no entries
// yields zero totals, never an error.
func (d *DB) DailySummary(date string) (aggregate.Totals, error) {
	entries, err := d.ListDailyLogsByDate(date)
	if err != nil {
		return aggregate.Totals{}, err
	}
	return aggregate.DailySummary(entries, date), nil
}

// SummariesByRange returns per-day totals for dates in the range that have
// entries, most recent first.
func (d *DB) SummariesByRange(startDate, endDate string) ([]aggregate.DateSummary, error) {
	entries, err := d.ListDailyLogsByRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return aggregate.SummariesByRange(entries, startDate, endDate), nil
}

// MostConsumedFoods ranks foods by logging frequency across the whole log.
func (d *DB) MostConsumedFoods(limit int) ([]aggregate.FoodUsage, error) {
	entries, err := d.ListDailyLogs(0)
	if err != nil {
		return nil, err
	}
	return aggregate.MostConsumedFoods(entries, limit), nil
}

// WeeklyCarbTrend returns per-day carb totals for the trailing week ending
// at referenceDate.
func (d *DB) WeeklyCarbTrend(referenceDate string) ([]aggregate.DailyCarbs, error) {
	endDate, err := models.ParseDate(referenceDate)
	if err != nil {
		return nil, err
	}
	startDate, err := models.AddDays(endDate, -6)
	if err != nil {
		return nil, err
	}
	entries, err := d.ListDailyLogsByRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return aggregate.WeeklyCarbTrend(entries, endDate)
}

// resolveDailyLogID finds the full ID from a prefix.
func (d *DB) resolveDailyLogID(idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	rows, err := d.db.Query(`SELECT id FROM daily_logs WHERE id LIKE ? || '%'`, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve daily log ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan daily log ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

// scanDailyLog scans a single row into a DailyLog struct.
func scanDailyLog(row *sql.Row) (*models.DailyLog, error) {
	var l models.DailyLog
	var idStr, timestamp string

	err := row.Scan(&idStr, &l.FoodName, &l.QuantityGrams, &l.TotalCarbs, &l.TotalCalories, &l.Date, &timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("not found")
		}
		return nil, fmt.Errorf("scan daily log: %w", err)
	}

	l.ID, _ = uuid.Parse(idStr)
	l.Timestamp, _ = time.Parse(time.RFC3339, timestamp)
	return &l, nil
}

// scanDailyLogs scans multiple rows into a slice of DailyLogs.
func scanDailyLogs(rows *sql.Rows) ([]*models.DailyLog, error) {
	var logs []*models.DailyLog

	for rows.Next() {
		var l models.DailyLog
		var idStr, timestamp string

		err := rows.Scan(&idStr, &l.FoodName, &l.QuantityGrams, &l.TotalCarbs, &l.TotalCalories, &l.Date, &timestamp)
		if err != nil {
			return nil, fmt.Errorf("scan daily log: %w", err)
		}

		l.ID, _ = uuid.Parse(idStr)
		l.Timestamp, _ = time.Parse(time.RFC3339, timestamp)
		logs = append(logs, &l)
	}

	return logs, rows.Err()
}
