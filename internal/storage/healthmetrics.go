// ABOUTME: Health metric CRUD and trend queries for SQLite storage.
// ABOUTME: Upsert-by-id keeps at most one entry per date.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/keto/internal/models"
	"github.com/harperreed/keto/internal/trend"
)

const healthMetricColumns = "id, date, weight_kg, waist_cm, glucose_mg_dl, ketones_mmol_l, bp_systolic, bp_diastolic, pulse_bpm, notes, timestamp"

// SaveHealthMetric upserts a day's entry. Inserting an entry whose id (or
// date, since ids are derived from dates) collides with a stored one
// replaces it wholesale.
func (d *DB) SaveHealthMetric(m *models.HealthMetric) error {
	if err := m.Validate(); err != nil {
		return err
	}

	query := `
		INSERT OR REPLACE INTO health_metrics
			(id, date, weight_kg, waist_cm, glucose_mg_dl, ketones_mmol_l, bp_systolic, bp_diastolic, pulse_bpm, notes, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		m.ID,
		m.Date,
		m.WeightKg,
		m.WaistCm,
		m.GlucoseMgDl,
		m.KetonesMmolL,
		m.BPSystolic,
		m.BPDiastolic,
		m.PulseBpm,
		m.Notes,
		m.Timestamp.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save health metric: %w", err)
	}

	d.notify(TopicMetrics)
	return nil
}

// UpdateHealthMetric re-saves an entry, refreshing its timestamp to now.
// Catalog items refresh updated_at instead; daily logs have no update path.
func (d *DB) UpdateHealthMetric(m *models.HealthMetric) error {
	m.Timestamp = time.Now()
	return d.SaveHealthMetric(m)
}

// GetHealthMetric retrieves an entry by id.
func (d *DB) GetHealthMetric(id string) (*models.HealthMetric, error) {
	row := d.db.QueryRow("SELECT "+healthMetricColumns+" FROM health_metrics WHERE id = ?", id)
	m, err := scanHealthMetric(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("health entry not found: %s", id)
		}
		return nil, err
	}
	return m, nil
}

// GetHealthMetricByDate retrieves the entry recorded for a date, if any.
func (d *DB) GetHealthMetricByDate(date string) (*models.HealthMetric, error) {
	row := d.db.QueryRow("SELECT "+healthMetricColumns+" FROM health_metrics WHERE date = ?", date)
	m, err := scanHealthMetric(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("health entry not found for date: %s", date)
		}
		return nil, err
	}
	return m, nil
}

// ListHealthMetrics retrieves all entries, most recent date first.
func (d *DB) ListHealthMetrics() ([]*models.HealthMetric, error) {
	rows, err := d.db.Query("SELECT " + healthMetricColumns + " FROM health_metrics ORDER BY date DESC")
	if err != nil {
		return nil, fmt.Errorf("list health metrics: %w", err)
	}
	defer rows.Close()

	return scanHealthMetrics(rows)
}

// ListHealthMetricsByRange retrieves entries with startDate <= date <=
// endDate, most recent first.
func (d *DB) ListHealthMetricsByRange(startDate, endDate string) ([]*models.HealthMetric, error) {
	rows, err := d.db.Query(
		"SELECT "+healthMetricColumns+" FROM health_metrics WHERE date BETWEEN ? AND ? ORDER BY date DESC",
		startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list health metrics by range: %w", err)
	}
	defer rows.Close()

	return scanHealthMetrics(rows)
}

// DeleteHealthMetric removes an entry by id.
func (d *DB) DeleteHealthMetric(id string) error {
	result, err := d.db.Exec("DELETE FROM health_metrics WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete health metric: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete health metric: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("health entry not found: %s", id)
	}

	d.notify(TopicMetrics)
	return nil
}

// DeleteAllHealthMetrics empties the health metric log.
func (d *DB) DeleteAllHealthMetrics() error {
	if _, err := d.db.Exec("DELETE FROM health_metrics"); err != nil {
		return fmt.Errorf("delete health metrics: %w", err)
	}
	d.notify(TopicMetrics)
	return nil
}

// HealthSeries extracts the named metric's time series over the trailing
// days-day window (all entries when days <= 0), oldest first. Valid metrics:
// weight, waist, glucose, ketones, gki, pulse.
func (d *DB) HealthSeries(metric string, days int) ([]trend.Point, error) {
	entries, err := d.healthWindow(days)
	if err != nil {
		return nil, err
	}

	switch metric {
	case "weight":
		return trend.WeightSeries(entries), nil
	case "waist":
		return trend.WaistSeries(entries), nil
	case "glucose":
		return trend.GlucoseSeries(entries), nil
	case "ketones":
		return trend.KetoneSeries(entries), nil
	case "gki":
		return trend.GKISeries(entries), nil
	case "pulse":
		return trend.PulseSeries(entries), nil
	default:
		return nil, fmt.Errorf("unknown health metric: %s", metric)
	}
}

// BloodPressureTrend extracts blood pressure readings over the trailing
// days-day window (all entries when days <= 0), oldest first.
func (d *DB) BloodPressureTrend(days int) ([]trend.BPPoint, error) {
	entries, err := d.healthWindow(days)
	if err != nil {
		return nil, err
	}
	return trend.BloodPressureSeries(entries), nil
}

// LatestHealthSummary assembles the dashboard summary of most recent values.
func (d *DB) LatestHealthSummary() (trend.Summary, error) {
	entries, err := d.ListHealthMetrics()
	if err != nil {
		return trend.Summary{}, err
	}
	return trend.LatestSummary(entries), nil
}

func (d *DB) healthWindow(days int) ([]*models.HealthMetric, error) {
	entries, err := d.ListHealthMetrics()
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		return entries, nil
	}
	return trend.LastNDays(entries, models.Today(), days)
}

// scanHealthMetric scans a single row into a HealthMetric struct.
func scanHealthMetric(row *sql.Row) (*models.HealthMetric, error) {
	var m models.HealthMetric
	var timestamp string
	var weight, waist, glucose, ketones sql.NullFloat64
	var sys, dia, pulse sql.NullInt64
	var notes sql.NullString

	err := row.Scan(&m.ID, &m.Date, &weight, &waist, &glucose, &ketones, &sys, &dia, &pulse, &notes, &timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan health metric: %w", err)
	}

	applyHealthNullables(&m, weight, waist, glucose, ketones, sys, dia, pulse, notes)
	m.Timestamp, _ = time.Parse(time.RFC3339, timestamp)
	return &m, nil
}

// scanHealthMetrics scans multiple rows into a slice of HealthMetrics.
func scanHealthMetrics(rows *sql.Rows) ([]*models.HealthMetric, error) {
	var metrics []*models.HealthMetric

	for rows.Next() {
		var m models.HealthMetric
		var timestamp string
		var weight, waist, glucose, ketones sql.NullFloat64
		var sys, dia, pulse sql.NullInt64
		var notes sql.NullString

		err := rows.Scan(&m.ID, &m.Date, &weight, &waist, &glucose, &ketones, &sys, &dia, &pulse, &notes, &timestamp)
		if err != nil {
			return nil, fmt.Errorf("scan health metric: %w", err)
		}

		applyHealthNullables(&m, weight, waist, glucose, ketones, sys, dia, pulse, notes)
		m.Timestamp, _ = time.Parse(time.RFC3339, timestamp)
		metrics = append(metrics, &m)
	}

	return metrics, rows.Err()
}

func applyHealthNullables(m *models.HealthMetric,
	weight, waist, glucose, ketones sql.NullFloat64,
	sys, dia, pulse sql.NullInt64, notes sql.NullString,
) {
	if weight.Valid {
		m.WeightKg = &weight.Float64
	}
	if waist.Valid {
		m.WaistCm = &waist.Float64
	}
	if glucose.Valid {
		m.GlucoseMgDl = &glucose.Float64
	}
	if ketones.Valid {
		m.KetonesMmolL = &ketones.Float64
	}
	if sys.Valid {
		v := int(sys.Int64)
		m.BPSystolic = &v
	}
	if dia.Valid {
		v := int(dia.Int64)
		m.BPDiastolic = &v
	}
	if pulse.Valid {
		v := int(pulse.Int64)
		m.PulseBpm = &v
	}
	if notes.Valid {
		m.Notes = &notes.String
	}
}
