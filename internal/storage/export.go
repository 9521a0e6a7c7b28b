// ABOUTME: Export and import functionality for tracker data.
// ABOUTME: Supports JSON and YAML export with a versioned envelope.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/keto/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for tracker data.
type ExportData struct {
	Version    string                 `json:"version"`
	ExportedAt time.Time              `json:"exported_at"`
	Tool       string                 `json:"tool"`
	Foods      []*models.FoodItem     `json:"foods"`
	Logs       []*models.DailyLog     `json:"logs"`
	Metrics    []*models.HealthMetric `json:"metrics"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	foods, err := d.ListFoodItems()
	if err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}

	logs, err := d.ListDailyLogs(0)
	if err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}

	metrics, err := d.ListHealthMetrics()
	if err != nil {
		return nil, fmt.Errorf("list health metrics: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "keto",
		Foods:      foods,
		Logs:       logs,
		Metrics:    metrics,
	}, nil
}

// ImportData imports data from an export file. Foods are imported before
// logs so the referential cascade constraint holds; colliding keys are
// replaced per the usual upsert semantics.
func (d *DB) ImportData(data *ExportData) error {
	if err := d.SaveFoodItems(data.Foods); err != nil {
		return fmt.Errorf("import foods: %w", err)
	}

	for _, l := range data.Logs {
		if err := d.CreateDailyLog(l); err != nil {
			return fmt.Errorf("import log %s: %w", l.ID, err)
		}
	}

	for _, m := range data.Metrics {
		if err := d.SaveHealthMetric(m); err != nil {
			return fmt.Errorf("import health entry %s: %w", m.ID, err)
		}
	}

	return nil
}

// MarshalExport renders an export in the requested format ("json" or "yaml").
func MarshalExport(data *ExportData, format string) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal export: %w", err)
		}
		return out, nil
	case "yaml":
		out, err := yaml.Marshal(toYAMLExport(data))
		if err != nil {
			return nil, fmt.Errorf("marshal export: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown export format: %s", format)
	}
}

// UnmarshalExport parses an export file in JSON or YAML form.
func UnmarshalExport(raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err == nil {
		return &data, nil
	}

	var ye yamlExport
	if err := yaml.Unmarshal(raw, &ye); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return fromYAMLExport(&ye)
}

// yamlExport mirrors ExportData with string ids and timestamps, since the
// YAML codec has no text-unmarshal path for uuid or time values.
type yamlExport struct {
	Version    string       `yaml:"version"`
	ExportedAt string       `yaml:"exported_at"`
	Tool       string       `yaml:"tool"`
	Foods      []yamlFood   `yaml:"foods"`
	Logs       []yamlLog    `yaml:"logs"`
	Metrics    []yamlMetric `yaml:"metrics"`
}

type yamlFood struct {
	Name            string  `yaml:"name"`
	CarbsPer100g    float64 `yaml:"carbs_per_100g"`
	CaloriesPer100g float64 `yaml:"calories_per_100g"`
	CreatedAt       string  `yaml:"created_at"`
	UpdatedAt       string  `yaml:"updated_at"`
}

type yamlLog struct {
	ID            string  `yaml:"id"`
	FoodName      string  `yaml:"food_name"`
	QuantityGrams float64 `yaml:"quantity_grams"`
	TotalCarbs    float64 `yaml:"total_carbs"`
	TotalCalories float64 `yaml:"total_calories"`
	Date          string  `yaml:"date"`
	Timestamp     string  `yaml:"timestamp"`
}

type yamlMetric struct {
	ID           string   `yaml:"id"`
	Date         string   `yaml:"date"`
	WeightKg     *float64 `yaml:"weight_kg,omitempty"`
	WaistCm      *float64 `yaml:"waist_cm,omitempty"`
	GlucoseMgDl  *float64 `yaml:"glucose_mg_dl,omitempty"`
	KetonesMmolL *float64 `yaml:"ketones_mmol_l,omitempty"`
	BPSystolic   *int     `yaml:"bp_systolic,omitempty"`
	BPDiastolic  *int     `yaml:"bp_diastolic,omitempty"`
	PulseBpm     *int     `yaml:"pulse_bpm,omitempty"`
	Notes        *string  `yaml:"notes,omitempty"`
	Timestamp    string   `yaml:"timestamp"`
}

func toYAMLExport(data *ExportData) *yamlExport {
	ye := &yamlExport{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
	}

	for _, f := range data.Foods {
		ye.Foods = append(ye.Foods, yamlFood{
			Name:            f.Name,
			CarbsPer100g:    f.CarbsPer100g,
			CaloriesPer100g: f.CaloriesPer100g,
			CreatedAt:       f.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       f.UpdatedAt.Format(time.RFC3339),
		})
	}

	for _, l := range data.Logs {
		ye.Logs = append(ye.Logs, yamlLog{
			ID:            l.ID.String(),
			FoodName:      l.FoodName,
			QuantityGrams: l.QuantityGrams,
			TotalCarbs:    l.TotalCarbs,
			TotalCalories: l.TotalCalories,
			Date:          l.Date,
			Timestamp:     l.Timestamp.Format(time.RFC3339),
		})
	}

	for _, m := range data.Metrics {
		ye.Metrics = append(ye.Metrics, yamlMetric{
			ID:           m.ID,
			Date:         m.Date,
			WeightKg:     m.WeightKg,
			WaistCm:      m.WaistCm,
			GlucoseMgDl:  m.GlucoseMgDl,
			KetonesMmolL: m.KetonesMmolL,
			BPSystolic:   m.BPSystolic,
			BPDiastolic:  m.BPDiastolic,
			PulseBpm:     m.PulseBpm,
			Notes:        m.Notes,
			Timestamp:    m.Timestamp.Format(time.RFC3339),
		})
	}

	return ye
}

func fromYAMLExport(ye *yamlExport) (*ExportData, error) {
	data := &ExportData{
		Version: ye.Version,
		Tool:    ye.Tool,
	}
	data.ExportedAt, _ = time.Parse(time.RFC3339, ye.ExportedAt)

	for _, f := range ye.Foods {
		item := &models.FoodItem{
			Name:            f.Name,
			CarbsPer100g:    f.CarbsPer100g,
			CaloriesPer100g: f.CaloriesPer100g,
		}
		item.CreatedAt, _ = time.Parse(time.RFC3339, f.CreatedAt)
		item.UpdatedAt, _ = time.Parse(time.RFC3339, f.UpdatedAt)
		data.Foods = append(data.Foods, item)
	}

	for _, l := range ye.Logs {
		id, err := uuid.Parse(l.ID)
		if err != nil {
			return nil, fmt.Errorf("parse log id %q: %w", l.ID, err)
		}
		entry := &models.DailyLog{
			ID:            id,
			FoodName:      l.FoodName,
			QuantityGrams: l.QuantityGrams,
			TotalCarbs:    l.TotalCarbs,
			TotalCalories: l.TotalCalories,
			Date:          l.Date,
		}
		entry.Timestamp, _ = time.Parse(time.RFC3339, l.Timestamp)
		data.Logs = append(data.Logs, entry)
	}

	for _, m := range ye.Metrics {
		metric := &models.HealthMetric{
			ID:           m.ID,
			Date:         m.Date,
			WeightKg:     m.WeightKg,
			WaistCm:      m.WaistCm,
			GlucoseMgDl:  m.GlucoseMgDl,
			KetonesMmolL: m.KetonesMmolL,
			BPSystolic:   m.BPSystolic,
			BPDiastolic:  m.BPDiastolic,
			PulseBpm:     m.PulseBpm,
			Notes:        m.Notes,
		}
		metric.Timestamp, _ = time.Parse(time.RFC3339, m.Timestamp)
		data.Metrics = append(data.Metrics, metric)
	}

	return data, nil
}
