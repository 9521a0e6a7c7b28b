// ABOUTME: HealthMetric model for one day's health measurement snapshot.
// ABOUTME: Every measured field is independently optional; date is unique.
package models

import (
	"fmt"
	"time"
)

// HealthMetric holds the measurements recorded for a single day. The ID is
// the date itself, so saving a day twice replaces the earlier entry. Each
// numeric field is a pointer: nil means the value was not measured, which is
// distinct from a recorded zero.
type HealthMetric struct {
	ID           string    `json:"id" yaml:"id"`
	Date         string    `json:"date" yaml:"date"`
	WeightKg     *float64  `json:"weightKg" yaml:"weight_kg,omitempty"`
	WaistCm      *float64  `json:"waistCm" yaml:"waist_cm,omitempty"`
	GlucoseMgDl  *float64  `json:"glucoseMgDl" yaml:"glucose_mg_dl,omitempty"`
	KetonesMmolL *float64  `json:"ketonesMmolL" yaml:"ketones_mmol_l,omitempty"`
	BPSystolic   *int      `json:"bpSystolic" yaml:"bp_systolic,omitempty"`
	BPDiastolic  *int      `json:"bpDiastolic" yaml:"bp_diastolic,omitempty"`
	PulseBpm     *int      `json:"pulseBpm" yaml:"pulse_bpm,omitempty"`
	Notes        *string   `json:"notes" yaml:"notes,omitempty"`
	Timestamp    time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewHealthMetric creates an empty entry for the given date, with the ID
// derived from the date and the timestamp set to now.
func NewHealthMetric(date string) *HealthMetric {
	return &HealthMetric{
		ID:        date,
		Date:      date,
		Timestamp: time.Now(),
	}
}

// WithWeight sets the body weight in kilograms.
func (m *HealthMetric) WithWeight(kg float64) *HealthMetric {
	m.WeightKg = &kg
	return m
}

// WithWaist sets the waist circumference in centimeters.
func (m *HealthMetric) WithWaist(cm float64) *HealthMetric {
	m.WaistCm = &cm
	return m
}

// WithGlucose sets the blood glucose reading in mg/dL.
func (m *HealthMetric) WithGlucose(mgDl float64) *HealthMetric {
	m.GlucoseMgDl = &mgDl
	return m
}

// WithKetones sets the blood ketone reading in mmol/L.
func (m *HealthMetric) WithKetones(mmolL float64) *HealthMetric {
	m.KetonesMmolL = &mmolL
	return m
}

// WithBloodPressure sets both blood pressure readings in mmHg.
func (m *HealthMetric) WithBloodPressure(systolic, diastolic int) *HealthMetric {
	m.BPSystolic = &systolic
	m.BPDiastolic = &diastolic
	return m
}

// WithPulse sets the resting pulse in beats per minute.
func (m *HealthMetric) WithPulse(bpm int) *HealthMetric {
	m.PulseBpm = &bpm
	return m
}

// WithNotes sets free-text notes on the entry.
func (m *HealthMetric) WithNotes(notes string) *HealthMetric {
	m.Notes = &notes
	return m
}

// Validate checks entry invariants before the record reaches storage.
func (m *HealthMetric) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("health metric id must not be empty")
	}
	if _, err := ParseDate(m.Date); err != nil {
		return err
	}
	for name, v := range map[string]*float64{
		"weight":  m.WeightKg,
		"waist":   m.WaistCm,
		"glucose": m.GlucoseMgDl,
		"ketones": m.KetonesMmolL,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s must not be negative: %g", name, *v)
		}
	}
	for name, v := range map[string]*int{
		"systolic":  m.BPSystolic,
		"diastolic": m.BPDiastolic,
		"pulse":     m.PulseBpm,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s must not be negative: %d", name, *v)
		}
	}
	return nil
}
