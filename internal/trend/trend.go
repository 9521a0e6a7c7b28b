// ABOUTME: Pure trend extraction over health metric collections.
// ABOUTME: Per-field time series, last-N-days windows, and latest-value queries.
package trend

import (
	"sort"

	"github.com/harperreed/keto/internal/derive"
	"github.com/harperreed/keto/internal/models"
)

// Point is one value of a single-field time series.
type Point struct {
	Date  string  `json:"date" yaml:"date"`
	Value float64 `json:"value" yaml:"value"`
}

// BPPoint is one blood pressure reading; either side may be absent.
type BPPoint struct {
	Date      string `json:"date" yaml:"date"`
	Systolic  *int   `json:"systolic" yaml:"systolic,omitempty"`
	Diastolic *int   `json:"diastolic" yaml:"diastolic,omitempty"`
}

// Summary is the latest recorded value of each dashboard field, drawn
// independently per field from whichever entry recorded it most recently.
type Summary struct {
	LatestWeight    *float64 `json:"latestWeight" yaml:"latest_weight,omitempty"`
	LatestWaist     *float64 `json:"latestWaist" yaml:"latest_waist,omitempty"`
	LatestGlucose   *float64 `json:"latestGlucose" yaml:"latest_glucose,omitempty"`
	LatestKetones   *float64 `json:"latestKetones" yaml:"latest_ketones,omitempty"`
	LatestSystolic  *int     `json:"latestSystolic" yaml:"latest_systolic,omitempty"`
	LatestDiastolic *int     `json:"latestDiastolic" yaml:"latest_diastolic,omitempty"`
	LatestPulse     *int     `json:"latestPulse" yaml:"latest_pulse,omitempty"`
}

func series(entries []*models.HealthMetric, value func(*models.HealthMetric) *float64) []Point {
	var points []Point
	for _, m := range entries {
		if v := value(m); v != nil {
			points = append(points, Point{Date: m.Date, Value: *v})
		}
	}
	sortPoints(points)
	return points
}

func sortPoints(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
}

// WeightSeries extracts the weight series, oldest first.
func WeightSeries(entries []*models.HealthMetric) []Point {
	return series(entries, func(m *models.HealthMetric) *float64 { return m.WeightKg })
}

// WaistSeries extracts the waist circumference series, oldest first.
func WaistSeries(entries []*models.HealthMetric) []Point {
	return series(entries, func(m *models.HealthMetric) *float64 { return m.WaistCm })
}

// GlucoseSeries extracts the blood glucose series, oldest first.
func GlucoseSeries(entries []*models.HealthMetric) []Point {
	return series(entries, func(m *models.HealthMetric) *float64 { return m.GlucoseMgDl })
}

// KetoneSeries extracts the blood ketone series, oldest first.
func KetoneSeries(entries []*models.HealthMetric) []Point {
	return series(entries, func(m *models.HealthMetric) *float64 { return m.KetonesMmolL })
}

// PulseSeries extracts the resting pulse series, oldest first.
func PulseSeries(entries []*models.HealthMetric) []Point {
	return series(entries, func(m *models.HealthMetric) *float64 {
		if m.PulseBpm == nil {
			return nil
		}
		v := float64(*m.PulseBpm)
		return &v
	})
}

// GKIEntries returns the entries eligible for GKI computation: both glucose
// and ketones recorded, oldest first. The ketones>0 guard belongs to the
// calculator, so an entry with ketones=0 is still a candidate here.
func GKIEntries(entries []*models.HealthMetric) []*models.HealthMetric {
	var eligible []*models.HealthMetric
	for _, m := range entries {
		if m.GlucoseMgDl != nil && m.KetonesMmolL != nil {
			eligible = append(eligible, m)
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].Date < eligible[j].Date
	})
	return eligible
}

// GKISeries computes GKI values for all eligible entries, oldest first.
// Entries whose GKI is unavailable (ketones=0) are skipped, not zeroed.
func GKISeries(entries []*models.HealthMetric) []Point {
	var points []Point
	for _, m := range GKIEntries(entries) {
		if gki, ok := derive.GKI(m); ok {
			points = append(points, Point{Date: m.Date, Value: gki})
		}
	}
	return points
}

// BloodPressureSeries extracts readings where either side of the blood
// pressure was recorded, oldest first.
func BloodPressureSeries(entries []*models.HealthMetric) []BPPoint {
	var points []BPPoint
	for _, m := range entries {
		if m.BPSystolic != nil || m.BPDiastolic != nil {
			points = append(points, BPPoint{Date: m.Date, Systolic: m.BPSystolic, Diastolic: m.BPDiastolic})
		}
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// LastNDays returns entries dated within the trailing days-day window ending
// at referenceDate inclusive, oldest first.
func LastNDays(entries []*models.HealthMetric, referenceDate string, days int) ([]*models.HealthMetric, error) {
	endDate, err := models.ParseDate(referenceDate)
	if err != nil {
		return nil, err
	}
	startDate, err := models.AddDays(endDate, -(days - 1))
	if err != nil {
		return nil, err
	}

	var window []*models.HealthMetric
	for _, m := range entries {
		if m.Date >= startDate && m.Date <= endDate {
			window = append(window, m)
		}
	}
	sort.Slice(window, func(i, j int) bool {
		return window[i].Date < window[j].Date
	})
	return window, nil
}

// latestWhere finds the most recent entry matching pred, by date with the
// entry timestamp as tie-break.
func latestWhere(entries []*models.HealthMetric, pred func(*models.HealthMetric) bool) *models.HealthMetric {
	var latest *models.HealthMetric
	for _, m := range entries {
		if !pred(m) {
			continue
		}
		if latest == nil || m.Date > latest.Date ||
			(m.Date == latest.Date && m.Timestamp.After(latest.Timestamp)) {
			latest = m
		}
	}
	return latest
}

// LatestWeight returns the most recent entry that recorded a weight, or nil.
func LatestWeight(entries []*models.HealthMetric) *models.HealthMetric {
	return latestWhere(entries, func(m *models.HealthMetric) bool { return m.WeightKg != nil })
}

// LatestSummary assembles the dashboard summary from the most recent entry
// per field. Fields never recorded stay nil.
func LatestSummary(entries []*models.HealthMetric) Summary {
	var s Summary
	if m := latestWhere(entries, func(m *models.HealthMetric) bool { return m.WeightKg != nil }); m != nil {
		s.LatestWeight = m.WeightKg
	}
	if m := latestWhere(entries, func(m *models.HealthMetric) bool { return m.WaistCm != nil }); m != nil {
		s.LatestWaist = m.WaistCm
	}
	if m := latestWhere(entries, func(m *models.HealthMetric) bool { return m.GlucoseMgDl != nil }); m != nil {
		s.LatestGlucose = m.GlucoseMgDl
	}
	if m := latestWhere(entries, func(m *models.HealthMetric) bool { return m.KetonesMmolL != nil }); m != nil {
		s.LatestKetones = m.KetonesMmolL
	}
	if m := latestWhere(entries, func(m *models.HealthMetric) bool { return m.BPSystolic != nil }); m != nil {
		s.LatestSystolic = m.BPSystolic
	}
	if m := latestWhere(entries, func(m *models.HealthMetric) bool { return m.BPDiastolic != nil }); m != nil {
		s.LatestDiastolic = m.BPDiastolic
	}
	if m := latestWhere(entries, func(m *models.HealthMetric) bool { return m.PulseBpm != nil }); m != nil {
		s.LatestPulse = m.PulseBpm
	}
	return s
}
