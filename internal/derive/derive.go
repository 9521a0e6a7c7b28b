// ABOUTME: Pure derived-metric calculations over a single health entry.
// ABOUTME: BMI, GKI, and blood pressure formatting with absent-value handling.
package derive

import (
	"fmt"

	"github.com/harperreed/keto/internal/models"
)

// glucoseMgDlPerMmolL converts blood glucose from mg/dL to mmol/L.
const glucoseMgDlPerMmolL = 18.0

// BMI returns weight / height² for the entry. The second return value is
// false when the entry has no weight or the height is not positive; a missing
// BMI is an absent value, not an error.
func BMI(m *models.HealthMetric, heightMeters float64) (float64, bool) {
	if m.WeightKg == nil || heightMeters <= 0 {
		return 0, false
	}
	return *m.WeightKg / (heightMeters * heightMeters), true
}

// GKI returns the Glucose Ketone Index for the entry. Glucose is converted
// from mg/dL to mmol/L, divided by ketones, and scaled by 100. The scaling is
// a display convention carried over from the original tracker, not a standard
// unit. Returns false when glucose is absent or ketones are absent or not
// positive.
func GKI(m *models.HealthMetric) (float64, bool) {
	if m.GlucoseMgDl == nil || m.KetonesMmolL == nil || *m.KetonesMmolL <= 0 {
		return 0, false
	}
	glucoseMmolL := *m.GlucoseMgDl / glucoseMgDlPerMmolL
	return glucoseMmolL / *m.KetonesMmolL * 100, true
}

// FormatBloodPressure renders the entry's blood pressure as "sys/dia".
// A missing side is shown as a dash. Returns false when neither side was
// recorded.
func FormatBloodPressure(m *models.HealthMetric) (string, bool) {
	switch {
	case m.BPSystolic != nil && m.BPDiastolic != nil:
		return fmt.Sprintf("%d/%d", *m.BPSystolic, *m.BPDiastolic), true
	case m.BPSystolic != nil:
		return fmt.Sprintf("%d/-", *m.BPSystolic), true
	case m.BPDiastolic != nil:
		return fmt.Sprintf("-/%d", *m.BPDiastolic), true
	default:
		return "", false
	}
}
