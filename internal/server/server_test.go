// ABOUTME: Tests for the HTTP service handlers.
// ABOUTME: Exercises routes over httptest against a real SQLite store.
package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/harperreed/keto/internal/config"
	"github.com/harperreed/keto/internal/models"
	"github.com/harperreed/keto/internal/storage"
)

func setupTestServer(t *testing.T) (*gin.Engine, *storage.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s := New(db, &config.Config{})
	return s.Router(), db
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDailySummaryEndpoint(t *testing.T) {
	router, db := setupTestServer(t)

	f := models.NewFoodItem("Avocado", 1.8, 160)
	db.SaveFoodItem(f)
	db.CreateDailyLog(models.NewDailyLog(f, 100, "2025-08-15"))

	w := doRequest(t, router, "GET", "/daily-summary?date=2025-08-15", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var totals struct {
		TotalCarbs    float64 `json:"totalCarbs"`
		TotalCalories float64 `json:"totalCalories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &totals); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if totals.TotalCarbs != 1.8 || totals.TotalCalories != 160 {
		t.Errorf("unexpected totals: %+v", totals)
	}
}

func TestDailySummaryEmptyDayIsZero(t *testing.T) {
	router, _ := setupTestServer(t)

	w := doRequest(t, router, "GET", "/daily-summary?date=2025-01-01", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var totals struct {
		TotalCarbs float64 `json:"totalCarbs"`
	}
	json.Unmarshal(w.Body.Bytes(), &totals)
	if totals.TotalCarbs != 0 {
		t.Errorf("expected zero totals, got %+v", totals)
	}
}

func TestDailySummaryBadDate(t *testing.T) {
	router, _ := setupTestServer(t)

	w := doRequest(t, router, "GET", "/daily-summary?date=yesterday", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDailySummariesEndpoint(t *testing.T) {
	router, db := setupTestServer(t)

	f := models.NewFoodItem("Butter", 0.1, 717)
	db.SaveFoodItem(f)
	db.CreateDailyLog(models.NewDailyLog(f, 20, "2025-08-10"))
	db.CreateDailyLog(models.NewDailyLog(f, 30, "2025-08-12"))

	w := doRequest(t, router, "GET", "/daily-summaries?start=2025-08-01&end=2025-08-31", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var summaries []struct {
		Date string `json:"date"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Date != "2025-08-12" {
		t.Errorf("expected most recent first, got %s", summaries[0].Date)
	}
}

func TestDailySummariesValidation(t *testing.T) {
	router, _ := setupTestServer(t)

	tests := []struct {
		name string
		path string
	}{
		{"missing params", "/daily-summaries"},
		{"missing end", "/daily-summaries?start=2025-08-01"},
		{"inverted range", "/daily-summaries?start=2025-08-31&end=2025-08-01"},
		{"bad start", "/daily-summaries?start=nope&end=2025-08-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, "GET", tt.path, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestMostConsumedFoodsEndpoint(t *testing.T) {
	router, db := setupTestServer(t)

	f := models.NewFoodItem("Lachs", 0, 208)
	db.SaveFoodItem(f)
	db.CreateDailyLog(models.NewDailyLog(f, 100, "2025-08-10"))
	db.CreateDailyLog(models.NewDailyLog(f, 150, "2025-08-11"))

	w := doRequest(t, router, "GET", "/most-consumed-foods?limit=5", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var usages []struct {
		FoodName string `json:"foodName"`
		Count    int    `json:"count"`
	}
	json.Unmarshal(w.Body.Bytes(), &usages)
	if len(usages) != 1 || usages[0].Count != 2 {
		t.Errorf("unexpected usages: %+v", usages)
	}

	w = doRequest(t, router, "GET", "/most-consumed-foods?limit=-1", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for bad limit", w.Code)
	}
}

func TestWeeklyCarbTrendEndpoint(t *testing.T) {
	router, db := setupTestServer(t)

	f := models.NewFoodItem("Brokkoli", 4.4, 34)
	db.SaveFoodItem(f)
	db.CreateDailyLog(models.NewDailyLog(f, 100, "2025-08-12"))

	w := doRequest(t, router, "GET", "/weekly-carb-trend?reference=2025-08-15", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var points []struct {
		Date       string  `json:"date"`
		TotalCarbs float64 `json:"totalCarbs"`
	}
	json.Unmarshal(w.Body.Bytes(), &points)
	if len(points) != 1 || points[0].Date != "2025-08-12" {
		t.Errorf("unexpected trend: %+v", points)
	}
}

func TestHealthTrendEndpoint(t *testing.T) {
	router, db := setupTestServer(t)

	db.SaveHealthMetric(models.NewHealthMetric("2025-08-10").WithWeight(83))
	db.SaveHealthMetric(models.NewHealthMetric("2025-08-12").WithWeight(82.5))

	w := doRequest(t, router, "GET", "/health-trend/weight", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var points []struct {
		Date  string  `json:"date"`
		Value float64 `json:"value"`
	}
	json.Unmarshal(w.Body.Bytes(), &points)
	if len(points) != 2 || points[0].Date != "2025-08-10" {
		t.Errorf("unexpected series: %+v", points)
	}
}

func TestHealthTrendBloodPressure(t *testing.T) {
	router, db := setupTestServer(t)

	db.SaveHealthMetric(models.NewHealthMetric("2025-08-10").WithBloodPressure(120, 80))

	w := doRequest(t, router, "GET", "/health-trend/bp", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var points []struct {
		Systolic  *int `json:"systolic"`
		Diastolic *int `json:"diastolic"`
	}
	json.Unmarshal(w.Body.Bytes(), &points)
	if len(points) != 1 || points[0].Systolic == nil || *points[0].Systolic != 120 {
		t.Errorf("unexpected bp trend: %+v", points)
	}
}

func TestHealthTrendUnknownMetric(t *testing.T) {
	router, _ := setupTestServer(t)

	w := doRequest(t, router, "GET", "/health-trend/mood", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestLatestSummaryEndpoint(t *testing.T) {
	router, db := setupTestServer(t)

	db.SaveHealthMetric(models.NewHealthMetric("2025-08-14").WithWeight(82.1))

	w := doRequest(t, router, "GET", "/latest-summary", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var summary struct {
		LatestWeight *float64 `json:"latestWeight"`
		LatestPulse  *int     `json:"latestPulse"`
	}
	json.Unmarshal(w.Body.Bytes(), &summary)
	if summary.LatestWeight == nil || *summary.LatestWeight != 82.1 {
		t.Error("LatestWeight mismatch")
	}
	if summary.LatestPulse != nil {
		t.Error("expected absent pulse to serialize as null")
	}
}

func TestListFoodsEndpoint(t *testing.T) {
	router, db := setupTestServer(t)

	w := doRequest(t, router, "GET", "/foods", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("expected empty array for empty catalog, got %s", body)
	}

	db.SaveFoodItem(models.NewFoodItem("Avocado", 1.8, 160))
	w = doRequest(t, router, "GET", "/foods", nil)
	var foods []struct {
		Name string `json:"name"`
	}
	json.Unmarshal(w.Body.Bytes(), &foods)
	if len(foods) != 1 || foods[0].Name != "Avocado" {
		t.Errorf("unexpected foods: %+v", foods)
	}
}

func TestLogFoodEndpoint(t *testing.T) {
	router, db := setupTestServer(t)

	db.SaveFoodItem(models.NewFoodItem("Eier (ganz)", 0.6, 155))

	body := []byte(`{"foodName":"Eier (ganz)","quantityGrams":120,"date":"2025-08-15"}`)
	w := doRequest(t, router, "POST", "/food-log", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var entry struct {
		FoodName   string  `json:"foodName"`
		TotalCarbs float64 `json:"totalCarbs"`
	}
	json.Unmarshal(w.Body.Bytes(), &entry)
	if entry.FoodName != "Eier (ganz)" {
		t.Errorf("FoodName = %s", entry.FoodName)
	}

	logs, _ := db.ListDailyLogsByDate("2025-08-15")
	if len(logs) != 1 {
		t.Errorf("expected persisted log, got %d", len(logs))
	}
}

func TestLogFoodValidation(t *testing.T) {
	router, db := setupTestServer(t)

	db.SaveFoodItem(models.NewFoodItem("Butter", 0.1, 717))

	tests := []struct {
		name string
		body string
	}{
		{"unknown food", `{"foodName":"Ghost","quantityGrams":100}`},
		{"zero quantity", `{"foodName":"Butter","quantityGrams":0}`},
		{"negative quantity", `{"foodName":"Butter","quantityGrams":-5}`},
		{"bad date", `{"foodName":"Butter","quantityGrams":100,"date":"nope"}`},
		{"not json", `{{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, "POST", "/food-log", []byte(tt.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestSaveHealthEntryEndpoint(t *testing.T) {
	router, db := setupTestServer(t)

	body := []byte(`{"date":"2025-08-15","weightKg":82.5,"bpSystolic":120,"bpDiastolic":80}`)
	w := doRequest(t, router, "POST", "/health-entry", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	got, err := db.GetHealthMetricByDate("2025-08-15")
	if err != nil {
		t.Fatalf("entry not persisted: %v", err)
	}
	if got.WeightKg == nil || *got.WeightKg != 82.5 {
		t.Error("WeightKg mismatch")
	}
	if got.GlucoseMgDl != nil {
		t.Error("expected omitted glucose to stay absent")
	}
}

func TestSaveHealthEntryReplacesSameDate(t *testing.T) {
	router, db := setupTestServer(t)

	doRequest(t, router, "POST", "/health-entry", []byte(`{"date":"2025-08-15","weightKg":83,"waistCm":95}`))
	doRequest(t, router, "POST", "/health-entry", []byte(`{"date":"2025-08-15","weightKg":82.4}`))

	got, err := db.GetHealthMetricByDate("2025-08-15")
	if err != nil {
		t.Fatalf("entry not persisted: %v", err)
	}
	if got.WeightKg == nil || *got.WeightKg != 82.4 {
		t.Error("expected replaced weight")
	}
	if got.WaistCm != nil {
		t.Error("expected first save's waist to be gone")
	}
}

func TestSaveHealthEntryValidation(t *testing.T) {
	router, _ := setupTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"bad date", `{"date":"nope","weightKg":82}`},
		{"negative weight", `{"date":"2025-08-15","weightKg":-1}`},
		{"not json", `]]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, "POST", "/health-entry", []byte(tt.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}
