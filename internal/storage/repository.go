// ABOUTME: Repository interface for keto tracker data storage.
// ABOUTME: Defines contract for catalog, log, and health metric operations.
package storage

import (
	"github.com/harperreed/keto/internal/aggregate"
	"github.com/harperreed/keto/internal/models"
	"github.com/harperreed/keto/internal/trend"
)

// Repository defines the storage interface for tracker data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Food catalog operations
	SaveFoodItem(f *models.FoodItem) error
	SaveFoodItems(items []*models.FoodItem) error
	GetFoodItem(name string) (*models.FoodItem, error)
	ListFoodItems() ([]*models.FoodItem, error)
	SearchFoodItems(query string) ([]*models.FoodItem, error)
	UpdateFoodItem(f *models.FoodItem) error
	DeleteFoodItem(name string) error
	DeleteAllFoodItems() error
	CountFoodItems() (int, error)
	SeedDefaultFoods() (int, error)

	// Daily log operations
	CreateDailyLog(l *models.DailyLog) error
	GetDailyLog(idOrPrefix string) (*models.DailyLog, error)
	ListDailyLogs(limit int) ([]*models.DailyLog, error)
	ListDailyLogsByDate(date string) ([]*models.DailyLog, error)
	ListDailyLogsByRange(startDate, endDate string) ([]*models.DailyLog, error)
	DeleteDailyLog(idOrPrefix string) error
	DeleteDailyLogsByDate(date string) error
	DeleteAllDailyLogs() error

	// Nutrition aggregates
	DailySummary(date string) (aggregate.Totals, error)
	SummariesByRange(startDate, endDate string) ([]aggregate.DateSummary, error)
	MostConsumedFoods(limit int) ([]aggregate.FoodUsage, error)
	WeeklyCarbTrend(referenceDate string) ([]aggregate.DailyCarbs, error)

	// Health metric operations
	SaveHealthMetric(m *models.HealthMetric) error
	UpdateHealthMetric(m *models.HealthMetric) error
	GetHealthMetric(id string) (*models.HealthMetric, error)
	GetHealthMetricByDate(date string) (*models.HealthMetric, error)
	ListHealthMetrics() ([]*models.HealthMetric, error)
	ListHealthMetricsByRange(startDate, endDate string) ([]*models.HealthMetric, error)
	DeleteHealthMetric(id string) error
	DeleteAllHealthMetrics() error

	// Health trend queries
	HealthSeries(metric string, days int) ([]trend.Point, error)
	BloodPressureTrend(days int) ([]trend.BPPoint, error)
	LatestHealthSummary() (trend.Summary, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Live queries
	Watch(topic Topic) (<-chan struct{}, func())

	// Lifecycle
	Close() error
}
