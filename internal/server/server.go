// ABOUTME: HTTP service exposing the tracker's aggregates and write commands.
// ABOUTME: Gin router with CORS; absent optional values serialize as null.
package server

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/harperreed/keto/internal/config"
	"github.com/harperreed/keto/internal/models"
	"github.com/harperreed/keto/internal/storage"
)

// Server wires the storage repository into HTTP handlers.
type Server struct {
	repo storage.Repository
	cfg  *config.Config
}

// New creates a Server over the given repository and configuration.
func New(repo storage.Repository, cfg *config.Config) *Server {
	return &Server{repo: repo, cfg: cfg}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/daily-summary", s.handleDailySummary)
	r.GET("/daily-summaries", s.handleDailySummaries)
	r.GET("/most-consumed-foods", s.handleMostConsumedFoods)
	r.GET("/weekly-carb-trend", s.handleWeeklyCarbTrend)
	r.GET("/health-trend/:metric", s.handleHealthTrend)
	r.GET("/latest-summary", s.handleLatestSummary)
	r.GET("/foods", s.handleListFoods)
	r.POST("/food-log", s.handleLogFood)
	r.POST("/health-entry", s.handleSaveHealthEntry)

	return r
}

// Run starts the HTTP server on the given address.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

// GET /daily-summary?date=YYYY-MM-DD (defaults to today)
func (s *Server) handleDailySummary(c *gin.Context) {
	date, ok := s.dateParam(c, "date", models.Today())
	if !ok {
		return
	}
	totals, err := s.repo.DailySummary(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, totals)
}

// GET /daily-summaries?start=YYYY-MM-DD&end=YYYY-MM-DD
func (s *Server) handleDailySummaries(c *gin.Context) {
	start, ok := s.dateParam(c, "start", "")
	if !ok {
		return
	}
	end, ok := s.dateParam(c, "end", "")
	if !ok {
		return
	}
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end are required"})
		return
	}
	if start > end {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must not be after end"})
		return
	}

	summaries, err := s.repo.SummariesByRange(start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GET /most-consumed-foods?limit=N
func (s *Server) handleMostConsumedFoods(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	usages, err := s.repo.MostConsumedFoods(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usages)
}

// GET /weekly-carb-trend?reference=YYYY-MM-DD (defaults to today)
func (s *Server) handleWeeklyCarbTrend(c *gin.Context) {
	reference, ok := s.dateParam(c, "reference", models.Today())
	if !ok {
		return
	}
	points, err := s.repo.WeeklyCarbTrend(reference)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, points)
}

// GET /health-trend/:metric?days=N
func (s *Server) handleHealthTrend(c *gin.Context) {
	metric := c.Param("metric")
	days := 0
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = n
	}

	if metric == "bp" {
		points, err := s.repo.BloodPressureTrend(days)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, points)
		return
	}

	points, err := s.repo.HealthSeries(metric, days)
	if err != nil {
		if isUnknownMetric(metric) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, points)
}

// GET /latest-summary
func (s *Server) handleLatestSummary(c *gin.Context) {
	summary, err := s.repo.LatestHealthSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /foods
func (s *Server) handleListFoods(c *gin.Context) {
	foods, err := s.repo.ListFoodItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if foods == nil {
		foods = []*models.FoodItem{}
	}
	c.JSON(http.StatusOK, foods)
}

// POST /food-log  body: {"foodName":..., "quantityGrams":..., "date":...}
func (s *Server) handleLogFood(c *gin.Context) {
	var req struct {
		FoodName      string  `json:"foodName"`
		QuantityGrams float64 `json:"quantityGrams"`
		Date          string  `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.QuantityGrams <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}
	date := req.Date
	if date == "" {
		date = models.Today()
	}
	date, err := models.ParseDate(date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := s.repo.GetFoodItem(req.FoodName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.NewDailyLog(food, req.QuantityGrams, date)
	if err := s.repo.CreateDailyLog(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// POST /health-entry  upsert by date; omitted fields stay absent.
func (s *Server) handleSaveHealthEntry(c *gin.Context) {
	var req struct {
		Date         string   `json:"date"`
		WeightKg     *float64 `json:"weightKg"`
		WaistCm      *float64 `json:"waistCm"`
		GlucoseMgDl  *float64 `json:"glucoseMgDl"`
		KetonesMmolL *float64 `json:"ketonesMmolL"`
		BPSystolic   *int     `json:"bpSystolic"`
		BPDiastolic  *int     `json:"bpDiastolic"`
		PulseBpm     *int     `json:"pulseBpm"`
		Notes        *string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date := req.Date
	if date == "" {
		date = models.Today()
	}
	date, err := models.ParseDate(date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.NewHealthMetric(date)
	entry.WeightKg = req.WeightKg
	entry.WaistCm = req.WaistCm
	entry.GlucoseMgDl = req.GlucoseMgDl
	entry.KetonesMmolL = req.KetonesMmolL
	entry.BPSystolic = req.BPSystolic
	entry.BPDiastolic = req.BPDiastolic
	entry.PulseBpm = req.PulseBpm
	entry.Notes = req.Notes

	if err := entry.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.repo.SaveHealthMetric(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// dateParam reads and validates an ISO date query parameter, responding with
// 400 itself when invalid.
func (s *Server) dateParam(c *gin.Context, name, fallback string) (string, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return date, true
}

func isUnknownMetric(metric string) bool {
	switch metric {
	case "weight", "waist", "glucose", "ketones", "gki", "pulse", "bp":
		return false
	}
	return true
}
