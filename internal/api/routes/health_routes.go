package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gajendran57/GoalGrid/internal/infrastructure/cache"
	"github.com/Gajendran57/GoalGrid/internal/infrastructure/persistence/postgres/connection"
)

// HealthResponse represents the health check response structure
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp" example:"2025-04-17T02:00:00Z"`
	Checks    gin.H     `json:"checks,omitempty"`
}

// SetupHealthRoutes registers health check endpoints
func SetupHealthRoutes(router *gin.Engine, db *connection.Database, redisClient *cache.RedisClient) {
	// @Summary Health check endpoint
	// @Description Get the current health status of the API
	// @Tags health
	// @Produce json
	// @Success 200 {object} HealthResponse
	// @Router /health [get]
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		})
	})

	// @Summary Readiness check endpoint
	// @Description Verify the API can reach its database and cache
	// @Tags health
	// @Produce json
	// @Success 200 {object} HealthResponse
	// @Failure 503 {object} HealthResponse
	// @Router /health/ready [get]
	router.GET("/health/ready", func(c *gin.Context) {
		checks := gin.H{}
		ready := true

		if sqlDB, err := db.DB.DB(); err != nil {
			checks["database"] = err.Error()
			ready = false
		} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			checks["database"] = err.Error()
			ready = false
		} else {
			checks["database"] = "ok"
		}

		if err := redisClient.HealthCheck(c.Request.Context()); err != nil {
			checks["redis"] = err.Error()
			ready = false
		} else {
			checks["redis"] = "ok"
		}

		status := "ready"
		code := http.StatusOK
		if !ready {
			status = "not ready"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, HealthResponse{
			Status:    status,
			Timestamp: time.Now().UTC(),
			Checks:    checks,
		})
	})
}
