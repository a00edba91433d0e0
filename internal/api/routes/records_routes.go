package routes

import (
	"github.com/Gajendran57/GoalGrid/internal/api/handlers"
	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type RecordsRoutes struct {
	handler   *handlers.RecordsHandler
	jwtSecret string
}

func NewRecordsRoutes(handler *handlers.RecordsHandler, jwtSecret string) *RecordsRoutes {
	return &RecordsRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers the cross-habit record listing
func (r *RecordsRoutes) RegisterRoutes(router *gin.Engine) {
	records := router.Group("/api/records")
	records.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	records.GET("", gzip.Gzip(gzip.DefaultCompression), r.handler.ListRecords)
}
