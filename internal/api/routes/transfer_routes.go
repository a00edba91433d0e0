package routes

import (
	"github.com/Gajendran57/GoalGrid/internal/api/handlers"
	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type TransferRoutes struct {
	handler   *handlers.TransferHandler
	jwtSecret string
}

func NewTransferRoutes(handler *handlers.TransferHandler, jwtSecret string) *TransferRoutes {
	return &TransferRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers export and import. Neither side is cached;
// exports must always reflect the live dataset.
func (t *TransferRoutes) RegisterRoutes(router *gin.Engine) {
	transfer := router.Group("/api/transfer")
	transfer.Use(middleware.NewAuthMiddleware(t.jwtSecret))

	transfer.GET("/export", gzip.Gzip(gzip.DefaultCompression), t.handler.Export)
	transfer.POST("/import", t.handler.Import)
}
