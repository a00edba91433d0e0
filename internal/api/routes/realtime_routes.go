package routes

import (
	"github.com/Gajendran57/GoalGrid/internal/api/handlers"
	"github.com/gin-gonic/gin"
)

type RealtimeRoutes struct {
	handler *handlers.RealtimeHandler
}

func NewRealtimeRoutes(handler *handlers.RealtimeHandler) *RealtimeRoutes {
	return &RealtimeRoutes{handler: handler}
}

// RegisterRoutes registers the websocket endpoint. It stays outside the
// auth middleware; browser clients pass the token as a query parameter
// and the handler validates it itself.
func (r *RealtimeRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/realtime/ws", r.handler.Stream)
}
