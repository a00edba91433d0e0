package handlers

import (
	"net/http"
	"time"

	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/Gajendran57/GoalGrid/internal/domain/realtime"
	"github.com/Gajendran57/GoalGrid/pkg/security/auth"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	wsReadLimit     = 1024 * 10
	wsReadDeadline  = 60 * time.Second
	wsWriteDeadline = 10 * time.Second
	wsPingInterval  = 30 * time.Second
)

// RealtimeHandler upgrades dashboard connections and streams habit
// activity events to them.
type RealtimeHandler struct {
	hub       realtime.Hub
	jwtSecret string
	upgrader  websocket.Upgrader
	logger    *zap.Logger
}

// NewRealtimeHandler creates a new RealtimeHandler instance
func NewRealtimeHandler(hub realtime.Hub, jwtSecret string, logger *zap.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger,
	}
}

// Stream godoc
// @Summary Stream habit activity over WebSocket
// @Description Upgrade to WebSocket and push the user's habit events as they happen
// @Tags realtime
// @Security BearerAuth
// @Param token query string false "Access token, for clients that cannot set headers"
// @Success 101 {string} string "Switching protocols"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/realtime/ws [get]
func (h *RealtimeHandler) Stream(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)

	// Browser WebSocket clients cannot set an Authorization header, so
	// the token may arrive as a query parameter instead.
	if !exists {
		tokenParam := c.Query("token")
		if tokenParam == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := auth.ValidateToken(tokenParam, h.jwtSecret)
		if err != nil {
			h.logger.Warn("WebSocket token validation failed", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		userID = claims.UserID
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade to WebSocket",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("remote_addr", c.Request.RemoteAddr))
		return
	}
	defer func() {
		ws.Close()
		h.logger.Info("WebSocket connection closed", zap.String("user_id", userID.String()))
	}()

	ws.SetReadLimit(wsReadLimit)
	ws.SetReadDeadline(time.Now().Add(wsReadDeadline))
	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(wsReadDeadline))
		return nil
	})

	events, cancel, err := h.hub.Subscribe(userID.String())
	if err != nil {
		h.logger.Error("Failed to subscribe to activity events",
			zap.Error(err),
			zap.String("user_id", userID.String()))
		ws.WriteJSON(map[string]string{"error": "failed to subscribe"})
		return
	}
	defer cancel()

	h.logger.Info("WebSocket connection established",
		zap.String("user_id", userID.String()),
		zap.String("remote_addr", c.Request.RemoteAddr))

	if err := ws.WriteJSON(map[string]string{"type": "connected"}); err != nil {
		h.logger.Error("Failed to send connected frame", zap.Error(err))
		return
	}

	pingTicker := time.NewTicker(wsPingInterval)
	defer pingTicker.Stop()

	// The client never sends application data; the read loop exists to
	// notice closes and feed the pong handler.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseNormalClosure,
					websocket.CloseAbnormalClosure) {
					h.logger.Warn("WebSocket read error",
						zap.Error(err),
						zap.String("user_id", userID.String()))
				}
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			ws.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
			if err := ws.WriteJSON(event); err != nil {
				h.logger.Warn("WebSocket write error",
					zap.Error(err),
					zap.String("user_id", userID.String()))
				return
			}
		case <-pingTicker.C:
			ws.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
