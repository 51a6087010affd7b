package controllers

import (
	"net/http"

	"smart-gmao/pkg/utils"
	ws "smart-gmao/pkg/websocket"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// FeedController отдаёт поток событий тикетов по WebSocket.
type FeedController struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewFeedController(hub *ws.Hub, allowedOrigins []string, logger *zap.Logger) *FeedController {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &FeedController{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
		},
		logger: logger,
	}
}

// GET /api/ws
func (c *FeedController) Connect(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	conn, err := c.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		c.logger.Warn("Feed: не удалось установить WebSocket-соединение", zap.Error(err))
		return nil
	}

	client := ws.NewClient(c.hub, conn, userID)
	c.hub.Register(client)
	go client.WritePump()
	client.ReadPump()
	return nil
}
