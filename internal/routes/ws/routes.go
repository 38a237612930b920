package ws

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/middleware"
	"github.com/lk16/reversi/internal/search"
	"github.com/lk16/reversi/internal/services"
	"github.com/lk16/reversi/internal/ws"
)

func handleWs(c *websocket.Conn) {
	cfg := c.Locals("config").(*config.ServerConfig)         //nolint: errcheck
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	slog.Info("ws connected", "ip", c.IP())
	start := time.Now()

	h := ws.NewHandler(c, search.NewServiceFromServices(cfg.Search, services))
	err := h.Handle(context.Background())
	if err != nil {
		slog.Error("ws handle error", "error", err)
	}

	slog.Info("ws disconnected", "ip", c.IP(), "duration", time.Since(start))
}

func upgradeCheck(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App) {
	app.Use("/ws", middleware.AuthOrToken(), upgradeCheck)
	app.Get("/ws", websocket.New(handleWs))
}
