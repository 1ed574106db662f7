package route

import (
	"github.com/brainfeed/brainfeed-be/internal/delivery/http/handler"
	"github.com/brainfeed/brainfeed-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api            *fiber.App
	Middleware     *middleware.Middleware
	ContentHandler handler.ContentHandler
	SessionHandler handler.SessionHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	SetupContentRoute(c.Api, c.ContentHandler)
	SetupFeedRoute(c.Api, c.SessionHandler)
}
