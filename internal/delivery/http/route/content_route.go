package route

import (
	"github.com/brainfeed/brainfeed-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupContentRoute(api *fiber.App, handler handler.ContentHandler) {
	bookRouter := api.Group("/books")
	{
		bookRouter.Post("/", handler.AddBook)
		bookRouter.Get("/", handler.ListBooks)
	}

	videoRouter := api.Group("/videos")
	{
		videoRouter.Post("/", handler.AddVideo)
		videoRouter.Get("/", handler.ListVideos)
	}
}

func SetupFeedRoute(api *fiber.App, handler handler.SessionHandler) {
	feedRouter := api.Group("/feed")
	{
		feedRouter.Get("/:user_id", handler.ComposeFeed)
		feedRouter.Post("/:user_id/shuffle", handler.ComposeFeed)
		feedRouter.Get("/:user_id/current", handler.CurrentItem)
		feedRouter.Post("/:user_id/answer", handler.SubmitAnswer)
		feedRouter.Post("/:user_id/advance", handler.Advance)
		feedRouter.Get("/:user_id/stats", handler.Stats)
		feedRouter.Delete("/:user_id", handler.EndSession)
	}
}
