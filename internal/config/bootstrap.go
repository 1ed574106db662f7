package config

import (
	"context"

	"github.com/brainfeed/brainfeed-be/internal/delivery/http/handler"
	"github.com/brainfeed/brainfeed-be/internal/delivery/http/middleware"
	"github.com/brainfeed/brainfeed-be/internal/delivery/http/repository"
	"github.com/brainfeed/brainfeed-be/internal/delivery/http/route"
	"github.com/brainfeed/brainfeed-be/internal/delivery/http/usecase"
	"github.com/brainfeed/brainfeed-be/internal/pkg/generator"
	"github.com/brainfeed/brainfeed-be/internal/pkg/llm"
	"github.com/brainfeed/brainfeed-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	llmConfig := llm.Config{}
	if config.Config != nil {
		llmConfig = llm.Config{
			Provider: config.Config.GetString("llm.provider"),
			APIKey:   config.Config.GetString("llm.api_key"),
			Model:    config.Config.GetString("llm.model"),
			BaseURL:  config.Config.GetString("llm.base_url"),
		}
	}

	llmClient, err := llm.NewClient(context.Background(), llmConfig)
	if err != nil {
		// Generator tanpa client tetap jalan: semua konten jatuh ke
		// placeholder batch.
		config.Log.Warnf("LLM client unavailable, content generation will use placeholders: %v", err)
		llmClient = nil
	}

	contentGenerator := generator.NewLLMGenerator(llmClient, config.Log)
	contentRepo := repository.NewContentRepository(config.DB)

	contentUsecase := usecase.NewContentUsecase(usecase.ContentUsecaseConfig{
		DB:         config.DB,
		Generator:  contentGenerator,
		Repository: contentRepo,
		Log:        config.Log,
	})
	sessionEngine := usecase.NewSessionEngine(usecase.SessionEngineConfig{
		DB:         config.DB,
		Repository: contentRepo,
		Log:        config.Log,
	})

	contentHandler := handler.NewContentHandler(config.Validator, config.Log, contentUsecase)
	sessionHandler := handler.NewSessionHandler(config.Validator, config.Log, sessionEngine)

	route.Setup(&route.RouteConfig{
		Api:            config.Api,
		Middleware:     mid,
		ContentHandler: contentHandler,
		SessionHandler: sessionHandler,
	})

}
