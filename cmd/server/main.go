package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"agrismart/config"
	"agrismart/database"
	"agrismart/router"

	"agrismart/pkg/ai"
	"agrismart/pkg/weather"

	cropCtrlImp "agrismart/pkg/crop/controllerImp"
	cropRepoImp "agrismart/pkg/crop/repositoryImp"
	cropSvcImp "agrismart/pkg/crop/serviceImp"

	rotCtrlImp "agrismart/pkg/rotation/controllerImp"
	rotSvcImp "agrismart/pkg/rotation/serviceImp"

	weatherCtrlImp "agrismart/pkg/weather/controllerImp"

	healthCtrlImp "agrismart/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	// 2) Store (in-memory sqlite by default) + automigrate
	db := database.Open(cfg.DBDSN)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3) Inference gateway (mock fallback when no key is configured)
	var llm ai.Client
	if cfg.GeminiAPIKey != "" {
		llm, err = ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			log.Fatalf("gemini client: %v", err)
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, using mock inference client")
		llm = ai.NewMock()
	}

	// 4) Environmental feed
	feed := weather.NewFeed(cfg.WeatherTick, logger)
	feed.Start(ctx)

	// 5) Services + controllers
	cropRepo := cropRepoImp.New(db)
	cropSvc := cropSvcImp.New(llm, cropRepo, feed, logger)
	cropCtrl := cropCtrlImp.New(cropSvc)

	rotSvc := rotSvcImp.New(llm, logger)
	rotCtrl := rotCtrlImp.New(rotSvc)

	weatherCtrl := weatherCtrlImp.New(feed)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	r := router.New(e, cropCtrl, rotCtrl.Plan, weatherCtrl.Current, healthCtrl)

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
