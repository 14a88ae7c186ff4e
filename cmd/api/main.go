package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/pavelpernicka/scoutcomp/internal/adapter/db"
	httpadapter "github.com/pavelpernicka/scoutcomp/internal/adapter/http"
	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/handlers"
	httpmiddleware "github.com/pavelpernicka/scoutcomp/internal/adapter/http/middleware"
	"github.com/pavelpernicka/scoutcomp/internal/app/service"
	"github.com/pavelpernicka/scoutcomp/internal/config"
	"github.com/pavelpernicka/scoutcomp/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageCs, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	if err := dbadapter.RunMigrations(context.Background(), db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	taskRepo := dbadapter.NewTaskRepository(db)
	completionRepo := dbadapter.NewCompletionRepository(db)
	memberRepo := dbadapter.NewMemberRepository(db)
	leaderboardRepo := dbadapter.NewLeaderboardRepository(db)
	statCategoryRepo := dbadapter.NewStatCategoryRepository(db)

	taskService := service.NewTaskService(taskRepo, completionRepo, memberRepo)
	completionService := service.NewCompletionService(completionRepo, taskRepo, memberRepo)
	leaderboardService := service.NewLeaderboardService(leaderboardRepo, statCategoryRepo, memberRepo)
	statCategoryService := service.NewStatCategoryService(statCategoryRepo, taskRepo)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(
		r,
		memberRepo,
		handlers.NewHealthHandler(db),
		handlers.NewTaskHandler(taskService),
		handlers.NewCompletionHandler(completionService),
		handlers.NewLeaderboardHandler(leaderboardService),
		handlers.NewStatCategoryHandler(statCategoryService),
	)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
