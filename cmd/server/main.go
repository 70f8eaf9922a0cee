package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "newsboard/docs" // swagger docs

	"newsboard/internal/config"
	"newsboard/internal/db"
	"newsboard/internal/handler"
	"newsboard/internal/model"
	"newsboard/internal/repository"
	"newsboard/internal/router"
	"newsboard/internal/service"
	"newsboard/internal/session"
	"newsboard/internal/view"
)

// @title Newsboard API
// @version 1.0
// @description News-sharing application: user and news CRUD over a JSON API, mirroring the session-based web UI.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	// Missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewSQLite(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.News{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	newsRepo := repository.NewNewsRepository(gormDB)

	// Initialize session components
	tokens := session.NewTokenService(cfg.SessionSecret)
	var sessions session.Store
	if cfg.RedisAddr != "" {
		sessions = session.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	} else {
		sessions = session.NewMemoryStore()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens, sessions, cfg.SessionTTL)
	userService := service.NewUserService(userRepo)
	newsService := service.NewNewsService(newsRepo, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	newsHandler := handler.NewNewsHandler(newsService)
	webHandler := handler.NewWebHandler(authService, newsService, cfg.SessionTTL)

	// Register routes
	router.Register(
		e,
		cfg,
		tokens,
		sessions,
		userHandler,
		newsHandler,
		webHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
