package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"sipengawas/docs"
	"sipengawas/internal/auth"
	"sipengawas/internal/cache"
	"sipengawas/internal/config"
	"sipengawas/internal/handler"
	"sipengawas/internal/router"
	"sipengawas/internal/service"
	"sipengawas/internal/store"
	"sipengawas/internal/upload"
)

// @title Sipengawas API
// @version 1.0
// @description School supervisor activity tracking with JWT authentication, photo uploads and PDF reports.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	st, err := store.Open(cfg.DataFile)
	if err != nil {
		log.Fatalf("store init: %v", err)
	}
	log.Printf("using local file-based storage (data persisted in %s)", cfg.DataFile)

	saver, err := upload.NewSaver(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload init: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("warning: redis unreachable, refresh tokens will not survive: %v", err)
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(st, jwtService, tokenStore)
	reportService := service.NewReportService(st)

	if err := authService.EnsureAdmin(context.Background()); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	schoolHandler := handler.NewSchoolHandler(st)
	taskHandler := handler.NewTaskHandler(st, saver)
	supervisionHandler := handler.NewSupervisionHandler(st, saver)
	additionalTaskHandler := handler.NewAdditionalTaskHandler(st, saver)
	reportHandler := handler.NewReportHandler(reportService)

	// Register routes
	router.Register(
		e,
		cfg,
		saver,
		authHandler,
		schoolHandler,
		taskHandler,
		supervisionHandler,
		additionalTaskHandler,
		reportHandler,
	)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := st.Close(); err != nil {
		log.Printf("store close: %v", err)
	}
}
