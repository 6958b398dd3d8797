// Package main runs the captive portal HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nuanu-wifi/backend/config"
	"github.com/nuanu-wifi/backend/internal/auth"
	"github.com/nuanu-wifi/backend/internal/emails"
	"github.com/nuanu-wifi/backend/internal/hotspot"
	"github.com/nuanu-wifi/backend/internal/middleware"
	"github.com/nuanu-wifi/backend/internal/schedule"
	"github.com/nuanu-wifi/backend/internal/settings"
	"github.com/nuanu-wifi/backend/internal/social"
	"github.com/nuanu-wifi/backend/pkg/database"
	"github.com/nuanu-wifi/backend/pkg/redis"
	"github.com/nuanu-wifi/backend/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpireHours)
	gateway := hotspot.NewGateway(cfg.Hotspot)

	// Dashboard auth
	authHandler := auth.NewHandler(cfg.Dashboard, jwtService, logger)

	// Trial emails
	emailRepo := emails.NewRepository(pool)
	emailHandler := emails.NewHandler(emailRepo, logger, nil)

	// Scheduled ads
	scheduleRepo := schedule.NewRepository(pool)
	adCache := schedule.NewActiveAdCache(rdb.Client, logger)
	scheduleHandler := schedule.NewHandler(scheduleRepo, adCache, logger, nil)

	// Social login
	registry := social.NewRegistry(social.BuildProviders(
		social.CredentialsFromConfig(cfg.OAuth), cfg.Server.BaseURL))
	stateStore := social.NewStateStore(rdb.Client,
		time.Duration(cfg.OAuth.StateTTLSeconds)*time.Second)
	socialHandler := social.NewHandler(registry, stateStore, emailRepo, gateway, cfg.Server.BaseURL, logger)

	// Page settings
	settingsRepo := settings.NewRepository(pool)
	if err := settingsRepo.EnsureDefaults(ctx); err != nil {
		logger.Fatal("seed settings", zap.Error(err))
	}
	settingsHandler := settings.NewHandler(settingsRepo, registry, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	// Public portal surface
	router.POST("/emails", emailHandler.Save)
	router.POST("/emails/check", emailHandler.Check)
	router.GET("/portal/settings", settingsHandler.Public)
	router.GET("/portal/active-ad", scheduleHandler.ActiveAd)
	router.GET("/portal/active-ads", scheduleHandler.ActiveAds)

	// Social login (public)
	router.GET("/auth/:provider/login", socialHandler.Login)
	router.GET("/auth/:provider/callback", socialHandler.Callback)

	// Dashboard login (public)
	router.POST("/dashboard/login", authHandler.Login)

	// Admin API (JWT required)
	api := router.Group("")
	api.Use(middleware.RequireAdmin(jwtService))
	{
		api.GET("/dashboard/emails", emailHandler.List)
		api.GET("/dashboard/export", emailHandler.Export)

		api.GET("/api/settings", settingsHandler.Public)
		api.POST("/api/settings", settingsHandler.Update)
		api.POST("/api/oauth-credentials", socialHandler.UpdateCredentials)

		api.GET("/api/scheduled-ads", scheduleHandler.List)
		api.POST("/api/scheduled-ads", scheduleHandler.Create)
		api.GET("/api/scheduled-ads/:id", scheduleHandler.Get)
		api.PUT("/api/scheduled-ads/:id", scheduleHandler.Update)
		api.DELETE("/api/scheduled-ads/:id", scheduleHandler.Delete)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
