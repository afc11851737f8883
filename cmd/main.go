package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/outlierSlug/dubhacks2025/internal/api"
	"github.com/outlierSlug/dubhacks2025/internal/cache"
	"github.com/outlierSlug/dubhacks2025/internal/config"
	"github.com/outlierSlug/dubhacks2025/internal/database"
	"github.com/outlierSlug/dubhacks2025/internal/interfaces"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 2. logger
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	if cfg.Server.Mode == gin.DebugMode {
		logger.SetLevel(logrus.DebugLevel)
	}
	logger.Info("config loaded")
	if cfg.Auth.JWTSecret == config.DevJWTSecret {
		logger.Warn("using the development JWT secret; set JWT_SECRET before running in release mode")
	}

	// 3. database (created and migrated if missing)
	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	logger.WithField("driver", cfg.Database.Driver).Info("database ready")

	// 4. recommendation cache, optional
	var recCache interfaces.RecommendationCache = cache.Nop{}
	if cfg.Redis.Addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		cancel()
		if err != nil {
			logger.WithError(err).Warn("redis unavailable, recommendations will not be cached")
		} else {
			defer client.Close()
			recCache = cache.NewRedisCache(client, cfg.Redis.TTL, logger)
			logger.WithField("addr", cfg.Redis.Addr).Info("recommendation cache enabled")
		}
	}

	// 5. http
	gin.SetMode(cfg.Server.Mode)
	r := api.NewRouter(cfg, db, recCache, logger)
	logger.Infof("gin mode: %s", cfg.Server.Mode)

	port := cfg.Server.Port
	logger.Infof("listening on :%d", port)
	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil {
		logger.Fatalf("run server: %v", err)
	}
}
