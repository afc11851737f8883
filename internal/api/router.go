package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/outlierSlug/dubhacks2025/internal/auth"
	"github.com/outlierSlug/dubhacks2025/internal/config"
	"github.com/outlierSlug/dubhacks2025/internal/interfaces"
	"github.com/outlierSlug/dubhacks2025/internal/repository"
	"github.com/outlierSlug/dubhacks2025/internal/service"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers over db and returns the gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB, cache interfaces.RecommendationCache, logger *logrus.Logger) *gin.Engine {
	playerRepo := repository.NewPlayerRepository(db)
	eventRepo := repository.NewEventRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	playerSvc := service.NewPlayerService(playerRepo, accountRepo, cache, logger)
	eventSvc := service.NewEventService(eventRepo, cache, logger)
	enrollSvc := service.NewEnrollmentService(playerRepo, eventRepo, cache, logger)
	recommender := service.NewRecommendationService(playerRepo, eventRepo, cache, cfg.Recommendation.RatingWindow, logger)
	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))
	r.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))
	if cfg.Server.Pprof {
		pprof.Register(r)
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Tennis Organizer API is up and running!"})
	})
	r.GET("/health", healthHandler(db))

	players := NewPlayerHandler(playerSvc, logger)
	events := NewEventHandler(eventSvc, enrollSvc, logger)
	recommendations := NewRecommendationHandler(recommender, logger)
	sessions := NewSessionHandler(playerSvc, issuer, logger)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/players", players.Register)
		apiGroup.GET("/players", players.Lookup)
		apiGroup.GET("/player", players.Lookup)
		apiGroup.GET("/players/:id", players.Get)
		apiGroup.PATCH("/players/:id", players.Update)

		apiGroup.POST("/events", events.Create)
		apiGroup.GET("/events", events.List)
		apiGroup.GET("/events/:id", events.Get)
		apiGroup.DELETE("/events/:id", events.Delete)
		apiGroup.PATCH("/events/:id/add_player", events.AddPlayer)
		apiGroup.PATCH("/events/:id/remove_player", events.RemovePlayer)

		apiGroup.GET("/recommendations/:player_id", recommendations.ForPlayer)

		apiGroup.POST("/sessions", sessions.Create)
		apiGroup.GET("/me", RequireSession(issuer, logger), sessions.Me)
	}
	return r
}

// corsConfig allows credentials for the listed origins; an empty list opens the API to any origin without credentials.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
