package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outlierSlug/dubhacks2025/internal/service"
	"github.com/sirupsen/logrus"
)

type RecommendationHandler struct {
	recommender *service.RecommendationService
	logger      *logrus.Logger
}

func NewRecommendationHandler(recommender *service.RecommendationService, logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{recommender: recommender, logger: logger}
}

// ForPlayer GET /api/recommendations/:player_id
func (h *RecommendationHandler) ForPlayer(c *gin.Context) {
	id, err := pathID(c, "player_id")
	if err != nil {
		respondError(c, h.logger, "recommendations", err)
		return
	}
	list, err := h.recommender.ForPlayer(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "recommendations", err)
		return
	}
	c.JSON(http.StatusOK, list)
}
