package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outlierSlug/dubhacks2025/internal/service"
	"github.com/sirupsen/logrus"
)

// PlayerHandler serves /api/players.
type PlayerHandler struct {
	players *service.PlayerService
	logger  *logrus.Logger
}

func NewPlayerHandler(players *service.PlayerService, logger *logrus.Logger) *PlayerHandler {
	return &PlayerHandler{players: players, logger: logger}
}

// Register POST /api/players
func (h *PlayerHandler) Register(c *gin.Context) {
	var req service.RegisterPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, "register player", err)
		return
	}
	v, err := h.players.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, "register player", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// Lookup GET /api/players?username=&password=
// Without credentials it lists every player without contact details.
func (h *PlayerHandler) Lookup(c *gin.Context) {
	username, hasUser := c.GetQuery("username")
	password, hasPass := c.GetQuery("password")
	if !hasUser && !hasPass {
		list, err := h.players.List(c.Request.Context())
		if err != nil {
			respondError(c, h.logger, "list players", err)
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	v, err := h.players.GetByCredentials(c.Request.Context(), username, password)
	if err != nil {
		respondError(c, h.logger, "player by credentials", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Get GET /api/players/:id
func (h *PlayerHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, "get player", err)
		return
	}
	v, err := h.players.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "get player", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Update PATCH /api/players/:id
func (h *PlayerHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, "update player", err)
		return
	}
	var req service.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, "update player", err)
		return
	}
	v, err := h.players.UpdateProfile(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, "update player", err)
		return
	}
	c.JSON(http.StatusOK, v)
}
