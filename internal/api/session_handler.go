package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/outlierSlug/dubhacks2025/internal/apperrors"
	"github.com/outlierSlug/dubhacks2025/internal/auth"
	"github.com/outlierSlug/dubhacks2025/internal/service"
	"github.com/sirupsen/logrus"
)

// SessionRequest is the login body.
type SessionRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse carries a bearer token for /api/me.
type SessionResponse struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
	Player    service.PlayerView `json:"player"`
}

// SessionHandler serves /api/sessions and /api/me.
type SessionHandler struct {
	players *service.PlayerService
	issuer  *auth.Issuer
	logger  *logrus.Logger
}

func NewSessionHandler(players *service.PlayerService, issuer *auth.Issuer, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{players: players, issuer: issuer, logger: logger}
}

// Create POST /api/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, "create session", err)
		return
	}
	p, err := h.players.Authenticate(c.Request.Context(), req.Username, req.Password)
	if apperrors.IsCode(err, apperrors.CodeNotFound) {
		err = apperrors.Wrap(apperrors.CodeUnauthenticated, err, "invalid username or password")
	}
	if err != nil {
		respondError(c, h.logger, "create session", err)
		return
	}

	token, exp, err := h.issuer.Issue(p.ID, req.Username)
	if err != nil {
		respondError(c, h.logger, "create session", err)
		return
	}
	c.JSON(http.StatusCreated, SessionResponse{
		Token:     token,
		ExpiresAt: exp,
		Player:    service.NewPlayerView(p, time.Now()),
	})
}

// Me GET /api/me
func (h *SessionHandler) Me(c *gin.Context) {
	s := sessionFrom(c)
	if s == nil {
		respondError(c, h.logger, "me", apperrors.New(apperrors.CodeUnauthenticated, "missing session"))
		return
	}
	v, err := h.players.Get(c.Request.Context(), s.PlayerID)
	if err != nil {
		respondError(c, h.logger, "me", err)
		return
	}
	c.JSON(http.StatusOK, v)
}
