package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outlierSlug/dubhacks2025/internal/service"
	"github.com/sirupsen/logrus"
)

// EventHandler serves /api/events and the roster endpoints under it.
type EventHandler struct {
	events     *service.EventService
	enrollment *service.EnrollmentService
	logger     *logrus.Logger
}

func NewEventHandler(events *service.EventService, enrollment *service.EnrollmentService, logger *logrus.Logger) *EventHandler {
	return &EventHandler{events: events, enrollment: enrollment, logger: logger}
}

// Create POST /api/events
func (h *EventHandler) Create(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, "create event", err)
		return
	}
	v, err := h.events.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, "create event", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// List GET /api/events
func (h *EventHandler) List(c *gin.Context) {
	list, err := h.events.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list events", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get GET /api/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, "get event", err)
		return
	}
	v, err := h.events.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "get event", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Delete DELETE /api/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, "delete event", err)
		return
	}
	if err := h.events.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "delete event", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPlayer PATCH /api/events/:id/add_player
func (h *EventHandler) AddPlayer(c *gin.Context) {
	eventID, req, ok := h.enrollmentArgs(c, "add player")
	if !ok {
		return
	}
	v, err := h.enrollment.AddPlayer(c.Request.Context(), eventID, req.PlayerID)
	if err != nil {
		respondError(c, h.logger, "add player", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// RemovePlayer PATCH /api/events/:id/remove_player
func (h *EventHandler) RemovePlayer(c *gin.Context) {
	eventID, req, ok := h.enrollmentArgs(c, "remove player")
	if !ok {
		return
	}
	res, err := h.enrollment.RemovePlayer(c.Request.Context(), eventID, req.PlayerID)
	if err != nil {
		respondError(c, h.logger, "remove player", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *EventHandler) enrollmentArgs(c *gin.Context, op string) (int64, *service.EnrollmentRequest, bool) {
	eventID, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, op, err)
		return 0, nil, false
	}
	var req service.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, op, err)
		return 0, nil, false
	}
	return eventID, &req, true
}
