package handlers

import (
	"net/http"
	"time"

	response "motomind/internal/adapter/http/dto/response"
	"motomind/internal/adapter/http/middleware"
	"motomind/internal/usecase"
	"motomind/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	connectionComponent = "connection.handler"
	statusEvent         = "status"
	defaultHeartbeat    = 25 * time.Second
)

// ConnectionHandler exposes the messaging-channel pairing state.
type ConnectionHandler struct {
	usecase   usecase.IConnectionUseCase
	heartbeat time.Duration
}

func NewConnectionHandler(uc usecase.IConnectionUseCase, heartbeat time.Duration) *ConnectionHandler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &ConnectionHandler{usecase: uc, heartbeat: heartbeat}
}

// GetStatus godoc
// @Summary Current connection state
// @Tags connection
// @Produce json
// @Success 200 {object} response.ConnectionResponse
// @Security BearerAuth
// @Router /connection [get]
func (h *ConnectionHandler) GetStatus(c *gin.Context) {
	s, err := h.usecase.Status(c.Request.Context(), middleware.WorkshopID(c))
	if err != nil {
		writeError(c, connectionComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// Connect godoc
// @Summary Ask the provider to start pairing
// @Description The new state arrives on the events stream.
// @Tags connection
// @Produce json
// @Success 202 {object} response.ConnectionResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /connection/connect [post]
func (h *ConnectionHandler) Connect(c *gin.Context) {
	s, err := h.usecase.RequestConnect(c.Request.Context(), middleware.WorkshopID(c))
	if err != nil {
		writeError(c, connectionComponent, err)
		return
	}
	c.JSON(http.StatusAccepted, response.FromSession(s))
}

// CancelPairing godoc
// @Summary Abandon a pending pairing
// @Tags connection
// @Produce json
// @Success 200 {object} response.ConnectionResponse
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /connection/cancel [post]
func (h *ConnectionHandler) CancelPairing(c *gin.Context) {
	s, err := h.usecase.CancelPairing(c.Request.Context(), middleware.WorkshopID(c))
	if err != nil {
		writeError(c, connectionComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// Events godoc
// @Summary Stream connection snapshots
// @Description Server-Sent Events. The first "status" event is the current snapshot.
// @Tags connection
// @Produce text/event-stream
// @Success 200 {object} response.ConnectionResponse
// @Security BearerAuth
// @Router /connection/events [get]
func (h *ConnectionHandler) Events(c *gin.Context) {
	ctx := c.Request.Context()
	workshopID := middleware.WorkshopID(c)

	snap, sub, err := h.usecase.Observe(ctx, workshopID)
	if err != nil {
		writeError(c, connectionComponent, err)
		return
	}
	defer sub.Close()

	log := logger.WithComponent(connectionComponent).With().Str("workshop_id", workshopID).Logger()
	log.Debug().Msg("status stream opened")
	defer log.Debug().Msg("status stream closed")

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	c.SSEvent(statusEvent, response.FromSession(snap))
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-sub.C():
			if !ok {
				return
			}
			c.SSEvent(statusEvent, response.FromSession(s))
			c.Writer.Flush()
		case <-ticker.C:
			if _, err := c.Writer.WriteString(": keep-alive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}
