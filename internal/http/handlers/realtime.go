package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/chirp-backend/internal/pkg/logger"
	"github.com/yungbote/chirp-backend/internal/realtime"
)

type RealtimeHandler struct {
	log *logger.Logger
	hub *realtime.SSEHub
}

func NewRealtimeHandler(log *logger.Logger, hub *realtime.SSEHub) *RealtimeHandler {
	return &RealtimeHandler{
		log: log.With("handler", "RealtimeHandler"),
		hub: hub,
	}
}

// Stream opens an SSE connection scoped to one session. The client receives
// assessment and configuration updates for that session until it disconnects.
func (h *RealtimeHandler) Stream(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}

	client := h.hub.NewSSEClient()
	h.hub.AddChannel(client, id.String())
	h.log.Info("sse stream open", "session_id", id, "client_id", client.ID)

	h.hub.ServeStream(c.Writer, c.Request, client)

	h.hub.RemoveClient(client)
	h.log.Info("sse stream closed", "session_id", id, "client_id", client.ID)
}
