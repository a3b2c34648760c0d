package events

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zkproofport/proofport-app-demo/pkg/logger"
)

type Handler struct {
	broadcaster *Broadcaster
	log         *logger.Logger
}

func NewHandler(broadcaster *Broadcaster) *Handler {
	return &Handler{broadcaster: broadcaster, log: logger.Default()}
}

// Stream godoc
// @Summary  Open a server-sent-events stream of proof callbacks
// @Produce  text/event-stream
// @Success  200
// @Router   /events [get]
func (h *Handler) Stream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	listener, err := NewStreamListener(c.Writer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	h.broadcaster.Add(listener)
	defer h.broadcaster.Remove(listener)

	// Acknowledge the subscription before any broadcast arrives so the
	// browser knows the channel is live.
	frame, err := EncodeFrame(NewConnected())
	if err == nil {
		if err := listener.WriteFrame(frame); err != nil {
			h.log.Debugf("Listener %s gone before acknowledgment", listener.ID())
			return
		}
	}

	h.log.Infof("Event stream opened: %s (%d connected)", listener.ID(), h.broadcaster.Len())

	// Push-only channel: nothing to do here until the client goes away.
	<-c.Request.Context().Done()

	h.log.Infof("Event stream closed: %s", listener.ID())
}
