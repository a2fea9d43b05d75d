package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/YuliaRizki/nailBook/internal/events"
	"github.com/YuliaRizki/nailBook/internal/middleware"
)

type EventsHandler struct {
	broker *events.RedisBroker
}

func NewEventsHandler(broker *events.RedisBroker) *EventsHandler {
	return &EventsHandler{broker: broker}
}

// Stream pushes appointment change notifications to the client as SSE.
// Events for other users are filtered out; the payload itself carries no
// meaning to the client beyond "something changed, refetch".
func (h *EventsHandler) Stream(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ctx := c.Request.Context()
	ch := h.broker.Subscribe(ctx)

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			if ev.UserID != userID {
				return true
			}
			c.SSEvent("change", ev)
			return true
		}
	})
}
