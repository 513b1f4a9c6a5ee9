package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/event"
	"app/internal/middleware"
)

// /events のHTTP。注文イベントをSSEでスタッフ画面へ流す
// （ポーリングの代わりにプロセス内の購読者へ即時配信する側）。
type EventsHandler struct {
	bus *event.Bus
}

// DI
func NewEventsHandler(bus *event.Bus) *EventsHandler {
	return &EventsHandler{bus: bus}
}

func (h *EventsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/events", h.stream, middleware.StaffGuard())
}

func (h *EventsHandler) stream(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ch, cancel := h.bus.Subscribe()
	defer cancel()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			data, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
