package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const eventWriteTimeout = 5 * time.Second

// streamEvents pushes content change events to a websocket client until
// either side goes away.
func (api *API) streamEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		api.logger.Warn("http.events.accept_failed", "error", err)
		return
	}
	defer conn.CloseNow()

	// Reads are not expected; CloseRead cancels ctx when the peer closes.
	ctx := conn.CloseRead(r.Context())
	events := api.store.Subscribe(ctx)
	api.logger.Debug("http.events.subscribed", "remote", r.RemoteAddr)

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case evt, ok := <-events:
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, eventWriteTimeout)
			err := wsjson.Write(writeCtx, conn, evt)
			cancel()
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					api.logger.Warn("http.events.write_failed", "key", evt.Key, "error", err)
				}
				return
			}
		}
	}
}
