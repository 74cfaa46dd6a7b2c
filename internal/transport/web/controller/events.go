package controller

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/jbeshir/movie-userdata/internal/domain"
	"github.com/jbeshir/movie-userdata/internal/transport/web/events"
)

// Events upgrades the request to a websocket and streams the caller's change events over it.
type Events struct {
	Hub      *events.Hub
	Upgrader websocket.Upgrader
}

func (c Events) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := c.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "unable to upgrade event stream connection", "error", err)
		return
	}

	c.Hub.Attach(r.Context(), conn, domain.UserIDFromContext(r.Context()))
}
