package api

import (
	"net/http"
	"strings"

	"github.com/authors-haven/backend/auth"
	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/realtime"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type wsHandler struct {
	responder Responder
	logger    zerolog.Logger
	hub       *realtime.Hub
	upgrader  websocket.Upgrader
}

func newWsHandler(hub *realtime.Hub) wsHandler {
	logger := log.With().Str("handlerName", "wsHandler").Logger()

	return wsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		hub:       hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin is enforced by the CORS layer in front of the router
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// notificationStream upgrades the connection and streams the caller's
// notifications until the socket closes. Browsers cannot set headers on a
// websocket handshake, so the token may also arrive as a query parameter.
func (h wsHandler) notificationStream() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		}
		claims, err := auth.ValidateToken(token)
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid or expired token"))
			return
		}

		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to upgrade notification connection")
			return
		}

		h.logger.Info().Str("username", claims.Username).Msg("Notification connection opened")
		h.hub.Register(claims.Username, conn)
	}
}
