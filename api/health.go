package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	startupTime time.Time
}

func newHealthHandler(startupTime time.Time) healthHandler {
	return healthHandler{
		responder:   NewResponder(log.With().Str("handlerName", "healthHandler").Logger()),
		startupTime: startupTime,
	}
}

// @Router /health [get]
func (h healthHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{"status": "ok"}
		if !h.startupTime.IsZero() {
			response["startedAt"] = h.startupTime.UTC().Format(time.RFC3339)
			response["uptimeSeconds"] = int(time.Since(h.startupTime).Seconds())
		}
		h.responder.WriteJSON(w, response)
	}
}
