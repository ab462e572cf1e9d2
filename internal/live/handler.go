package live

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coder/websocket"
)

// Handler returns an HTTP handler that upgrades connections to websockets
// and runs them as Hub clients. allowedOrigins are full origins as used for
// CORS; same-host connections are always accepted. A comma-separated
// ?events= query selects the events the client starts with.
func Handler(hub *Hub, allowedOrigins []string) http.HandlerFunc {
	opts := &websocket.AcceptOptions{OriginPatterns: originPatterns(allowedOrigins)}

	return func(w http.ResponseWriter, r *http.Request) {
		// Server read/write timeouts would otherwise cut long-lived sockets.
		rc := http.NewResponseController(w)
		_ = rc.SetReadDeadline(time.Time{})
		_ = rc.SetWriteDeadline(time.Time{})

		conn, err := websocket.Accept(w, r, opts)
		if err != nil {
			hub.logger.WarnContext(r.Context(), "websocket accept", "error", err)
			return
		}
		defer conn.CloseNow()

		hub.logger.DebugContext(r.Context(), "live client connected", "remote", r.RemoteAddr)
		NewClient(hub, conn, strings.Split(r.URL.Query().Get("events"), ",")...).Run(r.Context())
		hub.logger.DebugContext(r.Context(), "live client disconnected", "remote", r.RemoteAddr)
	}
}

// originPatterns reduces origins such as "http://localhost:5173" to the host
// patterns websocket.AcceptOptions expects.
func originPatterns(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			out = append(out, u.Host)
			continue
		}
		out = append(out, o)
	}
	return out
}
