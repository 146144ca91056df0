package middleware

import (
	"net"
	"net/http"

	"github.com/assetbox/service/internal/response"
)

// AllowedHosts returns middleware that rejects requests whose Host header is
// not in the allowed list. When debug is true enforcement is skipped so local
// development works with any host. A port in the Host header is ignored when
// matching; "*" allows everything.
func AllowedHosts(hosts []string, debug bool) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		allowed[h] = struct{}{}
	}
	_, wildcard := allowed["*"]

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if debug || wildcard {
				next.ServeHTTP(w, r)
				return
			}

			host := r.Host
			if h, _, err := net.SplitHostPort(host); err == nil {
				host = h
			}
			if _, ok := allowed[host]; !ok {
				response.BadRequest(w, "invalid host header")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
