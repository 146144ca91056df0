package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAllowedHosts(t *testing.T) {
	tests := []struct {
		name       string
		hosts      []string
		debug      bool
		reqHost    string
		wantStatus int
	}{
		{"allowed host", []string{"example.com"}, false, "example.com", http.StatusOK},
		{"allowed host with port", []string{"example.com"}, false, "example.com:8080", http.StatusOK},
		{"unknown host", []string{"example.com"}, false, "evil.test", http.StatusBadRequest},
		{"debug bypasses check", []string{"example.com"}, true, "evil.test", http.StatusOK},
		{"wildcard allows all", []string{"*"}, false, "anything.test", http.StatusOK},
		{"empty list rejects", nil, false, "example.com", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AllowedHosts(tt.hosts, tt.debug)(okHandler())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Host = tt.reqHost
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
