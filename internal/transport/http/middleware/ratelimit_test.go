package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xrip       string
		want       string
	}{
		{"forwarded-for wins", "10.0.0.1:1234", "203.0.113.7, 10.0.0.1", "198.51.100.2", "203.0.113.7"},
		{"real-ip next", "10.0.0.1:1234", "", "198.51.100.2", "198.51.100.2"},
		{"socket address last", "10.0.0.1:1234", "", "", "10.0.0.1"},
		{"unparseable remote addr", "not-an-addr", "", "", "not-an-addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xrip != "" {
				r.Header.Set("X-Real-Ip", tt.xrip)
			}
			assert.Equal(t, tt.want, realIP(r))
		})
	}
}

func TestLimit_BlocksPastBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	h := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) int {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, send("10.0.0.1"))
	require.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))

	// a different client has its own bucket
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}
