package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func requestContext(t *testing.T, remoteAddr string, headers map[string]string) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.Request = req
	return c
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "forwarded chain takes the first hop",
			remoteAddr: "10.0.0.1:443",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"},
			want:       "203.0.113.7",
		},
		{
			name:       "real ip header as fallback",
			remoteAddr: "10.0.0.1:443",
			headers:    map[string]string{"X-Real-IP": " 203.0.113.9 "},
			want:       "203.0.113.9",
		},
		{
			name:       "remote addr with port stripped",
			remoteAddr: "203.0.113.11:51234",
			want:       "203.0.113.11",
		},
		{
			name:       "remote addr without port passes through",
			remoteAddr: "203.0.113.12",
			want:       "203.0.113.12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := requestContext(t, tt.remoteAddr, tt.headers)
			assert.Equal(t, tt.want, getClientIP(c))
		})
	}
}
