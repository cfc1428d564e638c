package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		realIP     string
		remoteAddr string
		want       string
	}{
		{"forwarded for first entry", "203.0.113.7, 10.0.0.1", "198.51.100.1", "192.0.2.1:1234", "203.0.113.7"},
		{"invalid forwarded for falls through", "unknown", "198.51.100.1", "192.0.2.1:1234", "198.51.100.1"},
		{"real ip", "", " 198.51.100.1 ", "192.0.2.1:1234", "198.51.100.1"},
		{"remote addr", "", "", "192.0.2.1:1234", "192.0.2.1"},
		{"ipv6 remote addr", "", "", "[2001:db8::1]:443", "2001:db8::1"},
		{"remote addr without port", "", "", "192.0.2.1", "192.0.2.1"},
		{"garbage", "", "", "pipe", "127.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}

			assert.Equal(t, tt.want, ExtractClientIP(req))
		})
	}
}
