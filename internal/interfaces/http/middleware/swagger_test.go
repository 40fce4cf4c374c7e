package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/interbanking/backend/internal/interfaces/http/dto"
)

func TestSwaggerProtection(t *testing.T) {
	tests := []struct {
		name       string
		cfg        SwaggerConfig
		remoteAddr string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "disabled",
			cfg:        SwaggerConfig{Enabled: false},
			remoteAddr: "127.0.0.1:40000",
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrCodeNotFound,
		},
		{
			name:       "enabled without whitelist",
			cfg:        SwaggerConfig{Enabled: true},
			remoteAddr: "203.0.113.7:40000",
			wantStatus: http.StatusOK,
		},
		{
			name:       "whitelisted address",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"127.0.0.1"}},
			remoteAddr: "127.0.0.1:40000",
			wantStatus: http.StatusOK,
		},
		{
			name:       "address outside whitelist",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"127.0.0.1"}},
			remoteAddr: "203.0.113.7:40000",
			wantStatus: http.StatusForbidden,
			wantCode:   dto.ErrCodeForbidden,
		},
		{
			name:       "address inside whitelisted network",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.0/8"}},
			remoteAddr: "10.20.30.40:40000",
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed entries are ignored",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"not-an-ip", "10.0.0.0/99"}},
			remoteAddr: "10.20.30.40:40000",
			wantStatus: http.StatusForbidden,
			wantCode:   dto.ErrCodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/swagger/*any", SwaggerProtection(tt.cfg), func(c *gin.Context) {
				c.String(http.StatusOK, "Interbanking API docs")
			})

			req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
			req.RemoteAddr = tt.remoteAddr
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Contains(t, w.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestIsIPAllowed(t *testing.T) {
	_, office, _ := net.ParseCIDR("192.168.10.0/24")
	ips := []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")}
	nets := []*net.IPNet{office}

	assert.True(t, isIPAllowed(net.ParseIP("127.0.0.1"), ips, nets))
	assert.True(t, isIPAllowed(net.ParseIP("::1"), ips, nets))
	assert.True(t, isIPAllowed(net.ParseIP("192.168.10.200"), ips, nets))
	assert.False(t, isIPAllowed(net.ParseIP("192.168.11.1"), ips, nets))
	assert.False(t, isIPAllowed(nil, ips, nets))
}
