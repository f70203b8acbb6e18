package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goldledger/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
)

func serveSwagger(cfg SwaggerConfig, remoteAddr string) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/swagger/*any", SwaggerProtection(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "swagger"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestSwaggerProtection_Disabled(t *testing.T) {
	w := serveSwagger(SwaggerConfig{Enabled: false}, "127.0.0.1:1234")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrCodeNotFound)
}

func TestSwaggerProtection_Enabled_NoRestrictions(t *testing.T) {
	w := serveSwagger(SwaggerConfig{Enabled: true}, "203.0.113.9:1234")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSwaggerProtection_IPWhitelist(t *testing.T) {
	cfg := SwaggerConfig{Enabled: true, AllowedIPs: []string{"192.168.1.10", "10.0.0.0/8"}}

	tests := []struct {
		name   string
		remote string
		code   int
	}{
		{"exact ip allowed", "192.168.1.10:5000", http.StatusOK},
		{"cidr member allowed", "10.20.30.40:5000", http.StatusOK},
		{"other ip denied", "192.168.1.11:5000", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveSwagger(cfg, tt.remote)
			assert.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), dto.ErrCodeForbidden)
			}
		})
	}
}

func TestIsIPAllowed(t *testing.T) {
	ips, nets := parseAllowList([]string{"127.0.0.1", " 172.16.0.0/12 ", "not-an-ip", "10.0.0.0/33"})

	assert.Len(t, ips, 1)
	assert.Len(t, nets, 1)
	assert.True(t, isIPAllowed(net.ParseIP("127.0.0.1"), ips, nets))
	assert.True(t, isIPAllowed(net.ParseIP("172.20.1.1"), ips, nets))
	assert.False(t, isIPAllowed(net.ParseIP("8.8.8.8"), ips, nets))
	assert.False(t, isIPAllowed(nil, ips, nets))
}
