package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goldledger/backend/internal/interfaces/http/dto"
	"github.com/goldledger/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticStats middleware.IdempotencyStats

func (s staticStats) Stats() middleware.IdempotencyStats {
	return middleware.IdempotencyStats(s)
}

func TestNewSystemHandler(t *testing.T) {
	h := NewSystemHandler("", nil)
	assert.NotNil(t, h)
	assert.False(t, h.startTime.IsZero())
	assert.Equal(t, "1.0.0", h.version)
}

func TestSystemHandler_Banner(t *testing.T) {
	h := NewSystemHandler("", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)

	h.Banner(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Goldsmith Ledger API"}`, w.Body.String())
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	h := NewSystemHandler("2.1.0", staticStats{Reserved: 5, Duplicates: 2})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/system/info", nil)

	h.GetSystemInfo(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "Goldsmith Ledger API", data["name"])
	assert.Equal(t, "2.1.0", data["version"])
	assert.NotEmpty(t, data["go_version"])
	assert.NotEmpty(t, data["uptime"])

	idem := data["idempotency"].(map[string]any)
	assert.Equal(t, float64(5), idem["reserved"])
	assert.Equal(t, float64(2), idem["duplicates"])
}

func TestSystemHandler_GetSystemInfo_WithoutIdempotency(t *testing.T) {
	h := NewSystemHandler("", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/system/info", nil)

	h.GetSystemInfo(c)

	assert.NotContains(t, w.Body.String(), "idempotency")
}

func TestSystemHandler_Ping(t *testing.T) {
	h := NewSystemHandler("", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/system/ping", nil)

	h.Ping(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "pong", data["message"])

	_, err = time.Parse(time.RFC3339, data["timestamp"].(string))
	assert.NoError(t, err)
}
