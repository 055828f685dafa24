package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"btmportal/middleware"
	"btmportal/services/currency"
)

func newCurrencyRouter(t *testing.T) (*gin.Engine, *currency.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	conv, err := currency.NewConverter(1505)
	require.NoError(t, err)

	store := currency.NewMemoryStore()
	h := NewCurrencyHandler(store, conv, zap.NewNop())

	r := gin.New()
	r.Use(middleware.SessionMiddleware())
	r.GET("/api/currency", h.Get)
	r.POST("/api/currency", h.Set)
	r.POST("/api/currency/toggle", h.Toggle)
	return r, store
}

func doCurrency(r *gin.Engine, method, path, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCurrency_DefaultsToNGN(t *testing.T) {
	r, _ := newCurrencyRouter(t)

	w := doCurrency(r, http.MethodGet, "/api/currency", "s1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Currency string  `json:"currency"`
		Rate     float64 `json:"rate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NGN", resp.Currency)
	assert.Equal(t, 1505.0, resp.Rate)
}

func TestCurrency_ToggleIsSessionScoped(t *testing.T) {
	r, _ := newCurrencyRouter(t)

	w := doCurrency(r, http.MethodPost, "/api/currency/toggle", "s1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.Contains(w.Body.Bytes(), []byte("USD")))

	// Another session still reads the default.
	w = doCurrency(r, http.MethodGet, "/api/currency", "s2", "")
	assert.True(t, bytes.Contains(w.Body.Bytes(), []byte("NGN")))
}

func TestCurrency_SetRejectsUnknownCodes(t *testing.T) {
	r, store := newCurrencyRouter(t)

	w := doCurrency(r, http.MethodPost, "/api/currency", "s1", `{"currency":"EUR"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	code, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, currency.NGN, code, "a rejected set must not touch the session")
}

func TestCurrency_MintsSessionWhenHeaderMissing(t *testing.T) {
	r, _ := newCurrencyRouter(t)

	w := doCurrency(r, http.MethodGet, "/api/currency", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.SessionHeader))
}
