package view

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine()
	assert.NoError(t, err, "Templates should parse without error")
	assert.NotNil(t, engine)
	for _, page := range []string{"login.html", "users.html", "orders.html", "order_detail.html", "products.html", "notifications.html", "settings.html", "analytics.html"} {
		assert.True(t, engine.Has(page), page)
	}
}

func TestRendererAppliesLayout(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)
	rr := NewRenderer(engine, func(*http.Request) Layout {
		return Layout{Lang: "ar", Dir: "rtl", Theme: "minimal", ModeClass: "dark", Toasts: []ToastView{{ID: "t1", Kind: "success", Message: "hello toast"}}}
	}, nil)

	res := httptest.NewRecorder()
	rr.Page(res, httptest.NewRequest(http.MethodGet, "/login", nil), http.StatusTeapot, "login.html", "login.title", nil)

	assert.Equal(t, http.StatusTeapot, res.Code)
	body := res.Body.String()
	assert.True(t, strings.Contains(body, `dir="rtl"`), body)
	assert.Contains(t, body, `data-theme="minimal"`)
	assert.Contains(t, body, "hello toast")
	assert.Contains(t, body, "تسجيل الدخول")
}
