package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyListParams(t *testing.T) {
	var search string
	var page int
	params := ListParams{
		"search": func(v string) { search = v },
		"page":   PageSetter(func(p int) { page = p }),
	}

	req := httptest.NewRequest(http.MethodGet, "/x?search=ali&page=abc", nil)
	assert.True(t, ApplyListParams(req, params))
	assert.Equal(t, "ali", search)
	assert.Equal(t, 1, page)

	req = httptest.NewRequest(http.MethodGet, "/x?search=", nil)
	assert.True(t, ApplyListParams(req, params))
	assert.Equal(t, "", search)

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	assert.False(t, ApplyListParams(req, params))
}

func TestSafeReturn(t *testing.T) {
	assert.Equal(t, "/dashboard/users", SafeReturn("/dashboard/users", "/"))
	assert.Equal(t, "/", SafeReturn("//evil.example", "/"))
	assert.Equal(t, "/", SafeReturn("https://evil.example", "/"))
	assert.Equal(t, "/fallback", SafeReturn("", "/fallback"))
}
