package shared

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureTokenIsStablePerSession(t *testing.T) {
	m := NewCSRFManager("secret")
	sess := &Session{ID: "abc"}

	first, err := m.EnsureToken(context.Background(), sess)
	require.NoError(t, err)
	second, err := m.EnsureToken(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, first, sess.Get(CSRFSessionKey))

	_, err = m.EnsureToken(context.Background(), nil)
	assert.Error(t, err)
}

func TestVerifyRequestReadsFormOrHeader(t *testing.T) {
	m := NewCSRFManager("secret")
	sess := &Session{ID: "abc"}
	token, err := m.EnsureToken(context.Background(), sess)
	require.NoError(t, err)

	form := url.Values{CSRFFormField: {token}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = req.WithContext(ContextWithSession(req.Context(), sess))
	assert.NoError(t, m.VerifyRequest(req))

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(CSRFHeader, token)
	req = req.WithContext(ContextWithSession(req.Context(), sess))
	assert.NoError(t, m.VerifyRequest(req))

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(CSRFHeader, "wrong")
	req = req.WithContext(ContextWithSession(req.Context(), sess))
	assert.ErrorIs(t, m.VerifyRequest(req), ErrCSRFTokenMismatch)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	assert.ErrorIs(t, m.VerifyRequest(req), ErrCSRFTokenMissing)
}
