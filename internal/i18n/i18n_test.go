package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiate(t *testing.T) {
	cases := map[string]string{
		"":                        English,
		"ar-EG,ar;q=0.9,en;q=0.8": Arabic,
		"ar":                      Arabic,
		"en-US,en;q=0.9":          English,
		"fr-FR,fr;q=0.9":          English,
	}
	for header, want := range cases {
		assert.Equal(t, want, Negotiate(header), "header %q", header)
	}
}

func TestTranslateFallsBack(t *testing.T) {
	assert.Equal(t, "Users", T(English, "users.title"))
	assert.Equal(t, "المستخدمون", T(Arabic, "users.title"))
	assert.Equal(t, "Users", T("fr", "users.title"))
	assert.Equal(t, "missing.key", T(Arabic, "missing.key"))
}

func TestTablesHaveSameKeys(t *testing.T) {
	for key := range english {
		_, ok := arabic[key]
		assert.True(t, ok, "arabic table missing %q", key)
	}
	for key := range arabic {
		_, ok := english[key]
		assert.True(t, ok, "english table missing %q", key)
	}
}

func TestDir(t *testing.T) {
	assert.Equal(t, "rtl", Dir(Arabic))
	assert.Equal(t, "ltr", Dir(English))
	assert.True(t, Supported("ar"))
	assert.False(t, Supported("fr"))
}
