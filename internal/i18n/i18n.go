// Package i18n holds the static English and Arabic string tables.
package i18n

import (
	"golang.org/x/text/language"
)

const (
	English = "en"
	Arabic  = "ar"
)

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Supported reports whether lang has a string table.
func Supported(lang string) bool {
	return lang == English || lang == Arabic
}

// Negotiate picks a language from an Accept-Language header value.
// Anything that is not Arabic falls back to English.
func Negotiate(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if idx == 1 && conf != language.No {
		return Arabic
	}
	return English
}

// Dir returns the text direction for lang.
func Dir(lang string) string {
	if lang == Arabic {
		return "rtl"
	}
	return "ltr"
}

// T looks key up in lang's table, falling back to English and then to key.
func T(lang, key string) string {
	if lang == Arabic {
		if v, ok := arabic[key]; ok {
			return v
		}
	}
	if v, ok := english[key]; ok {
		return v
	}
	return key
}
