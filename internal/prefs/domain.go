// Package prefs persists the cross-cutting UI preferences (language, theme,
// light/dark mode, sidebar state) per browser.
package prefs

import "github.com/odyssey-erp/odyssey-admin/internal/i18n"

// Theme and mode values.
const (
	ThemeCorporate = "corporate"
	ThemeModern    = "modern"
	ThemeMinimal   = "minimal"

	ModeLight = "light"
	ModeDark  = "dark"
)

// Themes lists the selectable themes in display order.
var Themes = []string{ThemeCorporate, ThemeModern, ThemeMinimal}

// Preferences is the persisted shape.
type Preferences struct {
	Language         string `json:"language" validate:"oneof=en ar"`
	Theme            string `json:"appTheme" validate:"oneof=corporate modern minimal"`
	Mode             string `json:"theme" validate:"oneof=light dark"`
	SidebarCollapsed bool   `json:"sidebarCollapsed"`
}

// Defaults returns the preferences of a first visit.
func Defaults(lang string) Preferences {
	if !i18n.Supported(lang) {
		lang = i18n.English
	}
	return Preferences{Language: lang, Theme: ThemeModern, Mode: ModeLight}
}

// Dir is the document text direction.
func (p Preferences) Dir() string {
	return i18n.Dir(p.Language)
}

// ModeClass is the root element class toggled for dark mode.
func (p Preferences) ModeClass() string {
	if p.Mode == ModeDark {
		return "dark"
	}
	return ""
}

// Dark reports whether dark mode is on.
func (p Preferences) Dark() bool {
	return p.Mode == ModeDark
}
