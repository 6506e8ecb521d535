package prefs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/odyssey-admin/internal/shared"
)

var validate = validator.New()

// Store holds one browser's preferences and notifies listeners on change.
type Store struct {
	mu        sync.Mutex
	prefs     Preferences
	listeners []func(Preferences)
}

// NewStore returns a Store starting at p.
func NewStore(p Preferences) *Store {
	return &Store{prefs: p}
}

// Get returns the current preferences.
func (s *Store) Get() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// Subscribe registers fn for every subsequent change.
func (s *Store) Subscribe(fn func(Preferences)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// SetLanguage switches the UI language.
func (s *Store) SetLanguage(lang string) error {
	if err := validate.Var(lang, "oneof=en ar"); err != nil {
		return shared.ErrInvalidPreference
	}
	s.update(func(p *Preferences) { p.Language = lang })
	return nil
}

// SetTheme switches the colour theme.
func (s *Store) SetTheme(theme string) error {
	if err := validate.Var(theme, "oneof=corporate modern minimal"); err != nil {
		return shared.ErrInvalidPreference
	}
	s.update(func(p *Preferences) { p.Theme = theme })
	return nil
}

// Apply sets language and theme together. Empty values are left alone; if
// either value is unsupported nothing changes.
func (s *Store) Apply(lang, theme string) error {
	if lang != "" && validate.Var(lang, "oneof=en ar") != nil {
		return shared.ErrInvalidPreference
	}
	if theme != "" && validate.Var(theme, "oneof=corporate modern minimal") != nil {
		return shared.ErrInvalidPreference
	}
	if lang == "" && theme == "" {
		return nil
	}
	s.update(func(p *Preferences) {
		if lang != "" {
			p.Language = lang
		}
		if theme != "" {
			p.Theme = theme
		}
	})
	return nil
}

// ToggleMode flips between light and dark.
func (s *Store) ToggleMode() {
	s.update(func(p *Preferences) {
		if p.Mode == ModeDark {
			p.Mode = ModeLight
		} else {
			p.Mode = ModeDark
		}
	})
}

// ToggleLanguage flips between English and Arabic.
func (s *Store) ToggleLanguage() {
	s.update(func(p *Preferences) {
		if p.Language == "ar" {
			p.Language = "en"
		} else {
			p.Language = "ar"
		}
	})
}

// ToggleSidebar flips the collapsed flag.
func (s *Store) ToggleSidebar() {
	s.update(func(p *Preferences) { p.SidebarCollapsed = !p.SidebarCollapsed })
}

func (s *Store) update(fn func(*Preferences)) {
	s.mu.Lock()
	fn(&s.prefs)
	current := s.prefs
	listeners := make([]func(Preferences), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(current)
	}
}

// Service opens preference stores backed by Storage.
type Service struct {
	storage Storage
	logger  *slog.Logger
}

// NewService constructs a Service.
func NewService(storage Storage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{storage: storage, logger: logger}
}

// Open loads clientID's preferences, falling back to defaults for
// fallbackLang, and returns a store that saves on every change.
func (s *Service) Open(ctx context.Context, clientID, fallbackLang string) (*Store, error) {
	p, ok, err := s.storage.Load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if ok {
		p = sanitize(p, fallbackLang)
	} else {
		p = Defaults(fallbackLang)
	}
	st := NewStore(p)
	st.Subscribe(func(p Preferences) {
		if err := s.storage.Save(context.WithoutCancel(ctx), clientID, p); err != nil {
			s.logger.Warn("save preferences", slog.String("client", clientID), slog.Any("error", err))
		}
	})
	return st, nil
}

// sanitize replaces each unsupported stored value with its default.
func sanitize(p Preferences, fallbackLang string) Preferences {
	def := Defaults(fallbackLang)
	if validate.Var(p.Language, "oneof=en ar") != nil {
		p.Language = def.Language
	}
	if validate.Var(p.Theme, "oneof=corporate modern minimal") != nil {
		p.Theme = def.Theme
	}
	if validate.Var(p.Mode, "oneof=light dark") != nil {
		p.Mode = def.Mode
	}
	return p
}
