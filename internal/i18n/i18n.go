// Package i18n holds the locale-keyed translation bundles. The locale set
// is fixed at build time; bundles are plain JSON files embedded into the
// binary and looked up by dotted path ("Forms.errorMessage").
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed locales/*.json
var localeFS embed.FS

// Locales is the fixed, statically enumerated locale set. Order matters:
// the first entry is the default used for the bare-root redirect.
var Locales = []string{"en", "es"}

func IsSupported(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}

// Bundle is one locale's catalog: section -> key -> string.
type Bundle struct {
	locale   string
	sections map[string]map[string]string
}

// Load parses the embedded catalog for locale. Unrecognized locales are an
// error, never a fallback.
func Load(locale string) (*Bundle, error) {
	if !IsSupported(locale) {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	raw, err := localeFS.ReadFile("locales/" + locale + ".json")
	if err != nil {
		return nil, err
	}
	var sections map[string]map[string]string
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, fmt.Errorf("locale %s: %w", locale, err)
	}
	return &Bundle{locale: locale, sections: sections}, nil
}

func (b *Bundle) Locale() string { return b.locale }

// T looks up section.key, returning the key itself when the string is
// missing so a gap shows up in the page instead of hiding.
func (b *Bundle) T(section, key string) string {
	if s, ok := b.sections[section]; ok {
		if v, ok := s[key]; ok {
			return v
		}
	}
	return section + "." + key
}
