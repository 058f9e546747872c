// Package i18n translates astrological terms for report output.
package i18n

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Languages lists the translated languages besides English.
var Languages = []string{"ru", "ko", "es"}

// Translate returns text in the requested language. English input is
// title-cased with underscores turned into spaces; unknown terms or
// languages fall back to that same English form. A trailing number, as
// in "house 3", is kept and only the leading word is looked up.
func Translate(text, lang string) string {
	if lang == "en" {
		return titled(text)
	}

	key := strings.ToLower(text)
	parts := strings.Fields(key)
	if len(parts) > 1 && isDigits(parts[1]) {
		if entry, ok := translations[parts[0]]; ok {
			base, ok := entry[lang]
			if !ok {
				base = titled(parts[0])
			}
			return base + " " + parts[1]
		}
	}

	if entry, ok := translations[key]; ok {
		if translated, ok := entry[lang]; ok {
			return translated
		}
	}
	return titled(text)
}

// A fresh Caser per call: cases.Caser carries transform state and must
// not be shared across goroutines.
func titled(text string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
