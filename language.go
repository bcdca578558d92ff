package phytocure

import "strings"

// Language is a supported display language.
type Language string

// Supported languages.
const (
	English Language = "English"
	Spanish Language = "Español"
	Hindi   Language = "हिंदी"
	French  Language = "Français"
)

// Languages lists supported languages in menu order.
var Languages = []Language{English, Spanish, Hindi, French}

// Messages holds the localized display strings.
type Messages struct {
	Title       string
	Placeholder string
}

// Translations maps each language to its display strings.
type Translations map[Language]Messages

// DefaultTranslations returns the built-in translations.
func DefaultTranslations() Translations {
	return Translations{
		English: {
			Title:       "🌿 PhytoCure - Plant-Based Drug Discovery",
			Placeholder: "Enter botanical name...",
		},
		Spanish: {
			Title:       "🌿 PhytoCure - Descubrimiento de Medicamentos Basados en Plantas",
			Placeholder: "Ingrese el nombre botánico...",
		},
		Hindi: {
			Title:       "🌿 फाइटोक्योर - पौधे आधारित औषधि खोज",
			Placeholder: "वनस्पति नाम दर्ज करें...",
		},
		French: {
			Title:       "🌿 PhytoCure - Découverte de médicaments à base de plantes",
			Placeholder: "Entrez le nom botanique...",
		},
	}
}

// Messages returns the display strings for lang, falling back to English.
func (t Translations) Messages(lang Language) Messages {
	if m, ok := t[lang]; ok {
		return m
	}
	return t[English]
}

var languageCodes = map[string]Language{
	"en": English,
	"es": Spanish,
	"hi": Hindi,
	"fr": French,
}

// ParseLanguage resolves a language from its ISO 639-1 code or its
// display name. Matching is case-insensitive.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if lang, ok := languageCodes[strings.ToLower(s)]; ok {
		return lang, nil
	}
	for _, lang := range Languages {
		if strings.EqualFold(s, string(lang)) {
			return lang, nil
		}
	}
	return "", Errorf(EINVALID, "unsupported language %q (use en, es, hi or fr)", s)
}
