package i18n

import "strings"

// Locale identifies one of the two supported storefront languages.
// The value is carried explicitly through request handling; there is no
// ambient process-wide language state.
type Locale string

const (
	LocaleArabic  Locale = "ar"
	LocaleEnglish Locale = "en"
)

// ParseLocale normalizes a raw locale string ("ar", "en", "en-US",
// Accept-Language fragments). Arabic is the storefront default.
func ParseLocale(raw string) Locale {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "en" || strings.HasPrefix(raw, "en-") || strings.HasPrefix(raw, "en_") {
		return LocaleEnglish
	}
	return LocaleArabic
}

// IsArabic reports whether l renders right-to-left Arabic copy.
func (l Locale) IsArabic() bool {
	return l != LocaleEnglish
}
