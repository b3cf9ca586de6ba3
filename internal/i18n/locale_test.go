package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleArabic, ParseLocale(""), "arabic is the default")
	assert.Equal(t, LocaleArabic, ParseLocale("ar"))
	assert.Equal(t, LocaleEnglish, ParseLocale("en"))
	assert.Equal(t, LocaleEnglish, ParseLocale("EN"))
	assert.Equal(t, LocaleArabic, ParseLocale("fr"), "unknown values fall back to arabic")
}

func TestT(t *testing.T) {
	assert.Equal(t, "يرجى اختيار الدولة", T(LocaleArabic, MsgCountryRequired))
	assert.Equal(t, "Please select a country", T(LocaleEnglish, MsgCountryRequired))
	assert.Equal(t, "MISSING_MESSAGE", T(LocaleEnglish, "MISSING_MESSAGE"), "unknown keys echo the key")
}
