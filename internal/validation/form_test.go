package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WaslIoT/wasl_api/internal/i18n"
	"github.com/WaslIoT/wasl_api/pkg/countries"
)

func saudiArabia(t *testing.T) *countries.Country {
	t.Helper()
	c, ok := countries.ByCode("SA")
	if !ok {
		t.Fatal("SA missing from country directory")
	}
	return &c
}

func TestValidName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"three parts", "Ali Ben Omar", true},
		{"four parts", "Ali Ben Omar Saleh", true},
		{"arabic three parts", "محمد عبد الرحمن", true},
		{"short second part", "Ali B Omar", false},
		{"two parts", "Ali Omar", false},
		{"single token", "Ali", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"extra whitespace still three parts", "  Ali   Ben   Omar  ", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidName(tc.input))
		})
	}
}

func TestValidAddress(t *testing.T) {
	assert.True(t, ValidAddress("Riyadh, King Fahd Rd, Bldg 4"))
	assert.True(t, ValidAddress("  0123456789  "), "exactly 10 after trim")
	assert.False(t, ValidAddress("Riyadh"))
	assert.False(t, ValidAddress("         "), "whitespace does not count")
}

func TestValidPhoneStrict(t *testing.T) {
	sa := saudiArabia(t)

	assert.True(t, ValidPhone(sa, "501234567"), "valid Saudi mobile")
	assert.True(t, ValidPhone(sa, "50-123-4567"), "formatting characters stripped")
	assert.False(t, ValidPhone(sa, "12345"), "too short to consider")
	assert.False(t, ValidPhone(nil, "501234567"), "country required")
	assert.False(t, ValidPhone(sa, ""), "empty candidate")
}

func TestValidPhoneFallback(t *testing.T) {
	// A dial code the numbering plan cannot classify forces the parse to
	// fail; any candidate with >= 7 digits must still be accepted.
	unknown := &countries.Country{Code: "XX", DialCode: "+0"}

	assert.True(t, ValidPhone(unknown, "1234567"))
	assert.True(t, ValidPhone(unknown, "123456789012"))
	assert.False(t, ValidPhone(unknown, "123456"), "6 digits stays rejected")
}

func TestValidateOrderFormReportsAllFields(t *testing.T) {
	errs := ValidateOrderForm(OrderForm{
		Country:      nil,
		CustomerName: "Ali",
		Address:      "short",
		Phone:        "12",
		Whatsapp:     "12",
	}, i18n.LocaleEnglish)

	assert.Len(t, errs, 5, "all invalid fields reported at once")
	assert.Equal(t, "Please select a country", errs[FieldCountry])
	assert.Equal(t, "Name must contain at least 3 parts", errs[FieldName])
	assert.Equal(t, "Please enter a detailed address", errs[FieldAddress])
	assert.Equal(t, "Invalid phone number", errs[FieldPhone])
	assert.Equal(t, "Invalid WhatsApp number", errs[FieldWhatsapp])
}

func TestValidateOrderFormLocalizedArabic(t *testing.T) {
	errs := ValidateOrderForm(OrderForm{}, i18n.LocaleArabic)
	assert.Equal(t, "يرجى اختيار الدولة", errs[FieldCountry])
	assert.Equal(t, "يجب أن يتكون الاسم من 3 أجزاء على الأقل", errs[FieldName])
}

func TestValidateOrderFormValid(t *testing.T) {
	errs := ValidateOrderForm(OrderForm{
		Country:      saudiArabia(t),
		CustomerName: "Ali Ben Omar",
		Address:      "Riyadh, King Fahd Rd, Bldg 4",
		Phone:        "501234567",
		Whatsapp:     "501234568",
	}, i18n.LocaleEnglish)
	assert.Empty(t, errs)
}

func TestValidateOrderFormSameAsPhone(t *testing.T) {
	// With the mirror toggle on, the whatsapp rule evaluates the phone
	// field; a garbage whatsapp value must not fail validation.
	errs := ValidateOrderForm(OrderForm{
		Country:      saudiArabia(t),
		CustomerName: "Ali Ben Omar",
		Address:      "Riyadh, King Fahd Rd, Bldg 4",
		Phone:        "501234567",
		Whatsapp:     "x",
		SameAsPhone:  true,
	}, i18n.LocaleEnglish)
	assert.Empty(t, errs)
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "501234567", Digits("+50 123-4567"))
	assert.Equal(t, "", Digits("abc"))
}
