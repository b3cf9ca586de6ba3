// Package validation holds the pure predicate functions that gate order
// submission. Nothing here performs I/O; errors come back as a field→message
// map so every invalid field is reported at once.
package validation

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"

	"github.com/WaslIoT/wasl_api/internal/i18n"
	"github.com/WaslIoT/wasl_api/pkg/countries"
)

// Field keys used in validation error maps.
const (
	FieldCountry  = "country"
	FieldName     = "customerName"
	FieldAddress  = "address"
	FieldPhone    = "phone"
	FieldWhatsapp = "whatsapp"
)

// ValidName reports whether name splits into at least 3 whitespace-separated
// parts with every part at least 2 characters long. The business requires a
// three-part legal name for shipping identification.
func ValidName(name string) bool {
	parts := strings.FieldsFunc(name, unicode.IsSpace)
	if len(parts) < 3 {
		return false
	}
	for _, part := range parts {
		if len([]rune(part)) < 2 {
			return false
		}
	}
	return true
}

// ValidAddress reports whether the trimmed address is at least 10 characters,
// a coarse proxy for a sufficiently detailed shipping address.
func ValidAddress(address string) bool {
	return len([]rune(strings.TrimSpace(address))) >= 10
}

// Digits strips everything but ASCII digits from raw.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone checks a raw phone candidate against the numbering plan of the
// selected country. The candidate's digits are concatenated with the
// country's dial code before parsing. If the numbering-plan parse fails the
// check falls back to accepting any candidate with at least 7 digits; strict
// validation is preferred but the flow must never hard-fail on metadata gaps.
func ValidPhone(country *countries.Country, raw string) bool {
	if country == nil || raw == "" || len(raw) < 6 {
		return false
	}
	digits := Digits(raw)
	num, err := phonenumbers.Parse(country.DialCode+digits, "")
	if err != nil {
		return len(digits) >= 7
	}
	return phonenumbers.IsValidNumber(num)
}

// OrderForm carries the raw order intake fields to validate.
type OrderForm struct {
	Country      *countries.Country
	CustomerName string
	Address      string
	Phone        string
	Whatsapp     string
	SameAsPhone  bool
}

// ValidateOrderForm runs the full rule set without short-circuiting and
// returns localized messages keyed by field name. An empty map means the
// form is valid. When SameAsPhone is set the whatsapp rule is evaluated
// against the phone field, mirroring the live-sync toggle.
func ValidateOrderForm(form OrderForm, locale i18n.Locale) map[string]string {
	errs := make(map[string]string)

	if form.Country == nil {
		errs[FieldCountry] = i18n.T(locale, i18n.MsgCountryRequired)
	}
	if !ValidName(form.CustomerName) {
		errs[FieldName] = i18n.T(locale, i18n.MsgNameTooShort)
	}
	if !ValidAddress(form.Address) {
		errs[FieldAddress] = i18n.T(locale, i18n.MsgAddressTooShort)
	}
	if !ValidPhone(form.Country, form.Phone) {
		errs[FieldPhone] = i18n.T(locale, i18n.MsgPhoneInvalid)
	}
	whatsapp := form.Whatsapp
	if form.SameAsPhone {
		whatsapp = form.Phone
	}
	if !ValidPhone(form.Country, whatsapp) {
		errs[FieldWhatsapp] = i18n.T(locale, i18n.MsgWhatsappInvalid)
	}

	return errs
}
