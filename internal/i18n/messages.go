package i18n

// Message keys for user-facing errors. The catalogs below carry the exact
// storefront copy for both locales.
const (
	MsgCountryRequired    = "country_required"
	MsgNameTooShort       = "name_too_short"
	MsgAddressTooShort    = "address_too_short"
	MsgPhoneInvalid       = "phone_invalid"
	MsgWhatsappInvalid    = "whatsapp_invalid"
	MsgInvalidCredentials = "invalid_credentials"
	MsgInvalidEmail       = "invalid_email"
	MsgAccountInactive    = "account_inactive"
	MsgLoginFailed        = "login_failed"
	MsgCategoryInUse      = "category_in_use"
)

var catalog = map[string]map[Locale]string{
	MsgCountryRequired: {
		LocaleArabic:  "يرجى اختيار الدولة",
		LocaleEnglish: "Please select a country",
	},
	MsgNameTooShort: {
		LocaleArabic:  "يجب أن يتكون الاسم من 3 أجزاء على الأقل",
		LocaleEnglish: "Name must contain at least 3 parts",
	},
	MsgAddressTooShort: {
		LocaleArabic:  "يرجى إدخال عنوان تفصيلي",
		LocaleEnglish: "Please enter a detailed address",
	},
	MsgPhoneInvalid: {
		LocaleArabic:  "رقم الهاتف غير صحيح",
		LocaleEnglish: "Invalid phone number",
	},
	MsgWhatsappInvalid: {
		LocaleArabic:  "رقم الواتساب غير صحيح",
		LocaleEnglish: "Invalid WhatsApp number",
	},
	MsgInvalidCredentials: {
		LocaleArabic:  "البريد الإلكتروني أو كلمة المرور غير صحيحة",
		LocaleEnglish: "Invalid email or password",
	},
	MsgInvalidEmail: {
		LocaleArabic:  "البريد الإلكتروني غير صالح",
		LocaleEnglish: "Invalid email address",
	},
	MsgAccountInactive: {
		LocaleArabic:  "الحساب غير مفعل",
		LocaleEnglish: "Account is inactive",
	},
	MsgLoginFailed: {
		LocaleArabic:  "حدث خطأ أثناء تسجيل الدخول",
		LocaleEnglish: "Login failed",
	},
	MsgCategoryInUse: {
		LocaleArabic:  "لا يمكن حذف الفئة لأنها تحتوي على منتجات. قم بنقل أو حذف المنتجات أولاً.",
		LocaleEnglish: "Cannot delete the category because it contains products. Move or delete the products first.",
	},
}

// T resolves a message key for a locale. Unknown keys return the key itself
// so a missing translation is visible rather than silent.
func T(locale Locale, key string) string {
	if msgs, ok := catalog[key]; ok {
		if s, ok := msgs[locale]; ok {
			return s
		}
		return msgs[LocaleArabic]
	}
	return key
}
