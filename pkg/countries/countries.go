// Package countries builds the fixed directory of selectable countries used
// by the order intake flow: ISO region code, dialing prefix, Arabic and
// English display names, and a flag image URL.
package countries

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Country is one selectable entry in the directory.
type Country struct {
	Code     string `json:"code"`
	DialCode string `json:"dialCode"`
	NameAr   string `json:"nameAr"`
	NameEn   string `json:"nameEn"`
	FlagURL  string `json:"flagUrl"`
}

// priority lists the regional countries pinned to the top of the directory,
// in their fixed preferred sequence.
var priority = []string{
	"SA", "AE", "EG", "KW", "QA", "BH", "OM", "JO", "LB", "IQ",
	"SY", "YE", "PS", "SD", "LY", "TN", "DZ", "MA",
}

var priorityIndex = func() map[string]int {
	m := make(map[string]int, len(priority))
	for i, code := range priority {
		m[code] = i
	}
	return m
}()

// localizedNames maps region codes to display names. Regions absent here
// fall back to their bare region code in both locales.
var localizedNames = map[string][2]string{
	"SA": {"السعودية", "Saudi Arabia"},
	"AE": {"الإمارات", "United Arab Emirates"},
	"EG": {"مصر", "Egypt"},
	"KW": {"الكويت", "Kuwait"},
	"QA": {"قطر", "Qatar"},
	"BH": {"البحرين", "Bahrain"},
	"OM": {"عُمان", "Oman"},
	"JO": {"الأردن", "Jordan"},
	"LB": {"لبنان", "Lebanon"},
	"IQ": {"العراق", "Iraq"},
	"SY": {"سوريا", "Syria"},
	"YE": {"اليمن", "Yemen"},
	"PS": {"فلسطين", "Palestine"},
	"SD": {"السودان", "Sudan"},
	"LY": {"ليبيا", "Libya"},
	"TN": {"تونس", "Tunisia"},
	"DZ": {"الجزائر", "Algeria"},
	"MA": {"المغرب", "Morocco"},
	"US": {"الولايات المتحدة", "United States"},
	"GB": {"المملكة المتحدة", "United Kingdom"},
	"DE": {"ألمانيا", "Germany"},
	"FR": {"فرنسا", "France"},
	"IT": {"إيطاليا", "Italy"},
	"ES": {"إسبانيا", "Spain"},
	"TR": {"تركيا", "Turkey"},
	"IN": {"الهند", "India"},
	"PK": {"باكستان", "Pakistan"},
	"BD": {"بنغلاديش", "Bangladesh"},
	"ID": {"إندونيسيا", "Indonesia"},
	"MY": {"ماليزيا", "Malaysia"},
	"CN": {"الصين", "China"},
	"JP": {"اليابان", "Japan"},
	"KR": {"كوريا الجنوبية", "South Korea"},
	"AU": {"أستراليا", "Australia"},
	"CA": {"كندا", "Canada"},
	"BR": {"البرازيل", "Brazil"},
	"RU": {"روسيا", "Russia"},
	"ZA": {"جنوب أفريقيا", "South Africa"},
	"NG": {"نيجيريا", "Nigeria"},
	"KE": {"كينيا", "Kenya"},
	"GH": {"غانا", "Ghana"},
	"MX": {"المكسيك", "Mexico"},
	"AR": {"الأرجنتين", "Argentina"},
	"CL": {"تشيلي", "Chile"},
	"CO": {"كولومبيا", "Colombia"},
	"NL": {"هولندا", "Netherlands"},
	"BE": {"بلجيكا", "Belgium"},
	"SE": {"السويد", "Sweden"},
	"NO": {"النرويج", "Norway"},
	"DK": {"الدنمارك", "Denmark"},
	"FI": {"فنلندا", "Finland"},
	"PL": {"بولندا", "Poland"},
	"AT": {"النمسا", "Austria"},
	"CH": {"سويسرا", "Switzerland"},
	"GR": {"اليونان", "Greece"},
	"PT": {"البرتغال", "Portugal"},
	"IE": {"أيرلندا", "Ireland"},
	"NZ": {"نيوزيلندا", "New Zealand"},
	"SG": {"سنغافورة", "Singapore"},
	"TH": {"تايلاند", "Thailand"},
	"VN": {"فيتنام", "Vietnam"},
	"PH": {"الفلبين", "Philippines"},
}

var directory = build()

// build assembles the directory once from the numbering-plan metadata.
// Regions without a resolvable calling code are excluded.
func build() []Country {
	regions := phonenumbers.GetSupportedRegions()
	list := make([]Country, 0, len(regions))
	for region := range regions {
		callingCode := phonenumbers.GetCountryCodeForRegion(region)
		if callingCode == 0 {
			continue
		}
		nameAr, nameEn := region, region
		if names, ok := localizedNames[region]; ok {
			nameAr, nameEn = names[0], names[1]
		}
		list = append(list, Country{
			Code:     region,
			DialCode: "+" + strconv.Itoa(callingCode),
			NameAr:   nameAr,
			NameEn:   nameEn,
			FlagURL:  "https://flagcdn.com/24x18/" + strings.ToLower(region) + ".png",
		})
	}

	sort.Slice(list, func(i, j int) bool {
		pi, iOK := priorityIndex[list[i].Code]
		pj, jOK := priorityIndex[list[j].Code]
		switch {
		case iOK && !jOK:
			return true
		case !iOK && jOK:
			return false
		case iOK && jOK:
			return pi < pj
		}
		return list[i].NameEn < list[j].NameEn
	})
	return list
}

// All returns the full ordered directory. The returned slice is shared;
// callers must not mutate it.
func All() []Country {
	return directory
}

// ByCode finds a country by ISO region code, case-insensitively.
func ByCode(code string) (Country, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range directory {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}
