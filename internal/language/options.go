package language

import "sort"

// Option is one selectable translation language for API consumers.
type Option struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Native string `json:"native,omitempty"`
}

type languageLabel struct {
	english string
	native  string
}

// English plus the 22 scheduled Indian languages, keyed by FLORES tag.
var languageLabels = map[string]languageLabel{
	"asm_Beng": {english: "Assamese", native: "অসমীয়া"},
	"ben_Beng": {english: "Bengali", native: "বাংলা"},
	"brx_Deva": {english: "Bodo", native: "बड़ो"},
	"doi_Deva": {english: "Dogri", native: "डोगरी"},
	"eng_Latn": {english: "English", native: "English"},
	"gom_Deva": {english: "Konkani", native: "कोंकणी"},
	"guj_Gujr": {english: "Gujarati", native: "ગુજરાતી"},
	"hin_Deva": {english: "Hindi", native: "हिन्दी"},
	"kan_Knda": {english: "Kannada", native: "ಕನ್ನಡ"},
	"kas_Arab": {english: "Kashmiri", native: "كٲشُر"},
	"mai_Deva": {english: "Maithili", native: "मैथिली"},
	"mal_Mlym": {english: "Malayalam", native: "മലയാളം"},
	"mar_Deva": {english: "Marathi", native: "मराठी"},
	"mni_Beng": {english: "Manipuri", native: "মণিপুরী"},
	"npi_Deva": {english: "Nepali", native: "नेपाली"},
	"ory_Orya": {english: "Odia", native: "ଓଡ଼ିଆ"},
	"pan_Guru": {english: "Punjabi", native: "ਪੰਜਾਬੀ"},
	"san_Deva": {english: "Sanskrit", native: "संस्कृतम्"},
	"sat_Olck": {english: "Santali", native: "ᱥᱟᱱᱛᱟᱲᱤ"},
	"snd_Arab": {english: "Sindhi", native: "سنڌي"},
	"tam_Taml": {english: "Tamil", native: "தமிழ்"},
	"tel_Telu": {english: "Telugu", native: "తెలుగు"},
	"urd_Arab": {english: "Urdu", native: "اردو"},
}

// SupportedTags returns the supported FLORES tags in sorted order.
func SupportedTags() []string {
	tags := make([]string, 0, len(languageLabels))
	for tag := range languageLabels {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Options returns the supported languages as labeled options, sorted by tag.
func Options() []Option {
	tags := SupportedTags()
	options := make([]Option, 0, len(tags))
	for _, tag := range tags {
		labels := languageLabels[tag]
		options = append(options, Option{
			Code:   tag,
			Label:  labels.english,
			Native: labels.native,
		})
	}
	return options
}

// Label returns the English label for a tag, or the tag itself when unknown.
func Label(raw string) string {
	tag := Normalize(raw)
	if labels, ok := languageLabels[tag]; ok {
		return labels.english
	}
	return raw
}
