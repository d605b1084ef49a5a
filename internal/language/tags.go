package language

import "strings"

// Normalize canonicalizes a FLORES-style language tag ("hin_Deva").
// Case and separator variants are accepted; returns an empty string when
// the value is blank or not shaped like <lang>_<Script>.
func Normalize(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}

	trimmed = strings.ReplaceAll(trimmed, "-", "_")
	parts := strings.Split(trimmed, "_")
	normalized := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !isAlphaLower(part) {
			return ""
		}
		normalized = append(normalized, part)
	}

	if len(normalized) != 2 || len(normalized[0]) != 3 || len(normalized[1]) != 4 {
		return ""
	}

	script := normalized[1]
	return normalized[0] + "_" + strings.ToUpper(script[:1]) + script[1:]
}

// Known reports whether the tag belongs to the supported language set.
func Known(raw string) bool {
	tag := Normalize(raw)
	if tag == "" {
		return false
	}
	_, ok := languageLabels[tag]
	return ok
}

// FromISO639 maps an ISO 639-1 code (as produced by language detection)
// to the corresponding FLORES tag, or "" when unmapped.
func FromISO639(code string) string {
	trimmed := strings.ToLower(strings.TrimSpace(code))
	if trimmed == "" {
		return ""
	}
	return iso639ToTag[trimmed]
}

var iso639ToTag = map[string]string{
	"as": "asm_Beng",
	"bn": "ben_Beng",
	"en": "eng_Latn",
	"gu": "guj_Gujr",
	"hi": "hin_Deva",
	"kn": "kan_Knda",
	"ks": "kas_Arab",
	"ml": "mal_Mlym",
	"mr": "mar_Deva",
	"ne": "npi_Deva",
	"or": "ory_Orya",
	"pa": "pan_Guru",
	"sa": "san_Deva",
	"sd": "snd_Arab",
	"ta": "tam_Taml",
	"te": "tel_Telu",
	"ur": "urd_Arab",
}

func isAlphaLower(value string) bool {
	for _, r := range value {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
