package langdetect

import (
	"strings"
	"sync"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"

	"masterg.app/glot/internal/language"
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// Languages glot serves that lingua has models for. Restricting the
// candidate set keeps detection fast and avoids spurious matches against
// languages the engines cannot translate anyway.
var candidateLanguages = []lingua.Language{
	lingua.Bengali,
	lingua.English,
	lingua.Gujarati,
	lingua.Hindi,
	lingua.Marathi,
	lingua.Punjabi,
	lingua.Tamil,
	lingua.Telugu,
	lingua.Urdu,
}

// DetectTag guesses the source language of text and returns its FLORES
// tag, or "" when the sample is too short or detection fails.
func DetectTag(text string) string {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return ""
	}

	letterCount := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letterCount++
		}
	}
	if letterCount < 6 {
		return ""
	}

	detected, exists := getDetector().DetectLanguageOf(sample)
	if !exists {
		return ""
	}

	code := strings.ToLower(detected.IsoCode639_1().String())
	if len(code) != 2 {
		return ""
	}
	return language.FromISO639(code)
}

func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidateLanguages...).
			WithPreloadedLanguageModels().
			Build()
	})
	return detector
}
