package sources

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// LanguageDetector guesses the language of message bodies. Only a handful
// of languages are loaded to keep the model footprint small.
type LanguageDetector struct {
	detector lingua.LanguageDetector
}

func NewLanguageDetector() *LanguageDetector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.German,
			lingua.French,
			lingua.Spanish,
			lingua.Portuguese,
			lingua.Italian,
			lingua.Dutch,
		).
		WithMinimumRelativeDistance(0.1).
		Build()
	return &LanguageDetector{detector: detector}
}

// Detect returns a lower-case ISO 639-1 code, or "" when the text is too
// short or ambiguous.
func (d *LanguageDetector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
