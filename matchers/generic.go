package matchers

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kova98/redd/enums"
)

// MatchesWholeWord returns true if the keyword appears as a complete word in the text.
// Word boundaries are defined by non-alphanumeric characters or start/end of string.
func MatchesWholeWord(text, keyword string) bool {
	if keyword == "" {
		return false
	}
	for idx := 0; idx < len(text); {
		pos := strings.Index(text[idx:], keyword)
		if pos == -1 {
			return false
		}
		pos += idx
		end := pos + len(keyword)

		before, _ := utf8.DecodeLastRuneInString(text[:pos])
		after, _ := utf8.DecodeRuneInString(text[end:])
		leftOk := pos == 0 || !isWordChar(before)
		rightOk := end == len(text) || !isWordChar(after)
		if leftOk && rightOk {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[pos:])
		idx = pos + size
	}
	return false
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func MatchesPartially(text, keyword string) bool {
	return strings.Contains(text, keyword)
}

// Matches compares case-insensitively. An invalid mode never matches.
func Matches(text, keyword string, mode enums.MatchMode) bool {
	text = strings.ToLower(text)
	keyword = strings.ToLower(strings.TrimSpace(keyword))

	switch mode {
	case enums.MatchModeExact:
		return MatchesWholeWord(text, keyword)
	case enums.MatchModeBroad:
		return MatchesPartially(text, keyword)
	}
	return false
}
