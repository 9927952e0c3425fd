package dialog

import (
	"strings"
	"unicode"
)

// substringMatcher reports a match when any keyword appears as a literal
// substring of the lower-cased message. This deliberately loose check is what
// makes the keyword tables forgiving ("purchasing" matches "purchase").
type substringMatcher []string

func (m substringMatcher) matches(lower string) bool {
	return containsAny(lower, m)
}

// tokenMatcher reports a match only when a keyword equals a whole token of
// the message. Used for greetings, where substring matching would fire on
// words like "shipping" or "this".
type tokenMatcher []string

func (m tokenMatcher) matches(lower string) bool {
	for _, tok := range tokenize(lower) {
		for _, kw := range m {
			if tok == kw {
				return true
			}
		}
	}
	return false
}

// tokenize splits a message into alphanumeric runs, dropping punctuation so
// "hi!" and "laptop?" match cleanly.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
