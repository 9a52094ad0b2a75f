package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsTerm reports whether term occurs in text with no letter or digit
// directly before or after it. Both arguments are expected lowercased.
func ContainsTerm(text, term string) bool {
	if term == "" {
		return false
	}

	for start := 0; start < len(text); {
		idx := strings.Index(text[start:], term)
		if idx == -1 {
			return false
		}
		idx += start
		end := idx + len(term)
		if boundaryBefore(text, idx) && boundaryAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[idx:])
		start = idx + size
	}
	return false
}

// ContainsWord is ContainsTerm where a hyphen also joins words, so "go"
// does not match inside "go-to-market".
func ContainsWord(text, term string) bool {
	if term == "" {
		return false
	}

	for start := 0; start < len(text); {
		idx := strings.Index(text[start:], term)
		if idx == -1 {
			return false
		}
		idx += start
		end := idx + len(term)
		if boundaryBefore(text, idx) && boundaryAfter(text, end) &&
			!strings.HasSuffix(text[:idx], "-") && !strings.HasPrefix(text[end:], "-") {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[idx:])
		start = idx + size
	}
	return false
}

// HasWordPrefix reports whether a word of text starts with prefix.
func HasWordPrefix(text, prefix string) bool {
	if prefix == "" {
		return false
	}

	for start := 0; start < len(text); {
		idx := strings.Index(text[start:], prefix)
		if idx == -1 {
			return false
		}
		idx += start
		if boundaryBefore(text, idx) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[idx:])
		start = idx + size
	}
	return false
}

// MatchKeyword applies the taxonomy matching rule: single words longer than
// three letters match as substrings (so compounds like "softwareentwickler"
// hit "software"), everything else must stand as a whole term.
func MatchKeyword(text, keyword string) bool {
	if isPlainWord(keyword) && utf8.RuneCountInString(keyword) > 3 {
		return strings.Contains(text, keyword)
	}
	return ContainsTerm(text, keyword)
}

// FirstKeyword returns the first keyword matching text, or "".
func FirstKeyword(text string, keywords []string) string {
	for _, kw := range keywords {
		if MatchKeyword(text, kw) {
			return kw
		}
	}
	return ""
}

func isPlainWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// WordWithSuffix returns the first word of text ending with one of suffixes,
// skipping words that end with any of the excluded endings.
func WordWithSuffix(text string, suffixes, excluded []string) string {
	for _, word := range strings.FieldsFunc(text, func(r rune) bool { return !isWordRune(r) }) {
		if hasAnySuffix(word, excluded) {
			continue
		}
		if hasAnySuffix(word, suffixes) {
			return word
		}
	}
	return ""
}

func hasAnySuffix(word string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if suffix != "" && strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:idx])
	return !isWordRune(r)
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(r)
}
