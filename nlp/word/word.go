package word

import (
	"strings"

	"github.com/future-architect/bigramcount/nlp"
)

const Language = nlp.LanguageWord

// quoteChars are the only characters that cut a word short. A word that
// starts with one of them cleanses down to nothing and is dropped.
const quoteChars = "'\"’"

func init() {
	stopWords := make(map[string]bool)
	nlp.RegisterTokenizer(Language, wordSplitter, cleanseWord, stopWords)
}

// wordSplitter splits on Unicode whitespace, so spaces, tabs and both
// LF and CRLF line breaks are equivalent separators.
func wordSplitter(content string) []string {
	return strings.Fields(content)
}

func cleanseWord(word string) string {
	if idx := strings.IndexAny(word, quoteChars); idx >= 0 {
		word = word[:idx]
	}
	return lowerASCII(word)
}

// lowerASCII folds only A-Z. Non-ASCII bytes pass through untouched.
func lowerASCII(word string) string {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if 'A' <= c && c <= 'Z' {
			lowered := []byte(word)
			for j := i; j < len(lowered); j++ {
				if 'A' <= lowered[j] && lowered[j] <= 'Z' {
					lowered[j] += 'a' - 'A'
				}
			}
			return string(lowered)
		}
	}
	return word
}
