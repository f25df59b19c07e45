// Package bigramcount generates a histogram of the adjacent word pairs
// contained in a text. Words are split on whitespace, truncated at the
// first quote character and lowercased; distinct pairs are reported in
// the order they were first seen.
package bigramcount

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/future-architect/bigramcount/nlp"
)

// Count tokenizes text with the word tokenizer and accumulates its
// adjacent pairs. The word tokenizer package (nlp/word) has to be
// imported for registration.
func Count(text string) (*Histogram, error) {
	tokenizer, err := nlp.FindTokenizer(nlp.LanguageWord)
	if err != nil {
		return nil, fmt.Errorf("tokenizer for '%s' is not found: %w", nlp.LanguageWord, err)
	}
	return Accumulate(tokenizer.Tokenize(text)), nil
}

// CountFile reads the whole file at path and counts its bigrams. The
// content has to be valid UTF-8; otherwise an *EncodingError is
// returned and no partial histogram is produced.
func CountFile(path string) (*Histogram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read input file: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, &EncodingError{Path: path, Offset: invalidOffset(data)}
	}
	return Count(string(data))
}

// invalidOffset returns the byte offset of the first invalid UTF-8
// sequence. data is known to be invalid.
func invalidOffset(data []byte) int {
	for offset := 0; offset < len(data); {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size == 1 {
			return offset
		}
		offset += size
	}
	return len(data)
}
