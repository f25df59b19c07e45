package nlp

import (
	"fmt"
)

const (
	LanguageWord = "word"
)

var tokenizers = make(map[string]*Tokenizer)

// FindTokenizer returns the tokenizer registered under the name.
// Tokenizer packages register themselves on import, so callers need a
// blank import of the implementation package (e.g. nlp/word).
func FindTokenizer(name string) (*Tokenizer, error) {
	tokenizer, ok := tokenizers[name]
	if !ok {
		return nil, fmt.Errorf("can't find tokenizer for %s", name)
	}
	return tokenizer, nil
}

type Tokenizer struct {
	splitter  func(string) []string
	cleanser  func(string) string
	stopWords map[string]bool
}

func RegisterTokenizer(name string, splitter func(string) []string, cleanser func(string) string, stopWords map[string]bool) {
	tokenizers[name] = &Tokenizer{
		splitter:  splitter,
		cleanser:  cleanser,
		stopWords: stopWords,
	}
}

func (t Tokenizer) CleanseWord(word string) string {
	if t.cleanser == nil {
		return word
	}
	return t.cleanser(word)
}

// Tokenize splits content into a sequence of cleansed tokens. Runs that
// cleanse down to nothing and stop words are dropped without leaving a
// gap, so the tokens on either side become adjacent.
func (t Tokenizer) Tokenize(content string) []string {
	words := t.splitter(content)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		word = t.CleanseWord(word)
		if word == "" {
			continue
		}
		if t.stopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
