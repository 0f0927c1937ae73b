package text

import (
	"regexp"
	"strings"

	porterstemmer "github.com/kiteco/go-porterstemmer"
)

// TokenFunc defines a type of function that takes in an array of tokens and
// returns an array of tokens.
type TokenFunc func(Tokens) Tokens

// Tokens represents a slice of strings
type Tokens []string

// Processor consists of a list of text processing rules.
type Processor struct {
	filters []TokenFunc
}

// SearchTermProcessor returns a processor that does the following to an
// input token array:
// 1) lowercase each token
// 2) remove stop words
// 3) stem each token
// 4) uniquify the array of tokens
var SearchTermProcessor = NewProcessor(Lower, RemoveStopWords, Stem, Uniquify)

// NewProcessor takes a list of TokenFuncs to instantiate a Processor.
func NewProcessor(funcs ...TokenFunc) *Processor {
	f := &Processor{}
	for _, fn := range funcs {
		f.filters = append(f.filters, fn)
	}
	return f
}

// Apply applies a list of TokenFunc to transform the input tokens
func (f *Processor) Apply(ts Tokens) Tokens {
	for _, fn := range f.filters {
		ts = fn(ts)
	}
	return ts
}

// Tokenizer is generic interface for an object which breaks an input
// string into Tokens.
type Tokenizer interface {
	Tokenize(string) Tokens
}

// SpaceTokenizer tokenizes a document based on whitespace. Token positions
// correspond one-to-one with the words the author typed, which is what the
// explainer needs when it masks positions.
type SpaceTokenizer struct{}

// Tokenize satisfies the Tokenizer interface.
func (st SpaceTokenizer) Tokenize(doc string) Tokens {
	var tokens Tokens
	for _, tok := range strings.Fields(doc) {
		tokens = append(tokens, tok)
	}
	return tokens
}

// wordRegexp selects runs of two or more word characters, dropping
// punctuation and single-character tokens.
var wordRegexp = regexp.MustCompile(`\b\w\w+\b`)

// WordTokenizer extracts word tokens of length >= 2, ignoring punctuation.
// This is the tokenizer the vectorizer fits its vocabulary with.
type WordTokenizer struct{}

// Tokenize satisfies the Tokenizer interface.
func (wt WordTokenizer) Tokenize(doc string) Tokens {
	var tokens Tokens
	for _, tok := range wordRegexp.FindAllString(doc, -1) {
		tokens = append(tokens, tok)
	}
	return tokens
}

// RemoveStopWords removes stop words from a token stream
func RemoveStopWords(ts Tokens) Tokens {
	var filteredTokens Tokens
	for _, t := range ts {
		if !skip(t) {
			filteredTokens = append(filteredTokens, t)
		}
	}
	return filteredTokens
}

// Lower converts all tokens to lower case
func Lower(ts Tokens) Tokens {
	for i, t := range ts {
		ts[i] = strings.ToLower(t)
	}
	return ts
}

// Stem extracts and returns the stems of each token in the input token stream
func Stem(ts Tokens) Tokens {
	for i, t := range ts {
		ts[i] = porterstemmer.StemString(t)
	}
	return ts
}

// Uniquify returns the set of unique tokens in a token stream
func Uniquify(ts Tokens) Tokens {
	var uniqueTokens Tokens
	seen := make(map[string]struct{})
	for _, t := range ts {
		if _, exists := seen[t]; !exists {
			uniqueTokens = append(uniqueTokens, t)
			seen[t] = struct{}{}
		}
	}
	return uniqueTokens
}

var stopWords = StopWords()

// skip determines whether a word should be removed (or skipped).
func skip(w string) bool {
	_, skip := stopWords[w]
	return skip
}
