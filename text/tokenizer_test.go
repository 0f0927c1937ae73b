package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceTokenizer(t *testing.T) {
	doc := "this  is a string with spaces   "
	tokenizer := SpaceTokenizer{}
	test := tokenizer.Tokenize(doc)
	exp := Tokens{"this", "is", "a", "string", "with", "spaces"}
	assert.Equal(t, exp, test)
}

func TestSpaceTokenizerEmpty(t *testing.T) {
	tokenizer := SpaceTokenizer{}
	assert.Empty(t, tokenizer.Tokenize(""))
	assert.Empty(t, tokenizer.Tokenize("   \t  "))
}

func TestSpaceTokenizerKeepsPunctuation(t *testing.T) {
	doc := "It 's not horrible , just horribly mediocre ."
	tokenizer := SpaceTokenizer{}
	test := tokenizer.Tokenize(doc)
	require.Len(t, test, 9)
	assert.Equal(t, "'s", test[1])
	assert.Equal(t, ".", test[8])
}

func TestWordTokenizer(t *testing.T) {
	doc := "It 's not horrible , just horribly mediocre ."
	tokenizer := WordTokenizer{}
	test := tokenizer.Tokenize(doc)
	exp := Tokens{"It", "not", "horrible", "just", "horribly", "mediocre"}
	assert.Equal(t, exp, test)
}

func TestWordTokenizerDropsShortTokens(t *testing.T) {
	tokenizer := WordTokenizer{}
	test := tokenizer.Tokenize("a I ok !!")
	exp := Tokens{"ok"}
	assert.Equal(t, exp, test)
}

func TestStem(t *testing.T) {
	test := []string{"lane", "parsing", "parse", "cookies", "beautiful", "Creating", "constructing", "setting"}
	test = Stem(test)
	exp := []string{"lane", "pars", "pars", "cooki", "beauti", "creat", "construct", "set"}
	assert.Equal(t, exp, test)
}

func TestSearchTermProcessor(t *testing.T) {
	test := []string{"parsing", "parse", "cookies", "beautiful", "Creating", "constructing", "setting", "construct", "a"}
	filter := SearchTermProcessor
	act := filter.Apply(test)

	exp := Tokens([]string{"pars", "cooki", "beauti", "creat", "construct", "set"})
	assert.Equal(t, exp, act)
}

func TestRemoveStopWordsKeepsNegations(t *testing.T) {
	test := Tokens{"not", "a", "good", "movie", "never", "no"}
	act := RemoveStopWords(test)
	exp := Tokens{"not", "good", "movie", "never", "no"}
	assert.Equal(t, exp, act)
}

func TestLowerCase(t *testing.T) {
	test := []string{"GO", "THERE"}
	test = Lower(test)
	exp := []string{"go", "there"}
	assert.Equal(t, exp, test)
}

func TestUniquify(t *testing.T) {
	test := Tokens{"terrible", "terrible", "terrible", "movie"}
	act := Uniquify(test)
	exp := Tokens{"terrible", "movie"}
	assert.Equal(t, exp, act)
}
