package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStopWords(t *testing.T) {
	testWords := []string{"i", "he", "has", "weren't"}
	stopWords := StopWords()
	for _, word := range testWords {

		_, exists := stopWords[word]
		assert.Equal(t, true, exists)
	}
}

func TestStopWordsKeepNegations(t *testing.T) {
	stopWords := StopWords()
	for _, word := range []string{"not", "no", "never", "nor"} {
		_, exists := stopWords[word]
		assert.Equal(t, false, exists, word)
	}
}
