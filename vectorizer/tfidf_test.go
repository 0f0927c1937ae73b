package vectorizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiteco/sentiment/errors"
)

func fitTestVectorizer(t *testing.T) *TFIDF {
	v := NewTFIDF(Options{})
	err := v.Fit([]string{"good movie", "bad movie"})
	require.NoError(t, err)
	return v
}

func TestTFIDFVocabulary(t *testing.T) {
	v := fitTestVectorizer(t)

	// vocabulary indices are assigned over the sorted term set
	require.Equal(t, 3, v.NumFeatures())
	assert.Equal(t, []string{"bad", "good", "movie"}, v.Vocab.Terms)
	assert.Equal(t, 0, v.Vocab.Index["bad"])
	assert.Equal(t, 2, v.Vocab.Index["movie"])
}

func TestTFIDFWeights(t *testing.T) {
	v := fitTestVectorizer(t)

	feat, err := v.Transform("good movie")
	require.NoError(t, err)
	require.Equal(t, 3, feat.Dims)
	require.Equal(t, []int{1, 2}, feat.Indices)

	// smoothed idf: ln((1+2)/(1+df)) + 1
	idfGood := math.Log(3.0/2.0) + 1
	idfMovie := math.Log(3.0/3.0) + 1
	norm := math.Sqrt(idfGood*idfGood + idfMovie*idfMovie)

	if math.Abs(feat.Values[0]-idfGood/norm) > 1e-8 {
		t.Errorf("expected %f, got %f\n", idfGood/norm, feat.Values[0])
	}
	if math.Abs(feat.Values[1]-idfMovie/norm) > 1e-8 {
		t.Errorf("expected %f, got %f\n", idfMovie/norm, feat.Values[1])
	}
	if math.Abs(feat.Norm()-1.0) > 1e-8 {
		t.Errorf("expected unit norm, got %f\n", feat.Norm())
	}
}

func TestTFIDFRepeatedTerms(t *testing.T) {
	v := NewTFIDF(Options{RawCounts: true, NoNorm: true})
	require.NoError(t, v.Fit([]string{"good movie", "bad movie"}))

	feat, err := v.Transform("good good movie")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, feat.Indices)
	assert.Equal(t, []float64{2, 1}, feat.Values)
}

func TestTFIDFOutOfVocabulary(t *testing.T) {
	v := fitTestVectorizer(t)

	// unknown terms are dropped; dimensionality is preserved
	feat, err := v.Transform("unbelievably watchable")
	require.NoError(t, err)
	assert.Equal(t, 3, feat.Dims)
	assert.Equal(t, 0, feat.Len())

	feat, err = v.Transform("")
	require.NoError(t, err)
	assert.Equal(t, 3, feat.Dims)
	assert.Equal(t, 0, feat.Len())
}

func TestTFIDFUnfitted(t *testing.T) {
	v := NewTFIDF(Options{})
	_, err := v.Transform("good movie")
	require.Error(t, err)
	assert.Equal(t, ErrNotFitted, errors.Cause(err))
}

func TestTFIDFEmptyCorpus(t *testing.T) {
	v := NewTFIDF(Options{})
	require.Error(t, v.Fit(nil))
}

func TestTFIDFStemming(t *testing.T) {
	v := NewTFIDF(Options{Stem: true})
	require.NoError(t, v.Fit([]string{"parsing cookies", "parse jar"}))

	// "parsing" and "parse" collapse to one stem
	assert.Equal(t, 3, v.NumFeatures())

	a, err := v.Transform("parsing")
	require.NoError(t, err)
	b, err := v.Transform("parse")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
