package explain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiteco/sentiment/classify"
	"github.com/kiteco/sentiment/vectorizer"
)

// countingVectorizer maps a text to the occurrence counts of two cue words.
type countingVectorizer struct{}

func (countingVectorizer) Transform(doc string) (vectorizer.FeatureVector, error) {
	var terrible, great float64
	for _, tok := range strings.Fields(doc) {
		switch strings.ToLower(tok) {
		case "terrible":
			terrible++
		case "great":
			great++
		}
	}
	return vectorizer.FeatureVector{Indices: []int{0, 1}, Values: []float64{terrible, great}, Dims: 2}, nil
}

func (countingVectorizer) NumFeatures() int { return 2 }

// cueClassifier is a scripted two-class model over the counting features:
// "terrible" pushes toward class 1 (negative), "great" pushes away.
type cueClassifier struct {
	invoked *bool
}

func (c cueClassifier) Classes() []classify.Label { return []classify.Label{1, 5} }

func (c cueClassifier) Train([]vectorizer.FeatureVector, []classify.Label) error { return nil }

func (c cueClassifier) PredictProba(feat vectorizer.FeatureVector) ([]float64, error) {
	if c.invoked != nil {
		*c.invoked = true
	}
	pNeg := 0.2 + 0.25*feat.Values[0] - 0.15*feat.Values[1]
	if pNeg < 0.01 {
		pNeg = 0.01
	}
	if pNeg > 0.99 {
		pNeg = 0.99
	}
	return []float64{pNeg, 1 - pNeg}, nil
}

func (c cueClassifier) Predict(feat vectorizer.FeatureVector) (classify.Prediction, error) {
	proba, err := c.PredictProba(feat)
	if err != nil {
		return classify.Prediction{}, err
	}
	label := classify.Label(5)
	if proba[0] >= 0.5 {
		label = 1
	}
	return classify.Prediction{Label: label, Proba: proba}, nil
}

func testOptions() Options {
	return Options{Samples: 500, Workers: 2}
}

func TestExplainEmptyInput(t *testing.T) {
	invoked := false
	e := New(cueClassifier{invoked: &invoked}, countingVectorizer{}, testOptions())

	for _, input := range []string{"", "   "} {
		exp, err := e.Explain(input, 42)
		require.NoError(t, err)
		assert.Empty(t, exp.Tokens)
		assert.Equal(t, 0, exp.Samples)
	}
	assert.False(t, invoked, "classifier must not be invoked for empty input")
}

func TestExplainRepeatedTokenConsistentSign(t *testing.T) {
	e := New(cueClassifier{}, countingVectorizer{}, testOptions())

	exp, err := e.Explain("terrible terrible terrible", 42)
	require.NoError(t, err)

	assert.Equal(t, classify.Label(1), exp.PredictedLabel)
	assert.Equal(t, classify.Label(1), exp.TargetLabel)
	require.Len(t, exp.Tokens, 3)

	// the same token at every position pushes toward the negative class
	seen := map[int]bool{}
	for _, tw := range exp.Tokens {
		assert.Equal(t, "terrible", tw.Token)
		assert.True(t, tw.Weight > 0, "position %d has weight %f", tw.Position, tw.Weight)
		seen[tw.Position] = true
	}
	assert.Len(t, seen, 3)
}

func TestExplainOpposingCues(t *testing.T) {
	e := New(cueClassifier{}, countingVectorizer{}, testOptions())

	exp, err := e.ExplainClass("a terrible yet great movie", 1, 42)
	require.NoError(t, err)
	require.Equal(t, classify.Label(1), exp.TargetLabel)

	byToken := map[string]float64{}
	for _, tw := range exp.Tokens {
		byToken[tw.Token] = tw.Weight
	}
	assert.True(t, byToken["terrible"] > 0, "terrible: %f", byToken["terrible"])
	assert.True(t, byToken["great"] < 0, "great: %f", byToken["great"])
}

func TestExplainReproducible(t *testing.T) {
	input := "a terrible yet great movie"

	a, err := New(cueClassifier{}, countingVectorizer{}, testOptions()).Explain(input, 7)
	require.NoError(t, err)
	b, err := New(cueClassifier{}, countingVectorizer{}, testOptions()).Explain(input, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// worker count must not change the result
	opts := testOptions()
	opts.Workers = 8
	c, err := New(cueClassifier{}, countingVectorizer{}, opts).Explain(input, 7)
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestExplainTopKTruncation(t *testing.T) {
	opts := testOptions()
	opts.TopK = 2
	e := New(cueClassifier{}, countingVectorizer{}, opts)

	exp, err := e.Explain("one two three terrible five six", 42)
	require.NoError(t, err)
	assert.Len(t, exp.Tokens, 2)
	// ranking is by descending magnitude: the only informative token leads
	assert.Equal(t, "terrible", exp.Tokens[0].Token)
}

func TestExplainUnknownTarget(t *testing.T) {
	e := New(cueClassifier{}, countingVectorizer{}, testOptions())
	_, err := e.ExplainClass("terrible movie", 3, 42)
	require.Error(t, err)
}

func TestExplainDegenerateCoverage(t *testing.T) {
	// every token is out of vocabulary: all perturbations collapse to the
	// same feature vector, the fit returns near-zero weights, no error
	e := New(cueClassifier{}, countingVectorizer{}, testOptions())

	exp, err := e.Explain("words the model never saw", 42)
	require.NoError(t, err)
	for _, tw := range exp.Tokens {
		assert.True(t, tw.Weight < 1e-6 && tw.Weight > -1e-6, "weight %f should be near zero", tw.Weight)
	}
}

func TestExplainUnfittedVectorizer(t *testing.T) {
	// a vectorizer contract violation is fatal, not degraded
	e := New(cueClassifier{}, vectorizer.NewTFIDF(vectorizer.Options{}), testOptions())
	_, err := e.Explain("terrible movie", 42)
	require.Error(t, err)
}

func TestLocalityWeightMonotone(t *testing.T) {
	e := New(cueClassifier{}, countingVectorizer{}, testOptions())

	kept := func(keptCount, total int) []bool {
		v := make([]bool, total)
		for i := 0; i < keptCount; i++ {
			v[i] = true
		}
		return v
	}

	prev := e.localityWeight(kept(10, 10))
	assert.Equal(t, 1.0, prev)
	for k := 9; k >= 0; k-- {
		w := e.localityWeight(kept(k, 10))
		assert.True(t, w < prev, "weight must decrease with more masked tokens")
		prev = w
	}
}
