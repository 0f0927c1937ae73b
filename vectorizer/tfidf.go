package vectorizer

import (
	"math"

	"github.com/kiteco/sentiment/errors"
	"github.com/kiteco/sentiment/text"
)

// Vectorizer turns raw text into a FeatureVector over a fixed feature space.
type Vectorizer interface {
	Transform(doc string) (FeatureVector, error)
	NumFeatures() int
}

// ErrNotFitted is returned when Transform is called on a TFIDF vectorizer
// before Fit.
var ErrNotFitted = errors.New("vectorizer: Transform called before Fit")

// Options configures a TFIDF vectorizer. The zero value gives the defaults:
// word tokenization, lowercasing, smoothed idf weighting, and L2
// normalization.
type Options struct {
	// Tokenizer defaults to text.WordTokenizer.
	Tokenizer text.Tokenizer
	// KeepCase disables lowercasing.
	KeepCase bool
	// Stem enables Porter stemming of each token.
	Stem bool
	// RemoveStopWords enables stop-word filtering.
	RemoveStopWords bool
	// RawCounts disables idf weighting, leaving raw term counts.
	RawCounts bool
	// NoNorm disables L2 normalization of the output vector.
	NoNorm bool
}

// TFIDF is a fit-then-transform vectorizer: Fit builds a Vocabulary and
// per-term document frequencies over a training corpus, Transform maps any
// text into the fitted feature space. Terms outside the vocabulary are
// silently dropped so the dimensionality fixed by Fit is preserved.
type TFIDF struct {
	Vocab *Vocabulary
	// IDF holds the smoothed inverse document frequency per vocabulary
	// index: ln((1+n)/(1+df)) + 1.
	IDF []float64
	// NumDocs is the size of the corpus the vectorizer was fitted on.
	NumDocs int

	opts      Options
	tokenizer text.Tokenizer
	processor *text.Processor
}

// NewTFIDF returns an unfitted TFIDF vectorizer.
func NewTFIDF(opts Options) *TFIDF {
	tokenizer := opts.Tokenizer
	if tokenizer == nil {
		tokenizer = text.WordTokenizer{}
	}

	var funcs []text.TokenFunc
	if !opts.KeepCase {
		funcs = append(funcs, text.Lower)
	}
	if opts.RemoveStopWords {
		funcs = append(funcs, text.RemoveStopWords)
	}
	if opts.Stem {
		funcs = append(funcs, text.Stem)
	}

	return &TFIDF{
		opts:      opts,
		tokenizer: tokenizer,
		processor: text.NewProcessor(funcs...),
	}
}

// Fit builds the vocabulary and document frequencies from the corpus. The
// resulting index assignment is stable for the lifetime of the vectorizer.
func (v *TFIDF) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return errors.Errorf("vectorizer: cannot fit on an empty corpus")
	}

	docFreq := make(map[string]int)
	for _, doc := range corpus {
		for _, t := range text.Uniquify(v.terms(doc)) {
			docFreq[t]++
		}
	}

	v.Vocab = buildVocabulary(docFreq)
	v.NumDocs = len(corpus)

	v.IDF = make([]float64, v.Vocab.Len())
	for t, df := range docFreq {
		v.IDF[v.Vocab.Index[t]] = math.Log(float64(1+v.NumDocs)/float64(1+df)) + 1
	}
	return nil
}

// NewTFIDFFromFitted reconstructs a fitted vectorizer from a persisted term
// list and idf weights. Terms keep their persisted order, so the feature
// space is identical to the one the model was trained in.
func NewTFIDFFromFitted(terms []string, idf []float64, numDocs int, opts Options) (*TFIDF, error) {
	if !opts.RawCounts && len(idf) != len(terms) {
		return nil, errors.Errorf("vectorizer: %d idf weights for %d terms", len(idf), len(terms))
	}

	v := NewTFIDF(opts)
	index := make(map[string]int, len(terms))
	for i, t := range terms {
		index[t] = i
	}
	v.Vocab = &Vocabulary{Index: index, Terms: terms}
	v.IDF = idf
	v.NumDocs = numDocs
	return v, nil
}

// Transform maps a text into the fitted feature space. Unknown terms are
// dropped; an input with no in-vocabulary terms yields a valid zero vector.
func (v *TFIDF) Transform(doc string) (FeatureVector, error) {
	if v.Vocab == nil {
		return FeatureVector{}, errors.Wrapf(ErrNotFitted, "transforming %q", doc)
	}

	weights := make(map[int]float64)
	for _, t := range v.terms(doc) {
		if idx, exists := v.Vocab.Index[t]; exists {
			weights[idx]++
		}
	}

	if !v.opts.RawCounts {
		for idx, count := range weights {
			weights[idx] = count * v.IDF[idx]
		}
	}
	if !v.opts.NoNorm {
		l2normalize(weights)
	}
	return newFeatureVector(weights, v.Vocab.Len()), nil
}

// NumFeatures returns the width of the fitted feature space.
func (v *TFIDF) NumFeatures() int {
	return v.Vocab.Len()
}

func (v *TFIDF) terms(doc string) text.Tokens {
	return v.processor.Apply(v.tokenizer.Tokenize(doc))
}
