package vectorizer

import (
	spooky "github.com/dgryski/go-spooky"

	"github.com/kiteco/sentiment/text"
)

// Hashing is a fit-free vectorizer: terms are hashed into a fixed number of
// buckets, so the feature space width is configured rather than learned and
// no vocabulary needs to be stored. Collisions are possible and accepted.
type Hashing struct {
	Dims int

	tokenizer text.Tokenizer
	processor *text.Processor
	noNorm    bool
}

// NewHashing returns a hashing vectorizer with the given feature space
// width.
func NewHashing(dims int, opts Options) *Hashing {
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

	return &Hashing{
		Dims:      dims,
		tokenizer: tokenizer,
		processor: text.NewProcessor(funcs...),
		noNorm:    opts.NoNorm,
	}
}

// Transform hashes each term into its bucket and counts occupancy. It never
// fails: there is no fitted state to be missing.
func (h *Hashing) Transform(doc string) (FeatureVector, error) {
	weights := make(map[int]float64)
	for _, t := range h.processor.Apply(h.tokenizer.Tokenize(doc)) {
		id := spooky.Hash64([]byte(t))
		weights[int(id%uint64(h.Dims))]++
	}
	if !h.noNorm {
		l2normalize(weights)
	}
	return newFeatureVector(weights, h.Dims), nil
}

// NumFeatures returns the configured feature space width.
func (h *Hashing) NumFeatures() int {
	return h.Dims
}
