package explain

import (
	"log"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/kiteco/sentiment/classify"
	"github.com/kiteco/sentiment/errors"
	"github.com/kiteco/sentiment/text"
	"github.com/kiteco/sentiment/vectorizer"
	"github.com/kiteco/sentiment/workerpool"
)

// Options configures the explainer. Zero values take the defaults below.
type Options struct {
	// Samples is the number of perturbations drawn per explanation,
	// default 5000.
	Samples int
	// KernelWidth is the bandwidth of the exponential locality kernel,
	// default 25.
	KernelWidth float64
	// TopK truncates the returned token ranking, default 10.
	TopK int
	// L1 and L2 are the surrogate regression penalties, defaults 0.01 and 1.
	L1 float64
	L2 float64
	// MaxIter bounds the surrogate solver, default 1000.
	MaxIter int
	// Tol is the solver convergence threshold, default 1e-6.
	Tol float64
	// Workers sizes the scoring pool; 0 means GOMAXPROCS.
	Workers int
	// CacheSize bounds the per-call prediction cache, default 4096.
	CacheSize int
}

func (o Options) withDefaults() Options {
	if o.Samples == 0 {
		o.Samples = 5000
	}
	if o.KernelWidth == 0 {
		o.KernelWidth = 25
	}
	if o.TopK == 0 {
		o.TopK = 10
	}
	if o.L1 == 0 {
		o.L1 = 0.01
	}
	if o.L2 == 0 {
		o.L2 = 1.0
	}
	if o.MaxIter == 0 {
		o.MaxIter = 1000
	}
	if o.Tol == 0 {
		o.Tol = 1e-6
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.CacheSize == 0 {
		o.CacheSize = 4096
	}
	return o
}

// TokenWeight is one token's contribution to the explanation. A positive
// weight pushes the prediction toward the target class.
type TokenWeight struct {
	Token    string
	Position int
	Weight   float64
}

// Explanation is the ranked local explanation of one prediction. Degraded
// marks a best-effort result from a rank-deficient or non-converged
// surrogate fit, as opposed to an exact one.
type Explanation struct {
	PredictedLabel classify.Label
	TargetLabel    classify.Label
	TargetProba    float64
	Tokens         []TokenWeight
	Samples        int
	Degraded       bool
}

// Perturbation is one masked variant of the input: the reconstructed text
// and the presence vector over the original token positions.
type Perturbation struct {
	Text string
	Kept []bool
}

// Explainer approximates which input tokens push a classifier's prediction
// toward or away from a class, by perturbing the input, re-scoring the
// perturbations, and fitting a locality-weighted sparse linear surrogate.
// It never mutates the classifier or the vectorizer, and keeps no state
// across calls, so one Explainer may serve concurrent requests.
type Explainer struct {
	classifier classify.Classifier
	vectorizer vectorizer.Vectorizer
	tokenizer  text.Tokenizer
	opts       Options
}

// New returns an Explainer over a trained classifier and its fitted
// vectorizer.
func New(c classify.Classifier, v vectorizer.Vectorizer, opts Options) *Explainer {
	return &Explainer{
		classifier: c,
		vectorizer: v,
		tokenizer:  text.SpaceTokenizer{},
		opts:       opts.withDefaults(),
	}
}

// Explain explains the classifier's own prediction for the input. The seed
// makes the perturbation sample, and therefore the explanation, reproducible.
func (e *Explainer) Explain(input string, seed int64) (*Explanation, error) {
	return e.explain(input, nil, seed)
}

// ExplainClass explains the probability of a specific target class instead
// of the predicted one.
func (e *Explainer) ExplainClass(input string, target classify.Label, seed int64) (*Explanation, error) {
	return e.explain(input, &target, seed)
}

func (e *Explainer) explain(input string, target *classify.Label, seed int64) (*Explanation, error) {
	tokens := e.tokenizer.Tokenize(input)
	if len(tokens) == 0 {
		return &Explanation{}, nil
	}

	feat, err := e.vectorizer.Transform(input)
	if err != nil {
		return nil, errors.Wrapf(err, "vectorizing input")
	}
	pred, err := e.classifier.Predict(feat)
	if err != nil {
		return nil, errors.Wrapf(err, "scoring input")
	}

	targetLabel := pred.Label
	if target != nil {
		targetLabel = *target
	}
	targetIdx := -1
	for i, c := range e.classifier.Classes() {
		if c == targetLabel {
			targetIdx = i
		}
	}
	if targetIdx < 0 {
		return nil, errors.Errorf("explain: class %d is not in the classifier's class set", targetLabel)
	}

	perturbations := e.sample(tokens, seed)
	targets, err := e.score(perturbations, targetIdx)
	if err != nil {
		return nil, err
	}

	weights := make([]float64, len(perturbations))
	for i, p := range perturbations {
		weights[i] = e.localityWeight(p.Kept)
	}

	// column-wise presence matrix
	columns := make([][]int, len(tokens))
	for i, p := range perturbations {
		for j, kept := range p.Kept {
			if kept {
				columns[j] = append(columns[j], i)
			}
		}
	}

	fit := fitSurrogate(columns, targets, weights, len(tokens), e.opts.L1, e.opts.L2, e.opts.MaxIter, e.opts.Tol)
	if fit.Degraded {
		log.Printf("explain: degraded surrogate fit for %d tokens over %d samples", len(tokens), len(perturbations))
	}

	ranked := make([]TokenWeight, len(tokens))
	for j, tok := range tokens {
		ranked[j] = TokenWeight{Token: tok, Position: j, Weight: fit.Coefs[j]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		wi, wj := math.Abs(ranked[i].Weight), math.Abs(ranked[j].Weight)
		if wi != wj {
			return wi > wj
		}
		return ranked[i].Position < ranked[j].Position
	})
	if len(ranked) > e.opts.TopK {
		ranked = ranked[:e.opts.TopK]
	}

	return &Explanation{
		PredictedLabel: pred.Label,
		TargetLabel:    targetLabel,
		TargetProba:    pred.Proba[targetIdx],
		Tokens:         ranked,
		Samples:        len(perturbations),
		Degraded:       fit.Degraded,
	}, nil
}

// sample draws the perturbation set. Sample 0 is always the intact input;
// each remaining sample masks a uniformly drawn number of distinct
// positions. Masks are drawn sequentially from the seed, so the sample is
// reproducible regardless of how scoring is parallelized later.
func (e *Explainer) sample(tokens text.Tokens, seed int64) []Perturbation {
	rng := rand.New(rand.NewSource(seed))
	n := len(tokens)

	perturbations := make([]Perturbation, 0, e.opts.Samples)

	intact := make([]bool, n)
	for i := range intact {
		intact[i] = true
	}
	perturbations = append(perturbations, Perturbation{Text: strings.Join(tokens, " "), Kept: intact})

	for s := 1; s < e.opts.Samples; s++ {
		masked := 1 + rng.Intn(n)
		kept := make([]bool, n)
		for i := range kept {
			kept[i] = true
		}
		for _, pos := range rng.Perm(n)[:masked] {
			kept[pos] = false
		}

		var remaining []string
		for i, keep := range kept {
			if keep {
				remaining = append(remaining, tokens[i])
			}
		}
		perturbations = append(perturbations, Perturbation{Text: strings.Join(remaining, " "), Kept: kept})
	}
	return perturbations
}

// score obtains the target-class probability for every perturbation. Scoring
// is fanned out over a worker pool and memoized by reconstructed text, since
// short inputs repeat masks often. Results are index-addressed so
// parallelism cannot affect the output.
func (e *Explainer) score(perturbations []Perturbation, targetIdx int) ([]float64, error) {
	cache, err := lru.New(e.opts.CacheSize)
	if err != nil {
		return nil, errors.Wrapf(err, "creating prediction cache")
	}

	targets := make([]float64, len(perturbations))
	jobs := make([]workerpool.Job, len(perturbations))
	for i := range perturbations {
		i := i
		jobs[i] = func() error {
			doc := perturbations[i].Text
			if cached, hit := cache.Get(doc); hit {
				targets[i] = cached.(float64)
				return nil
			}

			feat, err := e.vectorizer.Transform(doc)
			if err != nil {
				return errors.Wrapf(err, "vectorizing perturbation %d", i)
			}
			proba, err := e.classifier.PredictProba(feat)
			if err != nil {
				return errors.Wrapf(err, "scoring perturbation %d", i)
			}

			targets[i] = proba[targetIdx]
			cache.Add(doc, proba[targetIdx])
			return nil
		}
	}

	pool := workerpool.New(e.opts.Workers)
	pool.Add(jobs)
	if err := pool.Wait(); err != nil {
		pool.Stop()
		return nil, errors.Wrapf(err, "scoring perturbations")
	}
	pool.Stop()
	return targets, nil
}

// localityWeight maps a presence vector to its kernel weight. The distance
// is the cosine distance between the presence vector and the all-ones vector
// (scaled by 100), which for binary vectors is 1 - sqrt(kept/total) and thus
// monotone in the number of masked tokens.
func (e *Explainer) localityWeight(kept []bool) float64 {
	var keptCount float64
	for _, k := range kept {
		if k {
			keptCount++
		}
	}
	distance := 100 * (1 - math.Sqrt(keptCount/float64(len(kept))))
	return math.Sqrt(math.Exp(-(distance * distance) / (e.opts.KernelWidth * e.opts.KernelWidth)))
}
