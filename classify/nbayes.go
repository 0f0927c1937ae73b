package classify

import (
	"math"

	"github.com/kiteco/sentiment/vectorizer"
)

// NBOptions configures training of a NaiveBayes classifier.
type NBOptions struct {
	Alpha float64 // additive smoothing, default 1.0
}

func (o NBOptions) withDefaults() NBOptions {
	if o.Alpha == 0 {
		o.Alpha = 1.0
	}
	return o
}

// NaiveBayes is a multinomial naive Bayes classifier over feature weights.
// LogPrior holds ln p(class) and LogLikelihood holds ln p(feature|class)
// after additive smoothing, one row per class ordered by Classes().
type NaiveBayes struct {
	LogPrior      []float64
	LogLikelihood [][]float64

	classes []Label
	byClass map[Label]int
	dims    int
	opts    NBOptions
}

// NewNaiveBayes returns an untrained classifier.
func NewNaiveBayes(opts NBOptions) *NaiveBayes {
	return &NaiveBayes{opts: opts.withDefaults()}
}

// Classes returns the sorted class set seen at training time.
func (nb *NaiveBayes) Classes() []Label {
	return nb.classes
}

// Train accumulates per-class feature mass, smooths it, and moves to log
// space. Previous parameters are replaced wholesale.
func (nb *NaiveBayes) Train(feats []vectorizer.FeatureVector, labels []Label) error {
	classes, dims, err := checkTraining(feats, labels)
	if err != nil {
		return err
	}

	k := len(classes)
	byClass := classIndex(classes)

	counts := make([][]float64, k)
	for c := 0; c < k; c++ {
		counts[c] = make([]float64, dims)
	}
	docCounts := make([]float64, k)

	for i, f := range feats {
		c := byClass[labels[i]]
		docCounts[c]++
		for j, idx := range f.Indices {
			counts[c][idx] += f.Values[j]
		}
	}

	logPrior := make([]float64, k)
	logLikelihood := make([][]float64, k)
	logTotalDocs := math.Log(float64(len(feats)))
	for c := 0; c < k; c++ {
		logPrior[c] = math.Log(docCounts[c]) - logTotalDocs

		var total float64
		for _, w := range counts[c] {
			total += w
		}
		logDenom := math.Log(total + nb.opts.Alpha*float64(dims))

		logLikelihood[c] = make([]float64, dims)
		for j, w := range counts[c] {
			logLikelihood[c][j] = math.Log(w+nb.opts.Alpha) - logDenom
		}
	}

	nb.LogPrior = logPrior
	nb.LogLikelihood = logLikelihood
	nb.classes = classes
	nb.byClass = byClass
	nb.dims = dims
	return nil
}

// PredictProba returns the posterior distribution over classes, computed in
// log space and normalized through logSumExp.
func (nb *NaiveBayes) PredictProba(feat vectorizer.FeatureVector) ([]float64, error) {
	if err := checkPredict(feat, len(nb.classes) > 0, nb.dims); err != nil {
		return nil, err
	}
	proba := make([]float64, len(nb.classes))
	for c := range nb.classes {
		proba[c] = nb.LogPrior[c] + feat.Dot(nb.LogLikelihood[c])
	}
	softmax(proba)
	return proba, nil
}

// Predict returns the class with the highest posterior.
func (nb *NaiveBayes) Predict(feat vectorizer.FeatureVector) (Prediction, error) {
	proba, err := nb.PredictProba(feat)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{Label: nb.classes[argmax(proba)], Proba: proba}, nil
}
