package classify

import (
	"math"

	"github.com/kiteco/sentiment/vectorizer"
)

// LogisticOptions configures training of a LogisticRegression classifier.
type LogisticOptions struct {
	Iterations int     // gradient descent iteration budget, default 100
	LearnRate  float64 // step size, default 1.0
	L2         float64 // L2 penalty on coefficients (bias unpenalized), default 1e-4
	Tol        float64 // convergence threshold on the largest parameter step, default 1e-6
}

func (o LogisticOptions) withDefaults() LogisticOptions {
	if o.Iterations == 0 {
		o.Iterations = 100
	}
	if o.LearnRate == 0 {
		o.LearnRate = 1.0
	}
	if o.L2 == 0 {
		o.L2 = 1e-4
	}
	if o.Tol == 0 {
		o.Tol = 1e-6
	}
	return o
}

// LogisticRegression is a multinomial logistic regression classifier trained
// by full-batch gradient descent on the mean cross-entropy loss with an L2
// penalty. Coefs and Bias hold one row per class, ordered by Classes().
type LogisticRegression struct {
	Coefs [][]float64
	Bias  []float64

	classes []Label
	byClass map[Label]int
	dims    int
	opts    LogisticOptions
}

// NewLogisticRegression returns an untrained classifier.
func NewLogisticRegression(opts LogisticOptions) *LogisticRegression {
	return &LogisticRegression{opts: opts.withDefaults()}
}

// Classes returns the sorted class set seen at training time.
func (l *LogisticRegression) Classes() []Label {
	return l.classes
}

// Train fits the model. Previous parameters, if any, are replaced wholesale.
func (l *LogisticRegression) Train(feats []vectorizer.FeatureVector, labels []Label) error {
	classes, dims, err := checkTraining(feats, labels)
	if err != nil {
		return err
	}

	k := len(classes)
	byClass := classIndex(classes)
	y := make([]int, len(labels))
	for i, label := range labels {
		y[i] = byClass[label]
	}

	coefs := make([][]float64, k)
	gradW := make([][]float64, k)
	for c := 0; c < k; c++ {
		coefs[c] = make([]float64, dims)
		gradW[c] = make([]float64, dims)
	}
	bias := make([]float64, k)
	gradB := make([]float64, k)

	invN := 1 / float64(len(feats))
	scores := make([]float64, k)

	for iter := 0; iter < l.opts.Iterations; iter++ {
		for c := 0; c < k; c++ {
			for j := range gradW[c] {
				gradW[c][j] = 0
			}
			gradB[c] = 0
		}

		for i, f := range feats {
			for c := 0; c < k; c++ {
				scores[c] = f.Dot(coefs[c]) + bias[c]
			}
			softmax(scores)
			for c := 0; c < k; c++ {
				p := scores[c]
				if c == y[i] {
					p--
				}
				if p == 0 {
					continue
				}
				for j, idx := range f.Indices {
					gradW[c][idx] += p * f.Values[j]
				}
				gradB[c] += p
			}
		}

		var maxStep float64
		for c := 0; c < k; c++ {
			for j := range coefs[c] {
				step := l.opts.LearnRate * (gradW[c][j]*invN + l.opts.L2*coefs[c][j])
				coefs[c][j] -= step
				if s := math.Abs(step); s > maxStep {
					maxStep = s
				}
			}
			step := l.opts.LearnRate * gradB[c] * invN
			bias[c] -= step
			if s := math.Abs(step); s > maxStep {
				maxStep = s
			}
		}
		if maxStep < l.opts.Tol {
			break
		}
	}

	l.Coefs = coefs
	l.Bias = bias
	l.classes = classes
	l.byClass = byClass
	l.dims = dims
	return nil
}

// PredictProba returns the softmax class distribution, aligned with Classes().
func (l *LogisticRegression) PredictProba(feat vectorizer.FeatureVector) ([]float64, error) {
	if err := checkPredict(feat, len(l.classes) > 0, l.dims); err != nil {
		return nil, err
	}
	proba := make([]float64, len(l.classes))
	for c := range l.classes {
		proba[c] = feat.Dot(l.Coefs[c]) + l.Bias[c]
	}
	softmax(proba)
	return proba, nil
}

// Predict returns the most probable class.
func (l *LogisticRegression) Predict(feat vectorizer.FeatureVector) (Prediction, error) {
	proba, err := l.PredictProba(feat)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{Label: l.classes[argmax(proba)], Proba: proba}, nil
}
