package classify

import (
	"math"
	"math/rand"

	"github.com/kiteco/sentiment/vectorizer"
)

// SVMOptions configures training of a MarginSVM classifier.
type SVMOptions struct {
	Epochs    int     // SGD passes over the training set, default 100
	LearnRate float64 // step size, default 0.1
	L2        float64 // L2 penalty, default 1e-3
	Seed      int64   // shuffling seed, default 42
}

func (o SVMOptions) withDefaults() SVMOptions {
	if o.Epochs == 0 {
		o.Epochs = 100
	}
	if o.LearnRate == 0 {
		o.LearnRate = 0.1
	}
	if o.L2 == 0 {
		o.L2 = 1e-3
	}
	if o.Seed == 0 {
		o.Seed = 42
	}
	return o
}

// MarginSVM is a one-vs-rest linear SVM trained by stochastic gradient
// descent on the hinge loss with an L2 penalty. It has no native probability
// output; PredictProba squashes each class's signed decision score through a
// per-class Platt-calibrated sigmoid fitted on the training scores, then
// normalizes, so callers can treat it uniformly with the probabilistic
// variants.
type MarginSVM struct {
	Coefs [][]float64
	Bias  []float64

	// Platt sigmoid parameters per class: p = sigmoid(A*score + B).
	PlattA []float64
	PlattB []float64

	classes []Label
	byClass map[Label]int
	dims    int
	opts    SVMOptions
}

// NewMarginSVM returns an untrained classifier.
func NewMarginSVM(opts SVMOptions) *MarginSVM {
	return &MarginSVM{opts: opts.withDefaults()}
}

// Classes returns the sorted class set seen at training time.
func (m *MarginSVM) Classes() []Label {
	return m.classes
}

// Train fits one binary hinge-loss model per class against the rest, then
// calibrates the per-class sigmoids. Previous parameters are replaced
// wholesale. Example order within each epoch comes from the seeded source,
// so training is reproducible.
func (m *MarginSVM) Train(feats []vectorizer.FeatureVector, labels []Label) error {
	classes, dims, err := checkTraining(feats, labels)
	if err != nil {
		return err
	}

	k := len(classes)
	coefs := make([][]float64, k)
	bias := make([]float64, k)
	plattA := make([]float64, k)
	plattB := make([]float64, k)

	rng := rand.New(rand.NewSource(m.opts.Seed))

	for c, class := range classes {
		binary := make([]float64, len(labels))
		for i, label := range labels {
			if label == class {
				binary[i] = 1
			} else {
				binary[i] = -1
			}
		}

		w, b := m.trainBinary(feats, binary, dims, rng)
		coefs[c] = w
		bias[c] = b

		scores := make([]float64, len(feats))
		for i, f := range feats {
			scores[i] = f.Dot(w) + b
		}
		plattA[c], plattB[c] = fitPlatt(scores, binary)
	}

	m.Coefs = coefs
	m.Bias = bias
	m.PlattA = plattA
	m.PlattB = plattB
	m.classes = classes
	m.byClass = classIndex(classes)
	m.dims = dims
	return nil
}

// trainBinary runs hinge-loss SGD for a single one-vs-rest problem. The
// weight vector is kept implicitly scaled so the per-step L2 shrinkage costs
// O(1) instead of O(dims).
func (m *MarginSVM) trainBinary(feats []vectorizer.FeatureVector, binary []float64, dims int, rng *rand.Rand) ([]float64, float64) {
	w := make([]float64, dims)
	var b float64
	scale := 1.0
	lr := m.opts.LearnRate

	order := make([]int, len(feats))
	for i := range order {
		order[i] = i
	}

	for epoch := 0; epoch < m.opts.Epochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for _, i := range order {
			f := feats[i]
			y := binary[i]
			margin := y * (scale*f.Dot(w) + b)

			scale *= 1 - lr*m.opts.L2
			if scale < 1e-9 {
				for j := range w {
					w[j] *= scale
				}
				scale = 1
			}
			if margin < 1 {
				for j, idx := range f.Indices {
					w[idx] += lr * y * f.Values[j] / scale
				}
				b += lr * y
			}
		}
	}

	for j := range w {
		w[j] *= scale
	}
	return w, b
}

// fitPlatt fits sigmoid(a*score + b) to binary targets (given as ±1) by
// gradient descent on the logistic loss, using Platt's smoothed targets.
func fitPlatt(scores []float64, binary []float64) (float64, float64) {
	var pos, neg float64
	for _, y := range binary {
		if y > 0 {
			pos++
		} else {
			neg++
		}
	}
	tPos := (pos + 1) / (pos + 2)
	tNeg := 1 / (neg + 2)

	targets := make([]float64, len(binary))
	for i, y := range binary {
		if y > 0 {
			targets[i] = tPos
		} else {
			targets[i] = tNeg
		}
	}

	a, b := 1.0, 0.0
	invN := 1 / float64(len(scores))
	for iter := 0; iter < 1000; iter++ {
		var ga, gb float64
		for i, s := range scores {
			d := sigmoid(a*s+b) - targets[i]
			ga += d * s
			gb += d
		}
		stepA := 0.1 * ga * invN
		stepB := 0.1 * gb * invN
		a -= stepA
		b -= stepB
		if math.Abs(stepA) < 1e-8 && math.Abs(stepB) < 1e-8 {
			break
		}
	}
	return a, b
}

// DecisionScores returns the signed distance to each class's separating
// boundary, aligned with Classes().
func (m *MarginSVM) DecisionScores(feat vectorizer.FeatureVector) ([]float64, error) {
	if err := checkPredict(feat, len(m.classes) > 0, m.dims); err != nil {
		return nil, err
	}
	scores := make([]float64, len(m.classes))
	for c := range m.classes {
		scores[c] = feat.Dot(m.Coefs[c]) + m.Bias[c]
	}
	return scores, nil
}

// PredictProba maps each decision score through its calibrated sigmoid and
// normalizes the result to a distribution.
func (m *MarginSVM) PredictProba(feat vectorizer.FeatureVector) ([]float64, error) {
	scores, err := m.DecisionScores(feat)
	if err != nil {
		return nil, err
	}

	var sum float64
	proba := make([]float64, len(scores))
	for c, s := range scores {
		proba[c] = sigmoid(m.PlattA[c]*s + m.PlattB[c])
		sum += proba[c]
	}
	if sum == 0 {
		uniform := 1 / float64(len(proba))
		for c := range proba {
			proba[c] = uniform
		}
		return proba, nil
	}
	for c := range proba {
		proba[c] /= sum
	}
	return proba, nil
}

// Predict returns the class with the highest decision score.
func (m *MarginSVM) Predict(feat vectorizer.FeatureVector) (Prediction, error) {
	scores, err := m.DecisionScores(feat)
	if err != nil {
		return Prediction{}, err
	}
	proba, err := m.PredictProba(feat)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{Label: m.classes[argmax(scores)], Proba: proba}, nil
}
