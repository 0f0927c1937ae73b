package classify

import (
	"github.com/kiteco/sentiment/vectorizer"
)

// Label is an ordinal sentiment class (1..5 for SST-5 style corpora).
type Label int

// Prediction is the result of classifying one feature vector. Proba is
// aligned with the classifier's Classes() ordering; it sums to 1 within
// floating-point tolerance.
type Prediction struct {
	Label Label
	Proba []float64
}

// Classifier is the contract shared by all classifier variants. The
// evaluator and the explainer depend only on this interface, never on a
// concrete variant.
//
// Train fails with a DegenerateTrainingError when given no examples or
// fewer than two distinct classes, and with a DimensionMismatchError when
// feature widths disagree. Predict and PredictProba fail with ErrNotTrained
// before training and with a DimensionMismatchError when the input width
// differs from the training width. Prediction is idempotent: parameters
// only change on an explicit retrain.
type Classifier interface {
	Train(feats []vectorizer.FeatureVector, labels []Label) error
	Predict(feat vectorizer.FeatureVector) (Prediction, error)
	PredictProba(feat vectorizer.FeatureVector) ([]float64, error)
	Classes() []Label
}
