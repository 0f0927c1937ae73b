package classify

import (
	"math"
	"sort"

	"github.com/kiteco/sentiment/errors"
	"github.com/kiteco/sentiment/vectorizer"
)

// logSumExp receives a slice of log scores: log(a), log(b), log(c)...
// and returns log(a + b + c....)
func logSumExp(logs []float64) float64 {
	max := math.Inf(-1)
	for _, l := range logs {
		if l > max {
			max = l
		}
	}
	var sum float64
	for _, l := range logs {
		sum += math.Exp(l - max)
	}
	return max + math.Log(sum)
}

// softmax exponentiates and normalizes scores in place, in log-sum-exp
// stabilized form.
func softmax(scores []float64) {
	logSum := logSumExp(scores)
	for i, s := range scores {
		scores[i] = math.Exp(s - logSum)
	}
}

// argmax returns the index of the largest value; ties go to the lowest index.
func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

func sigmoid(score float64) float64 {
	return 1 / (1 + math.Exp(-score))
}

// checkTraining validates the shared Train preconditions and returns the
// sorted distinct class set and the feature width.
func checkTraining(feats []vectorizer.FeatureVector, labels []Label) ([]Label, int, error) {
	if len(feats) != len(labels) {
		return nil, 0, errors.Errorf("classify: %d features but %d labels", len(feats), len(labels))
	}
	if len(feats) == 0 {
		return nil, 0, DegenerateTrainingError{}
	}

	seen := make(map[Label]struct{})
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	classes := make([]Label, 0, len(seen))
	for l := range seen {
		classes = append(classes, l)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	if len(classes) < 2 {
		return nil, 0, DegenerateTrainingError{Examples: len(feats), Classes: len(classes)}
	}

	dims := feats[0].Dims
	for _, f := range feats {
		if f.Dims != dims {
			return nil, 0, DimensionMismatchError{Got: f.Dims, Want: dims}
		}
	}
	return classes, dims, nil
}

// checkPredict validates the shared Predict preconditions.
func checkPredict(feat vectorizer.FeatureVector, trained bool, dims int) error {
	if !trained {
		return ErrNotTrained
	}
	if feat.Dims != dims {
		return DimensionMismatchError{Got: feat.Dims, Want: dims}
	}
	return nil
}

// classIndex maps each label to its position in the sorted class set.
func classIndex(classes []Label) map[Label]int {
	index := make(map[Label]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	return index
}
