package classify

import (
	"fmt"

	"github.com/kiteco/sentiment/errors"
)

// ErrNotTrained is returned when Predict or PredictProba is called on a
// classifier with no trained parameters.
var ErrNotTrained = errors.New("classify: Predict called before Train")

// DimensionMismatchError reports a feature vector whose width differs from
// the width the classifier was trained with.
type DimensionMismatchError struct {
	Got  int
	Want int
}

func (e DimensionMismatchError) Error() string {
	return fmt.Sprintf("classify: feature width %d does not match training width %d", e.Got, e.Want)
}

// DegenerateTrainingError reports a training set that cannot produce a
// usable model: no examples, or fewer than two distinct classes.
type DegenerateTrainingError struct {
	Examples int
	Classes  int
}

func (e DegenerateTrainingError) Error() string {
	return fmt.Sprintf("classify: degenerate training set: %d examples, %d distinct classes", e.Examples, e.Classes)
}

// IsDimensionMismatch reports whether err was caused by a DimensionMismatchError.
func IsDimensionMismatch(err error) bool {
	_, ok := errors.Cause(err).(DimensionMismatchError)
	return ok
}

// IsDegenerateTraining reports whether err was caused by a DegenerateTrainingError.
func IsDegenerateTraining(err error) bool {
	_, ok := errors.Cause(err).(DegenerateTrainingError)
	return ok
}
