package classify

import (
	"github.com/kiteco/sentiment/errors"
)

// Method names for the classifier variants, as selected on the command line
// and recorded in persisted parameter sets.
const (
	MethodLogistic = "logistic"
	MethodSVM      = "svm"
	MethodNBayes   = "nbayes"
)

// Params is the loadable parameter set of a trained classifier. It carries
// everything prediction needs; training options are not persisted.
type Params struct {
	Method  string
	Dims    int
	Classes []Label

	// linear variants
	Coefs  [][]float64 `json:",omitempty"`
	Bias   []float64   `json:",omitempty"`
	PlattA []float64   `json:",omitempty"`
	PlattB []float64   `json:",omitempty"`

	// naive Bayes
	LogPrior      []float64   `json:",omitempty"`
	LogLikelihood [][]float64 `json:",omitempty"`
}

// New returns an untrained classifier for the given method name with
// default options.
func New(method string) (Classifier, error) {
	switch method {
	case MethodLogistic:
		return NewLogisticRegression(LogisticOptions{}), nil
	case MethodSVM:
		return NewMarginSVM(SVMOptions{}), nil
	case MethodNBayes:
		return NewNaiveBayes(NBOptions{}), nil
	}
	return nil, errors.Errorf("classify: unknown method %q", method)
}

// Params exports the trained parameter set.
func (l *LogisticRegression) Params() Params {
	return Params{
		Method:  MethodLogistic,
		Dims:    l.dims,
		Classes: l.classes,
		Coefs:   l.Coefs,
		Bias:    l.Bias,
	}
}

// Params exports the trained parameter set.
func (m *MarginSVM) Params() Params {
	return Params{
		Method:  MethodSVM,
		Dims:    m.dims,
		Classes: m.classes,
		Coefs:   m.Coefs,
		Bias:    m.Bias,
		PlattA:  m.PlattA,
		PlattB:  m.PlattB,
	}
}

// Params exports the trained parameter set.
func (nb *NaiveBayes) Params() Params {
	return Params{
		Method:        MethodNBayes,
		Dims:          nb.dims,
		Classes:       nb.classes,
		LogPrior:      nb.LogPrior,
		LogLikelihood: nb.LogLikelihood,
	}
}

// FromParams reconstructs a trained classifier from a parameter set.
func FromParams(p Params) (Classifier, error) {
	if len(p.Classes) < 2 {
		return nil, errors.Errorf("classify: parameter set has %d classes", len(p.Classes))
	}
	switch p.Method {
	case MethodLogistic:
		if len(p.Coefs) != len(p.Classes) || len(p.Bias) != len(p.Classes) {
			return nil, errors.Errorf("classify: malformed logistic parameter set")
		}
		return &LogisticRegression{
			Coefs:   p.Coefs,
			Bias:    p.Bias,
			classes: p.Classes,
			byClass: classIndex(p.Classes),
			dims:    p.Dims,
			opts:    LogisticOptions{}.withDefaults(),
		}, nil
	case MethodSVM:
		if len(p.Coefs) != len(p.Classes) || len(p.Bias) != len(p.Classes) ||
			len(p.PlattA) != len(p.Classes) || len(p.PlattB) != len(p.Classes) {
			return nil, errors.Errorf("classify: malformed svm parameter set")
		}
		return &MarginSVM{
			Coefs:   p.Coefs,
			Bias:    p.Bias,
			PlattA:  p.PlattA,
			PlattB:  p.PlattB,
			classes: p.Classes,
			byClass: classIndex(p.Classes),
			dims:    p.Dims,
			opts:    SVMOptions{}.withDefaults(),
		}, nil
	case MethodNBayes:
		if len(p.LogPrior) != len(p.Classes) || len(p.LogLikelihood) != len(p.Classes) {
			return nil, errors.Errorf("classify: malformed nbayes parameter set")
		}
		return &NaiveBayes{
			LogPrior:      p.LogPrior,
			LogLikelihood: p.LogLikelihood,
			classes:       p.Classes,
			byClass:       classIndex(p.Classes),
			dims:          p.Dims,
			opts:          NBOptions{}.withDefaults(),
		}, nil
	}
	return nil, errors.Errorf("classify: unknown method %q", p.Method)
}
