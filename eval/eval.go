package eval

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/montanaflynn/stats"

	"github.com/kiteco/sentiment/classify"
	"github.com/kiteco/sentiment/errors"
	"github.com/kiteco/sentiment/vectorizer"
)

// ClassMetrics holds the per-class precision, recall, and F1 derived from
// one row/column of the confusion matrix.
type ClassMetrics struct {
	Label     classify.Label
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Result is the outcome of evaluating a trained classifier on a labeled set.
type Result struct {
	Accuracy  float64
	MacroF1   float64
	LogLoss   float64
	PerClass  []ClassMetrics
	Confusion *ConfusionMatrix
	Evaluated int
}

// Evaluate runs the classifier over a held-out labeled set. Class ordering
// in the matrix and the per-class metrics follows the classifier's Classes()
// so results are directly comparable across variants. A class with zero
// predicted or zero true instances reports 0 for the affected metric rather
// than failing.
func Evaluate(c classify.Classifier, feats []vectorizer.FeatureVector, labels []classify.Label) (*Result, error) {
	if len(feats) == 0 {
		return nil, errors.Errorf("eval: empty evaluation set")
	}
	if len(feats) != len(labels) {
		return nil, errors.Errorf("eval: %d features but %d labels", len(feats), len(labels))
	}

	classes := c.Classes()
	byLabel := make(map[classify.Label]int, len(classes))
	for i, l := range classes {
		byLabel[l] = i
	}

	matrix := NewConfusionMatrix(classes)
	var logLoss float64

	for i, feat := range feats {
		pred, err := c.Predict(feat)
		if err != nil {
			return nil, errors.Wrapf(err, "evaluating example %d", i)
		}
		if _, known := byLabel[labels[i]]; !known {
			return nil, errors.Errorf("eval: example %d has label %d outside the trained class set", i, labels[i])
		}
		matrix.Add(labels[i], pred.Label)

		p := pred.Proba[byLabel[labels[i]]]
		if p < 1e-15 {
			p = 1e-15
		}
		logLoss -= math.Log(p)
	}

	perClass := make([]ClassMetrics, len(classes))
	f1s := make([]float64, len(classes))
	for i, label := range classes {
		correct := float64(matrix.Counts[i][i])
		predicted := float64(matrix.ColSum(i))
		actual := float64(matrix.RowSum(i))

		var precision, recall, f1 float64
		if predicted > 0 {
			precision = correct / predicted
		}
		if actual > 0 {
			recall = correct / actual
		}
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}

		perClass[i] = ClassMetrics{
			Label:     label,
			Precision: precision,
			Recall:    recall,
			F1:        f1,
			Support:   int(actual),
		}
		f1s[i] = f1
	}

	macroF1, err := stats.Mean(f1s)
	if err != nil {
		return nil, errors.Wrapf(err, "computing macro F1")
	}

	return &Result{
		Accuracy:  float64(matrix.Trace()) / float64(matrix.Total()),
		MacroF1:   macroF1,
		LogLoss:   logLoss / float64(len(feats)),
		PerClass:  perClass,
		Confusion: matrix,
		Evaluated: len(feats),
	}, nil
}

// Render writes the full evaluation report as text tables.
func (r *Result) Render(w io.Writer) error {
	fmt.Fprintf(w, "accuracy: %.4f  macro-F1: %.4f  log-loss: %.4f  (%d examples)\n\n",
		r.Accuracy, r.MacroF1, r.LogLoss, r.Evaluated)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "class\tprecision\trecall\tf1\tsupport")
	for _, m := range r.PerClass {
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\t%d\n", m.Label, m.Precision, m.Recall, m.F1, m.Support)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	return r.Confusion.Render(w)
}
