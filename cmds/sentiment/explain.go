package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"github.com/montanaflynn/stats"

	"github.com/kiteco/sentiment/classify"
	"github.com/kiteco/sentiment/cmdline"
	"github.com/kiteco/sentiment/errors"
	"github.com/kiteco/sentiment/explain"
	"github.com/kiteco/sentiment/vectorizer"
)

var explainCmd = cmdline.Command{
	Name:     "explain",
	Synopsis: "explain one prediction by attributing weight to input tokens",
	Args: &explainArgs{
		Method:  classify.MethodLogistic,
		Samples: 1000,
		TopK:    10,
		Seed:    42,
	},
}

type explainArgs struct {
	Method    string `arg:"-m,--method" help:"classifier variant: logistic, svm, or nbayes"`
	Train     string `arg:"--train" help:"path to the training corpus (ignored when --model is set)"`
	Model     string `arg:"--model" help:"path to a persisted model file"`
	Text      string `arg:"required,--text" help:"the sentence to explain"`
	Samples   int    `arg:"-n,--num-samples" help:"number of perturbations to draw"`
	TopK      int    `arg:"--top-k" help:"number of tokens to report"`
	Seed      int64  `arg:"--seed" help:"sampling seed, fixed for reproducible explanations"`
	Target    int    `arg:"--target" help:"explain this class instead of the predicted one"`
	Stem      bool   `arg:"--stem" help:"stem terms when building the vocabulary"`
	StopWords bool   `arg:"--stop-words" help:"drop stop words when building the vocabulary"`
}

func (a *explainArgs) Validate() error {
	if a.Train == "" && a.Model == "" {
		return errors.Errorf("either --train or --model is required")
	}
	return validMethods(a.Method)
}

func (a *explainArgs) Handle() error {
	var vec *vectorizer.TFIDF
	var clf classify.Classifier
	var err error
	if a.Model != "" {
		vec, clf, err = loadModel(a.Model)
	} else {
		vec, clf, _, _, err = fitAndTrain(a.Train, a.Method, a.Stem, a.StopWords)
	}
	if err != nil {
		return err
	}

	explainer := explain.New(clf, vec, explain.Options{
		Samples: a.Samples,
		TopK:    a.TopK,
	})

	var exp *explain.Explanation
	if a.Target != 0 {
		exp, err = explainer.ExplainClass(a.Text, classify.Label(a.Target), a.Seed)
	} else {
		exp, err = explainer.Explain(a.Text, a.Seed)
	}
	if err != nil {
		return err
	}
	if len(exp.Tokens) == 0 {
		fmt.Println("nothing to explain: the input has no tokens")
		return nil
	}

	fmt.Printf("predicted class %d; p(class %d) = %.4f over %d samples\n",
		exp.PredictedLabel, exp.TargetLabel, exp.TargetProba, exp.Samples)
	if exp.Degraded {
		log.Printf("explanation is best-effort: the surrogate fit degraded")
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "token\tposition\tweight")
	for _, t := range exp.Tokens {
		fmt.Fprintf(tw, "%s\t%d\t%+.5f\n", t.Token, t.Position, t.Weight)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	magnitudes := make([]float64, len(exp.Tokens))
	for i, t := range exp.Tokens {
		magnitudes[i] = math.Abs(t.Weight)
	}
	mean, err := stats.Mean(magnitudes)
	if err != nil {
		return err
	}
	stddev, err := stats.StandardDeviation(magnitudes)
	if err != nil {
		return err
	}
	fmt.Printf("weight magnitude mean %.5f, stddev %.5f\n", mean, stddev)
	return nil
}
