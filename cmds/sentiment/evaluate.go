package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kiteco/sentiment/classify"
	"github.com/kiteco/sentiment/cmdline"
	"github.com/kiteco/sentiment/dataset"
	"github.com/kiteco/sentiment/errors"
	"github.com/kiteco/sentiment/eval"
)

var evaluateCmd = cmdline.Command{
	Name:     "evaluate",
	Synopsis: "train selected variants and report accuracy, F1, and the confusion matrix",
	Args: &evaluateArgs{
		Methods: strings.Join([]string{classify.MethodLogistic, classify.MethodSVM}, ","),
	},
}

type evaluateArgs struct {
	Methods   string `arg:"-m,--methods" help:"comma-separated classifier variants: logistic, svm, nbayes"`
	Train     string `arg:"required,--train" help:"path to the training corpus"`
	Test      string `arg:"required,--test" help:"path to the held-out test corpus"`
	Stem      bool   `arg:"--stem" help:"stem terms when building the vocabulary"`
	StopWords bool   `arg:"--stop-words" help:"drop stop words when building the vocabulary"`
}

func (a *evaluateArgs) Validate() error {
	return validMethods(a.Methods)
}

func (a *evaluateArgs) Handle() error {
	testExamples, err := dataset.Load(a.Test)
	if err != nil {
		return err
	}

	var completed int
	for _, method := range strings.Split(a.Methods, ",") {
		vec, clf, _, _, err := fitAndTrain(a.Train, method, a.Stem, a.StopWords)
		if err != nil {
			log.Printf("skipping %s: %v", method, err)
			continue
		}

		testFeats, err := vectorize(vec, dataset.Texts(testExamples), "Vectorizing test corpus")
		if err != nil {
			log.Printf("skipping %s: %v", method, err)
			continue
		}

		res, err := eval.Evaluate(clf, testFeats, dataset.Labels(testExamples))
		if err != nil {
			log.Printf("skipping %s: %v", method, err)
			continue
		}

		fmt.Printf("== %s ==\n", method)
		if err := res.Render(os.Stdout); err != nil {
			return err
		}
		fmt.Println()
		completed++
	}

	if completed == 0 {
		return errors.Errorf("no classifier variant ran to completion")
	}
	return nil
}
