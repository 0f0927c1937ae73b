package main

import (
	"log"

	"github.com/kiteco/sentiment/classify"
	"github.com/kiteco/sentiment/cmdline"
	"github.com/kiteco/sentiment/errors"
	"github.com/kiteco/sentiment/eval"
	"github.com/kiteco/sentiment/serialization"
)

var trainCmd = cmdline.Command{
	Name:     "train",
	Synopsis: "train one classifier variant and persist its parameter set",
	Args: &trainArgs{
		Method: classify.MethodLogistic,
		Model:  "model.json.gz",
	},
}

type trainArgs struct {
	Method    string `arg:"-m,--method" help:"classifier variant: logistic, svm, or nbayes"`
	Train     string `arg:"required,--train" help:"path to the training corpus"`
	Model     string `arg:"--model" help:"output path for the trained model (.json[.gz] or .gob[.gz])"`
	Stem      bool   `arg:"--stem" help:"stem terms when building the vocabulary"`
	StopWords bool   `arg:"--stop-words" help:"drop stop words when building the vocabulary"`
}

func (a *trainArgs) Validate() error {
	return validMethods(a.Method)
}

func (a *trainArgs) Handle() error {
	vec, clf, feats, labels, err := fitAndTrain(a.Train, a.Method, a.Stem, a.StopWords)
	if err != nil {
		return err
	}

	res, err := eval.Evaluate(clf, feats, labels)
	if err != nil {
		return errors.Wrapf(err, "computing training accuracy")
	}
	log.Printf("%s training accuracy %.4f, macro-F1 %.4f", a.Method, res.Accuracy, res.MacroF1)

	exporter, ok := clf.(paramsExporter)
	if !ok {
		return errors.Errorf("%s does not export a parameter set", a.Method)
	}
	mf := modelFile{
		Params:    exporter.Params(),
		Terms:     vec.Vocab.Terms,
		IDF:       vec.IDF,
		NumDocs:   vec.NumDocs,
		Stem:      a.Stem,
		StopWords: a.StopWords,
	}
	if err := serialization.Encode(a.Model, mf); err != nil {
		return errors.Wrapf(err, "writing model to %s", a.Model)
	}
	log.Printf("wrote model to %s", a.Model)
	return nil
}
