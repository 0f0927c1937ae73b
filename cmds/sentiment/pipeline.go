package main

import (
	"log"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/sbwhitecap/tqdm"
	"github.com/sbwhitecap/tqdm/iterators"

	"github.com/kiteco/sentiment/classify"
	"github.com/kiteco/sentiment/dataset"
	"github.com/kiteco/sentiment/errors"
	"github.com/kiteco/sentiment/serialization"
	"github.com/kiteco/sentiment/vectorizer"
)

// modelFile is the persisted form of a trained pipeline: the classifier
// parameter set plus the fitted vocabulary that defines its feature space.
type modelFile struct {
	Params    classify.Params
	Terms     []string
	IDF       []float64
	NumDocs   int
	Stem      bool
	StopWords bool
}

func vectorizerOptions(stem, stopWords bool) vectorizer.Options {
	return vectorizer.Options{Stem: stem, RemoveStopWords: stopWords}
}

// vectorize transforms every text, with progress since corpora run to
// thousands of lines.
func vectorize(v vectorizer.Vectorizer, texts []string, desc string) ([]vectorizer.FeatureVector, error) {
	feats := make([]vectorizer.FeatureVector, len(texts))
	var failure error
	err := tqdm.With(iterators.Interval(0, len(texts)), desc, func(c interface{}) (brk bool) {
		i := c.(int)
		feat, err := v.Transform(texts[i])
		if err != nil {
			failure = errors.Wrapf(err, "vectorizing example %d", i)
			return true
		}
		feats[i] = feat
		return
	})
	if failure != nil {
		return nil, failure
	}
	if err != nil {
		return nil, err
	}
	return feats, nil
}

// fitAndTrain loads the training corpus, fits the vectorizer on it, and
// trains one classifier variant.
func fitAndTrain(trainPath, method string, stem, stopWords bool) (*vectorizer.TFIDF, classify.Classifier, []vectorizer.FeatureVector, []classify.Label, error) {
	examples, err := dataset.Load(trainPath)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	log.Printf("loaded %s training examples from %s", humanize.Comma(int64(len(examples))), trainPath)

	vec := vectorizer.NewTFIDF(vectorizerOptions(stem, stopWords))
	if err := vec.Fit(dataset.Texts(examples)); err != nil {
		return nil, nil, nil, nil, err
	}
	log.Printf("fitted vocabulary of %s terms", humanize.Comma(int64(vec.NumFeatures())))

	feats, err := vectorize(vec, dataset.Texts(examples), "Vectorizing training corpus")
	if err != nil {
		return nil, nil, nil, nil, err
	}

	clf, err := classify.New(method)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	labels := dataset.Labels(examples)
	if err := clf.Train(feats, labels); err != nil {
		return nil, nil, nil, nil, errors.Wrapf(err, "training %s", method)
	}
	return vec, clf, feats, labels, nil
}

type paramsExporter interface {
	Params() classify.Params
}

// loadModel reconstructs a trained pipeline from a persisted model file.
func loadModel(path string) (*vectorizer.TFIDF, classify.Classifier, error) {
	var mf modelFile
	if err := serialization.Decode(path, &mf); err != nil {
		return nil, nil, err
	}

	vec, err := vectorizer.NewTFIDFFromFitted(mf.Terms, mf.IDF, mf.NumDocs, vectorizerOptions(mf.Stem, mf.StopWords))
	if err != nil {
		return nil, nil, err
	}
	clf, err := classify.FromParams(mf.Params)
	if err != nil {
		return nil, nil, err
	}
	return vec, clf, nil
}

func validMethods(methods string) error {
	for _, m := range strings.Split(methods, ",") {
		switch m {
		case classify.MethodLogistic, classify.MethodSVM, classify.MethodNBayes:
		default:
			return errors.Errorf("unknown method %q (want %s, %s, or %s)",
				m, classify.MethodLogistic, classify.MethodSVM, classify.MethodNBayes)
		}
	}
	return nil
}
