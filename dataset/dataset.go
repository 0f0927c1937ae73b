package dataset

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/kiteco/sentiment/classify"
	"github.com/kiteco/sentiment/errors"
	"github.com/kiteco/sentiment/text"
)

const labelPrefix = "__label__"

// Example is one labeled record of the corpus: a raw text snippet and its
// gold sentiment class. Examples are immutable once loaded.
type Example struct {
	Text  string
	Label classify.Label
}

// Load reads a corpus file with one record per line in the form
// "__label__<N><TAB><text>". Blank lines are skipped; anything else that
// does not parse is an error naming the line. An empty corpus is an error,
// since nothing downstream can train on it.
func Load(path string) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening corpus %s", path)
	}
	defer f.Close()

	var examples []Example
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}

		example, err := parseLine(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", path, line)
		}
		examples = append(examples, example)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading corpus %s", path)
	}
	if len(examples) == 0 {
		return nil, errors.Errorf("corpus %s is empty", path)
	}
	return examples, nil
}

func parseLine(raw string) (Example, error) {
	if !strings.HasPrefix(raw, labelPrefix) {
		return Example{}, errors.Errorf("line does not start with %q", labelPrefix)
	}

	parts := strings.SplitN(raw[len(labelPrefix):], "\t", 2)
	if len(parts) != 2 {
		return Example{}, errors.Errorf("no tab separator between label and text")
	}

	label, err := strconv.Atoi(parts[0])
	if err != nil {
		return Example{}, errors.Wrapf(err, "parsing label %q", parts[0])
	}

	return Example{
		Text:  text.Normalize(parts[1]),
		Label: classify.Label(label),
	}, nil
}

// Texts returns the text column of the corpus.
func Texts(examples []Example) []string {
	texts := make([]string, len(examples))
	for i, ex := range examples {
		texts[i] = ex.Text
	}
	return texts
}

// Labels returns the label column of the corpus.
func Labels(examples []Example) []classify.Label {
	labels := make([]classify.Label, len(examples))
	for i, ex := range examples {
		labels[i] = ex.Label
	}
	return labels
}
