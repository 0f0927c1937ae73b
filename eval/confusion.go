package eval

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/kiteco/sentiment/classify"
)

// ConfusionMatrix counts (true class, predicted class) pairs over an
// evaluation pass. Rows are true classes, columns predicted classes, both
// ordered by Labels, which matches the classifier's Classes() ordering so
// matrices from different variants line up cell for cell.
type ConfusionMatrix struct {
	Labels []classify.Label
	Counts [][]int

	byLabel map[classify.Label]int
}

// NewConfusionMatrix returns an empty square matrix over the given class set.
func NewConfusionMatrix(labels []classify.Label) *ConfusionMatrix {
	counts := make([][]int, len(labels))
	for i := range counts {
		counts[i] = make([]int, len(labels))
	}
	byLabel := make(map[classify.Label]int, len(labels))
	for i, l := range labels {
		byLabel[l] = i
	}
	return &ConfusionMatrix{Labels: labels, Counts: counts, byLabel: byLabel}
}

// Add increments the cell at (trueLabel, predicted).
func (m *ConfusionMatrix) Add(trueLabel, predicted classify.Label) {
	m.Counts[m.byLabel[trueLabel]][m.byLabel[predicted]]++
}

// Total returns the sum of all cells, i.e. the number of evaluated examples.
func (m *ConfusionMatrix) Total() int {
	var total int
	for _, row := range m.Counts {
		for _, c := range row {
			total += c
		}
	}
	return total
}

// Trace returns the number of correct predictions.
func (m *ConfusionMatrix) Trace() int {
	var trace int
	for i := range m.Labels {
		trace += m.Counts[i][i]
	}
	return trace
}

// RowSum returns the number of examples whose true class is at index i.
func (m *ConfusionMatrix) RowSum(i int) int {
	var sum int
	for _, c := range m.Counts[i] {
		sum += c
	}
	return sum
}

// ColSum returns the number of examples predicted as the class at index i.
func (m *ConfusionMatrix) ColSum(i int) int {
	var sum int
	for _, row := range m.Counts {
		sum += row[i]
	}
	return sum
}

// Render writes the matrix as a text table: one row per true class, one
// column per predicted class. Rendering is decoupled from computation; this
// is the only presentation the package provides.
func (m *ConfusionMatrix) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprint(tw, "true\\pred")
	for _, l := range m.Labels {
		fmt.Fprintf(tw, "\t%d", l)
	}
	fmt.Fprint(tw, "\n")

	for i, l := range m.Labels {
		fmt.Fprintf(tw, "%d", l)
		for j := range m.Labels {
			fmt.Fprintf(tw, "\t%s", humanize.Comma(int64(m.Counts[i][j])))
		}
		fmt.Fprint(tw, "\n")
	}
	return tw.Flush()
}
