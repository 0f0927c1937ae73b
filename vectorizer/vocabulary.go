package vectorizer

import "sort"

// Vocabulary maps terms to stable integer indices. Indices are assigned over
// the sorted term set at fit time and never change for the lifetime of the
// fitted vectorizer.
type Vocabulary struct {
	Index map[string]int
	Terms []string
}

// buildVocabulary assigns indices 0..n-1 over the sorted unique terms.
func buildVocabulary(terms map[string]int) *Vocabulary {
	sorted := make([]string, 0, len(terms))
	for t := range terms {
		sorted = append(sorted, t)
	}
	sort.Strings(sorted)

	index := make(map[string]int, len(sorted))
	for i, t := range sorted {
		index[t] = i
	}
	return &Vocabulary{Index: index, Terms: sorted}
}

// Len returns the number of terms in the vocabulary.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Terms)
}
