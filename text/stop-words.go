package text

// englishStopWords is a small list of high-frequency function words.
// Negations ("not", "no", "never", "nor") and intensity markers are
// deliberately absent: they carry sentiment and must survive filtering.
var englishStopWords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself",
	"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "or", "because", "as", "until", "while",
	"of", "at", "by", "for", "with", "about", "between", "into",
	"through", "during", "before", "after", "to", "from", "in", "out",
	"on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "weren't",
	"all", "any", "both", "each", "other", "some", "such",
	"own", "same", "so", "than", "can", "will", "just",
}

// StopWords returns the stop-word lookup set.
func StopWords() map[string]interface{} {
	words := make(map[string]interface{}, len(englishStopWords))
	for _, w := range englishStopWords {
		words[w] = nil
	}
	return words
}
