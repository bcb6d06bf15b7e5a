package derive

import "strings"

// #region derive

// Derive computes text features from raw input. Pure function, no I/O.
// TextLength counts the raw untrimmed text; word and sentence counts
// drop empty pieces after splitting.
func Derive(text string) Derived {
	words := strings.Fields(text)

	return Derived{
		TextLength:     len([]rune(text)),
		WordCount:      len(words),
		SentenceCount:  len(splitSentences(text)),
		SentimentScore: sentimentScore(words),
	}
}

// #endregion derive

// #region sentences

// splitSentences splits on runs of sentence terminators and drops
// whitespace-only pieces.
func splitSentences(text string) []string {
	pieces := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// #endregion sentences

// #region sentiment

// sentimentScore sums lexicon hits: +1 per positive word, -1 per negative.
// Words are lower-cased before matching.
func sentimentScore(words []string) int {
	score := 0
	for _, w := range words {
		lower := strings.ToLower(w)
		if _, ok := positiveLexicon[lower]; ok {
			score++
		} else if _, ok := negativeLexicon[lower]; ok {
			score--
		}
	}
	return score
}

// #endregion sentiment
