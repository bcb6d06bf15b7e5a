package derive

// #region derived

// Derived is the fixed-size feature vector computed from raw text input.
type Derived struct {
	TextLength     int
	WordCount      int
	SentenceCount  int
	SentimentScore int
}

// Vector returns the ordered numeric form used for metric aggregation:
// [textLength, wordCount, sentenceCount, sentimentScore].
func (d Derived) Vector() []float64 {
	return []float64{
		float64(d.TextLength),
		float64(d.WordCount),
		float64(d.SentenceCount),
		float64(d.SentimentScore),
	}
}

// #endregion derived

// #region lexicons

// positiveLexicon and negativeLexicon are exact-match word lists for the
// sentiment score. No stemming, no partial matches.
var positiveLexicon = map[string]struct{}{
	"good":     {},
	"clear":    {},
	"success":  {},
	"positive": {},
	"ready":    {},
}

var negativeLexicon = map[string]struct{}{
	"bad":      {},
	"confused": {},
	"fail":     {},
	"error":    {},
	"blocked":  {},
}

// #endregion lexicons
