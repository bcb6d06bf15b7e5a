// Package interpret maps run metrics and derived text features to
// qualitative labels via fixed threshold ladders.
package interpret

import (
	"calibctl/internal/derive"
	"calibctl/internal/metrics"
)

// #region interpret

// Interpret classifies metrics plus derived features. A nil metrics pointer
// means no run has happened yet and yields Baseline(). All thresholds are
// strict `>` with the High branch checked first, so edge values land in the
// lower bucket (mean+textLength of exactly 200 is Medium, not High).
func Interpret(m *metrics.Metrics, d *derive.Derived) Interpretation {
	if m == nil {
		return Baseline()
	}

	textLength := 0
	sentenceCount := 1 // floor: zero sentences would degenerate clarity
	if d != nil {
		textLength = d.TextLength
		if d.SentenceCount > 0 {
			sentenceCount = d.SentenceCount
		}
	}

	pressure := classifyPressure(m.Mean, textLength)
	clarity := classifyClarity(sentenceCount)

	return Interpretation{
		Pressure:  pressure,
		Load:      classifyLoad(m.Count, sentenceCount),
		Clarity:   clarity,
		Readiness: classifyReadiness(pressure, clarity),
	}
}

// #endregion interpret

// #region classify-pressure

func classifyPressure(mean float64, textLength int) Level {
	v := mean + float64(textLength)
	if v > 200 {
		return LevelHigh
	}
	if v > 80 {
		return LevelMedium
	}
	return LevelLow
}

// #endregion classify-pressure

// #region classify-load

func classifyLoad(count, sentenceCount int) Level {
	v := count + sentenceCount
	if v > 15 {
		return LevelHigh
	}
	if v > 8 {
		return LevelMedium
	}
	return LevelLow
}

// #endregion classify-load

// #region classify-clarity

// classifyClarity is inverted relative to pressure/load: more sentences
// means lower clarity.
func classifyClarity(sentenceCount int) Level {
	if sentenceCount > 6 {
		return LevelLow
	}
	if sentenceCount > 3 {
		return LevelMedium
	}
	return LevelHigh
}

// #endregion classify-clarity

// #region classify-readiness

func classifyReadiness(pressure, clarity Level) Readiness {
	if pressure != LevelHigh && clarity == LevelHigh {
		return Ready
	}
	return NotReady
}

// #endregion classify-readiness
