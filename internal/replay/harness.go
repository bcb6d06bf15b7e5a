// Package replay drives recorded interaction sequences through a fresh
// calibration session and checks the outcomes against expectations.
package replay

import (
	"errors"
	"fmt"

	"calibctl/internal/interpret"
	"calibctl/internal/session"
)

// #region types

// Result captures the outcome of replaying one interaction.
type Result struct {
	Index          int
	Action         string // "commit" | "reject"
	Reason         string
	Run            *session.Run // nil on reject
	Interpretation interpret.Interpretation
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalInteractions int
	Commits           int
	Rejects           int
	Mismatches        []string
	FinalSnapshot     session.Snapshot
}

// Passed reports whether every expectation held.
func (s Summary) Passed() bool {
	return len(s.Mismatches) == 0
}

// #endregion types

// #region replay

// Replay plays the fixture's interactions through a fresh in-memory session
// and verifies each outcome against the fixture's expected results.
func Replay(f *Fixture) (Summary, error) {
	if len(f.ExpectedResults) != 0 && len(f.ExpectedResults) != len(f.Interactions) {
		return Summary{}, fmt.Errorf("fixture has %d interactions but %d expected results",
			len(f.Interactions), len(f.ExpectedResults))
	}

	sess := session.New(nil, nil)
	for i, v := range f.ManualSignals {
		sess.UpdateSignal(i, v)
	}

	results := make([]Result, 0, len(f.Interactions))
	for i, inter := range f.Interactions {
		for _, edit := range inter.SignalEdits {
			sess.UpdateSignal(edit.Index, edit.Value)
		}
		sess.UpdateRawInput(inter.RawInput)

		run, err := sess.Submit()
		switch {
		case err == nil:
			d := run.Derived
			results = append(results, Result{
				Index:          i,
				Action:         "commit",
				Run:            run,
				Interpretation: interpret.Interpret(&run.Metrics, &d),
			})
		case errors.Is(err, session.ErrBlankInput):
			results = append(results, Result{
				Index:  i,
				Action: "reject",
				Reason: err.Error(),
			})
		default:
			return Summary{}, fmt.Errorf("interaction %d: %w", i, err)
		}
	}

	summary := Summary{
		TotalInteractions: len(results),
		FinalSnapshot:     sess.Snapshot(),
	}
	for _, r := range results {
		if r.Action == "commit" {
			summary.Commits++
		} else {
			summary.Rejects++
		}
	}
	if len(f.ExpectedResults) != 0 {
		summary.Mismatches = verify(results, f.ExpectedResults)
	}
	return summary, nil
}

// #endregion replay

// #region verify

// verify compares replay results to expectations, one mismatch string per
// failed check.
func verify(results []Result, expected []ExpectedResult) []string {
	var mismatches []string
	for i, want := range expected {
		got := results[i]
		if got.Action != want.Action {
			mismatches = append(mismatches,
				fmt.Sprintf("interaction %d: action %s, want %s", i, got.Action, want.Action))
			continue
		}
		if got.Action != "commit" {
			continue
		}

		if want.Seq != 0 && got.Run.Seq != want.Seq {
			mismatches = append(mismatches,
				fmt.Sprintf("interaction %d: seq %d, want %d", i, got.Run.Seq, want.Seq))
		}
		if want.Count != 0 && got.Run.Metrics.Count != want.Count {
			mismatches = append(mismatches,
				fmt.Sprintf("interaction %d: count %d, want %d", i, got.Run.Metrics.Count, want.Count))
		}
		if want.Count != 0 {
			if got.Run.Metrics.Min != want.Min {
				mismatches = append(mismatches,
					fmt.Sprintf("interaction %d: min %g, want %g", i, got.Run.Metrics.Min, want.Min))
			}
			if got.Run.Metrics.Max != want.Max {
				mismatches = append(mismatches,
					fmt.Sprintf("interaction %d: max %g, want %g", i, got.Run.Metrics.Max, want.Max))
			}
			if got.Run.Metrics.Mean != want.Mean {
				mismatches = append(mismatches,
					fmt.Sprintf("interaction %d: mean %g, want %g", i, got.Run.Metrics.Mean, want.Mean))
			}
		}

		mismatches = append(mismatches, verifyLabels(i, got.Interpretation, want)...)
	}
	return mismatches
}

func verifyLabels(i int, got interpret.Interpretation, want ExpectedResult) []string {
	var mismatches []string
	if want.Pressure != "" && string(got.Pressure) != want.Pressure {
		mismatches = append(mismatches,
			fmt.Sprintf("interaction %d: pressure %s, want %s", i, got.Pressure, want.Pressure))
	}
	if want.Load != "" && string(got.Load) != want.Load {
		mismatches = append(mismatches,
			fmt.Sprintf("interaction %d: load %s, want %s", i, got.Load, want.Load))
	}
	if want.Clarity != "" && string(got.Clarity) != want.Clarity {
		mismatches = append(mismatches,
			fmt.Sprintf("interaction %d: clarity %s, want %s", i, got.Clarity, want.Clarity))
	}
	if want.Readiness != "" && string(got.Readiness) != want.Readiness {
		mismatches = append(mismatches,
			fmt.Sprintf("interaction %d: readiness %s, want %s", i, got.Readiness, want.Readiness))
	}
	return mismatches
}

// #endregion verify
