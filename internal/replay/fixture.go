package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"calibctl/internal/session"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description     string           `json:"description"`
	ManualSignals   []float64        `json:"manual_signals"`
	Interactions    []Interaction    `json:"interactions"`
	ExpectedResults []ExpectedResult `json:"expected_results"`
}

// Interaction is a single recorded user action: optional manual signal
// edits followed by a raw input submission.
type Interaction struct {
	SignalEdits []SignalEdit `json:"signal_edits,omitempty"`
	RawInput    string       `json:"raw_input"`
}

// SignalEdit is one manual signal draft edit before the submit.
type SignalEdit struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// ExpectedResult captures the expected outcome of one interaction.
// Metric and interpretation fields are only checked for commits.
type ExpectedResult struct {
	Action string `json:"action"` // "commit" | "reject"

	Seq   int     `json:"seq,omitempty"`
	Min   float64 `json:"min,omitempty"`
	Max   float64 `json:"max,omitempty"`
	Mean  float64 `json:"mean,omitempty"`
	Count int     `json:"count,omitempty"`

	Pressure  string `json:"pressure,omitempty"`
	Load      string `json:"load,omitempty"`
	Clarity   string `json:"clarity,omitempty"`
	Readiness string `json:"readiness,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// SaveFixture writes a fixture as indented JSON.
func SaveFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion fixture-loader

// #region fixture-export

// FixtureFromRuns builds a fixture that reproduces a recorded run history.
// Runs are expected oldest first. The manual portion of each run's signal
// vector (everything before the 4 derived values) is replayed as edits.
// Derived features cannot recover the original raw text, so each raw input
// is a synthesized placeholder naming the run's record ID, and only the
// action and sequence number are asserted for exported interactions.
func FixtureFromRuns(description string, runs []session.Run) *Fixture {
	f := &Fixture{
		Description:   description,
		ManualSignals: session.DefaultManualSignals(),
	}
	for i, run := range runs {
		manualLen := len(run.Signals) - 4
		inter := Interaction{RawInput: "replayed run " + run.RecordID + "."}
		for j := 0; j < manualLen && j < len(f.ManualSignals); j++ {
			inter.SignalEdits = append(inter.SignalEdits, SignalEdit{Index: j, Value: run.Signals[j]})
		}
		f.Interactions = append(f.Interactions, inter)
		// A fresh session renumbers runs from 1, so the expected seq is the
		// interaction's position, not the historical sequence number.
		f.ExpectedResults = append(f.ExpectedResults, ExpectedResult{
			Action: "commit",
			Seq:    i + 1,
		})
	}
	return f
}

// #endregion fixture-export
