// Package session orchestrates the calibration pipeline: manual signal and
// raw input drafts feed derive → aggregate → interpret on submit, and each
// committed run lands in a bounded newest-first run log.
package session

// #region imports
import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"calibctl/internal/derive"
	"calibctl/internal/interpret"
	"calibctl/internal/metrics"
)

// #endregion

// #region errors

// ErrBlankInput is returned by Submit when the raw input is empty or
// whitespace-only. It is also surfaced in the snapshot's Err field.
var ErrBlankInput = errors.New("raw input is blank")

const blankInputMessage = "raw input must not be blank"

// #endregion errors

// #region session-struct

// Session owns the calibration drafts and run log. It is mutated by a single
// logical thread of control: every mutation runs to completion before the
// next event is processed, so no locking is needed.
type Session struct {
	status    Status
	manual    []float64
	rawInput  string
	runs      []Run // newest first
	totalRuns int
	errMsg    string

	recorder Recorder
	logger   *zap.Logger
}

// #endregion session-struct

// #region constructor

// New creates an idle session with the default manual signal draft.
// recorder may be nil (no persistent history); logger may be nil.
func New(recorder Recorder, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		status:   StatusIdle,
		manual:   DefaultManualSignals(),
		recorder: recorder,
		logger:   logger,
	}
}

// #endregion constructor

// #region update-signal

// UpdateSignal overwrites one manual signal draft value. Non-finite values
// are silently ignored. An out-of-range index is a caller precondition
// violation and is likewise a no-op.
func (s *Session) UpdateSignal(index int, value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return
	}
	if index < 0 || index >= len(s.manual) {
		return
	}
	s.manual[index] = value
}

// #endregion update-signal

// #region update-raw-input

// UpdateRawInput unconditionally overwrites the raw input draft.
func (s *Session) UpdateRawInput(value string) {
	s.rawInput = value
}

// #endregion update-raw-input

// #region submit

// Submit validates the raw input and runs the pipeline: derive from raw
// input, concatenate manual signals first then derived, aggregate, and
// prepend the run to the log (trimmed to RunLogCap). On success the raw
// input draft is cleared; the manual signal draft is kept as-is.
//
// Blank input sets status error and leaves the run log and drafts untouched.
func (s *Session) Submit() (*Run, error) {
	if strings.TrimSpace(s.rawInput) == "" {
		s.status = StatusError
		s.errMsg = blankInputMessage
		return nil, ErrBlankInput
	}

	// Transient display state: overwritten by complete in the same call.
	s.status = StatusRunning

	derived := derive.Derive(s.rawInput)

	signals := make([]float64, 0, len(s.manual)+4)
	signals = append(signals, s.manual...)
	signals = append(signals, derived.Vector()...)

	s.totalRuns++
	run := Run{
		Seq:       s.totalRuns,
		RecordID:  uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Signals:   signals,
		Metrics:   metrics.Aggregate(signals),
		Derived:   derived,
	}

	s.runs = append([]Run{run}, s.runs...)
	if len(s.runs) > RunLogCap {
		s.runs = s.runs[:RunLogCap]
	}

	s.rawInput = ""
	s.errMsg = ""
	s.status = StatusComplete

	if s.recorder != nil {
		if err := s.recorder.RecordRun(run); err != nil {
			s.logger.Warn("record run failed, continuing in-memory",
				zap.Int("seq", run.Seq), zap.Error(err))
		}
	}

	return &run, nil
}

// #endregion submit

// #region reset

// Reset returns the session to idle: default manual signals, cleared raw
// input, empty run log, no error. The total run counter is kept so sequence
// numbers stay monotonic across the session's lifetime.
func (s *Session) Reset() {
	s.status = StatusIdle
	s.manual = DefaultManualSignals()
	s.rawInput = ""
	s.runs = nil
	s.errMsg = ""
}

// #endregion reset

// #region snapshot

// Snapshot returns a plain-data copy of the session state. The latest run's
// metrics and interpretation are included; with no runs the interpretation
// is the baseline and LatestMetrics is nil.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Status:        s.status,
		ManualSignals: append([]float64(nil), s.manual...),
		RawInput:      s.rawInput,
		Err:           s.errMsg,
		Runs:          append([]Run(nil), s.runs...),
	}

	if len(s.runs) > 0 {
		latest := s.runs[0]
		m := latest.Metrics
		d := latest.Derived
		snap.LatestMetrics = &m
		snap.Interpretation = interpret.Interpret(&m, &d)
	} else {
		snap.Interpretation = interpret.Baseline()
	}

	return snap
}

// #endregion snapshot
