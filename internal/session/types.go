package session

// #region imports
import (
	"time"

	"calibctl/internal/derive"
	"calibctl/internal/interpret"
	"calibctl/internal/metrics"
)

// #endregion

// #region status

// Status is the session lifecycle state.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusRunning  Status = "running"
	StatusComplete Status = "complete"
	StatusError    Status = "error"
)

// #endregion status

// #region defaults

// RunLogCap bounds the in-memory run log; older runs are silently dropped.
const RunLogCap = 5

// DefaultManualSignals returns the initial manual signal draft.
func DefaultManualSignals() []float64 {
	return []float64{10, 20, 30}
}

// #endregion defaults

// #region run

// Run is one immutable calibration result. Seq is assigned from the total
// number of prior submits, so it keeps increasing after the log trims old
// entries. RecordID identifies the run in persistent history.
type Run struct {
	Seq       int
	RecordID  string
	Timestamp time.Time
	Signals   []float64
	Metrics   metrics.Metrics
	Derived   derive.Derived
}

// #endregion run

// #region recorder

// Recorder is an optional sink for committed runs. Recorder failures never
// affect the in-memory session.
type Recorder interface {
	RecordRun(run Run) error
}

// #endregion recorder

// #region snapshot

// Snapshot is the plain-data view of the session for render collaborators.
// The core exposes data, never formatting.
type Snapshot struct {
	Status         Status
	ManualSignals  []float64
	RawInput       string
	Err            string
	Runs           []Run
	LatestMetrics  *metrics.Metrics
	Interpretation interpret.Interpretation
}

// #endregion snapshot
