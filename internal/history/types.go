package history

import "time"

// #region decision-entry
// DecisionEntry is a single row in the decision_log table. It keeps an
// audit trail of what the session decided and why, including rejected
// submits and resets that never produce a run row.
type DecisionEntry struct {
	RecordID    string // empty for reject/reset entries
	Action      string // "commit" | "reject" | "reset"
	Reason      string
	SignalsJSON string
	CreatedAt   time.Time
}
// #endregion decision-entry
