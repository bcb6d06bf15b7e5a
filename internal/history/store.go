// Package history persists committed calibration runs and a decision log in
// SQLite. It implements the session Recorder; the in-memory session keeps
// working when this store fails.
package history

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"

	"calibctl/internal/derive"
	"calibctl/internal/metrics"
	"calibctl/internal/session"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS calibration_runs (
	record_id       TEXT PRIMARY KEY,
	seq             INTEGER NOT NULL,
	created_at      TEXT NOT NULL,
	signals         BLOB NOT NULL,
	min             REAL NOT NULL,
	max             REAL NOT NULL,
	mean            REAL NOT NULL,
	count           INTEGER NOT NULL,
	text_length     INTEGER NOT NULL,
	word_count      INTEGER NOT NULL,
	sentence_count  INTEGER NOT NULL,
	sentiment_score INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS decision_log (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	record_id    TEXT,
	action       TEXT NOT NULL,
	reason       TEXT,
	signals_json TEXT,
	created_at   TEXT NOT NULL
);
`
// #endregion schema

// #region store-struct
// Store manages run history in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region record-run
// RecordRun inserts one committed run. Implements session.Recorder.
func (s *Store) RecordRun(run session.Run) error {
	_, err := s.db.Exec(
		`INSERT INTO calibration_runs
		 (record_id, seq, created_at, signals, min, max, mean, count,
		  text_length, word_count, sentence_count, sentiment_score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RecordID, run.Seq, run.Timestamp.Format(time.RFC3339Nano),
		encodeSignals(run.Signals),
		run.Metrics.Min, run.Metrics.Max, run.Metrics.Mean, run.Metrics.Count,
		run.Derived.TextLength, run.Derived.WordCount,
		run.Derived.SentenceCount, run.Derived.SentimentScore,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}
// #endregion record-run

// #region list-runs
// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]session.Run, error) {
	rows, err := s.db.Query(
		`SELECT record_id, seq, created_at, signals, min, max, mean, count,
		        text_length, word_count, sentence_count, sentiment_score
		 FROM calibration_runs ORDER BY seq DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []session.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
// #endregion list-runs

// #region latest-run
// LatestRun returns the most recently recorded run, or sql.ErrNoRows.
func (s *Store) LatestRun() (session.Run, error) {
	runs, err := s.ListRuns(1)
	if err != nil {
		return session.Run{}, err
	}
	if len(runs) == 0 {
		return session.Run{}, sql.ErrNoRows
	}
	return runs[0], nil
}
// #endregion latest-run

// #region log-decision
// LogDecision writes one decision row. Actions: "commit", "reject", "reset".
func (s *Store) LogDecision(entry DecisionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO decision_log (record_id, action, reason, signals_json, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		nullIfEmpty(entry.RecordID), entry.Action, nullIfEmpty(entry.Reason),
		nullIfEmpty(entry.SignalsJSON), entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// ListDecisions returns the most recent decision rows, newest first.
func (s *Store) ListDecisions(limit int) ([]DecisionEntry, error) {
	rows, err := s.db.Query(
		`SELECT record_id, action, reason, signals_json, created_at
		 FROM decision_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var entries []DecisionEntry
	for rows.Next() {
		var e DecisionEntry
		var recordID, reason, signalsJSON sql.NullString
		var createdStr string
		if err := rows.Scan(&recordID, &e.Action, &reason, &signalsJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		e.RecordID = recordID.String
		e.Reason = reason.String
		e.SignalsJSON = signalsJSON.String
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion log-decision

// #region scan
func scanRun(rows *sql.Rows) (session.Run, error) {
	var run session.Run
	var createdStr string
	var sigBlob []byte
	var m metrics.Metrics
	var d derive.Derived

	err := rows.Scan(
		&run.RecordID, &run.Seq, &createdStr, &sigBlob,
		&m.Min, &m.Max, &m.Mean, &m.Count,
		&d.TextLength, &d.WordCount, &d.SentenceCount, &d.SentimentScore,
	)
	if err != nil {
		return session.Run{}, fmt.Errorf("scan run: %w", err)
	}
	run.Timestamp, _ = time.Parse(time.RFC3339Nano, createdStr)
	run.Signals = decodeSignals(sigBlob)
	run.Metrics = m
	run.Derived = d
	return run, nil
}
// #endregion scan

// #region signal-encoding
func encodeSignals(signals []float64) []byte {
	buf := make([]byte, len(signals)*8)
	for i, f := range signals {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}

func decodeSignals(b []byte) []float64 {
	signals := make([]float64, len(b)/8)
	for i := range signals {
		signals[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return signals
}
// #endregion signal-encoding

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
