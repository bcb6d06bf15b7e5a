package cli

// #region imports
import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"calibctl/internal/history"
	"calibctl/internal/session"
)

// #endregion

// #region command

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive calibration console",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// #endregion command

// #region repl

func runRepl(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	sess := session.New(store, logger)

	fmt.Println("Calibration controller ready.")
	fmt.Printf("  DB: %s\n", dbPath)
	fmt.Println("Commands: sig <i> <value> | raw <text> | submit | reset | show | log | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		handleCommand(sess, store, line)
	}
	return scanner.Err()
}

// #endregion repl

// #region dispatch

func handleCommand(sess *session.Session, store *history.Store, line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "sig":
		handleSig(sess, fields[1:])
	case "raw":
		sess.UpdateRawInput(strings.TrimSpace(strings.TrimPrefix(line, "raw")))
	case "submit":
		handleSubmit(sess, store)
	case "reset":
		sess.Reset()
		if err := store.LogDecision(history.DecisionEntry{Action: "reset"}); err != nil {
			fmt.Printf("warn: %v\n", err)
		}
		fmt.Println("session reset")
	case "show":
		printSnapshot(sess.Snapshot())
	case "log":
		printRunLog(sess.Snapshot())
	default:
		fmt.Printf("unknown command %q\n", fields[0])
	}
}

func handleSig(sess *session.Session, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: sig <index> <value>")
		return
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("bad index %q\n", args[0])
		return
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Printf("bad value %q\n", args[1])
		return
	}
	// Non-finite values are silently ignored by the session.
	sess.UpdateSignal(index, value)
}

func handleSubmit(sess *session.Session, store *history.Store) {
	run, err := sess.Submit()
	if err != nil {
		snap := sess.Snapshot()
		fmt.Printf("error: %s\n", snap.Err)
		if logErr := store.LogDecision(history.DecisionEntry{
			Action: "reject",
			Reason: snap.Err,
		}); logErr != nil {
			fmt.Printf("warn: %v\n", logErr)
		}
		return
	}

	signalsJSON, _ := json.Marshal(run.Signals)
	if err := store.LogDecision(history.DecisionEntry{
		RecordID:    run.RecordID,
		Action:      "commit",
		Reason:      "run committed",
		SignalsJSON: string(signalsJSON),
	}); err != nil {
		fmt.Printf("warn: %v\n", err)
	}

	printSnapshot(sess.Snapshot())
}

// #endregion dispatch

// #region render

func printSnapshot(snap session.Snapshot) {
	fmt.Printf("status=%s signals=%v raw=%q\n", snap.Status, snap.ManualSignals, snap.RawInput)
	if snap.Err != "" {
		fmt.Printf("error: %s\n", snap.Err)
	}
	if snap.LatestMetrics != nil {
		m := snap.LatestMetrics
		fmt.Printf("metrics: min=%g max=%g mean=%g count=%d\n", m.Min, m.Max, m.Mean, m.Count)
	}
	i := snap.Interpretation
	fmt.Printf("interpretation: pressure=%s load=%s clarity=%s readiness=%s\n",
		i.Pressure, i.Load, i.Clarity, i.Readiness)
}

func printRunLog(snap session.Snapshot) {
	if len(snap.Runs) == 0 {
		fmt.Println("no runs yet")
		return
	}
	for _, run := range snap.Runs {
		fmt.Printf("#%d %s  mean=%g count=%d  derived=%v\n",
			run.Seq, run.Timestamp.Format("15:04:05"), run.Metrics.Mean,
			run.Metrics.Count, run.Derived.Vector())
	}
}

// #endregion render
