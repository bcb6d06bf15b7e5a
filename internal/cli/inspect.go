package cli

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calibctl/internal/history"
	"calibctl/internal/interpret"
)

// #endregion

// #region command

var (
	inspectLast      int
	inspectJSON      bool
	inspectDecisions bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List recorded calibration runs",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().IntVar(&inspectLast, "last", 20, "show N most recent entries")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output as JSON instead of a table")
	inspectCmd.Flags().BoolVar(&inspectDecisions, "decisions", false, "show the decision log instead of runs")
	rootCmd.AddCommand(inspectCmd)
}

// #endregion command

// #region inspect

func runInspect(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	if inspectDecisions {
		return printDecisions(store)
	}
	return printRuns(store)
}

func printRuns(store *history.Store) error {
	runs, err := store.ListRuns(inspectLast)
	if err != nil {
		return err
	}

	if inspectJSON {
		type runView struct {
			Seq            int                      `json:"seq"`
			RecordID       string                   `json:"record_id"`
			Timestamp      string                   `json:"timestamp"`
			Signals        []float64                `json:"signals"`
			Min            float64                  `json:"min"`
			Max            float64                  `json:"max"`
			Mean           float64                  `json:"mean"`
			Count          int                      `json:"count"`
			Derived        []float64                `json:"derived"`
			Interpretation interpret.Interpretation `json:"interpretation"`
		}
		views := make([]runView, 0, len(runs))
		for _, r := range runs {
			d := r.Derived
			views = append(views, runView{
				Seq:            r.Seq,
				RecordID:       r.RecordID,
				Timestamp:      r.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
				Signals:        r.Signals,
				Min:            r.Metrics.Min,
				Max:            r.Metrics.Max,
				Mean:           r.Metrics.Mean,
				Count:          r.Metrics.Count,
				Derived:        d.Vector(),
				Interpretation: interpret.Interpret(&r.Metrics, &d),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}
	fmt.Printf("%-5s %-20s %-36s %8s %8s %8s %6s  %s\n",
		"SEQ", "TIME", "RECORD", "MIN", "MAX", "MEAN", "COUNT", "READINESS")
	for _, r := range runs {
		d := r.Derived
		label := interpret.Interpret(&r.Metrics, &d)
		fmt.Printf("%-5d %-20s %-36s %8.2f %8.2f %8.2f %6d  %s\n",
			r.Seq, r.Timestamp.Format("2006-01-02 15:04:05"), r.RecordID,
			r.Metrics.Min, r.Metrics.Max, r.Metrics.Mean, r.Metrics.Count,
			label.Readiness)
	}
	return nil
}

func printDecisions(store *history.Store) error {
	entries, err := store.ListDecisions(inspectLast)
	if err != nil {
		return err
	}

	if inspectJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("no decisions recorded")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%-20s %-8s %-36s %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Action, e.RecordID, e.Reason)
	}
	return nil
}

// #endregion inspect
