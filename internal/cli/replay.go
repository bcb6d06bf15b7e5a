package cli

// #region imports
import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"calibctl/internal/history"
	"calibctl/internal/replay"
)

// #endregion

// #region replay-command

var replayFixture string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a recorded fixture through a fresh session",
	RunE:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayFixture, "fixture", "", "path to fixture JSON (required)")
	replayCmd.MarkFlagRequired("fixture")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	f, err := replay.LoadFixture(replayFixture)
	if err != nil {
		return err
	}

	summary, err := replay.Replay(f)
	if err != nil {
		return err
	}

	fmt.Printf("replayed %d interactions: %d commits, %d rejects\n",
		summary.TotalInteractions, summary.Commits, summary.Rejects)
	if summary.Passed() {
		fmt.Println("all expectations held")
		return nil
	}
	for _, m := range summary.Mismatches {
		fmt.Printf("MISMATCH: %s\n", m)
	}
	return fmt.Errorf("%d expectation(s) failed", len(summary.Mismatches))
}

// #endregion replay-command

// #region export-command

var (
	exportOut  string
	exportLast int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded history as a replay fixture",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "fixture.json", "output fixture path")
	exportCmd.Flags().IntVar(&exportLast, "last", 20, "export the N most recent runs")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(exportLast)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return fmt.Errorf("no runs to export")
	}

	// ListRuns is newest first; fixtures replay oldest first.
	sort.Slice(runs, func(i, j int) bool { return runs[i].Seq < runs[j].Seq })

	f := replay.FixtureFromRuns(fmt.Sprintf("exported from %s", dbPath), runs)
	if err := replay.SaveFixture(exportOut, f); err != nil {
		return err
	}
	fmt.Printf("wrote %d interactions to %s\n", len(f.Interactions), exportOut)
	return nil
}

// #endregion export-command
