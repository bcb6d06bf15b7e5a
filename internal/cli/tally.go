package cli

// #region imports
import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"calibctl/internal/kv"
	"calibctl/internal/tally"
)

// #endregion

// #region command-tree

var (
	tallyBackend   string
	tallyRedisAddr string
)

var tallyCmd = &cobra.Command{
	Use:   "tally",
	Short: "Counter and note list persisted to a key-value store",
}

func init() {
	tallyCmd.PersistentFlags().StringVar(&tallyBackend, "backend", "sqlite", "kv backend: sqlite or redis")
	tallyCmd.PersistentFlags().StringVar(&tallyRedisAddr, "redis-addr",
		envOr("CALIBCTL_REDIS", "localhost:6379"), "redis address for --backend redis")

	tallyCmd.AddCommand(
		&cobra.Command{Use: "value", Short: "Print the counter value", RunE: tallyOp(opValue)},
		&cobra.Command{Use: "incr", Short: "Increment the counter", RunE: tallyOp(opIncr)},
		&cobra.Command{Use: "decr", Short: "Decrement the counter", RunE: tallyOp(opDecr)},
		&cobra.Command{Use: "zero", Short: "Reset the counter to zero", RunE: tallyOp(opZero)},
		&cobra.Command{Use: "note [text]", Short: "Add a note", Args: cobra.MinimumNArgs(1), RunE: tallyOp(opNote)},
		&cobra.Command{Use: "unnote [id]", Short: "Remove a note by id", Args: cobra.ExactArgs(1), RunE: tallyOp(opUnnote)},
		&cobra.Command{Use: "notes", Short: "List notes", RunE: tallyOp(opNotes)},
	)
	rootCmd.AddCommand(tallyCmd)
}

// #endregion command-tree

// #region wiring

// tallyOp opens the configured backend, loads the controller, and runs op.
func tallyOp(op func(ctx context.Context, c *tally.Controller, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		store, err := openTallyStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		return op(ctx, tally.NewController(ctx, store, logger), args)
	}
}

func openTallyStore(ctx context.Context) (kv.Store, error) {
	switch tallyBackend {
	case "sqlite":
		return kv.NewSQLiteStore(dbPath)
	case "redis":
		return kv.NewRedisStore(ctx, kv.RedisConfig{Addr: tallyRedisAddr})
	default:
		return nil, fmt.Errorf("unknown backend %q (want sqlite or redis)", tallyBackend)
	}
}

// #endregion wiring

// #region ops

func opValue(_ context.Context, c *tally.Controller, _ []string) error {
	fmt.Println(c.Value())
	return nil
}

func opIncr(ctx context.Context, c *tally.Controller, _ []string) error {
	c.Increment(ctx)
	fmt.Println(c.Value())
	return nil
}

func opDecr(ctx context.Context, c *tally.Controller, _ []string) error {
	c.Decrement(ctx)
	fmt.Println(c.Value())
	return nil
}

func opZero(ctx context.Context, c *tally.Controller, _ []string) error {
	c.ResetValue(ctx)
	fmt.Println(c.Value())
	return nil
}

func opNote(ctx context.Context, c *tally.Controller, args []string) error {
	id := c.AddNote(ctx, strings.Join(args, " "))
	if id == "" {
		return fmt.Errorf("note text must not be blank")
	}
	fmt.Println(id)
	return nil
}

func opUnnote(ctx context.Context, c *tally.Controller, args []string) error {
	c.RemoveNote(ctx, args[0])
	return nil
}

func opNotes(_ context.Context, c *tally.Controller, _ []string) error {
	notes := c.Notes()
	if len(notes) == 0 {
		fmt.Println("no notes")
		return nil
	}
	for _, n := range notes {
		fmt.Printf("%s  %s  %s\n", n.ID, n.CreatedAt.Format("2006-01-02 15:04"), n.Text)
	}
	return nil
}

// #endregion ops
