package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ifgen/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB        string // manifest database path
	Interface string // filter by interface name
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded renders",
		Long: `List the renders recorded in a manifest database, in the order they
were first recorded.

Examples:
  ifgen history --db renders.db
  ifgen history --db renders.db --interface cuda_interface --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to the manifest database (required)")
	cmd.Flags().StringVar(&opts.Interface, "interface", "", "only show renders of this interface")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	st, err := store.Open(opts.DB)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
	}
	defer st.Close()

	renders, err := st.ListRenders(cmd.Context(), opts.Interface)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
	}
	formatter.VerboseLog("Loaded %d render(s) from %s", len(renders), opts.DB)

	if formatter.Format == "json" {
		return formatter.Success(renders)
	}

	w := formatter.Writer
	if len(renders) == 0 {
		fmt.Fprintln(w, "No renders recorded.")
		return nil
	}

	for _, r := range renders {
		dest := r.OutputPath
		if dest == "" {
			dest = "stdout"
		}
		fmt.Fprintf(w, "#%d %s %s -> %s\n", r.Seq, r.Interface, r.Mode, dest)
		fmt.Fprintf(w, "    origin %s, fingerprint %s\n", r.Origin, shortHash(r.Fingerprint))
		fmt.Fprintf(w, "    %d tagged, %d constants, %d fields, %d functions\n",
			r.Summary.TaggedTypes, r.Summary.Constants, r.Summary.Fields, r.Summary.Functions)
	}
	return nil
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
