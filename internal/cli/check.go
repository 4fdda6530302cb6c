package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/roach88/ifgen/internal/ir"
	"github.com/roach88/ifgen/internal/render"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Source SourceOptions
	Mode   string
	Vars   bool
}

// CheckResult is the JSON payload of the check command.
type CheckResult struct {
	Path         string `json:"path"`
	Interface    string `json:"interface"`
	Mode         string `json:"mode"`
	Fresh        bool   `json:"fresh"`
	ExpectedHash string `json:"expected_hash"`
	ActualHash   string `json:"actual_hash"`
	Diff         string `json:"diff,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check a generated artifact is up to date",
		Long: `Render the source again and compare the result with an existing file.

Exit codes:
  0 - File matches a fresh render
  1 - File is stale
  2 - Command error (unreadable file, invalid catalog, etc.)

Examples:
  ifgen check include/cuda_interface.hpp
  ifgen check src/cuda_interface.cpp --vars
  ifgen check hip.hpp --catalog hip.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	addSourceFlags(cmd, &opts.Source)
	cmd.Flags().StringVar(&opts.Mode, "mode", string(render.ModeHeader), "render mode (header|storage+reset)")
	cmd.Flags().BoolVar(&opts.Vars, "vars", false, "check storage+reset (same as --mode storage+reset)")

	return cmd
}

func runCheck(opts *CheckOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	mode, err := selectMode(opts.Mode, opts.Vars, cmd.Flags().Changed("mode"))
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadFlags, err.Error(), nil)
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("file not found: %s", path), nil)
		}
		return formatter.Fail(ExitCommandError, ErrCodeReadFailed, err.Error(), nil)
	}

	src, err := resolveSource(formatter, &opts.Source)
	if err != nil {
		return err
	}

	fresh, err := render.Render(src.Interface, mode, src.Declare)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}

	result := CheckResult{
		Path:         path,
		Interface:    src.Interface,
		Mode:         string(mode),
		ExpectedHash: ir.ArtifactHash(fresh),
		ActualHash:   ir.ArtifactHash(string(existing)),
	}
	result.Fresh = result.ExpectedHash == result.ActualHash

	if result.Fresh {
		if formatter.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintf(formatter.Writer, "✓ %s is up to date\n", path)
		return nil
	}

	result.Diff = lineDiff(string(existing), fresh)
	message := fmt.Sprintf("%s is stale: differs from a fresh %s render of %s", path, mode, src.Interface)

	if formatter.Format == "json" {
		_ = formatter.Error(ErrCodeStale, message, result)
	} else {
		fmt.Fprintf(formatter.Writer, "✗ %s\n", message)
		if formatter.Verbose {
			fmt.Fprint(formatter.Writer, result.Diff)
		}
	}
	return reported(NewExitError(ExitFailure, message))
}

// lineDiff renders the line-level changes from got to want, one line per
// changed line prefixed with "-" or "+".
func lineDiff(got, want string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(got, want)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix + strings.TrimSuffix(line, "\n") + "\n")
		}
	}
	return buf.String()
}
