package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/ifgen/internal/opgen"
)

// OpsOptions holds flags for the ops command.
type OpsOptions struct {
	*RootOptions
	Target string
	Dim    int
	Decl   bool
	Output string // output file path
	OutDir string // write every target, rank and mode into this directory
}

// OpsFile is one generated file in the JSON payload.
type OpsFile struct {
	Target string `json:"target"`
	Dim    int    `json:"dim"`
	Decl   bool   `json:"decl"`
	Path   string `json:"path"`
}

// NewOpsCommand creates the ops command.
func NewOpsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OpsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "ops",
		Short: "Generate id<N>/range<N> operator boilerplate",
		Long: `Generate the fixed-rank id<N> and range<N> classes with their full
operator overload sets.

--decl renders the class declaration and deduction guide; without it the
out-of-line definitions are rendered. --out-dir writes both modes for
every target and rank.

Examples:
  ifgen ops --target id --dim 2 --decl > id_2.hpp
  ifgen ops --target range --dim 3 -o range_3_def.hpp
  ifgen ops --out-dir include/detail`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOps(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Target, "target", string(opgen.TargetID), "generated class (id|range)")
	cmd.Flags().IntVar(&opts.Dim, "dim", 1, fmt.Sprintf("rank (1..%d)", opgen.MaxDim))
	cmd.Flags().BoolVar(&opts.Decl, "decl", false, "render the declaration instead of the definitions")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVar(&opts.OutDir, "out-dir", "", "write all targets and ranks into this directory")

	return cmd
}

func runOps(opts *OpsOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if opts.OutDir != "" {
		return writeAllOps(formatter, opts.OutDir)
	}

	target, err := opgen.ParseTarget(opts.Target)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadFlags, err.Error(), nil)
	}
	config := opgen.Config{Target: target, Dim: opts.Dim, Decl: opts.Decl}
	if err := config.Validate(); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadFlags, err.Error(), nil)
	}

	text, err := opgen.Render(config)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}

	if opts.Output == "" {
		if formatter.Format == "json" {
			return formatter.Success(map[string]interface{}{
				"file": config.FileName(),
				"text": text,
			})
		}
		_, err := fmt.Fprint(formatter.Writer, text)
		return err
	}

	if err := os.WriteFile(opts.Output, []byte(text), 0644); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err), nil)
	}
	if formatter.Format == "json" {
		return formatter.Success([]OpsFile{{Target: string(target), Dim: opts.Dim, Decl: opts.Decl, Path: opts.Output}})
	}
	fmt.Fprintf(formatter.Writer, "✓ Wrote %s\n", opts.Output)
	return nil
}

// writeAllOps writes every target, rank and mode using the conventional
// file names.
func writeAllOps(formatter *OutputFormatter, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("creating output directory: %v", err), nil)
	}

	var files []OpsFile
	for _, target := range []opgen.Target{opgen.TargetID, opgen.TargetRange} {
		for dim := 1; dim <= opgen.MaxDim; dim++ {
			for _, decl := range []bool{true, false} {
				config := opgen.Config{Target: target, Dim: dim, Decl: decl}
				path := filepath.Join(dir, config.FileName())

				f, err := os.Create(path)
				if err != nil {
					return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, err.Error(), nil)
				}
				err = opgen.Write(f, config)
				if cerr := f.Close(); err == nil {
					err = cerr
				}
				if err != nil {
					return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("%s: %v", path, err), nil)
				}

				formatter.VerboseLog("Wrote %s", path)
				files = append(files, OpsFile{Target: string(target), Dim: dim, Decl: decl, Path: path})
			}
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(files)
	}
	fmt.Fprintf(formatter.Writer, "✓ Wrote %d file(s) to %s\n", len(files), dir)
	return nil
}
