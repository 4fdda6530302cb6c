package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/ifgen/internal/catalog"
	"github.com/roach88/ifgen/internal/ir"
	"github.com/roach88/ifgen/internal/render"
	"github.com/roach88/ifgen/internal/store"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Source SourceOptions
	Mode   string // render mode
	Vars   bool   // shorthand for --mode storage+reset
	Output string // output file path
	DB     string // manifest database path
}

// RenderResult is the JSON payload of the render command.
type RenderResult struct {
	Interface   string `json:"interface"`
	Mode        string `json:"mode"`
	Origin      string `json:"origin"`
	Fingerprint string `json:"fingerprint"`
	OutputHash  string `json:"output_hash"`
	OutputPath  string `json:"output_path,omitempty"`
	Text        string `json:"text,omitempty"`
	RenderID    string `json:"render_id,omitempty"`
	Seq         int64  `json:"seq,omitempty"`
	Recorded    bool   `json:"recorded"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an interface artifact",
		Long: `Render the interface header, or the slot storage and reset routine,
from a declaration source.

The source is a built-in routine (--builtin, default "cuda") or a catalog
document (--catalog). Every artifact replays the same declaration sequence,
so header and storage+reset renders always agree.

With --db the render is recorded in a SQLite manifest keyed by the
declaration fingerprint, mode and artifact hash.

Examples:
  ifgen render > cuda_interface.hpp
  ifgen render --vars -o cuda_interface.cpp
  ifgen render --catalog hip.yaml --mode header --db renders.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), opts, cmd)
		},
	}

	addSourceFlags(cmd, &opts.Source)
	cmd.Flags().StringVar(&opts.Mode, "mode", string(render.ModeHeader), "render mode (header|storage+reset)")
	cmd.Flags().BoolVar(&opts.Vars, "vars", false, "render storage+reset (same as --mode storage+reset)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVar(&opts.DB, "db", "", "record the render in this manifest database")

	return cmd
}

// selectMode reconciles --mode and --vars.
func selectMode(mode string, vars, modeChanged bool) (render.Mode, error) {
	m, err := render.ParseMode(mode)
	if err != nil {
		return "", err
	}
	if vars {
		if modeChanged && m != render.ModeStorageReset {
			return "", fmt.Errorf("--vars conflicts with --mode %s", mode)
		}
		return render.ModeStorageReset, nil
	}
	return m, nil
}

func runRender(ctx context.Context, opts *RenderOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	mode, err := selectMode(opts.Mode, opts.Vars, cmd.Flags().Changed("mode"))
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadFlags, err.Error(), nil)
	}

	src, err := resolveSource(formatter, &opts.Source)
	if err != nil {
		return err
	}

	text, err := render.Render(src.Interface, mode, src.Declare)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}

	fingerprint, err := render.Fingerprint(src.Interface, src.Declare)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}

	result := RenderResult{
		Interface:   src.Interface,
		Mode:        string(mode),
		Origin:      src.Origin,
		Fingerprint: fingerprint,
		OutputHash:  ir.ArtifactHash(text),
		OutputPath:  opts.Output,
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(text), 0644); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err), nil)
		}
		formatter.VerboseLog("Wrote %d bytes to %s", len(text), opts.Output)
	}

	if opts.DB != "" {
		stored, inserted, err := recordRender(ctx, opts.DB, src, mode, fingerprint, text, opts.Output)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
		}
		result.RenderID = stored.ID
		result.Seq = stored.Seq
		result.Recorded = inserted
		if inserted {
			formatter.VerboseLog("Recorded render %s (seq %d)", stored.ID, stored.Seq)
		} else {
			formatter.VerboseLog("Render %s already recorded (seq %d)", stored.ID, stored.Seq)
		}
	}

	if formatter.Format == "json" {
		if opts.Output == "" {
			result.Text = text
		}
		return formatter.Success(result)
	}

	if opts.Output == "" {
		_, err := io.WriteString(formatter.Writer, text)
		return err
	}
	fmt.Fprintf(formatter.Writer, "✓ Rendered %s %s to %s\n", sourceLabel(src), mode, opts.Output)
	return nil
}

// recordRender appends the render to the manifest at dbPath.
func recordRender(ctx context.Context, dbPath string, src *catalog.Source, mode render.Mode, fingerprint, text, outputPath string) (store.Render, bool, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return store.Render{}, false, err
	}
	defer st.Close()

	summary := ir.Summarize(render.Trace(src.Declare))
	r := store.NewRender(src.Interface, string(mode), src.Origin, fingerprint, text, outputPath, summary)
	return st.RecordRender(ctx, r)
}
