package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/roach88/ifgen/internal/catalog"
	"github.com/roach88/ifgen/internal/ir"
	"github.com/roach88/ifgen/internal/render"
)

// DescribeOptions holds flags for the describe command.
type DescribeOptions struct {
	*RootOptions
	Source   SourceOptions
	Builtins bool // list built-in routines instead
}

// DescribeResult is the JSON payload of the describe command.
type DescribeResult struct {
	Interface    string     `json:"interface"`
	Origin       string     `json:"origin"`
	Fingerprint  string     `json:"fingerprint"`
	Summary      ir.Summary `json:"summary"`
	Declarations []ir.Decl  `json:"declarations"`
}

// BuiltinInfo describes one built-in routine.
type BuiltinInfo struct {
	Name        string `json:"name"`
	Interface   string `json:"interface"`
	Description string `json:"description"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DescribeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe a declaration source",
		Long: `Replay a declaration source and report what it declares: counts by
kind, the declaration fingerprint and the ordered declaration list.

Examples:
  ifgen describe
  ifgen describe --catalog hip.yaml --format json
  ifgen describe --builtins`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(opts, cmd)
		},
	}

	addSourceFlags(cmd, &opts.Source)
	cmd.Flags().BoolVar(&opts.Builtins, "builtins", false, "list built-in declaration routines")

	return cmd
}

func runDescribe(opts *DescribeOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if opts.Builtins {
		return describeBuiltins(formatter)
	}

	src, err := resolveSource(formatter, &opts.Source)
	if err != nil {
		return err
	}

	decls := render.Trace(src.Declare)
	fingerprint, err := ir.Fingerprint(src.Interface, decls)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}

	result := DescribeResult{
		Interface:    src.Interface,
		Origin:       src.Origin,
		Fingerprint:  fingerprint,
		Summary:      ir.Summarize(decls),
		Declarations: decls,
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "Interface:   %s\n", result.Interface)
	fmt.Fprintf(w, "Origin:      %s\n", result.Origin)
	fmt.Fprintf(w, "Fingerprint: %s\n", result.Fingerprint)
	fmt.Fprintf(w, "Declared:    %d tagged type(s), %d constant(s), %d field(s), %d function(s)\n\n",
		result.Summary.TaggedTypes, result.Summary.Constants, result.Summary.Fields, result.Summary.Functions)

	if len(decls) == 0 {
		fmt.Fprintln(w, "No declarations.")
		return nil
	}

	data := pterm.TableData{{"Seq", "Kind", "Name", "Detail"}}
	for _, d := range decls {
		data = append(data, []string{strconv.FormatInt(d.Seq, 10), string(d.Kind), declName(d), declDetail(d)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	fmt.Fprintln(w, table)
	return nil
}

func describeBuiltins(formatter *OutputFormatter) error {
	builtins := catalog.Builtins()
	infos := make([]BuiltinInfo, len(builtins))
	for i, b := range builtins {
		infos[i] = BuiltinInfo{Name: b.Name, Interface: b.Interface, Description: b.Description}
	}

	if formatter.Format == "json" {
		return formatter.Success(infos)
	}

	data := pterm.TableData{{"Name", "Interface", "Description"}}
	for _, b := range infos {
		data = append(data, []string{b.Name, b.Interface, b.Description})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	fmt.Fprintln(formatter.Writer, table)
	return nil
}

func declName(d ir.Decl) string {
	if d.Kind == ir.KindFields {
		return d.Type
	}
	return d.Name
}

// declDetail summarizes the kind-specific attributes of d on one line.
func declDetail(d ir.Decl) string {
	switch d.Kind {
	case ir.KindTagged:
		s := fmt.Sprintf("%s tag %q", d.Type, d.Tag)
		if d.Sentinel != nil {
			s += " sentinel " + *d.Sentinel
		}
		return s
	case ir.KindConstant:
		return fmt.Sprintf("%s = %s", d.Type, d.Value)
	case ir.KindFields:
		names := make([]string, len(d.Fields))
		for i, f := range d.Fields {
			names[i] = fmt.Sprintf("%s@%d", f.Name, f.Offset)
		}
		return strings.Join(names, " ")
	case ir.KindFunction:
		return fmt.Sprintf("%s (%s)", d.Return, strings.Join(d.Args, ", "))
	default:
		return ""
	}
}
