package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ifgen/internal/catalog"
)

// defaultBuiltin is rendered when no source flag is given.
const defaultBuiltin = "cuda"

// SourceOptions selects the declaration source of a command.
type SourceOptions struct {
	Builtin string // built-in routine name
	Catalog string // catalog document path
	Name    string // interface name override
}

func addSourceFlags(cmd *cobra.Command, o *SourceOptions) {
	cmd.Flags().StringVar(&o.Builtin, "builtin", "", "built-in declaration routine (default \"cuda\")")
	cmd.Flags().StringVar(&o.Catalog, "catalog", "", "catalog file (.yaml, .yml, .toml or .cue)")
	cmd.Flags().StringVar(&o.Name, "name", "", "override the interface name")
}

// resolve loads the selected source. A usage error (both flags set) is
// returned as an ExitError so callers can tell it apart from a catalog
// failure.
func (o *SourceOptions) resolve() (*catalog.Source, error) {
	if o.Builtin != "" && o.Catalog != "" {
		return nil, NewExitError(ExitCommandError, "--builtin and --catalog are mutually exclusive")
	}

	var (
		src *catalog.Source
		err error
	)
	if o.Catalog != "" {
		src, err = catalog.FromFile(o.Catalog)
	} else {
		name := o.Builtin
		if name == "" {
			name = defaultBuiltin
		}
		src, err = catalog.FromBuiltin(name)
	}
	if err != nil {
		return nil, err
	}

	if o.Name != "" {
		src.Interface = o.Name
	}
	return src, nil
}

// resolveSource resolves o and reports failures through f.
func resolveSource(f *OutputFormatter, o *SourceOptions) (*catalog.Source, error) {
	src, err := o.resolve()
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, f.Fail(ExitCommandError, ErrCodeBadFlags, exitErr.Message, nil)
		}
		return nil, f.FailErr(err)
	}
	f.VerboseLog("Source %s declares interface %s", src.Origin, src.Interface)
	return src, nil
}

// sourceLabel describes a source for text output.
func sourceLabel(src *catalog.Source) string {
	return fmt.Sprintf("%s (%s)", src.Interface, src.Origin)
}
