package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/chronon"
)

// ParseOptions holds flags for the parse command.
type ParseOptions struct {
	*RootOptions
	Layout string
	Zone   string
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse a datetime string",
		Long: `Parse a datetime string with a strftime layout and print the
resolved instant.

Example:
  chronon parse "2013-02-03 04:05:06" --layout "%Y-%m-%d %H:%M:%S" --zone utc`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Layout, "layout", "%Y-%m-%dT%H:%M:%S%z", "strftime layout")
	cmd.Flags().StringVar(&opts.Zone, "zone", "", "interpret wall-clock fields in this zone")

	return cmd
}

func runParse(opts *ParseOptions, text string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	m, err := chronon.Parse(text, opts.Layout, zoneSpec(opts.Zone))
	if err != nil {
		return commandError(f, err)
	}

	return f.Success(payloadFor(m), func(w io.Writer) {
		fmt.Fprintln(w, m)
		if opts.Verbose {
			fmt.Fprintf(w, "  zone: %s\n", m.Zone())
			fmt.Fprintf(w, "  ordinal: %d\n", m.Ordinal())
		}
	})
}
