package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/chronon"
)

// NowOptions holds flags for the now command.
type NowOptions struct {
	*RootOptions
	Zone string
}

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current instant",
		Long: `Print the current instant in the requested zone.

Example:
  chronon now --zone America/New_York`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Zone, "zone", "", "zone name, offset, or 'local' (default local)")

	return cmd
}

func runNow(opts *NowOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	m, err := chronon.Now(zoneSpec(opts.Zone))
	if err != nil {
		return commandError(f, err)
	}

	return f.Success(payloadFor(m), func(w io.Writer) {
		fmt.Fprintln(w, m)
		if opts.Verbose {
			fmt.Fprintf(w, "  zone: %s\n", m.Zone())
			fmt.Fprintf(w, "  timestamp: %.6f\n", m.FloatTimestamp())
		}
	})
}
