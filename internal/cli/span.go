package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/chronon"
)

// SpanOptions holds flags for the span command.
type SpanOptions struct {
	*RootOptions
	Zone      string
	Frame     string
	Count     int
	Bounds    string
	Exact     bool
	WeekStart int
}

// NewSpanCommand creates the span command.
func NewSpanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SpanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "span <datetime>",
		Short: "Print the frame interval enclosing a datetime",
		Long: `Print the (floor, ceil) interval enclosing a datetime at a calendar
frame.

Example:
  chronon span 2013-02-15T03:41:22Z --frame hour --bounds "[]"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpan(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Zone, "zone", "", "interpret the datetime in this zone")
	cmd.Flags().StringVar(&opts.Frame, "frame", "day", "calendar frame (year..second)")
	cmd.Flags().IntVar(&opts.Count, "count", 1, "number of frames the span covers")
	cmd.Flags().StringVar(&opts.Bounds, "bounds", "[)", `bound policy: "[]", "()", "[)", or "(]"`)
	cmd.Flags().BoolVar(&opts.Exact, "exact", false, "anchor the span at the datetime instead of the frame boundary")
	cmd.Flags().IntVar(&opts.WeekStart, "week-start", 1, "first day of week, 1 = Monday .. 7 = Sunday")

	return cmd
}

// spanPayload is the structured rendering of a (floor, ceil) pair.
type spanPayload struct {
	Floor momentPayload `json:"floor" yaml:"floor"`
	Ceil  momentPayload `json:"ceil" yaml:"ceil"`
}

func runSpan(opts *SpanOptions, text string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	m, err := parseMomentArg(text, opts.Zone)
	if err != nil {
		return err
	}
	frame, err := chronon.ParseFrame(opts.Frame)
	if err != nil {
		return commandError(f, err)
	}
	bounds, err := chronon.ParseBounds(opts.Bounds)
	if err != nil {
		return commandError(f, err)
	}

	floor, ceil, err := m.Span(frame, chronon.SpanOptions{
		Count:     opts.Count,
		Bounds:    bounds,
		Exact:     opts.Exact,
		WeekStart: opts.WeekStart,
	})
	if err != nil {
		return commandError(f, err)
	}

	payload := spanPayload{Floor: payloadFor(floor), Ceil: payloadFor(ceil)}
	return f.Success(payload, func(w io.Writer) {
		fmt.Fprintf(w, "%s .. %s\n", floor, ceil)
	})
}
