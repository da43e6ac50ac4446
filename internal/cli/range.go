package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/chronon"
)

// RangeOptions holds flags for the range command.
type RangeOptions struct {
	*RootOptions
	Zone     string
	Frame    string
	Limit    int64
	Spans    bool
	Interval int64
	Bounds   string
	Exact    bool
}

// NewRangeCommand creates the range command.
func NewRangeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RangeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "range <start> [<end>]",
		Short: "Enumerate datetimes or spans between two instants",
		Long: `Enumerate datetimes stepping by a calendar frame, anchored at the
start so month-length clamping never accumulates. With --spans, emit
(floor, ceil) interval pairs instead of single datetimes.

The end is optional when --limit is given.

Example:
  chronon range 2023-01-01T00:00:00Z 2023-01-03T00:00:00Z --frame day`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRange(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Zone, "zone", "", "re-express both ends in this zone")
	cmd.Flags().StringVar(&opts.Frame, "frame", "day", "calendar frame (year..second)")
	cmd.Flags().Int64Var(&opts.Limit, "limit", 0, "maximum number of elements (0 = no limit)")
	cmd.Flags().BoolVar(&opts.Spans, "spans", false, "emit interval pairs instead of datetimes")
	cmd.Flags().Int64Var(&opts.Interval, "interval", 1, "frames per span (with --spans)")
	cmd.Flags().StringVar(&opts.Bounds, "bounds", "[)", `bound policy for spans: "[]", "()", "[)", or "(]"`)
	cmd.Flags().BoolVar(&opts.Exact, "exact", false, "anchor spans at start and clip the final span to end")

	return cmd
}

func runRange(opts *RangeOptions, args []string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	start, err := parseMomentArg(args[0], opts.Zone)
	if err != nil {
		return err
	}
	var end *chronon.Moment
	if len(args) == 2 {
		e, err := parseMomentArg(args[1], opts.Zone)
		if err != nil {
			return err
		}
		end = &e
	}
	if end == nil && opts.Limit <= 0 {
		return &ExitError{Code: ExitCommandError, Message: "an end datetime or --limit is required"}
	}
	frame, err := chronon.ParseFrame(opts.Frame)
	if err != nil {
		return commandError(f, err)
	}

	if opts.Spans {
		return runSpanRange(opts, f, frame, start, end)
	}

	r, err := chronon.NewRange(frame, start, chronon.RangeOptions{End: end, Limit: opts.Limit, Zone: zoneSpec(opts.Zone)})
	if err != nil {
		return commandError(f, err)
	}
	moments := r.Collect()

	payload := make([]momentPayload, 0, len(moments))
	for _, m := range moments {
		payload = append(payload, payloadFor(m))
	}
	return f.Success(payload, func(w io.Writer) {
		for _, m := range moments {
			fmt.Fprintln(w, m)
		}
	})
}

func runSpanRange(opts *RangeOptions, f *OutputFormatter, frame chronon.Frame, start chronon.Moment, end *chronon.Moment) error {
	if end == nil {
		return &ExitError{Code: ExitCommandError, Message: "--spans requires an end datetime"}
	}
	bounds, err := chronon.ParseBounds(opts.Bounds)
	if err != nil {
		return commandError(f, err)
	}

	sr, err := chronon.NewInterval(frame, start, *end, opts.Interval, chronon.SpanRangeOptions{
		Bounds: bounds,
		Exact:  opts.Exact,
		Limit:  opts.Limit,
		Zone:   zoneSpec(opts.Zone),
	})
	if err != nil {
		return commandError(f, err)
	}
	spans := sr.Collect()

	payload := make([]spanPayload, 0, len(spans))
	for _, s := range spans {
		payload = append(payload, spanPayload{Floor: payloadFor(s.Start), Ceil: payloadFor(s.End)})
	}
	return f.Success(payload, func(w io.Writer) {
		for _, s := range spans {
			fmt.Fprintf(w, "%s .. %s\n", s.Start, s.End)
		}
	})
}
