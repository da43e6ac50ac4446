package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/chronon"
)

// ShiftOptions holds flags for the shift command.
type ShiftOptions struct {
	*RootOptions
	Zone     string
	Years    int64
	Quarters int64
	Months   int64
	Weeks    int64
	Days     int64
	Hours    int64
	Minutes  int64
	Seconds  int64
	Weekday  string
}

// NewShiftCommand creates the shift command.
func NewShiftCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShiftOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "shift <datetime>",
		Short: "Shift a datetime by a calendar delta",
		Long: `Shift a datetime by a calendar delta. Years, quarters, and months
apply as one calendar step with end-of-month clamping; the target weekday, if
given, rolls forward to its next occurrence.

Example:
  chronon shift 2013-01-31T00:00:00Z --months 1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Zone, "zone", "", "interpret the datetime in this zone")
	cmd.Flags().Int64Var(&opts.Years, "years", 0, "years to shift")
	cmd.Flags().Int64Var(&opts.Quarters, "quarters", 0, "quarters to shift")
	cmd.Flags().Int64Var(&opts.Months, "months", 0, "months to shift")
	cmd.Flags().Int64Var(&opts.Weeks, "weeks", 0, "weeks to shift")
	cmd.Flags().Int64Var(&opts.Days, "days", 0, "days to shift")
	cmd.Flags().Int64Var(&opts.Hours, "hours", 0, "hours to shift")
	cmd.Flags().Int64Var(&opts.Minutes, "minutes", 0, "minutes to shift")
	cmd.Flags().Int64Var(&opts.Seconds, "seconds", 0, "seconds to shift")
	cmd.Flags().StringVar(&opts.Weekday, "weekday", "", "roll forward to this weekday (monday..sunday)")

	return cmd
}

func runShift(opts *ShiftOptions, text string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	m, err := parseMomentArg(text, opts.Zone)
	if err != nil {
		return err
	}

	delta := chronon.Delta{
		Years:    opts.Years,
		Quarters: opts.Quarters,
		Months:   opts.Months,
		Weeks:    opts.Weeks,
		Days:     opts.Days,
		Hours:    opts.Hours,
		Minutes:  opts.Minutes,
		Seconds:  opts.Seconds,
	}
	if opts.Weekday != "" {
		wd, err := parseWeekdayFlag(opts.Weekday)
		if err != nil {
			return err
		}
		delta.Weekday = wd.Ptr()
	}

	shifted, err := m.Shift(delta)
	if err != nil {
		return commandError(f, err)
	}

	return f.Success(payloadFor(shifted), func(w io.Writer) {
		fmt.Fprintln(w, shifted)
		if opts.Verbose {
			fmt.Fprintf(w, "  from: %s\n", m)
		}
	})
}

func parseWeekdayFlag(name string) (chronon.Weekday, error) {
	for wd := chronon.Monday; wd <= chronon.Sunday; wd++ {
		if strings.EqualFold(name, wd.String()) {
			return wd, nil
		}
	}
	return 0, &ExitError{
		Code:    ExitCommandError,
		Message: fmt.Sprintf("unknown weekday %q", name),
	}
}
