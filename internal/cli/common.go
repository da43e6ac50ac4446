package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/chronon"
)

// wallClockLayouts are the accepted offset-less shapes for datetime
// arguments, tried in order and interpreted in the --zone zone, or UTC when
// none is given.
var wallClockLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// zoneSpec converts a --zone flag value into a ZoneSpec. An empty flag means
// "no explicit zone" and is passed through as nil.
func zoneSpec(name string) chronon.ZoneSpec {
	if name == "" {
		return nil
	}
	return chronon.ZoneName(name)
}

// parseMomentArg parses a datetime command-line argument. An input carrying
// an explicit offset keeps its instant, and --zone re-expresses it (same
// instant, fields recomputed). Offset-less inputs are interpreted as
// wall-clock time in the --zone zone.
func parseMomentArg(text, zone string) (chronon.Moment, error) {
	if t, err := time.Parse(time.RFC3339Nano, text); err == nil {
		m, err := chronon.FromTime(t, nil)
		if err != nil {
			return chronon.Moment{}, err
		}
		if zone == "" {
			return m, nil
		}
		return m.To(zoneSpec(zone))
	}
	for _, layout := range wallClockLayouts {
		t, err := time.Parse(layout, text)
		if err != nil {
			continue
		}
		return chronon.FromTime(t, zoneSpec(zone))
	}
	return chronon.Moment{}, &ExitError{
		Code:    ExitCommandError,
		Message: fmt.Sprintf("cannot parse datetime %q", text),
	}
}

// newFormatter builds an OutputFormatter bound to the command's stdout.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
}

// commandError renders a library failure in structured formats and wraps it
// with the validation exit code for main.
func commandError(f *OutputFormatter, err error) error {
	if code := chronon.CodeOf(err); code != "" && f.Format != "text" {
		_ = f.Error(string(code), err.Error())
	}
	return WrapExitError(ExitFailure, "command failed", err)
}

// momentPayload is the structured rendering of a Moment.
type momentPayload struct {
	ISO       string  `json:"iso" yaml:"iso"`
	Timestamp float64 `json:"timestamp" yaml:"timestamp"`
	Zone      string  `json:"zone" yaml:"zone"`
	Weekday   string  `json:"weekday" yaml:"weekday"`
}

func payloadFor(m chronon.Moment) momentPayload {
	return momentPayload{
		ISO:       m.String(),
		Timestamp: m.FloatTimestamp(),
		Zone:      m.Zone().String(),
		Weekday:   chronon.Weekday(m.Weekday()).String(),
	}
}
