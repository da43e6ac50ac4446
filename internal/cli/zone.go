package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/chronon"
)

// ZoneOptions holds flags for the zone command.
type ZoneOptions struct {
	*RootOptions
}

// NewZoneCommand creates the zone command.
func NewZoneCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ZoneOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "zone <name>",
		Short: "Resolve a zone name or offset",
		Long: `Resolve a zone name, offset, or alias and print its current UTC
offset and DST adjustment.

Example:
  chronon zone Europe/Paris`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZone(opts, args[0], cmd)
		},
	}

	return cmd
}

// zonePayload is the structured rendering of a resolved zone.
type zonePayload struct {
	Name          string `json:"name" yaml:"name"`
	OffsetSeconds int    `json:"offset_seconds" yaml:"offset_seconds"`
	DSTSeconds    int    `json:"dst_seconds" yaml:"dst_seconds"`
	Fixed         bool   `json:"fixed" yaml:"fixed"`
}

func runZone(opts *ZoneOptions, name string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	z, err := chronon.ResolveZone(chronon.ZoneName(name))
	if err != nil {
		return commandError(f, err)
	}

	payload := zonePayload{
		Name:          z.Name(),
		OffsetSeconds: z.OffsetSeconds(),
		DSTSeconds:    z.DSTSeconds(),
		Fixed:         z.Kind() == chronon.ZoneKindFixed,
	}
	return f.Success(payload, func(w io.Writer) {
		fmt.Fprintf(w, "%s offset=%ds dst=%ds\n", z.Name(), z.OffsetSeconds(), z.DSTSeconds())
	})
}
