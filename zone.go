package chronon

import (
	"fmt"
	"strings"
	"time"
)

// ZoneKind distinguishes fixed-offset zones from database-named zones.
type ZoneKind int

const (
	// ZoneKindFixed is a bare UTC offset; its DST adjustment is always zero.
	ZoneKindFixed ZoneKind = iota
	// ZoneKindNamed is a zone resolved from the zone database by name.
	ZoneKindNamed
)

// ZoneSpec is a sealed union of zone specifiers. Exactly four types satisfy
// it: ZoneName, ZoneOffset, ZoneHandle, and an already-resolved Zone. A spec
// is consumed once, at resolution time; offset queries afterwards hit the
// concrete Zone, never the spec.
type ZoneSpec interface {
	zoneSpec()
}

// ZoneName is an IANA-style zone name, or one of the aliases "utc" and
// "local". A name containing ':' is parsed as a fixed numeric offset.
type ZoneName string

func (ZoneName) zoneSpec() {}

// ZoneOffset is a fixed numeric offset in +HH:MM / -HH:MM form.
type ZoneOffset string

func (ZoneOffset) zoneSpec() {}

// ZoneProvider is the external zone handle capability: a two-method interface
// supplying the UTC offset at an instant and, optionally, a display name.
// A provider that cannot supply offset information is a resolution-time
// error, never a silent fallback.
type ZoneProvider interface {
	OffsetSeconds(at time.Time) (int, error)
	DSTName(at time.Time) (string, bool)
}

// ZoneHandle wraps an externally supplied ZoneProvider as a ZoneSpec.
type ZoneHandle struct {
	Provider ZoneProvider
}

func (ZoneHandle) zoneSpec() {}

// Zone is a resolved zone: a fixed UTC offset, a DST adjustment, and a
// display name. Immutable. For ZoneKindFixed the DST adjustment is zero by
// construction.
type Zone struct {
	offsetSeconds int
	dstSeconds    int
	name          string
	kind          ZoneKind
}

func (Zone) zoneSpec() {}

// UTC is the zero-offset named zone.
var UTC = Zone{name: "UTC", kind: ZoneKindNamed}

// FixedZone builds a fixed-offset zone. An empty name renders as ±HH:MM.
func FixedZone(name string, offsetSeconds int) Zone {
	if name == "" {
		name = formatOffset(offsetSeconds)
	}
	return Zone{offsetSeconds: offsetSeconds, name: name, kind: ZoneKindFixed}
}

// OffsetSeconds returns the zone's UTC offset in seconds.
func (z Zone) OffsetSeconds() int { return z.offsetSeconds }

// DSTSeconds returns the zone's DST adjustment in seconds at its resolution
// instant. Always zero for fixed zones.
func (z Zone) DSTSeconds() int { return z.dstSeconds }

// Name returns the display name.
func (z Zone) Name() string { return z.name }

// Kind returns whether the zone is fixed or named.
func (z Zone) Kind() ZoneKind { return z.kind }

// Location renders the zone as a host *time.Location with its fixed offset.
func (z Zone) Location() *time.Location {
	if z.offsetSeconds == 0 && z.name == "UTC" {
		return time.UTC
	}
	return time.FixedZone(z.name, z.offsetSeconds)
}

// Equal compares effective UTC offsets, not names. A named zone and a fixed
// zone with the same offset are equal.
func (z Zone) Equal(other Zone) bool {
	return z.offsetSeconds == other.offsetSeconds
}

func (z Zone) String() string { return z.name }

// ResolveZone resolves a zone specifier against a reference instant. The
// offset and DST adjustment of a named zone are computed for ref, not for a
// process-start snapshot.
func (c *Context) ResolveZone(spec ZoneSpec, ref time.Time) (Zone, error) {
	switch s := spec.(type) {
	case Zone:
		return s, nil
	case ZoneName:
		return c.resolveName(string(s), ref)
	case ZoneOffset:
		off, err := parseOffset(string(s))
		if err != nil {
			return Zone{}, err
		}
		return FixedZone("", off), nil
	case ZoneHandle:
		return resolveHandle(s, ref)
	default:
		return Zone{}, newError(ErrCodeUnknownZoneName, "unsupported zone specifier %T", spec)
	}
}

// ResolveZone resolves spec with the default Context, referenced at the
// current instant.
func ResolveZone(spec ZoneSpec) (Zone, error) {
	c := DefaultContext()
	return c.ResolveZone(spec, c.Clock.Now())
}

func (c *Context) resolveName(name string, ref time.Time) (Zone, error) {
	switch strings.ToLower(name) {
	case "utc":
		return UTC, nil
	case "local":
		return FixedZone("local", c.LocalOffsetSeconds()), nil
	}
	if strings.Contains(name, ":") {
		off, err := parseOffset(name)
		if err != nil {
			return Zone{}, err
		}
		return FixedZone("", off), nil
	}
	off, dst, err := c.DB.Lookup(name, ref)
	if err != nil {
		return Zone{}, newZoneError(ErrCodeUnknownZoneName, name, err, "unknown zone name")
	}
	return Zone{offsetSeconds: off, dstSeconds: dst, name: name, kind: ZoneKindNamed}, nil
}

func resolveHandle(h ZoneHandle, ref time.Time) (Zone, error) {
	if h.Provider == nil {
		return Zone{}, newError(ErrCodeZoneQueryFailed, "zone handle has no provider")
	}
	off, err := h.Provider.OffsetSeconds(ref)
	if err != nil {
		return Zone{}, newZoneError(ErrCodeZoneQueryFailed, "", err, "zone provider declined offset query")
	}
	name := formatOffset(off)
	if n, ok := h.Provider.DSTName(ref); ok && n != "" {
		name = n
	}
	return FixedZone(name, off), nil
}

// parseOffset parses +HH:MM / -HH:MM (seconds optional: +HH:MM:SS).
func parseOffset(s string) (int, error) {
	orig := s
	if len(s) == 0 || (s[0] != '+' && s[0] != '-') {
		return 0, newError(ErrCodeInvalidOffset, "invalid timezone offset %q", orig)
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	parts := strings.Split(s[1:], ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, newError(ErrCodeInvalidOffset, "invalid timezone offset %q", orig)
	}
	total := 0
	limits := []int{24, 60, 60}
	scales := []int{3600, 60, 1}
	for i, p := range parts {
		n, err := parseTwoDigits(p)
		if err != nil || n >= limits[i] {
			return 0, newError(ErrCodeInvalidOffset, "invalid timezone offset %q", orig)
		}
		total += n * scales[i]
	}
	return sign * total, nil
}

func parseTwoDigits(s string) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, fmt.Errorf("want 1-2 digits, got %q", s)
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit in %q", s)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

func formatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d", sign, seconds/3600, seconds%3600/60)
}
