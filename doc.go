// Package chronon provides an immutable, timezone-aware point-in-time value
// type with calendar arithmetic, span (floor/ceil) normalization, and lazy
// range generation.
//
// The central type is Moment: an exact instant paired with a resolved Zone.
// All calendar fields (year, month, ISO week, quarter, ...) are derived on
// demand from the instant through the zone's UTC offset; nothing is stored
// redundantly. Every transformation (Shift, Replace, To, Add) returns a new
// Moment.
//
// ARCHITECTURE:
//
// Zone resolution:
// A ZoneSpec (named zone, fixed-offset text, external provider handle, or an
// already-resolved Zone) is dispatched exactly once by a Context into a
// concrete Zone carrying a fixed UTC offset and a DST adjustment. Offsets of
// named zones are computed against the reference instant being resolved, so
// long-running processes observe DST transitions. The zone database and the
// clock are injectable through Context; DefaultContext wires the platform
// tz database and the system clock.
//
// Calendar arithmetic:
// Delta is a signed calendar offset distinct from a fixed duration. Shift
// applies years/quarters/months as a single calendar step (clamping
// end-of-month overflow), then weeks/days, then fixed-duration time units,
// then an optional forward roll to a target weekday.
//
// Spans and ranges:
// Span computes the (floor, ceil) interval enclosing a Moment at a frame
// granularity under a configurable bound policy; open ends are nudged by one
// nanosecond. Range and SpanRange are pull-based cursors advanced by Next();
// they hold no shared state and are restartable by reconstruction. Plain
// ranges anchor every candidate at the original start, so stepping months
// from Jan 31 yields Feb 28 and then Mar 31, never drifting the anchor.
//
// CONCURRENCY:
// Moment, Zone, and Delta are immutable value types and safe to share.
// A single Range or SpanRange must not be pulled from multiple goroutines;
// distinct cursors are fully independent.
package chronon
