package chronon

import "time"

// Range lazily yields successive Moments starting at start and stepping by a
// frame's canonical delta. Every candidate is anchored at the original start
// (start shifted by i steps), so month-length clamping never accumulates:
// stepping months from Jan 31 yields Feb 28, then Mar 31.
//
// A Range holds only its own cursor; it is restartable by reconstruction and
// must not be pulled concurrently.
type Range struct {
	frame  Frame
	start  Moment
	end    Moment
	hasEnd bool
	limit  int64
	count  int64
}

// RangeOptions bounds a Range. A nil End with a zero Limit yields an
// unbounded sequence. Zone, if set, re-expresses start (same instant, fields
// recomputed) before stepping begins.
type RangeOptions struct {
	End   *Moment
	Limit int64
	Zone  ZoneSpec
}

// NewRange creates a Moment range stepping by frame. An explicit end that
// precedes start fails with RangeEndBeforeStart; the end itself is included
// when a candidate lands exactly on it.
func NewRange(f Frame, start Moment, opts RangeOptions) (*Range, error) {
	if f < FrameYear || f > FrameMicrosecond {
		return nil, newError(ErrCodeUnsupportedFrame, "unsupported frame %d", f)
	}
	if opts.Zone != nil {
		var err error
		start, err = start.To(opts.Zone)
		if err != nil {
			return nil, err
		}
	}
	r := &Range{frame: f, start: start, limit: opts.Limit}
	if opts.End != nil {
		if opts.End.Before(start) {
			return nil, newError(ErrCodeRangeEndBeforeStart, "range end %s precedes start %s", opts.End, start)
		}
		r.end = *opts.End
		r.hasEnd = true
	}
	return r, nil
}

// Next returns the next Moment in the sequence. The second result is false
// once the sequence is exhausted; exhaustion is never an error.
func (r *Range) Next() (Moment, bool) {
	if r.limit > 0 && r.count >= r.limit {
		return Moment{}, false
	}
	cand := r.start.shiftDelta(r.frame.Step(r.count))
	if r.hasEnd && cand.After(r.end) {
		return Moment{}, false
	}
	r.count++
	return cand, true
}

// Collect drains the remaining sequence into a slice. Only meaningful for
// ranges bounded by an end or a limit.
func (r *Range) Collect() []Moment {
	var out []Moment
	for {
		m, ok := r.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

// Span is a (Start, End) interval pair produced by SpanRange.
type Span struct {
	Start Moment
	End   Moment
}

// SpanRange lazily yields successive frame spans between a start and an end.
type SpanRange struct {
	frame    Frame
	interval int64
	bounds   Bounds
	exact    bool
	anchor   Moment
	end      Moment
	limit    int64
	count    int64
}

// SpanRangeOptions configures a SpanRange.
type SpanRangeOptions struct {
	Bounds Bounds
	Exact  bool
	Limit  int64
	Zone   ZoneSpec
}

// NewSpanRange creates a span range stepping one frame at a time. Non-exact
// span ranges first floor start to the frame boundary; exact ones anchor at
// start itself and clip the final ceiling to end.
func NewSpanRange(f Frame, start, end Moment, opts SpanRangeOptions) (*SpanRange, error) {
	return NewInterval(f, start, end, 1, opts)
}

// NewInterval creates a span range whose spans cover interval frames each.
// The interval must be a positive integer.
func NewInterval(f Frame, start, end Moment, interval int64, opts SpanRangeOptions) (*SpanRange, error) {
	if f == FrameMicrosecond || f < FrameYear || f > FrameSecond {
		return nil, newError(ErrCodeUnsupportedFrame, "no span is defined for frame %q", f)
	}
	if interval < 1 {
		return nil, newError(ErrCodeInvalidInterval, "interval %d must be a positive integer", interval)
	}
	if opts.Zone != nil {
		var err error
		if start, err = start.To(opts.Zone); err != nil {
			return nil, err
		}
		if end, err = end.To(opts.Zone); err != nil {
			return nil, err
		}
	}
	if end.Before(start) {
		return nil, newError(ErrCodeRangeEndBeforeStart, "range end %s precedes start %s", end, start)
	}
	anchor := start
	if !opts.Exact {
		anchor = start.floorTo(f, 1)
	}
	return &SpanRange{
		frame:    f,
		interval: interval,
		bounds:   opts.Bounds,
		exact:    opts.Exact,
		anchor:   anchor,
		end:      end,
		limit:    opts.Limit,
	}, nil
}

// Next returns the next span. The second result is false once the sequence
// is exhausted; exhaustion is never an error.
func (sr *SpanRange) Next() (Span, bool) {
	if sr.limit > 0 && sr.count >= sr.limit {
		return Span{}, false
	}
	rawFloor := sr.anchor.shiftDelta(sr.frame.Step(sr.interval * sr.count))
	rawCeil := rawFloor.shiftDelta(sr.frame.Step(sr.interval))
	if sr.exact {
		// Stop before emitting a zero-width or already-covered trailing
		// span: the step whose floor reaches end, or sits one nanosecond
		// short of it, contributes nothing.
		if !rawFloor.Before(sr.end) || rawFloor.Add(time.Nanosecond).Equal(sr.end) {
			return Span{}, false
		}
		if rawCeil.After(sr.end) {
			rawCeil = sr.end
		}
	} else if rawFloor.After(sr.end) {
		return Span{}, false
	}
	floor, ceil := applyBounds(rawFloor, rawCeil, sr.bounds)
	sr.count++
	return Span{Start: floor, End: ceil}, true
}

// Collect drains the remaining spans into a slice.
func (sr *SpanRange) Collect() []Span {
	var out []Span
	for {
		s, ok := sr.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}
